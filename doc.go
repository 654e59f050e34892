// Package lexkit is your toolbox for small, sharp text-analysis
// primitives — from Unicode-aware tokenization to phonetic matching and
// edit distances.
//
// 🚀 What is lexkit?
//
//	A modern, dependency-light library that brings together:
//		• Grapheme segmentation: user-perceived characters, not bytes or runes
//		• Edit distance: Levenshtein over grapheme clusters (rolling-row DP)
//		• Phonetic matching: NARA Soundex with full H/W bridging rules
//		• Tokenization: regex splitting + composable exclusion filters
//		• Token statistics: frequencies, mean length, deterministic top-k
//
// ✨ Why choose lexkit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Pure functions – no shared state, every call safe under concurrency
//   - Unicode done right – combining marks and multi-byte glyphs count once
//   - Deterministic – stable ordering everywhere results are ranked
//
// Under the hood, everything is organized under five subpackages:
//
//	grapheme/    — grapheme-cluster segmentation shared by the rest
//	levenshtein/ — minimum edit distance between two texts
//	soundex/     — 4-character phonetic codes for name matching
//	token/       — configurable regex tokenizer with filter composition
//	stats/       — aggregate token counting & ranking
//
// Quick taste:
//
//	d := levenshtein.Distance("kitten", "sitting") // 3
//	c, _ := soundex.Encode("Washington")           // "W-252"
//
// Dive into the per-package doc.go files and example_test.go files for
// full walkthroughs of each algorithm.
//
//	go get github.com/katalvlaran/lexkit
package lexkit
