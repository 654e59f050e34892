// Package stats aggregates token streams into counts, averages and
// rankings.
//
// 🚀 What does it do?
//
//	The back half of the counting pipeline: feed it the output of the
//	token package (or any []string) and get:
//	  • Frequencies — token → occurrence count
//	  • Total / Unique — corpus size and vocabulary size
//	  • MeanLength — average token length in grapheme clusters
//	  • TopK — the k most frequent tokens, deterministically ordered
//
// ✨ Key features:
//   - deterministic ranking: ties broken by ascending token, so equal
//     inputs always produce byte-identical output
//   - grapheme-aware lengths: "naïve" is 5 long, never 6
//   - pure functions over plain maps and slices, trivially composable
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lexkit/stats"
//
//	freq := stats.Frequencies(tokens)
//	top := stats.TopK(freq, 10)
//	avg := stats.MeanLength(tokens)
//
// Complexity: every function is a single pass, except TopK which sorts
// the vocabulary in O(V log V).
package stats
