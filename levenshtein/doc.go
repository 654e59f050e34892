// Package levenshtein computes the minimum edit distance between two
// texts, measured in grapheme clusters.
//
// 🚀 What is Levenshtein distance?
//
//	The smallest number of single-position edits — insertions,
//	deletions, substitutions — that transforms one sequence into
//	another. It is the workhorse metric behind:
//	  • Spell checking & "did you mean" suggestions
//	  • Fuzzy record matching & deduplication
//	  • Approximate search over names and identifiers
//	  • Diff-like similarity scoring
//
// ✨ Key features:
//   - grapheme-cluster units: a base letter + combining accent, or any
//     multi-byte glyph, costs exactly one edit (never per byte/rune)
//   - single rolling row: O(min-side) memory, no full DP matrix
//   - exact comparison: case-sensitive, no implicit normalization
//   - total functions: every input pair yields a distance, no errors
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lexkit/levenshtein"
//
//	d := levenshtein.Distance("kitten", "sitting") // 3
//
//	// or over pre-segmented sequences:
//	d = levenshtein.DistanceClusters(
//	  grapheme.Clusters("jogging"),
//	  grapheme.Clusters("logger"),
//	) // 4
//
// Performance:
//
//   - Time:   O(N·M) in the two cluster counts
//   - Memory: O(M) — one row of the DP matrix
//
// See example_test.go for worked scenarios.
package levenshtein
