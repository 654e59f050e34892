package levenshtein

import "github.com/katalvlaran/lexkit/grapheme"

// Distance — Levenshtein edit distance
//
// Description:
//
//	Distance counts the minimum number of insertions, deletions and
//	substitutions needed to turn a into b. Both strings are first
//	segmented into grapheme clusters, so a combining-mark sequence or
//	a multi-byte glyph counts as one edit unit, matching what a reader
//	perceives as "one character".
//
// Algorithm Outline (Wagner–Fischer, rolling row):
//  1. Short-circuits: equal inputs → 0; an empty input → the other
//     input's length.
//  2. Allocate one row of len(b)+1 ints, initialized 0,1,…,len(b)
//     (cost of building each b-prefix from an empty a-prefix).
//  3. For i = 1..len(a):
//     - seed the diagonal with row[0] (= i-1), set row[0] = i;
//     - for j = 1..len(b):
//     subCost = 0 if a[i-1] == b[j-1], else 1
//     row[j] = min(row[j]+1, row[j-1]+1, diag+subCost)
//     where row[j] still holds the previous row's value (deletion),
//     row[j-1] the fresh value (insertion), diag the previous row's
//     j-1 value captured before overwrite (substitution).
//  4. Answer is row[len(b)] after the last source cluster.
//
// Comparison is exact equality per cluster: case-sensitive, no
// normalization. "HOUSEBOAT" vs "houseboat" is distance 9.
//
// Complexity:
//
//	Time   = O(len(a)·len(b))
//	Memory = O(len(b))
//
// Distance never fails; it is total over all string pairs.
func Distance(a, b string) int {
	return DistanceClusters(grapheme.Clusters(a), grapheme.Clusters(b))
}

// DistanceClusters computes the Levenshtein distance between two
// pre-segmented grapheme sequences. Callers that already hold cluster
// slices (e.g. from grapheme.Clusters) avoid re-segmentation.
//
// Elements are compared with exact string equality. Either sequence may
// be empty. See Distance for the algorithm outline.
func DistanceClusters(a, b []string) int {
	// Equality fast path: the general recurrence below assumes the
	// inputs actually differ before it degenerates to prefix costs.
	if grapheme.Equal(a, b) {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	// row[j] holds the cost of transforming the current a-prefix into
	// the first j clusters of b.
	row := make([]int, len(b)+1)
	for j := 1; j <= len(b); j++ {
		row[j] = j
	}

	for i := 1; i <= len(a); i++ {
		diag := row[0] // previous row, column 0
		row[0] = i     // i source clusters consumed, zero target
		for j := 1; j <= len(b); j++ {
			next := row[j] // becomes the next column's diagonal
			subCost := 1
			if a[i-1] == b[j-1] {
				subCost = 0
			}
			row[j] = min3(row[j]+1, row[j-1]+1, diag+subCost)
			diag = next
		}
	}

	return row[len(b)]
}

// min3 returns the minimum of three ints.
func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}

		return c
	}
	if b < c {
		return b
	}

	return c
}
