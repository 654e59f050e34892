package grapheme

import "github.com/rivo/uniseg"

// Clusters splits s into its grapheme clusters, in order.
// It returns nil for the empty string.
//
// Complexity: O(len(s)) time, one slice allocation.
func Clusters(s string) []string {
	if s == "" {
		return nil
	}
	// Pre-size with the exact cluster count to avoid append growth.
	out := make([]string, 0, uniseg.GraphemeClusterCount(s))
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		out = append(out, gr.Str())
	}

	return out
}

// Count reports the number of grapheme clusters in s without
// materializing them.
func Count(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// Equal reports whether a and b contain the same clusters in the same
// order. Comparison is exact: no case folding, no normalization.
func Equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
