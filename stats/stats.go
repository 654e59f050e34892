// SPDX-License-Identifier: MIT

package stats

import (
	"sort"

	"github.com/katalvlaran/lexkit/grapheme"
)

// TokenCount pairs a token with its occurrence count; TopK returns
// slices of these.
type TokenCount struct {
	Token string
	Count int
}

// Frequencies counts occurrences per token. It returns an empty map
// for an empty stream, never nil, so callers can index freely.
func Frequencies(tokens []string) map[string]int {
	freq := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		freq[tok]++
	}

	return freq
}

// Total sums all occurrence counts: the number of tokens counted.
func Total(freq map[string]int) int {
	total := 0
	for _, n := range freq {
		total += n
	}

	return total
}

// Unique reports the vocabulary size.
func Unique(freq map[string]int) int {
	return len(freq)
}

// MeanLength returns the average token length measured in grapheme
// clusters, or 0 when the stream is empty.
func MeanLength(tokens []string) float64 {
	if len(tokens) == 0 {
		return 0
	}
	sum := 0
	for _, tok := range tokens {
		sum += grapheme.Count(tok)
	}

	return float64(sum) / float64(len(tokens))
}

// TopK returns the k most frequent tokens in descending count order,
// ties broken by ascending token so the ranking is deterministic.
// k <= 0 yields nil; k beyond the vocabulary yields the whole ranking.
func TopK(freq map[string]int, k int) []TokenCount {
	if k <= 0 || len(freq) == 0 {
		return nil
	}

	ranked := make([]TokenCount, 0, len(freq))
	for tok, n := range freq {
		ranked = append(ranked, TokenCount{Token: tok, Count: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}

		return ranked[i].Token < ranked[j].Token
	})

	if k < len(ranked) {
		ranked = ranked[:k]
	}

	return ranked
}
