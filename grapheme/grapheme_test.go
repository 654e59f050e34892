package grapheme_test

import (
	"testing"

	"github.com/katalvlaran/lexkit/grapheme"
	"github.com/stretchr/testify/assert"
)

// TestClusters_Empty verifies the empty string yields no clusters.
func TestClusters_Empty(t *testing.T) {
	assert.Nil(t, grapheme.Clusters(""), "empty input must yield nil")
	assert.Equal(t, 0, grapheme.Count(""), "empty input must count zero")
}

// TestClusters_ASCII verifies plain ASCII splits one byte per cluster.
func TestClusters_ASCII(t *testing.T) {
	got := grapheme.Clusters("snail")
	assert.Equal(t, []string{"s", "n", "a", "i", "l"}, got)
	assert.Equal(t, 5, grapheme.Count("snail"))
}

// TestClusters_CombiningMark verifies a base letter plus combining
// accent counts as a single cluster.
func TestClusters_CombiningMark(t *testing.T) {
	// "e" + U+0301 COMBINING ACUTE ACCENT: two runes, one cluster.
	decomposed := "é"
	got := grapheme.Clusters(decomposed)
	assert.Len(t, got, 1, "base + combining mark is one cluster")
	assert.Equal(t, decomposed, got[0], "cluster preserves underlying code points")
	assert.Equal(t, 1, grapheme.Count(decomposed))
}

// TestClusters_MultiByte verifies multi-byte glyphs count once each.
func TestClusters_MultiByte(t *testing.T) {
	got := grapheme.Clusters("日本語") // 日本語
	assert.Equal(t, []string{"日", "本", "語"}, got)
	assert.Equal(t, 3, grapheme.Count("日本語"))
}

// TestEqual_Basic verifies exact, order-sensitive comparison.
func TestEqual_Basic(t *testing.T) {
	assert.True(t, grapheme.Equal(grapheme.Clusters("abc"), grapheme.Clusters("abc")))
	assert.False(t, grapheme.Equal(grapheme.Clusters("abc"), grapheme.Clusters("acb")), "order matters")
	assert.False(t, grapheme.Equal(grapheme.Clusters("abc"), grapheme.Clusters("ab")), "length matters")
	assert.False(t, grapheme.Equal(grapheme.Clusters("abc"), grapheme.Clusters("ABC")), "no case folding")
	assert.True(t, grapheme.Equal(nil, nil), "two empty sequences are equal")
}

// TestEqual_NormalizationSensitive verifies that canonically equivalent
// but differently encoded clusters compare unequal: normalization is
// the caller's responsibility.
func TestEqual_NormalizationSensitive(t *testing.T) {
	precomposed := grapheme.Clusters("é") // é as one code point
	decomposed := grapheme.Clusters("é") // é as base + mark
	assert.False(t, grapheme.Equal(precomposed, decomposed))
}
