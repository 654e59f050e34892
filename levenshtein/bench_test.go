package levenshtein_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/lexkit/levenshtein"
)

// benchmarkDistance runs Distance on two synthetic words of lengths n
// and m, resetting the timer after setup.
func benchmarkDistance(b *testing.B, n, m int) {
	// Repeating alphabets keep the inputs non-trivial (no equality
	// fast path) while staying deterministic.
	src := strings.Repeat("abcdefghij", n/10+1)[:n]
	dst := strings.Repeat("jihgfedcba", m/10+1)[:m]

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = levenshtein.Distance(src, dst)
	}
}

// BenchmarkDistance_Short benchmarks typical word-length inputs.
func BenchmarkDistance_Short(b *testing.B) {
	benchmarkDistance(b, 8, 10)
}

// BenchmarkDistance_Medium benchmarks 100x100 inputs.
func BenchmarkDistance_Medium(b *testing.B) {
	benchmarkDistance(b, 100, 100)
}

// BenchmarkDistance_Asymmetric benchmarks a short pattern against a
// long text, the usual fuzzy-search shape.
func BenchmarkDistance_Asymmetric(b *testing.B) {
	benchmarkDistance(b, 10, 1000)
}

// BenchmarkDistance_EqualFastPath measures the equality short-circuit.
func BenchmarkDistance_EqualFastPath(b *testing.B) {
	s := strings.Repeat("abcdefghij", 10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = levenshtein.Distance(s, s)
	}
}
