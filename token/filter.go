// SPDX-License-Identifier: MIT

package token

import "strings"

// Filter decides whether a token survives tokenization. The package
// defines exactly three implementations — KeepFunc, StopSet and
// SubstringExclusion — one per supported exclusion shape, rather than a
// single parameter inspected for its runtime type.
type Filter interface {
	// Keep reports whether the token should be retained.
	Keep(tok string) bool
}

// KeepFunc adapts a plain predicate into a Filter.
type KeepFunc func(string) bool

// Keep wraps fn as a Filter; the token is retained when fn returns true.
func Keep(fn func(string) bool) Filter { return KeepFunc(fn) }

// Keep implements Filter.
func (f KeepFunc) Keep(tok string) bool { return f(tok) }

// StopSet drops tokens by exact match, the classic stopword list.
type StopSet map[string]struct{}

// Stopwords builds a StopSet from the given words. Matching is exact:
// pair it with Options.Lowercase when the list is lower case.
func Stopwords(words ...string) Filter {
	set := make(StopSet, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}

	return set
}

// Keep implements Filter.
func (s StopSet) Keep(tok string) bool {
	_, stopped := s[tok]

	return !stopped
}

// SubstringExclusion drops every token containing the substring.
type SubstringExclusion string

// ExcludeSubstring builds a SubstringExclusion for sub.
func ExcludeSubstring(sub string) Filter { return SubstringExclusion(sub) }

// Keep implements Filter.
func (s SubstringExclusion) Keep(tok string) bool {
	return !strings.Contains(tok, string(s))
}
