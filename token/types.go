// SPDX-License-Identifier: MIT
// Package token: options, defaults and sentinel errors.

package token

import (
	"errors"
	"regexp"
)

// ErrNilPattern is returned by Tokenize when Options.Pattern is nil.
// A zero Options value is intentionally unusable; start from
// DefaultOptions instead.
var ErrNilPattern = errors.New("token: Options.Pattern must not be nil")

// DefaultPatternExpr is the default token shape: a maximal run of
// Unicode letters and numbers. Punctuation and whitespace separate
// tokens and never appear inside one.
const DefaultPatternExpr = `[\p{L}\p{N}]+`

// DefaultLowercase folds tokens to lower case by default so that
// downstream frequency counting is case-insensitive.
const DefaultLowercase = true

// defaultPattern is compiled once; DefaultOptions hands out the shared
// instance (regexp matching is safe for concurrent use).
var defaultPattern = regexp.MustCompile(DefaultPatternExpr)

// Options configures Tokenize.
//
// Fields:
//   - Pattern   — every non-overlapping match becomes a candidate
//     token. Must be non-nil.
//   - Lowercase — fold each token with strings.ToLower before
//     filtering.
//   - Filters   — exclusion chain; a token is kept only if every
//     filter keeps it. Order follows the slice.
type Options struct {
	Pattern   *regexp.Regexp
	Lowercase bool
	Filters   []Filter
}

// DefaultOptions returns Options with the documented defaults:
// DefaultPatternExpr, DefaultLowercase, no filters.
func DefaultOptions() Options {
	return Options{
		Pattern:   defaultPattern,
		Lowercase: DefaultLowercase,
	}
}
