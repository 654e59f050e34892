// SPDX-License-Identifier: MIT

package token

import "strings"

// Tokenize — regex split + filter composition
//
// Description:
//
//	Tokenize scans text for every match of opts.Pattern, optionally
//	lowercases each match, and keeps only the matches that survive
//	every configured Filter. Tokens are returned in document order;
//	duplicates are preserved (counting is the stats package's job).
//
// Errors:
//   - ErrNilPattern — opts.Pattern is nil.
//
// A text with no matches (or whose matches are all filtered out)
// yields a nil slice and no error.
//
// Complexity: O(len(text)) for the scan plus O(tokens·filters).
func Tokenize(text string, opts Options) ([]string, error) {
	if opts.Pattern == nil {
		return nil, ErrNilPattern
	}

	matches := opts.Pattern.FindAllString(text, -1)
	if matches == nil {
		return nil, nil
	}

	var out []string
	for _, tok := range matches {
		if opts.Lowercase {
			tok = strings.ToLower(tok)
		}
		if !keptByAll(tok, opts.Filters) {
			continue
		}
		out = append(out, tok)
	}

	return out, nil
}

// keptByAll reports whether every filter keeps tok.
func keptByAll(tok string, filters []Filter) bool {
	for _, f := range filters {
		if !f.Keep(tok) {
			return false
		}
	}

	return true
}
