// Package token splits raw text into word tokens and filters them
// through a small, closed set of exclusion rules.
//
// 🚀 What is the tokenizer?
//
//	A regex-driven splitter plus filter composition — the front door of
//	the library's counting pipeline:
//	  • Split: every match of Options.Pattern becomes a candidate token
//	  • Fold:  optional lowercasing for case-insensitive statistics
//	  • Filter: each token must survive every configured Filter
//
// ✨ Key features:
//   - Unicode-aware default pattern: runs of letters and numbers,
//     so "naïve" or "日本語" tokenize as readily as ASCII
//   - exactly three filter kinds, each an explicit type — a predicate
//     (KeepFunc), an exact stop-set (StopSet) and a substring
//     exclusion (SubstringExclusion) — instead of one dynamically
//     typed "filter" parameter
//   - deterministic: tokens come back in document order
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lexkit/token"
//
//	opts := token.DefaultOptions()
//	opts.Filters = []token.Filter{
//	  token.Stopwords("the", "a", "an"),
//	  token.Keep(func(tok string) bool { return len(tok) > 2 }),
//	}
//	tokens, err := token.Tokenize("The quick brown fox", opts)
//	// → ["quick" "brown" "fox"]
//
// Complexity: one regex scan plus one pass per filter.
package token
