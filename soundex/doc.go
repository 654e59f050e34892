// Package soundex encodes names into 4-character phonetic codes per
// the NARA (American) Soundex rule set.
//
// 🚀 What is Soundex?
//
//	Soundex maps a surname to "<Letter>-DDD" so that names which sound
//	alike in English collapse to the same code: Ashcraft and Ashcroft
//	are both A-261. It is the classic index for:
//	  • Genealogy & census record lookup
//	  • Name deduplication across misspellings
//	  • Phonetic "sounds-like" search
//
// ✨ Key features:
//   - full NARA edge-case rules: double letters, same-class adjacency,
//     the H/W transparent bridge, vowel separation, first-letter
//     absorption
//   - Unicode-aware normalization: Núñez and Nunez encode identically
//     (canonical decomposition + combining-mark stripping via
//     golang.org/x/text)
//   - fixed 26-entry class table, no runtime map lookups
//   - deterministic, pure, concurrency-safe
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lexkit/soundex"
//
//	code, err := soundex.Encode("Washington") // "W-252"
//	if err != nil {
//	  // only soundex.ErrEmptyInput is possible
//	}
//
// The code always matches ^[A-Z]-\d{3}$ for Latin-initial names: the
// literal first letter, a dash, then exactly three digits, zero-padded
// on the right when fewer than three consonant classes survive.
//
// Complexity: one linear pass over the normalized name.
package soundex
