// SPDX-License-Identifier: MIT

package soundex

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// codeDigits is the number of digits following the first letter.
const codeDigits = 3

// stripMarks decomposes to NFD, removes combining marks (Unicode
// category Mn) and recomposes. Stripping — rather than classifying the
// marks as unscored separators — is what keeps canonically equivalent
// spellings identical: a mark landing between two same-class consonants
// must not break their adjacency.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Encode — NARA Soundex
//
// Description:
//
//	Encode reduces a name to its 4-character phonetic code, formatted
//	"<Letter>-DDD". Names that sound alike map to the same code.
//
// Algorithm Outline:
//  1. Normalize: canonical decomposition, strip combining marks,
//     uppercase. "Núñez" becomes "NUNEZ".
//  2. Emit the first character literally as the code's letter.
//  3. Scan the remaining characters left to right, carrying the class
//     of the previously scored character (seeded with the first
//     letter's own class, which makes an immediately matching first
//     consonant be absorbed — "Pfister" → P-236, not P-123):
//     - consonant whose class differs from the carried one → emit its
//     digit and carry its class;
//     - consonant with the same class → collapsed, carry unchanged;
//     - vowel (A E I O U) or unscored character (Y, digits,
//     punctuation) → carry resets, the next consonant always codes;
//     - H or W → transparent: carry survives, so same-class
//     consonants around it collapse ("Ashcraft" → A-261).
//  4. Stop after three digits; right-pad with zeros if fewer survive.
//
// Errors:
//   - ErrEmptyInput — name is empty, or contains only combining marks
//     (nothing remains to serve as the leading letter).
//
// Complexity: O(len(name)) time, constant extra space.
func Encode(name string) (string, error) {
	if name == "" {
		return "", ErrEmptyInput
	}

	normalized, _, err := transform.String(stripMarks, name)
	if err != nil {
		// transform only fails on malformed input; fall back to the
		// raw name rather than refusing to encode.
		normalized = name
	}
	normalized = strings.ToUpper(normalized)

	letters := []rune(normalized)
	if len(letters) == 0 {
		return "", ErrEmptyInput
	}

	first := letters[0]
	digits := make([]byte, 0, codeDigits)
	prev := classOf(first) // first-letter absorption seed

	for _, r := range letters[1:] {
		if len(digits) == codeDigits {
			break
		}
		switch cl := classOf(r); cl {
		case classVowel, classNone:
			prev = classNone
		case classBridge:
			// H/W: carry survives, neighbors may still collapse.
		default:
			if cl != prev {
				digits = append(digits, '0'+byte(cl))
			}
			prev = cl
		}
	}
	for len(digits) < codeDigits {
		digits = append(digits, '0')
	}

	var b strings.Builder
	b.Grow(len(string(first)) + 1 + codeDigits)
	b.WriteRune(first)
	b.WriteByte('-')
	b.Write(digits)

	return b.String(), nil
}
