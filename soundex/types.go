// SPDX-License-Identifier: MIT
// Package soundex: sentinel errors, the phonetic class enumeration and
// the fixed letter→class table.
//
// Error policy (library-wide convention):
//   - Only package-level sentinel errors are exposed.
//   - Callers MUST branch with errors.Is(err, ErrX).
//   - No panics on user input; Encode is total for non-empty names.

package soundex

import "errors"

// ErrEmptyInput is returned by Encode for the empty string. The legacy
// rule set leaves "" undefined (there is no first letter to emit), so
// the library rejects it explicitly instead of crashing or inventing a
// degenerate code.
var ErrEmptyInput = errors.New("soundex: input name must be non-empty")

// class is the phonetic value of a single normalized letter.
//
// Positive values are the six NARA consonant classes and double as the
// emitted digit. The three non-positive markers drive the reduction
// scan: vowels and unscored characters separate neighboring consonants
// (both sides get coded), while H and W are transparent bridges (two
// same-class consonants around them collapse into one digit).
type class int8

const (
	// classNone marks characters with no phonetic value that still
	// separate their neighbors: Y, digits, punctuation, non-Latin.
	classNone class = 0
	// classVowel marks A, E, I, O, U: never coded, always separating.
	classVowel class = -1
	// classBridge marks H and W: never coded, never separating.
	classBridge class = -2
)

// classTable maps 'A'..'Z' to phonetic classes:
//
//	1 ← B F P V      4 ← L
//	2 ← C G J K Q S X Z  5 ← M N
//	3 ← D T          6 ← R
var classTable = [26]class{
	classVowel,  // A
	1,           // B
	2,           // C
	3,           // D
	classVowel,  // E
	1,           // F
	2,           // G
	classBridge, // H
	classVowel,  // I
	2,           // J
	2,           // K
	4,           // L
	5,           // M
	5,           // N
	classVowel,  // O
	1,           // P
	2,           // Q
	6,           // R
	2,           // S
	3,           // T
	classVowel,  // U
	1,           // V
	classBridge, // W
	2,           // X
	classNone,   // Y
	2,           // Z
}

// classOf resolves the class of a normalized (uppercased, mark-free)
// character. Anything outside A–Z is unscored.
func classOf(r rune) class {
	if r < 'A' || r > 'Z' {
		return classNone
	}

	return classTable[r-'A']
}
