// Package grapheme segments strings into Unicode grapheme clusters —
// the "user-perceived characters" of a text.
//
// A grapheme cluster may span several code points (a base letter plus
// combining accents, an emoji with modifiers), yet it occupies exactly
// one position for a human reader. Algorithms that charge per character,
// such as edit distances, must therefore operate on clusters rather
// than on bytes or runes.
//
// The package is a thin, allocation-conscious wrapper over
// github.com/rivo/uniseg (UAX #29 segmentation):
//
//	grapheme.Clusters("héllo")  // ["h" "é" "l" "l" "o"] even in NFD form
//	grapheme.Count("née")       // 3
//
// All functions are pure and safe for concurrent use.
package grapheme
