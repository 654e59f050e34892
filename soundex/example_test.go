package soundex_test

import (
	"fmt"

	"github.com/katalvlaran/lexkit/soundex"
)

// ExampleEncode encodes a surname into its census-index code.
func ExampleEncode() {
	code, _ := soundex.Encode("Washington")
	fmt.Println(code)
	// Output:
	// W-252
}

// ExampleEncode_bridging shows the H/W bridge: the S and C of Ashcraft
// share class 2 and the H between them does not separate them, so the
// pair collapses into a single digit.
func ExampleEncode_bridging() {
	a, _ := soundex.Encode("Ashcraft")
	b, _ := soundex.Encode("Ashcroft")
	fmt.Println(a, b, a == b)
	// Output:
	// A-261 A-261 true
}

// ExampleEncode_padding shows zero-padding when fewer than three
// consonant classes survive reduction.
func ExampleEncode_padding() {
	code, _ := soundex.Encode("Lee")
	fmt.Println(code)
	// Output:
	// L-000
}
