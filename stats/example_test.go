package stats_test

import (
	"fmt"

	"github.com/katalvlaran/lexkit/stats"
	"github.com/katalvlaran/lexkit/token"
)

// Example demonstrates the full counting pipeline: tokenize, count,
// rank.
func Example() {
	text := "the cat sat on the mat and the cat slept"
	tokens, _ := token.Tokenize(text, token.DefaultOptions())

	freq := stats.Frequencies(tokens)
	fmt.Println("total:", stats.Total(freq), "unique:", stats.Unique(freq))
	for _, tc := range stats.TopK(freq, 3) {
		fmt.Printf("%s=%d\n", tc.Token, tc.Count)
	}
	// Output:
	// total: 10 unique: 7
	// the=3
	// cat=2
	// and=1
}
