package score_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/relaypad/score"
)

// ExampleScorer_Score parses the reference batch and scores it at both depths
// on one Scorer.
func ExampleScorer_Score() {
	codes, err := score.ParseCodes(strings.NewReader("029A\n980A\n179A\n456A\n379A\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	sc := score.New()
	shallow, _ := sc.Score(context.Background(), codes, 2)
	fmt.Println("depth 2:", shallow.Total)
	for _, r := range shallow.Results {
		fmt.Printf("%s %d×%d\n", r.Code.Raw, r.Cost, r.Code.Value)
	}
	// Output:
	// depth 2: 126384
	// 029A 68×29
	// 980A 60×980
	// 179A 68×179
	// 456A 64×456
	// 379A 64×379
}
