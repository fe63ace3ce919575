package chaincost_test

import (
	"fmt"

	"github.com/katalvlaran/relaypad/chaincost"
	"github.com/katalvlaran/relaypad/keypad"
)

// ExampleSolver_Solve scores "029A" through two and twenty-five relays with a
// single solver, so the deep solve reuses the shallow entries.
func ExampleSolver_Solve() {
	s := chaincost.NewSolver()

	shallow, err := s.Solve("029A", 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	deep, _ := s.Solve("029A", 25)

	fmt.Println("depth 2:", shallow)
	fmt.Println("depth 25:", deep)
	// Output:
	// depth 2: 68
	// depth 25: 82050061710
}

// ExampleSolver_Path replays one cheapest sequence issued to the numeric pad
// when the human pad drives the numeric pad with no relay in between.
func ExampleSolver_Path() {
	cmds, cost, _ := chaincost.NewSolver().Path("029A", 0)
	typed, _ := keypad.NumericLayout().Type('A', cmds)
	fmt.Println(typed, len(cmds), cost)
	// Output: 029A 12 12
}

// ExampleEngine_Cost shows that a press depends on where the relay cursor
// was left.
func ExampleEngine_Cost() {
	e := chaincost.NewEngine()
	fmt.Println(e.Cost(keypad.Left, keypad.Activate, 2))
	fmt.Println(e.Cost(keypad.Left, keypad.Down, 2))
	// Output:
	// 10
	// 8
}
