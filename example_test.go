package cdclsat

import "fmt"

// ExampleSolve demonstrates the library's entry point. It has no "Output:"
// comment (so `go test` compiles but does not run it as a doctest) since
// Solve's decision polarities are seeded from the Config and the chosen
// engine's walk order is not part of the documented contract.
func ExampleSolve() {
	// Problem: (¬x ∨ y) ∧ (¬y ∨ z) ∧ (x ∨ ¬z ∨ y) ∧ y
	cnf := CNF{
		NumVars: 3,
		Clauses: [][]int{
			{-1, 2},
			{-2, 3},
			{1, -3, 2},
			{2},
		},
	}

	result, err := Solve(cnf, Config{Verify: true})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if result.Verdict != Satisfiable {
		fmt.Println("not satisfiable")
		return
	}
	fmt.Println("satisfiable")
}
