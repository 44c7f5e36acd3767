package cdclsat

// solveTwoSAT decides a 2-SAT formula in linear time by building the
// implication graph (each clause (a ∨ b) contributes edges ¬a→b and
// ¬b→a) and checking whether any variable's two literals fall in the
// same strongly connected component. This is the Go-native reading of
// original_source/src/sat2.rs, which built the same graph with
// petgraph::DiGraph and used petgraph::algo::tarjan_scc; no strongly
// connected components library exists anywhere in the retrieved corpus,
// so Tarjan's algorithm is hand-rolled here (see DESIGN.md).
//
// solveTwoSAT assumes every clause has at most two literals; callers must
// check cnf.is2SAT() first (the dispatcher does; direct callers of
// Config{Kind: TwoSAT} get ErrNoSolverForFormula instead, see solve.go).
func solveTwoSAT(cnf CNF) Result {
	n := cnf.NumVars
	graph := make([][]int, 2*n)
	addEdge := func(from, to Literal) {
		graph[from] = append(graph[from], int(to))
	}

	for _, cl := range cnf.Clauses {
		switch len(cl) {
		case 0:
			return Result{Verdict: Unsatisfiable, Stats: Stats{Engine: "2sat"}}
		case 1:
			lit := LiteralFromInt(cl[0])
			addEdge(lit.Negate(), lit)
		case 2:
			a := LiteralFromInt(cl[0])
			b := LiteralFromInt(cl[1])
			addEdge(a.Negate(), b)
			addEdge(b.Negate(), a)
		default:
			panic("cdclsat: solveTwoSAT called on a clause with more than two literals")
		}
	}

	comp := tarjanSCC(graph)

	model := make(Model, n)
	for v := 0; v < n; v++ {
		pos := int(NewLiteral(Var(v), true))
		neg := int(NewLiteral(Var(v), false))
		if comp[pos] == comp[neg] {
			return Result{Verdict: Unsatisfiable, Stats: Stats{Engine: "2sat"}}
		}
		// Tarjan numbers components in completion order, which is a
		// reverse topological order of the condensation; a literal whose
		// component completes before its negation's must be the one an
		// implication chain settles on, so it is assigned true.
		model[v] = comp[pos] < comp[neg]
	}
	return Result{Verdict: Satisfiable, Model: model, Stats: Stats{Engine: "2sat"}}
}

// tarjanSCC returns, for each node of graph, the index of its strongly
// connected component. Components are numbered in the order Tarjan's
// algorithm completes them (0 for the first SCC popped off the stack).
func tarjanSCC(graph [][]int) []int {
	n := len(graph)
	index := make([]int, n)
	lowlink := make([]int, n)
	onStack := make([]bool, n)
	comp := make([]int, n)
	for i := range index {
		index[i] = -1
	}

	var stack []int
	nextIndex := 0
	nextComp := 0

	var strongconnect func(v int)
	strongconnect = func(v int) {
		index[v] = nextIndex
		lowlink[v] = nextIndex
		nextIndex++
		stack = append(stack, v)
		onStack[v] = true

		for _, w := range graph[v] {
			switch {
			case index[w] == -1:
				strongconnect(w)
				if lowlink[w] < lowlink[v] {
					lowlink[v] = lowlink[w]
				}
			case onStack[w]:
				if index[w] < lowlink[v] {
					lowlink[v] = index[w]
				}
			}
		}

		if lowlink[v] == index[v] {
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				comp[w] = nextComp
				if w == v {
					break
				}
			}
			nextComp++
		}
	}

	for v := 0; v < n; v++ {
		if index[v] == -1 {
			strongconnect(v)
		}
	}
	return comp
}
