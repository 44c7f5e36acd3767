package cdclsat

// CNF is a formula in conjunctive normal form expressed the way the DIMACS
// collaborator (and any other caller) hands it to the core: a fixed
// variable count plus a list of clauses, each clause a list of non-zero
// signed integers (spec.md §6). This is the only input shape the core's
// constructors accept.
type CNF struct {
	NumVars int
	Clauses [][]int
}

// literalClauses converts every clause of c to its Literal-encoded form.
func (c CNF) literalClauses() [][]Literal {
	out := make([][]Literal, len(c.Clauses))
	for i, cl := range c.Clauses {
		lits := make([]Literal, len(cl))
		for j, n := range cl {
			lits[j] = LiteralFromInt(n)
		}
		out[i] = lits
	}
	return out
}

// maxClauseLen returns the length of c's longest clause.
func (c CNF) maxClauseLen() int {
	n := 0
	for _, cl := range c.Clauses {
		if len(cl) > n {
			n = len(cl)
		}
	}
	return n
}

// isHorn reports whether every clause of c has at most one positive
// literal (spec.md §4.7/§4.8).
func (c CNF) isHorn() bool {
	for _, cl := range c.Clauses {
		positives := 0
		for _, n := range cl {
			if n > 0 {
				positives++
				if positives > 1 {
					return false
				}
			}
		}
	}
	return true
}

// is2SAT reports whether every clause of c has at most two literals.
func (c CNF) is2SAT() bool {
	return c.maxClauseLen() <= 2
}
