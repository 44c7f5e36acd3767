package cdclsat

// Verify reports whether model satisfies every clause of cnf: every clause
// must contain at least one literal that evaluates true under model
// (spec.md §4.9). A model shorter than cnf.NumVars never verifies. It runs
// in O(total literal occurrences) and is used both as an internal safety
// net (Config.Verify) and as a standalone oracle tests can call directly
// to cross-check the specialized engines.
func Verify(cnf CNF, model Model) bool {
	if len(model) < cnf.NumVars {
		return false
	}
	for _, clause := range cnf.Clauses {
		satisfied := false
		for _, n := range clause {
			v := n
			positive := true
			if v < 0 {
				v = -v
				positive = false
			}
			idx := v - 1
			if idx < 0 || idx >= len(model) {
				return false
			}
			if model[idx] == positive {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	return true
}
