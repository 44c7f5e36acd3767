package cdclsat

// dispatch picks an engine for cnf using the structural priority order
// from spec.md §4.8: 2-SAT is checked before Horn because a formula can
// satisfy both (a clause of length <= 2 with one positive literal is
// both a valid 2-SAT clause and a valid Horn clause), and the 2-SAT
// engine's linear-time SCC construction is strictly cheaper than Horn's
// fixpoint. Anything neither shape fits falls through to the general
// CDCL engine. original_source/src/main.rs's quick_solver/khorn_solver
// split never wired an automatic 2-SAT path into its own dispatch (it
// only ever chose between --khorn and CDCL from the command line); this
// dispatcher adds that missing branch since spec.md requires it.
func dispatch(cnf CNF) SolverKind {
	switch {
	case cnf.is2SAT():
		return TwoSAT
	case cnf.isHorn():
		return Horn
	default:
		return CDCL
	}
}
