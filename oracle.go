package cdclsat

import "time"

// solveExhaustive decides a formula by trying every one of the 2^N total
// assignments, true before false for each variable in turn. It exists to
// cross-check the CDCL, 2-SAT, and Horn engines in tests, not for
// production solving (spec.md §4.10): it is exponential and carries no
// heuristics. Grounded on original_source/src/tautosolver.rs's ssolve,
// including its deadline-propagation shape.
func solveExhaustive(cnf CNF, cfg Config) Result {
	start := time.Now()
	deadline, hasDeadline := cfg.deadlineAt(start)

	assigns := make([]bool, cnf.NumVars)
	sat, timedOut := ssolve(cnf, assigns, 0, deadline, hasDeadline)

	switch {
	case timedOut:
		return Result{Verdict: TimedOut, Stats: Stats{Engine: "exhaustive"}}
	case !sat:
		return Result{Verdict: Unsatisfiable, Stats: Stats{Engine: "exhaustive"}}
	default:
		model := make(Model, len(assigns))
		copy(model, assigns)
		return Result{Verdict: Satisfiable, Model: model, Stats: Stats{Engine: "exhaustive"}}
	}
}

// ssolve assigns variable i to true, recurses, and falls back to false
// only if the true branch neither times out nor finds a model. At i ==
// len(assigns) every variable is fixed, so the candidate is simply
// checked with Verify.
func ssolve(cnf CNF, assigns []bool, i int, deadline time.Time, hasDeadline bool) (sat bool, timedOut bool) {
	if hasDeadline && time.Now().After(deadline) {
		return false, true
	}
	if i == len(assigns) {
		return Verify(cnf, Model(assigns)), false
	}

	assigns[i] = true
	if sat, timedOut := ssolve(cnf, assigns, i+1, deadline, hasDeadline); timedOut {
		return false, true
	} else if sat {
		return true, false
	}

	assigns[i] = false
	return ssolve(cnf, assigns, i+1, deadline, hasDeadline)
}
