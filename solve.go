package cdclsat

import "github.com/pkg/errors"

// Solve decides cnf according to cfg and returns its verdict. With the
// zero Config it runs the automatic structural dispatcher (spec.md
// §4.8); pinning Kind to TwoSAT or Horn against a formula that does not
// meet that engine's precondition returns ErrNoSolverForFormula rather
// than silently falling back, since a caller who asked for a specific
// engine should learn their formula does not fit it.
func Solve(cnf CNF, cfg Config) (Result, error) {
	if err := validateCNF(cnf); err != nil {
		return Result{}, err
	}

	kind := cfg.Kind
	if kind == Auto {
		kind = dispatch(cnf)
	}

	var result Result
	switch kind {
	case TwoSAT:
		if !cnf.is2SAT() {
			return Result{}, errors.Wrap(ErrNoSolverForFormula, "2-SAT engine requires every clause to have at most two literals")
		}
		result = solveTwoSAT(cnf)
	case Horn:
		if !cnf.isHorn() {
			return Result{}, errors.Wrap(ErrNoSolverForFormula, "Horn engine requires at most one positive literal per clause")
		}
		result = solveHorn(cnf)
	case Exhaustive:
		result = solveExhaustive(cnf, cfg)
	default:
		result = newCDCLEngine(cnf, cfg).solve(cfg)
	}

	if result.Verdict == Satisfiable && cfg.Verify && !Verify(cnf, result.Model) {
		panic("cdclsat: internal invariant violation: engine reported a model that does not satisfy the formula")
	}
	return result, nil
}

// validateCNF checks that every clause references only literal 0 never
// and variable indices within [1, cnf.NumVars] (spec.md §6, §7).
func validateCNF(cnf CNF) error {
	for ci, cl := range cnf.Clauses {
		for _, lit := range cl {
			if lit == 0 {
				return errors.Wrapf(ErrInvalidLiteral, "clause %d", ci)
			}
			v := lit
			if v < 0 {
				v = -v
			}
			if v > cnf.NumVars {
				return errors.Wrapf(ErrVariableOutOfRange, "clause %d references variable %d, declared count is %d", ci, v, cnf.NumVars)
			}
		}
	}
	return nil
}
