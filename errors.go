package cdclsat

import "github.com/pkg/errors"

// Sentinel errors returned by the package, wrapped with context via
// github.com/pkg/errors so callers can both errors.Is against these and
// read a human-readable chain (spec.md §7).
var (
	// ErrInvalidLiteral is returned when a clause contains the literal 0,
	// which DIMACS reserves as a clause terminator.
	ErrInvalidLiteral = errors.New("cdclsat: literal 0 is not a valid variable reference")

	// ErrVariableOutOfRange is returned when a clause references a
	// variable index at or beyond the formula's declared variable count.
	ErrVariableOutOfRange = errors.New("cdclsat: variable index out of declared range")

	// ErrNoSolverForFormula is returned when a caller pins a specialized
	// SolverKind (TwoSAT or Horn) against a formula that does not satisfy
	// that engine's structural precondition.
	ErrNoSolverForFormula = errors.New("cdclsat: formula does not meet the requested engine's structural precondition")

	// ErrMalformedDIMACS is returned by ParseDIMACS on syntactically
	// invalid input (a non-numeric token, or a missing, repeated,
	// misplaced or unparsable problem line). A final clause lacking its
	// trailing 0 is accepted, not rejected.
	ErrMalformedDIMACS = errors.New("cdclsat: malformed DIMACS input")
)
