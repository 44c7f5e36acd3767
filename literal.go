// Package cdclsat implements a conflict-driven clause-learning SAT solver
// for formulas in conjunctive normal form, plus two linear-time special
// case solvers (2-SAT, Horn) and a brute-force oracle used to cross-check
// the CDCL engine in tests.
package cdclsat

import "fmt"

// Var is an integer variable identity in [0, N) for some formula with N
// declared variables.
type Var uint32

// Literal is a variable together with a polarity, encoded as 2*var+bit so
// that it can index directly into a 2*N-slot array and so that negation is
// a single XOR. Bit 0 clear means positive, bit 0 set means negated.
type Literal uint32

// NewLiteral builds the literal naming v with the given polarity (true for
// a positive occurrence).
func NewLiteral(v Var, positive bool) Literal {
	lit := Literal(v) << 1
	if !positive {
		lit |= 1
	}
	return lit
}

// LiteralFromInt converts a DIMACS-style signed integer (i != 0) to a
// Literal: positive i names variable i-1 positively, negative i names
// variable |i|-1 negated.
func LiteralFromInt(i int) Literal {
	if i == 0 {
		panic("cdclsat: literal 0 is not a valid DIMACS literal")
	}
	v := i
	positive := true
	if v < 0 {
		v = -v
		positive = false
	}
	return NewLiteral(Var(v-1), positive)
}

// Var returns the variable named by lit.
func (lit Literal) Var() Var { return Var(lit >> 1) }

// IsPositive reports whether lit is an unnegated occurrence of its variable.
func (lit Literal) IsPositive() bool { return lit&1 == 0 }

// IsNegative reports whether lit is a negated occurrence of its variable.
func (lit Literal) IsNegative() bool { return lit&1 == 1 }

// Negate returns the complement of lit. Complementation is O(1) and its
// identity is stable regardless of variable ordering.
func (lit Literal) Negate() Literal { return lit ^ 1 }

// Int renders lit back into DIMACS signed-integer form.
func (lit Literal) Int() int {
	n := int(lit.Var()) + 1
	if lit.IsNegative() {
		n = -n
	}
	return n
}

// String implements fmt.Stringer for debugging and trace logging.
func (lit Literal) String() string {
	if lit.IsNegative() {
		return fmt.Sprintf("-%d", lit.Var()+1)
	}
	return fmt.Sprintf("%d", lit.Var()+1)
}
