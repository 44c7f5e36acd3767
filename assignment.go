package cdclsat

// Value is a three-valued truth value.
type Value uint8

const (
	Undefined Value = iota
	True
	False
)

func (v Value) String() string {
	switch v {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "undefined"
	}
}

// Assignment holds, for every variable in [0, N): its truth value, the
// decision level at which it was set, and its implication-graph reason (the
// falsified literals of the unit clause that forced it; empty for a
// decision). See spec.md §3 and §4.2.
type Assignment struct {
	n       int
	values  []Value
	levels  []int
	reasons [][]Literal
}

// NewAssignment allocates state for n variables, all Undefined at level 0.
func NewAssignment(n int) *Assignment {
	return &Assignment{
		n:       n,
		values:  make([]Value, n),
		levels:  make([]int, n),
		reasons: make([][]Literal, n),
	}
}

// Len returns the number of variables this assignment covers.
func (a *Assignment) Len() int { return a.n }

// ValueOf returns the current truth value of v.
func (a *Assignment) ValueOf(v Var) Value { return a.values[v] }

// Level returns the decision level at which v was assigned (0 if still
// Undefined, per the invariant in spec.md §3).
func (a *Assignment) Level(v Var) int { return a.levels[v] }

// Reason returns the reason literals recorded for v: empty for a decision,
// non-empty for a propagated variable (spec.md's implication graph
// invariant: a variable with a non-empty reason was not a decision).
func (a *Assignment) Reason(v Var) []Literal { return a.reasons[v] }

// Assign sets v's value, level, and reason. v must currently be Undefined;
// violating that is an internal invariant violation and panics (spec.md
// §7: "assigning an already-assigned variable" is a program bug, never
// reachable on well-formed input).
func (a *Assignment) Assign(v Var, value Value, level int, reason []Literal) {
	if a.values[v] != Undefined {
		panic("cdclsat: assign of already-assigned variable")
	}
	a.values[v] = value
	a.levels[v] = level
	a.reasons[v] = reason
}

// Evaluate returns the truth value of lit under the current assignment, per
// spec.md §3.
func (a *Assignment) Evaluate(lit Literal) Value {
	val := a.values[lit.Var()]
	if val == Undefined {
		return Undefined
	}
	if lit.IsNegative() {
		if val == True {
			return False
		}
		return True
	}
	return val
}

// StateOfClause returns True if any literal evaluates True, False if all
// literals evaluate False, and Undefined otherwise.
func (a *Assignment) StateOfClause(c Clause) Value {
	sawUndefined := false
	for _, lit := range c.Literals {
		switch a.Evaluate(lit) {
		case True:
			return True
		case Undefined:
			sawUndefined = true
		}
	}
	if sawUndefined {
		return Undefined
	}
	return False
}

// StateOfFormula returns True if every clause is True, False if any clause
// is False, and Undefined otherwise.
func (a *Assignment) StateOfFormula(clauses []Clause) Value {
	sawUndefined := false
	for _, c := range clauses {
		switch a.StateOfClause(c) {
		case False:
			return False
		case Undefined:
			sawUndefined = true
		}
	}
	if sawUndefined {
		return Undefined
	}
	return True
}

// FindFalsified returns some clause that evaluates False under the current
// assignment, or ok=false if none does.
func (a *Assignment) FindFalsified(clauses []Clause) (c Clause, ok bool) {
	for _, cl := range clauses {
		if a.StateOfClause(cl) == False {
			return cl, true
		}
	}
	return Clause{}, false
}

// UnitLiteral returns the sole Undefined literal of c when every other
// literal evaluates False, or ok=false otherwise.
func (a *Assignment) UnitLiteral(c Clause) (lit Literal, ok bool) {
	var candidate Literal
	found := false
	for _, l := range c.Literals {
		switch a.Evaluate(l) {
		case True:
			return 0, false
		case Undefined:
			if found {
				return 0, false
			}
			candidate = l
			found = true
		}
	}
	if !found {
		return 0, false
	}
	return candidate, true
}

// Backtrack unassigns every variable with decision level greater than L,
// resetting its level to 0 and clearing its reason, and re-inserts it into
// heap if not already present there. Backtracking to the same level twice
// is idempotent: the second call finds nothing above L and is a no-op.
func (a *Assignment) Backtrack(level int, heap *ActivityHeap) {
	for v := 0; v < a.n; v++ {
		vv := Var(v)
		if a.levels[vv] > level {
			a.values[vv] = Undefined
			a.levels[vv] = 0
			a.reasons[vv] = nil
			heap.PushVar(vv)
		}
	}
}
