package cdclsat

// Clause is an ordered sequence of literals: original clauses come from the
// input formula, learned clauses are produced by conflict analysis. Once
// inserted into a ClauseStore a clause is identified by its index there.
type Clause struct {
	Literals []Literal
	Learned  bool
}

// IsEmpty reports whether c has no literals. An empty clause is
// unsatisfiable on sight.
func (c Clause) IsEmpty() bool { return len(c.Literals) == 0 }

// IsUnit reports whether c has exactly one literal, which is forced at
// decision level 0 when the clause is inserted.
func (c Clause) IsUnit() bool { return len(c.Literals) == 1 }

// ClauseStore is an append-only sequence of clauses indexed by insertion
// order, as described in spec.md §4.4. It distinguishes empty and unit
// clauses during insertion: unit clauses force their literal immediately
// and are not themselves stored.
type ClauseStore struct {
	clauses []Clause
}

// NewClauseStore returns an empty store.
func NewClauseStore() *ClauseStore {
	return &ClauseStore{}
}

// Len returns the number of stored (non-unit, non-empty) clauses.
func (s *ClauseStore) Len() int { return len(s.clauses) }

// At returns the clause at index i.
func (s *ClauseStore) At(i int) Clause { return s.clauses[i] }

// All returns every stored clause for sequential iteration. The returned
// slice must not be mutated by callers.
func (s *ClauseStore) All() []Clause { return s.clauses }

// insertResult classifies how Insert handled a clause.
type insertResult int

const (
	insertStored insertResult = iota
	insertEmpty
	insertUnit
)

// insert appends lits as a new clause, reporting whether it was stored
// outright, discovered to be empty (formula is UNSAT), or a unit (its
// sole literal should be forced by the caller instead of being stored).
func (s *ClauseStore) insert(lits []Literal, learned bool) (insertResult, Clause) {
	c := Clause{Literals: lits, Learned: learned}
	switch {
	case c.IsEmpty():
		return insertEmpty, c
	case c.IsUnit():
		return insertUnit, c
	default:
		s.clauses = append(s.clauses, c)
		return insertStored, c
	}
}
