package cdclsat

import (
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// cdclEngine is the conflict-driven clause-learning solver: the general
// engine every other dispatcher path falls back to (spec.md §4.5). Its
// propagation loop rescans every stored clause each pass rather than
// maintaining watch lists (spec.md §9's "either is acceptable" leaves this
// the simpler, faithful choice — see DESIGN.md), and its conflict analysis
// walks the implication graph backward to the decision literals rather
// than stopping at the first unique implication point, matching
// original_source/src/cdcl.rs exactly.
type cdclEngine struct {
	assign *Assignment
	heap   *ActivityHeap
	store  *ClauseStore
	level  int
	rng    *rand.Rand
	log    *zap.Logger

	unsat bool // set at construction time by a contradictory unit clause

	deadline    time.Time
	hasDeadline bool
	timedOut    bool

	decisions    int
	propagations int
	conflicts    int
}

func newCDCLEngine(cnf CNF, cfg Config) *cdclEngine {
	e := &cdclEngine{
		assign: NewAssignment(cnf.NumVars),
		heap:   NewActivityHeap(cnf.NumVars),
		store:  NewClauseStore(),
		rng:    cfg.rand(),
		log:    cfg.logger(),
	}
	for _, lits := range cnf.literalClauses() {
		e.addInputClause(lits)
	}
	return e
}

// addInputClause installs one clause of the original formula: empty
// clauses make the formula unsatisfiable outright, unit clauses force
// their literal at decision level 0 instead of being stored (spec.md §3's
// Clause description), everything else is appended to the store.
func (e *cdclEngine) addInputClause(lits []Literal) {
	if e.unsat {
		return
	}
	switch len(lits) {
	case 0:
		e.unsat = true
	case 1:
		if !e.forceLevelZero(lits[0]) {
			e.unsat = true
		}
	default:
		e.store.insert(lits, false)
	}
}

// forceLevelZero assigns lit's variable so lit evaluates True at decision
// level 0 with no reason, or reports false if lit is already falsified.
func (e *cdclEngine) forceLevelZero(lit Literal) bool {
	switch e.assign.Evaluate(lit) {
	case True:
		return true
	case False:
		return false
	default:
		val := True
		if lit.IsNegative() {
			val = False
		}
		e.assign.Assign(lit.Var(), val, 0, nil)
		return true
	}
}

// solve runs the CDCL loop to completion and reports the verdict plus
// telemetry. It never mutates cfg-level state beyond what was captured at
// construction.
func (e *cdclEngine) solve(cfg Config) Result {
	if e.unsat {
		return Result{Verdict: Unsatisfiable, Stats: e.stats()}
	}

	start := time.Now()
	e.deadline, e.hasDeadline = cfg.deadlineAt(start)

	for {
		e.propagate()

		if e.pastDeadline() {
			return Result{Verdict: TimedOut, Stats: e.stats()}
		}

		switch e.assign.StateOfFormula(e.store.All()) {
		case False:
			if e.level == 0 {
				return Result{Verdict: Unsatisfiable, Stats: e.stats()}
			}
			e.conflicts++
			backjump, learned := e.analyzeConflict()
			e.log.Debug("conflict",
				zap.Int("level", e.level),
				zap.Int("backjump", backjump),
				zap.Int("learnedSize", len(learned)))
			e.backtrack(backjump)
			if !e.learn(learned) {
				return Result{Verdict: Unsatisfiable, Stats: e.stats()}
			}
			e.heap.Decay()
			continue

		case True:
			return Result{Verdict: Satisfiable, Model: e.model(), Stats: e.stats()}

		default:
			e.level++
			if e.decide() {
				return Result{Verdict: Satisfiable, Model: e.model(), Stats: e.stats()}
			}
		}
	}
}

func (e *cdclEngine) pastDeadline() bool {
	if !e.hasDeadline {
		return false
	}
	if time.Now().After(e.deadline) {
		e.timedOut = true
	}
	return e.timedOut
}

// propagate repeatedly scans every stored clause, assigning the sole
// undefined literal of any unit clause, until a full pass makes no new
// assignment (spec.md §4.5 step 1).
func (e *cdclEngine) propagate() {
	for {
		progressed := false
		for _, c := range e.store.All() {
			lit, ok := e.assign.UnitLiteral(c)
			if !ok {
				continue
			}
			val := True
			if lit.IsNegative() {
				val = False
			}
			reason := otherLiterals(c, lit)
			e.assign.Assign(lit.Var(), val, e.level, reason)
			e.propagations++
			progressed = true
		}
		if !progressed {
			return
		}
	}
}

// otherLiterals returns c's literals other than forced, in order. These
// are exactly the literals that were False when c became unit, i.e. the
// implication graph reason for forced's variable (spec.md §3).
func otherLiterals(c Clause, forced Literal) []Literal {
	out := make([]Literal, 0, len(c.Literals)-1)
	for _, l := range c.Literals {
		if l != forced {
			out = append(out, l)
		}
	}
	return out
}

// decide picks the highest-activity variable still Undefined and assigns
// it a uniformly random polarity (spec.md §4.5 step 3, matching
// original_source/src/cdcl.rs's rand.gen_range(0..2) decision rule).
// It reports true when the heap is exhausted, meaning every variable is
// assigned and the formula is therefore satisfied.
func (e *cdclEngine) decide() bool {
	for {
		v, ok := e.heap.PopMax()
		if !ok {
			return true
		}
		if e.assign.ValueOf(v) != Undefined {
			continue
		}
		val := True
		if e.rng.Intn(2) == 1 {
			val = False
		}
		e.assign.Assign(v, val, e.level, nil)
		e.decisions++
		e.log.Debug("decide", zap.Uint32("var", uint32(v)), zap.Stringer("value", val), zap.Int("level", e.level))
		return false
	}
}

// analyzeConflict walks the implication graph backward from some falsified
// clause to the decision literals that forced it, accumulating those
// falsified literals into a learned clause (False under the current
// assignment), and reports the level to backjump to (one less than the
// highest decision level among the learned clause's variables, or 0 if
// that highest level is 0). This is
// backward-reachability analysis, not first-UIP: it does not stop at the
// first node common to both sides of the current decision level's
// implications, matching original_source/src/cdcl.rs's find_conflict
// (spec.md §4.5.1, §9).
func (e *cdclEngine) analyzeConflict() (int, []Literal) {
	conflict, ok := e.assign.FindFalsified(e.store.All())
	if !ok {
		panic("cdclsat: analyzeConflict invoked with no falsified clause")
	}

	stack := append([]Literal(nil), conflict.Literals...)
	seen := make(map[Literal]bool)
	var learned []Literal

	for len(stack) > 0 {
		lit := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if reason := e.assign.Reason(lit.Var()); len(reason) > 0 {
			stack = append(stack, reason...)
			continue
		}
		if !seen[lit] {
			seen[lit] = true
			learned = append(learned, lit)
		}
	}

	maxLevel := 0
	for _, lit := range learned {
		if lvl := e.assign.Level(lit.Var()); lvl > maxLevel {
			maxLevel = lvl
		}
		e.heap.Bump(lit.Var())
	}

	backjump := maxLevel - 1
	if backjump < 0 {
		backjump = 0
	}
	return backjump, learned
}

func (e *cdclEngine) backtrack(level int) {
	e.level = level
	e.assign.Backtrack(level, e.heap)
}

// learn installs a learned clause via the normal insertion path: an empty
// learned clause proves the formula unsatisfiable, a unit learned clause
// forces its literal at level 0 immediately, and anything longer is
// stored for propagate to pick up (spec.md §4.5.1 "normal insertion path,
// which may itself detect unit or empty").
func (e *cdclEngine) learn(lits []Literal) bool {
	result, c := e.store.insert(lits, true)
	switch result {
	case insertEmpty:
		_ = c
		return false
	case insertUnit:
		return e.forceLevelZero(c.Literals[0])
	default:
		return true
	}
}

func (e *cdclEngine) model() Model {
	m := make(Model, e.assign.Len())
	for v := 0; v < e.assign.Len(); v++ {
		m[v] = e.assign.ValueOf(Var(v)) != False
	}
	return m
}

func (e *cdclEngine) stats() Stats {
	return Stats{
		Decisions:   e.decisions,
		Propagation: e.propagations,
		Conflicts:   e.conflicts,
		Engine:      "cdcl",
	}
}
