package cdclsat

import (
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// SolverKind selects which engine Solve dispatches to (spec.md §4.8).
type SolverKind int

const (
	// Auto runs the structural dispatcher: 2-SAT, then Horn, then CDCL.
	Auto SolverKind = iota
	CDCL
	TwoSAT
	Horn
	// Exhaustive forces the brute-force oracle, used by tests to
	// cross-check the other engines rather than for production solving.
	Exhaustive
)

func (k SolverKind) String() string {
	switch k {
	case CDCL:
		return "cdcl"
	case TwoSAT:
		return "2sat"
	case Horn:
		return "horn"
	case Exhaustive:
		return "exhaustive"
	default:
		return "auto"
	}
}

// Config controls one Solve invocation. The zero value runs the automatic
// dispatcher with no deadline, no verification pass, and a
// randomly-seeded decision polarity source — matching the library's
// default, dependency-free entry point.
type Config struct {
	// Kind selects the engine. The zero value is Auto.
	Kind SolverKind

	// Deadline, if non-zero, bounds wall-clock solving time. The CDCL
	// engine checks it cooperatively once per outer loop iteration
	// (spec.md §5), never mid-propagation.
	Deadline time.Duration

	// Verify, if true, re-checks a Satisfiable verdict against the
	// original clauses with the model checker before returning it
	// (spec.md §4.9). A verification failure is an internal invariant
	// violation and panics rather than silently downgrading the verdict.
	Verify bool

	// RandomSeed fixes the CDCL engine's decision-polarity source for
	// reproducible runs. Nil means seed from the current time.
	RandomSeed *int64

	// Logger receives structured trace events from the CDCL engine
	// (decisions, conflicts, backjumps). Nil disables tracing.
	Logger *zap.Logger
}

func (c Config) rand() *rand.Rand {
	seed := time.Now().UnixNano()
	if c.RandomSeed != nil {
		seed = *c.RandomSeed
	}
	return rand.New(rand.NewSource(seed))
}

func (c Config) logger() *zap.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return zap.NewNop()
}

func (c Config) deadlineAt(start time.Time) (time.Time, bool) {
	if c.Deadline <= 0 {
		return time.Time{}, false
	}
	return start.Add(c.Deadline), true
}
