// Package milp — solving surface shared by all backends.
package milp

import "time"

// DefaultTimeLimit bounds a solve attempt when SolveOptions.TimeLimit is zero.
const DefaultTimeLimit = 60 * time.Second

// Status reports how a solve attempt terminated.
type Status uint8

const (
	// StatusUnknown means the backend reported nothing usable.
	StatusUnknown Status = iota
	// StatusOptimal means the assignment is proven optimal.
	StatusOptimal
	// StatusFeasible means an integer-feasible incumbent was returned but
	// optimality was not proven (typically a time-limit stop).
	StatusFeasible
	// StatusInfeasible means no assignment satisfies the constraint system.
	StatusInfeasible
	// StatusUnbounded means the objective is unbounded in the chosen direction.
	StatusUnbounded
	// StatusNoSolution means the solve stopped (e.g. on the time limit)
	// before any integer-feasible assignment was found.
	StatusNoSolution
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusFeasible:
		return "feasible"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	case StatusNoSolution:
		return "no-solution"
	default:
		return "unknown"
	}
}

// Usable reports whether the status carries an assignment worth reading.
func (s Status) Usable() bool { return s == StatusOptimal || s == StatusFeasible }

// Solution is the outcome of one solve attempt. X is indexed by Var and is
// nil unless Status.Usable().
type Solution struct {
	Status    Status
	X         []float64
	Objective float64
}

// Value returns the assigned value of v, or 0 when the solution carries no
// assignment or v is out of range.
func (s Solution) Value(v Var) float64 {
	if int(v) < 0 || int(v) >= len(s.X) {
		return 0
	}

	return s.X[v]
}

// SolveOptions configures a single solve attempt.
//
// TimeLimit — wall-clock budget; 0 means DefaultTimeLimit. A negative value
// is rejected by backends with ErrBadBounds.
// Verbose   — surface the engine's own log output.
type SolveOptions struct {
	TimeLimit time.Duration
	Verbose   bool
}

// DefaultSolveOptions returns the canonical solve configuration.
func DefaultSolveOptions() SolveOptions {
	return SolveOptions{TimeLimit: DefaultTimeLimit}
}

// Solver is the capability interface every MILP backend implements.
// One call per model; implementations are synchronous and blocking, bounded
// by the configured time limit.
type Solver interface {
	Solve(m *Model, opts SolveOptions) (Solution, error)
}
