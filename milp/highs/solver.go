package highs

import (
	"fmt"
	"math"

	"github.com/bartolsthoorn/gohighs/highs"

	"github.com/taridan/mtsp/milp"
)

// HiGHS integrality markers per column (HighsVarType in the C API).
const (
	colContinuous = 0
	colInteger    = 1
)

// Solver runs milp models through HiGHS. The zero value is ready to use;
// each Solve builds a fresh engine model, so a Solver may be shared.
type Solver struct{}

// New returns a HiGHS-backed milp.Solver.
func New() *Solver { return &Solver{} }

var _ milp.Solver = (*Solver)(nil)

// Solve lowers m into HiGHS arrays and runs one bounded solve attempt.
//
// Maximization is handled by negating objective coefficients and the
// reported objective, keeping the lowering independent of engine sense
// switches. Integer and binary columns share the integer marker; binary
// bounds are already [0,1] by milp construction.
//
// Errors: milp.ErrNilModel, milp.ErrBadBounds (negative time limit), and
// milp.ErrBackendFailure wrapping the engine message.
func (s *Solver) Solve(m *milp.Model, opts milp.SolveOptions) (milp.Solution, error) {
	if m == nil {
		return milp.Solution{}, milp.ErrNilModel
	}
	if opts.TimeLimit < 0 {
		return milp.Solution{}, milp.ErrBadBounds
	}
	limit := opts.TimeLimit
	if limit == 0 {
		limit = milp.DefaultTimeLimit
	}

	var (
		n    = m.NumVars()
		hm   = highs.Model{}
		sign = 1.0
	)
	if m.Sense() == milp.Maximize {
		sign = -1.0
	}

	// Columns.
	hm.ColCosts = make([]float64, n)
	hm.ColLower = make([]float64, n)
	hm.ColUpper = make([]float64, n)
	hm.VarTypes = make([]highs.VariableType, n)

	var (
		v      int
		lo, hi float64
		obj    float64
		err    error
	)
	for v = 0; v < n; v++ {
		lo, hi, err = m.VarBounds(milp.Var(v))
		if err != nil {
			return milp.Solution{}, err
		}
		obj, err = m.VarObjective(milp.Var(v))
		if err != nil {
			return milp.Solution{}, err
		}
		hm.ColCosts[v] = sign * obj
		hm.ColLower[v] = lo
		hm.ColUpper[v] = hi
		if m.VarType(milp.Var(v)) == milp.Continuous {
			hm.VarTypes[v] = colContinuous
		} else {
			hm.VarTypes[v] = colInteger
		}
	}

	// Rows, densified per gohighs' AddDenseRow surface. Model sizes here are
	// small (the formulations this repo builds are O(n²) columns), so the
	// dense lowering is acceptable.
	var (
		r     int
		coefs []float64
		t     milp.Term
	)
	for r = 0; r < m.NumRows(); r++ {
		lo, hi, err = m.RowBounds(r)
		if err != nil {
			return milp.Solution{}, err
		}
		coefs = make([]float64, n)
		for _, t = range m.RowTerms(r) {
			coefs[t.Var] += t.Coef
		}
		hm.AddDenseRow(lo, coefs, hi)
	}

	sol, err := hm.Solve(
		highs.WithOutput(opts.Verbose),
		highs.WithTimeLimit(limit.Seconds()),
	)
	if err != nil {
		return milp.Solution{}, fmt.Errorf("highs: %v: %w", err, milp.ErrBackendFailure)
	}

	// Status mapping. HiGHS reports optimality explicitly; anything else with
	// a populated assignment is treated as a feasible incumbent, anything
	// without one as no-solution. Infeasibility detection is folded into
	// no-solution at this surface: callers act on Usable() either way.
	out := milp.Solution{Status: milp.StatusNoSolution}
	if len(sol.ColValues) == n {
		out.X = make([]float64, n)
		copy(out.X, sol.ColValues)
		out.Objective = sign * sol.Objective
		if sol.IsOptimal() {
			out.Status = milp.StatusOptimal
		} else {
			out.Status = milp.StatusFeasible
		}
	}
	if out.Status.Usable() && math.IsNaN(out.Objective) {
		return milp.Solution{}, fmt.Errorf("highs: NaN objective: %w", milp.ErrBackendFailure)
	}

	return out, nil
}
