// Package mtsp - unified solve entry point.
//
// Solve runs the whole pipeline synchronously: validate → formulate →
// delegate to the backend → extract routes → verify invariants. One solve
// attempt per call, no retries, no shared state across calls.
package mtsp

import (
	"github.com/taridan/mtsp/milp"
)

// Solve formulates the instance described by cost and opts, runs it through
// opts.Solver, and returns the verified routes, edge set, and objective.
//
// Semantics:
//   - The degenerate single-node instance (depot only) short-circuits to one
//     depot-only route per salesman with cost 0; no model is built and the
//     solver is never invoked.
//   - A time-limit stop that still produced an integer-feasible incumbent is
//     returned with Status milp.StatusFeasible; its routes are extracted and
//     verified exactly like an optimal one.
//   - A stop without a usable assignment (infeasible, unbounded, truncated
//     before the first incumbent) returns ErrNoSolution.
//   - An assignment that fails route extraction or any structural invariant
//     returns ErrMalformedSolution.
//
// Errors: the validation sentinels (ErrNonSquare, ErrBadCost,
// ErrNonZeroDiagonal, ErrBadSalesmen, ErrBadCityBounds, ErrBadTimeLimit,
// ErrNilSolver), ErrNoSolution, ErrMalformedSolution, or a backend error
// propagated as-is.
//
// Complexity: O(n²) model construction plus the opaque solver call.
func Solve(cost [][]float64, opts Options) (Result, error) {
	n, err := validateCost(cost)
	if err != nil {
		return Result{}, err
	}
	if err = validateSalesmen(n, opts.Salesmen); err != nil {
		return Result{}, err
	}
	if opts.TimeLimit < 0 {
		return Result{}, ErrBadTimeLimit
	}

	// Depot-only instance: nothing to route.
	if n == 1 {
		routes := make([]Route, opts.Salesmen)
		var s int
		for s = 0; s < opts.Salesmen; s++ {
			routes[s] = Route{Depot}
		}

		return Result{Routes: routes, Cost: 0, Status: milp.StatusOptimal}, nil
	}

	if opts.Solver == nil {
		return Result{}, ErrNilSolver
	}

	f, err := Formulate(cost, opts.Salesmen, opts.MinCities, opts.MaxCities)
	if err != nil {
		return Result{}, err
	}

	sol, err := opts.Solver.Solve(f.Model, milp.SolveOptions{
		TimeLimit: opts.TimeLimit,
		Verbose:   opts.Verbose,
	})
	if err != nil {
		return Result{}, err
	}
	if !sol.Status.Usable() {
		return Result{}, ErrNoSolution
	}

	edges := f.SelectedEdges(sol)
	routes, err := ExtractRoutes(edges, n, opts.Salesmen)
	if err != nil {
		return Result{}, err
	}
	objective := round1e9(sol.Objective)
	if err = verifySolution(cost, routes, edges, objective, f); err != nil {
		return Result{}, err
	}

	return Result{
		Routes: routes,
		Edges:  edges,
		Cost:   objective,
		Status: sol.Status,
		Model:  f,
	}, nil
}
