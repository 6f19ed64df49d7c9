// SPDX-License-Identifier: MIT
// Package mtsp: core types and the sentinel error set.
// All operations return these sentinels (possibly fmt.Errorf-wrapped with
// context at the outer boundary); tests match them via errors.Is.

package mtsp

import (
	"errors"

	"github.com/taridan/mtsp/milp"
)

// Depot is the fixed index of the shared start/end node.
const Depot = 0

var (
	// ErrNonSquare indicates a nil, empty, or non-square cost matrix.
	ErrNonSquare = errors.New("mtsp: cost matrix is not square")

	// ErrBadCost indicates a NaN, ±Inf, or negative cost entry.
	ErrBadCost = errors.New("mtsp: invalid cost entry")

	// ErrNonZeroDiagonal indicates a self-traversal cost other than ~0.
	ErrNonZeroDiagonal = errors.New("mtsp: diagonal not zero within eps")

	// ErrBadSalesmen indicates a salesmen count ≤ 0 or > n-1.
	ErrBadSalesmen = errors.New("mtsp: invalid salesmen count")

	// ErrBadCityBounds indicates inconsistent per-route city bounds
	// (min < 1, min > max, or max > n).
	ErrBadCityBounds = errors.New("mtsp: invalid min/max city bounds")

	// ErrBadTimeLimit indicates a negative solve time limit.
	ErrBadTimeLimit = errors.New("mtsp: invalid time limit")

	// ErrNilSolver indicates that Options.Solver was nil.
	ErrNilSolver = errors.New("mtsp: solver is nil")

	// ErrNoSolution indicates the solver stopped (infeasible, unbounded, or
	// time-limit truncated) without an integer-feasible assignment.
	ErrNoSolution = errors.New("mtsp: no feasible solution found")

	// ErrMalformedSolution indicates a selected edge set that does not
	// decompose into exactly `salesmen` disjoint depot-closed routes, or a
	// reported objective inconsistent with the chosen edges.
	ErrMalformedSolution = errors.New("mtsp: malformed solution")
)

// Edge is a selected directed traversal i→j.
type Edge struct {
	From int
	To   int
}

// Route is an ordered node sequence starting at the depot. The closing
// return to the depot is implicit and not repeated at the end.
type Route []int

// Cities returns the number of non-depot nodes on the route.
func (r Route) Cities() int {
	if len(r) == 0 {
		return 0
	}

	return len(r) - 1
}

// Result is the outcome of one solve: one route per salesman, the chosen
// directed edge set, the achieved objective, the solver's terminal status,
// and the underlying formulation kept for introspection.
type Result struct {
	Routes []Route
	Edges  []Edge
	Cost   float64
	Status milp.Status

	// Model is the formulation the solver ran; nil for the degenerate
	// depot-only instance, which never builds one.
	Model *Formulation
}
