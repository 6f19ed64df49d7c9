// Package mtsp formulates the multiple traveling salesmen problem as a
// mixed-integer linear program and reconstructs routes from the solved
// edge set.
//
// Problem shape: an n×n cost matrix over nodes 0..n-1, node 0 being the
// depot shared by all salesmen. Each of the k salesmen drives one closed
// route that leaves the depot, visits a disjoint set of cities, and returns.
// Every non-depot node is visited exactly once across all routes, and the
// total traversal cost is minimized. Per-route city counts may be bounded
// below (MinCities, default 2) and above (MaxCities, default n).
//
// The formulation uses binary edge-selection variables e[i][j] and integer
// load variables u[i], with Miller–Tucker–Zemlin-style subtour elimination
// generalized for the per-route bounds. Asymmetric cost matrices are
// supported; the reference use-case (Euclidean distances) is symmetric.
//
// Solving is delegated through milp.Solver, so any MILP-capable backend
// plugs in (see milp/highs). The typical call is:
//
//	res, err := mtsp.Solve(cost, mtsp.DefaultOptions(2, highs.New()))
//
// which validates inputs, builds the model, runs one bounded solve attempt,
// extracts the routes, and verifies the result against the degree, coverage
// and cost invariants before returning it. A solve that stops without an
// integer-feasible assignment surfaces ErrNoSolution; an assignment that
// does not decompose into k disjoint depot-closed routes surfaces
// ErrMalformedSolution. Nothing is retried and no partial routes are ever
// returned.
//
// All failures are strict sentinel errors (see types.go), matched with
// errors.Is. The package is single-threaded and keeps no state across calls;
// every Solve builds a fresh model.
package mtsp
