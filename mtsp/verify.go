// Package mtsp - post-solve invariant verification.
//
// The solver is a black box; before a Result leaves this package, the
// selected edge set and the extracted routes are checked against every
// structural invariant of the problem. A violation means the assignment
// was truncated or the backend misbehaved, and surfaces as
// ErrMalformedSolution rather than as silently wrong routes.
package mtsp

import "math"

// verifySolution checks the full invariant set:
//
//   - degree: depot out/in degree == salesmen; every city out/in degree == 1;
//     no self-loops;
//   - routes: exactly one per salesman, each starting at the depot, city
//     count within [minCities, maxCities], jointly covering every city once;
//   - cost: |objective − Σ cost over edges| ≤ costTol.
//
// Complexity: O(n + |edges|).
func verifySolution(cost [][]float64, routes []Route, edges []Edge, objective float64, f *Formulation) error {
	var (
		n      = f.n
		outDeg = make([]int, n)
		inDeg  = make([]int, n)
		e      Edge
	)
	for _, e = range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n || e.From == e.To {
			return ErrMalformedSolution
		}
		outDeg[e.From]++
		inDeg[e.To]++
	}
	if outDeg[Depot] != f.salesmen || inDeg[Depot] != f.salesmen {
		return ErrMalformedSolution
	}

	var i int
	for i = 1; i < n; i++ {
		if outDeg[i] != 1 || inDeg[i] != 1 {
			return ErrMalformedSolution
		}
	}

	// Route structure and disjoint city coverage.
	if len(routes) != f.salesmen {
		return ErrMalformedSolution
	}
	var (
		seen   = make([]bool, n)
		r      Route
		node   int
		cities int
	)
	for _, r = range routes {
		if len(r) == 0 || r[0] != Depot {
			return ErrMalformedSolution
		}
		cities = r.Cities()
		if cities < f.minCities || cities > f.maxCities {
			return ErrMalformedSolution
		}
		for _, node = range r[1:] {
			if node <= 0 || node >= n || seen[node] {
				return ErrMalformedSolution
			}
			seen[node] = true
		}
	}
	for i = 1; i < n; i++ {
		if !seen[i] {
			return ErrMalformedSolution
		}
	}

	// Objective consistency.
	sum, err := EdgeSetCost(cost, edges)
	if err != nil {
		return err
	}
	if math.Abs(sum-objective) > costTol {
		return ErrMalformedSolution
	}

	return nil
}
