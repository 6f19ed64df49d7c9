// Package mtsp_test — end-to-end solve tests.
//
// The MILP backend is replaced by an exhaustive enumeration oracle for tiny
// instances: it walks every ordered partition of the cities into routes,
// keeps only assignments the *formulated model itself* accepts (via
// CheckAssignment), and returns the cheapest one. This both exercises the
// full Solve pipeline and proves the constraint system admits exactly the
// valid route sets.
package mtsp_test

import (
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/taridan/mtsp/milp"
	"github.com/taridan/mtsp/mtsp"
)

// enumSolver is a milp.Solver for tests. It relies on Formulate's
// deterministic variable layout: the Formulation it builds for the same
// inputs yields handles valid against the model Solve passes in.
type enumSolver struct {
	cost      [][]float64
	salesmen  int
	minCities int
	maxCities int
}

var _ milp.Solver = (*enumSolver)(nil)

func (s *enumSolver) Solve(m *milp.Model, _ milp.SolveOptions) (milp.Solution, error) {
	f, err := mtsp.Formulate(s.cost, s.salesmen, s.minCities, s.maxCities)
	if err != nil {
		return milp.Solution{}, err
	}

	var (
		n      = len(s.cost)
		cities = make([]int, 0, n-1)
		best   []float64
		bestV  = math.Inf(1)
	)
	for i := 1; i < n; i++ {
		cities = append(cities, i)
	}

	for _, perm := range permutations(cities) {
		for _, comp := range compositions(len(cities), s.salesmen) {
			routes := split(perm, comp)
			x := assignment(f, routes)
			if m.CheckAssignment(x, checkTol) != nil {
				continue
			}
			obj, oerr := m.ObjectiveAt(x)
			if oerr != nil {
				return milp.Solution{}, oerr
			}
			if obj < bestV {
				bestV = obj
				best = x
			}
		}
	}

	if best == nil {
		return milp.Solution{Status: milp.StatusInfeasible}, nil
	}

	return milp.Solution{Status: milp.StatusOptimal, X: best, Objective: bestV}, nil
}

// permutations returns all orderings of items (Heap's algorithm).
func permutations(items []int) [][]int {
	var (
		out [][]int
		rec func(k int, a []int)
	)
	a := make([]int, len(items))
	copy(a, items)

	rec = func(k int, a []int) {
		if k == 1 {
			cp := make([]int, len(a))
			copy(cp, a)
			out = append(out, cp)

			return
		}
		for i := 0; i < k; i++ {
			rec(k-1, a)
			if k%2 == 0 {
				a[i], a[k-1] = a[k-1], a[i]
			} else {
				a[0], a[k-1] = a[k-1], a[0]
			}
		}
	}
	rec(len(a), a)

	return out
}

// compositions returns all ways to write total as an ordered sum of `parts`
// positive integers.
func compositions(total, parts int) [][]int {
	var (
		out [][]int
		rec func(left, k int, acc []int)
	)
	rec = func(left, k int, acc []int) {
		if k == 1 {
			if left >= 1 {
				cp := make([]int, len(acc)+1)
				copy(cp, acc)
				cp[len(acc)] = left
				out = append(out, cp)
			}

			return
		}
		for take := 1; take <= left-(k-1); take++ {
			rec(left-take, k-1, append(acc, take))
		}
	}
	rec(total, parts, nil)

	return out
}

// split cuts a permutation into consecutive segments of the given sizes.
func split(perm, sizes []int) [][]int {
	var (
		routes = make([][]int, 0, len(sizes))
		at     int
	)
	for _, sz := range sizes {
		routes = append(routes, perm[at:at+sz])
		at += sz
	}

	return routes
}

// citySets normalizes routes to sorted per-route city sets for
// order-insensitive comparison.
func citySets(routes []mtsp.Route) [][]int {
	sets := make([][]int, 0, len(routes))
	for _, r := range routes {
		set := append([]int(nil), r[1:]...)
		sort.Ints(set)
		sets = append(sets, set)
	}
	sort.Slice(sets, func(i, j int) bool {
		if len(sets[i]) == 0 || len(sets[j]) == 0 {
			return len(sets[i]) < len(sets[j])
		}

		return sets[i][0] < sets[j][0]
	})

	return sets
}

func TestSolve_SingleSalesmanSquare(t *testing.T) {
	t.Parallel()

	// Unit square with the depot at a corner: the optimal tour is the
	// perimeter of length 8.
	nodes := [][]float64{{0, 0}, {0, 2}, {2, 2}, {2, 0}}
	cost := euclid(nodes)

	res, err := mtsp.Solve(cost, mtsp.Options{
		Salesmen: 1,
		Solver:   &enumSolver{cost: cost, salesmen: 1},
	})
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}

	if res.Status != milp.StatusOptimal {
		t.Fatalf("Status = %v, want optimal", res.Status)
	}
	if len(res.Routes) != 1 || len(res.Routes[0]) != 4 || res.Routes[0][0] != mtsp.Depot {
		t.Fatalf("unexpected routes %v", res.Routes)
	}
	if math.Abs(res.Cost-8) > 1e-9 {
		t.Fatalf("Cost = %v, want 8", res.Cost)
	}
	if len(res.Edges) != 4 {
		t.Fatalf("edge count = %d, want 4", len(res.Edges))
	}

	sum, err := mtsp.EdgeSetCost(cost, res.Edges)
	if err != nil || math.Abs(sum-res.Cost) > 1e-6 {
		t.Fatalf("objective %v inconsistent with edge costs %v (err %v)", res.Cost, sum, err)
	}
	if res.Model == nil {
		t.Fatal("Result.Model must carry the formulation")
	}
}

func TestSolve_TwoSalesmenPartition(t *testing.T) {
	t.Parallel()

	// Two city clusters left and right of the depot; the optimal pair of
	// routes serves one cluster each.
	nodes := [][]float64{{0, 0}, {-2, 0}, {-2, 1}, {2, 0}, {2, 1}}
	cost := euclid(nodes)

	res, err := mtsp.Solve(cost, mtsp.Options{
		Salesmen:  2,
		MinCities: 1,
		Solver:    &enumSolver{cost: cost, salesmen: 2, minCities: 1},
	})
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}

	sets := citySets(res.Routes)
	if len(sets) != 2 || !sameInts(sets[0], []int{1, 2}) || !sameInts(sets[1], []int{3, 4}) {
		t.Fatalf("city partition = %v, want [[1 2] [3 4]]", sets)
	}

	// The out-and-back exclusion keeps both routes at two cities even
	// though MinCities is 1.
	for _, r := range res.Routes {
		if r.Cities() != 2 {
			t.Fatalf("route %v has %d cities, want 2", r, r.Cities())
		}
	}

	want := 2*(2+1+math.Sqrt(5)) + 0 // both clusters: 2 + 1 + √5 each
	if math.Abs(res.Cost-want) > 1e-6 {
		t.Fatalf("Cost = %v, want %v", res.Cost, want)
	}
}

func TestSolve_CityBoundsEnforced(t *testing.T) {
	t.Parallel()

	nodes := [][]float64{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {0, 1}, {0, 2}, {0, 3}}
	cost := euclid(nodes)

	res, err := mtsp.Solve(cost, mtsp.Options{
		Salesmen:  2,
		MinCities: 3,
		MaxCities: 3,
		Solver:    &enumSolver{cost: cost, salesmen: 2, minCities: 3, maxCities: 3},
	})
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}

	for _, r := range res.Routes {
		if r.Cities() != 3 {
			t.Fatalf("route %v has %d cities, want exactly 3", r, r.Cities())
		}
	}
}

func TestSolve_AsymmetricCosts(t *testing.T) {
	t.Parallel()

	// Directed costs: going "clockwise" 0→1→2→3→0 is cheap, the reverse
	// orientation expensive.
	cost := [][]float64{
		{0, 1, 9, 9},
		{9, 0, 1, 9},
		{9, 9, 0, 1},
		{1, 9, 9, 0},
	}

	res, err := mtsp.Solve(cost, mtsp.Options{
		Salesmen: 1,
		Solver:   &enumSolver{cost: cost, salesmen: 1},
	})
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	want := []mtsp.Route{{0, 1, 2, 3}}
	if len(res.Routes) != 1 || !sameInts(res.Routes[0], want[0]) {
		t.Fatalf("routes = %v, want %v", res.Routes, want)
	}
	if math.Abs(res.Cost-4) > 1e-9 {
		t.Fatalf("Cost = %v, want 4", res.Cost)
	}
}

func TestSolve_DepotOnlyInstance(t *testing.T) {
	t.Parallel()

	// A single-node instance never builds a model or touches the solver.
	res, err := mtsp.Solve([][]float64{{0}}, mtsp.Options{Salesmen: 2})
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if len(res.Routes) != 2 || res.Cost != 0 {
		t.Fatalf("result = %+v, want two depot-only routes at cost 0", res)
	}
	for _, r := range res.Routes {
		if len(r) != 1 || r[0] != mtsp.Depot {
			t.Fatalf("route = %v, want [0]", r)
		}
	}
	if res.Model != nil {
		t.Fatal("degenerate instance must not build a model")
	}
}

func TestSolve_InfeasibleInstance(t *testing.T) {
	t.Parallel()

	// 3 salesmen over 3 cities at the default MinCities of 2: no
	// partition fits, so the oracle reports infeasibility.
	cost := euclid([][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}})

	_, err := mtsp.Solve(cost, mtsp.Options{
		Salesmen: 3,
		Solver:   &enumSolver{cost: cost, salesmen: 3},
	})
	if !errors.Is(err, mtsp.ErrNoSolution) {
		t.Fatalf("Solve() error = %v, want %v", err, mtsp.ErrNoSolution)
	}
}

// brokenSolver claims optimality while returning an all-zero assignment.
type brokenSolver struct{}

func (brokenSolver) Solve(m *milp.Model, _ milp.SolveOptions) (milp.Solution, error) {
	return milp.Solution{Status: milp.StatusOptimal, X: make([]float64, m.NumVars())}, nil
}

func TestSolve_MalformedBackendAssignment(t *testing.T) {
	t.Parallel()

	cost := euclid([][]float64{{0, 0}, {1, 0}, {0, 1}})
	_, err := mtsp.Solve(cost, mtsp.Options{Salesmen: 1, Solver: brokenSolver{}})
	if !errors.Is(err, mtsp.ErrMalformedSolution) {
		t.Fatalf("Solve() error = %v, want %v", err, mtsp.ErrMalformedSolution)
	}
}

// euclid builds the pairwise Euclidean matrix for planar points.
func euclid(nodes [][]float64) [][]float64 {
	n := len(nodes)
	cost := make([][]float64, n)
	for i := 0; i < n; i++ {
		cost[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := math.Hypot(nodes[i][0]-nodes[j][0], nodes[i][1]-nodes[j][1])
			cost[i][j] = d
			cost[j][i] = d
		}
	}

	return cost
}

// sameInts compares two int slices element-wise.
func sameInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
