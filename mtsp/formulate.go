// Package mtsp - MILP formulation of the multiple traveling salesmen problem.
//
// Decision variables over an n×n cost matrix with depot 0 and k salesmen:
//
//	e[i][j] ∈ {0,1}  (i ≠ j) — 1 iff the route set uses directed edge i→j;
//	u[i]    ∈ [0,L]  ℤ, i≠0 — load (visit position) of city i within its route.
//
// Constraint system, with K/L the per-route min/max city counts:
//
//	Σ_j e[0][j] = k                  depot out-degree
//	Σ_j e[j][0] = k                  depot in-degree
//	Σ_j e[i][j] = 1  ∀ i≠0           city out-degree
//	Σ_j e[j][i] = 1  ∀ i≠0           city in-degree
//	u[i] + (L-2)·e[0][i] − e[i][0] ≤ L−1            ∀ i≠0
//	u[i] + e[0][i] + (2−K)·e[i][0] ≥ 2              ∀ i≠0
//	e[0][i] + e[i][0] ≤ 1                           ∀ i≠0
//	u[i] − u[j] + L·e[i][j] + (L-2)·e[j][i] ≤ L−1   ∀ i≠j, i,j≠0
//
// The last four families are the Miller–Tucker–Zemlin subtour elimination
// generalized for bounded route length: any cycle avoiding the depot forces
// a contradiction in the u ordering, and route sizes outside [K,L] make the
// first/last-position rows unsatisfiable. Note the e[0][i]+e[i][0] ≤ 1 row
// also excludes single-city out-and-back routes regardless of K.
//
// Objective: minimize Σ cost[i][j]·e[i][j]. Self-loop variables are never
// created (strictly stronger than fixing their upper bound to zero).
package mtsp

import (
	"fmt"
	"math"

	"github.com/taridan/mtsp/milp"
)

// Formulation couples the MILP model with its variable layout so that
// solutions can be mapped back onto edges and callers can introspect or
// re-check the model after solving.
type Formulation struct {
	// Model is the complete constraint system, ready for a milp.Solver.
	Model *milp.Model

	n         int
	salesmen  int
	minCities int
	maxCities int

	// edge[i][j] is the handle of e[i][j]; -1 on the diagonal.
	edge [][]milp.Var
	// load[i] is the handle of u[i]; -1 at the depot.
	load []milp.Var
}

// Formulate validates the inputs and builds the complete constraint system
// for the given cost matrix, salesmen count and per-route city bounds
// (0 selects the documented defaults).
//
// Contract: n ≥ 2; the degenerate single-node instance never reaches a
// model and is handled by Solve directly.
//
// Errors: ErrNonSquare, ErrBadCost, ErrNonZeroDiagonal, ErrBadSalesmen,
// ErrBadCityBounds.
//
// Complexity: O(n²) variables and rows.
func Formulate(cost [][]float64, salesmen, minCities, maxCities int) (*Formulation, error) {
	n, err := validateCost(cost)
	if err != nil {
		return nil, err
	}
	if n < 2 {
		return nil, ErrBadSalesmen
	}
	if err = validateSalesmen(n, salesmen); err != nil {
		return nil, err
	}
	k, l, err := resolveBounds(n, minCities, maxCities)
	if err != nil {
		return nil, err
	}

	f := &Formulation{
		Model:     milp.NewModel("mtsp"),
		n:         n,
		salesmen:  salesmen,
		minCities: k,
		maxCities: l,
	}
	if err = f.addVariables(cost); err != nil {
		return nil, err
	}
	if err = f.addDegreeRows(); err != nil {
		return nil, err
	}
	if err = f.addSubtourRows(); err != nil {
		return nil, err
	}

	return f, nil
}

// N returns the matrix order.
func (f *Formulation) N() int { return f.n }

// Salesmen returns the route count the model enforces.
func (f *Formulation) Salesmen() int { return f.salesmen }

// CityBounds returns the resolved per-route (min, max) city counts.
func (f *Formulation) CityBounds() (int, int) { return f.minCities, f.maxCities }

// EdgeVar returns the handle of e[i][j], or -1 for the diagonal and
// out-of-range indices.
func (f *Formulation) EdgeVar(i, j int) milp.Var {
	if i < 0 || i >= f.n || j < 0 || j >= f.n || i == j {
		return -1
	}

	return f.edge[i][j]
}

// LoadVar returns the handle of u[i], or -1 for the depot and out-of-range
// indices.
func (f *Formulation) LoadVar(i int) milp.Var {
	if i <= 0 || i >= f.n {
		return -1
	}

	return f.load[i]
}

// addVariables creates the e and u columns. Edge costs land directly in the
// objective coefficients, so no separate objective row is needed.
func (f *Formulation) addVariables(cost [][]float64) error {
	var (
		i, j int
		v    milp.Var
		err  error
	)

	f.edge = make([][]milp.Var, f.n)
	for i = 0; i < f.n; i++ {
		f.edge[i] = make([]milp.Var, f.n)
		for j = 0; j < f.n; j++ {
			if i == j {
				f.edge[i][j] = -1
				continue
			}
			v, err = f.Model.AddBinary(fmt.Sprintf("e%d_%d", i, j), cost[i][j])
			if err != nil {
				return err
			}
			f.edge[i][j] = v
		}
	}

	f.load = make([]milp.Var, f.n)
	f.load[Depot] = -1
	for i = 1; i < f.n; i++ {
		v, err = f.Model.AddInteger(fmt.Sprintf("u%d", i), 0, float64(f.maxCities), 0)
		if err != nil {
			return err
		}
		f.load[i] = v
	}

	return nil
}

// addDegreeRows posts the depot-degree and visit-once equalities.
func (f *Formulation) addDegreeRows() error {
	var (
		i, j  int
		terms []milp.Term
		err   error
	)

	// Depot out/in degree = salesmen.
	terms = terms[:0]
	for j = 1; j < f.n; j++ {
		terms = append(terms, milp.Term{Var: f.edge[Depot][j], Coef: 1})
	}
	if err = f.Model.AddRow("depot_out", float64(f.salesmen), terms, float64(f.salesmen)); err != nil {
		return err
	}

	terms = terms[:0]
	for j = 1; j < f.n; j++ {
		terms = append(terms, milp.Term{Var: f.edge[j][Depot], Coef: 1})
	}
	if err = f.Model.AddRow("depot_in", float64(f.salesmen), terms, float64(f.salesmen)); err != nil {
		return err
	}

	// Every city is departed and entered exactly once.
	for i = 1; i < f.n; i++ {
		terms = terms[:0]
		for j = 0; j < f.n; j++ {
			if j == i {
				continue
			}
			terms = append(terms, milp.Term{Var: f.edge[i][j], Coef: 1})
		}
		if err = f.Model.AddRow(fmt.Sprintf("out_deg%d", i), 1, terms, 1); err != nil {
			return err
		}

		terms = terms[:0]
		for j = 0; j < f.n; j++ {
			if j == i {
				continue
			}
			terms = append(terms, milp.Term{Var: f.edge[j][i], Coef: 1})
		}
		if err = f.Model.AddRow(fmt.Sprintf("in_deg%d", i), 1, terms, 1); err != nil {
			return err
		}
	}

	return nil
}

// addSubtourRows posts the generalized MTZ family (see the package comment
// at the top of this file for the algebra).
func (f *Formulation) addSubtourRows() error {
	var (
		i, j int
		err  error
		l    = float64(f.maxCities)
		k    = float64(f.minCities)
		inf  = math.Inf(1)
	)

	for i = 1; i < f.n; i++ {
		// u[i] + (L-2)·e[0][i] − e[i][0] ≤ L−1.
		err = f.Model.AddRow(fmt.Sprintf("load_ub%d", i), -inf, []milp.Term{
			{Var: f.load[i], Coef: 1},
			{Var: f.edge[Depot][i], Coef: l - 2},
			{Var: f.edge[i][Depot], Coef: -1},
		}, l-1)
		if err != nil {
			return err
		}

		// u[i] + e[0][i] + (2−K)·e[i][0] ≥ 2.
		err = f.Model.AddRow(fmt.Sprintf("load_lb%d", i), 2, []milp.Term{
			{Var: f.load[i], Coef: 1},
			{Var: f.edge[Depot][i], Coef: 1},
			{Var: f.edge[i][Depot], Coef: 2 - k},
		}, inf)
		if err != nil {
			return err
		}

		// e[0][i] + e[i][0] ≤ 1.
		err = f.Model.AddRow(fmt.Sprintf("no_outback%d", i), -inf, []milp.Term{
			{Var: f.edge[Depot][i], Coef: 1},
			{Var: f.edge[i][Depot], Coef: 1},
		}, 1)
		if err != nil {
			return err
		}
	}

	for i = 1; i < f.n; i++ {
		for j = 1; j < f.n; j++ {
			if i == j {
				continue
			}
			// u[i] − u[j] + L·e[i][j] + (L-2)·e[j][i] ≤ L−1.
			err = f.Model.AddRow(fmt.Sprintf("mtz%d_%d", i, j), -inf, []milp.Term{
				{Var: f.load[i], Coef: 1},
				{Var: f.load[j], Coef: -1},
				{Var: f.edge[i][j], Coef: l},
				{Var: f.edge[j][i], Coef: l - 2},
			}, l-1)
			if err != nil {
				return err
			}
		}
	}

	return nil
}

// SelectedEdges thresholds the assignment at 0.5 and returns the chosen
// directed edge set in row-major order.
//
// Complexity: O(n²).
func (f *Formulation) SelectedEdges(sol milp.Solution) []Edge {
	var (
		i, j  int
		edges []Edge
	)
	for i = 0; i < f.n; i++ {
		for j = 0; j < f.n; j++ {
			if i == j {
				continue
			}
			if sol.Value(f.edge[i][j]) > 0.5 {
				edges = append(edges, Edge{From: i, To: j})
			}
		}
	}

	return edges
}
