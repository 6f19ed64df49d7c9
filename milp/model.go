// Package milp — model builder.
//
// The builder is append-only: columns and rows are added once and never
// removed, so Var handles stay valid for the model's lifetime. All inputs
// are validated at insertion time; a Model that was built without errors is
// structurally sound by construction.
package milp

import (
	"fmt"
	"math"
)

// VarType classifies a column.
type VarType uint8

const (
	// Continuous is a real-valued column.
	Continuous VarType = iota
	// Integer is an integral column within its bounds.
	Integer
	// Binary is an integral column fixed to bounds [0, 1].
	Binary
)

// Sense selects the optimization direction. The zero value minimizes.
type Sense uint8

const (
	// Minimize asks the solver for the least objective value.
	Minimize Sense = iota
	// Maximize asks the solver for the greatest objective value.
	Maximize
)

// Var is an opaque handle to a model column. Handles are dense indices
// assigned in insertion order; -1 is never a valid handle.
type Var int

// Term is one coefficient of a linear row: Coef·x[Var].
type Term struct {
	Var  Var
	Coef float64
}

// column holds one decision variable.
type column struct {
	name string
	typ  VarType
	lo   float64
	hi   float64
	obj  float64
}

// row holds one two-sided linear constraint lo ≤ Σ terms ≤ hi.
type row struct {
	name  string
	terms []Term
	lo    float64
	hi    float64
}

// Model is a column/row MILP under construction. Not safe for concurrent
// mutation; build fully, then hand to a Solver.
type Model struct {
	name  string
	sense Sense
	cols  []column
	rows  []row
}

// NewModel returns an empty minimization model with the given name.
func NewModel(name string) *Model {
	return &Model{name: name, sense: Minimize}
}

// Name returns the model name.
func (m *Model) Name() string { return m.name }

// Sense returns the optimization direction.
func (m *Model) Sense() Sense { return m.sense }

// SetSense sets the optimization direction.
func (m *Model) SetSense(s Sense) { m.sense = s }

// NumVars returns the number of columns added so far.
func (m *Model) NumVars() int { return len(m.cols) }

// NumRows returns the number of rows added so far.
func (m *Model) NumRows() int { return len(m.rows) }

// AddContinuous appends a continuous column with bounds [lo, hi] and
// objective coefficient obj, returning its handle.
//
// Errors: ErrEmptyName, ErrBadBounds (lo > hi or NaN bound),
// ErrBadCoefficient (obj NaN/±Inf).
func (m *Model) AddContinuous(name string, lo, hi, obj float64) (Var, error) {
	return m.addColumn(name, Continuous, lo, hi, obj)
}

// AddInteger appends an integer column with bounds [lo, hi] and objective
// coefficient obj, returning its handle. Bounds need not be integral; the
// engine restricts the column to integral values inside them.
func (m *Model) AddInteger(name string, lo, hi, obj float64) (Var, error) {
	return m.addColumn(name, Integer, lo, hi, obj)
}

// AddBinary appends a {0,1} column with objective coefficient obj.
func (m *Model) AddBinary(name string, obj float64) (Var, error) {
	return m.addColumn(name, Binary, 0, 1, obj)
}

// addColumn validates and appends one column.
func (m *Model) addColumn(name string, typ VarType, lo, hi, obj float64) (Var, error) {
	if name == "" {
		return -1, ErrEmptyName
	}
	if math.IsNaN(lo) || math.IsNaN(hi) || lo > hi {
		return -1, ErrBadBounds
	}
	if math.IsNaN(obj) || math.IsInf(obj, 0) {
		return -1, ErrBadCoefficient
	}
	m.cols = append(m.cols, column{name: name, typ: typ, lo: lo, hi: hi, obj: obj})

	return Var(len(m.cols) - 1), nil
}

// AddRow appends the linear row lo ≤ Σ terms ≤ hi.
//
// Conventions:
//   - equality:  lo == hi
//   - "≤ hi":    lo == math.Inf(-1)
//   - "lo ≤":    hi == math.Inf(+1)
//
// Zero coefficients are legal and kept verbatim (formulations with
// parameter-dependent coefficients may legitimately produce them).
//
// Errors: ErrEmptyName, ErrNoTerms, ErrUnknownVar, ErrBadBounds,
// ErrBadCoefficient.
func (m *Model) AddRow(name string, lo float64, terms []Term, hi float64) error {
	if name == "" {
		return ErrEmptyName
	}
	if len(terms) == 0 {
		return ErrNoTerms
	}
	if math.IsNaN(lo) || math.IsNaN(hi) || lo > hi {
		return ErrBadBounds
	}

	var t Term
	for _, t = range terms {
		if int(t.Var) < 0 || int(t.Var) >= len(m.cols) {
			return ErrUnknownVar
		}
		if math.IsNaN(t.Coef) || math.IsInf(t.Coef, 0) {
			return ErrBadCoefficient
		}
	}

	// Copy terms so the caller may reuse its scratch slice.
	cp := make([]Term, len(terms))
	copy(cp, terms)
	m.rows = append(m.rows, row{name: name, terms: cp, lo: lo, hi: hi})

	return nil
}

// VarName returns the name of column v ("" if v is out of range).
func (m *Model) VarName(v Var) string {
	if int(v) < 0 || int(v) >= len(m.cols) {
		return ""
	}

	return m.cols[v].name
}

// VarType returns the type of column v (Continuous if v is out of range).
func (m *Model) VarType(v Var) VarType {
	if int(v) < 0 || int(v) >= len(m.cols) {
		return Continuous
	}

	return m.cols[v].typ
}

// VarBounds returns the [lo, hi] bounds of column v.
func (m *Model) VarBounds(v Var) (lo, hi float64, err error) {
	if int(v) < 0 || int(v) >= len(m.cols) {
		return 0, 0, ErrUnknownVar
	}

	return m.cols[v].lo, m.cols[v].hi, nil
}

// VarObjective returns the objective coefficient of column v.
func (m *Model) VarObjective(v Var) (float64, error) {
	if int(v) < 0 || int(v) >= len(m.cols) {
		return 0, ErrUnknownVar
	}

	return m.cols[v].obj, nil
}

// RowName returns the name of row i ("" if i is out of range).
func (m *Model) RowName(i int) string {
	if i < 0 || i >= len(m.rows) {
		return ""
	}

	return m.rows[i].name
}

// RowBounds returns the [lo, hi] bounds of row i.
func (m *Model) RowBounds(i int) (lo, hi float64, err error) {
	if i < 0 || i >= len(m.rows) {
		return 0, 0, ErrUnknownVar
	}

	return m.rows[i].lo, m.rows[i].hi, nil
}

// RowTerms returns a copy of the terms of row i (nil if i is out of range).
func (m *Model) RowTerms(i int) []Term {
	if i < 0 || i >= len(m.rows) {
		return nil
	}
	cp := make([]Term, len(m.rows[i].terms))
	copy(cp, m.rows[i].terms)

	return cp
}

// ObjectiveAt evaluates the objective Σ obj_v·x[v] at assignment x.
// The direction (Minimize/Maximize) does not affect the value.
//
// Errors: ErrNilModel, ErrBadAssignment (len(x) != NumVars).
//
// Complexity: O(NumVars).
func (m *Model) ObjectiveAt(x []float64) (float64, error) {
	if m == nil {
		return 0, ErrNilModel
	}
	if len(x) != len(m.cols) {
		return 0, ErrBadAssignment
	}

	var (
		sum float64
		i   int
	)
	for i = 0; i < len(m.cols); i++ {
		sum += m.cols[i].obj * x[i]
	}

	return sum, nil
}

// CheckAssignment verifies x against every column bound, integrality
// requirement, and row of the model, within absolute tolerance tol.
// It returns nil when x is feasible, or ErrBadAssignment wrapped with the
// first offending column/row for context.
//
// Complexity: O(NumVars + Σ row sizes).
func (m *Model) CheckAssignment(x []float64, tol float64) error {
	if m == nil {
		return ErrNilModel
	}
	if len(x) != len(m.cols) {
		return ErrBadAssignment
	}
	if math.IsNaN(tol) || tol < 0 {
		return ErrBadBounds
	}

	// Stage 1: column bounds + integrality.
	var (
		i int
		v float64
		c column
	)
	for i = 0; i < len(m.cols); i++ {
		c = m.cols[i]
		v = x[i]
		if math.IsNaN(v) {
			return fmt.Errorf("column %q is NaN: %w", c.name, ErrBadAssignment)
		}
		if v < c.lo-tol || v > c.hi+tol {
			return fmt.Errorf("column %q = %v outside [%v, %v]: %w", c.name, v, c.lo, c.hi, ErrBadAssignment)
		}
		if c.typ != Continuous && math.Abs(v-math.Round(v)) > tol {
			return fmt.Errorf("column %q = %v not integral: %w", c.name, v, ErrBadAssignment)
		}
	}

	// Stage 2: rows.
	var (
		r   row
		t   Term
		sum float64
	)
	for i = 0; i < len(m.rows); i++ {
		r = m.rows[i]
		sum = 0
		for _, t = range r.terms {
			sum += t.Coef * x[t.Var]
		}
		if sum < r.lo-tol || sum > r.hi+tol {
			return fmt.Errorf("row %q = %v outside [%v, %v]: %w", r.name, sum, r.lo, r.hi, ErrBadAssignment)
		}
	}

	return nil
}
