// Package mtsp_test contains validation tests for input preconditions.
// The focus is on strict sentinel errors and clean table-driven structure;
// every malformed input must be rejected before any model is built.
package mtsp_test

import (
	"errors"
	"math"
	"testing"

	"github.com/taridan/mtsp/mtsp"
)

// mkSym builds a small symmetric zero-diagonal matrix for valid-input rows.
func mkSym(n int) [][]float64 {
	a := make([][]float64, n)
	for i := 0; i < n; i++ {
		a[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			if i != j {
				a[i][j] = float64(1 + (i+j)%3)
			}
		}
	}

	return a
}

func TestFormulate_InvalidInput(t *testing.T) {
	t.Parallel()

	ragged := mkSym(3)
	ragged[1] = ragged[1][:2]

	nan := mkSym(3)
	nan[0][2] = math.NaN()

	inf := mkSym(3)
	inf[2][0] = math.Inf(1)

	neg := mkSym(3)
	neg[1][2] = -0.5

	diag := mkSym(3)
	diag[1][1] = 0.25

	cases := []struct {
		name     string
		cost     [][]float64
		salesmen int
		minC     int
		maxC     int
		want     error
	}{
		{"nil matrix", nil, 1, 0, 0, mtsp.ErrNonSquare},
		{"empty matrix", [][]float64{}, 1, 0, 0, mtsp.ErrNonSquare},
		{"ragged matrix", ragged, 1, 0, 0, mtsp.ErrNonSquare},
		{"NaN entry", nan, 1, 0, 0, mtsp.ErrBadCost},
		{"Inf entry", inf, 1, 0, 0, mtsp.ErrBadCost},
		{"negative entry", neg, 1, 0, 0, mtsp.ErrBadCost},
		{"non-zero diagonal", diag, 1, 0, 0, mtsp.ErrNonZeroDiagonal},
		{"zero salesmen", mkSym(4), 0, 0, 0, mtsp.ErrBadSalesmen},
		{"negative salesmen", mkSym(4), -2, 0, 0, mtsp.ErrBadSalesmen},
		{"too many salesmen", mkSym(4), 4, 0, 0, mtsp.ErrBadSalesmen},
		{"min above max", mkSym(5), 1, 3, 2, mtsp.ErrBadCityBounds},
		{"max above n", mkSym(5), 1, 0, 6, mtsp.ErrBadCityBounds},
		{"negative min", mkSym(5), 1, -1, 0, mtsp.ErrBadCityBounds},
		{"single node", mkSym(1), 1, 0, 0, mtsp.ErrBadSalesmen},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := mtsp.Formulate(tc.cost, tc.salesmen, tc.minC, tc.maxC)
			if !errors.Is(err, tc.want) {
				t.Fatalf("Formulate() error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestSolve_InvalidOptions(t *testing.T) {
	t.Parallel()

	cost := mkSym(4)

	if _, err := mtsp.Solve(cost, mtsp.Options{Salesmen: 1, TimeLimit: -1}); !errors.Is(err, mtsp.ErrBadTimeLimit) {
		t.Fatalf("negative time limit: error = %v, want %v", err, mtsp.ErrBadTimeLimit)
	}
	if _, err := mtsp.Solve(cost, mtsp.Options{Salesmen: 1}); !errors.Is(err, mtsp.ErrNilSolver) {
		t.Fatalf("nil solver: error = %v, want %v", err, mtsp.ErrNilSolver)
	}
	if _, err := mtsp.Solve(cost, mtsp.Options{Salesmen: 0}); !errors.Is(err, mtsp.ErrBadSalesmen) {
		t.Fatalf("zero salesmen: error = %v, want %v", err, mtsp.ErrBadSalesmen)
	}
}

func TestDefaultOptions(t *testing.T) {
	t.Parallel()

	o := mtsp.DefaultOptions(3, nil,
		mtsp.WithMinCities(1),
		mtsp.WithMaxCities(5),
		mtsp.WithTimeLimit(10),
		mtsp.WithVerbose(),
	)
	if o.Salesmen != 3 || o.MinCities != 1 || o.MaxCities != 5 || o.TimeLimit != 10 || !o.Verbose {
		t.Fatalf("unexpected options: %+v", o)
	}
}
