// Package mtsp - input validation shared by Formulate and Solve.
//
// Small, side-effect-free helpers enforcing the InvalidInput contract:
// reject every malformed input before any model construction happens.
// Only sentinel errors from types.go; no logging, no panics on user input.
package mtsp

import "math"

// diagTol is the structural tolerance for the zero-diagonal check.
// Independent from costTol (which governs post-solve cost consistency).
const diagTol = 1e-12

// validateCost verifies shape and values of the cost matrix and returns its
// order n on success.
//
// Contract:
//   - cost must be non-nil, square, with n ≥ 1;
//   - every entry finite and non-negative;
//   - diagonal ~0 within diagTol.
//
// Asymmetry is permitted: the formulation is directed.
//
// Complexity: O(n²).
func validateCost(cost [][]float64) (int, error) {
	n := len(cost)
	if n == 0 {
		return 0, ErrNonSquare
	}

	var (
		i, j int
		c    float64
	)
	for i = 0; i < n; i++ {
		if len(cost[i]) != n {
			return 0, ErrNonSquare
		}
		for j = 0; j < n; j++ {
			c = cost[i][j]
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return 0, ErrBadCost
			}
			if c < 0 {
				return 0, ErrBadCost
			}
		}
		if math.Abs(cost[i][i]) > diagTol {
			return 0, ErrNonZeroDiagonal
		}
	}

	return n, nil
}

// resolveBounds applies the K/L defaults against the matrix order and
// validates the resulting pair.
//
// Policy (matching the formulation's contract):
//   - MinCities == 0 ⇒ K = DefaultMinCities; MaxCities == 0 ⇒ L = n.
//   - K ≥ 1, K ≤ L, L ≤ n.
//
// Complexity: O(1).
func resolveBounds(n, minCities, maxCities int) (k, l int, err error) {
	k = minCities
	if k == 0 {
		k = DefaultMinCities
	}
	l = maxCities
	if l == 0 {
		l = n
	}

	if k < 1 || l < 1 {
		return 0, 0, ErrBadCityBounds
	}
	if k > l || l > n {
		return 0, 0, ErrBadCityBounds
	}

	return k, l, nil
}

// validateSalesmen checks the salesmen count against the matrix order.
// For n ≥ 2 there are n-1 cities and each route needs at least one, so the
// count must lie in [1, n-1]. The degenerate n == 1 instance only requires
// positivity (Solve short-circuits it before any model is built).
//
// Complexity: O(1).
func validateSalesmen(n, salesmen int) error {
	if salesmen <= 0 {
		return ErrBadSalesmen
	}
	if n > 1 && salesmen > n-1 {
		return ErrBadSalesmen
	}

	return nil
}
