// Package mtsp — cost utilities shared by solving and verification.
package mtsp

import "math"

// roundScale controls final cost stabilization precision (1e-9).
// Avoids tiny FP drifts across platforms/opt levels without affecting optimality.
const roundScale = 1e9

// costTol is the absolute tolerance used when comparing the solver-reported
// objective against the summed cost of the selected edges.
const costTol = 1e-6

// EdgeSetCost sums cost[e.From][e.To] over the edge set.
//
// Contract: cost must be square n×n and every edge endpoint within [0, n).
// Returns ErrMalformedSolution on an out-of-range endpoint.
//
// Complexity: O(|edges|).
func EdgeSetCost(cost [][]float64, edges []Edge) (float64, error) {
	var (
		n   = len(cost)
		sum float64
		e   Edge
	)
	for _, e = range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return 0, ErrMalformedSolution
		}
		sum += cost[e.From][e.To]
	}

	return round1e9(sum), nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
