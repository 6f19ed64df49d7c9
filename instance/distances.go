package instance

import "gonum.org/v1/gonum/floats"

// Distances computes the n×n pairwise Euclidean cost matrix over the given
// coordinate rows. The result is symmetric with a zero diagonal, so only
// the upper triangle is measured and mirrored.
//
// Errors: ErrRaggedNodes when rows are empty or differ in length.
//
// Complexity: O(n²·dims).
func Distances(nodes [][]float64) ([][]float64, error) {
	n := len(nodes)
	if n == 0 {
		return nil, ErrRaggedNodes
	}
	dims := len(nodes[0])
	if dims == 0 {
		return nil, ErrRaggedNodes
	}

	var i, j int
	for i = 0; i < n; i++ {
		if len(nodes[i]) != dims {
			return nil, ErrRaggedNodes
		}
	}

	var (
		dist = make([][]float64, n)
		d    float64
	)
	for i = 0; i < n; i++ {
		dist[i] = make([]float64, n)
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = floats.Distance(nodes[i], nodes[j], 2)
			dist[i][j] = d
			dist[j][i] = d
		}
	}

	return dist, nil
}
