package instance

import "math"

// GenerateGrid lays out a rectangular survey grid of xSize columns by ySize
// rows of planar nodes, vertically centered on the start node, with a
// dedicated entry node at start and an exit node one column past the grid.
// ySize == 0 selects a square grid (ySize = xSize).
//
// The first returned node is the entry (depot candidate) and the last is
// the exit; the xSize·ySize interior nodes sit between them in column-major
// order.
//
// Errors: ErrBadGenOptions for non-positive xSize or negative ySize.
//
// Complexity: O(xSize·ySize).
func GenerateGrid(xSize, ySize int, start [2]float64) ([][]float64, error) {
	if xSize <= 0 || ySize < 0 {
		return nil, ErrBadGenOptions
	}
	if ySize == 0 {
		ySize = xSize
	}

	var (
		nodes   = make([][]float64, 0, xSize*ySize+2)
		yHalfLo = int(math.Floor(float64(ySize) / 2.0))
		yHalfHi = int(math.Ceil(float64(ySize) / 2.0))
		yBase   = int(math.Ceil(start[1]))
		x0      = int(start[0])
		i, j    int
	)

	nodes = append(nodes, []float64{start[0], start[1]})
	for i = x0 + 1; i <= x0+xSize; i++ {
		for j = yBase - yHalfLo; j < yBase+yHalfHi; j++ {
			nodes = append(nodes, []float64{float64(i), float64(j)})
		}
	}
	nodes = append(nodes, []float64{float64(x0 + xSize + 1), start[1]})

	return nodes, nil
}
