package render

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/taridan/mtsp/mtsp"
)

// isoAngle is the projection angle of the isometric 3D view.
const isoAngle = math.Pi / 6

// Routes3D draws 3-dimensional nodes and routes using an isometric
// projection onto the 2D canvas: gonum/plot renders flat figures, so depth
// is folded into the projection rather than a camera.
//
// Errors: ErrNoNodes, ErrBadDims (dims < 3), ErrBadRoute.
func Routes3D(nodes [][]float64, routes []mtsp.Route, title string, st Style) (*plot.Plot, error) {
	if err := checkNodes(nodes, 3, routes); err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "X-Y (m)"
	p.Y.Label.Text = "Z (m)"

	if err := addRouteLayers(p, isometric(nodes), routes, st); err != nil {
		return nil, err
	}

	return p, nil
}

// isometric projects (x, y, z) rows onto the canvas plane:
//
//	px = (x − y)·cos(30°)
//	py = (x + y)·sin(30°) + z
func isometric(nodes [][]float64) []plotter.XY {
	var (
		cosA = math.Cos(isoAngle)
		sinA = math.Sin(isoAngle)
		pts  = make([]plotter.XY, len(nodes))
		i    int
	)
	for i = 0; i < len(nodes); i++ {
		pts[i] = plotter.XY{
			X: (nodes[i][0] - nodes[i][1]) * cosA,
			Y: (nodes[i][0]+nodes[i][1])*sinA + nodes[i][2],
		}
	}

	return pts
}
