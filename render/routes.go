package render

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/taridan/mtsp/mtsp"
)

// Routes2D draws the node set and the solved routes in the X-Y plane.
// Nodes render as circles, every route as a dashed closed polyline in its
// own color, with the visit order annotated next to each node.
//
// Errors: ErrNoNodes, ErrBadDims (dims < 2), ErrBadRoute, or a plotter
// construction failure.
func Routes2D(nodes [][]float64, routes []mtsp.Route, title string, st Style) (*plot.Plot, error) {
	if err := checkNodes(nodes, 2, routes); err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "X (m)"
	p.Y.Label.Text = "Y (m)"

	if err := addRouteLayers(p, planar(nodes), routes, st); err != nil {
		return nil, err
	}

	return p, nil
}

// Save writes the plot with the style's figure size.
func Save(p *plot.Plot, st Style, path string) error {
	w, h := st.size()

	return p.Save(w, h, path)
}

// addRouteLayers adds the scatter, route polylines and visit-order labels
// to p over already-projected planar points.
func addRouteLayers(p *plot.Plot, pts []plotter.XY, routes []mtsp.Route, st Style) error {
	scatter, err := plotter.NewScatter(plotter.XYs(pts))
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	scatter.GlyphStyle.Radius = st.NodeRadius
	p.Add(scatter)
	p.Legend.Add("nodes", scatter)

	var (
		r     int
		route mtsp.Route
		line  *plotter.Line
	)
	for r, route = range routes {
		line, err = plotter.NewLine(closedPolyline(pts, route))
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(1)
		line.LineStyle.Dashes = plotutil.Dashes(1)
		line.LineStyle.Color = plotutil.Color(r)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("route #%d", r), line)

		if err = addOrderLabels(p, pts, route); err != nil {
			return err
		}
	}

	return nil
}

// closedPolyline maps a route onto canvas points, re-appending the depot to
// close the cycle visually.
func closedPolyline(pts []plotter.XY, route mtsp.Route) plotter.XYs {
	xys := make(plotter.XYs, 0, len(route)+1)

	var node int
	for _, node = range route {
		xys = append(xys, pts[node])
	}
	if len(route) > 0 {
		xys = append(xys, pts[route[0]])
	}

	return xys
}

// addOrderLabels annotates each route node with its visit order.
func addOrderLabels(p *plot.Plot, pts []plotter.XY, route mtsp.Route) error {
	var (
		xys    = make(plotter.XYs, len(route))
		texts  = make([]string, len(route))
		offset = 0.15
		k      int
		node   int
	)
	for k, node = range route {
		xys[k] = plotter.XY{X: pts[node].X + offset, Y: pts[node].Y + offset}
		texts[k] = fmt.Sprintf("%d", k)
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return err
	}
	p.Add(labels)

	return nil
}

// planar projects coordinate rows onto their first two dimensions.
func planar(nodes [][]float64) []plotter.XY {
	pts := make([]plotter.XY, len(nodes))

	var i int
	for i = 0; i < len(nodes); i++ {
		pts[i] = plotter.XY{X: nodes[i][0], Y: nodes[i][1]}
	}

	return pts
}

// checkNodes validates the coordinate set and route indices for a view
// requiring at least minDims dimensions.
func checkNodes(nodes [][]float64, minDims int, routes []mtsp.Route) error {
	if len(nodes) == 0 {
		return ErrNoNodes
	}

	var i int
	for i = 0; i < len(nodes); i++ {
		if len(nodes[i]) < minDims {
			return ErrBadDims
		}
	}

	var (
		route mtsp.Route
		node  int
	)
	for _, route = range routes {
		for _, node = range route {
			if node < 0 || node >= len(nodes) {
				return ErrBadRoute
			}
		}
	}

	return nil
}
