package render

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/taridan/mtsp/mtsp"
)

// circleSegments is the polyline resolution used to draw range circles.
const circleSegments = 64

// falloffFloor is the correlation value reached exactly at MaxRange;
// the field decays as exp(-alpha·d) with alpha = -ln(falloffFloor)/MaxRange.
const falloffFloor = 0.01

// CoverageCircles draws the 2D route view with a dotted sensor-range circle
// of radius st.MaxRange around every visited city.
func CoverageCircles(nodes [][]float64, routes []mtsp.Route, title string, st Style) (*plot.Plot, error) {
	p, err := Routes2D(nodes, routes, title, st)
	if err != nil {
		return nil, err
	}

	var (
		pts   = planar(nodes)
		route mtsp.Route
		node  int
		ring  *plotter.Line
	)
	for _, route = range routes {
		if len(route) == 0 {
			continue
		}
		for _, node = range route[1:] {
			ring, err = plotter.NewLine(circlePolyline(pts[node], st.MaxRange))
			if err != nil {
				return nil, err
			}
			ring.LineStyle.Width = vg.Points(1)
			ring.LineStyle.Dashes = plotutil.Dashes(2)
			p.Add(ring)
		}
	}

	return p, nil
}

// CoverageGradient draws the 2D route view over a heat map of the summed
// correlation field Σ exp(-alpha·dist(cell, city)) across all visited
// cities.
func CoverageGradient(nodes [][]float64, routes []mtsp.Route, title string, st Style) (*plot.Plot, error) {
	if err := checkNodes(nodes, 2, routes); err != nil {
		return nil, err
	}
	if st.GridCells < 2 || st.MaxRange <= 0 {
		return nil, ErrBadDims
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "X (m)"
	p.Y.Label.Text = "Y (m)"

	pts := planar(nodes)
	field := newCorrelationField(pts, routes, st)
	p.Add(plotter.NewHeatMap(field, palette.Heat(12, 1)))

	if err := addRouteLayers(p, pts, routes, st); err != nil {
		return nil, err
	}

	return p, nil
}

// circlePolyline approximates a circle as a closed polyline.
func circlePolyline(c plotter.XY, radius float64) plotter.XYs {
	xys := make(plotter.XYs, circleSegments+1)

	var (
		k     int
		theta float64
	)
	for k = 0; k <= circleSegments; k++ {
		theta = 2 * math.Pi * float64(k) / circleSegments
		xys[k] = plotter.XY{
			X: c.X + radius*math.Cos(theta),
			Y: c.Y + radius*math.Sin(theta),
		}
	}

	return xys
}

// correlationField is a plotter.GridXYZ over the node bounding box (padded
// by the sensor range) whose Z is the summed exponential falloff around
// every visited city.
type correlationField struct {
	xmin, xmax float64
	ymin, ymax float64
	cells      int
	alpha      float64
	centers    []plotter.XY
}

var _ plotter.GridXYZ = (*correlationField)(nil)

// newCorrelationField collects the visited cities and the padded bounding
// box of the node set.
func newCorrelationField(pts []plotter.XY, routes []mtsp.Route, st Style) *correlationField {
	f := &correlationField{
		xmin:  math.Inf(1),
		xmax:  math.Inf(-1),
		ymin:  math.Inf(1),
		ymax:  math.Inf(-1),
		cells: st.GridCells,
		alpha: -math.Log(falloffFloor) / st.MaxRange,
	}

	var pt plotter.XY
	for _, pt = range pts {
		f.xmin = math.Min(f.xmin, pt.X)
		f.xmax = math.Max(f.xmax, pt.X)
		f.ymin = math.Min(f.ymin, pt.Y)
		f.ymax = math.Max(f.ymax, pt.Y)
	}
	f.xmin -= st.MaxRange
	f.xmax += st.MaxRange
	f.ymin -= st.MaxRange
	f.ymax += st.MaxRange

	var (
		route mtsp.Route
		node  int
	)
	for _, route = range routes {
		if len(route) == 0 {
			continue
		}
		for _, node = range route[1:] {
			f.centers = append(f.centers, pts[node])
		}
	}

	return f
}

func (f *correlationField) Dims() (c, r int) { return f.cells, f.cells }

func (f *correlationField) X(c int) float64 {
	return f.xmin + (f.xmax-f.xmin)*float64(c)/float64(f.cells-1)
}

func (f *correlationField) Y(r int) float64 {
	return f.ymin + (f.ymax-f.ymin)*float64(r)/float64(f.cells-1)
}

func (f *correlationField) Z(c, r int) float64 {
	var (
		x    = f.X(c)
		y    = f.Y(r)
		sum  float64
		cent plotter.XY
	)
	for _, cent = range f.centers {
		sum += math.Exp(-f.alpha * math.Hypot(cent.X-x, cent.Y-y))
	}

	return sum
}
