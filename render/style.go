package render

import (
	"errors"
	"math"

	"gonum.org/v1/plot/vg"
)

var (
	// ErrNoNodes indicates an empty coordinate set.
	ErrNoNodes = errors.New("render: no nodes to draw")

	// ErrBadDims indicates coordinates with too few dimensions for the view.
	ErrBadDims = errors.New("render: insufficient coordinate dimensions")

	// ErrBadRoute indicates a route index outside the coordinate set.
	ErrBadRoute = errors.New("render: route references unknown node")
)

// baseWidthPt is the base figure width in points (a LaTeX \textwidth),
// scaled by Style.Scale and paired with a golden-ratio height.
const baseWidthPt = 495.0

// Style is the explicit plot configuration. The zero value is unusable;
// start from DefaultStyle.
type Style struct {
	// Scale multiplies the base figure size.
	Scale float64
	// NodeRadius is the scatter glyph radius.
	NodeRadius vg.Length
	// MaxRange is the sensor range used by the coverage views.
	MaxRange float64
	// GridCells is the heat-map resolution per axis.
	GridCells int
}

// DefaultStyle returns the canonical figure configuration.
func DefaultStyle() Style {
	return Style{
		Scale:      2.0,
		NodeRadius: vg.Points(3),
		MaxRange:   2.0,
		GridCells:  200,
	}
}

// size returns the figure width and golden-ratio height.
func (s Style) size() (w, h vg.Length) {
	golden := (math.Sqrt(5.0) - 1.0) / 2.0
	w = vg.Points(baseWidthPt * s.Scale)

	return w, vg.Length(float64(w) * golden)
}
