// Package render draws mTSP instances and solved routes with gonum/plot.
//
// Four views mirror the reporting needs of survey planning:
//
//   - Routes2D — nodes as a scatter, each route as a dashed closed polyline
//     with visit-order labels;
//   - Routes3D — the same view for 3-dimensional nodes, isometrically
//     projected onto the 2D canvas (gonum/plot has no native 3D surface);
//   - CoverageCircles — Routes2D plus a dotted sensor-range circle around
//     every visited city;
//   - CoverageGradient — Routes2D over an exponential-falloff correlation
//     field rendered as a heat map.
//
// All styling is explicit configuration (Style); the package keeps no
// global plotting state.
package render
