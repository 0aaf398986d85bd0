// Package render rasterizes comparison scenes using gonum/plot.
//
// The scene package produces shapes in world centimeters; this package maps
// them onto a square canvas with symmetric axis ranges so one centimeter
// spans the same distance on both axes. Rounded rectangles would otherwise
// distort into ellipse-like outlines.
//
// Supported formats are png, svg, pdf and json (the raw scene geometry,
// useful for downstream tooling or tests). Rendering options follow the
// functional-option pattern:
//
//	data, err := render.Bytes(shapes, "png", render.WithDPI(192))
//
// Grid rendering tiles independent scenes onto a single canvas; the tiles
// share no state and are prepared concurrently.
package render
