package scene

import (
	"image/color"

	"github.com/fitlab/tubfit/pkg/geom"
)

// Style holds the presentation metadata for a shape.
type Style struct {
	Fill      color.Color // nil for outline-only shapes
	Border    color.Color
	LineWidth float64 // stroke width in points
}

// Shape is a styled polygon ready for rendering. Shapes are created fresh
// per Build call and never mutated afterward.
type Shape struct {
	Name   string // stable identifier, e.g. "inner-ring" or "tub:Stokke Flexi"
	Label  string // legend label; empty shapes get no legend entry
	Points geom.Polygon
	Style  Style
}

// Bounds returns the shape's axis-aligned bounding box.
func (s Shape) Bounds() (min, max geom.Point) {
	return s.Points.Bounds()
}
