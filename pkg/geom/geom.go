package geom

import "math"

// Point is a 2D coordinate in centimeters, y-up.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Polygon is an ordered sequence of points forming a closed outline.
// The first and last point are not required to coincide; closure is
// implicit. Point order is significant and must be preserved.
type Polygon []Point

// Bounds returns the axis-aligned bounding box of the polygon.
// It returns zero points for an empty polygon.
func (p Polygon) Bounds() (min, max Point) {
	if len(p) == 0 {
		return Point{}, Point{}
	}
	min, max = p[0], p[0]
	for _, pt := range p[1:] {
		min.X = math.Min(min.X, pt.X)
		min.Y = math.Min(min.Y, pt.Y)
		max.X = math.Max(max.X, pt.X)
		max.Y = math.Max(max.Y, pt.Y)
	}
	return min, max
}

// Rotate returns a copy of the polygon with every point rotated about
// (cx, cy) by deg degrees, counter-clockwise positive.
func (p Polygon) Rotate(cx, cy, deg float64) Polygon {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)

	out := make(Polygon, len(p))
	for i, pt := range p {
		dx, dy := pt.X-cx, pt.Y-cy
		out[i] = Point{
			X: cx + dx*cos - dy*sin,
			Y: cy + dx*sin + dy*cos,
		}
	}
	return out
}

// Rect returns the four corners of an axis-aligned rectangle centered at
// (cx, cy), in clockwise order starting at the top-left corner.
func Rect(cx, cy, width, height float64) Polygon {
	hw, hh := width/2, height/2
	return Polygon{
		{X: cx - hw, Y: cy + hh},
		{X: cx + hw, Y: cy + hh},
		{X: cx + hw, Y: cy - hh},
		{X: cx - hw, Y: cy - hh},
	}
}
