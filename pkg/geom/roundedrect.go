package geom

import "math"

// DefaultSegments is the per-corner arc resolution used for rendering
// rings and tubs.
const DefaultSegments = 24

// corner arc sweeps, clockwise around the shape. Angles are in degrees,
// standard mathematical convention (0° = +x, counter-clockwise positive);
// each individual arc is swept in the decreasing-angle direction.
var cornerSweeps = [4]struct {
	sx, sy     float64 // arc-center offset signs relative to the rectangle center
	start, end float64
}{
	{-1, +1, 180, 90},   // top-left
	{+1, +1, 90, 0},     // top-right
	{+1, -1, 0, -90},    // bottom-right
	{-1, -1, -90, -180}, // bottom-left
}

// RoundedRect generates a clockwise polygon approximating a rectangle with
// four circular-arc corners, centered at (cx, cy).
//
// The effective corner radius is clamped to [0, min(width, height)/2]; an
// oversized radius produces a stadium-like shape rather than an error. Each
// corner arc is sampled at segments intervals, inclusive of both endpoints,
// so the result always has exactly 4*(segments+1) points. Endpoint samples
// are never deduplicated: where adjacent arcs meet (at the maximum radius)
// the shared transition point appears twice; at smaller radii the arc
// endpoints are the two ends of a straight edge.
//
// If rotationDeg is non-zero, every point is rotated about (cx, cy) by that
// angle, counter-clockwise positive.
//
// Callers must ensure width > 0, height > 0 and segments >= 1; behavior is
// undefined otherwise.
func RoundedRect(cx, cy, width, height, radius, rotationDeg float64, segments int) Polygon {
	r := clamp(radius, 0, math.Min(width, height)/2)
	hw, hh := width/2, height/2

	poly := make(Polygon, 0, 4*(segments+1))
	for _, c := range cornerSweeps {
		// Arc-center sits inset by r from the corner, axis-aligned.
		acx := cx + c.sx*(hw-r)
		acy := cy + c.sy*(hh-r)
		for i := 0; i <= segments; i++ {
			t := float64(i) / float64(segments)
			deg := c.start + (c.end-c.start)*t
			rad := deg * math.Pi / 180
			poly = append(poly, Point{
				X: acx + r*math.Cos(rad),
				Y: acy + r*math.Sin(rad),
			})
		}
	}

	if rotationDeg != 0 {
		return poly.Rotate(cx, cy, rotationDeg)
	}
	return poly
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
