// Package geom provides the 2D primitives used to describe shower and
// bathtub footprints: points, ordered polygons, and a rounded-rectangle
// polygon generator.
//
// All coordinates are in centimeters with a y-up axis. Polygons are
// ordered clockwise by construction and closed implicitly: the last point
// does not repeat the first.
//
// # Rounded rectangles
//
// [RoundedRect] approximates a rectangle with four circular-arc corners by
// sampling each 90° arc at a fixed number of segments:
//
//	poly := geom.RoundedRect(0, 0, 60, 60, 4.8, 0, 24)
//	// len(poly) == 4*(24+1) == 100
//
// Arc endpoint samples are never deduplicated: when adjacent arcs meet at
// the maximum radius, the transition point appears twice. Rendered outlines
// depend on the exact point order, which consumers must preserve.
package geom
