// Package scene assembles the shapes of a shower/bathtub comparison
// diagram: the fixed shower geometry (outer box, outer ring, inner ring),
// one footprint per bathtub spec, and an optional baby silhouette.
//
// The package is pure layout. It consumes an injected [Geometry] plus
// bathtub specs and produces an ordered list of styled [Shape] values in
// world coordinates (centimeters, origin at the shower center, y-up).
// Rasterization is the render package's concern.
//
// # Alignment policy
//
// Every tub is pushed against the left wall of the inner ring and centered
// vertically: centerX = -innerRingWidth/2 + tubWidth/2, centerY = 0. Tubs
// wider or taller than the inner ring are emitted unchanged; the visible
// protrusion is exactly the signal the comparison is meant to deliver, so
// no overlap correction is applied.
package scene
