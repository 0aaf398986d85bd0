package scene

import (
	"fmt"

	"github.com/fitlab/tubfit/pkg/geom"
	"github.com/fitlab/tubfit/pkg/tub"
)

// Option configures a Build call.
type Option func(*options)

type options struct {
	withBaby bool
	segments int
}

// WithBaby adds the baby silhouette rectangle, centered on the reference
// tub (the single tub, or the innermost tub when several are stacked).
func WithBaby() Option {
	return func(o *options) { o.withBaby = true }
}

// WithSegments overrides the per-corner arc resolution used for rings and
// tubs. The default is geom.DefaultSegments.
func WithSegments(n int) Option {
	return func(o *options) { o.segments = n }
}

// Build assembles the comparison scene: the three stall shapes followed by
// one footprint per spec in input order, and optionally the baby overlay.
//
// Callers must validate specs beforehand; Build performs no bounds checks
// beyond the radius clamp inside the rounded-rectangle generator, and
// emits oversized tubs unchanged.
func Build(g Geometry, specs []tub.Spec, opts ...Option) []Shape {
	o := options{segments: geom.DefaultSegments}
	for _, opt := range opts {
		opt(&o)
	}

	shapes := make([]Shape, 0, len(specs)+4)
	shapes = append(shapes, stallShapes(g, o.segments)...)

	for i, s := range specs {
		shapes = append(shapes, tubShape(g, s, i, o.segments))
	}

	if o.withBaby {
		if ref := Innermost(specs); ref >= 0 {
			cx, cy := tubCenter(g, specs[ref])
			shapes = append(shapes, Shape{
				Name:   "baby",
				Label:  fmt.Sprintf("baby %gx%g", g.BabyWidth, g.BabyHeight),
				Points: geom.Rect(cx, cy, g.BabyWidth, g.BabyHeight),
				Style:  Style{Fill: babyFill, Border: babyBorder, LineWidth: 1},
			})
		}
	}

	return shapes
}

// stallShapes builds the fixed shower shapes, all centered at the origin.
func stallShapes(g Geometry, segments int) []Shape {
	return []Shape{
		{
			Name:   "outer-box",
			Label:  fmt.Sprintf("shower box %gx%g", g.BoxWidth, g.BoxHeight),
			Points: geom.Rect(0, 0, g.BoxWidth, g.BoxHeight),
			Style:  Style{Border: boxBorder, LineWidth: 2},
		},
		{
			Name:   "outer-ring",
			Label:  fmt.Sprintf("outer ring %gx%g", g.OuterRingWidth, g.OuterRingHeight),
			Points: geom.RoundedRect(0, 0, g.OuterRingWidth, g.OuterRingHeight, g.OuterRingRadius(), 0, segments),
			Style:  Style{Border: outerRingBorder, LineWidth: 1.5},
		},
		{
			Name:   "inner-ring",
			Label:  fmt.Sprintf("inner ring %gx%g", g.InnerRingWidth, g.InnerRingHeight),
			Points: geom.RoundedRect(0, 0, g.InnerRingWidth, g.InnerRingHeight, g.InnerRingRadius(), 0, segments),
			Style:  Style{Border: innerRingBorder, LineWidth: 2},
		},
	}
}

// tubShape places one bathtub footprint, left edge flush with the inner
// ring's left edge and centered vertically. No rotation is applied; width
// is taken as the horizontal side.
func tubShape(g Geometry, s tub.Spec, index, segments int) Shape {
	cx, cy := tubCenter(g, s)
	border, fill := tubColors(index)
	return Shape{
		Name:   "tub:" + s.Name,
		Label:  s.Name,
		Points: geom.RoundedRect(cx, cy, s.WidthCm, s.HeightCm, s.CornerRadiusCm(), 0, segments),
		Style:  Style{Fill: fill, Border: border, LineWidth: 1.5},
	}
}

// tubCenter returns the placement center for a spec under the left-flush
// alignment policy.
func tubCenter(g Geometry, s tub.Spec) (cx, cy float64) {
	return -g.InnerRingWidth/2 + s.WidthCm/2, 0
}

// Innermost returns the index of the spec with the smallest footprint
// area, ties resolved to the first occurrence. It returns -1 for an empty
// slice.
func Innermost(specs []tub.Spec) int {
	best := -1
	for i, s := range specs {
		if best < 0 || s.AreaCm2() < specs[best].AreaCm2() {
			best = i
		}
	}
	return best
}
