package scene

import (
	"math"
	"testing"

	"github.com/fitlab/tubfit/pkg/tub"
)

func testSpec(name string, w, h, p float64) tub.Spec {
	return tub.Spec{Name: name, WidthCm: w, HeightCm: h, CornerRadiusPercent: p}
}

func findShape(t *testing.T, shapes []Shape, name string) Shape {
	t.Helper()
	for _, s := range shapes {
		if s.Name == name {
			return s
		}
	}
	t.Fatalf("shape %q not found", name)
	return Shape{}
}

func TestBuildShapeCount(t *testing.T) {
	g := DefaultGeometry()
	spec := testSpec("Test", 25, 50, 12)

	tests := []struct {
		name  string
		specs []tub.Spec
		opts  []Option
		want  int
	}{
		{"single tub", []tub.Spec{spec}, nil, 4},
		{"single tub with baby", []tub.Spec{spec}, []Option{WithBaby()}, 5},
		{"no tubs", nil, nil, 3},
		{"no tubs with baby", nil, []Option{WithBaby()}, 3},
		{"three tubs", []tub.Spec{spec, spec, spec}, nil, 6},
		{"three tubs with baby", []tub.Spec{spec, spec, spec}, []Option{WithBaby()}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shapes := Build(g, tt.specs, tt.opts...)
			if len(shapes) != tt.want {
				t.Errorf("Build() returned %d shapes, want %d", len(shapes), tt.want)
			}
		})
	}
}

func TestBuildTubPlacement(t *testing.T) {
	g := DefaultGeometry()
	shapes := Build(g, []tub.Spec{testSpec("Ikea", 28, 51, 12)})
	tubShape := findShape(t, shapes, "tub:Ikea")

	min, max := tubShape.Bounds()

	// Left edge flush with the inner ring's left wall (x = -30), vertically
	// centered: center at (-16, 0) for a 28cm-wide tub.
	if got := (min.X + max.X) / 2; math.Abs(got-(-16)) > 1e-9 {
		t.Errorf("tub centerX = %v, want -16", got)
	}
	if got := (min.Y + max.Y) / 2; math.Abs(got) > 1e-9 {
		t.Errorf("tub centerY = %v, want 0", got)
	}
	if math.Abs(min.X-(-30)) > 1e-9 {
		t.Errorf("tub left edge = %v, want -30", min.X)
	}
	if math.Abs((max.X-min.X)-28) > 1e-9 || math.Abs((max.Y-min.Y)-51) > 1e-9 {
		t.Errorf("tub extent = %vx%v, want 28x51", max.X-min.X, max.Y-min.Y)
	}
}

func TestBuildTubPointCount(t *testing.T) {
	g := DefaultGeometry()
	shapes := Build(g, []tub.Spec{testSpec("Test", 25, 50, 12)})
	tubShape := findShape(t, shapes, "tub:Test")

	// Default resolution is 24 segments per corner.
	if got := len(tubShape.Points); got != 100 {
		t.Errorf("tub polygon has %d points, want 100", got)
	}

	coarse := Build(g, []tub.Spec{testSpec("Test", 25, 50, 12)}, WithSegments(4))
	if got := len(findShape(t, coarse, "tub:Test").Points); got != 20 {
		t.Errorf("tub polygon with 4 segments has %d points, want 20", got)
	}
}

func TestBuildRingRadii(t *testing.T) {
	g := DefaultGeometry()

	if got := g.OuterRingRadius(); got != 6.0 {
		t.Errorf("OuterRingRadius() = %v, want 6.0", got)
	}
	if got := g.InnerRingRadius(); got != 4.8 {
		t.Errorf("InnerRingRadius() = %v, want 4.8", got)
	}
}

func TestBuildStallShapesCentered(t *testing.T) {
	shapes := Build(DefaultGeometry(), nil)

	wants := map[string][2]float64{
		"outer-box":  {84, 81},
		"outer-ring": {78, 75},
		"inner-ring": {60, 60},
	}
	for name, want := range wants {
		s := findShape(t, shapes, name)
		min, max := s.Bounds()
		if math.Abs(min.X+max.X) > 1e-9 || math.Abs(min.Y+max.Y) > 1e-9 {
			t.Errorf("%s not centered at origin: bounds %v..%v", name, min, max)
		}
		if math.Abs((max.X-min.X)-want[0]) > 1e-9 || math.Abs((max.Y-min.Y)-want[1]) > 1e-9 {
			t.Errorf("%s extent = %vx%v, want %vx%v", name, max.X-min.X, max.Y-min.Y, want[0], want[1])
		}
	}
}

func TestBuildOversizedTubProtrudes(t *testing.T) {
	g := DefaultGeometry()
	shapes := Build(g, []tub.Spec{testSpec("Huge", 70, 90, 10)})
	huge := findShape(t, shapes, "tub:Huge")

	min, max := huge.Bounds()
	if max.X <= g.InnerRingWidth/2 && max.Y <= g.InnerRingHeight/2 && min.Y >= -g.InnerRingHeight/2 {
		t.Error("oversized tub should protrude past the inner ring, not be clipped")
	}
	// 70cm wide, left-flush at -30: right edge at +40.
	if math.Abs(max.X-40) > 1e-9 {
		t.Errorf("oversized tub right edge = %v, want 40", max.X)
	}
}

func TestBuildPaletteCycles(t *testing.T) {
	specs := make([]tub.Spec, len(tubPalette)+1)
	for i := range specs {
		specs[i] = testSpec(string(rune('a'+i)), 20, 40, 10)
	}
	shapes := Build(DefaultGeometry(), specs)

	first := shapes[3]  // first tub
	cycled := shapes[3+len(tubPalette)]
	if first.Style.Border != cycled.Style.Border {
		t.Error("palette should cycle by index modulo palette size")
	}
	second := shapes[4]
	if first.Style.Border == second.Style.Border {
		t.Error("adjacent tubs should receive distinct palette colors")
	}
}

func TestInnermost(t *testing.T) {
	tests := []struct {
		name  string
		specs []tub.Spec
		want  int
	}{
		{"empty", nil, -1},
		{"single", []tub.Spec{testSpec("a", 25, 50, 10)}, 0},
		{
			// Areas 500, 300, 300: first occurrence of the minimum wins.
			name: "tie keeps first minimum",
			specs: []tub.Spec{
				testSpec("a", 25, 20, 10),
				testSpec("b", 15, 20, 10),
				testSpec("c", 20, 15, 10),
			},
			want: 1,
		},
		{
			name: "minimum at end",
			specs: []tub.Spec{
				testSpec("a", 30, 50, 10),
				testSpec("b", 28, 50, 10),
				testSpec("c", 20, 40, 10),
			},
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Innermost(tt.specs); got != tt.want {
				t.Errorf("Innermost() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBuildBabyFollowsInnermost(t *testing.T) {
	g := DefaultGeometry()
	specs := []tub.Spec{
		testSpec("big", 50, 55, 10),   // area 2750
		testSpec("small", 20, 40, 10), // area 800, innermost
	}
	shapes := Build(g, specs, WithBaby())
	baby := findShape(t, shapes, "baby")

	min, max := baby.Bounds()
	// Innermost tub center: (-30 + 10, 0) = (-20, 0); baby is 17x40.
	if got := (min.X + max.X) / 2; math.Abs(got-(-20)) > 1e-9 {
		t.Errorf("baby centerX = %v, want -20", got)
	}
	if math.Abs((max.X-min.X)-17) > 1e-9 || math.Abs((max.Y-min.Y)-40) > 1e-9 {
		t.Errorf("baby extent = %vx%v, want 17x40", max.X-min.X, max.Y-min.Y)
	}
	// Plain rectangle, no rounding.
	if len(baby.Points) != 4 {
		t.Errorf("baby polygon has %d points, want 4", len(baby.Points))
	}
}

func TestGeometryFits(t *testing.T) {
	g := DefaultGeometry()
	tests := []struct {
		name string
		spec tub.Spec
		want bool
	}{
		{"comfortably inside", testSpec("a", 25, 50, 10), true},
		{"exactly inner ring", testSpec("b", 60, 60, 8), true},
		{"too wide", testSpec("c", 61, 50, 10), false},
		{"too tall", testSpec("d", 25, 61, 10), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.Fits(tt.spec); got != tt.want {
				t.Errorf("Fits(%s) = %v, want %v", tt.spec.Name, got, tt.want)
			}
		})
	}
}

func TestLoadGeometryDefaults(t *testing.T) {
	g := DefaultGeometry()
	if err := g.Validate(); err != nil {
		t.Fatalf("default geometry invalid: %v", err)
	}
}
