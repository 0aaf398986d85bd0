package scene

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/fitlab/tubfit/pkg/errors"
	"github.com/fitlab/tubfit/pkg/tub"
)

// Geometry holds the shower stall dimensions, in centimeters. It is passed
// into Build explicitly so alternate stalls can be tested without
// recompiling; the zero value is not usable, start from DefaultGeometry.
type Geometry struct {
	BoxWidth  float64 `toml:"boxWidth"`  // outer box, square corners
	BoxHeight float64 `toml:"boxHeight"`

	OuterRingWidth  float64 `toml:"outerRingWidth"`
	OuterRingHeight float64 `toml:"outerRingHeight"`

	InnerRingWidth  float64 `toml:"innerRingWidth"`
	InnerRingHeight float64 `toml:"innerRingHeight"`

	// RingCornerPercent is the ring corner radius as a percentage of the
	// ring's shorter side.
	RingCornerPercent float64 `toml:"ringCornerPercent"`

	BabyWidth  float64 `toml:"babyWidth"`
	BabyHeight float64 `toml:"babyHeight"`
}

// DefaultGeometry returns the fixed stall measurements: 84x81 outer box,
// 78x75 outer ring, 60x60 inner ring, 8% ring corners, 17x40 baby overlay.
func DefaultGeometry() Geometry {
	return Geometry{
		BoxWidth:          84,
		BoxHeight:         81,
		OuterRingWidth:    78,
		OuterRingHeight:   75,
		InnerRingWidth:    60,
		InnerRingHeight:   60,
		RingCornerPercent: 8,
		BabyWidth:         17,
		BabyHeight:        40,
	}
}

// OuterRingRadius returns the outer ring corner radius in centimeters.
func (g Geometry) OuterRingRadius() float64 {
	return min(g.OuterRingWidth, g.OuterRingHeight) * g.RingCornerPercent / 100
}

// InnerRingRadius returns the inner ring corner radius in centimeters.
func (g Geometry) InnerRingRadius() float64 {
	return min(g.InnerRingWidth, g.InnerRingHeight) * g.RingCornerPercent / 100
}

// Fits reports whether the spec's bounding box stays inside the inner
// ring's extents. Corner rounding is ignored; this is the coarse verdict
// shown by the list command, the rendered diagram remains the authority.
func (g Geometry) Fits(s tub.Spec) bool {
	return s.WidthCm <= g.InnerRingWidth && s.HeightCm <= g.InnerRingHeight
}

// Validate checks the geometry for non-positive dimensions.
func (g Geometry) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"boxWidth", g.BoxWidth},
		{"boxHeight", g.BoxHeight},
		{"outerRingWidth", g.OuterRingWidth},
		{"outerRingHeight", g.OuterRingHeight},
		{"innerRingWidth", g.InnerRingWidth},
		{"innerRingHeight", g.InnerRingHeight},
		{"babyWidth", g.BabyWidth},
		{"babyHeight", g.BabyHeight},
	}
	for _, f := range fields {
		if f.value <= 0 {
			return errors.New(errors.ErrCodeInvalidGeometry, "%s must be positive, got %v", f.name, f.value)
		}
	}
	if g.RingCornerPercent < 0 || g.RingCornerPercent > 100 {
		return errors.New(errors.ErrCodeInvalidGeometry, "ringCornerPercent must be in [0, 100], got %v", g.RingCornerPercent)
	}
	return nil
}

// LoadGeometry reads a TOML geometry override file. Fields omitted from
// the file keep their default values; unknown keys are rejected so typos
// do not silently fall back to a default.
func LoadGeometry(path string) (Geometry, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Geometry{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "geometry file %s", path)
	}
	if err != nil {
		return Geometry{}, fmt.Errorf("read %s: %w", path, err)
	}

	g := DefaultGeometry()
	md, err := toml.Decode(string(data), &g)
	if err != nil {
		return Geometry{}, fmt.Errorf("%s: decode: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Geometry{}, errors.New(errors.ErrCodeInvalidGeometry, "%s: unknown key %q", path, undecoded[0].String())
	}
	if err := g.Validate(); err != nil {
		return Geometry{}, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
