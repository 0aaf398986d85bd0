// Package tub defines the bathtub footprint record and its file loaders.
//
// A spec describes a candidate product by its footprint only: width and
// height in centimeters plus a corner radius expressed as a percentage of
// the shorter side. By convention widthCm is the shorter side; the loaders
// accept specs that violate the convention but expose [Spec.SwappedSides]
// so callers can warn about them.
package tub

import (
	"github.com/fitlab/tubfit/pkg/errors"
)

// Spec is an immutable bathtub footprint record.
type Spec struct {
	Name                string  `json:"name" toml:"name"`
	WidthCm             float64 `json:"widthCm" toml:"widthCm"`
	HeightCm            float64 `json:"heightCm" toml:"heightCm"`
	CornerRadiusPercent float64 `json:"cornerRadiusPercent" toml:"cornerRadiusPercent"`
}

// CornerRadiusCm returns the corner radius in centimeters: the configured
// percentage of the shorter side.
func (s Spec) CornerRadiusCm() float64 {
	return min(s.WidthCm, s.HeightCm) * s.CornerRadiusPercent / 100
}

// AreaCm2 returns the footprint area in square centimeters.
func (s Spec) AreaCm2() float64 {
	return s.WidthCm * s.HeightCm
}

// SwappedSides reports whether the spec violates the width-as-shorter-side
// convention. Such specs are still valid; the layout simply will not rotate
// them, so the rendered tub appears wider than tall.
func (s Spec) SwappedSides() bool {
	return s.WidthCm > s.HeightCm
}

// Validate checks the spec against its input contract. It returns a coded
// error naming the offending field, or nil if the spec is acceptable.
func (s Spec) Validate() error {
	if s.Name == "" {
		return errors.New(errors.ErrCodeInvalidSpec, "name cannot be empty")
	}
	if s.WidthCm <= 0 {
		return errors.New(errors.ErrCodeInvalidSpec, "%s: widthCm must be positive, got %v", s.Name, s.WidthCm)
	}
	if s.HeightCm <= 0 {
		return errors.New(errors.ErrCodeInvalidSpec, "%s: heightCm must be positive, got %v", s.Name, s.HeightCm)
	}
	if s.CornerRadiusPercent < 0 || s.CornerRadiusPercent > 100 {
		return errors.New(errors.ErrCodeInvalidSpec, "%s: cornerRadiusPercent must be in [0, 100], got %v", s.Name, s.CornerRadiusPercent)
	}
	return nil
}
