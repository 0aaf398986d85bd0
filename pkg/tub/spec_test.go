package tub

import (
	"testing"

	"github.com/fitlab/tubfit/pkg/errors"
)

func TestSpecValidate(t *testing.T) {
	valid := Spec{Name: "Test", WidthCm: 25, HeightCm: 50, CornerRadiusPercent: 12}

	tests := []struct {
		name    string
		mutate  func(*Spec)
		wantErr bool
	}{
		{"valid", func(s *Spec) {}, false},
		{"zero radius percent", func(s *Spec) { s.CornerRadiusPercent = 0 }, false},
		{"full radius percent", func(s *Spec) { s.CornerRadiusPercent = 100 }, false},
		{"empty name", func(s *Spec) { s.Name = "" }, true},
		{"zero width", func(s *Spec) { s.WidthCm = 0 }, true},
		{"negative width", func(s *Spec) { s.WidthCm = -25 }, true},
		{"zero height", func(s *Spec) { s.HeightCm = 0 }, true},
		{"negative height", func(s *Spec) { s.HeightCm = -1 }, true},
		{"negative radius percent", func(s *Spec) { s.CornerRadiusPercent = -5 }, true},
		{"radius percent above 100", func(s *Spec) { s.CornerRadiusPercent = 101 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)
			err := s.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidSpec) {
				t.Errorf("Validate() code = %q, want INVALID_SPEC", errors.GetCode(err))
			}
		})
	}
}

func TestSpecDerivedValues(t *testing.T) {
	s := Spec{Name: "Test", WidthCm: 28, HeightCm: 51, CornerRadiusPercent: 12}

	if got := s.CornerRadiusCm(); got != 3.36 {
		t.Errorf("CornerRadiusCm() = %v, want 3.36", got)
	}
	if got := s.AreaCm2(); got != 1428 {
		t.Errorf("AreaCm2() = %v, want 1428", got)
	}
	if s.SwappedSides() {
		t.Error("SwappedSides() = true for width < height")
	}
}

func TestSpecSwappedSides(t *testing.T) {
	s := Spec{Name: "Wide", WidthCm: 51, HeightCm: 28, CornerRadiusPercent: 10}
	if !s.SwappedSides() {
		t.Error("SwappedSides() = false for width > height")
	}
	// The shorter side drives the radius regardless of ordering.
	if got := s.CornerRadiusCm(); got != 2.8 {
		t.Errorf("CornerRadiusCm() = %v, want 2.8", got)
	}
}
