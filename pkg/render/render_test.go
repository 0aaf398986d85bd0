package render

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fitlab/tubfit/pkg/errors"
	"github.com/fitlab/tubfit/pkg/scene"
	"github.com/fitlab/tubfit/pkg/tub"
)

func testShapes(t *testing.T) []scene.Shape {
	t.Helper()
	spec := tub.Spec{Name: "Test", WidthCm: 25, HeightCm: 50, CornerRadiusPercent: 12}
	return scene.Build(scene.DefaultGeometry(), []tub.Spec{spec})
}

func TestValidateFormats(t *testing.T) {
	tests := []struct {
		name    string
		formats []string
		wantErr bool
	}{
		{"valid png", []string{"png"}, false},
		{"valid svg", []string{"svg"}, false},
		{"valid pdf", []string{"pdf"}, false},
		{"valid json", []string{"json"}, false},
		{"valid multiple", []string{"png", "svg", "json"}, false},
		{"empty slice", []string{}, false},
		{"invalid format", []string{"webp"}, true},
		{"mixed valid invalid", []string{"png", "bmp"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFormats(tt.formats)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormats(%v) error = %v, wantErr %v", tt.formats, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("error code = %q, want INVALID_FORMAT", errors.GetCode(err))
			}
		})
	}
}

func TestMarshalScene(t *testing.T) {
	data, err := MarshalScene(testShapes(t))
	if err != nil {
		t.Fatalf("MarshalScene() error = %v", err)
	}

	var decoded struct {
		Shapes []struct {
			Name      string `json:"name"`
			Label     string `json:"label"`
			Points    []struct{ X, Y float64 }
			Border    string  `json:"border"`
			LineWidth float64 `json:"lineWidth"`
		} `json:"shapes"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("round-trip decode failed: %v", err)
	}

	if len(decoded.Shapes) != 4 {
		t.Fatalf("decoded %d shapes, want 4", len(decoded.Shapes))
	}
	tubShape := decoded.Shapes[3]
	if tubShape.Name != "tub:Test" {
		t.Errorf("shape name = %q, want tub:Test", tubShape.Name)
	}
	if len(tubShape.Points) != 100 {
		t.Errorf("tub point count = %d, want 100", len(tubShape.Points))
	}
	if !strings.HasPrefix(tubShape.Border, "#") || len(tubShape.Border) != 9 {
		t.Errorf("border = %q, want #rrggbbaa", tubShape.Border)
	}
}

func TestHexColor(t *testing.T) {
	if got := hexColor(nil); got != "" {
		t.Errorf("hexColor(nil) = %q, want empty", got)
	}
}

func TestHalfExtentCoversAllShapes(t *testing.T) {
	shapes := testShapes(t)
	// The outer box is 84x81, so the half extent is 42.
	if got := halfExtent(shapes); got != 42 {
		t.Errorf("halfExtent = %v, want 42", got)
	}
	if got := halfExtent(nil); got != 0 {
		t.Errorf("halfExtent(nil) = %v, want 0", got)
	}
}

func TestBytesSVG(t *testing.T) {
	data, err := Bytes(testShapes(t), FormatSVG)
	if err != nil {
		t.Fatalf("Bytes() error = %v", err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Error("svg output should contain an <svg element")
	}
}

func TestBytesJSONDelegates(t *testing.T) {
	shapes := testShapes(t)
	direct, err := MarshalScene(shapes)
	if err != nil {
		t.Fatal(err)
	}
	viaBytes, err := Bytes(shapes, FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	if string(direct) != string(viaBytes) {
		t.Error("Bytes(json) should match MarshalScene output")
	}
}

func TestBytesRejectsUnknownFormat(t *testing.T) {
	_, err := Bytes(testShapes(t), "webp")
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error code = %q, want INVALID_FORMAT", errors.GetCode(err))
	}
}

func TestGridBytes(t *testing.T) {
	tiles := []Tile{{Shapes: testShapes(t)}, {Shapes: testShapes(t)}, {Shapes: testShapes(t)}}

	data, err := GridBytes(context.Background(), tiles, FormatSVG)
	if err != nil {
		t.Fatalf("GridBytes() error = %v", err)
	}
	if len(data) == 0 {
		t.Error("grid output is empty")
	}
}

func TestGridBytesEmpty(t *testing.T) {
	_, err := GridBytes(context.Background(), nil, FormatSVG)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error code = %q, want INVALID_INPUT", errors.GetCode(err))
	}
}

func TestGridBytesRejectsJSON(t *testing.T) {
	tiles := []Tile{{Shapes: testShapes(t)}}
	_, err := GridBytes(context.Background(), tiles, FormatJSON)
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("error code = %q, want UNSUPPORTED", errors.GetCode(err))
	}
}
