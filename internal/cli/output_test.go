package cli

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/fitlab/tubfit/pkg/errors"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to png", "", []string{"png"}},
		{"single", "svg", []string{"svg"}},
		{"multiple", "png,svg,json", []string{"png", "svg", "json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseFormats(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"no output strips input extension", "", "specs/duck.json", "specs/duck"},
		{"output with format extension", "out.png", "duck.json", "out"},
		{"output with unrelated extension", "out.dat", "duck.json", "out.dat"},
		{"output without extension", "out", "duck.json", "out"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.input); got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func writeSpecFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSpecsSkipsUnreadable(t *testing.T) {
	good := writeSpecFile(t, "duck.json",
		`{"name": "Duck", "widthCm": 28, "heightCm": 51, "cornerRadiusPercent": 12}`)
	bad := writeSpecFile(t, "broken.json", `{"name": `)

	specs, err := loadSpecs(context.Background(), []string{good, bad, "missing.json"})
	if err != nil {
		t.Fatalf("loadSpecs() error = %v", err)
	}
	if len(specs) != 1 {
		t.Fatalf("loaded %d specs, want 1", len(specs))
	}
	if specs[0].Name != "Duck" {
		t.Errorf("spec name = %q, want Duck", specs[0].Name)
	}
}

func TestLoadSpecsAllUnreadable(t *testing.T) {
	_, err := loadSpecs(context.Background(), []string{"missing-a.json", "missing-b.json"})
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error code = %q, want INVALID_INPUT", errors.GetCode(err))
	}
}

func TestLoadGeometryDefault(t *testing.T) {
	g, err := loadGeometry("")
	if err != nil {
		t.Fatalf("loadGeometry(\"\") error = %v", err)
	}
	if g.BoxWidth != 84 || g.BoxHeight != 81 {
		t.Errorf("default box = %gx%g, want 84x81", g.BoxWidth, g.BoxHeight)
	}
}

func TestWriteArtifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.svg")
	if err := writeArtifact(path, []byte("<svg/>")); err != nil {
		t.Fatalf("writeArtifact() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "<svg/>" {
		t.Errorf("written data = %q", data)
	}
}
