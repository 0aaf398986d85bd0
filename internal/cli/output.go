package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fitlab/tubfit/pkg/errors"
	"github.com/fitlab/tubfit/pkg/render"
	"github.com/fitlab/tubfit/pkg/scene"
	"github.com/fitlab/tubfit/pkg/tub"
)

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["png"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{render.FormatPNG}
	}
	return strings.Split(s, ",")
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.png, .svg, etc.), it strips that extension.
// This is used when generating multiple files (e.g., tub.png, tub.svg).
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if render.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// openOutput opens the output path for writing, or stdout when path is empty.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

// nopCloser wraps a writer with a no-op Close so stdout survives defer Close.
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// loadSpec loads a single bathtub spec and warns about suspicious but
// accepted dimensions.
func loadSpec(ctx context.Context, path string) (tub.Spec, error) {
	spec, err := tub.Load(path)
	if err != nil {
		return tub.Spec{}, err
	}
	if spec.SwappedSides() {
		loggerFromContext(ctx).Warnf("%s: width %.4g exceeds height %.4g, sides may be swapped", spec.Name, spec.WidthCm, spec.HeightCm)
	}
	return spec, nil
}

// loadSpecs loads multiple spec files, skipping unreadable ones with a
// warning. It fails only when no spec could be loaded at all.
func loadSpecs(ctx context.Context, paths []string) ([]tub.Spec, error) {
	logger := loggerFromContext(ctx)

	specs := make([]tub.Spec, 0, len(paths))
	for _, path := range paths {
		spec, err := loadSpec(ctx, path)
		if err != nil {
			logger.Warnf("Skipping %s: %s", path, errors.UserMessage(err))
			printWarning("Skipped %s", path)
			continue
		}
		specs = append(specs, spec)
	}
	if len(specs) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no readable bathtub specs")
	}
	return specs, nil
}

// loadGeometry resolves the shower geometry, applying overrides from the
// --shower file when given.
func loadGeometry(path string) (scene.Geometry, error) {
	if path == "" {
		return scene.DefaultGeometry(), nil
	}
	return scene.LoadGeometry(path)
}
