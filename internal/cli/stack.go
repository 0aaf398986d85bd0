package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fitlab/tubfit/pkg/cache"
	"github.com/fitlab/tubfit/pkg/render"
	"github.com/fitlab/tubfit/pkg/scene"
)

// defaultStackBase is the output base path when --output is not given.
const defaultStackBase = "stack"

// newStackCmd creates the stack command for overlaying all bathtubs in one
// shared scene.
func newStackCmd() *cobra.Command {
	var formatsStr string
	opts := newSceneOpts()

	cmd := &cobra.Command{
		Use:   "stack [spec-file]...",
		Short: "Overlay all bathtubs in one shared scene",
		Long: `Stack draws every bathtub into a single shower stall, all flush with the
left inner wall, so their footprints can be compared directly. With --baby
the baby footprint is placed in the innermost (smallest area) tub.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := render.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return runStack(cmd.Context(), args, &opts)
		},
	}

	addSceneFlags(cmd, &opts, &formatsStr)
	return cmd
}

// runStack builds one shared scene holding every readable spec and writes
// it in each requested format.
func runStack(ctx context.Context, paths []string, opts *sceneOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Stacking %d spec(s) into one scene", len(paths))

	specs, err := loadSpecs(ctx, paths)
	if err != nil {
		return err
	}

	g, err := loadGeometry(opts.shower)
	if err != nil {
		return err
	}
	for _, spec := range specs {
		if !g.Fits(spec) {
			logger.Warnf("%s (%gx%g cm) protrudes beyond the inner ring", spec.Name, spec.WidthCm, spec.HeightCm)
		}
	}

	shapes := scene.Build(g, specs, opts.buildOptions()...)
	logger.Debugf("Scene built: %d shapes", len(shapes))

	artifacts := newCache(ctx, opts.noCache)
	defer artifacts.Close()

	tracker := newProgress(logger)
	for _, format := range opts.formats {
		key := cache.ArtifactKey("stack:"+format, g, specs, opts.keyParams())
		data, cached, err := cachedRender(ctx, artifacts, key, func() ([]byte, error) {
			return render.Bytes(shapes, format, opts.renderOptions()...)
		})
		if err != nil {
			return fmt.Errorf("%s: %w", format, err)
		}

		outputPath := basePath(opts.output, defaultStackBase) + "." + format
		if err := writeArtifact(outputPath, data); err != nil {
			return err
		}
		printFile(outputPath)
		printStatus(len(shapes), cached)
	}
	tracker.done(fmt.Sprintf("Stacked %d tub(s)", len(specs)))
	return nil
}
