package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fitlab/tubfit/pkg/cache"
	"github.com/fitlab/tubfit/pkg/render"
	"github.com/fitlab/tubfit/pkg/scene"
	"github.com/fitlab/tubfit/pkg/tub"
)

// defaultGridBase is the output base path when --output is not given.
const defaultGridBase = "grid"

// newGridCmd creates the grid command for tiling one scene per bathtub
// into a single comparison sheet.
func newGridCmd() *cobra.Command {
	var formatsStr string
	opts := newSceneOpts()

	cmd := &cobra.Command{
		Use:   "grid [spec-file]...",
		Short: "Tile one scene per bathtub into a comparison sheet",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := render.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return runGrid(cmd.Context(), args, &opts)
		},
	}

	addSceneFlags(cmd, &opts, &formatsStr)
	return cmd
}

// runGrid builds one scene per spec and renders them as a near-square grid.
// Unreadable spec files are skipped with a warning; JSON is skipped when
// other formats are also requested, since the grid is a purely visual
// composition.
func runGrid(ctx context.Context, paths []string, opts *sceneOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %d spec(s) as a grid", len(paths))

	specs, err := loadSpecs(ctx, paths)
	if err != nil {
		return err
	}

	g, err := loadGeometry(opts.shower)
	if err != nil {
		return err
	}

	tiles := make([]render.Tile, len(specs))
	for i, spec := range specs {
		if !g.Fits(spec) {
			logger.Warnf("%s (%gx%g cm) protrudes beyond the inner ring", spec.Name, spec.WidthCm, spec.HeightCm)
		}
		tiles[i] = render.Tile{Shapes: scene.Build(g, []tub.Spec{spec}, opts.buildOptions()...)}
	}

	artifacts := newCache(ctx, opts.noCache)
	defer artifacts.Close()

	tracker := newProgress(logger)
	for _, format := range opts.formats {
		if format == render.FormatJSON && len(opts.formats) > 1 {
			logger.Debugf("Skipping json (grid output is visual only)")
			continue
		}

		spinner := newSpinner(ctx, fmt.Sprintf("rendering %d-tile grid (%s)", len(tiles), format))

		key := cache.ArtifactKey("grid:"+format, g, specs, opts.keyParams())
		data, cached, err := cachedRender(ctx, artifacts, key, func() ([]byte, error) {
			return render.GridBytes(ctx, tiles, format, opts.renderOptions()...)
		})
		spinner.Stop()
		if err != nil {
			return fmt.Errorf("%s: %w", format, err)
		}

		outputPath := basePath(opts.output, defaultGridBase) + "." + format
		if err := writeArtifact(outputPath, data); err != nil {
			return err
		}
		printFile(outputPath)
		printStatus(len(specs), cached)
	}
	tracker.done(fmt.Sprintf("Rendered grid of %d tub(s)", len(specs)))
	return nil
}
