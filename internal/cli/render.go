package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fitlab/tubfit/pkg/cache"
	"github.com/fitlab/tubfit/pkg/geom"
	"github.com/fitlab/tubfit/pkg/render"
	"github.com/fitlab/tubfit/pkg/scene"
	"github.com/fitlab/tubfit/pkg/tub"
)

// sceneOpts holds the command-line flags shared by the scene-producing
// commands (render, grid, stack).
type sceneOpts struct {
	output   string   // output file path (or base path for multiple formats)
	formats  []string // output formats: "png", "svg", "pdf", "json"
	baby     bool     // overlay the baby footprint in the innermost tub
	segments int      // arc sampling segments per rounded corner
	noCache  bool     // bypass the artifact cache
	shower   string   // optional TOML file overriding the shower geometry
	edgeCm   float64  // canvas edge length in paper centimeters
	dpi      float64  // raster resolution for PNG output
}

// addSceneFlags registers the flags shared by render, grid, and stack.
func addSceneFlags(cmd *cobra.Command, opts *sceneOpts, formatsStr *string) {
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(formatsStr, "format", "f", "", "output format(s): png (default), svg, pdf, json (comma-separated)")
	cmd.Flags().BoolVar(&opts.baby, "baby", false, "overlay the baby footprint in the innermost tub")
	cmd.Flags().IntVar(&opts.segments, "segments", geom.DefaultSegments, "arc segments per rounded corner")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the render artifact cache")
	cmd.Flags().StringVar(&opts.shower, "shower", "", "TOML file overriding the shower geometry")
	cmd.Flags().Float64Var(&opts.edgeCm, "edge", opts.edgeCm, "canvas edge length in centimeters")
	cmd.Flags().Float64Var(&opts.dpi, "dpi", opts.dpi, "raster resolution for png output")
}

// newSceneOpts returns sceneOpts with rendering defaults applied.
func newSceneOpts() sceneOpts {
	return sceneOpts{
		segments: geom.DefaultSegments,
		edgeCm:   render.DefaultEdgeCm,
		dpi:      render.DefaultDPI,
	}
}

// buildOptions converts the flags into scene build options.
func (o *sceneOpts) buildOptions() []scene.Option {
	opts := []scene.Option{scene.WithSegments(o.segments)}
	if o.baby {
		opts = append(opts, scene.WithBaby())
	}
	return opts
}

// renderOptions converts the flags into render options.
func (o *sceneOpts) renderOptions() []render.Option {
	return []render.Option{
		render.WithEdgeCm(o.edgeCm),
		render.WithDPI(o.dpi),
	}
}

// keyParams is the hashed portion of the artifact cache key. Every field
// that changes the rendered bytes must appear here.
type keyParams struct {
	Baby     bool
	Segments int
	EdgeCm   float64
	DPI      float64
}

func (o *sceneOpts) keyParams() keyParams {
	return keyParams{Baby: o.baby, Segments: o.segments, EdgeCm: o.edgeCm, DPI: o.dpi}
}

// newRenderCmd creates the render command for drawing a single bathtub
// inside the shower stall.
//
// Default settings:
//   - format: png at 144 dpi on a 12cm square canvas
//   - segments: 24 per rounded corner
//   - caching: enabled (disable with --no-cache)
func newRenderCmd() *cobra.Command {
	var formatsStr string
	opts := newSceneOpts()

	cmd := &cobra.Command{
		Use:   "render [spec-file]",
		Short: "Render a single bathtub inside the shower stall",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := render.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	addSceneFlags(cmd, &opts, &formatsStr)
	return cmd
}

// runRender loads the spec, builds the scene, and writes it in each
// requested format.
func runRender(ctx context.Context, input string, opts *sceneOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", input)

	spec, err := loadSpec(ctx, input)
	if err != nil {
		return err
	}

	g, err := loadGeometry(opts.shower)
	if err != nil {
		return err
	}
	if !g.Fits(spec) {
		logger.Warnf("%s (%gx%g cm) protrudes beyond the inner ring", spec.Name, spec.WidthCm, spec.HeightCm)
	}

	shapes := scene.Build(g, []tub.Spec{spec}, opts.buildOptions()...)
	logger.Debugf("Scene built: %d shapes", len(shapes))

	artifacts := newCache(ctx, opts.noCache)
	defer artifacts.Close()

	tracker := newProgress(logger)
	for _, format := range opts.formats {
		outputPath := opts.output
		if outputPath == "" || len(opts.formats) > 1 {
			outputPath = basePath(opts.output, input) + "." + format
		}

		key := cache.ArtifactKey(format, g, []tub.Spec{spec}, opts.keyParams())
		data, cached, err := cachedRender(ctx, artifacts, key, func() ([]byte, error) {
			return render.Bytes(shapes, format, opts.renderOptions()...)
		})
		if err != nil {
			return fmt.Errorf("%s: %w", format, err)
		}

		if err := writeArtifact(outputPath, data); err != nil {
			return err
		}
		printFile(outputPath)
		printStatus(len(shapes), cached)
	}
	tracker.done(fmt.Sprintf("Rendered %s in %d format(s)", spec.Name, len(opts.formats)))
	return nil
}

// cachedRender returns the cached artifact for key, rendering and storing
// it on a miss. The bool reports whether the result came from the cache.
func cachedRender(ctx context.Context, c cache.Cache, key string, renderFn func() ([]byte, error)) ([]byte, bool, error) {
	logger := loggerFromContext(ctx)

	if data, ok, err := c.Get(ctx, key); err == nil && ok {
		logger.Debugf("Cache hit for %s", key[:24])
		return data, true, nil
	}

	data, err := renderFn()
	if err != nil {
		return nil, false, err
	}
	if err := c.Set(ctx, key, data, cache.DefaultTTL); err != nil {
		// A write failure only costs the next run a re-render.
		logger.Debugf("Cache write failed: %s", err)
	}
	return data, false, nil
}

// writeArtifact writes rendered bytes to path, or stdout when path is empty.
func writeArtifact(path string, data []byte) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = out.Write(data)
	return err
}
