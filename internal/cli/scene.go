package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fitlab/tubfit/pkg/geom"
	"github.com/fitlab/tubfit/pkg/render"
	"github.com/fitlab/tubfit/pkg/scene"
)

// newSceneCmd creates the scene command for exporting the computed scene as
// JSON. It emits the same positioning data the visual formats draw, without
// rasterizing anything, so other tools can consume the layout.
func newSceneCmd() *cobra.Command {
	var (
		output   string
		shower   string
		baby     bool
		segments int
	)

	cmd := &cobra.Command{
		Use:   "scene [spec-file]...",
		Short: "Export the computed scene geometry as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScene(cmd.Context(), args, output, shower, baby, segments)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&shower, "shower", "", "TOML file overriding the shower geometry")
	cmd.Flags().BoolVar(&baby, "baby", false, "overlay the baby footprint in the innermost tub")
	cmd.Flags().IntVar(&segments, "segments", geom.DefaultSegments, "arc segments per rounded corner")

	return cmd
}

// runScene builds the shared scene for the given specs and writes it as
// JSON to the output path or stdout.
func runScene(ctx context.Context, paths []string, output, shower string, baby bool, segments int) error {
	logger := loggerFromContext(ctx)

	specs, err := loadSpecs(ctx, paths)
	if err != nil {
		return err
	}

	g, err := loadGeometry(shower)
	if err != nil {
		return err
	}

	opts := []scene.Option{scene.WithSegments(segments)}
	if baby {
		opts = append(opts, scene.WithBaby())
	}
	shapes := scene.Build(g, specs, opts...)
	logger.Debugf("Scene built: %d shapes", len(shapes))

	data, err := render.MarshalScene(shapes)
	if err != nil {
		return err
	}

	if err := writeArtifact(output, data); err != nil {
		return err
	}
	if output != "" {
		printFile(output)
	}
	return nil
}
