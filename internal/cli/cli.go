// Package cli implements the tubfit command-line interface.
//
// This package provides commands for rendering top-down comparison diagrams
// of toy bathtubs inside a fixed shower stall, listing spec fit verdicts,
// exporting computed scenes as JSON, and managing the render artifact cache.
// The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Draw a single tub inside the shower stall
//   - grid: Tile one scene per tub into a comparison sheet
//   - stack: Overlay all tubs in one shared scene
//   - list: Print loaded specs with fit verdicts as a table
//   - scene: Export the computed scene geometry as JSON
//   - cache: Manage the render artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"os"
	"path/filepath"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/fitlab/tubfit/pkg/buildinfo"
	"github.com/fitlab/tubfit/pkg/cache"
)

// appName is the application name used for directories and display.
const appName = "tubfit"

// Execute runs the tubfit CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "Tubfit renders toy bathtub footprints inside a shower stall",
		Long:         `Tubfit is a CLI tool for drawing top-down diagrams of toy bathtubs placed inside a fixed shower enclosure, making it easy to compare which models fit.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(appName + " " + buildinfo.String() + "\n")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newGridCmd())
	root.AddCommand(newStackCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newSceneCmd())
	root.AddCommand(newCacheCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}

// newCache returns the artifact cache for CLI use. With noCache the null
// cache is returned; any cache setup failure also degrades to the null
// cache, since an unusable cache directory should cost a re-render, never
// the render itself.
func newCache(ctx context.Context, noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err == nil {
		c, ferr := cache.NewFileCache(dir)
		if ferr == nil {
			return c
		}
		err = ferr
	}
	loggerFromContext(ctx).Debugf("Artifact cache unavailable, rendering uncached: %s", err)
	return cache.NewNullCache()
}

// cacheDir returns the cache directory using XDG standard (~/.cache/tubfit/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
