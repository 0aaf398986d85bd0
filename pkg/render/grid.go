package render

import (
	"bytes"
	"context"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/fitlab/tubfit/pkg/errors"
	"github.com/fitlab/tubfit/pkg/scene"
)

// Tile is one cell of a grid render: an independent scene with its own
// legend.
type Tile struct {
	Shapes []scene.Shape
}

// GridBytes renders independent scenes side by side on one canvas, tiled
// roughly square (columns = ceil(sqrt(n))). Scenes share no state, so the
// per-tile plots are prepared concurrently; drawing onto the shared canvas
// happens sequentially afterwards.
//
// The json format is not supported for grids.
func GridBytes(ctx context.Context, tiles []Tile, format string, opts ...Option) ([]byte, error) {
	if len(tiles) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no scenes to render")
	}
	if format == FormatJSON {
		return nil, errors.New(errors.ErrCodeUnsupported, "json export is not supported for grid renders")
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cols := int(math.Ceil(math.Sqrt(float64(len(tiles)))))
	rows := (len(tiles) + cols - 1) / cols

	plots, err := buildTilePlots(ctx, tiles, rows, cols, o)
	if err != nil {
		return nil, err
	}

	edge := vg.Length(o.edgeCm) * vg.Centimeter
	target, writeTo, err := newCanvas(format, edge*vg.Length(cols), edge*vg.Length(rows), o.dpi)
	if err != nil {
		return nil, err
	}

	t := draw.Tiles{
		Rows: rows,
		Cols: cols,
		PadX: vg.Millimeter * 2,
		PadY: vg.Millimeter * 2,
	}
	canvases := plot.Align(plots, t, draw.New(target))
	for r := range plots {
		for c := range plots[r] {
			if plots[r][c] != nil {
				plots[r][c].Draw(canvases[r][c])
			}
		}
	}

	var buf bytes.Buffer
	if _, err := writeTo.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// buildTilePlots prepares one plot per tile, in parallel. Cells past the
// last tile stay nil and render as empty space.
func buildTilePlots(ctx context.Context, tiles []Tile, rows, cols int, o options) ([][]*plot.Plot, error) {
	plots := make([][]*plot.Plot, rows)
	for r := range plots {
		plots[r] = make([]*plot.Plot, cols)
	}

	g, ctx := errgroup.WithContext(ctx)
	for i, tile := range tiles {
		tile := tile
		r, c := i/cols, i%cols
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := scenePlot(tile.Shapes, o)
			if err != nil {
				return err
			}
			plots[r][c] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return plots, nil
}
