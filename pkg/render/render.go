package render

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/fitlab/tubfit/pkg/scene"
)

// scenePlot builds a plot for one scene. Axes are hidden and the data
// ranges are symmetric and identical on both axes; combined with a square
// drawing area this preserves equal X/Y scale.
func scenePlot(shapes []scene.Shape, o options) (*plot.Plot, error) {
	p := plot.New()
	p.HideAxes()

	half := halfExtent(shapes) + o.marginCm
	p.X.Min, p.X.Max = -half, half
	p.Y.Min, p.Y.Max = -half, half

	for _, s := range shapes {
		poly, err := shapePolygon(s)
		if err != nil {
			return nil, fmt.Errorf("shape %s: %w", s.Name, err)
		}
		p.Add(poly)
		if o.legend && s.Label != "" {
			p.Legend.Add(s.Label, poly)
		}
	}

	if o.legend {
		p.Legend.Top = true
		p.Legend.Left = true
		p.Legend.Padding = vg.Points(2)
	}
	return p, nil
}

// shapePolygon converts a scene shape into a gonum polygon plotter.
func shapePolygon(s scene.Shape) (*plotter.Polygon, error) {
	xys := make(plotter.XYs, len(s.Points))
	for i, pt := range s.Points {
		xys[i].X = pt.X
		xys[i].Y = pt.Y
	}

	poly, err := plotter.NewPolygon(xys)
	if err != nil {
		return nil, err
	}
	// A nil fill must stay transparent; the vg canvases treat a nil color
	// as black.
	poly.Color = color.Transparent
	if s.Style.Fill != nil {
		poly.Color = s.Style.Fill
	}
	poly.LineStyle.Color = s.Style.Border
	poly.LineStyle.Width = vg.Points(s.Style.LineWidth)
	return poly, nil
}

// halfExtent returns the half-width of the smallest origin-centered square
// covering every shape.
func halfExtent(shapes []scene.Shape) float64 {
	var half float64
	for _, s := range shapes {
		min, max := s.Bounds()
		for _, v := range []float64{min.X, max.X, min.Y, max.Y} {
			half = math.Max(half, math.Abs(v))
		}
	}
	return half
}
