package render

import (
	"bytes"
	"io"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/fitlab/tubfit/pkg/errors"
	"github.com/fitlab/tubfit/pkg/scene"
)

// Output formats.
const (
	FormatPNG  = "png"
	FormatSVG  = "svg"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPNG:  true,
	FormatSVG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// ValidateFormats checks that all requested formats are supported.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if !ValidFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'png', 'svg', 'pdf', or 'json')", f)
		}
	}
	return nil
}

// Bytes renders a single scene to the requested format.
func Bytes(shapes []scene.Shape, format string, opts ...Option) ([]byte, error) {
	if format == FormatJSON {
		return MarshalScene(shapes)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p, err := scenePlot(shapes, o)
	if err != nil {
		return nil, err
	}

	edge := vg.Length(o.edgeCm) * vg.Centimeter
	target, writeTo, err := newCanvas(format, edge, edge, o.dpi)
	if err != nil {
		return nil, err
	}
	p.Draw(draw.New(target))

	var buf bytes.Buffer
	if _, err := writeTo.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// newCanvas creates a vg canvas for the given raster/vector format. It
// returns the canvas to draw on and the finalizer that encodes it.
func newCanvas(format string, w, h vg.Length, dpi float64) (vg.CanvasSizer, io.WriterTo, error) {
	switch format {
	case FormatPNG:
		c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(int(dpi)))
		return c, vgimg.PngCanvas{Canvas: c}, nil
	case FormatSVG:
		c := vgsvg.New(w, h)
		return c, c, nil
	case FormatPDF:
		c := vgpdf.New(w, h)
		return c, c, nil
	default:
		return nil, nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'png', 'svg', 'pdf', or 'json')", format)
	}
}
