package render

import (
	"encoding/json"
	"fmt"
	"image/color"

	"github.com/fitlab/tubfit/pkg/geom"
	"github.com/fitlab/tubfit/pkg/scene"
)

// shapeJSON is the wire form of a scene shape: geometry plus styling with
// colors as #rrggbbaa strings. Point order is preserved verbatim.
type shapeJSON struct {
	Name      string       `json:"name"`
	Label     string       `json:"label,omitempty"`
	Points    []geom.Point `json:"points"`
	Fill      string       `json:"fill,omitempty"`
	Border    string       `json:"border,omitempty"`
	LineWidth float64      `json:"lineWidth"`
}

// MarshalScene serializes the scene's shapes as indented JSON.
func MarshalScene(shapes []scene.Shape) ([]byte, error) {
	out := make([]shapeJSON, len(shapes))
	for i, s := range shapes {
		out[i] = shapeJSON{
			Name:      s.Name,
			Label:     s.Label,
			Points:    s.Points,
			Fill:      hexColor(s.Style.Fill),
			Border:    hexColor(s.Style.Border),
			LineWidth: s.Style.LineWidth,
		}
	}
	return json.MarshalIndent(struct {
		Shapes []shapeJSON `json:"shapes"`
	}{out}, "", "  ")
}

// hexColor formats a color as #rrggbbaa, or an empty string for nil.
func hexColor(c color.Color) string {
	if c == nil {
		return ""
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}
