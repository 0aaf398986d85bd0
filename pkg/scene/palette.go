package scene

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// tubPalette is the fixed rotating palette for bathtub footprints,
// assigned by input index modulo the palette size.
var tubPalette = []colorful.Color{
	mustHex("#1f77b4"), // blue
	mustHex("#ff7f0e"), // orange
	mustHex("#2ca02c"), // green
	mustHex("#d62728"), // red
	mustHex("#9467bd"), // purple
	mustHex("#8c564b"), // brown
	mustHex("#e377c2"), // pink
	mustHex("#7f7f7f"), // gray
	mustHex("#bcbd22"), // olive
	mustHex("#17becf"), // cyan
}

// Fixed colors for the stall shapes and the baby overlay.
var (
	boxBorder       = mustHex("#37474f")
	outerRingBorder = mustHex("#78909c")
	innerRingBorder = mustHex("#0277bd")
	babyBorder      = mustHex("#ad1457")
	babyFill        = withAlpha(mustHex("#f48fb1"), 110)
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("scene: bad palette literal " + s)
	}
	return c
}

// tubColors returns the border and translucent fill color for the tub at
// the given input index.
func tubColors(index int) (border colorful.Color, fill color.Color) {
	c := tubPalette[index%len(tubPalette)]
	return c, withAlpha(c, 96)
}

// withAlpha converts an opaque palette color to a translucent NRGBA fill.
func withAlpha(c colorful.Color, alpha uint8) color.Color {
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}
}
