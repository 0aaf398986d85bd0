package render

// Default rendering parameters.
const (
	// DefaultEdgeCm is the canvas edge length in paper centimeters.
	DefaultEdgeCm = 12.0

	// DefaultDPI is the raster resolution for PNG output.
	DefaultDPI = 144

	// DefaultMarginCm is the world-space margin kept around the outer box.
	DefaultMarginCm = 4.0
)

// Option configures rendering.
type Option func(*options)

type options struct {
	edgeCm   float64
	dpi      float64
	marginCm float64
	legend   bool
}

func defaultOptions() options {
	return options{
		edgeCm:   DefaultEdgeCm,
		dpi:      DefaultDPI,
		marginCm: DefaultMarginCm,
		legend:   true,
	}
}

// WithEdgeCm sets the square canvas edge length in paper centimeters.
func WithEdgeCm(cm float64) Option {
	return func(o *options) { o.edgeCm = cm }
}

// WithDPI sets the raster resolution for PNG output.
func WithDPI(dpi float64) Option {
	return func(o *options) { o.dpi = dpi }
}

// WithMarginCm sets the world-space margin around the scene.
func WithMarginCm(cm float64) Option {
	return func(o *options) { o.marginCm = cm }
}

// WithoutLegend disables the legend.
func WithoutLegend() Option {
	return func(o *options) { o.legend = false }
}
