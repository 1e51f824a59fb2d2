package nwfont

import (
	"image/color"

	"github.com/gogpu/nwfont/grid"
)

// Option configures a Builder or a Placer.
//
// Example:
//
//	b, err := nwfont.NewBuilder(tpl, src, nwfont.WithAdvanceColor(color.NRGBA{R: 255}))
type Option func(*options)

// options holds optional configuration for Builder and Placer.
type options struct {
	advanceColor color.NRGBA
	preflight    bool
}

// defaultOptions returns the default options.
func defaultOptions() options {
	return options{
		advanceColor: grid.MarkerColor,
		preflight:    true,
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithAdvanceColor sets the colour of the line recording each glyph's
// advance width below its cell. The default is the template marker colour.
func WithAdvanceColor(c color.NRGBA) Option {
	return func(o *options) {
		o.advanceColor = c
	}
}

// WithPreflight controls whether Builder.Run checks that the font covers
// every character before drawing the first one. It is enabled by default
// and only has an effect for sources that can report missing runes.
func WithPreflight(enabled bool) Option {
	return func(o *options) {
		o.preflight = enabled
	}
}
