package fgsurface

import (
	"github.com/golang/freetype/truetype"

	"github.com/gogpu/stateful"
)

// DefaultFontSize is the point size of the default font at 72 DPI.
const DefaultFontSize = 13

type options struct {
	font       *truetype.Font
	fontSize   float64
	background stateful.Color
}

func defaultOptions() options {
	return options{
		fontSize:   DefaultFontSize,
		background: stateful.Transparent,
	}
}

// Option configures a Surface.
type Option func(*options)

// WithFont replaces Go Mono as the default font.
func WithFont(f *truetype.Font) Option {
	return func(o *options) {
		o.font = f
	}
}

// WithFontSize sets the size used by AddText and by AddFontText calls
// with a non-positive size.
func WithFontSize(pt float64) Option {
	return func(o *options) {
		if pt > 0 {
			o.fontSize = pt
		}
	}
}

// WithBackground sets the color the surface is cleared to.
func WithBackground(c stateful.Color) Option {
	return func(o *options) {
		o.background = c
	}
}
