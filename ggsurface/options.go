package ggsurface

import (
	"github.com/gogpu/gg/text"

	"github.com/gogpu/stateful"
)

// DefaultFontSize is the pixel size of the default font.
const DefaultFontSize = 13

type options struct {
	font       *text.FontSource
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

// WithFont replaces the default font (Go Regular) used for AddText and
// for DefaultFont.
func WithFont(src *text.FontSource) Option {
	return func(o *options) {
		o.font = src
	}
}

// WithFontSize sets the pixel size of AddText and of AddFontText calls
// that pass a non-positive size.
func WithFontSize(px float64) Option {
	return func(o *options) {
		if px > 0 {
			o.fontSize = px
		}
	}
}

// WithBackground sets the color the surface is cleared to.
func WithBackground(c stateful.Color) Option {
	return func(o *options) {
		o.background = c
	}
}
