package layout

import "github.com/gogpu/stateful"

type options struct {
	origin  stateful.Vec2
	spacing float64
	bounds  stateful.Rect
}

func defaultOptions() options {
	return options{spacing: DefaultSpacing}
}

// Option configures a Window.
type Option func(*options)

// WithOrigin sets where the first item is placed.
func WithOrigin(p stateful.Vec2) Option {
	return func(o *options) {
		o.origin = p
	}
}

// WithSpacing sets the vertical gap between items. Negative values are
// treated as zero.
func WithSpacing(px float64) Option {
	return func(o *options) {
		o.spacing = max(px, 0)
	}
}

// WithBounds sets the visible area of the window. Items outside it are
// reported as clipped by ItemAdd.
func WithBounds(r stateful.Rect) Option {
	return func(o *options) {
		o.bounds = r
	}
}
