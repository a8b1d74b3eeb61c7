package stateful

// DrawOption configures a primitive as it is added to a canvas.
// Use functional options for the attributes a shape call leaves optional.
//
// Example:
//
//	// Defaults: 1px stroke, square corners, the canvas current layer
//	c.Rect(stateful.V(10, 10), stateful.V(90, 60), stateful.White)
//
//	// Rounded, thick, on layer 2 and clipped to the top half
//	c.Rect(stateful.V(10, 10), stateful.V(90, 60), stateful.White,
//	    stateful.Rounding(6, stateful.CornersTop),
//	    stateful.Thickness(3),
//	    stateful.Layer(2),
//	    stateful.ClipTo(stateful.R(0, 0, 100, 35)),
//	)
//
// Options that do not apply to a shape are ignored.
type DrawOption func(*drawOptions)

// drawOptions holds the optional attributes of one add call.
type drawOptions struct {
	layer    int
	hasLayer bool
	clip     *Rect

	thickness   float64
	rounding    float64
	corners     Corners
	segments    int
	hasSegments bool

	wrapWidth float64
	fineClip  *Rect

	uvs  [4]Vec2
	uvN  int
	tint Color
}

// defaultDrawOptions applies opts over the shape defaults.
func defaultDrawOptions(opts []DrawOption) drawOptions {
	o := drawOptions{
		thickness: 1,
		corners:   CornersAll,
		tint:      White,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// segmentsOr returns the Segments option, or def if it was not given.
func (o *drawOptions) segmentsOr(def int) int {
	if o.hasSegments {
		return o.segments
	}
	return def
}

// rectUV returns the UV rectangle for image variants.
func (o *drawOptions) rectUV() (uvMin, uvMax Vec2) {
	switch o.uvN {
	case 2, 4:
		return o.uvs[0], o.uvs[1]
	}
	return Vec2{0, 0}, Vec2{1, 1}
}

// quadUV returns per-corner UVs for ImageQuad.
func (o *drawOptions) quadUV() [4]Vec2 {
	switch o.uvN {
	case 4:
		return o.uvs
	case 2:
		lo, hi := o.uvs[0], o.uvs[1]
		return [4]Vec2{lo, {hi.X, lo.Y}, hi, {lo.X, hi.Y}}
	}
	return [4]Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
}

// Layer places the primitive on layer z instead of the canvas current layer.
func Layer(z int) DrawOption {
	return func(o *drawOptions) {
		o.layer = z
		o.hasLayer = true
	}
}

// ClipTo restricts the primitive to a canvas-local rectangle.
func ClipTo(r Rect) DrawOption {
	return func(o *drawOptions) {
		o.clip = &r
	}
}

// Thickness sets the stroke width. Default is 1.
func Thickness(w float64) DrawOption {
	return func(o *drawOptions) {
		o.thickness = w
	}
}

// Rounding sets the corner radius and which corners it applies to.
// Default is no rounding.
func Rounding(r float64, corners Corners) DrawOption {
	return func(o *drawOptions) {
		o.rounding = r
		o.corners = corners
	}
}

// Segments sets the tessellation of curved shapes. Circles default to 12,
// Bézier curves to 0 (adaptive).
func Segments(n int) DrawOption {
	return func(o *drawOptions) {
		o.segments = n
		o.hasSegments = true
	}
}

// WrapWidth wraps font text at w pixels. Default is no wrapping.
func WrapWidth(w float64) DrawOption {
	return func(o *drawOptions) {
		o.wrapWidth = w
	}
}

// FineClip clips font text glyphs to a canvas-local rectangle.
func FineClip(r Rect) DrawOption {
	return func(o *drawOptions) {
		o.fineClip = &r
	}
}

// UV selects the texture region drawn by image variants.
// Default is the whole texture, (0,0)..(1,1).
func UV(uvMin, uvMax Vec2) DrawOption {
	return func(o *drawOptions) {
		o.uvs[0], o.uvs[1] = uvMin, uvMax
		o.uvN = 2
	}
}

// QuadUV sets the texture coordinate of each ImageQuad corner.
// Default is (0,0), (1,0), (1,1), (0,1).
func QuadUV(uv0, uv1, uv2, uv3 Vec2) DrawOption {
	return func(o *drawOptions) {
		o.uvs = [4]Vec2{uv0, uv1, uv2, uv3}
		o.uvN = 4
	}
}

// Tint multiplies image variants by c. Default is White.
func Tint(c Color) DrawOption {
	return func(o *drawOptions) {
		o.tint = c
	}
}

// Option configures a Canvas during creation.
type Option func(*Canvas)

// WithLayer sets the initial default layer for add calls.
func WithLayer(z int) Option {
	return func(c *Canvas) {
		c.z = z
	}
}
