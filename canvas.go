package stateful

import (
	"fmt"
	"log/slog"
)

// Canvas is a retained drawing surface: primitives are added once and
// re-submitted to the host's immediate-mode surface on every Draw until
// erased.
//
// A canvas either follows the host layout cursor, so it moves with the
// surrounding layout, or sits at a fixed location. Geometry is authored in
// canvas-local coordinates relative to that anchor.
//
// Canvas is not safe for concurrent use; drive it from the goroutine that
// runs the frame loop.
type Canvas struct {
	list DrawList

	followCursor bool
	location     Vec2
	size         Vec2
	z            int
}

// New creates a canvas of the given size that follows the host layout
// cursor. It panics with ErrInvalidSize unless both dimensions are positive.
func New(width, height float64, opts ...Option) *Canvas {
	c := &Canvas{followCursor: true}
	c.SetSize(width, height)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewAt creates a canvas at a fixed surface location.
// It panics with ErrInvalidSize unless both dimensions are positive.
func NewAt(x, y, width, height float64, opts ...Option) *Canvas {
	c := &Canvas{location: Vec2{x, y}}
	c.SetSize(width, height)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetSize changes the canvas size. It panics with ErrInvalidSize unless
// both dimensions are positive.
func (c *Canvas) SetSize(width, height float64) {
	if !(width > 0 && height > 0) {
		fail(ErrInvalidSize, "%gx%g", width, height)
	}
	c.size = Vec2{width, height}
}

// Size returns the canvas size.
func (c *Canvas) Size() Vec2 { return c.size }

// SetLocation pins the canvas at (x, y), leaving cursor-following mode.
func (c *Canvas) SetLocation(x, y float64) {
	c.followCursor = false
	c.location = Vec2{x, y}
}

// Location returns the fixed location. It is meaningless while the canvas
// follows the cursor.
func (c *Canvas) Location() Vec2 { return c.location }

// FollowsCursor reports whether the canvas anchor tracks the layout cursor.
func (c *Canvas) FollowsCursor() bool { return c.followCursor }

// SetLayer sets the default layer for subsequent add calls.
func (c *Canvas) SetLayer(z int) { c.z = z }

// Layer returns the default layer for add calls.
func (c *Canvas) Layer() int { return c.z }

// List returns the canvas draw list.
func (c *Canvas) List() *DrawList { return &c.list }

// Len returns the number of live primitives.
func (c *Canvas) Len() int { return c.list.Live() }

func (c *Canvas) add(p Primitive, o *drawOptions) Handle {
	a := p.Attributes()
	a.Z = c.z
	if o.hasLayer {
		a.Z = o.layer
	}
	if o.clip != nil {
		a.Clip = o.clip
	}
	h := c.list.Add(p)
	Logger().Debug("stateful: add", slog.Int("handle", int(h)), slog.String("type", fmt.Sprintf("%T", p)), slog.Int("z", a.Z))
	return h
}

// Line adds a line from p0 to p1.
// Options: Thickness, Layer, ClipTo.
func (c *Canvas) Line(p0, p1 Vec2, col Color, opts ...DrawOption) Handle {
	o := defaultDrawOptions(opts)
	return c.add(&Line{P0: p0, P1: p1, Color: col, Thickness: o.thickness}, &o)
}

// Rect adds a stroked rectangle.
// Options: Rounding, Thickness, Layer, ClipTo.
func (c *Canvas) Rect(min, max Vec2, col Color, opts ...DrawOption) Handle {
	o := defaultDrawOptions(opts)
	return c.add(&Rectangle{
		Min: min, Max: max, Color: col,
		Rounding: o.rounding, Corners: o.corners, Thickness: o.thickness,
	}, &o)
}

// RectFilled adds a filled rectangle.
// Options: Rounding, Layer, ClipTo.
func (c *Canvas) RectFilled(min, max Vec2, col Color, opts ...DrawOption) Handle {
	o := defaultDrawOptions(opts)
	return c.add(&RectangleFilled{Min: min, Max: max, Color: col, Rounding: o.rounding, Corners: o.corners}, &o)
}

// RectFilledMultiColor adds a filled rectangle with per-corner colors.
// Options: Layer, ClipTo.
func (c *Canvas) RectFilledMultiColor(min, max Vec2, upperLeft, upperRight, bottomRight, bottomLeft Color, opts ...DrawOption) Handle {
	o := defaultDrawOptions(opts)
	return c.add(&RectangleMultiColor{
		Min: min, Max: max,
		UpperLeft: upperLeft, UpperRight: upperRight, BottomRight: bottomRight, BottomLeft: bottomLeft,
	}, &o)
}

// Quad adds a stroked quadrilateral.
// Options: Thickness, Layer, ClipTo.
func (c *Canvas) Quad(p0, p1, p2, p3 Vec2, col Color, opts ...DrawOption) Handle {
	o := defaultDrawOptions(opts)
	return c.add(&Quad{P0: p0, P1: p1, P2: p2, P3: p3, Color: col, Thickness: o.thickness}, &o)
}

// QuadFilled adds a filled quadrilateral.
// Options: Layer, ClipTo.
func (c *Canvas) QuadFilled(p0, p1, p2, p3 Vec2, col Color, opts ...DrawOption) Handle {
	o := defaultDrawOptions(opts)
	return c.add(&QuadFilled{P0: p0, P1: p1, P2: p2, P3: p3, Color: col}, &o)
}

// Triangle adds a stroked triangle.
// Options: Thickness, Layer, ClipTo.
func (c *Canvas) Triangle(p0, p1, p2 Vec2, col Color, opts ...DrawOption) Handle {
	o := defaultDrawOptions(opts)
	return c.add(&Triangle{P0: p0, P1: p1, P2: p2, Color: col, Thickness: o.thickness}, &o)
}

// TriangleFilled adds a filled triangle.
// Options: Layer, ClipTo.
func (c *Canvas) TriangleFilled(p0, p1, p2 Vec2, col Color, opts ...DrawOption) Handle {
	o := defaultDrawOptions(opts)
	return c.add(&TriangleFilled{P0: p0, P1: p1, P2: p2, Color: col}, &o)
}

// Circle adds a stroked circle.
// Options: Segments (default 12), Thickness, Layer, ClipTo.
func (c *Canvas) Circle(center Vec2, radius float64, col Color, opts ...DrawOption) Handle {
	o := defaultDrawOptions(opts)
	return c.add(&Circle{
		Center: center, Radius: radius, Color: col,
		Segments: o.segmentsOr(12), Thickness: o.thickness,
	}, &o)
}

// CircleFilled adds a filled circle.
// Options: Segments (default 12), Layer, ClipTo.
func (c *Canvas) CircleFilled(center Vec2, radius float64, col Color, opts ...DrawOption) Handle {
	o := defaultDrawOptions(opts)
	return c.add(&CircleFilled{Center: center, Radius: radius, Color: col, Segments: o.segmentsOr(12)}, &o)
}

// Ngon adds a stroked regular polygon with segments sides.
// Options: Thickness, Layer, ClipTo.
func (c *Canvas) Ngon(center Vec2, radius float64, col Color, segments int, opts ...DrawOption) Handle {
	o := defaultDrawOptions(opts)
	return c.add(&Ngon{Center: center, Radius: radius, Color: col, Segments: segments, Thickness: o.thickness}, &o)
}

// NgonFilled adds a filled regular polygon with segments sides.
// Options: Layer, ClipTo.
func (c *Canvas) NgonFilled(center Vec2, radius float64, col Color, segments int, opts ...DrawOption) Handle {
	o := defaultDrawOptions(opts)
	return c.add(&NgonFilled{Center: center, Radius: radius, Color: col, Segments: segments}, &o)
}

// Text adds a string in the surface default font.
// Options: Layer, ClipTo.
func (c *Canvas) Text(pos Vec2, col Color, s string, opts ...DrawOption) Handle {
	o := defaultDrawOptions(opts)
	return c.add(&Text{Pos: pos, Color: col, Text: s}, &o)
}

// FontText adds a string in an explicit font and size.
// Options: WrapWidth, FineClip, Layer, ClipTo.
func (c *Canvas) FontText(font FontID, size float64, pos Vec2, col Color, s string, opts ...DrawOption) Handle {
	o := defaultDrawOptions(opts)
	return c.add(&FontText{
		Font: font, Size: size, Pos: pos, Color: col, Text: s,
		WrapWidth: o.wrapWidth, FineClip: o.fineClip,
	}, &o)
}

// Polyline adds a stroked point sequence, closed back to the first point
// if closed is set. The points are copied.
// Options: Thickness, Layer, ClipTo.
func (c *Canvas) Polyline(points []Vec2, col Color, closed bool, opts ...DrawOption) Handle {
	o := defaultDrawOptions(opts)
	return c.add(&Polyline{
		Points: append([]Vec2(nil), points...), Color: col, Closed: closed, Thickness: o.thickness,
		adjusted: make([]Vec2, 0, len(points)),
	}, &o)
}

// ConvexPolyFilled adds a filled convex polygon. The points are copied.
// Options: Layer, ClipTo.
func (c *Canvas) ConvexPolyFilled(points []Vec2, col Color, opts ...DrawOption) Handle {
	o := defaultDrawOptions(opts)
	return c.add(&ConvexPolyFilled{
		Points: append([]Vec2(nil), points...), Color: col,
		adjusted: make([]Vec2, 0, len(points)),
	}, &o)
}

// BezierCubic adds a stroked cubic Bézier curve.
// Options: Thickness, Segments (default 0, adaptive), Layer, ClipTo.
func (c *Canvas) BezierCubic(p0, p1, p2, p3 Vec2, col Color, opts ...DrawOption) Handle {
	o := defaultDrawOptions(opts)
	return c.add(&BezierCubic{
		P0: p0, P1: p1, P2: p2, P3: p3, Color: col,
		Thickness: o.thickness, Segments: o.segmentsOr(0),
	}, &o)
}

// Image adds a textured rectangle.
// Options: UV, Tint, Layer, ClipTo.
func (c *Canvas) Image(tex TextureID, min, max Vec2, opts ...DrawOption) Handle {
	o := defaultDrawOptions(opts)
	uvMin, uvMax := o.rectUV()
	return c.add(&Image{Texture: tex, Min: min, Max: max, UVMin: uvMin, UVMax: uvMax, Tint: o.tint}, &o)
}

// ImageQuad adds a texture mapped onto a quadrilateral.
// Options: QuadUV (or UV), Tint, Layer, ClipTo.
func (c *Canvas) ImageQuad(tex TextureID, p0, p1, p2, p3 Vec2, opts ...DrawOption) Handle {
	o := defaultDrawOptions(opts)
	uv := o.quadUV()
	return c.add(&ImageQuad{
		Texture: tex, P0: p0, P1: p1, P2: p2, P3: p3,
		UV0: uv[0], UV1: uv[1], UV2: uv[2], UV3: uv[3], Tint: o.tint,
	}, &o)
}

// ImageRounded adds a textured rectangle with rounded corners.
// Options: UV, Tint, Layer, ClipTo. Corners default to all.
func (c *Canvas) ImageRounded(tex TextureID, min, max Vec2, rounding float64, opts ...DrawOption) Handle {
	o := defaultDrawOptions(opts)
	uvMin, uvMax := o.rectUV()
	return c.add(&ImageRounded{
		Texture: tex, Min: min, Max: max, UVMin: uvMin, UVMax: uvMax, Tint: o.tint,
		Rounding: rounding, Corners: o.corners,
	}, &o)
}

// Custom adds a caller-defined primitive. The canvas stamps its layer like
// any built-in shape; the primitive's own Z is overwritten.
// Options: Layer, ClipTo.
func (c *Canvas) Custom(p Primitive, opts ...DrawOption) Handle {
	if p == nil {
		fail(ErrNilPrimitive, "custom")
	}
	o := defaultDrawOptions(opts)
	return c.add(p, &o)
}

// Item returns the primitive at h for direct mutation.
func (c *Canvas) Item(h Handle) Primitive { return c.list.Get(h) }

// ItemAs returns the primitive at h as type T.
// It panics with ErrWrongType if the primitive is not a T.
//
//	r := stateful.ItemAs[*stateful.RectangleFilled](c, h)
//	r.Color = stateful.RGB(255, 0, 0)
func ItemAs[T Primitive](c *Canvas, h Handle) T {
	p := c.list.Get(h)
	t, ok := p.(T)
	if !ok {
		var want T
		fail(ErrWrongType, "handle %d is %T, not %T", h, p, want)
	}
	return t
}

// Visible reports whether the primitive at h is drawn.
func (c *Canvas) Visible(h Handle) bool { return c.list.Visible(h) }

// SetVisible shows or hides the primitive at h.
func (c *Canvas) SetVisible(h Handle, v bool) { c.list.SetVisible(h, v) }

// Erase releases the primitive at h.
func (c *Canvas) Erase(h Handle) {
	c.list.Erase(h)
	Logger().Debug("stateful: erase", slog.Int("handle", int(h)))
}

// Clear releases every primitive.
func (c *Canvas) Clear() {
	n := c.list.Live()
	c.list.Clear()
	if n > 0 {
		Logger().Debug("stateful: clear", slog.Int("primitives", n))
	}
}

// DragStart begins dragging the primitive at h, drawing it on layer
// until the drag ends.
func (c *Canvas) DragStart(h Handle, layer int) { c.list.Get(h).Attributes().DragStart(layer) }

// DragUpdate sets the drag offset of the primitive at h, measured from its
// authored position.
func (c *Canvas) DragUpdate(h Handle, dx, dy float64) { c.list.Get(h).Attributes().DragUpdate(dx, dy) }

// DragEnd ends the drag of the primitive at h and discards the offset.
func (c *Canvas) DragEnd(h Handle) { c.list.Get(h).Attributes().DragEnd() }

// DragCommit ends the drag of the primitive at h and moves its authored
// geometry by (dx, dy).
func (c *Canvas) DragCommit(h Handle, dx, dy float64) { DragCommit(c.list.Get(h), dx, dy) }

// Bounds returns the surface rectangle the canvas occupies when anchored
// at anchor.
func (c *Canvas) Bounds(anchor Vec2) Rect {
	return Rect{Min: anchor, Max: anchor.Add(c.size)}
}

// Draw renders the whole draw list into f once.
//
// Draw does nothing if the canvas is empty or f.Skip reports true. The
// anchor is the layout cursor in cursor-following mode, read fresh on every
// call, and the fixed location otherwise. With clip set, drawing is
// confined to the canvas bounds intersected with the surface clip.
//
// In cursor-following mode Draw reserves the canvas size in the host
// layout and registers the canvas bounds as an item identified by label.
func (c *Canvas) Draw(f Frame, label string, clip bool) {
	if c.list.Live() == 0 || f.Skip() {
		return
	}

	anchor := c.location
	if c.followCursor {
		anchor = f.Cursor()
	}
	bb := c.Bounds(anchor)

	s := f.Surface()
	if clip {
		s.PushClipRect(bb, true)
	}

	n := Compose(&c.list, s, anchor)

	if c.followCursor {
		f.ItemSize(c.size)
		f.ItemAdd(bb, f.ID(label))
	}

	if clip {
		s.PopClipRect()
	}

	Logger().Debug("stateful: draw", slog.String("label", label), slog.Int("drawn", n), slog.Int("live", c.list.Live()))
}
