package stateful

// Primitive is one retained, renderable shape.
//
// Built-in variants live in this package; callers add their own shapes with
// [Canvas.Custom] by embedding [Attrs] and implementing Draw and Translate:
//
//	type Cross struct {
//	    stateful.Attrs
//	    Center stateful.Vec2
//	    Color  stateful.Color
//	}
//
//	func (c *Cross) Draw(s stateful.Surface, origin stateful.Vec2) {
//	    p := c.Center.Add(origin)
//	    s.AddLine(p.Add(stateful.V(-4, -4)), p.Add(stateful.V(4, 4)), c.Color, 1)
//	    s.AddLine(p.Add(stateful.V(-4, 4)), p.Add(stateful.V(4, -4)), c.Color, 1)
//	}
//
//	func (c *Cross) Translate(dx, dy float64) { c.Center = c.Center.Add(stateful.V(dx, dy)) }
type Primitive interface {
	// Attributes returns the shared layer, offset and visibility state.
	Attributes() *Attrs

	// Draw submits the shape to s with its authored geometry shifted by
	// origin. The compositor passes the canvas anchor plus the drag offset;
	// Draw must not modify the authored geometry.
	Draw(s Surface, origin Vec2)

	// Translate moves the authored geometry by (dx, dy).
	Translate(dx, dy float64)
}

// Attrs holds the state every primitive shares, independent of its shape.
// The zero value is a visible primitive on layer 0 with no offset.
type Attrs struct {
	// Z is the authored layer. Lower layers draw first.
	Z int

	// OffsetZ temporarily moves the primitive to layer Z+OffsetZ.
	OffsetZ int

	// Offset is added to the authored geometry at draw time.
	Offset Vec2

	// Hidden removes the primitive from drawing without erasing it.
	Hidden bool

	// Clip, when set, restricts the primitive to a canvas-local rectangle.
	Clip *Rect

	dragging bool
}

// Attributes implements Primitive for types embedding Attrs.
func (a *Attrs) Attributes() *Attrs { return a }

// Layer returns the effective layer Z+OffsetZ used for ordering.
func (a *Attrs) Layer() int { return a.Z + a.OffsetZ }

// Visible reports whether the primitive is drawn.
func (a *Attrs) Visible() bool { return !a.Hidden }

// SetVisible shows or hides the primitive.
func (a *Attrs) SetVisible(v bool) { a.Hidden = !v }

// Origin returns the point the authored geometry is drawn relative to.
func (a *Attrs) Origin(anchor Vec2) Vec2 { return anchor.Add(a.Offset) }

// Dragging reports whether a drag is in progress.
func (a *Attrs) Dragging() bool { return a.dragging }

// DragStart begins a drag and moves the primitive to layer while it lasts.
// It panics with ErrAlreadyDragging if a drag is in progress.
func (a *Attrs) DragStart(layer int) {
	if a.dragging {
		fail(ErrAlreadyDragging, "drag start on layer %d", layer)
	}
	a.dragging = true
	a.OffsetZ = layer - a.Z
	a.Offset = Vec2{}
}

// DragUpdate sets the drag offset. The offset is absolute from the authored
// position, not incremental. It panics with ErrNotDragging outside a drag.
func (a *Attrs) DragUpdate(dx, dy float64) {
	if !a.dragging {
		fail(ErrNotDragging, "drag update (%g, %g)", dx, dy)
	}
	a.Offset = Vec2{dx, dy}
}

// DragEnd ends a drag and discards the offset; the primitive snaps back to
// its authored position and layer. It panics with ErrNotDragging outside a
// drag.
func (a *Attrs) DragEnd() {
	if !a.dragging {
		fail(ErrNotDragging, "drag end")
	}
	a.reset()
}

func (a *Attrs) reset() {
	a.dragging = false
	a.Offset = Vec2{}
	a.OffsetZ = 0
}

// DragCommit ends the drag on p and folds (dx, dy) into its authored
// geometry. It panics with ErrNotDragging outside a drag.
func DragCommit(p Primitive, dx, dy float64) {
	a := p.Attributes()
	if !a.dragging {
		fail(ErrNotDragging, "drag commit (%g, %g)", dx, dy)
	}
	a.reset()
	p.Translate(dx, dy)
}

func translatePoints(dst, src []Vec2, d Vec2) []Vec2 {
	dst = dst[:0]
	for _, p := range src {
		dst = append(dst, p.Add(d))
	}
	return dst
}
