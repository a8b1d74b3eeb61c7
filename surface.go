package stateful

import "image"

// TextureID identifies an image registered with a concrete Surface.
// IDs are issued by the surface; the canvas never interprets them.
type TextureID int

// FontID identifies a font registered with a concrete Surface.
// DefaultFont selects the surface's built-in face.
type FontID int

// DefaultFont is the FontID every surface resolves to its own default face.
const DefaultFont FontID = -1

// Surface is the immediate-mode rendering surface primitives draw into.
// It forgets everything it is told once the frame is flushed; the canvas
// re-submits its draw list every frame.
//
// All coordinates are absolute surface pixels. Implementations must not
// retain the point slices passed to AddPolyline and AddConvexPolyFilled;
// primitives reuse them between frames.
//
// # Implementation Contract
//
// Each surface must:
//  1. Treat a zero thickness as a hairline, not as "draw nothing"
//  2. Balance PushClipRect/PopClipRect as a stack; PopClipRect on an empty
//     stack is a no-op
//  3. Resolve unknown TextureID or FontID values without panicking
//     (skip the shape or fall back to the default font)
type Surface interface {
	AddLine(p0, p1 Vec2, col Color, thickness float64)
	AddRect(min, max Vec2, col Color, rounding float64, corners Corners, thickness float64)
	AddRectFilled(min, max Vec2, col Color, rounding float64, corners Corners)
	AddRectFilledMultiColor(min, max Vec2, upperLeft, upperRight, bottomRight, bottomLeft Color)
	AddQuad(p0, p1, p2, p3 Vec2, col Color, thickness float64)
	AddQuadFilled(p0, p1, p2, p3 Vec2, col Color)
	AddTriangle(p0, p1, p2 Vec2, col Color, thickness float64)
	AddTriangleFilled(p0, p1, p2 Vec2, col Color)
	AddCircle(center Vec2, radius float64, col Color, segments int, thickness float64)
	AddCircleFilled(center Vec2, radius float64, col Color, segments int)
	AddNgon(center Vec2, radius float64, col Color, segments int, thickness float64)
	AddNgonFilled(center Vec2, radius float64, col Color, segments int)
	AddText(pos Vec2, col Color, s string)
	AddFontText(font FontID, size float64, pos Vec2, col Color, s string, wrapWidth float64, fineClip *Rect)
	AddPolyline(points []Vec2, col Color, closed bool, thickness float64)
	AddConvexPolyFilled(points []Vec2, col Color)
	AddBezierCubic(p0, p1, p2, p3 Vec2, col Color, thickness float64, segments int)
	AddImage(tex TextureID, min, max, uvMin, uvMax Vec2, col Color)
	AddImageQuad(tex TextureID, p0, p1, p2, p3, uv0, uv1, uv2, uv3 Vec2, col Color)
	AddImageRounded(tex TextureID, min, max, uvMin, uvMax Vec2, col Color, rounding float64, corners Corners)

	// PushClipRect restricts drawing to r. With intersect set, r is first
	// intersected with the clip currently in effect.
	PushClipRect(r Rect, intersect bool)
	// PopClipRect restores the clip in effect before the matching push.
	PopClipRect()
}

// ImageSurface is implemented by surfaces that rasterize into pixels.
type ImageSurface interface {
	Surface

	// Image returns the rendered pixels.
	Image() image.Image

	// SavePNG writes the rendered pixels to a PNG file.
	SavePNG(path string) error
}

// ID identifies an interactive item in the host layout system.
type ID uint64

// Frame is the host window a canvas draws into for one frame.
// It supplies the surface, the layout cursor and the skip flag, and
// accepts the layout reservation a cursor-following canvas makes.
type Frame interface {
	// Skip reports that nothing should be drawn this frame.
	Skip() bool

	// Cursor returns the current layout position.
	Cursor() Vec2

	// Surface returns the surface for the current window.
	Surface() Surface

	// ID hashes label into an item identifier scoped to the window.
	ID(label string) ID

	// ItemSize reserves layout space and advances the cursor.
	ItemSize(size Vec2)

	// ItemAdd registers an interactive item with bounding box bb.
	// It reports false if the item is clipped out by the host.
	ItemAdd(bb Rect, id ID) bool
}
