package stateful

// Vec2 is a 2D point or vector in surface pixels.
type Vec2 struct {
	X, Y float64
}

// V is a convenience function to create a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (p Vec2) Add(q Vec2) Vec2 {
	return Vec2{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two vectors.
func (p Vec2) Sub(q Vec2) Vec2 {
	return Vec2{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the vector scaled by s.
func (p Vec2) Mul(s float64) Vec2 {
	return Vec2{X: p.X * s, Y: p.Y * s}
}

// Lerp returns the linear interpolation between p and q.
func (p Vec2) Lerp(q Vec2, t float64) Vec2 {
	return Vec2{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// Rect is an axis-aligned rectangle. Min is inclusive, Max exclusive.
type Rect struct {
	Min, Max Vec2
}

// R is a convenience function to create a Rect from two corners.
// The corners are normalized so that Min <= Max.
func R(x0, y0, x1, y1 float64) Rect {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return Rect{Min: Vec2{x0, y0}, Max: Vec2{x1, y1}}
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent of r.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Size returns the width and height of r as a vector.
func (r Rect) Size() Vec2 { return Vec2{r.Width(), r.Height()} }

// Empty reports whether r contains no points.
func (r Rect) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Translate returns r moved by d.
func (r Rect) Translate(d Vec2) Rect {
	return Rect{Min: r.Min.Add(d), Max: r.Max.Add(d)}
}

// Intersect returns the largest rectangle contained in both r and s.
// An empty intersection is returned as the zero Rect.
func (r Rect) Intersect(s Rect) Rect {
	out := Rect{
		Min: Vec2{max(r.Min.X, s.Min.X), max(r.Min.Y, s.Min.Y)},
		Max: Vec2{min(r.Max.X, s.Max.X), min(r.Max.Y, s.Max.Y)},
	}
	if out.Empty() {
		return Rect{}
	}
	return out
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Corners selects which rectangle corners are rounded.
type Corners uint8

// Corner flags. CornersAll is the default for rounded shapes.
const (
	CornerTopLeft Corners = 1 << iota
	CornerTopRight
	CornerBottomLeft
	CornerBottomRight

	CornersNone   Corners = 0
	CornersTop            = CornerTopLeft | CornerTopRight
	CornersBottom         = CornerBottomLeft | CornerBottomRight
	CornersLeft           = CornerTopLeft | CornerBottomLeft
	CornersRight          = CornerTopRight | CornerBottomRight
	CornersAll            = CornersTop | CornersBottom
)

// Has reports whether all corners in f are selected.
func (c Corners) Has(f Corners) bool { return c&f == f }
