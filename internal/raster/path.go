// Package raster holds the geometry and pixel helpers shared by the
// rasterizing surfaces.
package raster

import (
	"math"

	"github.com/gogpu/stateful"
)

// Pather is the path-building subset of a 2D drawing context. Both
// gogpu/gg and fogleman/gg contexts implement it.
type Pather interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubicTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

// kappa places cubic control points for a quarter-circle arc.
const kappa = 0.5522847498

// StrokeWidth maps a zero thickness to a hairline.
func StrokeWidth(t float64) float64 {
	if t <= 0 {
		return 1
	}
	return t
}

// Bounds returns the smallest rectangle containing pts.
func Bounds(pts ...stateful.Vec2) stateful.Rect {
	r := stateful.Rect{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		r.Min.X, r.Min.Y = min(r.Min.X, p.X), min(r.Min.Y, p.Y)
		r.Max.X, r.Max.Y = max(r.Max.X, p.X), max(r.Max.Y, p.Y)
	}
	return r
}

// CircleBounds returns the bounding square of a circle.
func CircleBounds(c stateful.Vec2, r float64) stateful.Rect {
	return stateful.Rect{Min: stateful.V(c.X-r, c.Y-r), Max: stateful.V(c.X+r, c.Y+r)}
}

// Polygon adds pts shifted by o as one subpath.
func Polygon(p Pather, o stateful.Vec2, closed bool, pts ...stateful.Vec2) {
	for i, pt := range pts {
		pt = pt.Add(o)
		if i == 0 {
			p.MoveTo(pt.X, pt.Y)
		} else {
			p.LineTo(pt.X, pt.Y)
		}
	}
	if closed {
		p.ClosePath()
	}
}

// NgonPoints returns n vertices on a circle, the first at angle 0.
func NgonPoints(c stateful.Vec2, r float64, n int) []stateful.Vec2 {
	pts := make([]stateful.Vec2, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = stateful.V(c.X+r*math.Cos(a), c.Y+r*math.Sin(a))
	}
	return pts
}

// RoundedRect adds a rectangle whose selected corners are rounded by r,
// shifted by o. The radius is clamped to half the shorter side.
func RoundedRect(p Pather, o, min, max stateful.Vec2, r float64, corners stateful.Corners) {
	min, max = min.Add(o), max.Add(o)
	r = math.Max(0, math.Min(r, math.Min(max.X-min.X, max.Y-min.Y)/2))
	radius := func(c stateful.Corners) float64 {
		if corners.Has(c) {
			return r
		}
		return 0
	}
	tl, tr := radius(stateful.CornerTopLeft), radius(stateful.CornerTopRight)
	br, bl := radius(stateful.CornerBottomRight), radius(stateful.CornerBottomLeft)
	k := 1 - kappa

	p.MoveTo(min.X+tl, min.Y)
	p.LineTo(max.X-tr, min.Y)
	if tr > 0 {
		p.CubicTo(max.X-tr*k, min.Y, max.X, min.Y+tr*k, max.X, min.Y+tr)
	}
	p.LineTo(max.X, max.Y-br)
	if br > 0 {
		p.CubicTo(max.X, max.Y-br*k, max.X-br*k, max.Y, max.X-br, max.Y)
	}
	p.LineTo(min.X+bl, max.Y)
	if bl > 0 {
		p.CubicTo(min.X+bl*k, max.Y, min.X, max.Y-bl*k, min.X, max.Y-bl)
	}
	p.LineTo(min.X, min.Y+tl)
	if tl > 0 {
		p.CubicTo(min.X, min.Y+tl*k, min.X+tl*k, min.Y, min.X+tl, min.Y)
	}
	p.ClosePath()
}

// Circle adds a circle shifted by o: a polygon of segments sides if
// segments is at least 3, four cubic arcs otherwise.
func Circle(p Pather, o, c stateful.Vec2, r float64, segments int) {
	if segments >= 3 {
		Polygon(p, o, true, NgonPoints(c, r, segments)...)
		return
	}
	RoundedRect(p, o, stateful.V(c.X-r, c.Y-r), stateful.V(c.X+r, c.Y+r), r, stateful.CornersAll)
}

// CubicAt evaluates a cubic Bézier curve at t.
func CubicAt(p0, p1, p2, p3 stateful.Vec2, t float64) stateful.Vec2 {
	u := 1 - t
	a, b, c, d := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
	return stateful.V(
		a*p0.X+b*p1.X+c*p2.X+d*p3.X,
		a*p0.Y+b*p1.Y+c*p2.Y+d*p3.Y,
	)
}

// Cubic adds a cubic Bézier curve shifted by o. With segments > 0 it is
// flattened into that many lines; otherwise it is left to the context.
func Cubic(p Pather, o, p0, p1, p2, p3 stateful.Vec2, segments int) {
	if segments <= 0 {
		a, b, c, d := p0.Add(o), p1.Add(o), p2.Add(o), p3.Add(o)
		p.MoveTo(a.X, a.Y)
		p.CubicTo(b.X, b.Y, c.X, c.Y, d.X, d.Y)
		return
	}
	pts := make([]stateful.Vec2, segments+1)
	for i := range pts {
		pts[i] = CubicAt(p0, p1, p2, p3, float64(i)/float64(segments))
	}
	Polygon(p, o, false, pts...)
}
