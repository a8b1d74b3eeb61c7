package ggsurface

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/stateful"
	"github.com/gogpu/stateful/internal/raster"
)

// rgba converts with straight alpha; gg.FromColor would premultiply.
func rgba(c stateful.Color) gg.RGBA {
	return gg.RGBA2(float64(c.R())/255, float64(c.G())/255, float64(c.B())/255, float64(c.A())/255)
}

func stroke(dc *gg.Context, col stateful.Color, thickness float64) error {
	c := rgba(col)
	dc.SetRGBA(c.R, c.G, c.B, c.A)
	dc.SetLineWidth(raster.StrokeWidth(thickness))
	return dc.Stroke()
}

func fill(dc *gg.Context, col stateful.Color) error {
	c := rgba(col)
	dc.SetRGBA(c.R, c.G, c.B, c.A)
	return dc.Fill()
}

func (s *Surface) AddLine(p0, p1 stateful.Vec2, col stateful.Color, thickness float64) {
	s.paint(raster.Bounds(p0, p1), thickness/2, func(dc *gg.Context, o stateful.Vec2) error {
		a, b := p0.Add(o), p1.Add(o)
		dc.DrawLine(a.X, a.Y, b.X, b.Y)
		return stroke(dc, col, thickness)
	})
}

func (s *Surface) AddRect(min, max stateful.Vec2, col stateful.Color, rounding float64, corners stateful.Corners, thickness float64) {
	s.paint(raster.Bounds(min, max), thickness/2, func(dc *gg.Context, o stateful.Vec2) error {
		raster.RoundedRect(dc, o, min, max, rounding, corners)
		return stroke(dc, col, thickness)
	})
}

func (s *Surface) AddRectFilled(min, max stateful.Vec2, col stateful.Color, rounding float64, corners stateful.Corners) {
	s.paint(raster.Bounds(min, max), 0, func(dc *gg.Context, o stateful.Vec2) error {
		raster.RoundedRect(dc, o, min, max, rounding, corners)
		return fill(dc, col)
	})
}

func (s *Surface) AddQuad(p0, p1, p2, p3 stateful.Vec2, col stateful.Color, thickness float64) {
	s.paint(raster.Bounds(p0, p1, p2, p3), thickness/2, func(dc *gg.Context, o stateful.Vec2) error {
		raster.Polygon(dc, o, true, p0, p1, p2, p3)
		return stroke(dc, col, thickness)
	})
}

func (s *Surface) AddQuadFilled(p0, p1, p2, p3 stateful.Vec2, col stateful.Color) {
	s.paint(raster.Bounds(p0, p1, p2, p3), 0, func(dc *gg.Context, o stateful.Vec2) error {
		raster.Polygon(dc, o, true, p0, p1, p2, p3)
		return fill(dc, col)
	})
}

func (s *Surface) AddTriangle(p0, p1, p2 stateful.Vec2, col stateful.Color, thickness float64) {
	s.paint(raster.Bounds(p0, p1, p2), thickness/2, func(dc *gg.Context, o stateful.Vec2) error {
		raster.Polygon(dc, o, true, p0, p1, p2)
		return stroke(dc, col, thickness)
	})
}

func (s *Surface) AddTriangleFilled(p0, p1, p2 stateful.Vec2, col stateful.Color) {
	s.paint(raster.Bounds(p0, p1, p2), 0, func(dc *gg.Context, o stateful.Vec2) error {
		raster.Polygon(dc, o, true, p0, p1, p2)
		return fill(dc, col)
	})
}

func (s *Surface) AddCircle(center stateful.Vec2, radius float64, col stateful.Color, segments int, thickness float64) {
	if radius <= 0 {
		return
	}
	s.paint(raster.CircleBounds(center, radius), thickness/2, func(dc *gg.Context, o stateful.Vec2) error {
		raster.Circle(dc, o, center, radius, segments)
		return stroke(dc, col, thickness)
	})
}

func (s *Surface) AddCircleFilled(center stateful.Vec2, radius float64, col stateful.Color, segments int) {
	if radius <= 0 {
		return
	}
	s.paint(raster.CircleBounds(center, radius), 0, func(dc *gg.Context, o stateful.Vec2) error {
		raster.Circle(dc, o, center, radius, segments)
		return fill(dc, col)
	})
}

// AddNgon draws nothing for fewer than three sides.
func (s *Surface) AddNgon(center stateful.Vec2, radius float64, col stateful.Color, segments int, thickness float64) {
	if segments < 3 || radius <= 0 {
		return
	}
	s.paint(raster.CircleBounds(center, radius), thickness/2, func(dc *gg.Context, o stateful.Vec2) error {
		raster.Polygon(dc, o, true, raster.NgonPoints(center, radius, segments)...)
		return stroke(dc, col, thickness)
	})
}

func (s *Surface) AddNgonFilled(center stateful.Vec2, radius float64, col stateful.Color, segments int) {
	if segments < 3 || radius <= 0 {
		return
	}
	s.paint(raster.CircleBounds(center, radius), 0, func(dc *gg.Context, o stateful.Vec2) error {
		raster.Polygon(dc, o, true, raster.NgonPoints(center, radius, segments)...)
		return fill(dc, col)
	})
}

func (s *Surface) AddPolyline(points []stateful.Vec2, col stateful.Color, closed bool, thickness float64) {
	if len(points) < 2 {
		return
	}
	s.paint(raster.Bounds(points...), thickness/2, func(dc *gg.Context, o stateful.Vec2) error {
		raster.Polygon(dc, o, closed, points...)
		return stroke(dc, col, thickness)
	})
}

func (s *Surface) AddConvexPolyFilled(points []stateful.Vec2, col stateful.Color) {
	if len(points) < 3 {
		return
	}
	s.paint(raster.Bounds(points...), 0, func(dc *gg.Context, o stateful.Vec2) error {
		raster.Polygon(dc, o, true, points...)
		return fill(dc, col)
	})
}

// AddBezierCubic uses gg's adaptive flattening when segments is 0.
func (s *Surface) AddBezierCubic(p0, p1, p2, p3 stateful.Vec2, col stateful.Color, thickness float64, segments int) {
	s.paint(raster.Bounds(p0, p1, p2, p3), thickness/2, func(dc *gg.Context, o stateful.Vec2) error {
		raster.Cubic(dc, o, p0, p1, p2, p3, segments)
		return stroke(dc, col, thickness)
	})
}
