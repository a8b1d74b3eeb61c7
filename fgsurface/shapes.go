package fgsurface

import (
	"github.com/gogpu/stateful"
	"github.com/gogpu/stateful/internal/raster"
)

// stroke outlines the shape built by path if its padded bounds survive
// the clip.
func (s *Surface) stroke(bounds stateful.Rect, col stateful.Color, thickness float64, path func()) {
	if !s.begin(raster.OuterRect(bounds, thickness/2+1)) {
		return
	}
	path()
	s.dc.SetColor(col)
	s.dc.SetLineWidth(raster.StrokeWidth(thickness))
	s.dc.Stroke()
}

func (s *Surface) fill(bounds stateful.Rect, col stateful.Color, path func()) {
	if !s.begin(raster.OuterRect(bounds, 1)) {
		return
	}
	path()
	s.dc.SetColor(col)
	s.dc.Fill()
}

func (s *Surface) AddLine(p0, p1 stateful.Vec2, col stateful.Color, thickness float64) {
	s.stroke(raster.Bounds(p0, p1), col, thickness, func() {
		s.dc.DrawLine(p0.X, p0.Y, p1.X, p1.Y)
	})
}

func (s *Surface) AddRect(min, max stateful.Vec2, col stateful.Color, rounding float64, corners stateful.Corners, thickness float64) {
	s.stroke(raster.Bounds(min, max), col, thickness, func() {
		raster.RoundedRect(s.dc, stateful.Vec2{}, min, max, rounding, corners)
	})
}

func (s *Surface) AddRectFilled(min, max stateful.Vec2, col stateful.Color, rounding float64, corners stateful.Corners) {
	s.fill(raster.Bounds(min, max), col, func() {
		raster.RoundedRect(s.dc, stateful.Vec2{}, min, max, rounding, corners)
	})
}

func (s *Surface) AddQuad(p0, p1, p2, p3 stateful.Vec2, col stateful.Color, thickness float64) {
	s.stroke(raster.Bounds(p0, p1, p2, p3), col, thickness, func() {
		raster.Polygon(s.dc, stateful.Vec2{}, true, p0, p1, p2, p3)
	})
}

func (s *Surface) AddQuadFilled(p0, p1, p2, p3 stateful.Vec2, col stateful.Color) {
	s.fill(raster.Bounds(p0, p1, p2, p3), col, func() {
		raster.Polygon(s.dc, stateful.Vec2{}, true, p0, p1, p2, p3)
	})
}

func (s *Surface) AddTriangle(p0, p1, p2 stateful.Vec2, col stateful.Color, thickness float64) {
	s.stroke(raster.Bounds(p0, p1, p2), col, thickness, func() {
		raster.Polygon(s.dc, stateful.Vec2{}, true, p0, p1, p2)
	})
}

func (s *Surface) AddTriangleFilled(p0, p1, p2 stateful.Vec2, col stateful.Color) {
	s.fill(raster.Bounds(p0, p1, p2), col, func() {
		raster.Polygon(s.dc, stateful.Vec2{}, true, p0, p1, p2)
	})
}

func (s *Surface) AddCircle(center stateful.Vec2, radius float64, col stateful.Color, segments int, thickness float64) {
	if radius <= 0 {
		return
	}
	s.stroke(raster.CircleBounds(center, radius), col, thickness, func() {
		if segments < 3 {
			s.dc.DrawCircle(center.X, center.Y, radius)
			return
		}
		raster.Circle(s.dc, stateful.Vec2{}, center, radius, segments)
	})
}

func (s *Surface) AddCircleFilled(center stateful.Vec2, radius float64, col stateful.Color, segments int) {
	if radius <= 0 {
		return
	}
	s.fill(raster.CircleBounds(center, radius), col, func() {
		if segments < 3 {
			s.dc.DrawCircle(center.X, center.Y, radius)
			return
		}
		raster.Circle(s.dc, stateful.Vec2{}, center, radius, segments)
	})
}

func (s *Surface) AddNgon(center stateful.Vec2, radius float64, col stateful.Color, segments int, thickness float64) {
	if segments < 3 || radius <= 0 {
		return
	}
	s.stroke(raster.CircleBounds(center, radius), col, thickness, func() {
		raster.Polygon(s.dc, stateful.Vec2{}, true, raster.NgonPoints(center, radius, segments)...)
	})
}

func (s *Surface) AddNgonFilled(center stateful.Vec2, radius float64, col stateful.Color, segments int) {
	if segments < 3 || radius <= 0 {
		return
	}
	s.fill(raster.CircleBounds(center, radius), col, func() {
		raster.Polygon(s.dc, stateful.Vec2{}, true, raster.NgonPoints(center, radius, segments)...)
	})
}

func (s *Surface) AddPolyline(points []stateful.Vec2, col stateful.Color, closed bool, thickness float64) {
	if len(points) < 2 {
		return
	}
	s.stroke(raster.Bounds(points...), col, thickness, func() {
		raster.Polygon(s.dc, stateful.Vec2{}, closed, points...)
	})
}

func (s *Surface) AddConvexPolyFilled(points []stateful.Vec2, col stateful.Color) {
	if len(points) < 3 {
		return
	}
	s.fill(raster.Bounds(points...), col, func() {
		raster.Polygon(s.dc, stateful.Vec2{}, true, points...)
	})
}

func (s *Surface) AddBezierCubic(p0, p1, p2, p3 stateful.Vec2, col stateful.Color, thickness float64, segments int) {
	s.stroke(raster.Bounds(p0, p1, p2, p3), col, thickness, func() {
		raster.Cubic(s.dc, stateful.Vec2{}, p0, p1, p2, p3, segments)
	})
}
