package ggsurface

import (
	"log/slog"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"

	"github.com/gogpu/stateful"
	"github.com/gogpu/stateful/internal/raster"
)

func (s *Surface) AddRectFilledMultiColor(min, max stateful.Vec2, upperLeft, upperRight, bottomRight, bottomLeft stateful.Color) {
	if max.X <= min.X || max.Y <= min.Y {
		return
	}
	dst, r, ok := s.target(raster.PixelRect(stateful.Rect{Min: min, Max: max}))
	if !ok {
		return
	}
	src := raster.MultiColor(r, min, max, upperLeft, upperRight, bottomRight, bottomLeft)
	draw.Draw(dst, r, src, r.Min, draw.Over)
}

func (s *Surface) AddImage(tex stateful.TextureID, min, max, uvMin, uvMax stateful.Vec2, col stateful.Color) {
	s.AddImageRounded(tex, min, max, uvMin, uvMax, col, 0, stateful.CornersNone)
}

// AddImageRounded draws the texture region through a rounded-rectangle
// coverage mask rasterized by gg.
func (s *Surface) AddImageRounded(tex stateful.TextureID, min, max, uvMin, uvMax stateful.Vec2, col stateful.Color, rounding float64, corners stateful.Corners) {
	t, ok := s.texture(tex)
	if !ok {
		return
	}
	dr := raster.PixelRect(stateful.Rect{Min: min, Max: max})
	sr := raster.UVRect(t, uvMin, uvMax)
	if dr.Empty() || sr.Empty() {
		return
	}
	dst, r, ok := s.target(dr)
	if !ok {
		return
	}
	src := raster.Scaled(t, sr, dr.Size(), col)
	sp := r.Min.Sub(dr.Min)

	if rounding <= 0 || corners == stateful.CornersNone {
		draw.Draw(dst, r, src, sp, draw.Over)
		return
	}

	pm := gg.NewPixmap(dr.Dx(), dr.Dy())
	mask := nrgbaView(pm)
	dc := gg.NewContext(dr.Dx(), dr.Dy(), gg.WithPixmap(pm))
	size := stateful.V(float64(dr.Dx()), float64(dr.Dy()))
	raster.RoundedRect(dc, stateful.Vec2{}, stateful.Vec2{}, size, rounding, corners)
	if err := fill(dc, stateful.White); err != nil {
		stateful.Logger().Warn("ggsurface: rasterize mask", slog.Any("err", err))
		return
	}
	draw.DrawMask(dst, r, src, sp, mask, sp, draw.Over)
}

// AddImageQuad maps the texture onto the quad by inverting the bilinear
// patch at every covered pixel center.
func (s *Surface) AddImageQuad(tex stateful.TextureID, p0, p1, p2, p3, uv0, uv1, uv2, uv3 stateful.Vec2, col stateful.Color) {
	t, ok := s.texture(tex)
	if !ok {
		return
	}
	dst, r, ok := s.target(raster.OuterRect(raster.Bounds(p0, p1, p2, p3), 0))
	if !ok {
		return
	}
	src := raster.TexturedQuad(r, t, p0, p1, p2, p3, uv0, uv1, uv2, uv3, col)
	draw.Draw(dst, r, src, r.Min, draw.Over)
}

