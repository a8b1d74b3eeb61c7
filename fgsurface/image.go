package fgsurface

import (
	"image"
	"image/color"

	"github.com/gogpu/stateful"
	"github.com/gogpu/stateful/internal/raster"
)

// cornerGradient blends four corner colors bilinearly over a rectangle.
type cornerGradient struct {
	min, size      stateful.Vec2
	ul, ur, br, bl stateful.Color
}

func (g cornerGradient) ColorAt(x, y int) color.Color {
	tx := (float64(x) + 0.5 - g.min.X) / g.size.X
	ty := (float64(y) + 0.5 - g.min.Y) / g.size.Y
	tx, ty = min(max(tx, 0), 1), min(max(ty, 0), 1)
	return g.ul.Lerp(g.ur, tx).Lerp(g.bl.Lerp(g.br, tx), ty)
}

// placed paints img with its top-left corner at at.
type placed struct {
	img *image.NRGBA
	at  image.Point
}

func (p placed) ColorAt(x, y int) color.Color {
	return p.img.At(x-p.at.X, y-p.at.Y)
}

func (s *Surface) AddRectFilledMultiColor(min, max stateful.Vec2, upperLeft, upperRight, bottomRight, bottomLeft stateful.Color) {
	if max.X <= min.X || max.Y <= min.Y {
		return
	}
	if !s.begin(raster.PixelRect(stateful.Rect{Min: min, Max: max})) {
		return
	}
	s.dc.SetFillStyle(cornerGradient{
		min: min, size: max.Sub(min),
		ul: upperLeft, ur: upperRight, br: bottomRight, bl: bottomLeft,
	})
	s.dc.DrawRectangle(min.X, min.Y, max.X-min.X, max.Y-min.Y)
	s.dc.Fill()
}

func (s *Surface) AddImage(tex stateful.TextureID, min, max, uvMin, uvMax stateful.Vec2, col stateful.Color) {
	s.AddImageRounded(tex, min, max, uvMin, uvMax, col, 0, stateful.CornersNone)
}

// AddImageRounded fills the rounded rectangle with the resampled texture
// region as its fill pattern.
func (s *Surface) AddImageRounded(tex stateful.TextureID, min, max, uvMin, uvMax stateful.Vec2, col stateful.Color, rounding float64, corners stateful.Corners) {
	t, ok := s.texture(tex)
	if !ok {
		return
	}
	dr := raster.PixelRect(stateful.Rect{Min: min, Max: max})
	sr := raster.UVRect(t, uvMin, uvMax)
	if dr.Empty() || sr.Empty() || !s.begin(dr) {
		return
	}
	img := raster.Scaled(t, sr, dr.Size(), col)

	if rounding <= 0 || corners == stateful.CornersNone {
		s.dc.DrawImage(img, dr.Min.X, dr.Min.Y)
		return
	}
	s.dc.SetFillStyle(placed{img: img, at: dr.Min})
	raster.RoundedRect(s.dc, stateful.Vec2{},
		stateful.V(float64(dr.Min.X), float64(dr.Min.Y)),
		stateful.V(float64(dr.Max.X), float64(dr.Max.Y)),
		rounding, corners)
	s.dc.Fill()
}

func (s *Surface) AddImageQuad(tex stateful.TextureID, p0, p1, p2, p3, uv0, uv1, uv2, uv3 stateful.Vec2, col stateful.Color) {
	t, ok := s.texture(tex)
	if !ok {
		return
	}
	r := raster.OuterRect(raster.Bounds(p0, p1, p2, p3), 0).Intersect(s.clip())
	if !s.begin(r) {
		return
	}
	img := raster.TexturedQuad(r, t, p0, p1, p2, p3, uv0, uv1, uv2, uv3, col)
	s.dc.SetFillStyle(placed{img: img, at: image.Point{}})
	s.dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
	s.dc.Fill()
}
