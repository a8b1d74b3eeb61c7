package fgsurface

import (
	"strings"

	"golang.org/x/image/font"

	"github.com/gogpu/stateful"
	"github.com/gogpu/stateful/internal/raster"
)

// layout sets face on the context and breaks str into lines, wrapping at
// word boundaries when wrapWidth is positive.
func (s *Surface) layout(face font.Face, str string, wrapWidth float64) []string {
	s.dc.SetFontFace(face)
	if wrapWidth <= 0 {
		return strings.Split(str, "\n")
	}
	return s.dc.WordWrap(str, wrapWidth)
}

func lineHeight(face font.Face) float64 {
	return float64(face.Metrics().Height) / 64
}

func (s *Surface) measure(face font.Face, ls []string) stateful.Vec2 {
	width := 0.0
	for _, l := range ls {
		w, _ := s.dc.MeasureString(l)
		width = max(width, w)
	}
	return stateful.V(width, lineHeight(face)*float64(len(ls)))
}

func (s *Surface) drawText(face font.Face, pos stateful.Vec2, col stateful.Color, str string, wrapWidth float64, fine *stateful.Rect) {
	if str == "" {
		return
	}
	ls := s.layout(face, str, wrapWidth)
	box := stateful.Rect{Min: pos, Max: pos.Add(s.measure(face, ls))}

	c := s.clip()
	if fine != nil {
		c = c.Intersect(raster.PixelRect(*fine))
	}
	if raster.OuterRect(box, 2).Intersect(c).Empty() {
		return
	}
	s.apply(c)

	s.dc.SetColor(col)
	baseline := pos.Y + float64(face.Metrics().Ascent)/64
	for _, l := range ls {
		s.dc.DrawString(l, pos.X, baseline)
		baseline += lineHeight(face)
	}
}

// AddText draws str in the default font with its top-left corner at pos.
func (s *Surface) AddText(pos stateful.Vec2, col stateful.Color, str string) {
	s.drawText(s.face(stateful.DefaultFont, 0), pos, col, str, 0, nil)
}

func (s *Surface) AddFontText(font stateful.FontID, size float64, pos stateful.Vec2, col stateful.Color, str string, wrapWidth float64, fineClip *stateful.Rect) {
	s.drawText(s.face(font, size), pos, col, str, wrapWidth, fineClip)
}

// MeasureText returns the size of str laid out as AddFontText would.
func (s *Surface) MeasureText(font stateful.FontID, size float64, str string, wrapWidth float64) stateful.Vec2 {
	face := s.face(font, size)
	return s.measure(face, s.layout(face, str, wrapWidth))
}
