package ggsurface

import (
	"strings"

	"github.com/gogpu/gg/text"

	"github.com/gogpu/stateful"
	"github.com/gogpu/stateful/internal/raster"
)

// lines splits s at hard breaks and, with a positive wrapWidth, wraps each
// paragraph at word boundaries.
func lines(s string, face text.Face, wrapWidth float64) []string {
	if wrapWidth <= 0 {
		return strings.Split(s, "\n")
	}
	wrapped := text.WrapText(s, face, wrapWidth, text.WrapWordChar)
	out := make([]string, len(wrapped))
	for i, w := range wrapped {
		out[i] = w.Text
	}
	return out
}

func (s *Surface) drawText(face text.Face, pos stateful.Vec2, col stateful.Color, str string, wrapWidth float64, fine *stateful.Rect) {
	if str == "" {
		return
	}
	m := face.Metrics()
	ls := lines(str, face, wrapWidth)

	box := stateful.Rect{Min: pos, Max: pos.Add(measure(face, ls))}
	bounds := raster.OuterRect(box, 2)
	if fine != nil {
		bounds = bounds.Intersect(raster.PixelRect(*fine))
	}
	dst, _, ok := s.target(bounds)
	if !ok {
		return
	}

	baseline := pos.Y + m.Ascent
	for _, l := range ls {
		text.Draw(dst, l, face, pos.X, baseline, col)
		baseline += m.LineHeight()
	}
}

// AddText draws s with the default font, Pos being the top-left corner of
// the first line.
func (s *Surface) AddText(pos stateful.Vec2, col stateful.Color, str string) {
	s.drawText(s.face(stateful.DefaultFont, 0), pos, col, str, 0, nil)
}

func (s *Surface) AddFontText(font stateful.FontID, size float64, pos stateful.Vec2, col stateful.Color, str string, wrapWidth float64, fineClip *stateful.Rect) {
	s.drawText(s.face(font, size), pos, col, str, wrapWidth, fineClip)
}

// MeasureText returns the size of str laid out as AddFontText would.
func (s *Surface) MeasureText(font stateful.FontID, size float64, str string, wrapWidth float64) stateful.Vec2 {
	face := s.face(font, size)
	return measure(face, lines(str, face, wrapWidth))
}

func measure(face text.Face, ls []string) stateful.Vec2 {
	width := 0.0
	for _, l := range ls {
		width = max(width, face.Advance(l))
	}
	return stateful.V(width, face.Metrics().LineHeight()*float64(len(ls)))
}
