package stateful

import "log/slog"

// sparseLayerSpan is the layer span above which Compose logs a warning.
const sparseLayerSpan = 4096

// Compose submits every visible primitive in l to s, back to front, with
// geometry shifted by anchor. It returns the number of primitives drawn.
//
// A primitive with a Clip rectangle is drawn inside that rectangle,
// translated by anchor and intersected with the clip already in effect.
// The drag offset does not move the clip.
func Compose(l *DrawList, s Surface, anchor Vec2) int {
	lo, hi, ok := l.Layers()
	if !ok {
		return 0
	}
	if span := int64(hi) - int64(lo); span > sparseLayerSpan {
		Logger().Warn("stateful: sparse layers", slog.Int("min", lo), slog.Int("max", hi))
	}

	n := 0
	for _, p := range l.Ordered() {
		a := p.Attributes()
		if a.Clip != nil {
			s.PushClipRect(a.Clip.Translate(anchor), true)
		}
		p.Draw(s, a.Origin(anchor))
		if a.Clip != nil {
			s.PopClipRect()
		}
		n++
	}
	return n
}
