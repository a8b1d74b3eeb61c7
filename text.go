package stateful

// Text is a string drawn with the surface's default font and size.
// Pos is the top-left corner of the first line.
type Text struct {
	Attrs
	Pos   Vec2
	Color Color
	Text  string
}

func (t *Text) Draw(s Surface, o Vec2) {
	s.AddText(t.Pos.Add(o), t.Color, t.Text)
}

func (t *Text) Translate(dx, dy float64) { t.Pos = t.Pos.Add(Vec2{dx, dy}) }

// FontText is a string drawn with an explicit font and size.
// A positive WrapWidth wraps lines at that width. FineClip, when set, is a
// canvas-local rectangle the glyphs are clipped to; it follows the text
// while dragged.
type FontText struct {
	Attrs
	Font      FontID
	Size      float64
	Pos       Vec2
	Color     Color
	Text      string
	WrapWidth float64
	FineClip  *Rect
}

func (t *FontText) Draw(s Surface, o Vec2) {
	var fine *Rect
	if t.FineClip != nil {
		r := t.FineClip.Translate(o)
		fine = &r
	}
	s.AddFontText(t.Font, t.Size, t.Pos.Add(o), t.Color, t.Text, t.WrapWidth, fine)
}

func (t *FontText) Translate(dx, dy float64) {
	d := Vec2{dx, dy}
	t.Pos = t.Pos.Add(d)
	if t.FineClip != nil {
		r := t.FineClip.Translate(d)
		t.FineClip = &r
	}
}
