package ggsurface

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/stateful"
	"github.com/gogpu/stateful/layout"
)

var (
	red  = stateful.RGB(255, 0, 0)
	blue = stateful.RGB(0, 0, 255)
)

func newSurface(t *testing.T, w, h int, opts ...Option) *Surface {
	t.Helper()
	s, err := New(w, h, opts...)
	if err != nil {
		t.Fatalf("New(%d, %d) = %v", w, h, err)
	}
	return s
}

func pixel(s *Surface, x, y int) color.NRGBA {
	return s.dst.NRGBAAt(x, y)
}

func TestNewInvalidSize(t *testing.T) {
	if _, err := New(0, 10); err == nil {
		t.Error("New(0, 10) should fail")
	}
}

func TestRegistered(t *testing.T) {
	s, err := stateful.NewSurface("gg", 8, 8)
	if err != nil {
		t.Fatalf("NewSurface(gg) = %v", err)
	}
	if _, ok := s.(stateful.ImageSurface); !ok {
		t.Errorf("gg surface %T is not an ImageSurface", s)
	}
}

func TestBackground(t *testing.T) {
	s := newSurface(t, 4, 4, WithBackground(blue))
	if got := pixel(s, 2, 2); got != blue.NRGBA() {
		t.Errorf("background pixel = %v, want blue", got)
	}
}

func TestRectFilled(t *testing.T) {
	s := newSurface(t, 20, 20)
	s.AddRectFilled(stateful.V(5, 5), stateful.V(15, 15), red, 0, stateful.CornersAll)

	if got := pixel(s, 10, 10); got != red.NRGBA() {
		t.Errorf("inside = %v, want red", got)
	}
	if got := pixel(s, 2, 2); got.A != 0 {
		t.Errorf("outside = %v, want transparent", got)
	}
}

func TestClipRect(t *testing.T) {
	s := newSurface(t, 20, 20)
	s.PushClipRect(stateful.R(0, 0, 10, 20), false)
	s.AddRectFilled(stateful.V(0, 0), stateful.V(20, 20), red, 0, stateful.CornersAll)
	s.PopClipRect()

	if got := pixel(s, 5, 10); got != red.NRGBA() {
		t.Errorf("inside clip = %v, want red", got)
	}
	if got := pixel(s, 15, 10); got.A != 0 {
		t.Errorf("outside clip = %v, want transparent", got)
	}
}

func TestClipIntersect(t *testing.T) {
	s := newSurface(t, 20, 20)
	s.PushClipRect(stateful.R(0, 0, 10, 10), false)
	s.PushClipRect(stateful.R(5, 5, 20, 20), true)
	if got := s.clip(); got != image.Rect(5, 5, 10, 10) {
		t.Errorf("intersected clip = %v, want (5,5)-(10,10)", got)
	}
	s.PushClipRect(stateful.R(15, 15, 20, 20), false)
	if got := s.clip(); got != image.Rect(15, 15, 20, 20) {
		t.Errorf("replaced clip = %v, want (15,15)-(20,20)", got)
	}
	s.PopClipRect()
	s.PopClipRect()
	s.PopClipRect()
	s.PopClipRect()
	if got := s.clip(); got != s.dst.Rect {
		t.Errorf("clip after pops = %v, want full surface", got)
	}
}

func TestTranslucentBlends(t *testing.T) {
	s := newSurface(t, 10, 10, WithBackground(stateful.White))
	s.AddRectFilled(stateful.V(0, 0), stateful.V(10, 10), stateful.RGBA(0, 0, 0, 128), 0, stateful.CornersNone)
	got := pixel(s, 5, 5)
	if got.A != 255 || got.R < 120 || got.R > 135 {
		t.Errorf("half black over white = %v, want opaque mid gray", got)
	}
}

func TestMultiColor(t *testing.T) {
	s := newSurface(t, 10, 10)
	s.AddRectFilledMultiColor(stateful.V(0, 0), stateful.V(10, 10), red, blue, blue, red)
	left, right := pixel(s, 0, 5), pixel(s, 9, 5)
	if left.R < 200 || right.B < 200 {
		t.Errorf("left = %v, right = %v, want red to blue", left, right)
	}
}

func TestCircleFilled(t *testing.T) {
	s := newSurface(t, 20, 20)
	s.AddCircleFilled(stateful.V(10, 10), 6, red, 0)
	if got := pixel(s, 10, 10); got != red.NRGBA() {
		t.Errorf("center = %v, want red", got)
	}
	if got := pixel(s, 1, 1); got.A != 0 {
		t.Errorf("corner = %v, want transparent", got)
	}
}

func TestNgonDegenerate(t *testing.T) {
	s := newSurface(t, 10, 10)
	s.AddNgonFilled(stateful.V(5, 5), 4, red, 2)
	if got := pixel(s, 5, 5); got.A != 0 {
		t.Errorf("2-gon drew %v, want nothing", got)
	}
}

func checker() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, red.NRGBA())
	img.SetNRGBA(1, 0, blue.NRGBA())
	img.SetNRGBA(0, 1, blue.NRGBA())
	img.SetNRGBA(1, 1, red.NRGBA())
	return img
}

func TestImageUV(t *testing.T) {
	s := newSurface(t, 10, 10)
	tex := s.RegisterTexture(checker())

	// Top-right texel only.
	s.AddImage(tex, stateful.V(0, 0), stateful.V(10, 10), stateful.V(0.5, 0), stateful.V(1, 0.5), stateful.White)
	if got := pixel(s, 5, 5); got != blue.NRGBA() {
		t.Errorf("uv region pixel = %v, want blue", got)
	}
}

func TestImageTint(t *testing.T) {
	s := newSurface(t, 4, 4)
	white := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	white.SetNRGBA(0, 0, color.NRGBA{255, 255, 255, 255})
	tex := s.RegisterTexture(white)

	s.AddImage(tex, stateful.V(0, 0), stateful.V(4, 4), stateful.V(0, 0), stateful.V(1, 1), red)
	if got := pixel(s, 2, 2); got != red.NRGBA() {
		t.Errorf("tinted pixel = %v, want red", got)
	}
}

func TestImageRoundedCorners(t *testing.T) {
	s := newSurface(t, 20, 20)
	white := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	white.SetNRGBA(0, 0, color.NRGBA{255, 255, 255, 255})
	tex := s.RegisterTexture(white)

	s.AddImageRounded(tex, stateful.V(0, 0), stateful.V(20, 20), stateful.V(0, 0), stateful.V(1, 1), stateful.White, 8, stateful.CornerTopLeft)
	if got := pixel(s, 0, 0); got.A > 10 {
		t.Errorf("rounded corner alpha = %d, want ~0", got.A)
	}
	if got := pixel(s, 19, 0); got.A < 200 {
		t.Errorf("square corner alpha = %d, want opaque", got.A)
	}
}

func TestImageQuad(t *testing.T) {
	s := newSurface(t, 10, 10)
	tex := s.RegisterTexture(checker())
	s.AddImageQuad(tex,
		stateful.V(0, 0), stateful.V(10, 0), stateful.V(10, 10), stateful.V(0, 10),
		stateful.V(0, 0), stateful.V(1, 0), stateful.V(1, 1), stateful.V(0, 1),
		stateful.White)
	if got := pixel(s, 2, 2); got != red.NRGBA() {
		t.Errorf("top-left = %v, want red", got)
	}
	if got := pixel(s, 7, 2); got != blue.NRGBA() {
		t.Errorf("top-right = %v, want blue", got)
	}
}

func TestUnknownTexture(t *testing.T) {
	s := newSurface(t, 4, 4)
	s.AddImage(7, stateful.V(0, 0), stateful.V(4, 4), stateful.V(0, 0), stateful.V(1, 1), stateful.White)
	if got := pixel(s, 1, 1); got.A != 0 {
		t.Errorf("unknown texture drew %v", got)
	}
}

func TestTextureIDsReused(t *testing.T) {
	s := newSurface(t, 4, 4)
	a := s.RegisterTexture(checker())
	s.RegisterTexture(checker())
	s.UnregisterTexture(a)
	if got := s.RegisterTexture(checker()); got != a {
		t.Errorf("RegisterTexture after unregister = %d, want %d", got, a)
	}
}

func TestTextDraws(t *testing.T) {
	s := newSurface(t, 80, 30)
	s.AddText(stateful.V(2, 2), stateful.White, "Hello")

	inked := 0
	for y := range 30 {
		for x := range 80 {
			if pixel(s, x, y).A > 0 {
				inked++
			}
		}
	}
	if inked == 0 {
		t.Error("AddText drew no pixels")
	}
}

func TestFineClip(t *testing.T) {
	s := newSurface(t, 80, 30)
	fine := stateful.R(0, 0, 1, 1)
	s.AddFontText(stateful.DefaultFont, 20, stateful.V(10, 5), stateful.White, "Hello", 0, &fine)
	for y := range 30 {
		for x := range 80 {
			if x >= 1 || y >= 1 {
				if pixel(s, x, y).A > 0 {
					t.Fatalf("pixel (%d,%d) inked outside fine clip", x, y)
				}
			}
		}
	}
}

func TestMeasureWrap(t *testing.T) {
	s := newSurface(t, 10, 10)
	one := s.MeasureText(stateful.DefaultFont, 13, "aaa bbb ccc", 0)
	wrapped := s.MeasureText(stateful.DefaultFont, 13, "aaa bbb ccc", one.X/2)
	if wrapped.Y <= one.Y {
		t.Errorf("wrapped height %g, want more than one line %g", wrapped.Y, one.Y)
	}
	if got := s.MeasureText(stateful.FontID(42), 13, "aaa bbb ccc", 0); got != one {
		t.Errorf("unknown font measured %v, want default font %v", got, one)
	}
}

func TestSavePNG(t *testing.T) {
	s := newSurface(t, 4, 4, WithBackground(red))
	path := filepath.Join(t.TempDir(), "out.png")
	if err := s.SavePNG(path); err != nil {
		t.Fatalf("SavePNG = %v", err)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Errorf("PNG not written: %v", err)
	}
	if err := s.SavePNG(filepath.Join(t.TempDir(), "missing", "out.png")); err == nil {
		t.Error("SavePNG into a missing directory should fail")
	}
}

func TestDrawCanvas(t *testing.T) {
	s := newSurface(t, 40, 40)
	c := stateful.NewAt(10, 10, 20, 20)
	c.RectFilled(stateful.V(0, 0), stateful.V(40, 40), red)
	c.Draw(layout.NewWindow("test", s), "c", true)

	if got := pixel(s, 15, 15); got != red.NRGBA() {
		t.Errorf("inside canvas = %v, want red", got)
	}
	if got := pixel(s, 35, 35); got.A != 0 {
		t.Errorf("outside clipped canvas = %v, want transparent", got)
	}
}
