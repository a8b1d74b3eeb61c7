package fgsurface

import (
	"fmt"
	"image"
	"log/slog"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/gogpu/stateful"
	"github.com/gogpu/stateful/internal/raster"
	"github.com/gogpu/stateful/internal/slots"
)

func init() {
	stateful.RegisterSurface("fogleman", func(w, h int) (stateful.Surface, error) {
		return New(w, h)
	})
}

var goMono = sync.OnceValues(func() (*truetype.Font, error) {
	return truetype.Parse(gomono.TTF)
})

// Surface draws into a fogleman/gg context.
//
// Surface is not safe for concurrent use.
type Surface struct {
	dc *gg.Context

	bounds  image.Rectangle
	clips   []image.Rectangle
	applied image.Rectangle // mask currently set on dc

	textures slots.List[*image.NRGBA]
	fonts    slots.List[*truetype.Font]
	faces    map[faceKey]font.Face

	font       *truetype.Font
	fontSize   float64
	background stateful.Color
}

type faceKey struct {
	font *truetype.Font
	size float64
}

var (
	_ stateful.Surface      = (*Surface)(nil)
	_ stateful.ImageSurface = (*Surface)(nil)
)

// New creates a surface of the given pixel size cleared to the background.
func New(width, height int, opts ...Option) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("fgsurface: invalid size %dx%d", width, height)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.font == nil {
		f, err := goMono()
		if err != nil {
			return nil, fmt.Errorf("fgsurface: default font: %w", err)
		}
		o.font = f
	}

	s := &Surface{
		dc:         gg.NewContext(width, height),
		bounds:     image.Rect(0, 0, width, height),
		faces:      make(map[faceKey]font.Face),
		font:       o.font,
		fontSize:   o.fontSize,
		background: o.background,
	}
	s.applied = s.bounds
	s.Clear()
	return s, nil
}

// Context exposes the underlying drawing context.
func (s *Surface) Context() *gg.Context { return s.dc }

// Clear resets the pixels to the background and empties the clip stack.
func (s *Surface) Clear() {
	s.clips = s.clips[:0]
	s.apply(s.bounds)
	s.dc.SetColor(s.background)
	s.dc.Clear()
}

// Image returns the rendered frame.
func (s *Surface) Image() image.Image { return s.dc.Image() }

// SavePNG writes the rendered frame to a PNG file.
func (s *Surface) SavePNG(path string) error {
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("fgsurface: %w", err)
	}
	return nil
}

// RegisterTexture copies img and returns the id to draw it with.
func (s *Surface) RegisterTexture(img image.Image) stateful.TextureID {
	return stateful.TextureID(s.textures.Add(raster.ToNRGBA(img)))
}

// UnregisterTexture releases a texture. Unknown ids are ignored.
func (s *Surface) UnregisterTexture(id stateful.TextureID) {
	s.textures.Remove(int(id))
}

func (s *Surface) texture(id stateful.TextureID) (*image.NRGBA, bool) {
	tex, ok := s.textures.Get(int(id))
	if !ok {
		stateful.Logger().Warn("fgsurface: unknown texture", slog.Int("texture", int(id)))
	}
	return tex, ok
}

// RegisterFont makes f available to AddFontText.
func (s *Surface) RegisterFont(f *truetype.Font) stateful.FontID {
	return stateful.FontID(s.fonts.Add(f))
}

// LoadFont parses TrueType data and registers it.
func (s *Surface) LoadFont(data []byte) (stateful.FontID, error) {
	f, err := truetype.Parse(data)
	if err != nil {
		return stateful.DefaultFont, fmt.Errorf("fgsurface: load font: %w", err)
	}
	return s.RegisterFont(f), nil
}

func (s *Surface) face(id stateful.FontID, size float64) font.Face {
	f := s.font
	if id != stateful.DefaultFont {
		if rf, ok := s.fonts.Get(int(id)); ok {
			f = rf
		} else {
			stateful.Logger().Warn("fgsurface: unknown font, using default", slog.Int("font", int(id)))
		}
	}
	if size <= 0 {
		size = s.fontSize
	}
	k := faceKey{f, size}
	face, ok := s.faces[k]
	if !ok {
		face = truetype.NewFace(f, &truetype.Options{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		s.faces[k] = face
	}
	return face
}

func (s *Surface) clip() image.Rectangle {
	if n := len(s.clips); n > 0 {
		return s.clips[n-1]
	}
	return s.bounds
}

// apply makes r the clipping mask of the context.
func (s *Surface) apply(r image.Rectangle) {
	if r == s.applied {
		return
	}
	s.applied = r
	s.dc.ResetClip()
	if r == s.bounds {
		return
	}
	s.dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
	s.dc.Clip()
}

func (s *Surface) PushClipRect(r stateful.Rect, intersect bool) {
	pr := raster.PixelRect(r)
	if intersect {
		pr = pr.Intersect(s.clip())
	} else {
		pr = pr.Intersect(s.bounds)
	}
	s.clips = append(s.clips, pr)
}

func (s *Surface) PopClipRect() {
	if n := len(s.clips); n > 0 {
		s.clips = s.clips[:n-1]
	}
}

// begin prepares the context for a shape touching bounds. It reports
// false if the shape lies outside the clip.
func (s *Surface) begin(bounds image.Rectangle) bool {
	c := s.clip()
	if bounds.Intersect(c).Empty() {
		return false
	}
	s.apply(c)
	s.dc.ClearPath()
	return true
}
