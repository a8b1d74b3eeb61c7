package ggsurface

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/stateful"
	"github.com/gogpu/stateful/internal/raster"
	"github.com/gogpu/stateful/internal/slots"
)

func init() {
	stateful.RegisterSurface("gg", func(w, h int) (stateful.Surface, error) {
		return New(w, h)
	})
}

var goRegular = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

// Surface rasterizes stateful draw calls into an RGBA frame.
//
// Surface is not safe for concurrent use.
type Surface struct {
	frame *gg.Pixmap
	dst   *image.NRGBA // aliases frame

	// scratch receives one path at a time before compositing.
	scratch    *gg.Context
	scratchPix *gg.Pixmap
	scratchImg *image.NRGBA

	clips []image.Rectangle

	textures slots.List[*image.NRGBA]
	fonts    slots.List[*text.FontSource]
	faces    map[faceKey]text.Face

	font       *text.FontSource
	fontSize   float64
	background stateful.Color
}

type faceKey struct {
	src  *text.FontSource
	size float64
}

var (
	_ stateful.Surface      = (*Surface)(nil)
	_ stateful.ImageSurface = (*Surface)(nil)
)

// New creates a surface of the given pixel size cleared to the background.
func New(width, height int, opts ...Option) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("ggsurface: invalid size %dx%d", width, height)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.font == nil {
		src, err := goRegular()
		if err != nil {
			return nil, fmt.Errorf("ggsurface: default font: %w", err)
		}
		o.font = src
	}

	s := &Surface{
		frame:      gg.NewPixmap(width, height),
		scratchPix: gg.NewPixmap(width, height),
		faces:      make(map[faceKey]text.Face),
		font:       o.font,
		fontSize:   o.fontSize,
		background: o.background,
	}
	s.dst = nrgbaView(s.frame)
	s.scratch = gg.NewContext(width, height, gg.WithPixmap(s.scratchPix))
	s.scratchImg = nrgbaView(s.scratchPix)
	s.Clear()
	return s, nil
}

// nrgbaView wraps the pixmap bytes, which gg stores non-premultiplied.
func nrgbaView(pm *gg.Pixmap) *image.NRGBA {
	return &image.NRGBA{
		Pix:    pm.Data(),
		Stride: pm.Width() * 4,
		Rect:   image.Rect(0, 0, pm.Width(), pm.Height()),
	}
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.frame.Width() }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.frame.Height() }

// Clear starts a new frame: pixels are reset to the background and the
// clip stack is emptied.
func (s *Surface) Clear() {
	s.frame.Clear(rgba(s.background))
	s.clips = s.clips[:0]
}

// Image returns a copy of the rendered frame.
func (s *Surface) Image() image.Image {
	img := image.NewNRGBA(s.dst.Rect)
	copy(img.Pix, s.dst.Pix)
	return img
}

// SavePNG writes the rendered frame to a PNG file.
func (s *Surface) SavePNG(path string) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("ggsurface: %w", err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	if err := png.Encode(f, s.dst); err != nil {
		return fmt.Errorf("ggsurface: encode %s: %w", path, err)
	}
	return nil
}

// RegisterTexture copies img and returns the id to draw it with.
// Ids of unregistered textures are reused.
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
		stateful.Logger().Warn("ggsurface: unknown texture", slog.Int("texture", int(id)))
	}
	return tex, ok
}

// RegisterFont makes src available to AddFontText.
func (s *Surface) RegisterFont(src *text.FontSource) stateful.FontID {
	return stateful.FontID(s.fonts.Add(src))
}

// LoadFont parses TrueType or OpenType data and registers it.
func (s *Surface) LoadFont(data []byte) (stateful.FontID, error) {
	src, err := text.NewFontSource(data)
	if err != nil {
		return stateful.DefaultFont, fmt.Errorf("ggsurface: load font: %w", err)
	}
	return s.RegisterFont(src), nil
}

func (s *Surface) face(id stateful.FontID, size float64) text.Face {
	src := s.font
	if id != stateful.DefaultFont {
		if f, ok := s.fonts.Get(int(id)); ok {
			src = f
		} else {
			stateful.Logger().Warn("ggsurface: unknown font, using default", slog.Int("font", int(id)))
		}
	}
	if size <= 0 {
		size = s.fontSize
	}
	k := faceKey{src, size}
	f, ok := s.faces[k]
	if !ok {
		f = src.Face(size)
		s.faces[k] = f
	}
	return f
}

func (s *Surface) clip() image.Rectangle {
	if n := len(s.clips); n > 0 {
		return s.clips[n-1]
	}
	return s.dst.Rect
}

func (s *Surface) PushClipRect(r stateful.Rect, intersect bool) {
	pr := raster.PixelRect(r)
	if intersect {
		pr = pr.Intersect(s.clip())
	} else {
		pr = pr.Intersect(s.dst.Rect)
	}
	s.clips = append(s.clips, pr)
}

func (s *Surface) PopClipRect() {
	if n := len(s.clips); n > 0 {
		s.clips = s.clips[:n-1]
	}
}

// target returns the part of the frame drawing into bounds may touch,
// or false if the current clip hides it.
func (s *Surface) target(bounds image.Rectangle) (*image.NRGBA, image.Rectangle, bool) {
	r := bounds.Intersect(s.clip())
	if r.Empty() {
		return nil, r, false
	}
	return s.dst.SubImage(r).(*image.NRGBA), r, true
}

// paint runs fn against the scratch context with the origin moved to the
// top-left of bounds, then composites the result over the frame.
func (s *Surface) paint(bounds stateful.Rect, pad float64, fn func(dc *gg.Context, o stateful.Vec2) error) {
	dst, r, ok := s.target(raster.OuterRect(bounds, pad+1))
	if !ok {
		return
	}
	w, h := r.Dx(), r.Dy()
	for y := range h {
		clear(s.scratchImg.Pix[y*s.scratchImg.Stride : y*s.scratchImg.Stride+w*4])
	}

	dc := s.scratch
	dc.ClearPath()
	if err := fn(dc, stateful.V(-float64(r.Min.X), -float64(r.Min.Y))); err != nil {
		stateful.Logger().Warn("ggsurface: rasterize", slog.Any("err", err))
		return
	}
	draw.Draw(dst, r, s.scratchImg, image.Point{}, draw.Over)
}
