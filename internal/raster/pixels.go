package raster

import (
	"image"
	"math"

	"golang.org/x/image/draw"

	"github.com/gogpu/stateful"
)

// PixelRect rounds r to the pixels whose centers it covers.
func PixelRect(r stateful.Rect) image.Rectangle {
	return image.Rect(
		int(math.Round(r.Min.X)), int(math.Round(r.Min.Y)),
		int(math.Round(r.Max.X)), int(math.Round(r.Max.Y)),
	)
}

// OuterRect returns the pixels touched by r grown by pad.
func OuterRect(r stateful.Rect, pad float64) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.Min.X-pad)), int(math.Floor(r.Min.Y-pad)),
		int(math.Ceil(r.Max.X+pad)), int(math.Ceil(r.Max.Y+pad)),
	)
}

// ToNRGBA copies img into a new NRGBA image with its origin at (0, 0).
func ToNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Rect, img, b.Min, draw.Src)
	return out
}

// UVRect maps normalized texture coordinates to texel bounds.
func UVRect(tex *image.NRGBA, uvMin, uvMax stateful.Vec2) image.Rectangle {
	w, h := float64(tex.Rect.Dx()), float64(tex.Rect.Dy())
	return image.Rect(
		int(math.Round(uvMin.X*w)), int(math.Round(uvMin.Y*h)),
		int(math.Round(uvMax.X*w)), int(math.Round(uvMax.Y*h)),
	).Intersect(tex.Rect)
}

// Tint multiplies every pixel of img by c in place.
func Tint(img *image.NRGBA, c stateful.Color) {
	if c == stateful.White {
		return
	}
	for i := 0; i+3 < len(img.Pix); i += 4 {
		m := stateful.RGBA(img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3]).Modulate(c)
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = m.R(), m.G(), m.B(), m.A()
	}
}

// Scaled returns the sr region of tex resampled to size and tinted.
func Scaled(tex *image.NRGBA, sr image.Rectangle, size image.Point, tint stateful.Color) *image.NRGBA {
	out := image.NewNRGBA(image.Rectangle{Max: size})
	draw.BiLinear.Scale(out, out.Rect, tex, sr, draw.Src, nil)
	Tint(out, tint)
	return out
}

// MultiColor fills the r pixels of the rectangle min..max with a bilinear
// blend of its corner colors.
func MultiColor(r image.Rectangle, min, max stateful.Vec2, upperLeft, upperRight, bottomRight, bottomLeft stateful.Color) *image.NRGBA {
	w, h := max.X-min.X, max.Y-min.Y
	out := image.NewNRGBA(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		ty := (float64(y) + 0.5 - min.Y) / h
		for x := r.Min.X; x < r.Max.X; x++ {
			tx := (float64(x) + 0.5 - min.X) / w
			top := upperLeft.Lerp(upperRight, tx)
			bottom := bottomLeft.Lerp(bottomRight, tx)
			out.SetNRGBA(x, y, top.Lerp(bottom, ty).NRGBA())
		}
	}
	return out
}

func cross(a, b stateful.Vec2) float64 { return a.X*b.Y - a.Y*b.X }

// InverseBilinear returns the (u, v) at which the bilinear patch
// p0,p1,p2,p3 passes through p, u running p0 to p1 and v p0 to p3.
// ok is false if p is outside the patch.
func InverseBilinear(p, p0, p1, p2, p3 stateful.Vec2) (u, v float64, ok bool) {
	e := p1.Sub(p0)
	f := p3.Sub(p0)
	g := p0.Sub(p1).Add(p2).Sub(p3)
	h := p.Sub(p0)

	k2 := cross(g, f)
	k1 := cross(e, f) + cross(h, g)
	k0 := cross(h, e)

	solveU := func(v float64) float64 {
		dx, dy := e.X+g.X*v, e.Y+g.Y*v
		if math.Abs(dx) > math.Abs(dy) {
			return (h.X - f.X*v) / dx
		}
		return (h.Y - f.Y*v) / dy
	}
	in := func(x float64) bool { return x >= 0 && x <= 1 }

	if math.Abs(k2) < 1e-9 {
		if k1 == 0 {
			return 0, 0, false
		}
		v = -k0 / k1
		u = solveU(v)
		return u, v, in(u) && in(v)
	}

	disc := k1*k1 - 4*k0*k2
	if disc < 0 {
		return 0, 0, false
	}
	disc = math.Sqrt(disc)
	for _, v := range [2]float64{(-k1 - disc) / (2 * k2), (-k1 + disc) / (2 * k2)} {
		if u := solveU(v); in(u) && in(v) {
			return u, v, true
		}
	}
	return 0, 0, false
}

// TexturedQuad rasterizes tex mapped onto the quad p0..p3 into the r
// pixels, sampling the nearest texel at every covered pixel center.
func TexturedQuad(r image.Rectangle, tex *image.NRGBA, p0, p1, p2, p3, uv0, uv1, uv2, uv3 stateful.Vec2, tint stateful.Color) *image.NRGBA {
	tw, th := tex.Rect.Dx(), tex.Rect.Dy()
	out := image.NewNRGBA(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			u, v, ok := InverseBilinear(stateful.V(float64(x)+0.5, float64(y)+0.5), p0, p1, p2, p3)
			if !ok {
				continue
			}
			uv := uv0.Lerp(uv1, u).Lerp(uv3.Lerp(uv2, u), v)
			tx := min(max(int(uv.X*float64(tw)), 0), tw-1)
			ty := min(max(int(uv.Y*float64(th)), 0), th-1)
			c := tex.NRGBAAt(tex.Rect.Min.X+tx, tex.Rect.Min.Y+ty)
			out.SetNRGBA(x, y, stateful.RGBA(c.R, c.G, c.B, c.A).Modulate(tint).NRGBA())
		}
	}
	return out
}
