package stateful

// Image draws the UVMin..UVMax region of a texture into Min..Max,
// multiplied by Tint.
type Image struct {
	Attrs
	Texture      TextureID
	Min, Max     Vec2
	UVMin, UVMax Vec2
	Tint         Color
}

func (im *Image) Draw(s Surface, o Vec2) {
	s.AddImage(im.Texture, im.Min.Add(o), im.Max.Add(o), im.UVMin, im.UVMax, im.Tint)
}

func (im *Image) Translate(dx, dy float64) {
	d := Vec2{dx, dy}
	im.Min, im.Max = im.Min.Add(d), im.Max.Add(d)
}

// ImageQuad maps a texture onto an arbitrary quadrilateral; UVi is the
// texture coordinate at Pi.
type ImageQuad struct {
	Attrs
	Texture            TextureID
	P0, P1, P2, P3     Vec2
	UV0, UV1, UV2, UV3 Vec2
	Tint               Color
}

func (im *ImageQuad) Draw(s Surface, o Vec2) {
	s.AddImageQuad(im.Texture, im.P0.Add(o), im.P1.Add(o), im.P2.Add(o), im.P3.Add(o),
		im.UV0, im.UV1, im.UV2, im.UV3, im.Tint)
}

func (im *ImageQuad) Translate(dx, dy float64) {
	d := Vec2{dx, dy}
	im.P0, im.P1, im.P2, im.P3 = im.P0.Add(d), im.P1.Add(d), im.P2.Add(d), im.P3.Add(d)
}

// ImageRounded is an Image with rounded corners.
type ImageRounded struct {
	Attrs
	Texture      TextureID
	Min, Max     Vec2
	UVMin, UVMax Vec2
	Tint         Color
	Rounding     float64
	Corners      Corners
}

func (im *ImageRounded) Draw(s Surface, o Vec2) {
	s.AddImageRounded(im.Texture, im.Min.Add(o), im.Max.Add(o), im.UVMin, im.UVMax, im.Tint, im.Rounding, im.Corners)
}

func (im *ImageRounded) Translate(dx, dy float64) {
	d := Vec2{dx, dy}
	im.Min, im.Max = im.Min.Add(d), im.Max.Add(d)
}
