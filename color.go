package stateful

import "image/color"

// Color is a packed non-premultiplied 8-bit RGBA color laid out as
// 0xAABBGGRR, the layout used by immediate-mode draw lists.
//
// Color implements color.Color, so it can be handed to any image or
// rasterizer API directly.
type Color uint32

// Common colors.
const (
	Transparent Color = 0
	Black       Color = 0xFF000000
	White       Color = 0xFFFFFFFF
)

// RGBA creates a color from 8-bit components.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(r) | uint32(g)<<8 | uint32(b)<<16 | uint32(a)<<24)
}

// RGB creates an opaque color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 0xFF)
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without a
// leading '#'. Malformed input yields opaque black.
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	for i := 0; i < len(hex); i++ {
		if !isHexDigit(hex[i]) {
			return Black
		}
	}

	var r, g, b uint32
	a := uint32(255)

	switch len(hex) {
	case 3:
		r, g, b = parseHex(hex[0:1])*17, parseHex(hex[1:2])*17, parseHex(hex[2:3])*17
	case 4:
		r, g, b = parseHex(hex[0:1])*17, parseHex(hex[1:2])*17, parseHex(hex[2:3])*17
		a = parseHex(hex[3:4]) * 17
	case 6:
		r, g, b = parseHex(hex[0:2]), parseHex(hex[2:4]), parseHex(hex[4:6])
	case 8:
		r, g, b = parseHex(hex[0:2]), parseHex(hex[2:4]), parseHex(hex[4:6])
		a = parseHex(hex[6:8])
	default:
		return Black
	}
	return RGBA(uint8(r), uint8(g), uint8(b), uint8(a))
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func parseHex(s string) uint32 {
	var v uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		v *= 16
		switch {
		case '0' <= c && c <= '9':
			v += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			v += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			v += uint32(c - 'A' + 10)
		default:
			return 0
		}
	}
	return v
}

// R returns the red component.
func (c Color) R() uint8 { return uint8(c) }

// G returns the green component.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue component.
func (c Color) B() uint8 { return uint8(c >> 16) }

// A returns the alpha component.
func (c Color) A() uint8 { return uint8(c >> 24) }

// NRGBA converts c to the standard non-premultiplied color type.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// WithAlpha returns c with its alpha component replaced.
func (c Color) WithAlpha(a uint8) Color {
	return c&0x00FFFFFF | Color(a)<<24
}

// Lerp interpolates between c and other component-wise.
func (c Color) Lerp(other Color, t float64) Color {
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
	}
	return RGBA(mix(c.R(), other.R()), mix(c.G(), other.G()), mix(c.B(), other.B()), mix(c.A(), other.A()))
}

// Modulate multiplies c by tint component-wise, as when tinting a texture.
func (c Color) Modulate(tint Color) Color {
	mul := func(a, b uint8) uint8 { return uint8((uint32(a)*uint32(b) + 127) / 255) }
	return RGBA(mul(c.R(), tint.R()), mul(c.G(), tint.G()), mul(c.B(), tint.B()), mul(c.A(), tint.A()))
}
