package stateful

import (
	"image/color"
	"testing"
)

func TestColorLayout(t *testing.T) {
	c := RGBA(0x11, 0x22, 0x33, 0x44)
	if uint32(c) != 0x44332211 {
		t.Errorf("RGBA packed = %#08x, want 0x44332211", uint32(c))
	}
	if c.R() != 0x11 || c.G() != 0x22 || c.B() != 0x33 || c.A() != 0x44 {
		t.Errorf("components = %d %d %d %d", c.R(), c.G(), c.B(), c.A())
	}
	if RGB(1, 2, 3).A() != 0xFF {
		t.Error("RGB should be opaque")
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#fff", White},
		{"000", Black},
		{"#ff000080", RGBA(255, 0, 0, 128)},
		{"00ff00", RGB(0, 255, 0)},
		{"#0f08", RGBA(0, 255, 0, 136)},
		{"nope", Black},
		{"", Black},
		{"#12345", Black},
	}
	for _, tt := range tests {
		if got := Hex(tt.in); got != tt.want {
			t.Errorf("Hex(%q) = %#08x, want %#08x", tt.in, uint32(got), uint32(tt.want))
		}
	}
}

func TestColorImplementsColor(t *testing.T) {
	var c color.Color = RGBA(255, 0, 0, 128)
	got := color.NRGBAModel.Convert(c).(color.NRGBA)
	if got != (color.NRGBA{R: 255, A: 128}) {
		t.Errorf("NRGBA conversion = %v", got)
	}
}

func TestColorLerpModulate(t *testing.T) {
	if got := Black.Lerp(White, 0.5); got != RGBA(128, 128, 128, 255) {
		t.Errorf("Lerp = %#08x", uint32(got))
	}
	if got := White.Modulate(RGBA(255, 0, 0, 255)); got != RGB(255, 0, 0) {
		t.Errorf("Modulate = %#08x", uint32(got))
	}
	if got := White.WithAlpha(0); got != 0x00FFFFFF {
		t.Errorf("WithAlpha = %#08x", uint32(got))
	}
}
