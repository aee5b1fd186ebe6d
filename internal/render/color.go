package render

import (
	"image/color"
	"math"

	"github.com/iburimskiy/orbitfield/internal/sky"
)

// Palette
var (
	Background = color.NRGBA{R: 0x0a, G: 0x0a, B: 0x0f, A: 0xff}
	Ink        = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Mountain   = color.NRGBA{R: 0x11, G: 0x11, B: 0x19, A: 0xff}
	Veil       = color.NRGBA{R: 0x05, G: 0x05, B: 0x0a, A: 0xff}
	ButtonInk  = color.NRGBA{R: 0xcb, G: 0xd1, B: 0xdc, A: 0xff}
)

// withAlpha returns c with its alpha scaled by a in [0, 1].
func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(math.Round(float64(c.A) * sky.Clamp01(a)))
	return c
}

// hsvToRgb converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1)
func hsvToRgb(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return uint8(math.Round((r + m) * 255)), uint8(math.Round((g + m) * 255)), uint8(math.Round((b + m) * 255))
}

