// Package render composites a sky.Field onto an immediate-mode 2D surface.
package render

import (
	"image/color"

	"github.com/iburimskiy/orbitfield/internal/sky"
)

// Surface is the drawing context a frame is painted on. Colors carry
// straight (non-premultiplied) alpha.
type Surface interface {
	Size() (w, h float64)
	Clear(c color.NRGBA)
	FillCircle(x, y, r float64, c color.NRGBA)
	StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA)
	FillPolygon(pts []sky.Point, c color.NRGBA)
	// Text draws s left-aligned, vertically centered on y.
	Text(s string, x, y float64, c color.NRGBA)
}

// Button is a clickable text control drawn over the field, e.g. the
// explore/back toggle.
type Button struct {
	Rect    sky.Rect
	Label   string
	Hovered bool
	Pressed bool
}

// Contains reports whether (x, y) lies inside the button.
func (b Button) Contains(x, y float64) bool {
	return x >= b.Rect.X && x <= b.Rect.X+b.Rect.W &&
		y >= b.Rect.Y && y <= b.Rect.Y+b.Rect.H
}
