// Package tty renders the star field into a terminal with tcell.
package tty

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/orbitfield/internal/sky"
)

// One terminal cell stands for a CellW×CellH block of simulation pixels.
const (
	CellW = 8
	CellH = 16
)

type cell struct {
	ch     rune
	fg, bg color.NRGBA
}

// Canvas is a render.Surface backed by a grid of terminal cells.
type Canvas struct {
	cols, rows int
	cells      []cell
}

// NewCanvas returns a canvas of cols×rows cells.
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{}
	c.Resize(cols, rows)
	return c
}

// Resize reallocates the grid when the terminal size changes.
func (c *Canvas) Resize(cols, rows int) {
	cols, rows = max(cols, 0), max(rows, 0)
	if cols == c.cols && rows == c.rows {
		return
	}
	c.cols, c.rows = cols, rows
	c.cells = make([]cell, cols*rows)
}

// Cells returns the grid size.
func (c *Canvas) Cells() (cols, rows int) { return c.cols, c.rows }

func (c *Canvas) Size() (float64, float64) {
	return float64(c.cols * CellW), float64(c.rows * CellH)
}

func (c *Canvas) at(col, row int) *cell {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return nil
	}
	return &c.cells[row*c.cols+col]
}

func cellOf(x, y float64) (int, int) {
	return int(math.Floor(x / CellW)), int(math.Floor(y / CellH))
}

func (c *Canvas) Clear(bg color.NRGBA) {
	for i := range c.cells {
		c.cells[i] = cell{ch: ' ', fg: bg, bg: bg}
	}
}

// plot blends col into one cell and sets its glyph.
func (c *Canvas) plot(col, row int, ch rune, ink color.NRGBA) {
	p := c.at(col, row)
	if p == nil {
		return
	}
	p.ch = ch
	p.fg = blend(p.bg, ink)
}

func (c *Canvas) FillCircle(x, y, r float64, ink color.NRGBA) {
	if ink.A == 0 || r <= 0 {
		return
	}
	if r*2 < CellW {
		col, row := cellOf(x, y)
		c.plot(col, row, dotGlyph(ink.A), ink)
		return
	}

	glyph := '█'
	if ink.A < 0x80 {
		glyph = '░'
	}
	c0, r0 := cellOf(x-r, y-r)
	c1, r1 := cellOf(x+r, y+r)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			cx := (float64(col) + 0.5) * CellW
			cy := (float64(row) + 0.5) * CellH
			if math.Hypot(cx-x, cy-y) <= r {
				c.plot(col, row, glyph, ink)
			}
		}
	}
}

func dotGlyph(a uint8) rune {
	switch {
	case a < 0x60:
		return '.'
	case a < 0xb0:
		return '+'
	default:
		return '*'
	}
}

func lineGlyph(dx, dy float64) rune {
	// cells are twice as tall as wide
	a := math.Atan2(dy*2, dx)
	a = math.Mod(a+math.Pi, math.Pi)
	switch {
	case a < math.Pi/8 || a >= 7*math.Pi/8:
		return '-'
	case a < 3*math.Pi/8:
		return '\\'
	case a < 5*math.Pi/8:
		return '|'
	default:
		return '/'
	}
}

func (c *Canvas) StrokeLine(x0, y0, x1, y1, _ float64, ink color.NRGBA) {
	if ink.A == 0 {
		return
	}
	dx, dy := x1-x0, y1-y0
	glyph := lineGlyph(dx, dy)
	steps := int(math.Ceil(math.Max(math.Abs(dx)/CellW, math.Abs(dy)/CellH))) + 1
	for i := 0; i < steps; i++ {
		t := 0.0
		if steps > 1 {
			t = float64(i) / float64(steps-1)
		}
		col, row := cellOf(x0+dx*t, y0+dy*t)
		c.plot(col, row, glyph, ink)
	}
}

// FillPolygon tints every cell whose center is inside pts. An opaque fill
// blanks the cell.
func (c *Canvas) FillPolygon(pts []sky.Point, ink color.NRGBA) {
	if len(pts) < 3 || ink.A == 0 {
		return
	}
	minX, minY, maxX, maxY := bounds(pts)
	c0, r0 := cellOf(minX, minY)
	c1, r1 := cellOf(maxX, maxY)
	for row := max(r0, 0); row <= min(r1, c.rows-1); row++ {
		for col := max(c0, 0); col <= min(c1, c.cols-1); col++ {
			center := sky.Point{X: (float64(col) + 0.5) * CellW, Y: (float64(row) + 0.5) * CellH}
			if !inside(pts, center) {
				continue
			}
			p := c.at(col, row)
			p.bg = blend(p.bg, ink)
			p.fg = blend(p.fg, ink)
			if ink.A == 0xff {
				p.ch = ' '
			}
		}
	}
}

func bounds(pts []sky.Point) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	return
}

// inside is the even-odd crossing test.
func inside(pts []sky.Point, p sky.Point) bool {
	in := false
	j := len(pts) - 1
	for i := range pts {
		a, b := pts[i], pts[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
		j = i
	}
	return in
}

func (c *Canvas) Text(s string, x, y float64, ink color.NRGBA) {
	col, row := cellOf(x, y)
	for _, r := range s {
		c.plot(col, row, r, ink)
		col++
	}
}

// Flush copies the grid to the screen and shows it.
func (c *Canvas) Flush(screen tcell.Screen) {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			p := c.cells[row*c.cols+col]
			style := tcell.StyleDefault.Foreground(rgb(p.fg)).Background(rgb(p.bg))
			screen.SetContent(col, row, p.ch, nil, style)
		}
	}
	screen.Show()
}

func rgb(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// blend paints src with straight alpha over an opaque dst.
func blend(dst, src color.NRGBA) color.NRGBA {
	a := float64(src.A) / 0xff
	mix := func(d, s uint8) uint8 {
		return uint8(math.Round(float64(d)*(1-a) + float64(s)*a))
	}
	return color.NRGBA{R: mix(dst.R, src.R), G: mix(dst.G, src.G), B: mix(dst.B, src.B), A: 0xff}
}
