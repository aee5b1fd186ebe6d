package render

import (
	"image/color"
	"math"

	"github.com/iburimskiy/orbitfield/internal/sky"
)

const (
	ringWidth       = 0.5
	ringSegments    = 240 // per full turn
	meteorWidth     = 1.5
	meteorSegments  = 10
	meteorHue       = 210
	labelGap        = 12 // px between node edge and label
	nodeVisibleFrom = 0.05
	starCullMargin  = 4
)

// Renderer paints a Field in a fixed layer order: background, stars, orbit
// rings, meteors, nodes, the anchor silhouette and the panel veil.
type Renderer struct {
	// DrawAnchor paints a mountain silhouette over the anchor box so nodes
	// pass behind it.
	DrawAnchor bool

	meteorInk color.NRGBA
}

// New returns a renderer with the default palette.
func New() *Renderer {
	r, g, b := hsvToRgb(meteorHue, 0.12, 1)
	return &Renderer{
		DrawAnchor: true,
		meteorInk:  color.NRGBA{R: r, G: g, B: b, A: 0xff},
	}
}

// Draw paints one frame of f onto s. A nil or closed field only clears.
func (r *Renderer) Draw(s Surface, f *sky.Field) {
	s.Clear(Background)
	if f == nil || f.Closed() {
		return
	}

	r.drawStars(s, f)
	r.drawRings(s, f)
	r.drawMeteors(s, f)
	r.drawNodes(s, f)
	if r.DrawAnchor {
		r.drawAnchor(s, f)
	}
	r.drawOverlay(s, f)
}

func (r *Renderer) drawStars(s Surface, f *sky.Field) {
	w, h := s.Size()
	center := f.Anchor().Center
	for _, p := range f.Particles {
		pos := p.Position(center)
		if pos.X < -starCullMargin || pos.Y < -starCullMargin ||
			pos.X > w+starCullMargin || pos.Y > h+starCullMargin {
			continue
		}
		if p.Glows() {
			s.FillCircle(pos.X, pos.Y, p.Size*2, withAlpha(Ink, p.Brightness*0.25))
		}
		s.FillCircle(pos.X, pos.Y, p.Size, withAlpha(Ink, p.Brightness))
	}
}

func (r *Renderer) drawRings(s Surface, f *sky.Field) {
	sw := f.Sweep()
	progress := sw.Progress()
	if progress <= 0 {
		return
	}
	c := withAlpha(Ink, progress)
	center := f.Anchor().Center
	sweep := sw.SweepAngle()

	n := int(math.Ceil(ringSegments * progress))
	for _, radius := range f.RingRadii() {
		if radius <= 0 {
			continue
		}
		prev := sky.Orbit(center, radius, sky.RingStartAngle)
		for i := 1; i <= n; i++ {
			a := sky.RingStartAngle + sweep*float64(i)/float64(n)
			next := sky.Orbit(center, radius, a)
			s.StrokeLine(prev.X, prev.Y, next.X, next.Y, ringWidth, c)
			prev = next
		}
	}
}

func (r *Renderer) drawMeteors(s Surface, f *sky.Field) {
	for _, m := range f.Meteors {
		if !m.Active() || m.Opacity <= 0 {
			continue
		}
		tail := m.Tail()
		// brightest at the head, fading to nothing at the tail
		for i := 0; i < meteorSegments; i++ {
			t0 := float64(i) / meteorSegments
			t1 := float64(i+1) / meteorSegments
			x0 := tail.X + (m.X-tail.X)*t0
			y0 := tail.Y + (m.Y-tail.Y)*t0
			x1 := tail.X + (m.X-tail.X)*t1
			y1 := tail.Y + (m.Y-tail.Y)*t1
			s.StrokeLine(x0, y0, x1, y1, meteorWidth, withAlpha(r.meteorInk, m.Opacity*t1))
		}
		s.FillCircle(m.X, m.Y, meteorWidth, withAlpha(Ink, m.Opacity))
	}
}

func (r *Renderer) drawNodes(s Surface, f *sky.Field) {
	for i, n := range f.Nodes {
		a := f.NodeOpacity(i)
		if a <= nodeVisibleFrom {
			continue
		}
		pos := f.NodePosition(i)
		rad := n.CurrentRadius

		// soft halo standing in for a blur
		s.FillCircle(pos.X, pos.Y, rad+4, withAlpha(Ink, a*0.15))
		s.FillCircle(pos.X, pos.Y, rad+2, withAlpha(Ink, a*0.3))
		s.FillCircle(pos.X, pos.Y, rad, withAlpha(Ink, a))

		if n.Hovered {
			x := pos.X + rad + labelGap
			s.Text(n.Spec.Label, x+1, pos.Y+1, withAlpha(Ink, a*0.35))
			s.Text(n.Spec.Label, x, pos.Y, withAlpha(Ink, a))
		}
	}
}

// mountainProfile is the silhouette outline in unit box coordinates.
var mountainProfile = []sky.Point{
	{X: 0, Y: 1},
	{X: 0.12, Y: 0.62},
	{X: 0.24, Y: 0.4},
	{X: 0.36, Y: 0.52},
	{X: 0.5, Y: 0},
	{X: 0.64, Y: 0.38},
	{X: 0.76, Y: 0.28},
	{X: 0.9, Y: 0.6},
	{X: 1, Y: 1},
}

func (r *Renderer) drawAnchor(s Surface, f *sky.Field) {
	box, ok := f.AnchorRect()
	if !ok {
		return
	}
	pts := make([]sky.Point, len(mountainProfile))
	for i, p := range mountainProfile {
		pts[i] = sky.Point{X: box.X + p.X*box.W, Y: box.Y + p.Y*box.H}
	}
	s.FillPolygon(pts, Mountain)
}

func (r *Renderer) drawOverlay(s Surface, f *sky.Field) {
	o := f.Overlay()
	if !o.Active() || o.Opacity() <= 0 {
		return
	}
	w, h := s.Size()
	s.FillPolygon([]sky.Point{{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: h}, {X: 0, Y: h}}, withAlpha(Veil, o.Opacity()))
	s.Text(string(o.Topic()), 24, 32, withAlpha(ButtonInk, o.Opacity()))
}

// DrawButton paints a text button; hovered and pressed states brighten the
// label and underline it.
func (r *Renderer) DrawButton(s Surface, b Button) {
	ink := withAlpha(ButtonInk, 0.75)
	if b.Hovered {
		ink = ButtonInk
	}
	if b.Pressed {
		ink = Ink
	}
	midY := b.Rect.Y + b.Rect.H/2
	s.Text(b.Label, b.Rect.X, midY, ink)
	if b.Hovered || b.Pressed {
		y := b.Rect.Y + b.Rect.H - 2
		s.StrokeLine(b.Rect.X, y, b.Rect.X+b.Rect.W, y, 1, ink)
	}
}
