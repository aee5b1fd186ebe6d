package game

import (
	"bytes"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/orbitfield/internal/sky"
)

const labelSize = 14

// screenSurface adapts an ebiten image to render.Surface. dst is swapped in
// at the start of every Draw.
type screenSurface struct {
	dst   *ebiten.Image
	face  *text.GoTextFace
	white *ebiten.Image
}

func newScreenSurface() (*screenSurface, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &screenSurface{
		face:  &text.GoTextFace{Source: src, Size: labelSize},
		white: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}, nil
}

func (s *screenSurface) Size() (float64, float64) {
	b := s.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *screenSurface) Clear(c color.NRGBA) {
	s.dst.Fill(c)
}

func (s *screenSurface) FillCircle(x, y, r float64, c color.NRGBA) {
	if c.A == 0 || r <= 0 {
		return
	}
	vector.DrawFilledCircle(s.dst, float32(x), float32(y), float32(r), c, true)
}

func (s *screenSurface) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	if c.A == 0 {
		return
	}
	vector.StrokeLine(s.dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c, true)
}

func (s *screenSurface) FillPolygon(pts []sky.Point, c color.NRGBA) {
	if len(pts) < 3 || c.A == 0 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := float32(c.R)/0xff, float32(c.G)/0xff, float32(c.B)/0xff, float32(c.A)/0xff
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = r, g, b, a
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true, FillRule: ebiten.FillRuleNonZero}
	s.dst.DrawTriangles(vs, is, s.white, op)
}

func (s *screenSurface) Text(str string, x, y float64, c color.NRGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.LayoutOptions.PrimaryAlign = text.AlignStart
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	text.Draw(s.dst, str, s.face, op)
}

// textWidth measures a label in pixels for button layout.
func (s *screenSurface) textWidth(str string) float64 {
	w, _ := text.Measure(str, s.face, 0)
	return w
}
