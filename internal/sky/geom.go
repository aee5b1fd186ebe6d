package sky

import "math"

// Point is a position on the render surface in pixels.
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Rect is an axis-aligned box, origin top-left.
type Rect struct {
	X, Y, W, H float64
}

// Anchor is the resolved reference frame for one tick.
type Anchor struct {
	Center Point
	Top    float64
	Found  bool // false when the fallback point is in use
}

// AnchorSource reports the bounding box of the anchor element for the
// current viewport. ok=false selects the fallback anchor.
type AnchorSource func(w, h float64) (r Rect, ok bool)

func resolveAnchor(src AnchorSource, w, h float64) Anchor {
	if src != nil {
		if r, ok := src(w, h); ok {
			return Anchor{
				Center: Point{X: r.X + r.W/2, Y: r.Y + r.H/2},
				Top:    r.Y,
				Found:  true,
			}
		}
	}
	c := Point{X: w * FallbackAnchorX, Y: h * FallbackAnchorY}
	// No obstacle without an anchor element; put the boundary out of reach.
	return Anchor{Center: c, Top: math.Inf(1)}
}

// Orbit returns the point at radius r and angle a around center.
func Orbit(center Point, r, a float64) Point {
	return Point{
		X: center.X + math.Cos(a)*r,
		Y: center.Y + math.Sin(a)*r,
	}
}

// clampUnit keeps an asin argument inside [-1, 1].
func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

// Clamp01 bounds v to [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// normalizeAngle maps a into [0, 2π).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// frameFactor converts a per-reference-frame easing fraction into the
// fraction for a tick of dt milliseconds.
func frameFactor(perFrame, dt float64) float64 {
	if dt <= 0 {
		return 0
	}
	return 1 - math.Pow(1-perFrame, dt/FrameMillis)
}
