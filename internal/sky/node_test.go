package sky

import (
	"math"
	"testing"
)

func restingNode(current float64) *OrbitalNode {
	n := NewOrbitalNode(NodeSpec{
		Topic:       TopicAbout,
		Label:       "about me",
		Radius:      current,
		HoverRadius: current + 5,
	})
	n.CurrentRadius = current
	return n
}

func TestNodeHoverDeterminism(t *testing.T) {
	n := restingNode(20)
	pos := Point{X: 100, Y: 100}

	if !n.IsHovered(pos, Point{X: 115, Y: 100}) {
		t.Fatalf("pointer 15px away should hover")
	}
	if n.IsHovered(pos, Point{X: 140, Y: 100}) {
		t.Fatalf("pointer 40px away should not hover")
	}
}

func TestNodeHitRadiusUsesLargerOfMinimumAndSize(t *testing.T) {
	if got := restingNode(10).HitRadius(); got != MinHitRadius {
		t.Fatalf("small node hit radius = %f, want %f", got, MinHitRadius)
	}
	if got := restingNode(32).HitRadius(); got != 32 {
		t.Fatalf("large node hit radius = %f, want 32", got)
	}
}

func TestNodeAdvanceResolvesHover(t *testing.T) {
	n := restingNode(20)
	a := Anchor{Center: Point{X: 0, Y: 100}, Top: 1000, Found: true}

	// ring radius 100 at angle 0 puts the node at (100, 100)
	n.Advance(16, a, 100, Point{X: 115, Y: 100}, true, false)
	if !n.Hovered {
		t.Fatalf("expected hover at distance 15")
	}
	n.Advance(16, a, 100, Point{X: 140, Y: 100}, true, false)
	if n.Hovered {
		t.Fatalf("expected no hover at distance 40")
	}
}

func TestNodeHoverSuppressed(t *testing.T) {
	n := restingNode(20)
	a := Anchor{Center: Point{X: 0, Y: 100}, Top: 1000, Found: true}

	n.Advance(16, a, 100, Point{X: 100, Y: 100}, true, true)
	if n.Hovered {
		t.Fatalf("hover must be suppressed during a panel transition")
	}
	n.Advance(16, a, 100, Point{X: 100, Y: 100}, false, false)
	if n.Hovered {
		t.Fatalf("no pointer seen, no hover")
	}
}

func TestNodeRadiusEasesTowardTarget(t *testing.T) {
	n := restingNode(12.5)
	n.Spec.HoverRadius = 15
	a := Anchor{Center: Point{X: 0, Y: 100}, Top: 1000, Found: true}
	on := Point{X: 100, Y: 100}

	n.Advance(FrameMillis, a, 100, on, true, false)
	if n.CurrentRadius <= 12.5 || n.CurrentRadius >= 15 {
		t.Fatalf("radius should move part way, got %f", n.CurrentRadius)
	}
	for i := 0; i < 200; i++ {
		n.Advance(FrameMillis, a, 100, on, true, false)
	}
	if math.Abs(n.CurrentRadius-15) > 0.01 {
		t.Fatalf("radius should settle at hover size, got %f", n.CurrentRadius)
	}

	off := Point{X: 500, Y: 500}
	for i := 0; i < 200; i++ {
		n.Advance(FrameMillis, a, 100, off, true, false)
	}
	if math.Abs(n.CurrentRadius-12.5) > 0.01 {
		t.Fatalf("radius should settle back at base size, got %f", n.CurrentRadius)
	}
}

func TestNodeSlingshotBelowObstacle(t *testing.T) {
	base := 0.00001
	n := NewOrbitalNode(NodeSpec{Topic: TopicCases, Radius: 10, HoverRadius: 12, Speed: base})
	// angle π/2 is straight below the center
	n.Angle = math.Pi / 2
	a := Anchor{Center: Point{X: 400, Y: 300}, Top: 200, Found: true}

	n.Advance(FrameMillis, a, 200, Point{}, false, false)
	if n.Speed() <= base {
		t.Fatalf("speed should ramp up below the obstacle, got %g", n.Speed())
	}

	for elapsed := 0.0; elapsed < 5000; elapsed += FrameMillis {
		n.Angle = math.Pi / 2 // hold below the boundary
		n.Advance(FrameMillis, a, 200, Point{}, false, false)
	}
	want := base * SlingshotSustainFactor
	if math.Abs(n.Speed()-want) > want*0.01 {
		t.Fatalf("sustained speed = %g, want ≈%g", n.Speed(), want)
	}

	// back above the boundary the speed eases to base, never snapping
	n.Angle = 3 * math.Pi / 2
	n.Advance(FrameMillis, a, 200, Point{}, false, false)
	if n.Speed() <= base || n.Speed() >= want {
		t.Fatalf("speed should ease between sustained and base, got %g", n.Speed())
	}
	for elapsed := 0.0; elapsed < 5000; elapsed += FrameMillis {
		n.Angle = 3 * math.Pi / 2
		n.Advance(FrameMillis, a, 200, Point{}, false, false)
	}
	if math.Abs(n.Speed()-base) > base*0.01 {
		t.Fatalf("speed should settle at base, got %g", n.Speed())
	}
}

func TestNodeStartAngleClampsAsin(t *testing.T) {
	n := NewOrbitalNode(NodeSpec{
		Topic: TopicAbout,
		Start: StartSpec{FromAnchorEdge: true, Nudge: 0.2, ArcShift: 180},
	})
	// top edge far above the ring: dy/r < -1
	a := Anchor{Center: Point{X: 500, Y: 500}, Top: -5000, Found: true}
	n.Reset(a, 100)
	if math.IsNaN(n.Angle) || math.IsInf(n.Angle, 0) {
		t.Fatalf("start angle not finite: %f", n.Angle)
	}
	want := math.Pi - math.Asin(-1) + 0.2 - 180.0/100
	if math.Abs(n.Angle-want) > 1e-9 {
		t.Fatalf("start angle = %f, want %f", n.Angle, want)
	}
}

func TestNodeStartAngleFixedWithoutAnchor(t *testing.T) {
	n := NewOrbitalNode(NodeSpec{
		Topic: TopicProjects,
		Start: StartSpec{Angle: 1.5 * math.Pi, FromAnchorEdge: true},
	})
	n.Reset(Anchor{Center: Point{X: 1, Y: 1}, Top: math.Inf(1)}, 100)
	if n.Angle != 1.5*math.Pi {
		t.Fatalf("fallback start angle = %f", n.Angle)
	}
}

func TestTopicValid(t *testing.T) {
	for _, tp := range Topics {
		if !tp.Valid() {
			t.Errorf("%q should be valid", tp)
		}
	}
	if Topic("blog").Valid() {
		t.Errorf("unknown topic accepted")
	}
}
