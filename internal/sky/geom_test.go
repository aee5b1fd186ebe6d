package sky

import (
	"math"
	"testing"
)

func TestClamp01(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{-0.5, 0},
		{0, 0},
		{0.25, 0.25},
		{1, 1},
		{3, 1},
	}
	for _, c := range cases {
		if got := Clamp01(c.in); got != c.want {
			t.Errorf("Clamp01(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestFrameFactor(t *testing.T) {
	if got := frameFactor(0.1, FrameMillis); math.Abs(got-0.1) > 1e-12 {
		t.Fatalf("one reference frame = %f, want 0.1", got)
	}
	if got := frameFactor(0.1, 0); got != 0 {
		t.Fatalf("zero delta = %f", got)
	}
	two := frameFactor(0.1, 2*FrameMillis)
	if math.Abs(two-0.19) > 1e-12 {
		t.Fatalf("two frames = %f, want 0.19", two)
	}
}
