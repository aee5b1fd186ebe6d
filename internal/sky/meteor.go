package sky

import "math"

// Meteor is a single streak crossing the viewport from the left edge.
type Meteor struct {
	X, Y    float64
	Angle   float64 // radians below horizontal, fixed per instance
	Speed   float64 // px per reference frame
	Trail   float64 // px
	Opacity float64

	fading bool
	active bool
}

// NewMeteor returns an active meteor starting its fade-in at (x, y).
func NewMeteor(x, y, angle, speed, trail float64) *Meteor {
	return &Meteor{
		X:      x,
		Y:      y,
		Angle:  angle,
		Speed:  speed,
		Trail:  trail,
		fading: true,
		active: true,
	}
}

// Active reports whether the meteor is still on its way across the
// viewport.
func (m *Meteor) Active() bool { return m.active }

// Reset re-arms an exhausted meteor at a new start point.
func (m *Meteor) Reset(x, y float64) {
	m.X, m.Y = x, y
	m.Opacity = 0
	m.fading = true
	m.active = true
}

// Advance moves the meteor for dt milliseconds within a viewport of w×h.
func (m *Meteor) Advance(dt, w, h float64) {
	if !m.active {
		return
	}

	step := m.Speed * dt / FrameMillis
	m.X += math.Cos(m.Angle) * step
	m.Y += math.Sin(m.Angle) * step

	if m.fading {
		m.Opacity += MeteorFadeStep
		if m.Opacity >= 1 {
			m.Opacity = 1
			m.fading = false
		}
	}

	// Leave room for the trail to clear the edge before retiring.
	if m.X > w+MeteorExitMargin || m.Y > h+MeteorExitMargin {
		m.active = false
	}
}

// Tail returns the end point of the trail behind the head.
func (m *Meteor) Tail() Point {
	return Point{
		X: m.X - math.Cos(m.Angle)*m.Trail,
		Y: m.Y - math.Sin(m.Angle)*m.Trail,
	}
}
