package sky

import "math"

// SweepState is the phase of the ring-sweep animation.
type SweepState int

const (
	SweepIdle SweepState = iota
	SweepRunning
	SweepDone
)

func (s SweepState) String() string {
	switch s {
	case SweepIdle:
		return "idle"
	case SweepRunning:
		return "running"
	case SweepDone:
		return "done"
	}
	return "unknown"
}

// Sweep drives the ring "path progress" in [0, 1]. Every request goes
// through the same machine: a toggle while running re-targets the current
// run from wherever progress is.
type Sweep struct {
	duration float64

	state    SweepState
	open     bool // direction of the latest request
	from     float64
	elapsed  float64
	progress float64
	runs     int // incremented per request, lets callers spot stale views
}

// NewSweep returns an idle, closed sweep.
func NewSweep(durationMillis float64) *Sweep {
	return &Sweep{duration: math.Max(durationMillis, 1)}
}

// Toggle flips the requested direction and restarts the eased run from the
// current progress.
func (s *Sweep) Toggle() {
	s.Set(!s.open)
}

// Set requests the open (true) or closed state.
func (s *Sweep) Set(open bool) {
	s.open = open
	s.from = s.progress
	s.elapsed = 0
	s.state = SweepRunning
	s.runs++
}

// Advance steps the running animation by dt milliseconds.
func (s *Sweep) Advance(dt float64) {
	if s.state != SweepRunning {
		return
	}
	s.elapsed += dt
	t := math.Min(s.elapsed/s.duration, 1)
	eased := 1 - math.Pow(1-t, 3)

	to := 0.0
	if s.open {
		to = 1
	}
	s.progress = s.from + (to-s.from)*eased
	if t >= 1 {
		s.progress = to
		s.state = SweepDone
	}
}

// Progress is the current path progress.
func (s *Sweep) Progress() float64 { return s.progress }

// State reports the animation phase.
func (s *Sweep) State() SweepState { return s.state }

// Open reports the direction of the latest request.
func (s *Sweep) Open() bool { return s.open }

// Runs counts requests made so far.
func (s *Sweep) Runs() int { return s.runs }

// Complete reports a fully open, settled sweep.
func (s *Sweep) Complete() bool {
	return s.state == SweepDone && s.open && s.progress >= 1
}

// SweepAngle is the angle covered by the ring arcs.
func (s *Sweep) SweepAngle() float64 {
	return s.progress * 2 * math.Pi
}

// Reveal returns the opacity of something sitting at angle on the rings:
// zero ahead of the sweep front, a linear ramp over RevealWindow behind it.
func (s *Sweep) Reveal(angle float64) float64 {
	if s.progress >= 1 {
		return 1
	}
	if s.progress <= 0 {
		return 0
	}
	d := normalizeAngle(angle - RingStartAngle)
	return Clamp01((s.SweepAngle() - d) / RevealWindow)
}
