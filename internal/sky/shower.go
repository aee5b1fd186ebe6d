package sky

import "math/rand/v2"

const minIntervalMillis = 1.0

// ShowerParams describes the burst cycle of the meteor scheduler.
type ShowerParams struct {
	Enabled       bool
	ActiveMillis  float64
	QuietMillis   float64
	IntervalMin   float64
	IntervalMax   float64
	MaxConcurrent int
}

// DefaultShower is the cycle used when no configuration overrides it.
func DefaultShower() ShowerParams {
	return ShowerParams{
		Enabled:       true,
		ActiveMillis:  4000,
		QuietMillis:   14000,
		IntervalMin:   250,
		IntervalMax:   900,
		MaxConcurrent: 12,
	}
}

// shower alternates an active and a quiet window and decides when a new
// meteor is due.
type shower struct {
	params ShowerParams
	rng    *rand.Rand

	active   bool
	window   float64 // time left in the current window
	nextDrop float64 // time until the next spawn while active
}

func newShower(p ShowerParams, rng *rand.Rand) *shower {
	s := &shower{params: p, rng: rng}
	// Start quiet so the first burst doesn't land on the first frame.
	s.window = p.QuietMillis
	return s
}

// advance returns how many meteors should be spawned during this tick.
func (s *shower) advance(dt float64) int {
	if !s.params.Enabled {
		return 0
	}

	s.window -= dt
	if s.window <= 0 {
		s.active = !s.active
		if s.active {
			s.window = s.params.ActiveMillis
			s.nextDrop = 0
		} else {
			s.window = s.params.QuietMillis
		}
	}
	if !s.active {
		return 0
	}

	n := 0
	s.nextDrop -= dt
	for s.nextDrop <= 0 {
		n++
		s.nextDrop += s.interval()
	}
	return n
}

// interval draws the gap to the next meteor, never shorter than
// minIntervalMillis so a bad range cannot stall the tick.
func (s *shower) interval() float64 {
	lo, hi := s.params.IntervalMin, s.params.IntervalMax
	if hi <= lo {
		return max(lo, minIntervalMillis)
	}
	return max(lo+s.rng.Float64()*(hi-lo), minIntervalMillis)
}

func (s *shower) spawn(w, h float64) *Meteor {
	y := s.rng.Float64() * h * MeteorSpawnBand
	speed := s.rng.Float64()*MeteorSpeedSpread + MeteorSpeedMin
	trail := s.rng.Float64()*MeteorTrailSpread + MeteorTrailMin
	return NewMeteor(MeteorSpawnX, y, MeteorAngle, speed, trail)
}
