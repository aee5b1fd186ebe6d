package sky

import (
	"math"
	"math/rand/v2"
)

// SizeClass is the tri-modal size bucket of a star.
type SizeClass int

const (
	SizeSmall SizeClass = iota
	SizeMedium
	SizeLarge
)

// Particle is one twinkling star on a circular orbit around the anchor.
type Particle struct {
	Size  float64
	Class SizeClass

	Brightness    float64
	MinBrightness float64
	MaxBrightness float64
	blinkDir      float64
	blinkSpeed    float64

	blinkDelay    float64 // elapsed time at which blinking may resume
	elapsed       float64
	pause         float64 // remaining pause, ms
	pauseDuration float64

	Angle        float64
	Radius       float64
	AngularSpeed float64

	rng *rand.Rand
}

// NewParticle draws a star from the fixed distributions. maxRadius is the
// outer orbit bound before the minimum floor is added.
func NewParticle(rng *rand.Rand, maxRadius float64) *Particle {
	p := &Particle{rng: rng}
	p.Class, p.Size = drawSize(rng)

	p.Brightness = rng.Float64()*StartBrightnessSpread + StartBrightnessMin
	p.MinBrightness = rng.Float64()*MinBrightnessSpread + MinBrightnessLow
	p.MaxBrightness = rng.Float64()*MaxBrightnessSpread + MaxBrightnessLow
	p.Brightness = math.Max(p.MinBrightness, math.Min(p.MaxBrightness, p.Brightness))

	p.blinkSpeed = drawBlinkSpeed(rng)
	p.blinkDir = 1
	if rng.Float64() > 0.5 {
		p.blinkDir = -1
	}
	p.blinkDelay = rng.Float64()*BlinkDelaySpread + BlinkDelayMin
	p.pauseDuration = rng.Float64()*PauseSpread + PauseMin

	// sqrt spreads stars evenly over the disc area
	p.Angle = rng.Float64() * 2 * math.Pi
	p.Radius = math.Sqrt(rng.Float64())*maxRadius + StarMinOrbitRadius
	p.AngularSpeed = rng.Float64()*StarSpeedSpread + StarSpeedMin
	return p
}

// ForceSmall redraws the size from the small bucket only.
func (p *Particle) ForceSmall() {
	p.Class = SizeSmall
	p.Size = p.rng.Float64()*SmallSizeSpread + SmallSizeMin
}

func drawSize(rng *rand.Rand) (SizeClass, float64) {
	u := rng.Float64()
	switch {
	case u < SmallStarShare:
		return SizeSmall, rng.Float64()*SmallSizeSpread + SmallSizeMin
	case u < MediumStarShare:
		return SizeMedium, rng.Float64()*MediumSizeSpread + MediumSizeMin
	default:
		return SizeLarge, rng.Float64()*LargeSizeSpread + LargeSizeMin
	}
}

func drawBlinkSpeed(rng *rand.Rand) float64 {
	return rng.Float64()*BlinkSpeedSpread + BlinkSpeedMin
}

// Advance moves the star forward by dt milliseconds. dt is expected to be
// clamped by the caller.
func (p *Particle) Advance(dt float64) {
	p.elapsed += dt
	p.Angle += p.AngularSpeed * dt

	if p.elapsed < p.blinkDelay {
		return
	}
	if p.pause > 0 {
		p.pause -= dt
		return
	}

	p.Brightness += p.blinkSpeed * p.blinkDir * dt
	if p.Brightness >= p.MaxBrightness {
		p.Brightness = p.MaxBrightness
		p.blinkDir = -1
		p.pause = p.pauseDuration
	} else if p.Brightness <= p.MinBrightness {
		p.Brightness = p.MinBrightness
		p.blinkDir = 1
		p.pause = p.pauseDuration
		p.blinkDelay = p.elapsed + p.rng.Float64()*BlinkDelaySpread + BlinkDelayMin
	}

	if p.rng.Float64() < BlinkJitterChance {
		p.blinkSpeed = drawBlinkSpeed(p.rng)
	}
}

// Position returns the star's location around center.
func (p *Particle) Position(center Point) Point {
	return Orbit(center, p.Radius, p.Angle)
}

// Glows reports whether the star is large enough to get a halo.
func (p *Particle) Glows() bool {
	return p.Size > GlowSizeThreshold
}
