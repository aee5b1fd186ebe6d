package sky

import "math"

// Timing. All simulation time is expressed in milliseconds.
const (
	MaxDeltaMillis = 100.0         // clamp for a single tick, ~6 frames at 60 Hz
	FrameMillis    = 1000.0 / 60.0 // reference frame for per-frame tuned rates
)

// Stars
const (
	SmallStarShare  = 0.70 // u < 0.70 -> small
	MediumStarShare = 0.95 // u < 0.95 -> medium, otherwise large

	SmallSizeMin, SmallSizeSpread   = 0.3, 0.9
	MediumSizeMin, MediumSizeSpread = 0.84, 0.63
	LargeSizeMin, LargeSizeSpread   = 1.05, 0.6

	StartBrightnessMin, StartBrightnessSpread = 0.5, 0.5
	MinBrightnessLow, MinBrightnessSpread     = 0.1, 0.3
	MaxBrightnessLow, MaxBrightnessSpread     = 0.7, 0.3

	BlinkSpeedMin, BlinkSpeedSpread = 0.00006, 0.00018 // brightness per ms
	BlinkDelayMin, BlinkDelaySpread = 2000.0, 8000.0
	PauseMin, PauseSpread           = 3000.0, 5000.0
	BlinkJitterChance               = 0.005
	StarSpeedMin, StarSpeedSpread   = 0.000020, 0.00001 // rad per ms
	StarMinOrbitRadius              = 50.0
	StarOrbitSpread                 = 0.8 // of max(w, h)
	GlowSizeThreshold               = 0.9
)

// Anchor fallback, relative to the viewport.
const (
	FallbackAnchorX = 0.5
	FallbackAnchorY = 0.85
)

// Orbital nodes. The slingshot numbers were tuned by eye.
const (
	MinHitRadius = 25.0
	RadiusEasing = 0.1 // fraction of the gap closed per reference frame

	SlingshotMargin        = 20.0  // px below the anchor top edge
	SlingshotCrossMillis   = 600.0 // length of the "just crossed" stage
	SlingshotCrossFactor   = 4.0
	SlingshotSustainFactor = 10.0
	SpeedEasingMillis      = 250.0 // time constant of the applied-speed easing
)

// Rings and sweep.
const (
	RingStartAngle = math.Pi / 2 // 6 o'clock, sweeping clockwise
	RevealWindow   = 0.35        // radians trailing the sweep front
)

// Meteors
const (
	MeteorSpawnX                      = -150.0
	MeteorAngle                       = 0.3 // radians below horizontal
	MeteorSpeedMin, MeteorSpeedSpread = 6.0, 4.0
	MeteorTrailMin, MeteorTrailSpread = 80.0, 80.0
	MeteorFadeStep                    = 0.05
	MeteorExitMargin                  = 200.0
	MeteorSpawnBand                   = 0.5 // upper share of the viewport
)

// Panel overlay
const OverlayMillis = 800.0
