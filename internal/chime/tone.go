// Package chime synthesises the short bell played when a node is hovered or
// clicked.
package chime

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// SampleRate used for every chime.
const SampleRate = beep.SampleRate(44100)

// Tone is a sine partial with a fast attack and exponential decay. It
// implements beep.Streamer and drains after its duration.
type Tone struct {
	freq   float64
	volume float64
	pos    int
	total  int
	attack int
	decay  float64 // per-sample envelope multiplier after the attack
}

// NewTone returns a tone of the given frequency, length and peak volume.
func NewTone(sr beep.SampleRate, freq float64, length time.Duration, volume float64) *Tone {
	total := sr.N(length)
	attack := sr.N(5 * time.Millisecond)
	if attack >= total {
		attack = total / 4
	}
	// fall to ~1% of peak by the end of the tone
	decay := 1.0
	if rest := total - attack; rest > 0 {
		decay = math.Pow(0.01, 1/float64(rest))
	}
	return &Tone{
		freq:   freq / float64(sr),
		volume: math.Max(0, math.Min(1, volume)),
		total:  total,
		attack: attack,
		decay:  decay,
	}
}

func (t *Tone) envelope() float64 {
	if t.pos < t.attack {
		return float64(t.pos) / float64(t.attack)
	}
	return math.Pow(t.decay, float64(t.pos-t.attack))
}

// Stream fills samples with the next chunk of the tone.
func (t *Tone) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}
		v := math.Sin(2*math.Pi*t.freq*float64(t.pos)) * t.envelope() * t.volume
		samples[i] = [2]float64{v, v}
		t.pos++
	}
	return len(samples), true
}

func (t *Tone) Err() error { return nil }

// Len is the tone length in samples.
func (t *Tone) Len() int { return t.total }

// Bell layers a fundamental with a quieter fifth above it.
func Bell(freq, volume float64) beep.Streamer {
	return beep.Mix(
		NewTone(SampleRate, freq, 220*time.Millisecond, volume),
		NewTone(SampleRate, freq*1.5, 140*time.Millisecond, volume*0.4),
	)
}

// Tick is the short, quiet hover cue.
func Tick(freq, volume float64) beep.Streamer {
	return NewTone(SampleRate, freq*2, 45*time.Millisecond, volume*0.3)
}
