package game

import (
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/orbitfield/internal/chime"
	"github.com/iburimskiy/orbitfield/internal/sky"
)

// audio plays the hover and click cues on the shared speaker.
type audio struct {
	freq   float64
	volume float64
}

// newAudio initialises the speaker. A machine without a sound device gets
// an error and the caller runs muted.
func newAudio(freq, volume float64) (*audio, error) {
	sr := chime.SampleRate
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, err
	}
	return &audio{freq: freq, volume: sky.Clamp01(volume)}, nil
}

func (a *audio) play(s beep.Streamer) {
	if a == nil {
		return
	}
	speaker.Play(s)
}

func (a *audio) bell() {
	if a != nil {
		a.play(chime.Bell(a.freq, a.volume))
	}
}

func (a *audio) tick() {
	if a != nil {
		a.play(chime.Tick(a.freq, a.volume))
	}
}

func (a *audio) close() {
	if a == nil {
		return
	}
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
}
