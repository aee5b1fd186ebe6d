package sky

// OverlayState is the phase of the modal panel transition.
type OverlayState int

const (
	OverlayClosed OverlayState = iota
	OverlayOpening
	OverlayOpen
	OverlayClosing
)

// Overlay fades a full-screen veil in when a panel opens and out when it
// closes.
type Overlay struct {
	duration float64
	state    OverlayState
	opacity  float64
	topic    Topic
}

// NewOverlay returns a closed overlay with the given fade length.
func NewOverlay(durationMillis float64) *Overlay {
	if durationMillis <= 0 {
		durationMillis = OverlayMillis
	}
	return &Overlay{duration: durationMillis}
}

// Begin starts fading in for topic. It is ignored unless closed.
func (o *Overlay) Begin(t Topic) bool {
	if o.state != OverlayClosed {
		return false
	}
	o.state = OverlayOpening
	o.topic = t
	return true
}

// Close starts fading out. A closing overlay keeps its current opacity.
func (o *Overlay) Close() {
	if o.state == OverlayOpening || o.state == OverlayOpen {
		o.state = OverlayClosing
	}
}

// Advance steps the fade by dt milliseconds.
func (o *Overlay) Advance(dt float64) {
	step := dt / o.duration
	switch o.state {
	case OverlayOpening:
		o.opacity += step
		if o.opacity >= 1 {
			o.opacity = 1
			o.state = OverlayOpen
		}
	case OverlayClosing:
		o.opacity -= step
		if o.opacity <= 0 {
			o.opacity = 0
			o.state = OverlayClosed
			o.topic = ""
		}
	}
}

// Active reports whether a transition is in progress or the panel is up.
func (o *Overlay) Active() bool { return o.state != OverlayClosed }

// State reports the transition phase.
func (o *Overlay) State() OverlayState { return o.state }

// Opacity of the veil in [0, 1].
func (o *Overlay) Opacity() float64 { return o.opacity }

// Topic of the open panel, empty when closed.
func (o *Overlay) Topic() Topic { return o.topic }
