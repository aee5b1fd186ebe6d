package sky

import (
	"math"
	"math/rand/v2"
)

// PanelDispatcher opens the content panel for a clicked node.
type PanelDispatcher interface {
	Open(t Topic)
}

// Params configures a Field.
type Params struct {
	Width, Height float64

	Stars           int
	ExtraSmallStars int // appended after Stars, always small

	Nodes       []NodeSpec
	RingOffsets []float64

	Shower        ShowerParams
	SweepMillis   float64
	OverlayMillis float64

	Seed uint64 // 0 draws a random seed
}

// DefaultNodes is the landing page node set.
func DefaultNodes() []NodeSpec {
	return []NodeSpec{
		{
			Topic: TopicAbout, Label: "about me",
			RingOffset: 0, Radius: 12.5, HoverRadius: 15, Speed: 0.000012,
			Start: StartSpec{Angle: 1.5 * math.Pi, FromAnchorEdge: true, Nudge: 0.2, ArcShift: 180},
		},
		{
			Topic: TopicProjects, Label: "projects",
			RingOffset: 60, Radius: 15, HoverRadius: 18, Speed: 0.000010,
			Start: StartSpec{Angle: 1.5 * math.Pi, FromAnchorEdge: true, Nudge: 0.6, ArcShift: 220},
		},
		{
			Topic: TopicGraphicDesign, Label: "designathons",
			RingOffset: 140, Radius: 22.5, HoverRadius: 26, Speed: 0.000008,
			Start: StartSpec{Angle: 1.5 * math.Pi}, // 12 o'clock
		},
		{
			Topic: TopicCases, Label: "cases",
			RingOffset: 240, Radius: 27.5, HoverRadius: 32, Speed: 0.000006,
			Start: StartSpec{Angle: 7.0 / 6.0 * math.Pi}, // 10 o'clock
		},
	}
}

// DefaultParams returns the landing page setup for a w×h viewport.
func DefaultParams(w, h float64) Params {
	return Params{
		Width:           w,
		Height:          h,
		Stars:           1500,
		ExtraSmallStars: 150,
		Nodes:           DefaultNodes(),
		RingOffsets:     []float64{0, 60, 140, 240},
		Shower:          DefaultShower(),
		SweepMillis:     1200,
		OverlayMillis:   OverlayMillis,
	}
}

// Field owns every simulated entity and is advanced once per tick by the
// host. It is not safe for concurrent use.
type Field struct {
	width, height float64

	anchorSrc AnchorSource
	anchor    Anchor
	rng       *rand.Rand

	Particles []*Particle
	Meteors   []*Meteor
	Nodes     []*OrbitalNode
	tracked   *Particle
	rings     []float64

	shower  *shower
	maxMet  int
	sweep   *Sweep
	overlay *Overlay
	input   *InputTracker
	panels  PanelDispatcher

	closed bool
}

// NewField builds the star field. anchor and panels may be nil.
func NewField(p Params, anchor AnchorSource, panels PanelDispatcher) *Field {
	seed := p.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	f := &Field{
		width:     p.Width,
		height:    p.Height,
		anchorSrc: anchor,
		rng:       rng,
		rings:     append([]float64(nil), p.RingOffsets...),
		shower:    newShower(p.Shower, rng),
		maxMet:    p.Shower.MaxConcurrent,
		sweep:     NewSweep(p.SweepMillis),
		overlay:   NewOverlay(p.OverlayMillis),
		input:     NewInputTracker(len(p.Nodes)),
		panels:    panels,
	}
	f.anchor = resolveAnchor(anchor, f.width, f.height)

	stars, extra := max(p.Stars, 0), max(p.ExtraSmallStars, 0)
	maxRadius := math.Max(f.width, f.height) * StarOrbitSpread
	f.Particles = make([]*Particle, 0, stars+extra)
	for i := 0; i < stars; i++ {
		f.Particles = append(f.Particles, NewParticle(rng, maxRadius))
	}
	for i := 0; i < extra; i++ {
		s := NewParticle(rng, maxRadius)
		s.ForceSmall()
		f.Particles = append(f.Particles, s)
	}
	f.selectTracked()

	for _, spec := range p.Nodes {
		f.Nodes = append(f.Nodes, NewOrbitalNode(spec))
	}
	f.resetNodes()
	return f
}

// selectTracked picks the star closest to the viewport center.
func (f *Field) selectTracked() {
	mid := Point{X: f.width / 2, Y: f.height / 2}
	best := math.Inf(1)
	f.tracked = nil
	for _, p := range f.Particles {
		if d := p.Position(f.anchor.Center).Dist(mid); d < best {
			best = d
			f.tracked = p
		}
	}
}

func (f *Field) resetNodes() {
	r := f.TrackedRadius()
	for _, n := range f.Nodes {
		n.Reset(f.anchor, r)
	}
}

// TrackedRadius is the orbital radius anchoring rings and nodes. Without
// stars it falls back to the anchor's distance from the viewport center.
func (f *Field) TrackedRadius() float64 {
	if f.tracked != nil {
		return f.tracked.Radius
	}
	mid := Point{X: f.width / 2, Y: f.height / 2}
	return math.Max(StarMinOrbitRadius, f.anchor.Center.Dist(mid))
}

// Tracked returns the tracked particle, nil for an empty field.
func (f *Field) Tracked() *Particle { return f.tracked }

// Advance runs one simulation tick of dt milliseconds. dt must already be
// clamped (see Clock).
func (f *Field) Advance(dt float64) {
	if f.closed {
		return
	}
	f.anchor = resolveAnchor(f.anchorSrc, f.width, f.height)

	for _, p := range f.Particles {
		p.Advance(dt)
	}
	f.advanceMeteors(dt)

	f.sweep.Advance(dt)
	f.overlay.Advance(dt)

	pointer, seen := f.input.Pointer()
	r := f.TrackedRadius()
	for i, n := range f.Nodes {
		hidden := f.sweep.Reveal(n.Angle) <= 0
		n.Advance(dt, f.anchor, r, pointer, seen, f.overlay.Active() || hidden)
		f.input.record(i, n.Hovered)
	}
}

func (f *Field) advanceMeteors(dt float64) {
	for n := f.shower.advance(dt); n > 0; n-- {
		if f.maxMet > 0 && len(f.Meteors) >= f.maxMet {
			break
		}
		f.Meteors = append(f.Meteors, f.shower.spawn(f.width, f.height))
	}

	kept := f.Meteors[:0]
	for _, m := range f.Meteors {
		m.Advance(dt, f.width, f.height)
		if m.Active() {
			kept = append(kept, m)
		}
	}
	for i := len(kept); i < len(f.Meteors); i++ {
		f.Meteors[i] = nil
	}
	f.Meteors = kept
}

// Interactive reports whether clicks are honoured: rings fully swept and no
// panel transition underway.
func (f *Field) Interactive() bool {
	return !f.closed && f.sweep.Complete() && !f.overlay.Active()
}

// Click dispatches the first hovered node's topic. It returns the topic and
// whether anything was dispatched.
func (f *Field) Click() (Topic, bool) {
	if !f.Interactive() {
		return "", false
	}
	i := f.input.FirstHovered()
	if i < 0 || i >= len(f.Nodes) {
		return "", false
	}
	t := f.Nodes[i].Topic()
	f.overlay.Begin(t)
	if f.panels != nil {
		f.panels.Open(t)
	}
	return t, true
}

// ClosePanel fades the panel overlay out.
func (f *Field) ClosePanel() {
	f.overlay.Close()
}

// ToggleExplore flips the ring sweep. Opening puts the nodes back on their
// start positions.
func (f *Field) ToggleExplore() {
	if f.closed {
		return
	}
	if !f.sweep.Open() {
		f.resetNodes()
	}
	f.sweep.Toggle()
}

// Resize adopts a new viewport. Particle state is untouched; only the
// tracked particle is re-selected.
func (f *Field) Resize(w, h float64) {
	if w == f.width && h == f.height {
		return
	}
	f.width, f.height = w, h
	f.anchor = resolveAnchor(f.anchorSrc, w, h)
	f.selectTracked()
}

// Close drops all entities; later calls to Advance and Click are no-ops.
func (f *Field) Close() {
	f.closed = true
	f.Particles = nil
	f.Meteors = nil
	f.tracked = nil
	f.panels = nil
}

// MoveTo forwards a pointer position to the input tracker.
func (f *Field) MoveTo(x, y float64) { f.input.MoveTo(x, y) }

// Leave forgets the pointer and drops the hover flags, e.g. when the cursor
// exits the window.
func (f *Field) Leave() {
	f.input.Leave()
	f.input.clear()
}

// Size returns the viewport size.
func (f *Field) Size() (w, h float64) { return f.width, f.height }

// Anchor returns the anchor resolved on the latest tick.
func (f *Field) Anchor() Anchor { return f.anchor }

// AnchorRect returns the anchor element box, if any.
func (f *Field) AnchorRect() (Rect, bool) {
	if f.anchorSrc == nil {
		return Rect{}, false
	}
	return f.anchorSrc(f.width, f.height)
}

// RingRadii returns the radii of the orbit rings.
func (f *Field) RingRadii() []float64 {
	r := f.TrackedRadius()
	out := make([]float64, len(f.rings))
	for i, off := range f.rings {
		out[i] = r + off
	}
	return out
}

// NodeOpacity is node i's reveal opacity under the current sweep.
func (f *Field) NodeOpacity(i int) float64 {
	if i < 0 || i >= len(f.Nodes) {
		return 0
	}
	return f.sweep.Reveal(f.Nodes[i].Angle)
}

// NodePosition is node i's center on the latest tick.
func (f *Field) NodePosition(i int) Point {
	return f.Nodes[i].Position(f.anchor, f.TrackedRadius())
}

func (f *Field) Sweep() *Sweep { return f.sweep }

func (f *Field) Overlay() *Overlay { return f.overlay }

func (f *Field) Input() *InputTracker { return f.input }

func (f *Field) Closed() bool { return f.closed }
