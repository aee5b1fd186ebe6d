package sky

// InputTracker keeps the last pointer position and the hover flags computed
// on the latest tick. Pointer writes come from the host's event handling and
// never touch node state directly.
type InputTracker struct {
	pointer Point
	seen    bool
	hovered []bool
}

// NewInputTracker sizes the hover table for n nodes.
func NewInputTracker(n int) *InputTracker {
	return &InputTracker{hovered: make([]bool, n)}
}

// MoveTo records a pointer position.
func (t *InputTracker) MoveTo(x, y float64) {
	t.pointer = Point{X: x, Y: y}
	t.seen = true
}

// Leave forgets the pointer, e.g. when it exits the window.
func (t *InputTracker) Leave() {
	t.seen = false
}

// Pointer returns the last pointer position and whether one is known.
func (t *InputTracker) Pointer() (Point, bool) {
	return t.pointer, t.seen
}

func (t *InputTracker) record(i int, hovered bool) {
	if i >= 0 && i < len(t.hovered) {
		t.hovered[i] = hovered
	}
}

func (t *InputTracker) clear() {
	for i := range t.hovered {
		t.hovered[i] = false
	}
}

// Hovered reports node i's hover flag from the latest tick.
func (t *InputTracker) Hovered(i int) bool {
	return i >= 0 && i < len(t.hovered) && t.hovered[i]
}

// FirstHovered returns the lowest hovered index, or -1.
func (t *InputTracker) FirstHovered() int {
	for i, h := range t.hovered {
		if h {
			return i
		}
	}
	return -1
}

// AnyHovered reports whether the pointer is over any node.
func (t *InputTracker) AnyHovered() bool {
	return t.FirstHovered() >= 0
}
