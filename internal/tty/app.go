package tty

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/orbitfield/internal/render"
	"github.com/iburimskiy/orbitfield/internal/sky"
)

const (
	frameInterval = 33 * time.Millisecond
	eventBuffer   = 64
)

const (
	exploreLabel = "explore →"
	backLabel    = "← back"
)

// App drives a Field in a terminal. Every tick runs on the Run goroutine;
// tcell events reach it over a channel.
type App struct {
	screen   tcell.Screen
	field    *sky.Field
	clock    *sky.Clock
	renderer *render.Renderer
	canvas   *Canvas
	button   render.Button
	pressed  bool
}

// New wraps an initialised screen. The field's viewport is resized to the
// terminal on the first Step.
func New(screen tcell.Screen, field *sky.Field, clock *sky.Clock) *App {
	cols, rows := screen.Size()
	r := render.New()
	// the silhouette swallows too many cells at terminal resolution
	r.DrawAnchor = false
	return &App{
		screen:   screen,
		field:    field,
		clock:    clock,
		renderer: r,
		canvas:   NewCanvas(cols, rows),
	}
}

// Run loops until the user quits or ctx is done. The frame timer is re-armed
// after each frame so a slow terminal never queues ticks.
func (a *App) Run(ctx context.Context) error {
	a.screen.EnableMouse()
	a.screen.HideCursor()

	events := make(chan tcell.Event, eventBuffer)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	timer := time.NewTimer(0)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !a.handle(ev) {
				return nil
			}
		case <-timer.C:
			a.Step()
			timer.Reset(frameInterval)
		}
	}
}

func (a *App) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape:
			return a.Escape()
		case tcell.KeyCtrlC:
			return false
		case tcell.KeyEnter:
			a.Click()
		case tcell.KeyRune:
			return a.Key(ev.Rune())
		}
	case *tcell.EventMouse:
		col, row := ev.Position()
		a.Pointer(col, row, ev.Buttons()&tcell.Button1 != 0)
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

// Key handles a typed rune; it returns false to quit.
func (a *App) Key(r rune) bool {
	switch r {
	case 'q', 'Q':
		return false
	case 'e', 'E', ' ':
		a.field.ToggleExplore()
	}
	return true
}

// Escape closes an open panel, or quits when none is showing.
func (a *App) Escape() bool {
	if a.field.Overlay().Active() {
		a.field.ClosePanel()
		return true
	}
	return false
}

// Pointer moves the pointer to the center of the given cell and clicks on
// the press edge of the primary button.
func (a *App) Pointer(col, row int, down bool) {
	x := (float64(col) + 0.5) * CellW
	y := (float64(row) + 0.5) * CellH
	a.field.MoveTo(x, y)
	a.button.Hovered = a.button.Contains(x, y)

	if down && !a.pressed {
		switch {
		case a.field.Overlay().Active():
			a.field.ClosePanel()
		case a.button.Hovered:
			a.field.ToggleExplore()
		default:
			a.Click()
		}
	}
	a.pressed = down
	a.button.Pressed = down && a.button.Hovered
}

// Click dispatches the hovered node, if any.
func (a *App) Click() (sky.Topic, bool) {
	return a.field.Click()
}

// Step advances the field by the clock's delta and paints one frame. A
// resize moves the anchor and re-picks the tracked star; the stars keep the
// orbits drawn for the original size.
func (a *App) Step() {
	cols, rows := a.screen.Size()
	a.canvas.Resize(cols, rows)
	w, h := a.canvas.Size()
	a.field.Resize(w, h)

	a.field.Advance(a.clock.Tick())
	a.layoutButton()

	a.renderer.Draw(a.canvas, a.field)
	a.renderer.DrawButton(a.canvas, a.button)
	a.canvas.Flush(a.screen)
}

func (a *App) layoutButton() {
	label := exploreLabel
	if a.field.Sweep().Open() {
		label = backLabel
	}
	a.button.Label = label
	a.button.Rect = sky.Rect{
		X: 2 * CellW,
		Y: CellH,
		W: float64(len([]rune(label)) * CellW),
		H: CellH * 1.5, // underline lands on the row below the label
	}
}

// Canvas exposes the cell grid painted by the last Step.
func (a *App) Canvas() *Canvas { return a.canvas }
