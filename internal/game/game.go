// Package game hosts the star field in an ebiten window.
package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/orbitfield/internal/config"
	"github.com/iburimskiy/orbitfield/internal/panel"
	"github.com/iburimskiy/orbitfield/internal/render"
	"github.com/iburimskiy/orbitfield/internal/sky"
	"github.com/iburimskiy/orbitfield/internal/ui"
)

const (
	// Explore button
	buttonX      = 20
	buttonY      = 36
	buttonHeight = 28
	buttonPad    = 4

	exploreLabel = "explore →"
	backLabel    = "← back"
)

// Options configures a Game.
type Options struct {
	Config *config.Config
	Page   string
	Mute   bool
	// Panels overrides the native dialog dispatcher.
	Panels sky.PanelDispatcher
}

type Game struct {
	field    *sky.Field
	clock    *sky.Clock
	renderer *render.Renderer
	surface  *screenSurface
	audio    *audio
	closed   <-chan sky.Topic
	errs     <-chan error

	// input edge detection
	prevKey map[ebiten.Key]bool

	button  render.Button
	hovered int

	width, height int
	focused       bool
	started       time.Time
	lastErr       error
}

// New builds the field for the selected page and wires the panels and the
// chime. Audio failures are logged and leave the game muted.
func New(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	page := opts.Page
	if page == "" {
		page = config.DefaultPage
	}

	w, h := cfg.Window.Width, cfg.Window.Height
	params, err := cfg.Params(page, float64(w), float64(h))
	if err != nil {
		return nil, err
	}

	panels := opts.Panels
	if panels == nil {
		panels = panel.Multi{panel.NewDialog(cfg.PanelFor), panel.Log{}}
	}
	var closed <-chan sky.Topic
	if n, ok := panels.(panel.Notifier); ok {
		closed = n.Closed()
	}
	var errs <-chan error
	if r, ok := panels.(panel.Reporter); ok {
		errs = r.Errors()
	}

	surface, err := newScreenSurface()
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}

	g := &Game{
		field:    sky.NewField(params, cfg.AnchorSource(), panels),
		clock:    sky.NewClock(nil),
		renderer: render.New(),
		surface:  surface,
		closed:   closed,
		errs:     errs,
		prevKey:  map[ebiten.Key]bool{},
		hovered:  -1,
		width:    w,
		height:   h,
		focused:  true,
		started:  time.Now(),
	}
	g.renderer.DrawAnchor = cfg.Anchor.Enabled

	if cfg.Audio.Enabled && !opts.Mute {
		a, err := newAudio(cfg.Audio.Frequency, cfg.Audio.Volume)
		if err != nil {
			ui.Warnf("audio disabled: %v", err)
			g.lastErr = err
		} else {
			g.audio = a
		}
	}
	return g, nil
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	// a backgrounded window must not come back to a large delta
	focused := ebiten.IsFocused()
	if focused && !g.focused {
		g.clock.Reset()
	}
	g.focused = focused
	dt := g.clock.Tick()

	mouseX, mouseY := ebiten.CursorPosition()
	mx, my := float64(mouseX), float64(mouseY)
	if mouseX < 0 || mouseY < 0 || mouseX >= g.width || mouseY >= g.height {
		g.field.Leave()
	} else {
		g.field.MoveTo(mx, my)
	}
	g.layoutButton()
	g.button.Hovered = g.button.Contains(mx, my)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		switch {
		case g.button.Hovered:
			g.button.Pressed = true
		case g.field.Overlay().Active():
			g.field.ClosePanel()
		default:
			if t, ok := g.field.Click(); ok {
				ui.Logf("clicked %s", t)
				g.audio.bell()
			}
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.button.Pressed && g.button.Hovered {
			g.field.ToggleExplore()
		}
		g.button.Pressed = false
	}

	explore, space := justPressed(ebiten.KeyE), justPressed(ebiten.KeySpace)
	if explore || space {
		g.field.ToggleExplore()
	}
	if justPressed(ebiten.KeyEscape) {
		if !g.field.Overlay().Active() {
			return ebiten.Termination
		}
		g.field.ClosePanel()
	}
	if justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.drainPanels()
	g.field.Advance(dt)
	g.updateHover()
	return nil
}

// drainPanels fades the overlay out once the dialog has been dismissed and
// keeps the latest dialog failure for the status line.
func (g *Game) drainPanels() {
	for {
		select {
		case t := <-g.closed:
			ui.Logf("closed %s", t)
			g.field.ClosePanel()
		case err := <-g.errs:
			g.lastErr = err
		default:
			return
		}
	}
}

func (g *Game) updateHover() {
	i := g.field.Input().FirstHovered()
	if i >= 0 && i != g.hovered {
		g.audio.tick()
	}
	g.hovered = i

	if i >= 0 || g.button.Hovered {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

func (g *Game) layoutButton() {
	label := exploreLabel
	if g.field.Sweep().Open() {
		label = backLabel
	}
	g.button.Label = label
	g.button.Rect = sky.Rect{
		X: buttonX,
		Y: buttonY,
		W: g.surface.textWidth(label) + buttonPad,
		H: buttonHeight,
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.dst = screen
	g.renderer.Draw(g.surface, g.field)
	g.renderer.DrawButton(g.surface, g.button)

	status := "E: explore | click a node to open it | Esc/Q: quit | " + formatUptime(time.Since(g.started))
	if g.field.Overlay().Active() {
		status = "Esc or click: close " + string(g.field.Overlay().Topic())
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.field.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// Close tears the field down and silences the speaker.
func (g *Game) Close() {
	g.field.Close()
	g.audio.close()
}

// Run opens the window and blocks until the user quits.
func Run(g *Game, title string) error {
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	defer g.Close()

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
