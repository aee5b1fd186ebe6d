package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/iburimskiy/orbitfield/internal/sky"
)

const (
	WindowWidth  = 1280
	WindowHeight = 800

	DefaultPage = "index"

	// Anchor image box, as fractions of the viewport, bottom centered
	AnchorWidth  = 0.56
	AnchorHeight = 0.34

	// Chime
	ChimeFrequency = 660.0
	ChimeVolume    = 0.25

	// Environment defaults for the CLI flags
	EnvConfig = "ORBITFIELD_CONFIG"
	EnvPage   = "ORBITFIELD_PAGE"
)

var (
	ErrUnknownPage    = errors.New("unknown page")
	ErrUnknownTopic   = errors.New("unknown topic")
	ErrDuplicateTopic = errors.New("duplicate topic")
	ErrInvalidNode    = errors.New("invalid node")
	ErrInvalidStars   = errors.New("invalid stars")
	ErrInvalidMeteors = errors.New("invalid meteors")
)

// Config holds orbitfield configuration.
type Config struct {
	Window  WindowConfig     `toml:"window"`
	Anchor  AnchorConfig     `toml:"anchor"`
	Stars   StarsConfig      `toml:"stars"`
	Meteors MeteorConfig     `toml:"meteors"`
	Sweep   SweepConfig      `toml:"sweep"`
	Audio   AudioConfig      `toml:"audio"`
	Pages   map[string]Page  `toml:"pages"`
	Panels  map[string]Panel `toml:"panels"`
}

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

// AnchorConfig describes the anchor image box. Disabled selects the
// fallback anchor point.
type AnchorConfig struct {
	Enabled bool    `toml:"enabled"`
	Width   float64 `toml:"width"`  // fraction of viewport width
	Height  float64 `toml:"height"` // fraction of viewport height
}

// StarsConfig controls the star field.
type StarsConfig struct {
	Count      int    `toml:"count"`
	ExtraSmall int    `toml:"extra_small"`
	Seed       uint64 `toml:"seed"` // 0 = random
}

// MeteorConfig controls the shower cycle. Pages switch meteors on and off.
type MeteorConfig struct {
	ActiveMS      float64 `toml:"active_ms"`
	QuietMS       float64 `toml:"quiet_ms"`
	IntervalMinMS float64 `toml:"interval_min_ms"`
	IntervalMaxMS float64 `toml:"interval_max_ms"`
	MaxConcurrent int     `toml:"max_concurrent"`
}

// SweepConfig controls the explore sweep and panel overlay fades.
type SweepConfig struct {
	DurationMS float64 `toml:"duration_ms"`
	OverlayMS  float64 `toml:"overlay_ms"`
}

// AudioConfig controls the hover/click chime.
type AudioConfig struct {
	Enabled   bool    `toml:"enabled"`
	Frequency float64 `toml:"frequency"`
	Volume    float64 `toml:"volume"`
}

// Page is one variant of the landing page.
type Page struct {
	Meteors bool      `toml:"meteors"`
	Rings   []float64 `toml:"rings"`
	Nodes   []Node    `toml:"nodes"`
}

// Node configures one orbital node. Speeds are in radians per second and
// angles in degrees.
type Node struct {
	Topic       string  `toml:"topic"`
	Label       string  `toml:"label"`
	RingOffset  float64 `toml:"ring_offset"`
	Radius      float64 `toml:"radius"`
	HoverRadius float64 `toml:"hover_radius"`
	Speed       float64 `toml:"speed"`
	StartDeg    float64 `toml:"start_deg"`
	AnchorStart bool    `toml:"anchor_start"`
	NudgeDeg    float64 `toml:"nudge_deg"`
	ArcShift    float64 `toml:"arc_shift"`
}

// Panel is the text shown when a topic opens.
type Panel struct {
	Title string `toml:"title"`
	Body  string `toml:"body"`
}

// Default returns the default configuration.
func Default() *Config {
	index := pageFromSpecs(sky.DefaultNodes(), true)

	explore := pageFromSpecs(sky.DefaultNodes(), false)
	explore.Nodes[2].Label = "graphic design"

	return &Config{
		Window: WindowConfig{Width: WindowWidth, Height: WindowHeight, Title: "orbitfield"},
		Anchor: AnchorConfig{Enabled: true, Width: AnchorWidth, Height: AnchorHeight},
		Stars:  StarsConfig{Count: 1500, ExtraSmall: 150},
		Meteors: MeteorConfig{
			ActiveMS:      4000,
			QuietMS:       14000,
			IntervalMinMS: 250,
			IntervalMaxMS: 900,
			MaxConcurrent: 12,
		},
		Sweep: SweepConfig{DurationMS: 1200, OverlayMS: sky.OverlayMillis},
		Audio: AudioConfig{Enabled: true, Frequency: ChimeFrequency, Volume: ChimeVolume},
		Pages: map[string]Page{
			"index":   index,
			"explore": explore,
		},
		Panels: map[string]Panel{
			string(sky.TopicAbout):         {Title: "about me", Body: "Designer and developer drawn to small, careful interfaces."},
			string(sky.TopicProjects):      {Title: "projects", Body: "Selected builds: tools, experiments and side projects."},
			string(sky.TopicGraphicDesign): {Title: "graphic design", Body: "Posters, identities and designathon entries."},
			string(sky.TopicCases):         {Title: "cases", Body: "Long-form case studies, from brief to shipped work."},
		},
	}
}

func pageFromSpecs(specs []sky.NodeSpec, meteors bool) Page {
	p := Page{Meteors: meteors, Rings: []float64{0, 60, 140, 240}}
	for _, s := range specs {
		p.Nodes = append(p.Nodes, Node{
			Topic:       string(s.Topic),
			Label:       s.Label,
			RingOffset:  s.RingOffset,
			Radius:      s.Radius,
			HoverRadius: s.HoverRadius,
			Speed:       s.Speed * 1000,
			StartDeg:    s.Start.Angle * 180 / math.Pi,
			AnchorStart: s.Start.FromAnchorEdge,
			NudgeDeg:    s.Start.Nudge * 180 / math.Pi,
			ArcShift:    s.Start.ArcShift,
		})
	}
	return p
}

// ConfigDir returns the orbitfield config directory path.
func ConfigDir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "orbitfield")
}

// Path returns the default config file location.
func Path() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file at path on top of the defaults. An empty path
// means Path(); a missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = Path()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to path.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return Write(cfg, f)
}

// Write encodes the config as TOML.
func Write(cfg *Config, w io.Writer) error {
	return toml.NewEncoder(w).Encode(cfg)
}

// Overrides are command-line adjustments applied on top of the file.
type Overrides struct {
	NoMeteors bool
	Mute      bool
	Seed      uint64
}

// Apply folds o into c. Zero values leave the file settings alone.
func (c *Config) Apply(o Overrides) {
	if o.NoMeteors {
		for name, p := range c.Pages {
			p.Meteors = false
			c.Pages[name] = p
		}
	}
	if o.Mute {
		c.Audio.Enabled = false
	}
	if o.Seed != 0 {
		c.Stars.Seed = o.Seed
	}
}

// Validate checks the star and meteor numbers, then every page for the
// one-node-per-topic rule and sane node sizes.
func (c *Config) Validate() error {
	if c.Stars.Count < 0 || c.Stars.ExtraSmall < 0 {
		return fmt.Errorf("%w: count %d extra_small %d", ErrInvalidStars, c.Stars.Count, c.Stars.ExtraSmall)
	}
	m := c.Meteors
	switch {
	case m.IntervalMinMS <= 0 || m.IntervalMaxMS < m.IntervalMinMS:
		return fmt.Errorf("%w: interval %.0f..%.0f ms", ErrInvalidMeteors, m.IntervalMinMS, m.IntervalMaxMS)
	case m.ActiveMS <= 0 || m.QuietMS <= 0:
		return fmt.Errorf("%w: active %.0f ms quiet %.0f ms", ErrInvalidMeteors, m.ActiveMS, m.QuietMS)
	case m.MaxConcurrent < 0:
		return fmt.Errorf("%w: max_concurrent %d", ErrInvalidMeteors, m.MaxConcurrent)
	}

	for name, p := range c.Pages {
		seen := map[sky.Topic]bool{}
		for _, n := range p.Nodes {
			t := sky.Topic(n.Topic)
			if !t.Valid() {
				return fmt.Errorf("page %q: %w: %q", name, ErrUnknownTopic, n.Topic)
			}
			if seen[t] {
				return fmt.Errorf("page %q: %w: %q", name, ErrDuplicateTopic, n.Topic)
			}
			seen[t] = true
			if n.Radius <= 0 || n.HoverRadius < n.Radius {
				return fmt.Errorf("page %q topic %q: %w: radius %.1f hover %.1f",
					name, n.Topic, ErrInvalidNode, n.Radius, n.HoverRadius)
			}
		}
	}
	return nil
}

// Page looks up a page profile by name.
func (c *Config) Page(name string) (Page, error) {
	p, ok := c.Pages[name]
	if !ok {
		return Page{}, fmt.Errorf("%w: %q", ErrUnknownPage, name)
	}
	return p, nil
}

// Params builds the simulation parameters for a page at the given size.
func (c *Config) Params(page string, w, h float64) (sky.Params, error) {
	pg, err := c.Page(page)
	if err != nil {
		return sky.Params{}, err
	}

	p := sky.DefaultParams(w, h)
	p.Stars = c.Stars.Count
	p.ExtraSmallStars = c.Stars.ExtraSmall
	p.Seed = c.Stars.Seed
	p.RingOffsets = append([]float64(nil), pg.Rings...)
	p.SweepMillis = c.Sweep.DurationMS
	p.OverlayMillis = c.Sweep.OverlayMS
	p.Shower = sky.ShowerParams{
		Enabled:       pg.Meteors,
		ActiveMillis:  c.Meteors.ActiveMS,
		QuietMillis:   c.Meteors.QuietMS,
		IntervalMin:   c.Meteors.IntervalMinMS,
		IntervalMax:   c.Meteors.IntervalMaxMS,
		MaxConcurrent: c.Meteors.MaxConcurrent,
	}

	p.Nodes = p.Nodes[:0]
	for _, n := range pg.Nodes {
		p.Nodes = append(p.Nodes, n.Spec())
	}
	return p, nil
}

// Spec converts the node to simulation units.
func (n Node) Spec() sky.NodeSpec {
	return sky.NodeSpec{
		Topic:       sky.Topic(n.Topic),
		Label:       n.Label,
		RingOffset:  n.RingOffset,
		Radius:      n.Radius,
		HoverRadius: n.HoverRadius,
		Speed:       n.Speed / 1000,
		Start: sky.StartSpec{
			Angle:          n.StartDeg * math.Pi / 180,
			FromAnchorEdge: n.AnchorStart,
			Nudge:          n.NudgeDeg * math.Pi / 180,
			ArcShift:       n.ArcShift,
		},
	}
}

// AnchorSource returns the anchor box callback for the simulation, nil when
// the anchor is disabled.
func (c *Config) AnchorSource() sky.AnchorSource {
	if !c.Anchor.Enabled || c.Anchor.Width <= 0 || c.Anchor.Height <= 0 {
		return nil
	}
	fw, fh := c.Anchor.Width, c.Anchor.Height
	return func(w, h float64) (sky.Rect, bool) {
		if w <= 0 || h <= 0 {
			return sky.Rect{}, false
		}
		aw, ah := w*fw, h*fh
		return sky.Rect{X: (w - aw) / 2, Y: h - ah, W: aw, H: ah}, true
	}
}

// PanelFor returns the panel text for a topic, falling back to the topic
// name.
func (c *Config) PanelFor(t sky.Topic) Panel {
	if p, ok := c.Panels[string(t)]; ok {
		return p
	}
	return Panel{Title: string(t)}
}
