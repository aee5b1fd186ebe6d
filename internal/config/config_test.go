package config

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/iburimskiy/orbitfield/internal/sky"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != WindowWidth || cfg.Window.Height != WindowHeight {
		t.Errorf("window = %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Stars.Count != 1500 || cfg.Stars.ExtraSmall != 150 {
		t.Errorf("stars = %d + %d", cfg.Stars.Count, cfg.Stars.ExtraSmall)
	}
	if !cfg.Anchor.Enabled {
		t.Error("anchor should be enabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	index, err := cfg.Page("index")
	if err != nil {
		t.Fatal(err)
	}
	if !index.Meteors || len(index.Nodes) != 4 {
		t.Errorf("index page: meteors=%v nodes=%d", index.Meteors, len(index.Nodes))
	}
	explore, err := cfg.Page("explore")
	if err != nil {
		t.Fatal(err)
	}
	if explore.Meteors {
		t.Error("explore page should not have meteors")
	}
	if explore.Nodes[2].Label != "graphic design" {
		t.Errorf("explore label = %q", explore.Nodes[2].Label)
	}
}

func TestConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/test-xdg")
	if dir := ConfigDir(); dir != "/tmp/test-xdg/orbitfield" {
		t.Errorf("expected /tmp/test-xdg/orbitfield, got %q", dir)
	}

	t.Setenv("XDG_CONFIG_HOME", "")
	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".config", "orbitfield")
	if dir := ConfigDir(); dir != expected {
		t.Errorf("expected %q, got %q", expected, dir)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := Default()
	cfg.Stars.Count = 42
	cfg.Audio.Enabled = false
	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Stars.Count != 42 {
		t.Errorf("stars = %d, want 42", loaded.Stars.Count)
	}
	if loaded.Audio.Enabled {
		t.Error("audio should stay disabled")
	}
	if len(loaded.Pages["index"].Nodes) != 4 {
		t.Errorf("index nodes = %d", len(loaded.Pages["index"].Nodes))
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file should fall back to defaults: %v", err)
	}
	if cfg.Stars.Count != 1500 {
		t.Errorf("stars = %d", cfg.Stars.Count)
	}
}

func TestLoadOverridesPage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[stars]
count = 10

[pages.minimal]
meteors = false
rings = [0, 50]

[[pages.minimal.nodes]]
topic = "about"
label = "hello"
radius = 10
hover_radius = 12
speed = 0.01
start_deg = 180
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Stars.Count != 10 || cfg.Stars.ExtraSmall != 150 {
		t.Errorf("stars = %d + %d", cfg.Stars.Count, cfg.Stars.ExtraSmall)
	}
	if _, err := cfg.Page("index"); err != nil {
		t.Errorf("default pages should survive: %v", err)
	}

	p, err := cfg.Params("minimal", 800, 600)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Nodes) != 1 || p.Nodes[0].Label != "hello" {
		t.Fatalf("nodes = %+v", p.Nodes)
	}
	if math.Abs(p.Nodes[0].Speed-0.00001) > 1e-12 {
		t.Errorf("speed = %g rad/ms", p.Nodes[0].Speed)
	}
	if math.Abs(p.Nodes[0].Start.Angle-math.Pi) > 1e-12 {
		t.Errorf("start angle = %f", p.Nodes[0].Start.Angle)
	}
	if p.Shower.Enabled {
		t.Error("meteors should be off")
	}
	if len(p.RingOffsets) != 2 {
		t.Errorf("rings = %v", p.RingOffsets)
	}
}

func TestValidateRejectsBadNodes(t *testing.T) {
	cases := []struct {
		name  string
		nodes []Node
		want  error
	}{
		{"unknown", []Node{{Topic: "blog", Radius: 10, HoverRadius: 12}}, ErrUnknownTopic},
		{"duplicate", []Node{
			{Topic: "cases", Radius: 10, HoverRadius: 12},
			{Topic: "cases", Radius: 10, HoverRadius: 12},
		}, ErrDuplicateTopic},
		{"shrinking", []Node{{Topic: "about", Radius: 10, HoverRadius: 5}}, ErrInvalidNode},
	}
	for _, c := range cases {
		cfg := Default()
		cfg.Pages = map[string]Page{"p": {Nodes: c.nodes}}
		if err := cfg.Validate(); !errors.Is(err, c.want) {
			t.Errorf("%s: got %v, want %v", c.name, err, c.want)
		}
	}
}

func TestValidateRejectsBadNumbers(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"negative stars", func(c *Config) { c.Stars.Count = -200 }, ErrInvalidStars},
		{"negative extra stars", func(c *Config) { c.Stars.ExtraSmall = -1 }, ErrInvalidStars},
		{"negative interval", func(c *Config) {
			c.Meteors.IntervalMinMS, c.Meteors.IntervalMaxMS = -50, 0
		}, ErrInvalidMeteors},
		{"zero interval", func(c *Config) { c.Meteors.IntervalMinMS = 0 }, ErrInvalidMeteors},
		{"inverted interval", func(c *Config) {
			c.Meteors.IntervalMinMS, c.Meteors.IntervalMaxMS = 900, 250
		}, ErrInvalidMeteors},
		{"zero active window", func(c *Config) { c.Meteors.ActiveMS = 0 }, ErrInvalidMeteors},
		{"negative quiet window", func(c *Config) { c.Meteors.QuietMS = -1 }, ErrInvalidMeteors},
		{"negative cap", func(c *Config) { c.Meteors.MaxConcurrent = -3 }, ErrInvalidMeteors},
	}
	for _, c := range cases {
		cfg := Default()
		c.mutate(cfg)
		if err := cfg.Validate(); !errors.Is(err, c.want) {
			t.Errorf("%s: got %v, want %v", c.name, err, c.want)
		}
	}

	// equal bounds are a fixed interval, not an error
	cfg := Default()
	cfg.Meteors.IntervalMinMS, cfg.Meteors.IntervalMaxMS = 400, 400
	if err := cfg.Validate(); err != nil {
		t.Errorf("fixed interval rejected: %v", err)
	}
}

func TestLoadRejectsBadNumbers(t *testing.T) {
	files := map[string]string{
		"meteors": "[meteors]\ninterval_min_ms = -50\ninterval_max_ms = 0\n",
		"stars":   "[stars]\ncount = -200\n",
	}
	for name, data := range files {
		path := filepath.Join(t.TempDir(), name+".toml")
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("%s: Load accepted %q", name, data)
		}
	}
}

func TestParamsUnknownPage(t *testing.T) {
	if _, err := Default().Params("missing", 800, 600); !errors.Is(err, ErrUnknownPage) {
		t.Fatalf("expected ErrUnknownPage, got %v", err)
	}
}

func TestParamsRoundTripDefaults(t *testing.T) {
	p, err := Default().Params(DefaultPage, 800, 600)
	if err != nil {
		t.Fatal(err)
	}
	want := sky.DefaultNodes()
	for i, n := range p.Nodes {
		if n.Topic != want[i].Topic || math.Abs(n.Speed-want[i].Speed) > 1e-15 {
			t.Errorf("node %d = %+v, want %+v", i, n, want[i])
		}
		if math.Abs(n.Start.Angle-want[i].Start.Angle) > 1e-12 {
			t.Errorf("node %d start = %f, want %f", i, n.Start.Angle, want[i].Start.Angle)
		}
	}
}

func TestAnchorSource(t *testing.T) {
	cfg := Default()
	src := cfg.AnchorSource()
	if src == nil {
		t.Fatal("expected an anchor source")
	}
	r, ok := src(1000, 500)
	if !ok {
		t.Fatal("anchor should be present")
	}
	if math.Abs(r.X+r.W/2-500) > 1e-9 || math.Abs(r.Y+r.H-500) > 1e-9 {
		t.Errorf("anchor box %+v not bottom centered", r)
	}

	cfg.Anchor.Enabled = false
	if cfg.AnchorSource() != nil {
		t.Error("disabled anchor should give a nil source")
	}
}

func TestPanelFor(t *testing.T) {
	cfg := Default()
	if p := cfg.PanelFor(sky.TopicCases); p.Title != "cases" || p.Body == "" {
		t.Errorf("cases panel = %+v", p)
	}
	delete(cfg.Panels, string(sky.TopicAbout))
	if p := cfg.PanelFor(sky.TopicAbout); p.Title != "about" {
		t.Errorf("fallback panel = %+v", p)
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg := Default()
	cfg.Apply(Overrides{})
	if !cfg.Pages["index"].Meteors || !cfg.Audio.Enabled || cfg.Stars.Seed != 0 {
		t.Fatal("empty overrides changed the config")
	}

	cfg.Apply(Overrides{NoMeteors: true, Mute: true, Seed: 7})
	for name, p := range cfg.Pages {
		if p.Meteors {
			t.Errorf("page %s still has meteors", name)
		}
	}
	if cfg.Audio.Enabled {
		t.Error("mute should disable audio")
	}
	if cfg.Stars.Seed != 7 {
		t.Errorf("seed = %d", cfg.Stars.Seed)
	}
}

func TestWriteRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(Default(), &buf); err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("[pages.index]")) {
		t.Fatalf("encoded config missing the index page:\n%s", buf.String())
	}

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err != nil {
		t.Fatalf("Load of written config: %v", err)
	}
}
