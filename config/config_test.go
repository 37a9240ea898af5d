package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/frameterm/input"
	"github.com/lixenwraith/frameterm/render"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
width: 80
color: truecolor
overflow: reject
hold_keys: [fire, w]
tap_release: false
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Width != 80 || cfg.Height != 100 {
		t.Errorf("grid %dx%d, want 80x100", cfg.Width, cfg.Height)
	}
	if cfg.Color != "truecolor" || cfg.Overflow != "reject" || cfg.TapRelease {
		t.Errorf("fields not applied: %+v", cfg)
	}
	if len(cfg.HoldKeys) != 2 || cfg.HoldKeys[1] != "w" {
		t.Errorf("hold_keys %v", cfg.HoldKeys)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestParseEmpty(t *testing.T) {
	for _, data := range []string{"", "\n", "# only a comment\n"} {
		cfg, err := Parse([]byte(data))
		if err != nil {
			t.Errorf("Parse(%q): %v", data, err)
		}
		if cfg.Width != Default().Width {
			t.Errorf("Parse(%q) did not return defaults", data)
		}
	}
}

func TestParseRejectsUnknownField(t *testing.T) {
	if _, err := Parse([]byte("widht: 10\n")); err == nil {
		t.Error("misspelled field accepted")
	}
}

func TestValidateReportsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Width = 0
	cfg.Ramp = ""
	cfg.Color = "sepia"
	cfg.Overflow = "block"
	cfg.HoldKeys = []string{"jump"}
	cfg.HoldFrames = 0
	cfg.Backend = "x11"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("invalid config accepted")
	}
	for _, want := range []string{"grid", "ramp", "color", "overflow", "hold_keys", "hold_frames", "backend"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file loaded")
	}
}

func TestConversions(t *testing.T) {
	cfg := Default()
	cfg.Color = "256"
	cfg.HoldKeys = []string{"up"}
	cfg.HoldFrames = 4

	opts, err := cfg.RenderOptions()
	if err != nil {
		t.Fatal(err)
	}
	if opts.Mode != render.ModeColor256 || opts.Ramp.Len() != 70 || !opts.Home {
		t.Errorf("render options %+v", opts)
	}

	kc, err := cfg.KeyboardConfig()
	if err != nil {
		t.Fatal(err)
	}
	if len(kc.HoldKeys) != 1 || kc.HoldKeys[0] != input.KeyUpArrow || kc.HoldFrames != 4 {
		t.Errorf("keyboard config %+v", kc)
	}

	if cfg.FrameInterval() != time.Second/35 {
		t.Errorf("FrameInterval %v", cfg.FrameInterval())
	}
}

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestResolveLayers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frameterm.yaml")
	if err := os.WriteFile(path, []byte("width: 64\nheight: 40\nfps: 20\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Resolve(newFlagSet(), []string{"-config", path, "-fps", "50", "-hold-keys", "fire, use"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	// File overrides defaults
	if cfg.Width != 64 || cfg.Height != 40 {
		t.Errorf("grid %dx%d, want 64x40 from file", cfg.Width, cfg.Height)
	}
	// Explicit flags override the file
	if cfg.FPS != 50 {
		t.Errorf("fps %d, want 50 from flag", cfg.FPS)
	}
	if len(cfg.HoldKeys) != 2 || cfg.HoldKeys[1] != "use" {
		t.Errorf("hold keys %v", cfg.HoldKeys)
	}
	// Untouched flags keep the file/default value
	if cfg.Backend != BackendANSI {
		t.Errorf("backend %q", cfg.Backend)
	}
}

func TestResolveValidates(t *testing.T) {
	if _, err := Resolve(newFlagSet(), []string{"-backend", "x11"}); err == nil {
		t.Error("invalid backend flag accepted")
	}
	if _, err := Resolve(newFlagSet(), []string{"-nope"}); err == nil {
		t.Error("unknown flag accepted")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Click = true
	data, err := cfg.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal): %v", err)
	}
	if !back.Click || back.Ramp != cfg.Ramp {
		t.Errorf("round trip lost fields: %+v", back)
	}
}
