package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/frameterm/input"
	"github.com/lixenwraith/frameterm/parameter"
	"github.com/lixenwraith/frameterm/render"
)

// Backend names
const (
	BackendANSI  = "ansi"
	BackendTcell = "tcell"
)

// Grid dimensions above this are rejected
const maxGridDim = 4096

// Config is the full runtime configuration
type Config struct {
	// Frame renderer
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Ramp       string `yaml:"ramp"`
	Color      string `yaml:"color"` // mono|truecolor|256|auto
	Home       bool   `yaml:"home"`
	ClearFirst bool   `yaml:"clear_first"`

	// Key event queue
	QueueSize  int      `yaml:"queue_size"`
	Overflow   string   `yaml:"overflow"` // overwrite|reject
	HoldKeys   []string `yaml:"hold_keys"`
	HoldFrames int      `yaml:"hold_frames"`
	TapRelease bool     `yaml:"tap_release"`

	// Host
	FPS     int    `yaml:"fps"`
	Backend string `yaml:"backend"` // ansi|tcell
	Pattern string `yaml:"pattern"`
	Image   string `yaml:"image"` // Overrides Pattern when set
	Click   bool   `yaml:"click"`
	LogFile string `yaml:"log_file"`
}

// Default returns the classic configuration
func Default() Config {
	return Config{
		Width:      parameter.GridWidth,
		Height:     parameter.GridHeight,
		Ramp:       parameter.GlyphRamp,
		Color:      "mono",
		Home:       true,
		ClearFirst: true,
		QueueSize:  parameter.KeyQueueSize,
		Overflow:   "overwrite",
		HoldKeys:   []string{"fire", "use", "enter", "left", "right", "up", "down"},
		HoldFrames: parameter.HoldFrames,
		TapRelease: true,
		FPS:        parameter.FrameRate,
		Backend:    BackendANSI,
		Pattern:    "plasma",
	}
}

// Parse decodes YAML on top of Default; unknown fields are errors
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		// Empty or comment-only document
		if errors.Is(err, io.EOF) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Load reads and parses a YAML file
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Marshal encodes cfg as YAML
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate checks every field and reports all problems at once
func (c Config) Validate() error {
	var errs []error

	if c.Width <= 0 || c.Height <= 0 || c.Width > maxGridDim || c.Height > maxGridDim {
		errs = append(errs, fmt.Errorf("grid %dx%d out of range 1..%d", c.Width, c.Height, maxGridDim))
	}
	if _, err := render.NewRamp(c.Ramp); err != nil {
		errs = append(errs, fmt.Errorf("ramp: %w", err))
	}
	if _, err := render.ParseMode(c.Color); err != nil {
		errs = append(errs, fmt.Errorf("color: %w", err))
	}
	if c.QueueSize <= 0 {
		errs = append(errs, fmt.Errorf("queue_size %d must be positive", c.QueueSize))
	}
	if _, err := input.ParseOverflowPolicy(c.Overflow); err != nil {
		errs = append(errs, fmt.Errorf("overflow: %w", err))
	}
	if _, err := input.ParseKeyNames(c.HoldKeys); err != nil {
		errs = append(errs, fmt.Errorf("hold_keys: %w", err))
	}
	if c.HoldFrames <= 0 {
		errs = append(errs, fmt.Errorf("hold_frames %d must be positive", c.HoldFrames))
	}
	if c.FPS <= 0 || c.FPS > 1000 {
		errs = append(errs, fmt.Errorf("fps %d out of range 1..1000", c.FPS))
	}
	if c.Backend != BackendANSI && c.Backend != BackendTcell {
		errs = append(errs, fmt.Errorf("backend %q must be %q or %q", c.Backend, BackendANSI, BackendTcell))
	}

	return errors.Join(errs...)
}

// FrameInterval returns the host tick period
func (c Config) FrameInterval() time.Duration {
	if c.FPS <= 0 {
		return parameter.FrameInterval
	}
	return time.Second / time.Duration(c.FPS)
}

// RenderOptions converts the renderer fields; cfg must be valid
func (c Config) RenderOptions() (render.Options, error) {
	ramp, err := render.NewRamp(c.Ramp)
	if err != nil {
		return render.Options{}, err
	}
	mode, err := render.ParseMode(c.Color)
	if err != nil {
		return render.Options{}, err
	}
	return render.Options{
		Width:      c.Width,
		Height:     c.Height,
		Ramp:       ramp,
		Mode:       mode,
		Home:       c.Home,
		ClearFirst: c.ClearFirst,
	}, nil
}

// KeyboardConfig converts the queue fields; cfg must be valid
func (c Config) KeyboardConfig() (input.KeyboardConfig, error) {
	policy, err := input.ParseOverflowPolicy(c.Overflow)
	if err != nil {
		return input.KeyboardConfig{}, err
	}
	holdKeys, err := input.ParseKeyNames(c.HoldKeys)
	if err != nil {
		return input.KeyboardConfig{}, err
	}
	return input.KeyboardConfig{
		QueueSize:  c.QueueSize,
		Overflow:   policy,
		HoldKeys:   holdKeys,
		HoldFrames: c.HoldFrames,
		TapRelease: c.TapRelease,
	}, nil
}
