package config

import (
	"flag"
	"strings"
)

// flagApply copies one flag-backed field from src to dst
var flagApply = map[string]func(dst, src *Config){
	"width":       func(d, s *Config) { d.Width = s.Width },
	"height":      func(d, s *Config) { d.Height = s.Height },
	"ramp":        func(d, s *Config) { d.Ramp = s.Ramp },
	"color":       func(d, s *Config) { d.Color = s.Color },
	"home":        func(d, s *Config) { d.Home = s.Home },
	"clear-first": func(d, s *Config) { d.ClearFirst = s.ClearFirst },
	"queue-size":  func(d, s *Config) { d.QueueSize = s.QueueSize },
	"overflow":    func(d, s *Config) { d.Overflow = s.Overflow },
	"hold-keys":   func(d, s *Config) { d.HoldKeys = s.HoldKeys },
	"hold-frames": func(d, s *Config) { d.HoldFrames = s.HoldFrames },
	"tap-release": func(d, s *Config) { d.TapRelease = s.TapRelease },
	"fps":         func(d, s *Config) { d.FPS = s.FPS },
	"backend":     func(d, s *Config) { d.Backend = s.Backend },
	"pattern":     func(d, s *Config) { d.Pattern = s.Pattern },
	"image":       func(d, s *Config) { d.Image = s.Image },
	"click":       func(d, s *Config) { d.Click = s.Click },
	"log":         func(d, s *Config) { d.LogFile = s.LogFile },
}

// bindFlags registers one flag per field, writing into c
func (c *Config) bindFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "Pixel grid width")
	fs.IntVar(&c.Height, "height", c.Height, "Pixel grid height")
	fs.StringVar(&c.Ramp, "ramp", c.Ramp, "Glyph ramp, sparse to dense")
	fs.StringVar(&c.Color, "color", c.Color, "Color mode: mono, truecolor, 256, auto")
	fs.BoolVar(&c.Home, "home", c.Home, "Move cursor home before each frame")
	fs.BoolVar(&c.ClearFirst, "clear-first", c.ClearFirst, "Clear the screen before the first frame")
	fs.IntVar(&c.QueueSize, "queue-size", c.QueueSize, "Key queue capacity")
	fs.StringVar(&c.Overflow, "overflow", c.Overflow, "Queue overflow policy: overwrite, reject")
	fs.Func("hold-keys", "Comma-separated holdable key names (default fire,use,enter,left,right,up,down)", func(v string) error {
		c.HoldKeys = splitList(v)
		return nil
	})
	fs.IntVar(&c.HoldFrames, "hold-frames", c.HoldFrames, "Frames before a synthesized release")
	fs.BoolVar(&c.TapRelease, "tap-release", c.TapRelease, "Release non-holdable keys immediately")
	fs.IntVar(&c.FPS, "fps", c.FPS, "Frames per second")
	fs.StringVar(&c.Backend, "backend", c.Backend, "Output backend: ansi, tcell")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "Built-in pattern")
	fs.StringVar(&c.Image, "image", c.Image, "Image file to display instead of a pattern")
	fs.BoolVar(&c.Click, "click", c.Click, "Play a click for every key event")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "Log file path (empty disables logging)")
}

// Resolve parses args with fs: Default, then the -config file, then explicitly set flags
// The result is validated
func Resolve(fs *flag.FlagSet, args []string) (Config, error) {
	path := fs.String("config", "", "YAML config file")
	fromFlags := Default()
	fromFlags.bindFlags(fs)

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Default()
	if *path != "" {
		loaded, err := Load(*path)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		if apply, ok := flagApply[f.Name]; ok {
			apply(&cfg, &fromFlags)
		}
	})

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
