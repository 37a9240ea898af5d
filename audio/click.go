package audio

import (
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/frameterm/input"
	"github.com/lixenwraith/frameterm/parameter"
)

// ClickConfig configures key-click feedback
type ClickConfig struct {
	SampleRate int
	PressHz    float64
	ReleaseHz  float64
	Duration   time.Duration
	Volume     float64 // Linear gain in (0, 1]; 0 mutes
	SpeakerBuf time.Duration
}

// DefaultClickConfig returns short 880/440 Hz blips
func DefaultClickConfig() ClickConfig {
	return ClickConfig{
		SampleRate: parameter.ClickSampleRate,
		PressHz:    parameter.ClickPressHz,
		ReleaseHz:  parameter.ClickReleaseHz,
		Duration:   parameter.ClickDurationMs * time.Millisecond,
		Volume:     0.25,
		SpeakerBuf: parameter.ClickBufferMs * time.Millisecond,
	}
}

// Clicker plays a short tone for every key event
// All methods are safe without a working audio device; they become no-ops
type Clicker struct {
	mu      sync.Mutex
	cfg     ClickConfig
	rate    beep.SampleRate
	mixer   *beep.Mixer
	active  bool // Mixer is being consumed
	speaker bool // Mixer is attached to the speaker
	muted   bool
	logger  *slog.Logger
}

// NewClicker creates an inactive clicker; call Init to open the speaker
func NewClicker(cfg ClickConfig, logger *slog.Logger) *Clicker {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = parameter.ClickSampleRate
	}
	return &Clicker{
		cfg:    cfg,
		rate:   beep.SampleRate(cfg.SampleRate),
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Init opens the speaker and starts streaming the mixer
// A failure is returned for logging; the clicker stays usable as a no-op
func (c *Clicker) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active {
		return nil
	}
	if err := speaker.Init(c.rate, c.rate.N(c.cfg.SpeakerBuf)); err != nil {
		c.logger.Warn("audio unavailable, clicks disabled", "error", err)
		return err
	}
	speaker.Play(c.mixer)
	c.active = true
	c.speaker = true
	return nil
}

// Close stops playback and releases the speaker
func (c *Clicker) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.active {
		return
	}
	if c.speaker {
		speaker.Lock()
		c.mixer.Clear()
		speaker.Unlock()
		speaker.Close()
	} else {
		c.mixer.Clear()
	}
	c.active = false
	c.speaker = false
}

// SetMuted toggles output without closing the device
func (c *Clicker) SetMuted(muted bool) {
	c.mu.Lock()
	c.muted = muted
	c.mu.Unlock()
}

// Muted reports the mute state
func (c *Clicker) Muted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.muted
}

// Click queues the tone for ev: PressHz on press, ReleaseHz on release
func (c *Clicker) Click(ev input.KeyEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.active || c.muted || c.cfg.Volume <= 0 {
		return
	}

	freq := c.cfg.ReleaseHz
	if ev.Pressed {
		freq = c.cfg.PressHz
	}
	tone, err := c.tone(freq)
	if err != nil {
		c.logger.Debug("click tone", "freq", freq, "error", err)
		return
	}

	if c.speaker {
		speaker.Lock()
		c.mixer.Add(tone)
		speaker.Unlock()
		return
	}
	c.mixer.Add(tone)
}

// tone builds a faded, volume-scaled sine blip of the configured duration
func (c *Clicker) tone(freq float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(c.rate, freq)
	if err != nil {
		return nil, err
	}
	n := c.rate.N(c.cfg.Duration)
	shaped := &fadeOut{streamer: beep.Take(n, sine), total: n}
	return &effects.Volume{
		Streamer: shaped,
		Base:     2,
		Volume:   math.Log2(c.cfg.Volume),
	}, nil
}

// Pending returns the number of tones still playing
func (c *Clicker) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.speaker {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return c.mixer.Len()
}

// fadeOut applies a linear decay so blips end without a pop
type fadeOut struct {
	streamer beep.Streamer
	pos      int
	total    int
}

func (f *fadeOut) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1 - float64(f.pos)/float64(f.total)
		if gain < 0 {
			gain = 0
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		f.pos++
	}
	return n, ok
}

func (f *fadeOut) Err() error {
	return f.streamer.Err()
}
