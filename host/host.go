package host

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/frameterm/input"
	"github.com/lixenwraith/frameterm/parameter"
	"github.com/lixenwraith/frameterm/pattern"
	"github.com/lixenwraith/frameterm/render"
	"github.com/lixenwraith/frameterm/status"
)

// Pump delivers input until ctx ends; returning input.ErrQuit stops the host cleanly
type Pump interface {
	Run(ctx context.Context) error
}

// Handler consumes drained key events on the frame goroutine
type Handler func(ev input.KeyEvent)

// Options configures a Host
type Options struct {
	Renderer render.Renderer
	Source   pattern.Source
	Keyboard *input.Keyboard
	Input    Pump    // Optional
	Handler  Handler // Optional
	Width    int
	Height   int
	Interval time.Duration // <= 0 selects the classic 35 Hz
	Logger   *slog.Logger
	Status   *status.Registry // Optional; a private registry is used when nil
}

// Host drives the frame loop: drain input, fill pixels, render, tick holds
type Host struct {
	renderer render.Renderer
	source   pattern.Source
	kb       *input.Keyboard
	pump     Pump
	handler  Handler
	pb       *render.PixelBuffer
	interval time.Duration
	logger   *slog.Logger
	frame    uint64

	status   *status.Registry
	frames   *atomic.Int64
	drained  *atomic.Int64
	dropped  *atomic.Int64
	depth    *atomic.Int64
	renderMs *status.AtomicFloat
}

// renderAlpha weights the render time moving average
const renderAlpha = 0.1

// New validates opts and allocates the pixel buffer
func New(opts Options) (*Host, error) {
	if opts.Renderer == nil {
		return nil, errors.New("host: nil renderer")
	}
	if opts.Source == nil {
		return nil, errors.New("host: nil pixel source")
	}
	if opts.Keyboard == nil {
		return nil, errors.New("host: nil keyboard")
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("host: invalid grid %dx%d", opts.Width, opts.Height)
	}

	interval := opts.Interval
	if interval <= 0 {
		interval = parameter.FrameInterval
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	reg := opts.Status
	if reg == nil {
		reg = status.NewRegistry()
	}

	return &Host{
		renderer: opts.Renderer,
		source:   opts.Source,
		kb:       opts.Keyboard,
		pump:     opts.Input,
		handler:  opts.Handler,
		pb:       render.NewPixelBuffer(opts.Width, opts.Height),
		interval: interval,
		logger:   logger,
		status:   reg,
		frames:   reg.Ints.Metric(status.KeyFrames),
		drained:  reg.Ints.Metric(status.KeyDrained),
		dropped:  reg.Ints.Metric(status.KeyDropped),
		depth:    reg.Ints.Metric(status.KeyQueueDepth),
		renderMs: reg.Floats.Metric(status.KeyRenderMs),
	}, nil
}

// Frame produces and presents one frame, then advances the hold counters
// A render error is fatal and is returned before the tick
func (h *Host) Frame() error {
	h.source.Next(h.frame, h.pb)
	start := time.Now()
	if err := h.renderer.Render(h.pb); err != nil {
		return err
	}
	h.renderMs.Smooth(float64(time.Since(start).Microseconds())/1000, renderAlpha)
	h.kb.Tick()
	h.frame++
	h.frames.Store(int64(h.frame))
	return nil
}

// Poll drains pending key events into the handler
func (h *Host) Poll() int {
	n := h.kb.Drain(func(ev input.KeyEvent) {
		if h.handler != nil {
			h.handler(ev)
		}
	})
	h.drained.Add(int64(n))
	h.dropped.Store(int64(h.kb.Dropped()))
	h.depth.Store(int64(h.kb.Len()))
	return n
}

// Frames returns the number of frames presented
func (h *Host) Frames() uint64 {
	return h.frame
}

// Status returns the registry the host reports into
func (h *Host) Status() *status.Registry {
	return h.status
}

// Run paces frames until ctx is cancelled, the input pump quits, or a render fails
// Cancellation and quit return nil; a render failure is returned as-is
func (h *Host) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	if h.pump != nil {
		g.Go(func() error {
			return h.pump.Run(gctx)
		})
	}

	g.Go(func() error {
		return h.loop(gctx)
	})

	err := g.Wait()
	h.dropped.Store(int64(h.kb.Dropped()))
	h.logger.Info("host stopped", "status", h.status, "error", err)

	switch {
	case err == nil, errors.Is(err, input.ErrQuit):
		return nil
	case errors.Is(err, context.Canceled) && ctx.Err() != nil:
		return nil
	}
	return err
}

func (h *Host) loop(ctx context.Context) error {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		h.Poll()
		if err := h.Frame(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
