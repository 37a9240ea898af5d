// Command frameterm drives a pixel source through the glyph renderer and key event queue
//
//	frameterm -pattern plasma -color truecolor
//	frameterm -backend tcell -image photo.png -click
//	frameterm -config frameterm.yaml -log /tmp/frameterm.log
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/frameterm/audio"
	"github.com/lixenwraith/frameterm/config"
	"github.com/lixenwraith/frameterm/host"
	"github.com/lixenwraith/frameterm/input"
	"github.com/lixenwraith/frameterm/pattern"
	"github.com/lixenwraith/frameterm/render"
	"github.com/lixenwraith/frameterm/terminal"
)

func main() {
	// Panic Recovery: restore the terminal before printing anything
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mFRAMETERM CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	cfg, err := config.Resolve(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "frameterm: %v\n", err)
		os.Exit(2)
	}

	logger, closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "frameterm: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("fatal", "error", err)
		fmt.Fprintf(os.Stderr, "frameterm: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

// run wires the configured backend, source, and keyboard into a host
func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	opts, err := cfg.RenderOptions()
	if err != nil {
		return err
	}
	opts.Logger = logger

	kbCfg, err := cfg.KeyboardConfig()
	if err != nil {
		return err
	}
	kbCfg.Logger = logger
	kb := input.NewKeyboard(kbCfg)

	base, err := loadSource(cfg)
	if err != nil {
		return err
	}
	marker := pattern.NewMarker(base, 4, cfg.Width, cfg.Height)
	d := &demo{marker: marker}

	if cfg.Click {
		clicker := audio.NewClicker(audio.DefaultClickConfig(), logger)
		if err := clicker.Init(); err == nil {
			d.clicker = clicker
			defer clicker.Close()
		}
	}

	var (
		renderer render.Renderer
		pump     host.Pump
	)

	switch cfg.Backend {
	case config.BackendTcell:
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("create screen: %w", err)
		}
		if err := screen.Init(); err != nil {
			return fmt.Errorf("init screen: %w", err)
		}
		defer screen.Fini()
		screen.HideCursor()

		sr, err := render.NewScreenRenderer(opts, screen)
		if err != nil {
			return err
		}
		renderer = sr
		pump = input.NewScreenSource(screen, kb, nil, logger)

	default:
		term := terminal.New(terminal.DetectColorMode())
		if err := term.Init(); err != nil {
			return fmt.Errorf("init terminal: %w", err)
		}
		defer term.Fini()
		defer func() {
			if n := term.DroppedEvents(); n > 0 {
				logger.Warn("terminal input overflow", "dropped_events", n)
			}
		}()

		if w, h := term.Size(); w < cfg.Width*2 || h < cfg.Height {
			logger.Warn("terminal smaller than frame, output will wrap",
				"cols", w, "rows", h,
				"need_cols", cfg.Width*2, "need_rows", cfg.Height)
		}

		r, err := render.New(opts, term)
		if err != nil {
			return err
		}
		renderer = r
		pump = input.NewTerminalSource(term.Events(), kb, nil, logger)
	}

	h, err := host.New(host.Options{
		Renderer: renderer,
		Source:   marker,
		Keyboard: kb,
		Input:    pump,
		Handler:  d.handle,
		Width:    cfg.Width,
		Height:   cfg.Height,
		Interval: cfg.FrameInterval(),
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	logger.Info("starting",
		"backend", cfg.Backend,
		"grid", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"mode", opts.Mode.String(),
		"fps", cfg.FPS)

	err = h.Run(ctx)
	var fe *render.FlushError
	if errors.As(err, &fe) {
		return fmt.Errorf("output failed: %w", err)
	}
	return err
}

// loadSource returns the image when configured, otherwise the named pattern
func loadSource(cfg config.Config) (pattern.Source, error) {
	if cfg.Image != "" {
		return pattern.Load(cfg.Image, cfg.Width, cfg.Height)
	}
	return pattern.ByName(cfg.Pattern)
}
