package input

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/frameterm/terminal"
)

// ErrQuit is returned by a source when the user asks to quit
var ErrQuit = errors.New("quit requested")

// dispatcher is the translation shared by both sources
type dispatcher struct {
	kb     *Keyboard
	table  *KeyTable
	logger *slog.Logger
}

func newDispatcher(kb *Keyboard, table *KeyTable, logger *slog.Logger) dispatcher {
	if table == nil {
		table = DefaultKeyTable()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return dispatcher{kb: kb, table: table, logger: logger}
}

// dispatch feeds one key event to the keyboard; returns ErrQuit on a quit key
func (d *dispatcher) dispatch(ev terminal.Event) error {
	if IsQuit(ev) {
		return ErrQuit
	}
	code, ok := d.table.Lookup(ev)
	if !ok {
		d.logger.Debug("unbound key", "key", ev.Key, "rune", ev.Rune, "mods", ev.Modifiers)
		return nil
	}
	// Overflow is recorded by the queue's drop counter, input keeps flowing
	if err := d.kb.Hit(code); err != nil {
		d.logger.Debug("key dropped", "code", KeyName(code), "error", err)
	}
	return nil
}

// TerminalSource feeds raw terminal key events into a Keyboard
type TerminalSource struct {
	dispatcher
	events <-chan terminal.Event
}

// NewTerminalSource reads from events; a nil table selects DefaultKeyTable
func NewTerminalSource(events <-chan terminal.Event, kb *Keyboard, table *KeyTable, logger *slog.Logger) *TerminalSource {
	return &TerminalSource{
		dispatcher: newDispatcher(kb, table, logger),
		events:     events,
	}
}

// Handle processes a single event
func (s *TerminalSource) Handle(ev terminal.Event) error {
	switch ev.Type {
	case terminal.EventKey:
		return s.dispatch(ev)
	case terminal.EventError:
		return fmt.Errorf("terminal input: %w", ev.Err)
	case terminal.EventClosed:
		return ErrQuit
	}
	return nil
}

// Run pumps events until ctx is done, the channel closes, or a quit key arrives
func (s *TerminalSource) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-s.events:
			if !ok {
				return ErrQuit
			}
			if err := s.Handle(ev); err != nil {
				return err
			}
		}
	}
}

// ScreenSource feeds tcell key events into a Keyboard
type ScreenSource struct {
	dispatcher
	screen tcell.Screen
}

// NewScreenSource reads from an initialized screen; a nil table selects DefaultKeyTable
func NewScreenSource(screen tcell.Screen, kb *Keyboard, table *KeyTable, logger *slog.Logger) *ScreenSource {
	return &ScreenSource{
		dispatcher: newDispatcher(kb, table, logger),
		screen:     screen,
	}
}

// Handle processes a single tcell event; non-key events are ignored
func (s *ScreenSource) Handle(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return s.dispatch(FromTcell(ev))
	case *tcell.EventError:
		return fmt.Errorf("screen input: %w", ev)
	}
	return nil
}

// Run pumps screen events until ctx is done or a quit key arrives
func (s *ScreenSource) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go s.screen.ChannelEvents(events, quit)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return ErrQuit
			}
			if err := s.Handle(ev); err != nil {
				return err
			}
		}
	}
}
