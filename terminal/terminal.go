package terminal

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

// Terminal provides low-level terminal access for a frame sink and a key source
type Terminal interface {
	io.Writer

	// Init enters raw mode, alternate screen buffer, hides cursor
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions
	Size() (width, height int)

	// ColorMode returns detected color capability
	ColorMode() ColorMode

	// Events returns the key event channel, valid after Init
	Events() <-chan Event

	// DroppedEvents counts events discarded because the channel was full
	DroppedEvents() uint64
}

// termImpl implements Terminal using the Backend interface
type termImpl struct {
	backend   Backend
	colorMode ColorMode
	input     *inputReader

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// New creates a new Terminal instance on stdin/stdout
func New(colorMode ...ColorMode) Terminal {
	return newTerminal(newBackend(), colorMode...)
}

func newTerminal(b Backend, colorMode ...ColorMode) *termImpl {
	c := DetectColorMode()
	if len(colorMode) > 0 {
		c = colorMode[0]
	}
	return &termImpl{
		backend:   b,
		colorMode: c,
		input:     newInputReader(b),
	}
}

// Init enters raw mode and sets up terminal
func (t *termImpl) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	if err := t.backend.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}

	// Enter alternate screen, hide cursor, no auto-wrap, clear
	t.backend.Write(csiAltScreenEnter)
	t.backend.Write(csiCursorHide)
	t.backend.Write(csiAutoWrapOff)
	t.backend.Write(csiClear)

	t.input.start()

	t.initialized = true
	return nil
}

// Fini restores terminal state
func (t *termImpl) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	t.input.stop()

	t.backend.Write(csiSGR0)
	t.backend.Write(csiCursorShow)
	t.backend.Write(csiAltScreenExit)
	// Re-enable Auto-Wrap AFTER exiting alt screen to ensure the main buffer has wrap enabled
	t.backend.Write(csiAutoWrapOn)

	t.backend.Fini()

	t.finalized = true
}

// Write hands a complete frame to the terminal in one call
func (t *termImpl) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.finalized {
		return 0, io.ErrClosedPipe
	}
	return t.backend.Write(p)
}

func (t *termImpl) Size() (int, int) {
	return t.backend.Size()
}

func (t *termImpl) ColorMode() ColorMode {
	return t.colorMode
}

func (t *termImpl) Events() <-chan Event {
	return t.input.events()
}

func (t *termImpl) DroppedEvents() uint64 {
	return t.input.dropped.Load()
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}

// crashGuard restores the terminal and exits if the calling goroutine panics
// Must be deferred directly
func crashGuard(name string) {
	if r := recover(); r != nil {
		EmergencyReset(os.Stdout)
		// Use \r\n for raw mode compatibility to avoid zig-zag output
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31m%s CRASHED: %v\x1b[0m\r\n", name, r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	}
}
