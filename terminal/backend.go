package terminal

import "errors"

// ErrNotTerminal is returned by Init when stdin is not an interactive terminal
var ErrNotTerminal = errors.New("stdin is not a terminal")

// Backend abstracts platform-specific terminal operations
type Backend interface {
	// Lifecycle
	Init() error
	Fini()

	// Capabilities
	Size() (width, height int)

	// I/O
	// Write writes raw bytes to the terminal output
	Write(p []byte) (int, error)

	// Read blocks until input is available, the stop channel is closed, or an error occurs
	Read(stopCh <-chan struct{}) ([]byte, error)
}
