//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package terminal

import (
	"errors"
	"os"
)

var errUnsupported = errors.New("raw terminal backend not supported on this platform")

type unsupportedBackend struct{}

func newBackend() Backend { return unsupportedBackend{} }

func (unsupportedBackend) Init() error                           { return errUnsupported }
func (unsupportedBackend) Fini()                                 {}
func (unsupportedBackend) Size() (int, int)                      { return 80, 24 }
func (unsupportedBackend) Write(p []byte) (int, error)           { return os.Stdout.Write(p) }
func (unsupportedBackend) Read(<-chan struct{}) ([]byte, error) { return nil, errUnsupported }
