//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package terminal

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// pollTimeoutMs bounds each blocking poll so Read notices stop and can flush a lone ESC
const pollTimeoutMs = 100

// ttyBackend drives a termios terminal on stdin/stdout
type ttyBackend struct {
	out   *os.File
	inFd  int
	outFd int
	saved *term.State
	buf   [256]byte
}

func newBackend() Backend {
	return &ttyBackend{
		out:   os.Stdout,
		inFd:  int(os.Stdin.Fd()),
		outFd: int(os.Stdout.Fd()),
	}
}

// Init enters raw input mode while leaving output post-processing on
func (b *ttyBackend) Init() error {
	if !term.IsTerminal(b.inFd) {
		return ErrNotTerminal
	}
	saved, err := term.MakeRaw(b.inFd)
	if err != nil {
		return err
	}
	b.saved = saved
	setOutputProcessing(b.inFd, false)
	return nil
}

func (b *ttyBackend) Fini() {
	if b.saved == nil {
		return
	}
	term.Restore(b.inFd, b.saved)
	b.saved = nil
}

func (b *ttyBackend) Size() (int, int) {
	if ws, err := unix.IoctlGetWinsize(b.outFd, unix.TIOCGWINSZ); err == nil && ws.Col > 0 {
		return int(ws.Col), int(ws.Row)
	}
	return 80, 24
}

func (b *ttyBackend) Write(p []byte) (int, error) {
	return b.out.Write(p)
}

// Read returns a fresh copy of the next input chunk
// An empty non-nil slice marks a poll timeout; nil, nil marks stop or EOF
func (b *ttyBackend) Read(stopCh <-chan struct{}) ([]byte, error) {
	fds := []unix.PollFd{{Fd: int32(b.inFd), Events: unix.POLLIN}}
	for {
		select {
		case <-stopCh:
			return nil, nil
		default:
		}

		ready, err := unix.Poll(fds, pollTimeoutMs)
		switch {
		case errors.Is(err, unix.EINTR):
			continue
		case err != nil:
			return nil, err
		case ready == 0:
			return []byte{}, nil
		}

		n, err := unix.Read(b.inFd, b.buf[:])
		switch {
		case errors.Is(err, unix.EINTR), errors.Is(err, unix.EAGAIN):
			continue
		case err != nil:
			return nil, err
		case n == 0:
			return nil, nil
		}
		return append([]byte(nil), b.buf[:n]...), nil
	}
}

// setOutputProcessing turns OPOST|ONLCR back on so '\n' also returns the carriage
// With cooked set, line editing, echo and signals are restored as well
func setOutputProcessing(fd int, cooked bool) {
	t, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return
	}
	t.Oflag |= unix.OPOST | unix.ONLCR
	if cooked {
		t.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
		t.Iflag |= unix.ICRNL
	}
	unix.IoctlSetTermios(fd, ioctlSetTermios, t)
}
