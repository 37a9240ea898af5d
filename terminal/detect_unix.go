//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package terminal

import "os"

// resetTerminalMode forces cooked mode through /dev/tty, which works even with stdin redirected
// Crash path only; failures are ignored
func resetTerminalMode() {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return
	}
	defer tty.Close()
	setOutputProcessing(int(tty.Fd()), true)
}
