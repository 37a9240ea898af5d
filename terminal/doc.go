// Package terminal provides direct ANSI terminal control for frame output and key input.
//
// Features:
//   - Raw mode, alternate screen and hidden cursor for the lifetime of a session
//   - Terminal implements io.Writer so a whole frame is handed over in one write
//   - Raw stdin parsing into press-only key events (terminals never report key-up)
//   - True color (24-bit) and 256-color palette helpers
//   - Clean terminal restoration on exit/panic
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
