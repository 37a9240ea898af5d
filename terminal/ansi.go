package terminal

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	csiClear = []byte("\x1b[2J\x1b[H")
	csiRIS   = []byte("\x1bc") // Reset to Initial State (emergency)
	csiSGR0  = []byte("\x1b[0m")

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	// Screen modes
	csiAltScreenEnter = []byte("\x1b[?1049h")
	csiAltScreenExit  = []byte("\x1b[?1049l")
	// DECAWM: Auto-Wrap Mode
	// ?7l disables wrapping (cursor sticks at right edge), preventing scroll when writing to bottom-right corner
	csiAutoWrapOn  = []byte("\x1b[?7h")
	csiAutoWrapOff = []byte("\x1b[?7l")

	// Color prefixes
	csiFg256 = []byte("\x1b[38;5;") // followed by N m
	csiFgRGB = []byte("\x1b[38;2;") // followed by R;G;B m
)

// Exported sequences for frame producers
const (
	// SeqHome moves the cursor to the top-left corner
	SeqHome = "\x1b[H"
	// SeqClear clears the screen and homes the cursor
	SeqClear = "\x1b[2J\x1b[H"
	// SeqReset restores default attributes
	SeqReset = "\x1b[0m"
)

// AppendInt appends a non-negative integer without allocation
// Optimized for terminal values (0-255 common, 0-999 typical max)
func AppendInt(dst []byte, n int) []byte {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		return append(dst, byte(n)+'0')
	}
	if n < 100 {
		return append(dst, byte(n/10)+'0', byte(n%10)+'0')
	}
	if n < 1000 {
		return append(dst, byte(n/100)+'0', byte(n/10%10)+'0', byte(n%10)+'0')
	}
	// Fallback for >999 (rare)
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte(n%10) + '0'
		n /= 10
	}
	return append(dst, buf[i:]...)
}

// AppendByte3 appends a byte value as exactly three decimal digits (zero padded)
// Fixed width keeps the worst-case escape length constant
func AppendByte3(dst []byte, b uint8) []byte {
	return append(dst, '0'+b/100, '0'+b/10%10, '0'+b%10)
}

// AppendFgRGB appends a 24-bit foreground SGR with zero-padded components (always 19 bytes)
func AppendFgRGB(dst []byte, c RGB) []byte {
	dst = append(dst, csiFgRGB...)
	dst = AppendByte3(dst, c.R)
	dst = append(dst, ';')
	dst = AppendByte3(dst, c.G)
	dst = append(dst, ';')
	dst = AppendByte3(dst, c.B)
	return append(dst, 'm')
}

// AppendFg256 appends a 256-color foreground SGR for the nearest palette entry
func AppendFg256(dst []byte, c RGB) []byte {
	dst = append(dst, csiFg256...)
	dst = AppendInt(dst, int(RGBTo256(c)))
	return append(dst, 'm')
}
