package render

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/lixenwraith/frameterm/parameter"
	"github.com/lixenwraith/frameterm/terminal"
)

// ErrDimensionMismatch is returned when a pixel buffer does not match the configured grid
var ErrDimensionMismatch = errors.New("pixel buffer dimensions mismatch")

// FlushError reports a failed frame write to the output sink
// A partial frame cannot be resumed, callers treat it as fatal
type FlushError struct {
	Frame uint64 // Frame number that failed
	Bytes int    // Size of the frame that was being written
	Err   error  // Underlying sink error
}

func (e *FlushError) Error() string {
	return fmt.Sprintf("render flush of frame %d (%d bytes) failed: %v", e.Frame, e.Bytes, e.Err)
}

func (e *FlushError) Unwrap() error {
	return e.Err
}

// Renderer turns one pixel buffer into one presented frame
type Renderer interface {
	// Render presents the frame; any error is fatal to the host
	Render(pb *PixelBuffer) error
}

// FrameEncoder is implemented by renderers that produce a byte stream
type FrameEncoder interface {
	// AppendFrame appends the encoded frame to dst
	AppendFrame(dst []byte, pb *PixelBuffer) []byte
}

// Mode selects the renderer variant
type Mode uint8

const (
	ModeMono      Mode = iota // Glyphs only
	ModeTrueColor             // Glyphs with 24-bit foreground escapes
	ModeColor256              // Glyphs with 256-palette foreground escapes
)

// String returns the config name of the mode
func (m Mode) String() string {
	switch m {
	case ModeTrueColor:
		return "truecolor"
	case ModeColor256:
		return "256"
	default:
		return "mono"
	}
}

// ParseMode resolves a config name; "auto" picks a color mode from the environment
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "", "mono", "none":
		return ModeMono, nil
	case "truecolor", "true", "24bit":
		return ModeTrueColor, nil
	case "256":
		return ModeColor256, nil
	case "auto":
		if terminal.DetectColorMode() == terminal.ColorModeTrueColor {
			return ModeTrueColor, nil
		}
		return ModeColor256, nil
	}
	return ModeMono, fmt.Errorf("unknown color mode %q", s)
}

// Options configures a renderer
type Options struct {
	Width  int
	Height int
	Ramp   Ramp
	Mode   Mode

	// Home prefixes every frame with cursor-home so frames overwrite in place
	Home bool

	// ClearFirst clears the screen before the first frame
	ClearFirst bool

	// Logger receives flush diagnostics; nil discards
	Logger *slog.Logger
}

// DefaultOptions returns the fixed 160x100 mono configuration
func DefaultOptions() Options {
	return Options{
		Width:  parameter.GridWidth,
		Height: parameter.GridHeight,
		Ramp:   DefaultRamp(),
		Mode:   ModeMono,
	}
}

func (o Options) validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("invalid grid %dx%d", o.Width, o.Height)
	}
	if o.Ramp.Len() == 0 {
		return ErrEmptyRamp
	}
	return nil
}

// BufferSize returns the worst-case encoded frame size:
// a color escape plus repeated glyph per pixel, one newline per row, one trailing reset
func BufferSize(width, height int) int {
	return parameter.MaxBytesPerPixel*width*height + height + len(parameter.ResetSequence)
}

// maxPrefixLen covers the first-frame clear followed by cursor-home
const maxPrefixLen = len(terminal.SeqClear) + len(terminal.SeqHome)

// New builds the byte-stream renderer selected by opts.Mode writing to sink
func New(opts Options, sink io.Writer) (Renderer, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if sink == nil {
		return nil, errors.New("nil output sink")
	}
	switch opts.Mode {
	case ModeMono:
		return NewGlyphRenderer(opts, sink), nil
	case ModeTrueColor, ModeColor256:
		return NewColorRenderer(opts, sink), nil
	}
	return nil, fmt.Errorf("unsupported mode %d", opts.Mode)
}

// frameWriter owns the reusable output buffer and the single-write flush
type frameWriter struct {
	sink       io.Writer
	buf        []byte
	width      int
	height     int
	home       bool
	clearFirst bool
	frame      uint64
	logger     *slog.Logger
}

func newFrameWriter(opts Options, sink io.Writer) frameWriter {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return frameWriter{
		sink:       sink,
		buf:        make([]byte, 0, BufferSize(opts.Width, opts.Height)+maxPrefixLen),
		width:      opts.Width,
		height:     opts.Height,
		home:       opts.Home,
		clearFirst: opts.ClearFirst,
		logger:     logger,
	}
}

// appendPrefix writes the per-frame cursor control
func (w *frameWriter) appendPrefix(dst []byte) []byte {
	if w.clearFirst && w.frame == 0 {
		dst = append(dst, terminal.SeqClear...)
	}
	if w.home {
		dst = append(dst, terminal.SeqHome...)
	}
	return dst
}

// present validates, encodes via enc, writes once, then truncates the buffer for reuse
func (w *frameWriter) present(pb *PixelBuffer, enc FrameEncoder) error {
	if err := pb.Validate(w.width, w.height); err != nil {
		return err
	}

	w.buf = w.appendPrefix(w.buf[:0])
	w.buf = enc.AppendFrame(w.buf, pb)

	n, err := w.sink.Write(w.buf)
	if err == nil && n < len(w.buf) {
		err = io.ErrShortWrite
	}
	size := len(w.buf)
	w.buf = w.buf[:0]
	w.frame++

	if err != nil {
		w.logger.Error("frame flush failed", "frame", w.frame-1, "bytes", size, "written", n, "error", err)
		return &FlushError{Frame: w.frame - 1, Bytes: size, Err: err}
	}
	return nil
}

// Frames returns the number of frames presented so far
func (w *frameWriter) Frames() uint64 {
	return w.frame
}
