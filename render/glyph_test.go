package render

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/lixenwraith/frameterm/terminal"
)

// recordingSink captures each Write call separately
type recordingSink struct {
	writes [][]byte
}

func (s *recordingSink) Write(p []byte) (int, error) {
	s.writes = append(s.writes, append([]byte(nil), p...))
	return len(p), nil
}

type failingSink struct{ err error }

func (s failingSink) Write([]byte) (int, error) { return 0, s.err }

type shortSink struct{}

func (shortSink) Write(p []byte) (int, error) { return len(p) / 2, nil }

func smallOptions(w, h int) Options {
	opts := DefaultOptions()
	opts.Width = w
	opts.Height = h
	return opts
}

func TestGlyphRendererBlackFrame(t *testing.T) {
	sink := &recordingSink{}
	r, err := New(DefaultOptions(), sink)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	pb := NewPixelBuffer(160, 100)
	if err := r.Render(pb); err != nil {
		t.Fatalf("Render: %v", err)
	}

	if len(sink.writes) != 1 {
		t.Fatalf("got %d writes, want exactly 1 per frame", len(sink.writes))
	}

	lines := strings.Split(string(sink.writes[0]), "\n")
	// Trailing newline leaves one empty element
	if len(lines) != 101 || lines[100] != "" {
		t.Fatalf("got %d segments, want 100 lines plus trailing newline", len(lines))
	}
	want := strings.Repeat(" ", 320)
	for i, line := range lines[:100] {
		if line != want {
			t.Fatalf("line %d: got %q", i, line)
		}
	}
}

func TestGlyphRendererCounts(t *testing.T) {
	const w, h = 7, 5
	r := NewGlyphRenderer(smallOptions(w, h), io.Discard)

	pb := NewPixelBuffer(w, h)
	for i := range pb.Pix {
		v := uint8(i * 7)
		pb.Pix[i] = Pixel{R: v, G: v, B: v}
	}

	out := r.AppendFrame(nil, pb)
	if n := bytes.Count(out, []byte{'\n'}); n != h {
		t.Errorf("got %d newlines, want %d", n, h)
	}
	if glyphs := len(out) - h; glyphs != 2*w*h {
		t.Errorf("got %d glyphs, want %d", glyphs, 2*w*h)
	}
}

func TestGlyphRendererRowMajorOrder(t *testing.T) {
	r := NewGlyphRenderer(smallOptions(3, 2), io.Discard)
	pb := NewPixelBuffer(3, 2)
	white := Pixel{R: 255, G: 255, B: 255}
	pb.Set(1, 0, white)
	pb.Set(2, 1, white)

	got := string(r.AppendFrame(nil, pb))
	want := "  $$  \n    $$\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestGlyphRendererReusesBuffer(t *testing.T) {
	sink := &recordingSink{}
	r := NewGlyphRenderer(DefaultOptions(), sink)
	capBefore := cap(r.buf)

	pb := NewPixelBuffer(160, 100)
	for i := 0; i < 3; i++ {
		if err := r.Render(pb); err != nil {
			t.Fatalf("Render %d: %v", i, err)
		}
		if len(r.buf) != 0 {
			t.Fatalf("buffer not cleared after flush, len=%d", len(r.buf))
		}
	}
	if cap(r.buf) != capBefore {
		t.Errorf("buffer reallocated: cap %d -> %d", capBefore, cap(r.buf))
	}
	if r.Frames() != 3 {
		t.Errorf("Frames() = %d, want 3", r.Frames())
	}
	if !bytes.Equal(sink.writes[0], sink.writes[2]) {
		t.Error("identical input produced different frames")
	}
}

func TestGlyphRendererPrefix(t *testing.T) {
	opts := smallOptions(1, 1)
	opts.Home = true
	opts.ClearFirst = true
	sink := &recordingSink{}
	r := NewGlyphRenderer(opts, sink)
	pb := NewPixelBuffer(1, 1)

	r.Render(pb)
	r.Render(pb)

	if got := string(sink.writes[0]); got != terminal.SeqClear+terminal.SeqHome+"  \n" {
		t.Errorf("first frame %q", got)
	}
	if got := string(sink.writes[1]); got != terminal.SeqHome+"  \n" {
		t.Errorf("second frame %q", got)
	}
}

func TestRenderFlushErrorIsFatal(t *testing.T) {
	cause := errors.New("broken pipe")
	r := NewGlyphRenderer(smallOptions(2, 2), failingSink{err: cause})

	err := r.Render(NewPixelBuffer(2, 2))
	var fe *FlushError
	if !errors.As(err, &fe) {
		t.Fatalf("got %v, want *FlushError", err)
	}
	if !errors.Is(err, cause) {
		t.Error("FlushError does not wrap the sink error")
	}
	if fe.Frame != 0 || fe.Bytes != 10 {
		t.Errorf("FlushError frame=%d bytes=%d, want 0/10", fe.Frame, fe.Bytes)
	}
	if len(r.buf) != 0 {
		t.Error("buffer not cleared after failed flush")
	}
}

func TestRenderShortWrite(t *testing.T) {
	r := NewGlyphRenderer(smallOptions(2, 2), shortSink{})
	if err := r.Render(NewPixelBuffer(2, 2)); !errors.Is(err, io.ErrShortWrite) {
		t.Errorf("got %v, want io.ErrShortWrite", err)
	}
}

func TestRenderDimensionMismatch(t *testing.T) {
	sink := &recordingSink{}
	r := NewGlyphRenderer(smallOptions(4, 4), sink)

	for _, pb := range []*PixelBuffer{nil, NewPixelBuffer(4, 3), {Width: 4, Height: 4, Pix: make([]Pixel, 3)}} {
		if err := r.Render(pb); !errors.Is(err, ErrDimensionMismatch) {
			t.Errorf("got %v, want ErrDimensionMismatch", err)
		}
	}
	if len(sink.writes) != 0 {
		t.Error("mismatched frame was written")
	}
}

func TestNewRejectsInvalidOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.Width = 0
	if _, err := New(opts, io.Discard); err == nil {
		t.Error("zero width accepted")
	}

	opts = DefaultOptions()
	opts.Ramp = Ramp{}
	if _, err := New(opts, io.Discard); !errors.Is(err, ErrEmptyRamp) {
		t.Errorf("got %v, want ErrEmptyRamp", err)
	}

	if _, err := New(DefaultOptions(), nil); err == nil {
		t.Error("nil sink accepted")
	}
}

func TestBufferSize(t *testing.T) {
	if got := BufferSize(160, 100); got != 21*160*100+100+4 {
		t.Errorf("BufferSize(160,100) = %d", got)
	}
}
