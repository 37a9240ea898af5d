package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/lixenwraith/frameterm/parameter"
)

func TestDefaultRampLength(t *testing.T) {
	r := DefaultRamp()
	if r.Len() != 70 {
		t.Fatalf("default ramp length %d, want 70", r.Len())
	}
	if r.String()[0] != ' ' || r.String()[69] != '$' {
		t.Errorf("unexpected ramp endpoints %q ... %q", r.String()[0], r.String()[69])
	}
}

func TestRampIndexBounds(t *testing.T) {
	for _, length := range []int{1, 2, 10, 70, 255, parameter.BrightnessDivisor} {
		r, err := NewRamp(strings.Repeat("#", length))
		if err != nil {
			t.Fatalf("NewRamp(len=%d): %v", length, err)
		}
		for b := 0; b <= 765; b++ {
			idx := r.Index(b)
			if idx < 0 || idx >= length {
				t.Fatalf("len=%d brightness=%d: index %d out of range", length, b, idx)
			}
		}
		if r.Index(0) != 0 {
			t.Errorf("len=%d: Index(0) = %d, want 0", length, r.Index(0))
		}
		if r.Index(765) != length-1 {
			t.Errorf("len=%d: Index(765) = %d, want %d", length, r.Index(765), length-1)
		}
	}
}

func TestRampIndexMonotonic(t *testing.T) {
	r := DefaultRamp()
	prev := 0
	for b := 0; b <= 765; b++ {
		idx := r.Index(b)
		if idx < prev {
			t.Fatalf("index decreased at brightness %d: %d < %d", b, idx, prev)
		}
		prev = idx
	}
}

func TestRampIndexClamps(t *testing.T) {
	r := DefaultRamp()
	if r.Index(-10) != 0 {
		t.Errorf("negative brightness not clamped")
	}
	if r.Index(10000) != 69 {
		t.Errorf("overflow brightness not clamped")
	}
}

func TestRampGlyph(t *testing.T) {
	r := DefaultRamp()
	tests := []struct {
		p    Pixel
		want byte
	}{
		{Pixel{}, ' '},
		{Pixel{R: 255, G: 255, B: 255}, '$'},
		{Pixel{R: 255, G: 255, B: 255, A: 0xff}, '$'},
		{Pixel{R: 255}, r.String()[255*70/766]},
	}
	for _, tt := range tests {
		if got := r.Glyph(tt.p); got != tt.want {
			t.Errorf("Glyph(%+v) = %q, want %q", tt.p, got, tt.want)
		}
	}
}

func TestNewRampErrors(t *testing.T) {
	tests := []struct {
		name   string
		glyphs string
		want   error
	}{
		{"empty", "", ErrEmptyRamp},
		{"too long", strings.Repeat(".", parameter.BrightnessDivisor+1), ErrRampTooLong},
		{"control byte", " .\n#", ErrRampNotASCII},
		{"multibyte", " ░▒▓█", ErrRampNotASCII},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewRamp(tt.glyphs); !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestPixelXRGBRoundTrip(t *testing.T) {
	p := PixelFromXRGB(0x80112233)
	if p.R != 0x11 || p.G != 0x22 || p.B != 0x33 || p.A != 0x80 {
		t.Fatalf("unpacked %+v", p)
	}
	if p.XRGB() != 0x80112233 {
		t.Errorf("repacked %08x", p.XRGB())
	}
	if p.Brightness() != 0x11+0x22+0x33 {
		t.Errorf("brightness %d", p.Brightness())
	}
}
