package render

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/frameterm/parameter"
)

var (
	// ErrEmptyRamp is returned for a ramp with no glyphs
	ErrEmptyRamp = errors.New("glyph ramp is empty")

	// ErrRampTooLong is returned when the ramp has more entries than distinct brightness values
	ErrRampTooLong = errors.New("glyph ramp longer than brightness range")

	// ErrRampNotASCII is returned when a glyph is not a single printable ASCII byte
	ErrRampNotASCII = errors.New("glyph ramp must be printable ASCII")
)

// maxBrightness is R+G+B for pure white
const maxBrightness = 3 * 255

// Ramp is an ordered glyph sequence from sparsest to densest
type Ramp struct {
	glyphs []byte
}

// NewRamp validates and builds a ramp
// Every glyph is one byte so output buffer sizing stays exact
func NewRamp(glyphs string) (Ramp, error) {
	if len(glyphs) == 0 {
		return Ramp{}, ErrEmptyRamp
	}
	// index = b*len/divisor stays below len only while len <= divisor
	if len(glyphs) > parameter.BrightnessDivisor {
		return Ramp{}, fmt.Errorf("%w: %d entries", ErrRampTooLong, len(glyphs))
	}
	for i := 0; i < len(glyphs); i++ {
		if glyphs[i] < 0x20 || glyphs[i] > 0x7e {
			return Ramp{}, fmt.Errorf("%w: byte 0x%02x at %d", ErrRampNotASCII, glyphs[i], i)
		}
	}
	return Ramp{glyphs: []byte(glyphs)}, nil
}

// DefaultRamp returns the 70-entry ramp
func DefaultRamp() Ramp {
	return Ramp{glyphs: []byte(parameter.GlyphRamp)}
}

// Len returns the number of glyphs
func (r Ramp) Len() int {
	return len(r.glyphs)
}

// String returns the glyphs in order
func (r Ramp) String() string {
	return string(r.glyphs)
}

// Index maps a brightness in [0, 765] to a ramp index in [0, Len)
// Out-of-range brightness is clamped
func (r Ramp) Index(brightness int) int {
	if brightness < 0 {
		brightness = 0
	} else if brightness > maxBrightness {
		brightness = maxBrightness
	}
	return brightness * len(r.glyphs) / parameter.BrightnessDivisor
}

// Glyph returns the glyph for a pixel
func (r Ramp) Glyph(p Pixel) byte {
	return r.glyphs[p.Brightness()*len(r.glyphs)/parameter.BrightnessDivisor]
}
