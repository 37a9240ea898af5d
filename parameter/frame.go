package parameter

import "time"

// Frame Geometry
const (
	// GridWidth is the pixel buffer width
	GridWidth = 160

	// GridHeight is the pixel buffer height
	GridHeight = 100

	// GlyphsPerPixel is the horizontal glyph repeat per pixel
	// Terminal cells are roughly twice as tall as wide, two glyphs approximate a square pixel
	GlyphsPerPixel = 2
)

// GlyphRamp orders glyphs from sparsest to densest appearance (70 entries)
const GlyphRamp = " .'`^\",:;Il!i><~+_-?][}{1)(|\\/tfjrxnuvczXYUJCLQ0OZmwqpdbkhao*#MW&8%B@$"

// BrightnessDivisor maps R+G+B (0-765) onto the ramp: index = brightness * len / BrightnessDivisor
// One above the maximum brightness so 765 lands on the last entry, never past it
const BrightnessDivisor = 3*255 + 1

// Output Buffer Sizing
const (
	// MaxSGRLen is the longest color escape: \x1b[38;2;RRR;GGG;BBBm
	MaxSGRLen = 19

	// MaxBytesPerPixel is one color escape plus the repeated glyph
	MaxBytesPerPixel = MaxSGRLen + GlyphsPerPixel

	// ResetSequence restores default attributes after a colored frame
	ResetSequence = "\x1b[0m"
)

// Frame Pacing
const (
	// FrameRate is the demo host refresh rate (classic 35 Hz)
	FrameRate = 35

	// FrameInterval is the demo host tick period
	FrameInterval = time.Second / FrameRate
)
