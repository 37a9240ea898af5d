package render

import (
	"io"

	"github.com/lixenwraith/frameterm/parameter"
	"github.com/lixenwraith/frameterm/terminal"
)

// ColorRenderer emits the glyph grid with foreground escapes on color change
// Output ends with an attribute reset so the terminal is left clean
type ColorRenderer struct {
	frameWriter
	ramp    Ramp
	palette bool // 256-color palette instead of 24-bit
}

// NewColorRenderer creates a color renderer; opts must already be valid
func NewColorRenderer(opts Options, sink io.Writer) *ColorRenderer {
	return &ColorRenderer{
		frameWriter: newFrameWriter(opts, sink),
		ramp:        opts.Ramp,
		palette:     opts.Mode == ModeColor256,
	}
}

// Render encodes and flushes one frame
func (c *ColorRenderer) Render(pb *PixelBuffer) error {
	return c.present(pb, c)
}

// AppendFrame appends the colored grid followed by the reset sequence
func (c *ColorRenderer) AppendFrame(dst []byte, pb *PixelBuffer) []byte {
	var last uint32
	lastValid := false

	pix := pb.Pix
	for row := 0; row < pb.Height; row++ {
		line := pix[row*pb.Width : (row+1)*pb.Width]
		for _, p := range line {
			rgb := terminal.RGB{R: p.R, G: p.G, B: p.B}

			// Key on what the terminal will actually display
			var key uint32
			if c.palette {
				key = uint32(terminal.RGBTo256(rgb))
			} else {
				key = p.XRGB() & 0x00ffffff
			}

			if !lastValid || key != last {
				if c.palette {
					dst = terminal.AppendFg256(dst, rgb)
				} else {
					dst = terminal.AppendFgRGB(dst, rgb)
				}
				last = key
				lastValid = true
			}

			g := c.ramp.Glyph(p)
			for range parameter.GlyphsPerPixel {
				dst = append(dst, g)
			}
		}
		dst = append(dst, '\n')
	}
	return append(dst, parameter.ResetSequence...)
}
