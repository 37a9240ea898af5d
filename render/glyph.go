package render

import (
	"io"

	"github.com/lixenwraith/frameterm/parameter"
)

// GlyphRenderer emits the plain glyph grid with no escape codes
type GlyphRenderer struct {
	frameWriter
	ramp Ramp
}

// NewGlyphRenderer creates a mono renderer; opts must already be valid
func NewGlyphRenderer(opts Options, sink io.Writer) *GlyphRenderer {
	return &GlyphRenderer{
		frameWriter: newFrameWriter(opts, sink),
		ramp:        opts.Ramp,
	}
}

// Render encodes and flushes one frame
func (g *GlyphRenderer) Render(pb *PixelBuffer) error {
	return g.present(pb, g)
}

// AppendFrame appends rows of doubled glyphs, each terminated by '\n'
func (g *GlyphRenderer) AppendFrame(dst []byte, pb *PixelBuffer) []byte {
	pix := pb.Pix
	for row := 0; row < pb.Height; row++ {
		line := pix[row*pb.Width : (row+1)*pb.Width]
		for _, p := range line {
			c := g.ramp.Glyph(p)
			for range parameter.GlyphsPerPixel {
				dst = append(dst, c)
			}
		}
		dst = append(dst, '\n')
	}
	return dst
}
