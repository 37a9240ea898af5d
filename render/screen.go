package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/frameterm/parameter"
)

// ScreenRenderer draws the glyph grid into a tcell screen
// Used when the host owns a tcell.Screen instead of a raw byte sink
type ScreenRenderer struct {
	screen tcell.Screen
	ramp   Ramp
	color  bool
	width  int
	height int
	frame  uint64
}

// NewScreenRenderer creates a renderer over an initialized screen
// Any mode other than ModeMono sets per-cell foreground colors
func NewScreenRenderer(opts Options, screen tcell.Screen) (*ScreenRenderer, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &ScreenRenderer{
		screen: screen,
		ramp:   opts.Ramp,
		color:  opts.Mode != ModeMono,
		width:  opts.Width,
		height: opts.Height,
	}, nil
}

// Render sets every cell of the grid and shows the screen
func (s *ScreenRenderer) Render(pb *PixelBuffer) error {
	if err := pb.Validate(s.width, s.height); err != nil {
		return err
	}

	style := tcell.StyleDefault
	for y := 0; y < pb.Height; y++ {
		row := pb.Pix[y*pb.Width : (y+1)*pb.Width]
		for x, p := range row {
			if s.color {
				style = tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(p.R), int32(p.G), int32(p.B)))
			}
			g := rune(s.ramp.Glyph(p))
			for i := range parameter.GlyphsPerPixel {
				s.screen.SetContent(x*parameter.GlyphsPerPixel+i, y, g, nil, style)
			}
		}
	}
	s.screen.Show()
	s.frame++
	return nil
}

// Frames returns the number of frames presented so far
func (s *ScreenRenderer) Frames() uint64 {
	return s.frame
}
