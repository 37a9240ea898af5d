package pattern

import (
	"sync"

	"github.com/lixenwraith/frameterm/render"
)

// Marker draws a movable square on top of a base source
// Move may be called from a different goroutine than Next
type Marker struct {
	Base  Source
	Size  int
	Color render.Pixel

	mu   sync.Mutex
	x, y int
	lit  bool // Fill with Color when true, inverse of base otherwise
}

// NewMarker centers a size-by-size marker over base on a w-by-h grid
func NewMarker(base Source, size, w, h int) *Marker {
	if size <= 0 {
		size = 4
	}
	return &Marker{
		Base:  base,
		Size:  size,
		Color: render.Pixel{R: 255, G: 255, B: 255},
		x:     (w - size) / 2,
		y:     (h - size) / 2,
	}
}

// Move shifts the marker by (dx, dy); clamping happens at draw time
func (m *Marker) Move(dx, dy int) {
	m.mu.Lock()
	m.x += dx
	m.y += dy
	m.mu.Unlock()
}

// SetLit switches between solid fill and inverted base
func (m *Marker) SetLit(lit bool) {
	m.mu.Lock()
	m.lit = lit
	m.mu.Unlock()
}

// Position returns the unclamped marker origin
func (m *Marker) Position() (int, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.x, m.y
}

func (m *Marker) Next(frame uint64, pb *render.PixelBuffer) {
	if m.Base != nil {
		m.Base.Next(frame, pb)
	} else {
		pb.Fill(render.Pixel{})
	}

	m.mu.Lock()
	x0 := clamp(m.x, 0, pb.Width-m.Size)
	y0 := clamp(m.y, 0, pb.Height-m.Size)
	m.x, m.y = x0, y0
	lit := m.lit
	m.mu.Unlock()

	for y := y0; y < y0+m.Size && y < pb.Height; y++ {
		for x := x0; x < x0+m.Size && x < pb.Width; x++ {
			if lit {
				pb.Set(x, y, m.Color)
				continue
			}
			p := pb.At(x, y)
			pb.Set(x, y, render.Pixel{R: 255 - p.R, G: 255 - p.G, B: 255 - p.B})
		}
	}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
