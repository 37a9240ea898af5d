package pattern

import (
	"math"

	"github.com/lixenwraith/frameterm/render"
)

// Solid fills every pixel with one color
type Solid struct {
	Color render.Pixel
}

func (s Solid) Next(_ uint64, pb *render.PixelBuffer) {
	pb.Fill(s.Color)
}

// Gradient ramps red across x and green down y; blue cycles with the frame
type Gradient struct{}

func (Gradient) Next(frame uint64, pb *render.PixelBuffer) {
	w, h := pb.Width, pb.Height
	blue := uint8(frame % 256)
	for y := 0; y < h; y++ {
		g := scale255(y, h)
		row := pb.Pix[y*w : (y+1)*w]
		for x := range row {
			row[x] = render.Pixel{R: scale255(x, w), G: g, B: blue}
		}
	}
}

// scale255 maps i in [0, n) onto [0, 255]
func scale255(i, n int) uint8 {
	if n <= 1 {
		return 0
	}
	return uint8(i * 255 / (n - 1))
}

// Plasma is the classic sum-of-sines animation
type Plasma struct {
	Speed float64 // Phase advance per frame, 0 freezes

	// Cached sine table, rebuilt when the grid changes
	lut  []float64
	lutW int
	lutH int
}

func (p *Plasma) Next(frame uint64, pb *render.PixelBuffer) {
	w, h := pb.Width, pb.Height
	if p.lutW != w || p.lutH != h {
		p.buildLUT(w, h)
	}

	t := float64(frame) * p.Speed * 0.08
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := p.lut[y*w+x] + math.Sin(float64(x)*0.06+t) + math.Sin(float64(y)*0.09-t*1.3)
			// v in [-3, 3]; map to three phase-shifted channels
			pb.Pix[y*w+x] = render.Pixel{
				R: channel(v, 0),
				G: channel(v, 2*math.Pi/3),
				B: channel(v, 4*math.Pi/3),
			}
		}
	}
}

// buildLUT caches the radial term, which does not depend on the frame
func (p *Plasma) buildLUT(w, h int) {
	p.lut = make([]float64, w*h)
	p.lutW, p.lutH = w, h
	cx, cy := float64(w)/2, float64(h)/2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx, dy := float64(x)-cx, (float64(y)-cy)*2
			p.lut[y*w+x] = math.Sin(math.Sqrt(dx*dx+dy*dy) * 0.12)
		}
	}
}

func channel(v, phase float64) uint8 {
	return uint8(127.5 + 127.5*math.Sin(v*math.Pi/3+phase))
}

// Checker draws alternating squares that scroll one pixel per frame
type Checker struct {
	Size int // Square edge in pixels, <= 0 means 8
	A, B render.Pixel
}

func (c Checker) Next(frame uint64, pb *render.PixelBuffer) {
	size := c.Size
	if size <= 0 {
		size = 8
	}
	shift := int(frame % uint64(2*size))
	w := pb.Width
	for y := 0; y < pb.Height; y++ {
		for x := 0; x < w; x++ {
			if ((x+shift)/size+y/size)%2 == 0 {
				pb.Pix[y*w+x] = c.A
			} else {
				pb.Pix[y*w+x] = c.B
			}
		}
	}
}
