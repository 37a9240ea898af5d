package render

import "fmt"

// Pixel is one color sample in the memory order of a little-endian 0xAARRGGBB word
// Alpha is carried but never read
type Pixel struct {
	B, G, R, A uint8
}

// PixelFromXRGB unpacks a 0xAARRGGBB word
func PixelFromXRGB(v uint32) Pixel {
	return Pixel{
		B: uint8(v),
		G: uint8(v >> 8),
		R: uint8(v >> 16),
		A: uint8(v >> 24),
	}
}

// XRGB packs the pixel into a 0xAARRGGBB word
func (p Pixel) XRGB() uint32 {
	return uint32(p.A)<<24 | uint32(p.R)<<16 | uint32(p.G)<<8 | uint32(p.B)
}

// Brightness returns R+G+B in [0, 765]
func (p Pixel) Brightness() int {
	return int(p.R) + int(p.G) + int(p.B)
}

// PixelBuffer is a row-major Width*Height frame owned by the host
// Renderers only read it
type PixelBuffer struct {
	Pix    []Pixel
	Width  int
	Height int
}

// NewPixelBuffer allocates a zeroed (black) buffer
func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		Pix:    make([]Pixel, width*height),
		Width:  width,
		Height: height,
	}
}

// At returns the pixel at (x, y); out-of-range coordinates return black
func (pb *PixelBuffer) At(x, y int) Pixel {
	if x < 0 || y < 0 || x >= pb.Width || y >= pb.Height {
		return Pixel{}
	}
	return pb.Pix[y*pb.Width+x]
}

// Set writes the pixel at (x, y); out-of-range coordinates are ignored
func (pb *PixelBuffer) Set(x, y int, p Pixel) {
	if x < 0 || y < 0 || x >= pb.Width || y >= pb.Height {
		return
	}
	pb.Pix[y*pb.Width+x] = p
}

// Fill sets every pixel to p
func (pb *PixelBuffer) Fill(p Pixel) {
	for i := range pb.Pix {
		pb.Pix[i] = p
	}
}

// Validate checks the buffer against the expected grid dimensions
func (pb *PixelBuffer) Validate(width, height int) error {
	if pb == nil {
		return fmt.Errorf("%w: nil buffer", ErrDimensionMismatch)
	}
	if pb.Width != width || pb.Height != height || len(pb.Pix) != width*height {
		return fmt.Errorf("%w: got %dx%d (%d pixels), want %dx%d",
			ErrDimensionMismatch, pb.Width, pb.Height, len(pb.Pix), width, height)
	}
	return nil
}
