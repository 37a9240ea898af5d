package pattern

import (
	"fmt"
	"image"
	"io"
	"os"

	// Decoders registered for Decode
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/lixenwraith/frameterm/render"
)

// Image is a still frame scaled to a fixed grid
type Image struct {
	pix    []render.Pixel
	width  int
	height int
}

// FromImage scales img to exactly width x height with CatmullRom interpolation
// Transparent areas composite over black
func FromImage(img image.Image, width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid grid %dx%d", width, height)
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("empty image")
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)

	out := &Image{
		pix:    make([]render.Pixel, width*height),
		width:  width,
		height: height,
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			o := dst.PixOffset(x, y)
			// Premultiplied channels over a zeroed canvas equal the composite over black
			out.pix[y*width+x] = render.Pixel{R: dst.Pix[o], G: dst.Pix[o+1], B: dst.Pix[o+2]}
		}
	}
	return out, nil
}

// Decode reads a PNG, JPEG, GIF or WebP stream and scales it to the grid
func Decode(r io.Reader, width, height int) (*Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	out, err := FromImage(img, width, height)
	if err != nil {
		return nil, fmt.Errorf("scaling %s image: %w", format, err)
	}
	return out, nil
}

// Load opens and decodes an image file
func Load(path string, width, height int) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f, width, height)
}

// Next copies the scaled image; a grid mismatch leaves pb black outside the overlap
func (im *Image) Next(_ uint64, pb *render.PixelBuffer) {
	if pb.Width == im.width && pb.Height == im.height {
		copy(pb.Pix, im.pix)
		return
	}
	pb.Fill(render.Pixel{})
	for y := 0; y < pb.Height && y < im.height; y++ {
		n := min(pb.Width, im.width)
		copy(pb.Pix[y*pb.Width:y*pb.Width+n], im.pix[y*im.width:y*im.width+n])
	}
}

// Size returns the grid dimensions
func (im *Image) Size() (int, int) {
	return im.width, im.height
}
