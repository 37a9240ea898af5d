// Usage examples:
//
// # Mono glyph frame on stdout
// ./png-to-ascii image.png
//
// # Truecolor frame into a file, custom grid
// ./png-to-ascii -c truecolor -w 120 -h 60 -o out.ans image.png
//
// # Pipe to a pager
// ./png-to-ascii -c 256 image.png | less -R

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lixenwraith/frameterm/parameter"
	"github.com/lixenwraith/frameterm/pattern"
	"github.com/lixenwraith/frameterm/render"
)

func main() {
	var (
		width    int
		height   int
		depthStr string
		rampStr  string
		output   string
	)

	flag.IntVar(&width, "w", parameter.GridWidth, "Grid width in pixels (two columns each)")
	flag.IntVar(&height, "h", parameter.GridHeight, "Grid height in pixels (one row each)")
	flag.StringVar(&depthStr, "c", "mono", "Color: 'mono', 'truecolor', '256' or 'auto'")
	flag.StringVar(&rampStr, "ramp", parameter.GlyphRamp, "Glyph ramp, sparse to dense")
	flag.StringVar(&output, "o", "-", "Output file ('-' for stdout)")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: png-to-ascii [options] <image>")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := convert(flag.Arg(0), output, width, height, depthStr, rampStr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// convert renders one frame of the image at path into output
func convert(path, output string, width, height int, depthStr, rampStr string) error {
	mode, err := render.ParseMode(depthStr)
	if err != nil {
		return err
	}
	ramp, err := render.NewRamp(rampStr)
	if err != nil {
		return err
	}

	img, err := pattern.Load(path, width, height)
	if err != nil {
		return fmt.Errorf("loading image: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Image: %s -> %dx%d pixels, %s\n", path, width, height, mode)

	var sink io.Writer = os.Stdout
	if output != "-" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		sink = f
	}

	return renderFrame(img, sink, render.Options{
		Width:  width,
		Height: height,
		Ramp:   ramp,
		Mode:   mode,
	})
}

// renderFrame draws a single frame of src into sink
func renderFrame(src pattern.Source, sink io.Writer, opts render.Options) error {
	r, err := render.New(opts, sink)
	if err != nil {
		return err
	}
	pb := render.NewPixelBuffer(opts.Width, opts.Height)
	src.Next(0, pb)
	return r.Render(pb)
}
