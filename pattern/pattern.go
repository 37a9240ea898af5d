package pattern

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lixenwraith/frameterm/render"
)

// Source fills a pixel buffer for the given frame number
// Implementations overwrite every pixel and never resize pb
type Source interface {
	Next(frame uint64, pb *render.PixelBuffer)
}

// SourceFunc adapts a function to Source
type SourceFunc func(frame uint64, pb *render.PixelBuffer)

func (f SourceFunc) Next(frame uint64, pb *render.PixelBuffer) { f(frame, pb) }

// builtins maps config names to generator constructors
var builtins = map[string]func() Source{
	"black":    func() Source { return Solid{} },
	"gradient": func() Source { return Gradient{} },
	"plasma":   func() Source { return &Plasma{Speed: 1} },
	"checker":  func() Source { return Checker{Size: 8, A: render.Pixel{R: 255, G: 255, B: 255}} },
}

// ByName returns a built-in generator
func ByName(name string) (Source, error) {
	ctor, ok := builtins[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown pattern %q (have %s)", name, strings.Join(Names(), ", "))
	}
	return ctor(), nil
}

// Names lists the built-in generator names in sorted order
func Names() []string {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
