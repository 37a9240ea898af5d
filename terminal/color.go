package terminal

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

// String returns the config name of the mode
func (m ColorMode) String() string {
	if m == ColorModeTrueColor {
		return "truecolor"
	}
	return "256"
}

// RGB is a 24-bit color
type RGB struct {
	R, G, B uint8
}

// xterm 6x6x6 cube occupies palette 16-231, the 24-step gray ramp 232-255
const (
	cubeBase = 16
	grayBase = 232
	grayTop  = 255
)

var cubeLevels = [6]int{0, 95, 135, 175, 215, 255}

// cubeNearest maps a channel value to its closest cube level index
var cubeNearest = func() (t [256]uint8) {
	for v := range t {
		best, bestDist := 0, 256
		for i, lvl := range cubeLevels {
			if d := absInt(v - lvl); d < bestDist {
				best, bestDist = i, d
			}
		}
		t[v] = uint8(best)
	}
	return t
}()

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// RGBTo256 returns the nearest xterm-256 palette index
// Near-neutral colors pick whichever of the gray ramp and the cube lands closer
func RGBTo256(c RGB) uint8 {
	r, g, b := int(c.R), int(c.G), int(c.B)
	ri, gi, bi := cubeNearest[c.R], cubeNearest[c.G], cubeNearest[c.B]
	cube := uint8(cubeBase + 36*int(ri) + 6*int(gi) + int(bi))

	avg := (r + g + b) / 3
	if max(absInt(r-avg), absInt(g-avg), absInt(b-avg)) >= 10 {
		return cube
	}
	switch {
	case avg < 4:
		return cubeBase
	case avg > 243:
		return 231
	}

	gray := min(grayBase+(avg-8)/10, grayTop)
	lvl := 8 + (gray-grayBase)*10
	grayDist := absInt(r-lvl) + absInt(g-lvl) + absInt(b-lvl)
	cubeDist := absInt(r-cubeLevels[ri]) + absInt(g-cubeLevels[gi]) + absInt(b-cubeLevels[bi])
	if grayDist < cubeDist {
		return uint8(gray)
	}
	return cube
}
