package input

import "github.com/lixenwraith/frameterm/parameter"

// holdEntry tracks the remaining frames before a synthesized release
type holdEntry struct {
	code      uint8
	remaining int
}

// HoldTable synthesizes release events for keys whose source only reports presses
//
// Per key: Idle(0) --press--> Holding(frames) --tick--> ... Holding(1) --tick--> Idle(0) + release
type HoldTable struct {
	entries []holdEntry
	frames  int
}

// DefaultHoldKeys is the holdable set: fire, use, enter and the four arrows
var DefaultHoldKeys = []uint8{
	KeyFire, KeyUse, KeyEnter,
	KeyLeftArrow, KeyRightArrow, KeyUpArrow, KeyDownArrow,
}

// NewHoldTable creates a table for codes; duplicates are ignored, frames <= 0 selects the default
func NewHoldTable(codes []uint8, frames int) *HoldTable {
	if frames <= 0 {
		frames = parameter.HoldFrames
	}
	h := &HoldTable{frames: frames}
	for _, c := range codes {
		if h.find(c) < 0 {
			h.entries = append(h.entries, holdEntry{code: c})
		}
	}
	return h
}

func (h *HoldTable) find(code uint8) int {
	for i := range h.entries {
		if h.entries[i].code == code {
			return i
		}
	}
	return -1
}

// Holdable reports whether code gets a synthesized release
func (h *HoldTable) Holdable(code uint8) bool {
	return h.find(code) >= 0
}

// Press arms (or re-arms) the counter for a holdable code
// Returns false for codes not in the table
func (h *HoldTable) Press(code uint8) bool {
	i := h.find(code)
	if i < 0 {
		return false
	}
	h.entries[i].remaining = h.frames
	return true
}

// Tick decrements every active counter and calls release for each that reaches zero
// Releases are reported in table order; a release returning false stays due for the next tick
func (h *HoldTable) Tick(release func(code uint8) bool) {
	for i := range h.entries {
		e := &h.entries[i]
		if e.remaining > 0 {
			e.remaining--
			if e.remaining == 0 && !release(e.code) {
				e.remaining = 1
			}
		}
	}
}

// State returns the frames left before release; 0 means idle or not holdable
func (h *HoldTable) State(code uint8) int {
	i := h.find(code)
	if i < 0 {
		return 0
	}
	return h.entries[i].remaining
}

// Frames returns the configured hold duration
func (h *HoldTable) Frames() int { return h.frames }

// Codes returns the holdable codes in table order
func (h *HoldTable) Codes() []uint8 {
	codes := make([]uint8, len(h.entries))
	for i, e := range h.entries {
		codes[i] = e.code
	}
	return codes
}

// Reset returns every key to idle without emitting releases
func (h *HoldTable) Reset() {
	for i := range h.entries {
		h.entries[i].remaining = 0
	}
}
