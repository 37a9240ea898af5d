package input

import "fmt"

// KeyEvent is one queued key transition
type KeyEvent struct {
	Pressed bool
	Code    uint8
}

// Pack returns the 16-bit word form: pressed flag in the high byte, code in the low byte
func (e KeyEvent) Pack() uint16 {
	var p uint16
	if e.Pressed {
		p = 1
	}
	return p<<8 | uint16(e.Code)
}

// UnpackKeyEvent reverses Pack
func UnpackKeyEvent(v uint16) KeyEvent {
	return KeyEvent{Pressed: v>>8 != 0, Code: uint8(v)}
}

func (e KeyEvent) String() string {
	edge := "release"
	if e.Pressed {
		edge = "press"
	}
	return fmt.Sprintf("%s %s", edge, KeyName(e.Code))
}
