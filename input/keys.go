package input

import (
	"fmt"
	"strings"
)

// Key codes understood by the consuming application
// Printable keys use their lowercase ASCII value
const (
	KeyTab        uint8 = 9
	KeyEnter      uint8 = 13
	KeyEscape     uint8 = 27
	KeySpace      uint8 = ' '
	KeyMinus      uint8 = '-'
	KeyEquals     uint8 = '='
	KeyBackspace  uint8 = 0x7f
	KeyStrafeL    uint8 = 0xa0
	KeyStrafeR    uint8 = 0xa1
	KeyUse        uint8 = 0xa2
	KeyFire       uint8 = 0xa3
	KeyLeftArrow  uint8 = 0xac
	KeyUpArrow    uint8 = 0xad
	KeyRightArrow uint8 = 0xae
	KeyDownArrow  uint8 = 0xaf
	KeyRCtrl      uint8 = 0x80 + 0x1d
	KeyRShift     uint8 = 0x80 + 0x36
	KeyRAlt       uint8 = 0x80 + 0x38
	KeyF1         uint8 = 0x80 + 0x3b
	KeyF2         uint8 = 0x80 + 0x3c
	KeyF3         uint8 = 0x80 + 0x3d
	KeyF4         uint8 = 0x80 + 0x3e
	KeyF5         uint8 = 0x80 + 0x3f
	KeyF6         uint8 = 0x80 + 0x40
	KeyF7         uint8 = 0x80 + 0x41
	KeyF8         uint8 = 0x80 + 0x42
	KeyF9         uint8 = 0x80 + 0x43
	KeyF10        uint8 = 0x80 + 0x44
	KeyF11        uint8 = 0x80 + 0x57
	KeyF12        uint8 = 0x80 + 0x58
	KeyPause      uint8 = 0xff
)

// keyNames maps config names to codes
var keyNames = map[string]uint8{
	"tab":       KeyTab,
	"enter":     KeyEnter,
	"escape":    KeyEscape,
	"space":     KeySpace,
	"minus":     KeyMinus,
	"equals":    KeyEquals,
	"backspace": KeyBackspace,
	"strafe_l":  KeyStrafeL,
	"strafe_r":  KeyStrafeR,
	"use":       KeyUse,
	"fire":      KeyFire,
	"left":      KeyLeftArrow,
	"up":        KeyUpArrow,
	"right":     KeyRightArrow,
	"down":      KeyDownArrow,
	"rctrl":     KeyRCtrl,
	"rshift":    KeyRShift,
	"ralt":      KeyRAlt,
	"f1":        KeyF1,
	"f2":        KeyF2,
	"f3":        KeyF3,
	"f4":        KeyF4,
	"f5":        KeyF5,
	"f6":        KeyF6,
	"f7":        KeyF7,
	"f8":        KeyF8,
	"f9":        KeyF9,
	"f10":       KeyF10,
	"f11":       KeyF11,
	"f12":       KeyF12,
	"pause":     KeyPause,
}

// codeNames is the reverse of keyNames, built once
var codeNames = func() map[uint8]string {
	m := make(map[uint8]string, len(keyNames))
	for name, code := range keyNames {
		m[code] = name
	}
	return m
}()

// KeyName returns the config name of code, the character itself for printable keys,
// or a hex form for anything else
func KeyName(code uint8) string {
	if name, ok := codeNames[code]; ok {
		return name
	}
	if code > ' ' && code < 0x7f {
		return string(rune(code))
	}
	return fmt.Sprintf("0x%02x", code)
}

// ParseKeyName resolves a config name or a single printable character to a code
func ParseKeyName(name string) (uint8, error) {
	if code, ok := keyNames[strings.ToLower(name)]; ok {
		return code, nil
	}
	if len(name) == 1 && name[0] > ' ' && name[0] < 0x7f {
		return toLowerASCII(name[0]), nil
	}
	return 0, fmt.Errorf("unknown key name %q", name)
}

// ParseKeyNames resolves a list of names, failing on the first unknown one
func ParseKeyNames(names []string) ([]uint8, error) {
	codes := make([]uint8, 0, len(names))
	for _, n := range names {
		c, err := ParseKeyName(n)
		if err != nil {
			return nil, err
		}
		codes = append(codes, c)
	}
	return codes, nil
}

func toLowerASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
