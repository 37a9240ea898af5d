package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/frameterm/terminal"
)

// KeyTable maps parsed terminal keys to application key codes
type KeyTable struct {
	// Named keys (arrows, enter, function keys)
	Keys map[terminal.Key]uint8

	// Rune overrides checked before the lowercase-ASCII fallback
	Runes map[rune]uint8

	// Alt+arrow bindings
	AltKeys map[terminal.Key]uint8

	// Code sent for any Ctrl combination that is not a quit request
	Ctrl uint8
}

// DefaultKeyTable returns the default bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[terminal.Key]uint8{
			terminal.KeyUp:        KeyUpArrow,
			terminal.KeyDown:      KeyDownArrow,
			terminal.KeyLeft:      KeyLeftArrow,
			terminal.KeyRight:     KeyRightArrow,
			terminal.KeyEnter:     KeyEnter,
			terminal.KeyEscape:    KeyEscape,
			terminal.KeyTab:       KeyTab,
			terminal.KeyBackspace: KeyBackspace,
			terminal.KeyDelete:    KeyBackspace,
			terminal.KeyF1:        KeyF1,
			terminal.KeyF2:        KeyF2,
			terminal.KeyF3:        KeyF3,
			terminal.KeyF4:        KeyF4,
			terminal.KeyF5:        KeyF5,
			terminal.KeyF6:        KeyF6,
			terminal.KeyF7:        KeyF7,
			terminal.KeyF8:        KeyF8,
			terminal.KeyF9:        KeyF9,
			terminal.KeyF10:       KeyF10,
			terminal.KeyF11:       KeyF11,
			terminal.KeyF12:       KeyF12,
		},

		Runes: map[rune]uint8{
			' ': KeyUse,
			',': KeyStrafeL,
			'.': KeyStrafeR,
		},

		AltKeys: map[terminal.Key]uint8{
			terminal.KeyLeft:  KeyStrafeL,
			terminal.KeyRight: KeyStrafeR,
		},

		Ctrl: KeyFire,
	}
}

// IsQuit reports whether ev is a quit request (Ctrl+C or Ctrl+Q)
func IsQuit(ev terminal.Event) bool {
	return ev.Key == terminal.KeyCtrlC || ev.Key == terminal.KeyCtrlQ
}

// Lookup translates ev to a key code; false when the key has no binding
func (t *KeyTable) Lookup(ev terminal.Event) (uint8, bool) {
	switch ev.Key {
	case terminal.KeyNone:
		return 0, false

	case terminal.KeyRune:
		if code, ok := t.Runes[ev.Rune]; ok {
			return code, true
		}
		if ev.Rune > ' ' && ev.Rune < 0x7f {
			return toLowerASCII(byte(ev.Rune)), true
		}
		return 0, false

	case terminal.KeyCtrlSpace, terminal.KeyCtrlA, terminal.KeyCtrlD,
		terminal.KeyCtrlZ, terminal.KeyCtrlOther:
		return t.Ctrl, t.Ctrl != 0
	}

	if ev.Modifiers&terminal.ModAlt != 0 {
		if code, ok := t.AltKeys[ev.Key]; ok {
			return code, true
		}
	}
	code, ok := t.Keys[ev.Key]
	return code, ok
}

// tcellKeys maps tcell named keys onto terminal keys
var tcellKeys = map[tcell.Key]terminal.Key{
	tcell.KeyUp:         terminal.KeyUp,
	tcell.KeyDown:       terminal.KeyDown,
	tcell.KeyLeft:       terminal.KeyLeft,
	tcell.KeyRight:      terminal.KeyRight,
	tcell.KeyHome:       terminal.KeyHome,
	tcell.KeyEnd:        terminal.KeyEnd,
	tcell.KeyPgUp:       terminal.KeyPageUp,
	tcell.KeyPgDn:       terminal.KeyPageDown,
	tcell.KeyInsert:     terminal.KeyInsert,
	tcell.KeyDelete:     terminal.KeyDelete,
	tcell.KeyBacktab:    terminal.KeyBacktab,
	tcell.KeyEnter:      terminal.KeyEnter,
	tcell.KeyEscape:     terminal.KeyEscape,
	tcell.KeyTab:        terminal.KeyTab,
	tcell.KeyBackspace:  terminal.KeyBackspace,
	tcell.KeyBackspace2: terminal.KeyBackspace,
	tcell.KeyCtrlSpace:  terminal.KeyCtrlSpace,
	tcell.KeyF1:         terminal.KeyF1,
	tcell.KeyF2:         terminal.KeyF2,
	tcell.KeyF3:         terminal.KeyF3,
	tcell.KeyF4:         terminal.KeyF4,
	tcell.KeyF5:         terminal.KeyF5,
	tcell.KeyF6:         terminal.KeyF6,
	tcell.KeyF7:         terminal.KeyF7,
	tcell.KeyF8:         terminal.KeyF8,
	tcell.KeyF9:         terminal.KeyF9,
	tcell.KeyF10:        terminal.KeyF10,
	tcell.KeyF11:        terminal.KeyF11,
	tcell.KeyF12:        terminal.KeyF12,
}

// ctrlKeys maps the letters with dedicated terminal keys
var ctrlKeys = map[rune]terminal.Key{
	'a': terminal.KeyCtrlA,
	'c': terminal.KeyCtrlC,
	'd': terminal.KeyCtrlD,
	'q': terminal.KeyCtrlQ,
	'z': terminal.KeyCtrlZ,
}

// FromTcell converts a tcell key event into the terminal event form used by KeyTable
func FromTcell(ev *tcell.EventKey) terminal.Event {
	out := terminal.Event{Type: terminal.EventKey}

	mods := ev.Modifiers()
	if mods&tcell.ModShift != 0 {
		out.Modifiers |= terminal.ModShift
	}
	if mods&tcell.ModAlt != 0 {
		out.Modifiers |= terminal.ModAlt
	}
	if mods&tcell.ModCtrl != 0 {
		out.Modifiers |= terminal.ModCtrl
	}

	k := ev.Key()
	switch {
	case k == tcell.KeyRune:
		out.Key = terminal.KeyRune
		out.Rune = ev.Rune()
		return out

	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return ctrlEvent(out, 'a'+rune(k-tcell.KeyCtrlA))
	}

	if tk, ok := tcellKeys[k]; ok {
		out.Key = tk
		return out
	}

	// Raw control bytes arrive as their ASCII value with the letter in Rune
	if k < ' ' && mods&tcell.ModCtrl != 0 {
		return ctrlEvent(out, ev.Rune())
	}

	out.Key = terminal.KeyNone
	return out
}

func ctrlEvent(out terminal.Event, letter rune) terminal.Event {
	out.Modifiers |= terminal.ModCtrl
	if tk, ok := ctrlKeys[letter]; ok {
		out.Key = tk
		return out
	}
	out.Key = terminal.KeyCtrlOther
	out.Rune = letter
	return out
}
