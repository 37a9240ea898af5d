package terminal

// Key identifies a decoded input key
type Key uint16

const (
	KeyNone Key = iota
	KeyRune     // Printable character in Event.Rune

	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab // Shift+Tab
	KeyBackspace
	KeyDelete

	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Ctrl chords that arrive as distinct bytes in raw mode
	KeyCtrlSpace
	KeyCtrlA
	KeyCtrlC
	KeyCtrlD
	KeyCtrlQ
	KeyCtrlZ
	KeyCtrlOther // Letter in Event.Rune
)

var keyNames = [...]string{
	KeyNone: "none", KeyRune: "rune",
	KeyEscape: "esc", KeyEnter: "enter", KeyTab: "tab", KeyBacktab: "backtab",
	KeyBackspace: "backspace", KeyDelete: "delete",
	KeyUp: "up", KeyDown: "down", KeyLeft: "left", KeyRight: "right",
	KeyHome: "home", KeyEnd: "end", KeyPageUp: "pgup", KeyPageDown: "pgdn", KeyInsert: "insert",
	KeyF1: "f1", KeyF2: "f2", KeyF3: "f3", KeyF4: "f4", KeyF5: "f5", KeyF6: "f6",
	KeyF7: "f7", KeyF8: "f8", KeyF9: "f9", KeyF10: "f10", KeyF11: "f11", KeyF12: "f12",
	KeyCtrlSpace: "ctrl+space", KeyCtrlA: "ctrl+a", KeyCtrlC: "ctrl+c", KeyCtrlD: "ctrl+d",
	KeyCtrlQ: "ctrl+q", KeyCtrlZ: "ctrl+z", KeyCtrlOther: "ctrl+?",
}

// String returns a short lowercase name for logs
func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "unknown"
}

// Modifier flags
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModCtrl  Modifier = 1 << 2
)

// seqKey is a decoded escape sequence
type seqKey struct {
	key Key
	mod Modifier
}

// csiFinals are the letter-terminated CSI keys that accept an xterm modifier parameter
var csiFinals = map[byte]Key{
	'A': KeyUp, 'B': KeyDown, 'C': KeyRight, 'D': KeyLeft,
	'H': KeyHome, 'F': KeyEnd,
}

// csiTilde are the ESC [ n ~ keys; the xterm and vt220 home/end aliases included
var csiTilde = map[string]Key{
	"1": KeyHome, "2": KeyInsert, "3": KeyDelete, "4": KeyEnd,
	"5": KeyPageUp, "6": KeyPageDown, "7": KeyHome, "8": KeyEnd,
	"11": KeyF1, "12": KeyF2, "13": KeyF3, "14": KeyF4, "15": KeyF5,
	"17": KeyF6, "18": KeyF7, "19": KeyF8, "20": KeyF9, "21": KeyF10,
	"23": KeyF11, "24": KeyF12,
}

var (
	csiMap = buildCSIMap()
	ss3Map = map[string]seqKey{
		"A": {KeyUp, ModNone}, "B": {KeyDown, ModNone},
		"C": {KeyRight, ModNone}, "D": {KeyLeft, ModNone},
		"H": {KeyHome, ModNone}, "F": {KeyEnd, ModNone},
		"P": {KeyF1, ModNone}, "Q": {KeyF2, ModNone},
		"R": {KeyF3, ModNone}, "S": {KeyF4, ModNone},
		"M": {KeyEnter, ModNone}, // Keypad enter
	}
)

// buildCSIMap expands every key with all seven xterm modifier parameters (2..8)
// Parameter p encodes modifiers as p-1: bit 0 shift, bit 1 alt, bit 2 ctrl
func buildCSIMap() map[string]seqKey {
	m := make(map[string]seqKey, 256)
	m["Z"] = seqKey{KeyBacktab, ModShift}

	// Linux console function keys
	for i, c := range "ABCDE" {
		m["["+string(c)] = seqKey{KeyF1 + Key(i), ModNone}
	}

	for final, key := range csiFinals {
		m[string(final)] = seqKey{key, ModNone}
		for p := 2; p <= 8; p++ {
			m["1;"+string(rune('0'+p))+string(final)] = seqKey{key, Modifier(p - 1)}
		}
	}
	for num, key := range csiTilde {
		m[num+"~"] = seqKey{key, ModNone}
		for p := 2; p <= 8; p++ {
			m[num+";"+string(rune('0'+p))+"~"] = seqKey{key, Modifier(p - 1)}
		}
	}
	return m
}

// lookupCSI resolves the bytes after ESC [; the inline string conversion does not allocate
func lookupCSI(seq []byte) (Key, Modifier, bool) {
	if s, ok := csiMap[string(seq)]; ok {
		return s.key, s.mod, true
	}
	return KeyNone, ModNone, false
}

// lookupSS3 resolves the byte after ESC O
func lookupSS3(seq []byte) (Key, Modifier, bool) {
	if s, ok := ss3Map[string(seq)]; ok {
		return s.key, s.mod, true
	}
	return KeyNone, ModNone, false
}
