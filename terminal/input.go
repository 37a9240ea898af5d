package terminal

import (
	"sync"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/lixenwraith/frameterm/parameter"
)

// EventType distinguishes input event categories
type EventType uint8

const (
	EventKey    EventType = iota
	EventError            // Read error, see Err
	EventClosed           // Input closed
)

// Event is one decoded terminal input
// Terminals only report key-down; there is no release event
type Event struct {
	Type      EventType
	Key       Key
	Rune      rune
	Modifiers Modifier
	Err       error
}

// escapeTimeout separates a standalone ESC press from the start of a sequence
const escapeTimeout = 50 * time.Millisecond

// maxCSILen caps how far a CSI sequence is scanned before it is dropped as garbage
const maxCSILen = 16

// decoder assembles raw chunks into events, holding partial sequences between reads
type decoder struct {
	buf   []byte
	escAt time.Time
}

// feed appends data and emits every complete event
func (d *decoder) feed(data []byte, now time.Time, emit func(Event)) {
	if len(d.buf) == 0 && len(data) > 0 && data[0] == 0x1b {
		d.escAt = now
	}
	d.buf = append(d.buf, data...)
	if n := parseInput(d.buf, emit); n > 0 {
		d.buf = d.buf[:copy(d.buf, d.buf[n:])]
	}
}

// expire emits a pending lone ESC once it has waited escapeTimeout
func (d *decoder) expire(now time.Time, emit func(Event)) {
	if len(d.buf) == 1 && d.buf[0] == 0x1b && now.Sub(d.escAt) >= escapeTimeout {
		emit(Event{Type: EventKey, Key: KeyEscape})
		d.buf = d.buf[:0]
	}
}

// inputReader pumps backend reads through a decoder onto a buffered channel
type inputReader struct {
	backend Backend
	eventCh chan Event
	stopCh  chan struct{}
	doneCh  chan struct{}
	dec     decoder
	dropped atomic.Uint64

	once    sync.Once
	stopped sync.Once
}

func newInputReader(backend Backend) *inputReader {
	return &inputReader{
		backend: backend,
		eventCh: make(chan Event, parameter.TerminalEventBuffer),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
		dec:     decoder{buf: make([]byte, 0, 256)},
	}
}

func (r *inputReader) start() {
	r.once.Do(func() { go r.readLoop() })
}

// stop signals the loop and waits briefly; a read stuck in the kernel is abandoned
func (r *inputReader) stop() {
	r.stopped.Do(func() {
		close(r.stopCh)
		select {
		case <-r.doneCh:
		case <-time.After(200 * time.Millisecond):
		}
	})
}

func (r *inputReader) events() <-chan Event {
	return r.eventCh
}

func (r *inputReader) readLoop() {
	defer close(r.doneCh)
	defer crashGuard("INPUT READER")

	for {
		data, err := r.backend.Read(r.stopCh)
		switch {
		case err != nil:
			r.send(Event{Type: EventError, Err: err})
			return
		case data == nil:
			r.send(Event{Type: EventClosed})
			return
		case len(data) == 0:
			r.dec.expire(time.Now(), r.send)
		default:
			r.dec.feed(data, time.Now(), r.send)
		}
	}
}

// send never blocks the reader; overflow is counted
func (r *inputReader) send(ev Event) {
	select {
	case r.eventCh <- ev:
	default:
		r.dropped.Add(1)
	}
}

// parseInput emits events for data and returns the bytes consumed
// It stops before an incomplete escape or UTF-8 sequence
func parseInput(data []byte, emit func(Event)) int {
	i := 0
	for i < len(data) {
		n, ev := decodeOne(data[i:])
		if n == 0 {
			break
		}
		if ev.Key != KeyNone {
			emit(ev)
		}
		i += n
	}
	return i
}

// decodeOne decodes the event at the head of data; 0 means more bytes are needed
// Unknown sequences are consumed and reported as KeyNone
func decodeOne(data []byte) (int, Event) {
	b := data[0]
	switch {
	case b >= 0x20 && b < 0x7f:
		return 1, keyRune(rune(b), ModNone)
	case b == 0x1b:
		return parseEscape(data)
	case b < 0x20:
		return 1, parseControl(b)
	case b == 0x7f:
		return 1, Event{Type: EventKey, Key: KeyBackspace}
	}

	if !utf8.FullRune(data) {
		return 0, Event{}
	}
	rn, size := utf8.DecodeRune(data)
	if rn == utf8.RuneError {
		return size, Event{}
	}
	return size, keyRune(rn, ModNone)
}

func keyRune(rn rune, mod Modifier) Event {
	return Event{Type: EventKey, Key: KeyRune, Rune: rn, Modifiers: mod}
}

func keyEvent(k Key, mod Modifier) Event {
	return Event{Type: EventKey, Key: k, Modifiers: mod}
}

// parseEscape handles ESC-prefixed input: CSI, SS3, and Alt chords
func parseEscape(data []byte) (int, Event) {
	if len(data) < 2 {
		return 0, Event{}
	}

	switch next := data[1]; {
	case next == 0x1b:
		return 2, keyEvent(KeyEscape, ModAlt)
	case next == '[':
		return parseCSI(data)
	case next == 'O':
		if len(data) < 3 {
			return 0, Event{}
		}
		key, mod, _ := lookupSS3(data[2:3])
		return 3, keyEvent(key, mod)
	case next < 0x20:
		ev := parseControl(next)
		ev.Modifiers |= ModAlt
		return 2, ev
	case next < 0x7f:
		return 2, keyRune(rune(next), ModAlt)
	case next == 0x7f:
		return 2, keyEvent(KeyBackspace, ModAlt)
	}

	// ESC before non-ASCII stands alone
	return 1, keyEvent(KeyEscape, ModNone)
}

// parseCSI scans ESC [ params final without allocating
func parseCSI(data []byte) (int, Event) {
	if len(data) < 3 {
		return 0, Event{}
	}

	limit := min(len(data), maxCSILen)
	for end := 2; end < limit; end++ {
		b := data[end]
		if b == '~' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') {
			key, mod, _ := lookupCSI(data[2 : end+1])
			return end + 1, keyEvent(key, mod)
		}
		if b < 0x20 || b > 0x7e {
			// Malformed; drop the introducer only
			return 2, Event{}
		}
	}

	if limit == maxCSILen {
		return limit, Event{}
	}
	return 0, Event{}
}

// parseControl maps a C0 control byte to a key
func parseControl(b byte) Event {
	switch b {
	case 0x00:
		return keyEvent(KeyCtrlSpace, ModNone)
	case 0x01:
		return keyEvent(KeyCtrlA, ModNone)
	case 0x03:
		return keyEvent(KeyCtrlC, ModNone)
	case 0x04:
		return keyEvent(KeyCtrlD, ModNone)
	case 0x08:
		return keyEvent(KeyBackspace, ModNone)
	case 0x09:
		return keyEvent(KeyTab, ModNone)
	case 0x0a, 0x0d:
		return keyEvent(KeyEnter, ModNone)
	case 0x11:
		return keyEvent(KeyCtrlQ, ModNone)
	case 0x1a:
		return keyEvent(KeyCtrlZ, ModNone)
	case 0x1b:
		return keyEvent(KeyEscape, ModNone)
	}
	if b >= 0x01 && b <= 0x1a {
		return Event{Type: EventKey, Key: KeyCtrlOther, Rune: rune('a' + b - 1), Modifiers: ModCtrl}
	}
	return Event{}
}
