package input

import (
	"sync"
	"testing"
)

func drainAll(kb *Keyboard) []KeyEvent {
	var evs []KeyEvent
	kb.Drain(func(ev KeyEvent) { evs = append(evs, ev) })
	return evs
}

func TestKeyboardHoldSequence(t *testing.T) {
	kb := NewKeyboard(DefaultKeyboardConfig())

	kb.Press(KeyFire)
	if evs := drainAll(kb); len(evs) != 1 || evs[0] != (KeyEvent{Pressed: true, Code: KeyFire}) {
		t.Fatalf("after press: %v", evs)
	}

	kb.Tick()
	if evs := drainAll(kb); len(evs) != 0 {
		t.Fatalf("released early: %v", evs)
	}

	kb.Tick()
	evs := drainAll(kb)
	if len(evs) != 1 || evs[0] != (KeyEvent{Pressed: false, Code: KeyFire}) {
		t.Fatalf("after second tick: %v", evs)
	}
	if kb.HoldState(KeyFire) != 0 {
		t.Errorf("key still holding after release")
	}
}

func TestKeyboardRepressEnqueuesEachPress(t *testing.T) {
	kb := NewKeyboard(DefaultKeyboardConfig())
	kb.Press(KeyUpArrow)
	kb.Tick()
	kb.Press(KeyUpArrow)
	kb.Tick()
	kb.Tick()

	evs := drainAll(kb)
	want := []KeyEvent{
		{Pressed: true, Code: KeyUpArrow},
		{Pressed: true, Code: KeyUpArrow},
		{Pressed: false, Code: KeyUpArrow},
	}
	if len(evs) != len(want) {
		t.Fatalf("got %v, want %v", evs, want)
	}
	for i := range want {
		if evs[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, evs[i], want[i])
		}
	}
}

func TestKeyboardHit(t *testing.T) {
	tests := []struct {
		name       string
		tapRelease bool
		code       uint8
		want       []KeyEvent
	}{
		{"holdable", true, KeyFire, []KeyEvent{{true, KeyFire}}},
		{"tapped", true, 'y', []KeyEvent{{true, 'y'}, {false, 'y'}}},
		{"press only", false, 'y', []KeyEvent{{true, 'y'}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultKeyboardConfig()
			cfg.TapRelease = tt.tapRelease
			kb := NewKeyboard(cfg)
			kb.Hit(tt.code)

			evs := drainAll(kb)
			if len(evs) != len(tt.want) {
				t.Fatalf("got %v, want %v", evs, tt.want)
			}
			for i := range tt.want {
				if evs[i] != tt.want[i] {
					t.Errorf("event %d = %v, want %v", i, evs[i], tt.want[i])
				}
			}
		})
	}
}

func TestKeyboardCustomHoldKeys(t *testing.T) {
	cfg := DefaultKeyboardConfig()
	cfg.HoldKeys = []uint8{'w'}
	cfg.HoldFrames = 3
	kb := NewKeyboard(cfg)

	if kb.Holdable(KeyFire) {
		t.Error("default hold key still active")
	}
	kb.Press('w')
	if kb.HoldState('w') != 3 {
		t.Errorf("HoldState = %d, want 3", kb.HoldState('w'))
	}
}

func TestKeyboardOverflowCounted(t *testing.T) {
	cfg := DefaultKeyboardConfig()
	cfg.QueueSize = 4
	kb := NewKeyboard(cfg)
	for i := 0; i < 10; i++ {
		kb.Press('a')
	}
	if kb.Len() != 4 || kb.Dropped() != 6 {
		t.Errorf("Len=%d Dropped=%d, want 4/6", kb.Len(), kb.Dropped())
	}
	kb.Reset()
	if kb.Len() != 0 || kb.Dropped() != 0 {
		t.Error("Reset did not clear the keyboard")
	}
}

func TestKeyboardConcurrentPressAndTick(t *testing.T) {
	cfg := DefaultKeyboardConfig()
	cfg.QueueSize = 1024
	kb := NewKeyboard(cfg)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			kb.Press(KeyFire)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			kb.Tick()
		}
	}()
	wg.Wait()

	// Flush any pending release
	kb.Tick()
	kb.Tick()

	presses, releases := 0, 0
	kb.Drain(func(ev KeyEvent) {
		if ev.Pressed {
			presses++
		} else {
			releases++
		}
	})
	if presses != 200 {
		t.Errorf("presses = %d, want 200", presses)
	}
	if releases < 1 || releases > presses {
		t.Errorf("releases = %d out of range", releases)
	}
	if kb.Dropped() != 0 {
		t.Errorf("unexpected drops: %d", kb.Dropped())
	}
}

func TestKeyboardRejectRetriesRelease(t *testing.T) {
	kb := NewKeyboard(KeyboardConfig{QueueSize: 2, Overflow: OverflowReject})
	kb.Press(KeyFire)
	kb.Press('a')

	kb.Tick()
	kb.Tick() // release due, queue full
	if kb.HoldState(KeyFire) != 1 {
		t.Fatalf("rejected release not kept due: state %d", kb.HoldState(KeyFire))
	}

	evs := drainAll(kb)
	for i := 0; i < 5; i++ {
		kb.Tick()
	}
	evs = append(evs, drainAll(kb)...)

	want := []KeyEvent{
		{Pressed: true, Code: KeyFire},
		{Pressed: true, Code: 'a'},
		{Pressed: false, Code: KeyFire},
	}
	if len(evs) != len(want) {
		t.Fatalf("events %v, want %v", evs, want)
	}
	for i := range want {
		if evs[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, evs[i], want[i])
		}
	}
	if kb.HoldState(KeyFire) != 0 {
		t.Errorf("fire still held after release")
	}
}

func TestKeyboardRejectTapIsAtomic(t *testing.T) {
	kb := NewKeyboard(KeyboardConfig{QueueSize: 2, Overflow: OverflowReject, TapRelease: true})
	kb.Press('x')

	if err := kb.Hit('b'); err != ErrQueueFull {
		t.Fatalf("Hit on one free slot = %v, want ErrQueueFull", err)
	}
	if kb.Dropped() != 2 {
		t.Errorf("Dropped() = %d, want 2", kb.Dropped())
	}
	evs := drainAll(kb)
	if len(evs) != 1 || evs[0] != (KeyEvent{Pressed: true, Code: 'x'}) {
		t.Fatalf("events %v, want only the press of x", evs)
	}

	if err := kb.Hit('b'); err != nil {
		t.Fatalf("Hit on empty queue: %v", err)
	}
	evs = drainAll(kb)
	if len(evs) != 2 || evs[0] != (KeyEvent{Pressed: true, Code: 'b'}) || evs[1] != (KeyEvent{Pressed: false, Code: 'b'}) {
		t.Errorf("events %v, want press and release of b", evs)
	}
}
