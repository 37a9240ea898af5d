package input

import (
	"log/slog"
	"sync"
)

// KeyboardConfig configures a Keyboard
type KeyboardConfig struct {
	QueueSize  int
	Overflow   OverflowPolicy
	HoldKeys   []uint8 // nil selects DefaultHoldKeys
	HoldFrames int

	// TapRelease makes Hit follow a non-holdable press with an immediate release
	TapRelease bool

	Logger *slog.Logger
}

// DefaultKeyboardConfig returns the classic 16-slot, 2-frame configuration with tap release on
func DefaultKeyboardConfig() KeyboardConfig {
	return KeyboardConfig{
		Overflow:   OverflowOverwrite,
		TapRelease: true,
	}
}

// Keyboard couples the event queue with the hold table behind one lock
// Input goroutines call Press/Hit while the frame loop calls Tick/Dequeue/Drain
type Keyboard struct {
	mu         sync.Mutex
	queue      *Queue
	holds      *HoldTable
	tapRelease bool
	logger     *slog.Logger
}

// NewKeyboard builds a keyboard from cfg
func NewKeyboard(cfg KeyboardConfig) *Keyboard {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	holdKeys := cfg.HoldKeys
	if holdKeys == nil {
		holdKeys = DefaultHoldKeys
	}
	return &Keyboard{
		queue:      NewQueue(cfg.QueueSize, cfg.Overflow),
		holds:      NewHoldTable(holdKeys, cfg.HoldFrames),
		tapRelease: cfg.TapRelease,
		logger:     logger,
	}
}

// push enqueues under the held lock, logging overflow
func (k *Keyboard) push(pressed bool, code uint8) error {
	before := k.queue.Dropped()
	err := k.queue.Enqueue(pressed, code)
	k.logOverflow(before, pressed, code)
	return err
}

func (k *Keyboard) logOverflow(before uint64, pressed bool, code uint8) {
	if k.queue.Dropped() == before {
		return
	}
	k.logger.Debug("key queue overflow",
		"code", KeyName(code),
		"pressed", pressed,
		"policy", k.queue.Policy().String(),
		"dropped", k.queue.Dropped())
}

// Press enqueues a press and arms the hold counter if code is holdable
// A repeated press re-arms the counter and enqueues another press
func (k *Keyboard) Press(code uint8) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	err := k.push(true, code)
	k.holds.Press(code)
	return err
}

// Release enqueues a release, for sources that report key-up
func (k *Keyboard) Release(code uint8) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.push(false, code)
}

// Tap enqueues a press immediately followed by a release
// Under OverflowReject the pair is accepted or dropped as a whole
func (k *Keyboard) Tap(code uint8) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	before := k.queue.Dropped()
	err := k.queue.PushPair(KeyEvent{Pressed: true, Code: code}, KeyEvent{Pressed: false, Code: code})
	k.logOverflow(before, true, code)
	return err
}

// Hit is the entry point for press-only sources
// Holdable keys are pressed and released by Tick; others are tapped when TapRelease is set
func (k *Keyboard) Hit(code uint8) error {
	if k.tapRelease && !k.Holdable(code) {
		return k.Tap(code)
	}
	return k.Press(code)
}

// Tick advances the hold counters by one frame, enqueueing due releases
// A release rejected by a full queue is retried on the next tick
// Call once per rendered frame, after the flush
func (k *Keyboard) Tick() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.holds.Tick(func(code uint8) bool {
		return k.push(false, code) == nil
	})
}

// Dequeue removes the oldest event; false when empty
func (k *Keyboard) Dequeue() (KeyEvent, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.queue.Dequeue()
}

// Drain delivers every pending event to fn in FIFO order
// fn runs without the lock held, so it may call Press
func (k *Keyboard) Drain(fn func(KeyEvent)) int {
	n := 0
	for {
		ev, ok := k.Dequeue()
		if !ok {
			return n
		}
		fn(ev)
		n++
	}
}

// Holdable reports whether code gets a synthesized release
func (k *Keyboard) Holdable(code uint8) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.holds.Holdable(code)
}

// HoldState returns the frames left before code is released; 0 when idle
func (k *Keyboard) HoldState(code uint8) int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.holds.State(code)
}

// Len returns the number of pending events
func (k *Keyboard) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.queue.Len()
}

// Dropped returns the number of events lost to overflow
func (k *Keyboard) Dropped() uint64 {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.queue.Dropped()
}

// Reset empties the queue and idles every hold counter
func (k *Keyboard) Reset() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.queue.Reset()
	k.holds.Reset()
}
