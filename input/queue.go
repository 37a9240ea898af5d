package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lixenwraith/frameterm/parameter"
)

// ErrQueueFull is returned by Enqueue under OverflowReject when no slot is free
var ErrQueueFull = errors.New("key queue full")

// OverflowPolicy decides what a full queue does with a new event
type OverflowPolicy uint8

const (
	OverflowOverwrite OverflowPolicy = iota // Drop the oldest undrained event
	OverflowReject                          // Drop the new event, return ErrQueueFull
)

func (p OverflowPolicy) String() string {
	if p == OverflowReject {
		return "reject"
	}
	return "overwrite"
}

// ParseOverflowPolicy resolves a config name
func ParseOverflowPolicy(s string) (OverflowPolicy, error) {
	switch strings.ToLower(s) {
	case "", "overwrite":
		return OverflowOverwrite, nil
	case "reject":
		return OverflowReject, nil
	}
	return OverflowOverwrite, fmt.Errorf("unknown overflow policy %q", s)
}

// Queue is a bounded FIFO ring of key events
// Not safe for concurrent use; Keyboard adds locking
//
// Cursors stay in [0, capacity); count disambiguates full from empty
type Queue struct {
	events  []KeyEvent
	read    int
	write   int
	count   int
	policy  OverflowPolicy
	dropped uint64
}

// NewQueue allocates a queue; capacity <= 0 selects the default size
func NewQueue(capacity int, policy OverflowPolicy) *Queue {
	if capacity <= 0 {
		capacity = parameter.KeyQueueSize
	}
	return &Queue{
		events: make([]KeyEvent, capacity),
		policy: policy,
	}
}

// Enqueue appends (pressed, code) at the write cursor
func (q *Queue) Enqueue(pressed bool, code uint8) error {
	return q.Push(KeyEvent{Pressed: pressed, Code: code})
}

// Push appends ev, applying the overflow policy when full
func (q *Queue) Push(ev KeyEvent) error {
	if q.count == len(q.events) {
		q.dropped++
		if q.policy == OverflowReject {
			return ErrQueueFull
		}
		// Overwrite: advance read past the oldest event
		q.read = (q.read + 1) % len(q.events)
		q.count--
	}

	q.events[q.write] = ev
	q.write = (q.write + 1) % len(q.events)
	q.count++
	return nil
}

// PushPair appends a and b together
// Under OverflowReject both are dropped unless two slots are free, so a press never loses its release
func (q *Queue) PushPair(a, b KeyEvent) error {
	if q.policy == OverflowReject && len(q.events)-q.count < 2 {
		q.dropped += 2
		return ErrQueueFull
	}
	q.Push(a)
	return q.Push(b)
}

// Dequeue removes the oldest event; false when empty
func (q *Queue) Dequeue() (KeyEvent, bool) {
	if q.count == 0 {
		return KeyEvent{}, false
	}
	ev := q.events[q.read]
	q.read = (q.read + 1) % len(q.events)
	q.count--
	return ev, true
}

// Drain dequeues until empty, passing each event to fn in FIFO order
// Returns the number of events delivered
func (q *Queue) Drain(fn func(KeyEvent)) int {
	n := 0
	for {
		ev, ok := q.Dequeue()
		if !ok {
			return n
		}
		fn(ev)
		n++
	}
}

// Len returns the number of pending events
func (q *Queue) Len() int { return q.count }

// Cap returns the ring capacity
func (q *Queue) Cap() int { return len(q.events) }

// Dropped returns the number of events lost to overflow since creation or Reset
func (q *Queue) Dropped() uint64 { return q.dropped }

// Policy returns the overflow policy
func (q *Queue) Policy() OverflowPolicy { return q.policy }

// Reset empties the queue and clears the drop counter
func (q *Queue) Reset() {
	q.read, q.write, q.count = 0, 0, 0
	q.dropped = 0
}
