package steps

import "sync"

// RingRecorder keeps the last N events in memory (circular buffer). It is
// the default recorder for interactive runs: bounded memory no matter how
// many rewrites a long method produces.
type RingRecorder struct {
	mu       sync.RWMutex
	events   []Event
	capacity int
	head     int  // next write position
	full     bool // has wrapped around
}

// NewRingRecorder creates a RingRecorder with the given capacity.
func NewRingRecorder(capacity int) *RingRecorder {
	if capacity <= 0 {
		capacity = 4096
	}
	return &RingRecorder{
		events:   make([]Event, capacity),
		capacity: capacity,
	}
}

// Record adds an event to the ring buffer.
func (r *RingRecorder) Record(ev *Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events[r.head] = *ev
	r.head = (r.head + 1) % r.capacity
	if r.head == 0 {
		r.full = true
	}
}

// Snapshot returns a copy of all stored events in step order. Parallel
// block workers may record out of sequence, so the buffer's arrival order
// is not Seq order; the copy is sorted before returning.
func (r *RingRecorder) Snapshot() []Event {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []Event
	if !r.full {
		result = make([]Event, r.head)
		copy(result, r.events[:r.head])
	} else {
		result = make([]Event, r.capacity)
		copy(result, r.events[r.head:])
		copy(result[r.capacity-r.head:], r.events[:r.head])
	}
	sortBySeq(result)
	return result
}

func (r *RingRecorder) Flush() error { return nil }
func (r *RingRecorder) Close() error { return nil }
