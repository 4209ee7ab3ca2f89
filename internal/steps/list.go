package steps

import (
	"slices"
	"sync"
)

// ListRecorder keeps every event in memory, unbounded. It backs trace-file
// writes, where the whole run must survive; interactive watching uses the
// bounded ring instead.
type ListRecorder struct {
	mu     sync.Mutex
	events []Event
}

// NewListRecorder creates an empty ListRecorder.
func NewListRecorder() *ListRecorder {
	return &ListRecorder{}
}

// Record appends the event.
func (l *ListRecorder) Record(ev *Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, *ev)
}

// Snapshot returns a copy of all recorded events in step order. Parallel
// block workers may record out of sequence; the copy is sorted by Seq.
func (l *ListRecorder) Snapshot() []Event {
	l.mu.Lock()
	defer l.mu.Unlock()

	result := slices.Clone(l.events)
	sortBySeq(result)
	return result
}

func (l *ListRecorder) Flush() error { return nil }
func (l *ListRecorder) Close() error { return nil }

func sortBySeq(events []Event) {
	slices.SortFunc(events, func(a, b Event) int {
		switch {
		case a.Seq < b.Seq:
			return -1
		case a.Seq > b.Seq:
			return 1
		default:
			return 0
		}
	})
}
