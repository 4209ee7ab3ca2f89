package steps

import (
	"fmt"
	"io"
	"sync"
)

// StreamRecorder writes a one-line text summary of every event immediately
// to an io.Writer. Useful for watching a run live; the msgpack file format
// is the surface for tooling.
type StreamRecorder struct {
	mu sync.Mutex
	w  io.Writer
}

// NewStreamRecorder creates a StreamRecorder writing to w.
func NewStreamRecorder(w io.Writer) *StreamRecorder {
	return &StreamRecorder{w: w}
}

// Record writes the event summary line.
func (s *StreamRecorder) Record(ev *Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	detail := ""
	if ev.Detail != "" {
		detail = " " + ev.Detail
	}
	// Best-effort write; a broken trace sink must not fail the run.
	_, _ = fmt.Fprintf(s.w, "step %d: %s on %s%s\n", ev.Seq, ev.Transform, ev.NodeKind, detail)
}

func (s *StreamRecorder) Flush() error { return nil }
func (s *StreamRecorder) Close() error { return nil }
