// Package steps records which transform rewrote which node. Every
// successful match reports one step; the recorded before/after renders let
// external diff tooling show exactly what a rewrite did, which is the only
// practical way to debug a pipeline where dozens of transforms touch the
// same tree.
package steps

import "time"

// Event is one recorded rewrite step.
type Event struct {
	// Seq is the per-run step number, monotonically increasing.
	Seq uint64
	// Time is the wall-clock timestamp of the rewrite.
	Time time.Time
	// Transform is the name of the transform that matched.
	Transform string
	// NodeKind is the kind of the node that was mutated.
	NodeKind string
	// Detail is an optional free-form note, e.g. the variable folded away.
	Detail string
	// Before is the canonical render of the mutated region before rewrite.
	Before string
	// After is the canonical render of the mutated region after rewrite.
	After string
}

// Recorder consumes step events. Implementations must be safe for use from
// multiple goroutines: distinct blocks may be transformed in parallel.
type Recorder interface {
	// Record stores one event.
	Record(ev *Event)
	// Flush ensures buffered events are written out.
	Flush() error
	// Close flushes and releases resources.
	Close() error
}

// NopRecorder discards all events.
type NopRecorder struct{}

func (NopRecorder) Record(*Event) {}
func (NopRecorder) Flush() error  { return nil }
func (NopRecorder) Close() error  { return nil }
