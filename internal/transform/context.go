package transform

import (
	"fmt"
	"sync/atomic"
	"time"

	"fortio.org/safecast"

	"relift/internal/ir"
	"relift/internal/steps"
)

// Context is the shared per-run state of a transform-pipeline invocation:
// run configuration, the step recorder, and the monotonically progressing
// step counter. One Context serves all blocks of a run; Step is safe to call
// from the per-block worker goroutines. Discard the Context when the run
// ends.
type Context struct {
	opts      *Options
	rec       steps.Recorder
	stepLimit uint64
	seq       atomic.Uint64
}

// NewContext creates the context for one pipeline run. rec may be nil to
// discard steps.
func NewContext(opts *Options, rec steps.Recorder) (*Context, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	limit, err := safecast.Conv[uint64](opts.StepLimit)
	if err != nil {
		return nil, fmt.Errorf("transform: step limit %d: %w", opts.StepLimit, err)
	}
	if rec == nil {
		rec = steps.NopRecorder{}
	}
	return &Context{opts: opts, rec: rec, stepLimit: limit}, nil
}

// Options returns the run configuration.
func (c *Context) Options() *Options { return c.opts }

// Steps returns the number of steps taken so far.
func (c *Context) Steps() uint64 { return c.seq.Load() }

// Step records that transform rewrote node, with the rendered text of the
// mutated region before and after. Every successful match must call this
// exactly once so external tooling can diff the rewrite.
func (c *Context) Step(transform string, node ir.Node, detail, before, after string) {
	seq := c.seq.Add(1)
	if c.stepLimit > 0 && seq > c.stepLimit {
		return
	}
	c.rec.Record(&steps.Event{
		Seq:       seq,
		Time:      time.Now(),
		Transform: transform,
		NodeKind:  node.OpKind().String(),
		Detail:    detail,
		Before:    before,
		After:     after,
	})
}
