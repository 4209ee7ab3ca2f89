package transform

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"relift/internal/ir"
	"relift/internal/steps"
)

// RunMethod transforms every block of one method under the given run
// configuration. When opts.TracePath is set, the recorded steps are written
// there on successful completion; method is the display name stored in the
// trace. A nil opts runs with defaults and no trace.
func RunMethod(ctx context.Context, method string, blocks []*ir.Block, opts *Options) error {
	if opts == nil {
		opts = DefaultOptions()
	}

	var rec steps.Recorder
	var list *steps.ListRecorder
	if opts.TracePath != "" {
		list = steps.NewListRecorder()
		rec = list
	}
	tctx, err := NewContext(opts, rec)
	if err != nil {
		return err
	}

	if err := RunBlocks(ctx, blocks, tctx); err != nil {
		return err
	}
	if list != nil {
		return steps.WriteFile(opts.TracePath, method, list.Snapshot())
	}
	return nil
}

// RunBlock applies the enabled catalog to one block, repeatedly, until a
// sweep changes nothing. The caller owns the block for the duration; no
// other goroutine may touch it.
func RunBlock(block *ir.Block, tctx *Context) {
	transforms := catalogFor(tctx.Options())
	for {
		before := ir.Render(block)
		for _, t := range transforms {
			t.Run(block, tctx)
		}
		if ir.Render(block) == before {
			return
		}
	}
}

// RunBlocks transforms every block of a method. Blocks of one control-flow
// graph share no nodes, so distinct blocks fan out over a bounded worker
// pool; each block is still mutated by exactly one goroutine at a time.
func RunBlocks(ctx context.Context, blocks []*ir.Block, tctx *Context) error {
	jobs := tctx.Options().Workers
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if len(blocks) < jobs {
		jobs = len(blocks)
	}
	if jobs == 0 {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for _, block := range blocks {
		block := block
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			RunBlock(block, tctx)
			return nil
		})
	}
	return g.Wait()
}
