// Package transform implements block transforms: independent, composable
// units of pattern-driven rewriting applied in place to one control block at
// a time. The pipeline runs a fixed catalog of them over every block of a
// method, repeatedly, until a fixed point.
package transform

import (
	"slices"

	"relift/internal/ir"
)

// BlockTransform rewrites one recognizable pattern family within a block.
// Run scans and mutates block in place and must leave it structurally valid
// on return, whether or not it changed anything. Pattern non-match is not an
// error: unmatched instructions are simply left alone.
type BlockTransform interface {
	// Name identifies the transform in step traces and run configuration.
	Name() string
	// Run applies the transform to block, recording rewrites via ctx.
	Run(block *ir.Block, ctx *Context)
}

// Catalog returns the block transforms in their run order.
func Catalog() []BlockTransform {
	return []BlockTransform{
		NullCoalescingTransform{},
	}
}

// catalogFor filters the catalog down to the transforms enabled in opts.
// An empty enabled list means the full catalog.
func catalogFor(opts *Options) []BlockTransform {
	all := Catalog()
	if opts == nil || len(opts.Transforms) == 0 {
		return all
	}
	enabled := make([]BlockTransform, 0, len(all))
	for _, t := range all {
		if slices.Contains(opts.Transforms, t.Name()) {
			enabled = append(enabled, t)
		}
	}
	return enabled
}
