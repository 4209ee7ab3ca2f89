package transform

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Options is the run configuration of one transform-pipeline invocation.
type Options struct {
	// Transforms lists enabled transform names; empty enables the full
	// catalog.
	Transforms []string `toml:"transforms"`
	// StepLimit caps the number of recorded steps; 0 means unlimited.
	// Bisecting with a shrinking limit is how a misbehaving rewrite is
	// located in a long run.
	StepLimit int64 `toml:"step_limit"`
	// TracePath is where the run's step file is written; empty disables it.
	TracePath string `toml:"trace_path"`
	// Workers bounds per-block parallelism; 0 or less means GOMAXPROCS.
	Workers int `toml:"workers"`
}

// DefaultOptions returns the configuration used when no file is given.
func DefaultOptions() *Options {
	return &Options{}
}

// LoadOptions reads a TOML options file.
func LoadOptions(path string) (*Options, error) {
	opts := DefaultOptions()
	if _, err := toml.DecodeFile(path, opts); err != nil {
		return nil, fmt.Errorf("transform: load options %s: %w", path, err)
	}
	if opts.StepLimit < 0 {
		return nil, fmt.Errorf("transform: options %s: step_limit must not be negative", path)
	}
	return opts, nil
}
