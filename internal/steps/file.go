package steps

import (
	"fmt"
	"os"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when FilePayload format changes.
const fileSchemaVersion uint16 = 1

// FilePayload is the on-disk form of a recorded run, consumed by the steps
// viewer and external diff tooling.
type FilePayload struct {
	// Schema version for safe invalidation when the format changes.
	Schema uint16
	// Method is the display name of the method body the run transformed.
	Method string
	// Events are the recorded steps in order.
	Events []Event
}

// WriteFile serializes events to path as msgpack.
func WriteFile(path, method string, events []Event) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("steps: create %s: %w", path, err)
	}

	payload := FilePayload{
		Schema: fileSchemaVersion,
		Method: method,
		Events: events,
	}
	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(&payload); err != nil {
		f.Close()
		return fmt.Errorf("steps: encode %s: %w", path, err)
	}
	return f.Close()
}

// ReadFile loads a recorded run from path, rejecting unknown schemas.
func ReadFile(path string) (*FilePayload, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("steps: open %s: %w", path, err)
	}
	defer f.Close()

	var payload FilePayload
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("steps: decode %s: %w", path, err)
	}
	if payload.Schema != fileSchemaVersion {
		return nil, fmt.Errorf("steps: %s has schema %d, want %d", path, payload.Schema, fileSchemaVersion)
	}
	return &payload, nil
}
