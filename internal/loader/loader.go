// Package loader reads caller-assembled KB snapshots from disk or stdin.
package loader

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/lumenkit/kbscore/schema"
)

// LoadSnapshot reads a snapshot from the given JSON file. The path "-" reads
// from stdin. Collections absent from the document decode to nil and score as
// zero matching records; unknown top-level keys are ignored.
func LoadSnapshot(path string) (*schema.Snapshot, error) {
	if path == "" {
		return nil, fmt.Errorf("snapshot path is required")
	}

	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open snapshot %q: %w", path, err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	return DecodeSnapshot(r)
}

// DecodeSnapshot decodes a snapshot from JSON.
func DecodeSnapshot(r io.Reader) (*schema.Snapshot, error) {
	var snap schema.Snapshot
	dec := json.NewDecoder(r)
	if err := dec.Decode(&snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return &snap, nil
}
