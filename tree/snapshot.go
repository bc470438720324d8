package tree

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tsawler/booknav/model"
)

// snapshot is the serialized form of a content-tree snapshot.
type snapshot struct {
	Sections []*model.Section `json:"sections"`
}

// Load decodes a JSON content-tree snapshot into a Store. The format is an
// object with a "sections" array; each section carries its path, attributes,
// subsection paths, pages and optional toc, matching the content system's
// input contract.
func Load(r io.Reader) (*Store, error) {
	var snap snapshot
	dec := json.NewDecoder(r)
	if err := dec.Decode(&snap); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return New(snap.Sections...), nil
}

// LoadSnapshot decodes a JSON content-tree snapshot from a byte slice.
func LoadSnapshot(data []byte) (*Store, error) {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return New(snap.Sections...), nil
}
