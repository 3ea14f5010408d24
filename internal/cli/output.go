package cli

import (
	"encoding/json"
	"io"

	"github.com/pfrederiksen/scratchrank/internal/storage"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatHTML OutputFormat = "html"
	FormatJSON OutputFormat = "json"
)

// writeSnapshotJSON writes the rankings snapshot document to w, the
// same shape storage persists as rankings.json.
func writeSnapshotJSON(w io.Writer, snapshot *storage.Snapshot) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(snapshot)
}
