package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pfrederiksen/scratchrank/internal/rank"
)

// SnapshotName is the machine-readable companion to the HTML report
const SnapshotName = "rankings.json"

// Storage writes run artifacts into a data directory
type Storage struct {
	dataDir string
}

// Snapshot is the JSON document written next to the report
type Snapshot struct {
	GeneratedAt string       `json:"generated_at"`
	GameCount   int          `json:"game_count"`
	Rankings    []rank.Entry `json:"rankings"`
}

// New creates a Storage rooted at dataDir, creating the directory if
// needed. A leading ~ is expanded to the user's home directory.
func New(dataDir string) (*Storage, error) {
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Storage{dataDir: dataDir}, nil
}

// WriteReport writes the rendered HTML document under name, replacing
// any previous run's report.
func (s *Storage) WriteReport(name, html string) (string, error) {
	path := filepath.Join(s.dataDir, name)
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return path, nil
}

// WriteSnapshot writes the rankings JSON next to the report.
func (s *Storage) WriteSnapshot(entries []rank.Entry, generatedAt time.Time) (string, error) {
	snapshot := NewSnapshot(entries, generatedAt)

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding snapshot: %w", err)
	}

	path := filepath.Join(s.dataDir, SnapshotName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing snapshot: %w", err)
	}
	return path, nil
}

// NewSnapshot builds the snapshot document for entries.
func NewSnapshot(entries []rank.Entry, generatedAt time.Time) *Snapshot {
	return &Snapshot{
		GeneratedAt: generatedAt.UTC().Format(time.RFC3339),
		GameCount:   len(entries),
		Rankings:    entries,
	}
}
