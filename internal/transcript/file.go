package transcript

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// snapshotFile is the on-disk interchange format for transcripts.
// Aliases are deliberately not persisted: they live for one loaded
// transcript and reset to defaults on every load.
type snapshotFile struct {
	Title    string    `json:"title"`
	Segments []Segment `json:"segments"`
	FlatText string    `json:"flat_text,omitempty"`
	Summary  string    `json:"summary,omitempty"`
	Duration float64   `json:"duration,omitempty"`
}

// LoadFile reads a snapshot interchange file into a fresh store. A
// missing title falls back to the file's base name.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var f snapshotFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", path, err)
	}
	if f.Title == "" {
		base := filepath.Base(path)
		f.Title = strings.TrimSuffix(base, filepath.Ext(base))
	}

	store := NewStore()
	store.Load(f.Title, f.Segments, f.FlatText)
	store.SetSummary(f.Summary)
	store.SetDuration(f.Duration)
	return store, nil
}

// SaveFile writes a snapshot to the interchange format.
func SaveFile(path string, snap Snapshot) error {
	f := snapshotFile{
		Title:    snap.Title,
		Segments: snap.Segments,
		FlatText: snap.FlatText,
		Summary:  snap.Summary,
		Duration: snap.Duration,
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}
