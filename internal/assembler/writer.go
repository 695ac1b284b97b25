package assembler

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteStats summarizes a completed write for the operator report.
type WriteStats struct {
	Path  string
	Lines int
	Bytes int
}

// Megabytes converts the byte size for display.
func (s WriteStats) Megabytes() float64 {
	return float64(s.Bytes) / 1024 / 1024
}

// WriteFile renders the document and persists it at path, creating the
// parent directory if absent and overwriting any existing file.
// Filesystem errors are returned unwrapped in meaning: there is no
// retry or partial-write recovery.
func (d *Document) WriteFile(path string) (WriteStats, error) {
	text := d.Render()
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return WriteStats{}, fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return WriteStats{}, fmt.Errorf("failed to write document: %w", err)
	}
	return WriteStats{Path: path, Lines: lineCount(text), Bytes: len(text)}, nil
}
