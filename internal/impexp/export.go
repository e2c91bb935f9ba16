// Package impexp moves the record list in and out of the application as
// files: pretty-printed JSON both ways, plus one-way import from bank OFX
// statements.
package impexp

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/kamaro-labs/centime/internal/model"
)

// ExportFileName returns the default export name for a given day, e.g.
// centime-export-2026-08-29.json.
func ExportFileName(today time.Time) string {
	return fmt.Sprintf("centime-export-%s.json", today.Format(model.DateFormat))
}

// Export writes the record list as a pretty-printed JSON array.
func Export(w io.Writer, records []model.Record) error {
	if records == nil {
		records = []model.Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

// ExportFile writes the export to the given path, or to the default
// date-stamped name in the current directory when path is empty. It
// returns the path written.
func ExportFile(path string, records []model.Record) (string, error) {
	if path == "" {
		path = ExportFileName(time.Now())
	}
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := Export(f, records); err != nil {
		return "", err
	}
	return path, nil
}
