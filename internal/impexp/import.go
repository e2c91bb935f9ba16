package impexp

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kamaro-labs/centime/internal/model"
)

// ErrBadFormat indicates the import file failed the structural check.
// Import is all-or-nothing: on this error the caller's data is untouched.
var ErrBadFormat = errors.New("invalid import file")

// Import reads a JSON array of records and runs the shallow structural
// check: the document must be an array, and if it is non-empty its first
// element must carry an id and a numeric amount. That is deliberately not
// full-schema validation; deeper damage in later elements is accepted.
func Import(r io.Reader) ([]model.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read import file: %w", err)
	}

	// Unmarshal alone is not enough: `null` decodes into a nil slice
	// without error, and an empty list would then wipe the caller's data.
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: not a JSON array of records", ErrBadFormat)
	}

	var probe []map[string]any
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("%w: not a JSON array of records", ErrBadFormat)
	}
	if len(probe) > 0 {
		id, _ := probe[0]["id"].(string)
		_, amountOK := probe[0]["amount"].(float64)
		if id == "" || !amountOK {
			return nil, fmt.Errorf("%w: records must have an id and a numeric amount", ErrBadFormat)
		}
	}

	var records []model.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
	}
	if records == nil {
		records = []model.Record{}
	}
	return records, nil
}

// ImportFile reads and checks the file at path.
func ImportFile(path string) ([]model.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open import file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Import(f)
}
