package reader

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// JSONReader reads records from a JSON file holding an array of flat
// objects.
type JSONReader struct {
	Path      string
	Kind      string
	KindField string
	Source    string
}

// Read loads all records from the file.
func (r *JSONReader) Read(ctx context.Context) ([]RawRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(r.Path)
	if err != nil {
		return nil, fmt.Errorf("json reader: reading %s: %w", r.Path, err)
	}

	var rows []map[string]any
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("json reader: decoding %s: %w", r.Path, err)
	}

	records := make([]RawRecord, 0, len(rows))
	for _, fields := range rows {
		records = append(records, RawRecord{
			Fields: fields,
			Kind:   kindOf(fields, r.KindField, r.Kind),
			Source: r.Source,
		})
	}
	return records, nil
}
