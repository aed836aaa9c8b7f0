package reader

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// CSVReader reads records from a delimited text file with a header row.
type CSVReader struct {
	Path string
	// Comma is the field delimiter; defaults to ','. Swiss survey exports
	// commonly use ';'.
	Comma rune
	// Kind is the element kind assigned to every record unless KindField
	// names a column carrying a per-record kind.
	Kind      string
	KindField string
	Source    string
}

// Read loads all records from the file. Values stay strings; numeric
// coercion is the element factory's job.
func (r *CSVReader) Read(ctx context.Context) ([]RawRecord, error) {
	f, err := os.Open(r.Path)
	if err != nil {
		return nil, fmt.Errorf("csv reader: opening %s: %w", r.Path, err)
	}
	defer func() { _ = f.Close() }()

	cr := csv.NewReader(f)
	if r.Comma != 0 {
		cr.Comma = r.Comma
	}
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("csv reader: reading header of %s: %w", r.Path, err)
	}

	var records []RawRecord
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv reader: reading %s: %w", r.Path, err)
		}
		fields := make(map[string]any, len(header))
		for i, name := range header {
			if i >= len(row) {
				break
			}
			fields[name] = row[i]
		}
		records = append(records, RawRecord{
			Fields: fields,
			Kind:   kindOf(fields, r.KindField, r.Kind),
			Source: r.Source,
		})
	}
	return records, nil
}
