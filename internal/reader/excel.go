package reader

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExcelReader reads records from an XLSX worksheet with a header row.
type ExcelReader struct {
	Path string
	// Sheet is the worksheet name; the first sheet is used when empty.
	Sheet     string
	Kind      string
	KindField string
	Source    string
}

// Read loads all records from the worksheet. Cell values arrive as the
// formatted strings excelize produces; numeric coercion happens later.
func (r *ExcelReader) Read(ctx context.Context) ([]RawRecord, error) {
	f, err := excelize.OpenFile(r.Path)
	if err != nil {
		return nil, fmt.Errorf("excel reader: opening %s: %w", r.Path, err)
	}
	defer func() { _ = f.Close() }()

	sheet := r.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("excel reader: %s has no sheets", r.Path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("excel reader: reading sheet %s of %s: %w", sheet, r.Path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	var records []RawRecord
	for _, row := range rows[1:] {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if len(row) == 0 {
			continue
		}
		fields := make(map[string]any, len(header))
		for i, name := range header {
			if name == "" || i >= len(row) {
				continue
			}
			fields[name] = row[i]
		}
		if len(fields) == 0 {
			continue
		}
		records = append(records, RawRecord{
			Fields: fields,
			Kind:   kindOf(fields, r.KindField, r.Kind),
			Source: r.Source,
		})
	}
	return records, nil
}
