// Package reader loads raw survey and BIM records from the file and
// database formats clients deliver. Readers do no semantic work: they
// produce field maps keyed by the original source field names, which the
// converters then map onto the canonical vocabulary.
package reader

import "context"

// RawRecord is one source record: a mapping from original field name to
// a dynamically typed value, plus the element-kind tag and the source
// identifier it arrived with.
type RawRecord struct {
	Fields map[string]any
	Kind   string
	Source string
}

// Reader loads all records from one source.
type Reader interface {
	Read(ctx context.Context) ([]RawRecord, error)
}

// kindOf picks the record kind: a per-record kind field wins over the
// reader's static kind.
func kindOf(fields map[string]any, kindField, staticKind string) string {
	if kindField != "" {
		if v, ok := fields[kindField].(string); ok && v != "" {
			return v
		}
	}
	return staticKind
}
