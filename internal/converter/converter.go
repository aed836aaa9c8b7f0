// Package converter maps raw source records onto tagged parameter
// descriptions the element factory consumes.
//
// Converters are the only place where source field names are interpreted.
// The fuzzy, substring-based tag guessing lives in GenericConverter at
// this boundary; the core model never infers tags itself.
package converter

import (
	"fmt"

	"github.com/eraschle/railnorm/internal/element"
	"github.com/eraschle/railnorm/internal/param"
	"github.com/eraschle/railnorm/internal/reader"
	"github.com/eraschle/railnorm/internal/vocab"
)

// Converter turns one raw record into an element description.
type Converter interface {
	Convert(rec reader.RawRecord) (element.Description, error)
}

// datatypeOf infers the descriptor datatype from the dynamic value of an
// unmapped field.
func datatypeOf(v any) vocab.DataType {
	switch v.(type) {
	case float64, float32, int, int64:
		return vocab.TypeNumber
	case bool:
		return vocab.TypeBool
	default:
		return vocab.TypeString
	}
}

// untagged builds a pass-through descriptor for a field no mapping
// claims. The value is kept under its source name for traceability.
func untagged(name string, value any) param.Parameter {
	return param.New(name, value, datatypeOf(value))
}

// requireKind validates that the record declares an element kind.
func requireKind(rec reader.RawRecord) error {
	if rec.Kind == "" {
		return fmt.Errorf("record from %q has no element kind", rec.Source)
	}
	return nil
}
