// Package param defines the atomic tagged value every element is built
// from.
//
// A Parameter keeps the original source field name for traceability and
// carries an optional semantic tag plus a unit. Parameters are value
// objects: conversion and replacement produce new values, attached
// parameters are never mutated in place.
package param

import (
	"fmt"
	"time"

	"github.com/eraschle/railnorm/internal/units"
	"github.com/eraschle/railnorm/internal/vocab"
)

// Parameter is one tagged value of an element.
type Parameter struct {
	// Name is the original source field label, kept for traceability.
	Name     string           `json:"name"`
	Value    any              `json:"value"`
	DataType vocab.DataType   `json:"datatype"`
	Process  vocab.ProcessTag `json:"process,omitempty"`
	Unit     units.Unit       `json:"unit,omitempty"`
}

// New creates an untagged, unit-less parameter.
func New(name string, value any, dataType vocab.DataType) Parameter {
	return Parameter{Name: name, Value: value, DataType: dataType, Unit: units.None}
}

// Tagged creates a parameter carrying a semantic tag.
func Tagged(name string, value any, dataType vocab.DataType, tag vocab.ProcessTag, unit units.Unit) Parameter {
	if unit == "" {
		unit = units.None
	}
	return Parameter{Name: name, Value: value, DataType: dataType, Process: tag, Unit: unit}
}

// Validate checks the parameter invariants: a non-none unit is only
// allowed on numeric parameters.
func (p Parameter) Validate() error {
	if p.Unit != units.None && p.Unit != "" {
		if !p.Unit.IsValid() {
			return fmt.Errorf("parameter %q: unknown unit %q", p.Name, p.Unit)
		}
		if p.DataType != vocab.TypeNumber {
			return fmt.Errorf("parameter %q: unit %s requires numeric datatype, got %s",
				p.Name, p.Unit, p.DataType)
		}
	}
	if p.DataType != "" && !p.DataType.IsValid() {
		return fmt.Errorf("parameter %q: unknown datatype %q", p.Name, p.DataType)
	}
	return nil
}

// IsNumeric returns true if the parameter is declared numeric.
func (p Parameter) IsNumeric() bool {
	return p.DataType == vocab.TypeNumber
}

// Float returns the parameter value as float64.
func (p Parameter) Float() (float64, error) {
	switch v := p.Value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("parameter %q: value %v (%T) is not numeric", p.Name, p.Value, p.Value)
	}
}

// Text returns the parameter value as string.
func (p Parameter) Text() (string, error) {
	if s, ok := p.Value.(string); ok {
		return s, nil
	}
	return "", fmt.Errorf("parameter %q: value %v (%T) is not a string", p.Name, p.Value, p.Value)
}

// Bool returns the parameter value as bool.
func (p Parameter) Bool() (bool, error) {
	if b, ok := p.Value.(bool); ok {
		return b, nil
	}
	return false, fmt.Errorf("parameter %q: value %v (%T) is not a bool", p.Name, p.Value, p.Value)
}

// Time returns the parameter value as time.Time. RFC 3339 and plain date
// strings are accepted for datetime parameters arriving from JSON.
func (p Parameter) Time() (time.Time, error) {
	switch v := p.Value.(type) {
	case time.Time:
		return v, nil
	case string:
		for _, layout := range []string{time.RFC3339, "2006-01-02"} {
			if ts, err := time.Parse(layout, v); err == nil {
				return ts, nil
			}
		}
	}
	return time.Time{}, fmt.Errorf("parameter %q: value %v (%T) is not a timestamp", p.Name, p.Value, p.Value)
}

// WithUnit returns a copy of the parameter converted to the target unit.
// The semantic tag is unchanged; only value and unit differ. Conversion
// fails with *units.ConversionError when the categories differ, and with
// a plain error for non-numeric parameters.
func (p Parameter) WithUnit(target units.Unit) (Parameter, error) {
	if p.Unit == target {
		return p, nil
	}
	if !p.IsNumeric() {
		return Parameter{}, fmt.Errorf("parameter %q: cannot convert non-numeric value", p.Name)
	}
	value, err := p.Float()
	if err != nil {
		return Parameter{}, err
	}
	converted, err := units.Convert(value, p.Unit, target)
	if err != nil {
		return Parameter{}, err
	}
	out := p
	out.Value = converted
	out.Unit = target
	return out, nil
}

// Standardize converts every parameter with a non-standard unit to its
// category's standard unit. Non-numeric and already-standard parameters
// pass through untouched. Conversion failures abort; values are never
// silently left half-normalized.
func Standardize(params []Parameter) ([]Parameter, error) {
	out := make([]Parameter, len(params))
	for i, p := range params {
		if !p.IsNumeric() || p.Unit == units.None || p.Unit.IsStandard() {
			out[i] = p
			continue
		}
		converted, err := p.WithUnit(p.Unit.Category().Standard())
		if err != nil {
			return nil, fmt.Errorf("standardize %q: %w", p.Name, err)
		}
		out[i] = converted
	}
	return out, nil
}
