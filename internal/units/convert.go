package units

import "fmt"

// ConversionError reports a conversion that is not defined, either because
// the units belong to different categories or because a unit is unknown.
type ConversionError struct {
	From   Unit
	To     Unit
	Reason string
}

// Error implements the error interface.
func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %s -> %s: %s", e.From, e.To, e.Reason)
}

// Convert converts a value between two units of the same category.
//
// Same-unit conversion returns the input unchanged, with no floating point
// round trip. Cross-category conversion fails with a *ConversionError;
// values are never silently coerced.
func Convert(value float64, from, to Unit) (float64, error) {
	if from == to {
		return value, nil
	}
	if !from.IsValid() {
		return 0, &ConversionError{From: from, To: to, Reason: "unknown source unit"}
	}
	if !to.IsValid() {
		return 0, &ConversionError{From: from, To: to, Reason: "unknown target unit"}
	}
	fromCat, toCat := from.Category(), to.Category()
	if fromCat != toCat {
		return 0, &ConversionError{
			From:   from,
			To:     to,
			Reason: fmt.Sprintf("category mismatch (%s vs %s)", fromCat, toCat),
		}
	}
	if fromCat == CategoryNone {
		return 0, &ConversionError{From: from, To: to, Reason: "unit-less value"}
	}
	if fromCat == CategoryTemperature {
		return fromKelvin(toKelvin(value, from), to), nil
	}
	standard := value * unitTable[from].scale
	return standard / unitTable[to].scale, nil
}

// toKelvin converts a temperature value to the standard unit.
func toKelvin(value float64, from Unit) float64 {
	switch from {
	case Celsius:
		return value + 273.15
	case Fahrenheit:
		return (value-32)*5.0/9.0 + 273.15
	default:
		return value
	}
}

// fromKelvin converts a Kelvin value to the target temperature unit.
func fromKelvin(value float64, to Unit) float64 {
	switch to {
	case Celsius:
		return value - 273.15
	case Fahrenheit:
		return (value-273.15)*9.0/5.0 + 32
	default:
		return value
	}
}
