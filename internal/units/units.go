// Package units defines the closed physical unit taxonomy and the
// conversion engine used to normalize parameter values.
//
// Every unit belongs to exactly one category, and conversion is defined
// only between units of the same category. Each category designates one
// standard (SI) unit that normalized values are expressed in.
package units

import "fmt"

// Category groups units that are convertible into each other.
type Category string

const (
	CategoryNone        Category = "none"
	CategoryLength      Category = "length"
	CategoryArea        Category = "area"
	CategoryVolume      Category = "volume"
	CategoryMass        Category = "mass"
	CategoryForce       Category = "force"
	CategoryAngle       Category = "angle"
	CategoryRatio       Category = "ratio"
	CategoryTime        Category = "time"
	CategoryTemperature Category = "temperature"
	CategoryPressure    Category = "pressure"
	CategoryVelocity    Category = "velocity"
)

// Unit identifies a physical unit a parameter value is expressed in.
type Unit string

const (
	// None marks a parameter that carries no physical unit.
	None Unit = "none"

	// Length.
	Millimeter Unit = "mm"
	Centimeter Unit = "cm"
	Meter      Unit = "m"
	Kilometer  Unit = "km"

	// Area.
	SquareMillimeter Unit = "mm2"
	SquareCentimeter Unit = "cm2"
	SquareMeter      Unit = "m2"

	// Volume.
	CubicCentimeter Unit = "cm3"
	Liter           Unit = "l"
	CubicMeter      Unit = "m3"

	// Mass.
	Gram     Unit = "g"
	Kilogram Unit = "kg"
	Tonne    Unit = "t"

	// Force.
	Newton     Unit = "N"
	Kilonewton Unit = "kN"

	// Angle.
	Radian Unit = "rad"
	Degree Unit = "deg"
	Gon    Unit = "gon"

	// Ratio.
	Fraction Unit = "fraction"
	Percent  Unit = "percent"
	Permille Unit = "permille"

	// Time.
	Second Unit = "s"
	Minute Unit = "min"
	Hour   Unit = "h"

	// Temperature.
	Kelvin     Unit = "K"
	Celsius    Unit = "C"
	Fahrenheit Unit = "F"

	// Pressure.
	Pascal     Unit = "Pa"
	Kilopascal Unit = "kPa"
	Bar        Unit = "bar"

	// Velocity.
	MeterPerSecond   Unit = "m/s"
	KilometerPerHour Unit = "km/h"
)

// unitInfo carries the category and the linear scale to the category's
// standard unit. Temperature additionally uses an affine offset, handled
// in convert.go.
type unitInfo struct {
	category Category
	scale    float64
}

var unitTable = map[Unit]unitInfo{
	None: {CategoryNone, 1},

	Millimeter: {CategoryLength, 0.001},
	Centimeter: {CategoryLength, 0.01},
	Meter:      {CategoryLength, 1},
	Kilometer:  {CategoryLength, 1000},

	SquareMillimeter: {CategoryArea, 1e-6},
	SquareCentimeter: {CategoryArea, 1e-4},
	SquareMeter:      {CategoryArea, 1},

	CubicCentimeter: {CategoryVolume, 1e-6},
	Liter:           {CategoryVolume, 1e-3},
	CubicMeter:      {CategoryVolume, 1},

	Gram:     {CategoryMass, 0.001},
	Kilogram: {CategoryMass, 1},
	Tonne:    {CategoryMass, 1000},

	Newton:     {CategoryForce, 1},
	Kilonewton: {CategoryForce, 1000},

	Radian: {CategoryAngle, 1},
	Degree: {CategoryAngle, 0.017453292519943295},
	Gon:    {CategoryAngle, 0.015707963267948967},

	Fraction: {CategoryRatio, 1},
	Percent:  {CategoryRatio, 0.01},
	Permille: {CategoryRatio, 0.001},

	Second: {CategoryTime, 1},
	Minute: {CategoryTime, 60},
	Hour:   {CategoryTime, 3600},

	Kelvin:     {CategoryTemperature, 1},
	Celsius:    {CategoryTemperature, 1},
	Fahrenheit: {CategoryTemperature, 5.0 / 9.0},

	Pascal:     {CategoryPressure, 1},
	Kilopascal: {CategoryPressure, 1000},
	Bar:        {CategoryPressure, 1e5},

	MeterPerSecond:   {CategoryVelocity, 1},
	KilometerPerHour: {CategoryVelocity, 1.0 / 3.6},
}

// standardUnits maps each category to its designated standard unit.
var standardUnits = map[Category]Unit{
	CategoryNone:        None,
	CategoryLength:      Meter,
	CategoryArea:        SquareMeter,
	CategoryVolume:      CubicMeter,
	CategoryMass:        Kilogram,
	CategoryForce:       Newton,
	CategoryAngle:       Radian,
	CategoryRatio:       Fraction,
	CategoryTime:        Second,
	CategoryTemperature: Kelvin,
	CategoryPressure:    Pascal,
	CategoryVelocity:    MeterPerSecond,
}

// Category returns the category the unit belongs to, or CategoryNone for
// unknown units.
func (u Unit) Category() Category {
	if info, ok := unitTable[u]; ok {
		return info.category
	}
	return CategoryNone
}

// IsValid returns true if the unit is part of the taxonomy.
func (u Unit) IsValid() bool {
	_, ok := unitTable[u]
	return ok
}

// IsStandard returns true if the unit is the standard unit of its category.
func (u Unit) IsStandard() bool {
	return standardUnits[u.Category()] == u
}

// String returns the unit's canonical identifier.
func (u Unit) String() string { return string(u) }

// Standard returns the category's designated standard unit.
func (c Category) Standard() Unit {
	return standardUnits[c]
}

// String returns the category's canonical identifier.
func (c Category) String() string { return string(c) }

// ParseUnit resolves a serialized unit identifier. An empty string maps to
// None; unknown identifiers are an error.
func ParseUnit(s string) (Unit, error) {
	if s == "" {
		return None, nil
	}
	u := Unit(s)
	if !u.IsValid() {
		return None, fmt.Errorf("unknown unit %q", s)
	}
	return u, nil
}
