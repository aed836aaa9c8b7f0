// Package component defines the derived, structured views computed from
// an element's tagged parameters: locations, dimensions, and references.
//
// Components are never primary data. They are a pure function of the
// element's semantic index, recomputed whenever a relevant parameter
// changes; their absence is a valid state, not an error.
package component

import "math"

// Type classifies a component.
type Type string

const (
	TypeLocation  Type = "location"
	TypeDimension Type = "dimension"
	TypeReference Type = "reference"
)

// Component is a derived view attached to an element under a unique name.
type Component interface {
	// Name is the element-level component map key.
	Name() string
	// Type reports the component kind for grouped lookups.
	Type() Type
}

// Coordinate is a position in the project coordinate frame, in standard
// units (meters).
type Coordinate struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// DistanceTo returns the 3-axis Euclidean distance to another coordinate.
func (c Coordinate) DistanceTo(other Coordinate) float64 {
	dx := c.X - other.X
	dy := c.Y - other.Y
	dz := c.Z - other.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Rotation holds per-axis rotations in radians.
type Rotation struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// PointLocation is the location of a punctual element.
type PointLocation struct {
	Position Coordinate `json:"position"`
	Rotation Rotation   `json:"rotation"`
}

// Name implements Component.
func (PointLocation) Name() string { return "location" }

// Type implements Component.
func (PointLocation) Type() Type { return TypeLocation }

// LineLocation is the location of a linear element, described by its two
// end points.
type LineLocation struct {
	Start PointLocation `json:"start"`
	End   PointLocation `json:"end"`
}

// Name implements Component.
func (LineLocation) Name() string { return "location" }

// Type implements Component.
func (LineLocation) Type() Type { return TypeLocation }

// Length returns the Euclidean distance between the two end points.
func (l LineLocation) Length() float64 {
	return l.Start.Position.DistanceTo(l.End.Position)
}

// Shape distinguishes the two dimension variants.
type Shape string

const (
	ShapeRound       Shape = "round"
	ShapeRectangular Shape = "rectangular"
)

// Dimension is the derived size view of an element. Exactly one variant
// applies: round (diameter/radius) or rectangular (width/height/depth).
// Length is either taken from a length parameter or computed from the
// line location; a computed length is never written back as a parameter.
type Dimension struct {
	Shape    Shape   `json:"shape"`
	Width    float64 `json:"width,omitempty"`
	Height   float64 `json:"height,omitempty"`
	Depth    float64 `json:"depth,omitempty"`
	Diameter float64 `json:"diameter,omitempty"`
	Radius   float64 `json:"radius,omitempty"`
	Length   float64 `json:"length,omitempty"`
}

// Name implements Component.
func (Dimension) Name() string { return "dimension" }

// Type implements Component.
func (Dimension) Type() Type { return TypeDimension }

// Reference is a directed, identifier-based edge to another element. The
// target is never resolved by the core; only its kind and identifier are
// recorded.
type Reference struct {
	// RelName is the declared relationship name, normally the target kind.
	RelName       string `json:"name"`
	TargetKind    string `json:"target_kind"`
	TargetID      string `json:"target_id"`
	Bidirectional bool   `json:"bidirectional"`
}

// Name implements Component. Reference names are qualified by target so
// that one element can reference several others.
func (r Reference) Name() string {
	return "reference/" + r.TargetKind + "/" + r.TargetID
}

// Type implements Component.
func (Reference) Type() Type { return TypeReference }
