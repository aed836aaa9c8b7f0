package vocab

import (
	"fmt"
	"sort"
	"sync"

	"github.com/eraschle/railnorm/internal/units"
)

// DataType is the declared value type of a tagged parameter.
type DataType string

const (
	TypeString     DataType = "string"
	TypeNumber     DataType = "number"
	TypeBool       DataType = "bool"
	TypeIdentifier DataType = "identifier"
	TypeDateTime   DataType = "datetime"
)

// ValidDataTypes is the set of all valid datatypes.
var ValidDataTypes = []DataType{
	TypeString,
	TypeNumber,
	TypeBool,
	TypeIdentifier,
	TypeDateTime,
}

// IsValid returns true if the datatype is recognized.
func (dt DataType) IsValid() bool {
	for _, v := range ValidDataTypes {
		if dt == v {
			return true
		}
	}
	return false
}

// String returns the datatype's canonical identifier.
func (dt DataType) String() string { return string(dt) }

// Definition describes the registered metadata of a process tag.
type Definition struct {
	Tag         ProcessTag
	DataType    DataType
	DefaultUnit units.Unit
	Description string
}

// Validate checks definition invariants. A non-none unit is only allowed
// on numeric tags.
func (d Definition) Validate() error {
	if d.Tag == TagNone {
		return fmt.Errorf("definition: empty tag")
	}
	if !d.DataType.IsValid() {
		return fmt.Errorf("definition %s: unknown datatype %q", d.Tag, d.DataType)
	}
	if d.DefaultUnit != units.None && !d.DefaultUnit.IsValid() {
		return fmt.Errorf("definition %s: unknown unit %q", d.Tag, d.DefaultUnit)
	}
	if d.DefaultUnit != units.None && d.DataType != TypeNumber {
		return fmt.Errorf("definition %s: unit %s requires numeric datatype, got %s",
			d.Tag, d.DefaultUnit, d.DataType)
	}
	return nil
}

// Registry binds process tags to their definitions. It is an explicit,
// injectable object: clients construct one, optionally register custom
// definitions at startup, and pass it to the converters and factories
// that need it. Later registration replaces earlier for the same tag.
type Registry struct {
	mu   sync.RWMutex
	defs map[ProcessTag]Definition
}

// NewRegistry creates a registry seeded with the built-in vocabulary.
func NewRegistry() *Registry {
	r := &Registry{defs: make(map[ProcessTag]Definition, len(builtinDefinitions))}
	for _, def := range builtinDefinitions {
		r.defs[def.Tag] = def
	}
	return r
}

// Register adds or replaces the definition for a tag.
func (r *Registry) Register(def Definition) error {
	if err := def.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defs[def.Tag] = def
	return nil
}

// Lookup returns the definition for a tag.
func (r *Registry) Lookup(tag ProcessTag) (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.defs[tag]
	return def, ok
}

// Known returns true if the tag has a registered definition.
func (r *Registry) Known(tag ProcessTag) bool {
	_, ok := r.Lookup(tag)
	return ok
}

// Definitions returns all registered definitions sorted by tag.
func (r *Registry) Definitions() []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	defs := make([]Definition, 0, len(r.defs))
	for _, def := range r.defs {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Tag < defs[j].Tag })
	return defs
}

// builtinDefinitions is the seed vocabulary. Geometric values default to
// meters; converters declare the actual source unit per field.
var builtinDefinitions = []Definition{
	{Tag: TagUUID, DataType: TypeIdentifier, Description: "stable element identity"},
	{Tag: TagName, DataType: TypeString, Description: "display name"},
	{Tag: TagElementType, DataType: TypeString, Description: "element kind tag"},
	{Tag: TagDomain, DataType: TypeString, Description: "engineering domain"},

	{Tag: TagCoordX, DataType: TypeNumber, DefaultUnit: units.Meter, Description: "x coordinate"},
	{Tag: TagCoordY, DataType: TypeNumber, DefaultUnit: units.Meter, Description: "y coordinate"},
	{Tag: TagCoordZ, DataType: TypeNumber, DefaultUnit: units.Meter, Description: "z coordinate (height)"},
	{Tag: TagRotationX, DataType: TypeNumber, DefaultUnit: units.Radian, Description: "rotation around x axis"},
	{Tag: TagRotationY, DataType: TypeNumber, DefaultUnit: units.Radian, Description: "rotation around y axis"},
	{Tag: TagRotationZ, DataType: TypeNumber, DefaultUnit: units.Radian, Description: "rotation around z axis"},
	{Tag: TagCoordXEnd, DataType: TypeNumber, DefaultUnit: units.Meter, Description: "end point x coordinate"},
	{Tag: TagCoordYEnd, DataType: TypeNumber, DefaultUnit: units.Meter, Description: "end point y coordinate"},
	{Tag: TagCoordZEnd, DataType: TypeNumber, DefaultUnit: units.Meter, Description: "end point z coordinate"},
	{Tag: TagRotationXEnd, DataType: TypeNumber, DefaultUnit: units.Radian, Description: "end point rotation around x axis"},
	{Tag: TagRotationYEnd, DataType: TypeNumber, DefaultUnit: units.Radian, Description: "end point rotation around y axis"},
	{Tag: TagRotationZEnd, DataType: TypeNumber, DefaultUnit: units.Radian, Description: "end point rotation around z axis"},

	{Tag: TagWidth, DataType: TypeNumber, DefaultUnit: units.Meter, Description: "rectangular width"},
	{Tag: TagHeight, DataType: TypeNumber, DefaultUnit: units.Meter, Description: "rectangular height"},
	{Tag: TagDepth, DataType: TypeNumber, DefaultUnit: units.Meter, Description: "rectangular depth"},
	{Tag: TagLength, DataType: TypeNumber, DefaultUnit: units.Meter, Description: "element length"},
	{Tag: TagDiameter, DataType: TypeNumber, DefaultUnit: units.Meter, Description: "round diameter"},
	{Tag: TagRadius, DataType: TypeNumber, DefaultUnit: units.Meter, Description: "round radius"},

	{Tag: TagTrackGauge, DataType: TypeNumber, DefaultUnit: units.Meter, Description: "track gauge"},
	{Tag: TagClothoidParameter, DataType: TypeNumber, Description: "clothoid transition parameter"},
	{Tag: TagRadiusStart, DataType: TypeNumber, DefaultUnit: units.Meter, Description: "curve radius at track start"},
	{Tag: TagRadiusEnd, DataType: TypeNumber, DefaultUnit: units.Meter, Description: "curve radius at track end"},
	{Tag: TagCant, DataType: TypeNumber, DefaultUnit: units.Meter, Description: "track cant (superelevation)"},

	{Tag: TagMastHeight, DataType: TypeNumber, DefaultUnit: units.Meter, Description: "mast height above foundation"},
	{Tag: TagFoundationWidth, DataType: TypeNumber, DefaultUnit: units.Meter, Description: "foundation block width"},
	{Tag: TagMaterial, DataType: TypeString, Description: "construction material"},
	{Tag: TagStation, DataType: TypeNumber, DefaultUnit: units.Meter, Description: "chainage along the axis"},
	{Tag: TagInstallDate, DataType: TypeDateTime, Description: "installation date"},

	{Tag: TagFoundationUUID, DataType: TypeIdentifier, Description: "referenced foundation"},
	{Tag: TagMastUUID, DataType: TypeIdentifier, Description: "referenced mast"},
	{Tag: TagTrackUUID, DataType: TypeIdentifier, Description: "referenced track"},
	{Tag: TagJochUUID, DataType: TypeIdentifier, Description: "referenced joch"},
	{Tag: TagCantileverUUID, DataType: TypeIdentifier, Description: "referenced cantilever"},
	{Tag: TagSleeperUUID, DataType: TypeIdentifier, Description: "referenced sleeper"},
	{Tag: TagPipeUUID, DataType: TypeIdentifier, Description: "referenced drainage pipe"},
	{Tag: TagShaftUUID, DataType: TypeIdentifier, Description: "referenced drainage shaft"},
}
