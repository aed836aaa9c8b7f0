// Package vocab defines the closed semantic vocabulary used to tag
// parameters, and the registry that binds each tag to its expected
// datatype and default unit.
//
// A ProcessTag is the join key between heterogeneous client field names
// and one canonical meaning: converters map source fields onto tags, and
// everything downstream (component derivation, calculation consumers)
// speaks only in tags.
package vocab

import "strings"

// ProcessTag is a semantic role a parameter can carry.
type ProcessTag string

// Identity tags. Injected automatically during element construction when
// a record does not supply them.
const (
	TagUUID        ProcessTag = "uuid"
	TagName        ProcessTag = "name"
	TagElementType ProcessTag = "element_type"
	TagDomain      ProcessTag = "domain"
)

// Position and rotation tags. The *_end variants describe the second
// point of a linear element.
const (
	TagCoordX ProcessTag = "x_coordinate"
	TagCoordY ProcessTag = "y_coordinate"
	TagCoordZ ProcessTag = "z_coordinate"

	TagRotationX ProcessTag = "x_rotation"
	TagRotationY ProcessTag = "y_rotation"
	TagRotationZ ProcessTag = "z_rotation"

	TagCoordXEnd ProcessTag = "x_coordinate_end"
	TagCoordYEnd ProcessTag = "y_coordinate_end"
	TagCoordZEnd ProcessTag = "z_coordinate_end"

	TagRotationXEnd ProcessTag = "x_rotation_end"
	TagRotationYEnd ProcessTag = "y_rotation_end"
	TagRotationZEnd ProcessTag = "z_rotation_end"
)

// Dimension tags.
const (
	TagWidth    ProcessTag = "width"
	TagHeight   ProcessTag = "height"
	TagDepth    ProcessTag = "depth"
	TagLength   ProcessTag = "length"
	TagDiameter ProcessTag = "diameter"
	TagRadius   ProcessTag = "radius"
)

// Track geometry tags.
const (
	TagTrackGauge        ProcessTag = "track_gauge"
	TagClothoidParameter ProcessTag = "clothoid_parameter"
	TagRadiusStart       ProcessTag = "radius_start"
	TagRadiusEnd         ProcessTag = "radius_end"
	TagCant              ProcessTag = "cant"
)

// Per-kind attribute tags.
const (
	TagMastHeight      ProcessTag = "mast_height"
	TagFoundationWidth ProcessTag = "foundation_width"
	TagMaterial        ProcessTag = "material"
	TagStation         ProcessTag = "station"
	TagInstallDate     ProcessTag = "install_date"
)

// Reference-shaped tags. The tag name encodes the kind of the referenced
// element as "<kind>_uuid"; element construction scans its parameters for
// these and declares the corresponding cross-element references.
const (
	TagFoundationUUID ProcessTag = "foundation_uuid"
	TagMastUUID       ProcessTag = "mast_uuid"
	TagTrackUUID      ProcessTag = "track_uuid"
	TagJochUUID       ProcessTag = "joch_uuid"
	TagCantileverUUID ProcessTag = "cantilever_uuid"
	TagSleeperUUID    ProcessTag = "sleeper_uuid"
	TagPipeUUID       ProcessTag = "drainage_pipe_uuid"
	TagShaftUUID      ProcessTag = "drainage_shaft_uuid"
)

// TagNone marks an untagged parameter.
const TagNone ProcessTag = ""

// String returns the tag's canonical identifier.
func (t ProcessTag) String() string { return string(t) }

// IsReference returns true for reference-shaped tags ("<kind>_uuid"),
// excluding the element's own identity tag.
func (t ProcessTag) IsReference() bool {
	return t != TagUUID && strings.HasSuffix(string(t), "_uuid")
}

// ReferenceKind returns the element kind encoded in a reference-shaped
// tag, or "" if the tag is not reference-shaped.
func (t ProcessTag) ReferenceKind() string {
	if !t.IsReference() {
		return ""
	}
	return strings.TrimSuffix(string(t), "_uuid")
}

// PositionTags are the tags deciding whether a location component exists.
var PositionTags = []ProcessTag{TagCoordX, TagCoordY, TagCoordZ}

// EndPositionTags promote a point location to a line location.
var EndPositionTags = []ProcessTag{TagCoordXEnd, TagCoordYEnd, TagCoordZEnd}

// RoundDimensionTags select the round dimension variant.
var RoundDimensionTags = []ProcessTag{TagDiameter, TagRadius}

// RectDimensionTags select the rectangular dimension variant.
var RectDimensionTags = []ProcessTag{TagWidth, TagHeight, TagDepth}

// CurveTags promote a plain track to a curved track during kind
// resolution.
var CurveTags = []ProcessTag{TagClothoidParameter, TagRadiusStart, TagRadiusEnd}
