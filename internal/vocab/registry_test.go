package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eraschle/railnorm/internal/units"
)

func TestNewRegistrySeedsBuiltins(t *testing.T) {
	r := NewRegistry()

	def, ok := r.Lookup(TagCoordX)
	require.True(t, ok)
	assert.Equal(t, TypeNumber, def.DataType)
	assert.Equal(t, units.Meter, def.DefaultUnit)

	def, ok = r.Lookup(TagMaterial)
	require.True(t, ok)
	assert.Equal(t, TypeString, def.DataType)
	assert.Equal(t, units.None, def.DefaultUnit)

	assert.False(t, r.Known(ProcessTag("no_such_tag")))
}

func TestRegisterOverridesLastWriteWins(t *testing.T) {
	r := NewRegistry()

	// A client project measuring in millimeters overrides the default.
	err := r.Register(Definition{
		Tag:         TagWidth,
		DataType:    TypeNumber,
		DefaultUnit: units.Millimeter,
		Description: "client-specific width",
	})
	require.NoError(t, err)

	def, ok := r.Lookup(TagWidth)
	require.True(t, ok)
	assert.Equal(t, units.Millimeter, def.DefaultUnit)
	assert.Equal(t, "client-specific width", def.Description)
}

func TestRegisterCustomTag(t *testing.T) {
	r := NewRegistry()
	custom := ProcessTag("ballast_depth")

	require.NoError(t, r.Register(Definition{
		Tag:         custom,
		DataType:    TypeNumber,
		DefaultUnit: units.Centimeter,
	}))
	assert.True(t, r.Known(custom))
}

func TestRegisterRejectsInvalidDefinitions(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		name string
		def  Definition
	}{
		{"empty tag", Definition{DataType: TypeString}},
		{"unknown datatype", Definition{Tag: "x", DataType: DataType("blob")}},
		{"unit on non-numeric", Definition{Tag: "x", DataType: TypeString, DefaultUnit: units.Meter}},
		{"unknown unit", Definition{Tag: "x", DataType: TypeNumber, DefaultUnit: units.Unit("cubit")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, r.Register(tt.def))
		})
	}
}

func TestDefinitionsSorted(t *testing.T) {
	r := NewRegistry()
	defs := r.Definitions()
	require.NotEmpty(t, defs)
	for i := 1; i < len(defs); i++ {
		assert.Less(t, string(defs[i-1].Tag), string(defs[i].Tag))
	}
}

func TestReferenceTags(t *testing.T) {
	assert.True(t, TagFoundationUUID.IsReference())
	assert.Equal(t, "foundation", TagFoundationUUID.ReferenceKind())
	assert.Equal(t, "drainage_pipe", TagPipeUUID.ReferenceKind())

	// The element's own identity is not a reference.
	assert.False(t, TagUUID.IsReference())
	assert.Equal(t, "", TagUUID.ReferenceKind())
	assert.False(t, TagWidth.IsReference())
}
