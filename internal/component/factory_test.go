package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eraschle/railnorm/internal/param"
	"github.com/eraschle/railnorm/internal/units"
	"github.com/eraschle/railnorm/internal/vocab"
)

func num(tag vocab.ProcessTag, value float64) param.Parameter {
	return param.Tagged(string(tag), value, vocab.TypeNumber, tag, units.Meter)
}

func index(params ...param.Parameter) Index {
	idx := make(Index, len(params))
	for _, p := range params {
		idx[p.Process] = p
	}
	return idx
}

func TestDeriveLocationPoint(t *testing.T) {
	idx := index(
		num(vocab.TagCoordX, 100),
		num(vocab.TagCoordY, 200),
		num(vocab.TagCoordZ, 300),
	)

	loc, ok := Factory{}.DeriveLocation(idx)
	require.True(t, ok)

	point, isPoint := loc.(PointLocation)
	require.True(t, isPoint)
	assert.Equal(t, Coordinate{X: 100, Y: 200, Z: 300}, point.Position)
	assert.Equal(t, Rotation{}, point.Rotation)
}

func TestDeriveLocationLine(t *testing.T) {
	idx := index(
		num(vocab.TagCoordX, 0),
		num(vocab.TagCoordY, 0),
		num(vocab.TagCoordZ, 0),
		num(vocab.TagCoordXEnd, 3),
		num(vocab.TagCoordYEnd, 4),
		num(vocab.TagCoordZEnd, 0),
	)

	loc, ok := Factory{}.DeriveLocation(idx)
	require.True(t, ok)

	line, isLine := loc.(LineLocation)
	require.True(t, isLine)
	assert.Equal(t, Coordinate{X: 3, Y: 4, Z: 0}, line.End.Position)
	assert.Equal(t, 5.0, line.Length())
}

func TestDeriveLocationPartialAxes(t *testing.T) {
	// A single axis tag is enough for a point; the others default to the
	// neutral value at access time.
	idx := index(num(vocab.TagCoordZ, 42))

	loc, ok := Factory{}.DeriveLocation(idx)
	require.True(t, ok)
	point := loc.(PointLocation)
	assert.Equal(t, Coordinate{Z: 42}, point.Position)
}

func TestDeriveLocationAbsent(t *testing.T) {
	// No position tags at all means no location, not a zero-valued one.
	idx := index(num(vocab.TagWidth, 1))
	_, ok := Factory{}.DeriveLocation(idx)
	assert.False(t, ok)
}

func TestDeriveDimensionRectangular(t *testing.T) {
	idx := index(
		num(vocab.TagWidth, 1.5),
		num(vocab.TagHeight, 1.0),
		num(vocab.TagDepth, 2.0),
	)

	comp, ok := Factory{}.DeriveDimension(idx)
	require.True(t, ok)

	dim := comp.(Dimension)
	assert.Equal(t, ShapeRectangular, dim.Shape)
	assert.Equal(t, 1.5, dim.Width)
	assert.Equal(t, 1.0, dim.Height)
	assert.Equal(t, 2.0, dim.Depth)
	assert.Zero(t, dim.Diameter)
}

func TestDeriveDimensionRoundWinsOverRectangular(t *testing.T) {
	idx := index(
		num(vocab.TagDiameter, 0.8),
		num(vocab.TagWidth, 1.5),
	)

	comp, ok := Factory{}.DeriveDimension(idx)
	require.True(t, ok)

	dim := comp.(Dimension)
	assert.Equal(t, ShapeRound, dim.Shape)
	assert.Equal(t, 0.8, dim.Diameter)
	assert.Equal(t, 0.4, dim.Radius)
	assert.Zero(t, dim.Width)
}

func TestDeriveDimensionRadiusImpliesDiameter(t *testing.T) {
	idx := index(num(vocab.TagRadius, 0.25))

	comp, ok := Factory{}.DeriveDimension(idx)
	require.True(t, ok)
	dim := comp.(Dimension)
	assert.Equal(t, 0.5, dim.Diameter)
	assert.Equal(t, 0.25, dim.Radius)
}

func TestDeriveDimensionAbsent(t *testing.T) {
	idx := index(num(vocab.TagCoordX, 1))
	_, ok := Factory{}.DeriveDimension(idx)
	assert.False(t, ok)
}

func TestDeriveDimensionLengthFromLine(t *testing.T) {
	idx := index(
		num(vocab.TagDiameter, 0.3),
		num(vocab.TagCoordX, 0),
		num(vocab.TagCoordYEnd, 4),
		num(vocab.TagCoordXEnd, 3),
	)

	comp, ok := Factory{}.DeriveDimension(idx)
	require.True(t, ok)
	dim := comp.(Dimension)
	assert.Equal(t, 5.0, dim.Length)
}

func TestDeriveDimensionExplicitLengthWins(t *testing.T) {
	idx := index(
		num(vocab.TagDiameter, 0.3),
		num(vocab.TagLength, 12.5),
		num(vocab.TagCoordX, 0),
		num(vocab.TagCoordXEnd, 3),
	)

	comp, ok := Factory{}.DeriveDimension(idx)
	require.True(t, ok)
	assert.Equal(t, 12.5, comp.(Dimension).Length)
}

func TestDeriveIdempotent(t *testing.T) {
	idx := index(
		num(vocab.TagCoordX, 1),
		num(vocab.TagWidth, 2),
	)

	first := Factory{}.Derive(idx)
	second := Factory{}.Derive(idx)
	assert.Equal(t, first, second)
	assert.Len(t, first, 2)
}

func TestReferenceNamesQualified(t *testing.T) {
	a := Reference{RelName: "foundation", TargetKind: "foundation", TargetID: "f-1"}
	b := Reference{RelName: "foundation", TargetKind: "foundation", TargetID: "f-2"}
	assert.NotEqual(t, a.Name(), b.Name())
	assert.Equal(t, TypeReference, a.Type())
}

func TestDerivationTagsCoverGeometry(t *testing.T) {
	for _, tag := range []vocab.ProcessTag{
		vocab.TagCoordX, vocab.TagCoordZEnd, vocab.TagWidth,
		vocab.TagDiameter, vocab.TagLength, vocab.TagRotationZ,
	} {
		assert.True(t, DerivationTags[tag], "tag %s should trigger derivation", tag)
	}
	assert.False(t, DerivationTags[vocab.TagMaterial])
}
