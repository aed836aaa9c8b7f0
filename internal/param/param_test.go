package param

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eraschle/railnorm/internal/units"
	"github.com/eraschle/railnorm/internal/vocab"
)

func TestWithUnitConvertsValueOnly(t *testing.T) {
	p := Tagged("Breite", 1500.0, vocab.TypeNumber, vocab.TagWidth, units.Millimeter)

	converted, err := p.WithUnit(units.Meter)
	require.NoError(t, err)

	assert.Equal(t, 1.5, converted.Value)
	assert.Equal(t, units.Meter, converted.Unit)
	assert.Equal(t, vocab.TagWidth, converted.Process)
	assert.Equal(t, "Breite", converted.Name)

	// The original is untouched.
	assert.Equal(t, 1500.0, p.Value)
	assert.Equal(t, units.Millimeter, p.Unit)
}

func TestWithUnitSameUnitNoOp(t *testing.T) {
	p := Tagged("x", 0.1, vocab.TypeNumber, vocab.TagCoordX, units.Meter)
	out, err := p.WithUnit(units.Meter)
	require.NoError(t, err)
	assert.Equal(t, p, out)
}

func TestWithUnitCrossCategoryFails(t *testing.T) {
	p := Tagged("x", 5.0, vocab.TypeNumber, vocab.TagCoordX, units.Meter)
	_, err := p.WithUnit(units.Kilogram)
	var convErr *units.ConversionError
	require.ErrorAs(t, err, &convErr)
}

func TestWithUnitNonNumericFails(t *testing.T) {
	p := Tagged("material", "concrete", vocab.TypeString, vocab.TagMaterial, units.None)
	_, err := p.WithUnit(units.Meter)
	assert.Error(t, err)
}

func TestStandardize(t *testing.T) {
	params := []Parameter{
		Tagged("Breite", 1500.0, vocab.TypeNumber, vocab.TagWidth, units.Millimeter),
		Tagged("x", 100.0, vocab.TypeNumber, vocab.TagCoordX, units.Meter),
		Tagged("material", "steel", vocab.TypeString, vocab.TagMaterial, units.None),
		Tagged("winkel", 90.0, vocab.TypeNumber, vocab.TagRotationZ, units.Degree),
	}

	out, err := Standardize(params)
	require.NoError(t, err)
	require.Len(t, out, 4)

	assert.Equal(t, 1.5, out[0].Value)
	assert.Equal(t, units.Meter, out[0].Unit)

	// Already standard: untouched.
	assert.Equal(t, params[1], out[1])
	// Non-numeric: untouched.
	assert.Equal(t, params[2], out[2])

	rot, err := out[3].Float()
	require.NoError(t, err)
	assert.InDelta(t, 1.5707963267948966, rot, 1e-12)
	assert.Equal(t, units.Radian, out[3].Unit)

	// Input slice is unchanged.
	assert.Equal(t, 1500.0, params[0].Value)
}

func TestValidateUnitRequiresNumeric(t *testing.T) {
	p := Parameter{Name: "material", Value: "steel", DataType: vocab.TypeString, Unit: units.Meter}
	assert.Error(t, p.Validate())

	p = Tagged("w", 1.0, vocab.TypeNumber, vocab.TagWidth, units.Meter)
	assert.NoError(t, p.Validate())
}

func TestTypedAccessors(t *testing.T) {
	f := New("n", 4.2, vocab.TypeNumber)
	v, err := f.Float()
	require.NoError(t, err)
	assert.Equal(t, 4.2, v)

	i := New("n", 7, vocab.TypeNumber)
	v, err = i.Float()
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)

	s := New("s", "abc", vocab.TypeString)
	_, err = s.Float()
	assert.Error(t, err)

	text, err := s.Text()
	require.NoError(t, err)
	assert.Equal(t, "abc", text)

	b := New("b", true, vocab.TypeBool)
	ok, err := b.Bool()
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestTimeAccessor(t *testing.T) {
	p := New("installed", "2023-04-12", vocab.TypeDateTime)
	ts, err := p.Time()
	require.NoError(t, err)
	assert.Equal(t, 2023, ts.Year())

	bad := New("installed", 42, vocab.TypeDateTime)
	_, err = bad.Time()
	assert.Error(t, err)
}
