package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertLinear(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		from  Unit
		to    Unit
		want  float64
	}{
		{"mm to m", 1500, Millimeter, Meter, 1.5},
		{"m to mm", 1.5, Meter, Millimeter, 1500},
		{"km to m", 2.5, Kilometer, Meter, 2500},
		{"cm to km", 100000, Centimeter, Kilometer, 1},
		{"t to kg", 1.2, Tonne, Kilogram, 1200},
		{"kN to N", 3, Kilonewton, Newton, 3000},
		{"percent to fraction", 45, Percent, Fraction, 0.45},
		{"permille to percent", 25, Permille, Percent, 2.5},
		{"h to s", 2, Hour, Second, 7200},
		{"bar to Pa", 1, Bar, Pascal, 1e5},
		{"km/h to m/s", 36, KilometerPerHour, MeterPerSecond, 10},
		{"l to m3", 500, Liter, CubicMeter, 0.5},
		{"mm2 to m2", 1e6, SquareMillimeter, SquareMeter, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.value, tt.from, tt.to)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestConvertAngle(t *testing.T) {
	got, err := Convert(180, Degree, Radian)
	require.NoError(t, err)
	assert.InDelta(t, 3.141592653589793, got, 1e-12)

	got, err = Convert(200, Gon, Degree)
	require.NoError(t, err)
	assert.InDelta(t, 180, got, 1e-9)
}

func TestConvertTemperature(t *testing.T) {
	got, err := Convert(0, Celsius, Kelvin)
	require.NoError(t, err)
	assert.InDelta(t, 273.15, got, 1e-9)

	got, err = Convert(212, Fahrenheit, Celsius)
	require.NoError(t, err)
	assert.InDelta(t, 100, got, 1e-9)

	got, err = Convert(300, Kelvin, Fahrenheit)
	require.NoError(t, err)
	assert.InDelta(t, 80.33, got, 1e-2)
}

func TestConvertIdentityIsExact(t *testing.T) {
	// Same-unit conversion must not take the scale round trip.
	for _, u := range []Unit{Meter, Millimeter, Degree, Celsius, Percent} {
		got, err := Convert(0.1, u, u)
		require.NoError(t, err)
		assert.Equal(t, 0.1, got)
	}
}

func TestConvertRoundTrip(t *testing.T) {
	pairs := []struct{ a, b Unit }{
		{Millimeter, Kilometer},
		{Degree, Gon},
		{Celsius, Fahrenheit},
		{Percent, Permille},
		{Bar, Kilopascal},
	}
	for _, p := range pairs {
		t.Run(string(p.a)+"-"+string(p.b), func(t *testing.T) {
			mid, err := Convert(42.5, p.a, p.b)
			require.NoError(t, err)
			back, err := Convert(mid, p.b, p.a)
			require.NoError(t, err)
			assert.InDelta(t, 42.5, back, 1e-9)
		})
	}
}

func TestConvertCrossCategoryFails(t *testing.T) {
	tests := []struct{ from, to Unit }{
		{Meter, Kilogram},
		{Degree, Second},
		{Celsius, Meter},
		{Percent, Pascal},
	}
	for _, tt := range tests {
		_, err := Convert(1, tt.from, tt.to)
		require.Error(t, err)
		var convErr *ConversionError
		assert.ErrorAs(t, err, &convErr)
		assert.Equal(t, tt.from, convErr.From)
		assert.Equal(t, tt.to, convErr.To)
	}
}

func TestConvertUnknownUnitFails(t *testing.T) {
	_, err := Convert(1, Unit("furlong"), Meter)
	var convErr *ConversionError
	require.ErrorAs(t, err, &convErr)
}

func TestConvertNoneFails(t *testing.T) {
	// Unit-less values have no conversion, not even to themselves via
	// another category.
	_, err := Convert(1, None, Meter)
	require.Error(t, err)
}

func TestCategoryStandard(t *testing.T) {
	assert.Equal(t, Meter, CategoryLength.Standard())
	assert.Equal(t, Kelvin, CategoryTemperature.Standard())
	assert.Equal(t, Radian, CategoryAngle.Standard())
	assert.True(t, Meter.IsStandard())
	assert.False(t, Millimeter.IsStandard())
}

func TestParseUnit(t *testing.T) {
	u, err := ParseUnit("mm")
	require.NoError(t, err)
	assert.Equal(t, Millimeter, u)

	u, err = ParseUnit("")
	require.NoError(t, err)
	assert.Equal(t, None, u)

	_, err = ParseUnit("cubit")
	assert.Error(t, err)
}
