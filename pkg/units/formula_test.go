package units

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertTemperature_KnownPoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		v        float64
		from, to Unit
		want     float64
	}{
		{"freezing C to F", 0, Celsius, Fahrenheit, 32},
		{"boiling C to F", 100, Celsius, Fahrenheit, 212},
		{"boiling C to K", 100, Celsius, Kelvin, 373.15},
		{"F to C", 212, Fahrenheit, Celsius, 100},
		{"K to C", 0, Kelvin, Celsius, -273.15},
		{"F to K", 32, Fahrenheit, Kelvin, 273.15},
		{"K to F", 273.15, Kelvin, Fahrenheit, 32},
		{"minus forty", -40, Celsius, Fahrenheit, -40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ConvertTemperature(tt.v, tt.from, tt.to)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestConvertDistance_KnownPoints(t *testing.T) {
	t.Parallel()

	got, err := ConvertDistance(1, Mile, Kilometer)
	require.NoError(t, err)
	assert.InDelta(t, 1.609344, got, 1e-12)

	got, err = ConvertDistance(2.5, Kilometer, Meter)
	require.NoError(t, err)
	assert.InDelta(t, 2500, got, 1e-9)

	got, err = ConvertDistance(1609.344, Kilometer, Mile)
	require.NoError(t, err)
	assert.InDelta(t, 1000, got, 1e-9)
}

func TestConvertDistance_MileMeterUsesKilometerRatio(t *testing.T) {
	t.Parallel()

	got, err := ConvertDistance(1, Mile, Meter)
	require.NoError(t, err)
	assert.InDelta(t, 1.609344, got, 1e-12)

	got, err = ConvertDistance(1.609344, Meter, Mile)
	require.NoError(t, err)
	assert.InDelta(t, 1, got, 1e-12)
}

func TestConvertWeight_KnownPoints(t *testing.T) {
	t.Parallel()

	got, err := ConvertWeight(1, Pound, Gram)
	require.NoError(t, err)
	assert.InDelta(t, 453.59237, got, 1e-9)

	got, err = ConvertWeight(1, Pound, Ounce)
	require.NoError(t, err)
	assert.InDelta(t, 16, got, 1e-12)

	got, err = ConvertWeight(28.349523125, Gram, Ounce)
	require.NoError(t, err)
	assert.InDelta(t, 1, got, 1e-12)
}

func TestConvert_RoundTrip(t *testing.T) {
	t.Parallel()

	values := []float64{0, 1, -17.5, 100, 12345.678}
	for _, f := range Families {
		us := Members(f)
		for _, from := range us {
			for _, to := range us {
				if from == to {
					continue
				}
				for _, v := range values {
					there, err := Convert(f, v, from, to)
					require.NoError(t, err)
					back, err := Convert(f, there, to, from)
					require.NoError(t, err)
					assert.InDelta(t, v, back, 1e-9, "%s %v %s->%s->%s", f, v, from, to, from)
				}
			}
		}
	}
}

func TestConvert_UnsupportedPairs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fn       func(float64, Unit, Unit) (float64, error)
		from, to Unit
		msg      string
	}{
		{"distance same unit", ConvertDistance, Kilometer, Kilometer, "unsupported distance conversion: km to km"},
		{"distance foreign unit", ConvertDistance, Kilometer, Gram, "unsupported distance conversion: km to g"},
		{"distance empty", ConvertDistance, "", Mile, "unsupported distance conversion"},
		{"weight same unit", ConvertWeight, Pound, Pound, "unsupported weight conversion: lb to lb"},
		{"weight unknown", ConvertWeight, "kg", Gram, "unsupported weight conversion: kg to g"},
		{"temperature same unit", ConvertTemperature, Kelvin, Kelvin, "unsupported temperature conversion: K to K"},
		{"temperature lowercase", ConvertTemperature, "c", Fahrenheit, "unsupported temperature conversion: c to F"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := tt.fn(1, tt.from, tt.to)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnsupportedConversion))
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestConvert_UnknownFamily(t *testing.T) {
	t.Parallel()

	_, err := Convert("volume", 1, "l", "ml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownType))
	assert.False(t, errors.Is(err, ErrUnsupportedConversion))
}
