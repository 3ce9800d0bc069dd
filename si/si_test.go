package si_test

import (
	"testing"

	"github.com/katalvlaran/quanta/quantity"
	"github.com/katalvlaran/quanta/si"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_BaseAndPrefixes(t *testing.T) {
	cases := []struct {
		input   string
		wantVal float64
		wantDim string
	}{
		{"1 m", 1, "[m]"},
		{"1 km", 1000, "[m]"},
		{"1 mm", 1e-3, "[m]"},
		{"1 kg", 1, "[kg]"},       // kilo prefix + gram
		{"1 g", 1e-3, "[kg]"},     // the gram itself
		{"1 µg", 1e-9, "[kg]"},
		{"1 ug", 1e-9, "[kg]"},    // ASCII micro fallback
		{"1 s", 1, "[s]"},
		{"1 ms", 1e-3, "[s]"},
		{"1 cd", 1, "[cd]"},       // candela, NOT centi-day
		{"1 mol", 1, "[mol]"},
		{"1 mmol", 1e-3, "[mol]"},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			q, err := si.Parse(tc.input)
			require.NoError(t, err)
			assert.InDelta(t, tc.wantVal, q.Raw(), tc.wantVal*1e-12+1e-30)
			assert.Equal(t, tc.wantDim, q.Dimension().String())
		})
	}
}

func TestParse_DerivedUnits(t *testing.T) {
	cases := []struct {
		input   string
		wantDim string
	}{
		{"1 Hz", "[s^-1]"},
		{"1 N", "[m kg s^-2]"},
		{"1 Pa", "[m^-1 kg s^-2]"},
		{"1 J", "[m^2 kg s^-2]"},
		{"1 W", "[m^2 kg s^-3]"},
		{"1 V", "[m^2 kg s^-3 A^-1]"},
		{"1 Ω", "[m^2 kg s^-3 A^-2]"},
		{"1 F", "[m^-2 kg^-1 s^4 A^2]"},
		{"1 L", "[m^3]"},
		{"1 kat", "[s^-1 mol]"},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			q, err := si.Parse(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.wantDim, q.Dimension().String())
		})
	}
}

// TestParse_DerivedEqualsComposed: a derived symbol and its spelled-out
// composition are the same quantity.
func TestParse_DerivedEqualsComposed(t *testing.T) {
	pa, err := si.Parse("1 Pa")
	require.NoError(t, err)
	composed, err := si.Parse("1 kg/(m s^2)")
	require.NoError(t, err)

	eq, err := pa.Equal(composed)
	require.NoError(t, err)
	assert.True(t, eq)

	// 100 kΩ — prefix on a derived unit.
	r, err := si.Parse("100 kΩ")
	require.NoError(t, err)
	assert.InDelta(t, 1e5, r.Raw(), 1e-7)
}

func TestParse_Concentration(t *testing.T) {
	q, err := si.Parse("25 mmol/L")
	require.NoError(t, err)
	assert.Equal(t, "[m^-3 mol]", q.Dimension().String())
	assert.InDelta(t, 25.0, q.Raw(), 1e-9) // 25e-3 mol / 1e-3 m³
}

// TestParse_StandaloneBeatsPrefix pins the shadowing rules: the hour
// unit beats hecto, the day unit beats deci — as standalone symbols
// only.
func TestParse_StandaloneBeatsPrefix(t *testing.T) {
	hour, err := si.Parse("1 h")
	require.NoError(t, err)
	assert.Equal(t, 3600.0, hour.Raw())
	assert.Equal(t, "[s]", hour.Dimension().String())

	day, err := si.Parse("1 d")
	require.NoError(t, err)
	assert.Equal(t, 86400.0, day.Raw())

	// Prefixed forms still decompose.
	hpa, err := si.Parse("1 hPa")
	require.NoError(t, err)
	assert.InDelta(t, 100.0, hpa.Raw(), 1e-9)

	dm, err := si.Parse("1 dm")
	require.NoError(t, err)
	assert.InDelta(t, 0.1, dm.Raw(), 1e-12)
}

func TestConvert_ValueBetweenUnits(t *testing.T) {
	speed, err := si.Parse("90 km/h")
	require.NoError(t, err)
	mps, err := si.Parse("m/s")
	require.NoError(t, err)

	v, err := speed.Value(mps)
	require.NoError(t, err)
	assert.InDelta(t, 25.0, v, 1e-9)
}

func TestStaticTags(t *testing.T) {
	q, err := si.Parse("2500 mm")
	require.NoError(t, err)

	dist, err := quantity.FromDynamic[si.Length](q)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, dist.Raw(), 1e-12)

	_, err = quantity.FromDynamic[si.Duration](q)
	assert.ErrorIs(t, err, quantity.ErrDimensionMismatch)
}

func TestCelsius(t *testing.T) {
	k := si.CelsiusToKelvin(20)
	assert.InDelta(t, 293.15, k.Raw(), 1e-9)
	assert.Equal(t, "[K]", k.Dimension().String())

	c, err := si.KelvinToCelsius(k)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, c, 1e-9)

	// Only kelvin-dimensioned quantities convert.
	m, err := si.Parse("1 m")
	require.NoError(t, err)
	_, err = si.KelvinToCelsius(m)
	assert.ErrorIs(t, err, quantity.ErrDimensionMismatch)
}

// TestDefault_SharedAndFrozen: Default returns one shared table; Table
// returns independent copies.
func TestDefault_SharedAndFrozen(t *testing.T) {
	assert.Same(t, si.Default(), si.Default())

	a, b := si.Table(), si.Table()
	a.AddUnit("smoot", quantity.New(1.0))
	_, ok := b.Unit("smoot")
	assert.False(t, ok)
	_, ok = si.Default().Unit("smoot")
	assert.False(t, ok)
}
