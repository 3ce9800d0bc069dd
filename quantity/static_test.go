package quantity_test

import (
	"testing"

	"github.com/katalvlaran/quanta/dimension"
	"github.com/katalvlaran/quanta/quantity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Local dimension tags for the tests; real programs take these from the
// si package or define their own.
type (
	lengthTag struct{}
	timeTag   struct{}
	speedTag  struct{}
	areaTag   struct{}
)

func (lengthTag) DimVector() dimension.Vec { return lengthDim }
func (timeTag) DimVector() dimension.Vec   { return timeDim }
func (speedTag) DimVector() dimension.Vec  { return lengthDim.Div(timeDim) }
func (areaTag) DimVector() dimension.Vec   { return lengthDim.PowInt(2) }

func staticMeters(v float64) quantity.Static[float64, lengthTag] {
	q, err := quantity.FromDynamic[lengthTag](meters(v))
	if err != nil {
		panic(err)
	}
	return q
}

func TestFromScalar(t *testing.T) {
	q, err := quantity.FromScalar[float64, quantity.Dimensionless](3.5)
	require.NoError(t, err)
	assert.Equal(t, 3.5, q.Raw())

	// A dimensioned tag refuses a bare number.
	_, err = quantity.FromScalar[float64, lengthTag](3.5)
	assert.ErrorIs(t, err, quantity.ErrDimensionMismatch)
}

// TestRoundTrip covers static → dynamic → static losslessness, and the
// error on converting into the wrong tag.
func TestRoundTrip(t *testing.T) {
	q := staticMeters(7)

	dyn := q.Dynamic()
	assert.Equal(t, 7.0, dyn.Raw())
	assert.True(t, dyn.Dimension().Equal(lengthDim))

	back, err := quantity.FromDynamic[lengthTag](dyn)
	require.NoError(t, err)
	assert.True(t, back.Equal(q))

	_, err = quantity.FromDynamic[timeTag](dyn)
	assert.ErrorIs(t, err, quantity.ErrDimensionMismatch)
}

func TestStaticArithmetic(t *testing.T) {
	a := staticMeters(2)
	b := staticMeters(3)

	assert.Equal(t, 5.0, a.Add(b).Raw())
	assert.Equal(t, -1.0, a.Sub(b).Raw())
	assert.Equal(t, -2.0, a.Neg().Raw())
	assert.Equal(t, 2.0, a.Neg().Abs().Raw())

	assert.True(t, a.Less(b))
	assert.Equal(t, -1, a.Cmp(b))
	assert.True(t, a.Equal(staticMeters(2)))
}

func TestStaticValue(t *testing.T) {
	km := staticMeters(1000)
	distance := staticMeters(2500)
	assert.InDelta(t, 2.5, distance.Value(km), 1e-12)
}

func TestMulAs(t *testing.T) {
	d := staticMeters(10)
	dur, err := quantity.FromDynamic[timeTag](seconds(2))
	require.NoError(t, err)

	speed, err := quantity.DivAs[speedTag](d, dur)
	require.NoError(t, err)
	assert.Equal(t, 5.0, speed.Raw())
	assert.Equal(t, "[m s^-1]", speed.Dimension().String())

	area, err := quantity.MulAs[areaTag](d, d)
	require.NoError(t, err)
	assert.Equal(t, 100.0, area.Raw())

	// A result tag that does not match the combined dimension is
	// rejected eagerly.
	_, err = quantity.MulAs[speedTag](d, d)
	assert.ErrorIs(t, err, quantity.ErrDimensionMismatch)
}

func TestPowRootAs(t *testing.T) {
	d := staticMeters(3)

	area, err := quantity.PowAs[areaTag](d, 2)
	require.NoError(t, err)
	assert.Equal(t, 9.0, area.Raw())

	side, err := quantity.RootAs[lengthTag](area, 2)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, side.Raw(), 1e-12)

	_, err = quantity.RootAs[speedTag](area, 2)
	assert.ErrorIs(t, err, quantity.ErrDimensionMismatch)
}

func TestBaseUnit(t *testing.T) {
	m := quantity.BaseUnit[float64, lengthTag]()
	assert.Equal(t, 1.0, m.Raw())
	assert.True(t, m.Dimension().Equal(lengthDim))
}
