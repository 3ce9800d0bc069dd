package parse_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/quanta/dimension"
	"github.com/katalvlaran/quanta/parse"
	"github.com/katalvlaran/quanta/quantity"
	"github.com/katalvlaran/quanta/symtab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestTable is the miniature table the scenario tests run against:
// m/kg/s base units, prefixes c=0.01 and m=0.001. The m prefix
// deliberately collides with the m unit; the standalone unit wins.
func newTestTable() *symtab.Table[float64] {
	tab := symtab.New[float64]()
	tab.AddUnit("m", quantity.Unit(1.0, dimension.Mono("m", 0)))
	tab.AddUnit("kg", quantity.Unit(1.0, dimension.Mono("kg", 1)))
	tab.AddUnit("s", quantity.Unit(1.0, dimension.Mono("s", 2)))
	tab.AddPrefix("c", 0.01)
	tab.AddPrefix("m", 0.001)
	return tab
}

// TestParse_Scenarios covers the canonical behaviors end to end.
func TestParse_Scenarios(t *testing.T) {
	tab := newTestTable()
	cases := []struct {
		input   string
		wantVal float64
		wantDim string
	}{
		{"1 m", 1, "[m]"},
		{"1 mm", 0.001, "[m]"},     // prefix milli + meter, not the meter alone
		{"1 cm", 0.01, "[m]"},      // centi + meter
		{"1 m^-1", 1, "[m^-1]"},    // explicit negative exponent
		{"1 m²", 1, "[m^2]"},       // superscript exponent
		{"1 s⁻¹", 1, "[s^-1]"},     // superscript with sign
		{"1 (m^-1)^-1", 1, "[m]"},  // double inversion cancels
		{"1 kg/(m s^2)", 1, "[m^-1 kg s^-2]"}, // a pascal
		{"1 m/s", 1, "[m s^-1]"},
		{"1 m s", 1, "[m s]"},      // juxtaposition multiplies
		{"1 m*s", 1, "[m s]"},
		{"1 m⋅s", 1, "[m s]"},
		{"2.5 m", 2.5, "[m]"},
		{"-3 m", -3, "[m]"},
		{"1e3 m", 1000, "[m]"},
		{"1 m^3", 1, "[m^3]"},
		{"1 m/s^2", 1, "[m s^-2]"},
		{"1 kg m / s", 1, "[m kg s^-1]"},
		{"1 m/s/s", 1, "[m s^-2]"}, // left-associative division
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			q, err := parse.ParseFloat(tc.input, tab)
			require.NoError(t, err)
			assert.InDelta(t, tc.wantVal, q.Raw(), 1e-12, "value")
			assert.Equal(t, tc.wantDim, q.Dimension().String(), "dimension")
		})
	}
}

// TestParse_NoLeadingNumber: a failing number scan is not an error; the
// scalar defaults to 1 and the whole input is the unit expression.
func TestParse_NoLeadingNumber(t *testing.T) {
	tab := newTestTable()

	q, err := parse.ParseFloat("m/s", tab)
	require.NoError(t, err)
	assert.Equal(t, 1.0, q.Raw())
	assert.Equal(t, "[m s^-1]", q.Dimension().String())
}

// TestParse_BareNumber: no unit tokens at all yields a dimensionless
// scalar.
func TestParse_BareNumber(t *testing.T) {
	tab := newTestTable()

	q, err := parse.ParseFloat("42", tab)
	require.NoError(t, err)
	assert.Equal(t, 42.0, q.Raw())
	assert.True(t, q.Dimension().IsEmpty())

	q, err = parse.ParseFloat("  2.5  ", tab)
	require.NoError(t, err)
	assert.Equal(t, 2.5, q.Raw())
}

// TestParse_DanglingPrefix: "1 c m" must fail — a prefix must be
// joined to its unit, and "c" alone is not a registered unit.
func TestParse_DanglingPrefix(t *testing.T) {
	tab := newTestTable()

	_, err := parse.ParseFloat("1 c m", tab)
	require.Error(t, err)
	assert.ErrorIs(t, err, parse.ErrParse)
	assert.ErrorIs(t, err, parse.ErrUnknownSymbol)
}

func TestParse_Errors(t *testing.T) {
	tab := newTestTable()
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"unknown symbol", "1 banana", parse.ErrUnknownSymbol},
		{"unknown prefixed", "1 xm", parse.ErrUnknownSymbol},
		{"unterminated group", "1 (m/s", parse.ErrUnbalancedParen},
		{"stray close paren", "1 m)", parse.ErrUnexpectedToken},
		{"exponent without unit", "1 ^2", parse.ErrUnexpectedToken},
		{"dangling caret", "1 m^", parse.ErrUnexpectedEnd},
		{"caret then symbol", "1 m^s", parse.ErrUnexpectedToken},
		{"operator without operand", "1 m/", parse.ErrUnexpectedEnd},
		{"leading operator", "1 /m", parse.ErrUnexpectedToken},
		{"empty group", "1 ()", parse.ErrUnexpectedToken},
		{"double exponent", "1 m^2^3", parse.ErrUnexpectedToken},
		{"bad integer", "1 m^1-2", parse.ErrBadInteger},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parse.ParseFloat(tc.input, tab)
			require.Error(t, err)
			assert.ErrorIs(t, err, parse.ErrParse, "every failure matches ErrParse")
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestParse_Idempotence: parsing the canonical "value [dims]"-shaped
// string built from base symbols reproduces value and dimension.
func TestParse_Idempotence(t *testing.T) {
	tab := newTestTable()

	orig, err := parse.ParseFloat("12 m/s^2", tab)
	require.NoError(t, err)

	// Rebuild a parseable form from the parsed quantity.
	rebuilt := fmt.Sprintf("%v m/s^2", orig.Raw())
	again, err := parse.ParseFloat(rebuilt, tab)
	require.NoError(t, err)

	assert.Equal(t, orig.Raw(), again.Raw())
	assert.True(t, orig.Dimension().Equal(again.Dimension()))
}

// TestParse_CustomNumberFunc exercises the injected scanner: a parser
// for "double the digits it sees".
func TestParse_CustomNumberFunc(t *testing.T) {
	tab := newTestTable()

	doubler := func(s string) (float64, int, bool) {
		v, n, ok := parse.ScanFloat(s)
		return v * 2, n, ok
	}
	q, err := parse.Parse("3 m", tab, doubler)
	require.NoError(t, err)
	assert.Equal(t, 6.0, q.Raw())

	// nil NumberFunc disables number scanning entirely.
	_, err = parse.Parse[float64]("3 m", tab, nil)
	require.Error(t, err, "with no number scanner, '3' hits the grammar as a token")
	assert.ErrorIs(t, err, parse.ErrUnexpectedToken)
}

func TestScanFloat(t *testing.T) {
	cases := []struct {
		input    string
		want     float64
		consumed int
		ok       bool
	}{
		{"1 m", 1, 1, true},
		{"2.5m", 2.5, 3, true},
		{"-3 kg", -3, 2, true},
		{"+4", 4, 2, true},
		{"1e3 m", 1000, 3, true},
		{"1E-2", 0.01, 4, true},
		{"2e m", 2, 1, true}, // exponent marker without digits stays unconsumed
		{".5 m", 0.5, 2, true},
		{"m/s", 0, 0, false},
		{"", 0, 0, false},
		{"-m", 0, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			v, n, ok := parse.ScanFloat(tc.input)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.consumed, n)
			if tc.ok {
				assert.InDelta(t, tc.want, v, 1e-12)
			}
		})
	}
}
