package si

import (
	"sync"

	"github.com/katalvlaran/quanta/parse"
	"github.com/katalvlaran/quanta/quantity"
	"github.com/katalvlaran/quanta/symtab"
)

// Declaration ranks of the base dimensions; the rank fixes the term
// order inside every dimension vector ("[m kg s^-2]", never a shuffle).
const (
	rankLength = iota
	rankMass
	rankTime
	rankCurrent
	rankTemperature
	rankAmount
	rankLuminous
)

// Table builds a fresh SI symbol table. The result is independent of
// any previously built table and safe to mutate.
func Table() *symtab.Table[float64] {
	tab := symtab.New[float64]()

	// Base units. The mass scale is anchored on the kilogram dimension
	// but registered as the gram, so every "kg", "mg", "µg" resolves
	// through the ordinary prefix path.
	meter := quantity.Unit(1.0, lengthVec)
	gram := quantity.Unit(1e-3, massVec)
	second := quantity.Unit(1.0, timeVec)
	ampere := quantity.Unit(1.0, currentVec)
	kelvin := quantity.Unit(1.0, temperatureVec)
	mole := quantity.Unit(1.0, amountVec)
	candela := quantity.Unit(1.0, luminousVec)

	tab.AddUnit("m", meter)
	tab.AddUnit("g", gram)
	tab.AddUnit("s", second)
	tab.AddUnit("A", ampere)
	tab.AddUnit("K", kelvin)
	tab.AddUnit("mol", mole)
	tab.AddUnit("cd", candela)

	kilogram := gram.MulN(1000)

	// Derived units with special names.
	hertz := quantity.New(1.0).Div(second)
	newton := kilogram.Mul(meter).Div(second.Square())
	pascal := newton.Div(meter.Square())
	joule := newton.Mul(meter)
	watt := joule.Div(second)
	coulomb := ampere.Mul(second)
	volt := watt.Div(ampere)

	tab.AddUnit("Hz", hertz)
	tab.AddUnit("N", newton)
	tab.AddUnit("Pa", pascal)
	tab.AddUnit("J", joule)
	tab.AddUnit("W", watt)
	tab.AddUnit("C", coulomb)
	tab.AddUnit("V", volt)
	tab.AddUnit("F", coulomb.Div(volt))
	tab.AddUnit("Ω", volt.Div(ampere))
	tab.AddUnit("ohm", volt.Div(ampere))
	tab.AddUnit("S", ampere.Div(volt))
	tab.AddUnit("Wb", volt.Mul(second))
	tab.AddUnit("T", volt.Mul(second).Div(meter.Square()))
	tab.AddUnit("H", volt.Mul(second).Div(ampere))
	tab.AddUnit("lm", candela)
	tab.AddUnit("lx", candela.Div(meter.Square()))
	tab.AddUnit("Bq", hertz)
	tab.AddUnit("Gy", joule.Div(kilogram))
	tab.AddUnit("Sv", joule.Div(kilogram))
	tab.AddUnit("kat", mole.Div(second))

	// Dimensionless angles.
	tab.AddUnit("rad", quantity.New(1.0))
	tab.AddUnit("sr", quantity.New(1.0))

	// Accepted non-SI units. The hour shadows the hecto prefix and the
	// day shadows deci only as standalone symbols; "hPa" and "dm"
	// still decompose through the prefixes.
	tab.AddUnit("L", meter.Cubic().MulN(1e-3))
	tab.AddUnit("l", meter.Cubic().MulN(1e-3))
	tab.AddUnit("t", kilogram.MulN(1000))
	tab.AddUnit("min", second.MulN(60))
	tab.AddUnit("h", second.MulN(3600))
	tab.AddUnit("d", second.MulN(86400))
	tab.AddUnit("bar", pascal.MulN(1e5))
	tab.AddUnit("eV", joule.MulN(1.602176634e-19))

	// Prefix ladder, quecto through quetta. "u" is the ASCII micro
	// fallback.
	prefixes := []struct {
		symbol string
		factor float64
	}{
		{"Q", 1e30}, {"R", 1e27}, {"Y", 1e24}, {"Z", 1e21},
		{"E", 1e18}, {"P", 1e15}, {"T", 1e12}, {"G", 1e9},
		{"M", 1e6}, {"k", 1e3}, {"h", 1e2}, {"da", 1e1},
		{"d", 1e-1}, {"c", 1e-2}, {"m", 1e-3},
		{"µ", 1e-6}, {"u", 1e-6},
		{"n", 1e-9}, {"p", 1e-12}, {"f", 1e-15}, {"a", 1e-18},
		{"z", 1e-21}, {"y", 1e-24}, {"r", 1e-27}, {"q", 1e-30},
	}
	for _, p := range prefixes {
		tab.AddPrefix(p.symbol, p.factor)
	}

	return tab
}

var (
	defaultOnce  sync.Once
	defaultTable *symtab.Table[float64]
)

// Default returns the shared SI table, built on first use. Treat it as
// frozen: extend a Clone (or a fresh Table()) instead of mutating it.
func Default() *symtab.Table[float64] {
	defaultOnce.Do(func() {
		defaultTable = Table()
	})
	return defaultTable
}

// Parse evaluates a unit expression against the shared SI table.
func Parse(input string) (quantity.Quantity[float64], error) {
	return parse.ParseFloat(input, Default())
}
