package parse_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/quanta/dimension"
	"github.com/katalvlaran/quanta/parse"
	"github.com/katalvlaran/quanta/quantity"
	"github.com/katalvlaran/quanta/symtab"
)

// ExampleParseFloat parses a compound expression with a prefix, a
// group, and an exponent against a three-unit table.
func ExampleParseFloat() {
	tab := symtab.New[float64]()
	tab.AddUnit("m", quantity.Unit(1.0, dimension.Mono("m", 0)))
	tab.AddUnit("kg", quantity.Unit(1.0, dimension.Mono("kg", 1)))
	tab.AddUnit("s", quantity.Unit(1.0, dimension.Mono("s", 2)))
	tab.AddPrefix("m", 0.001)

	q, _ := parse.ParseFloat("1 kg/(m s^2)", tab)
	fmt.Println(q.Dimension())

	q, _ = parse.ParseFloat("2 mm", tab)
	fmt.Println(q.Raw(), q.Dimension())

	// No leading number: the scalar defaults to 1.
	q, _ = parse.ParseFloat("m/s", tab)
	fmt.Println(q)
	// Output:
	// [m^-1 kg s^-2]
	// 0.002 [m]
	// 1 [m s^-1]
}

// ExampleParseFloat_errors shows that every malformed input matches
// ErrParse, with a fine-grained sentinel underneath.
func ExampleParseFloat_errors() {
	tab := symtab.New[float64]()
	tab.AddUnit("m", quantity.Unit(1.0, dimension.Mono("m", 0)))

	_, err := parse.ParseFloat("1 banana", tab)
	fmt.Println(errors.Is(err, parse.ErrParse), errors.Is(err, parse.ErrUnknownSymbol))

	_, err = parse.ParseFloat("1 (m", tab)
	fmt.Println(errors.Is(err, parse.ErrUnbalancedParen))
	// Output:
	// true true
	// true
}
