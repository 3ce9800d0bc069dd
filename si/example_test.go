package si_test

import (
	"fmt"

	"github.com/katalvlaran/quanta/si"
)

// ExampleParse evaluates compound expressions against the shared SI
// table.
func ExampleParse() {
	q, _ := si.Parse("25 mmol/L")
	fmt.Println(q.Dimension())

	p, _ := si.Parse("1 kg/(m s^2)")
	pa, _ := si.Parse("1 Pa")
	same, _ := p.Equal(pa)
	fmt.Println(same)
	// Output:
	// [m^-3 mol]
	// true
}

// Example_convert expresses a parsed quantity in another unit of the
// same dimension.
func Example_convert() {
	speed, _ := si.Parse("90 km/h")
	mps, _ := si.Parse("m/s")

	v, _ := speed.Value(mps)
	fmt.Printf("%.2f\n", v)
	// Output:
	// 25.00
}
