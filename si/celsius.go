package si

import "github.com/katalvlaran/quanta/quantity"

// Celsius shares the kelvin dimension; only the zero point differs.
// That offset is an affine conversion, not unit algebra, so it lives
// here as a pair of helpers instead of inside the quantity types.

const zeroCelsiusInKelvin = 273.15

// CelsiusToKelvin converts a temperature reading in °C to a kelvin
// quantity.
func CelsiusToKelvin(c float64) quantity.Quantity[float64] {
	return quantity.Unit(c+zeroCelsiusInKelvin, temperatureVec)
}

// KelvinToCelsius extracts the °C reading of a kelvin quantity. The
// argument must carry exactly the kelvin dimension.
func KelvinToCelsius(q quantity.Quantity[float64]) (float64, error) {
	k, err := q.Value(quantity.Unit(1.0, temperatureVec))
	if err != nil {
		return 0, err
	}
	return k - zeroCelsiusInKelvin, nil
}
