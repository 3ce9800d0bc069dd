package si

import "github.com/katalvlaran/quanta/dimension"

// Base dimension vectors, in declaration-rank order.
var (
	lengthVec      = dimension.Mono("m", rankLength)
	massVec        = dimension.Mono("kg", rankMass)
	timeVec        = dimension.Mono("s", rankTime)
	currentVec     = dimension.Mono("A", rankCurrent)
	temperatureVec = dimension.Mono("K", rankTemperature)
	amountVec      = dimension.Mono("mol", rankAmount)
	luminousVec    = dimension.Mono("cd", rankLuminous)
)

// Dimension type tags for the static quantity variant: one empty struct
// per base dimension, usable as the D parameter of quantity.Static.
type (
	// Length is the tag of [m].
	Length struct{}
	// Mass is the tag of [kg].
	Mass struct{}
	// Duration is the tag of [s]. (Time would collide with the stdlib
	// package name in callers' heads, if not their imports.)
	Duration struct{}
	// Current is the tag of [A].
	Current struct{}
	// Temperature is the tag of [K].
	Temperature struct{}
	// Amount is the tag of [mol].
	Amount struct{}
	// LuminousIntensity is the tag of [cd].
	LuminousIntensity struct{}
)

// DimVector implements quantity.Dim.
func (Length) DimVector() dimension.Vec { return lengthVec }

// DimVector implements quantity.Dim.
func (Mass) DimVector() dimension.Vec { return massVec }

// DimVector implements quantity.Dim.
func (Duration) DimVector() dimension.Vec { return timeVec }

// DimVector implements quantity.Dim.
func (Current) DimVector() dimension.Vec { return currentVec }

// DimVector implements quantity.Dim.
func (Temperature) DimVector() dimension.Vec { return temperatureVec }

// DimVector implements quantity.Dim.
func (Amount) DimVector() dimension.Vec { return amountVec }

// DimVector implements quantity.Dim.
func (LuminousIntensity) DimVector() dimension.Vec { return luminousVec }
