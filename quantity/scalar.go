package quantity

// Scalar is the numeric backend of a quantity. The core is generic over
// one scalar type at a time; floating point is required because unit
// scale factors (milli, micro, ...) and rational powers do not stay
// integral.
type Scalar interface {
	~float32 | ~float64
}
