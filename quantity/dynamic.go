package quantity

import (
	"fmt"
	"math"

	"github.com/katalvlaran/quanta/dimension"
	"github.com/katalvlaran/quanta/rational"
)

// Quantity is the dynamic variant: a scalar value carrying its dimension
// vector as data. Every dimension check happens at the operation; a
// failed check returns a *DimensionError with both vectors.
//
// The zero value is the dimensionless zero and is ready to use.
type Quantity[N Scalar] struct {
	val N
	dim dimension.Vec
}

// New returns the dimensionless quantity v.
func New[N Scalar](v N) Quantity[N] {
	return Quantity[N]{val: v}
}

// Unit returns the quantity v with dimension d. It is the constructor
// symbol tables and parsers use to mint base units.
func Unit[N Scalar](v N, d dimension.Vec) Quantity[N] {
	return Quantity[N]{val: v, dim: d}
}

// Raw returns the bare scalar, ignoring the dimension. Prefer Scalar or
// Value when dimensional safety matters.
func (q Quantity[N]) Raw() N { return q.val }

// Dimension returns the quantity's dimension vector.
func (q Quantity[N]) Dimension() dimension.Vec { return q.dim }

// IsConsistentWith reports dimensional equality with o. It never errors:
// it is the query form of the check every Add/Sub/Cmp performs.
func (q Quantity[N]) IsConsistentWith(o Quantity[N]) bool {
	return q.dim.Equal(o.dim)
}

// Add returns q + o. Dimensions must match.
func (q Quantity[N]) Add(o Quantity[N]) (Quantity[N], error) {
	if !q.dim.Equal(o.dim) {
		return Quantity[N]{}, mismatch("add", q.dim, o.dim)
	}
	return Quantity[N]{val: q.val + o.val, dim: q.dim}, nil
}

// Sub returns q - o. Dimensions must match.
func (q Quantity[N]) Sub(o Quantity[N]) (Quantity[N], error) {
	if !q.dim.Equal(o.dim) {
		return Quantity[N]{}, mismatch("sub", q.dim, o.dim)
	}
	return Quantity[N]{val: q.val - o.val, dim: q.dim}, nil
}

// Mod returns the remainder of q by o. Like Add, it requires equal
// dimensions; the numeric semantics are math.Mod's.
func (q Quantity[N]) Mod(o Quantity[N]) (Quantity[N], error) {
	if !q.dim.Equal(o.dim) {
		return Quantity[N]{}, mismatch("mod", q.dim, o.dim)
	}
	return Quantity[N]{val: N(math.Mod(float64(q.val), float64(o.val))), dim: q.dim}, nil
}

// Mul returns q * o. Multiplication is always dimensionally valid: the
// vectors combine.
func (q Quantity[N]) Mul(o Quantity[N]) Quantity[N] {
	return Quantity[N]{val: q.val * o.val, dim: q.dim.Mul(o.dim)}
}

// Div returns q / o. Division by a zero value is left to the scalar
// type's own semantics (±Inf/NaN for floats) — it is a numeric concern,
// not a dimensional one.
func (q Quantity[N]) Div(o Quantity[N]) Quantity[N] {
	return Quantity[N]{val: q.val / o.val, dim: q.dim.Div(o.dim)}
}

// MulN scales q by a bare number, leaving the dimension untouched.
func (q Quantity[N]) MulN(n N) Quantity[N] {
	return Quantity[N]{val: q.val * n, dim: q.dim}
}

// DivN divides q by a bare number, leaving the dimension untouched.
func (q Quantity[N]) DivN(n N) Quantity[N] {
	return Quantity[N]{val: q.val / n, dim: q.dim}
}

// AddN adds a bare number. Only a dimensionless quantity can absorb
// one; anything else is a *DimensionError with an empty Other side.
func (q Quantity[N]) AddN(n N) (Quantity[N], error) {
	if !q.dim.IsEmpty() {
		return Quantity[N]{}, mismatch("add", q.dim, dimension.Empty())
	}
	return Quantity[N]{val: q.val + n}, nil
}

// CmpN orders q against a bare number, under the same dimensionless
// requirement as AddN.
func (q Quantity[N]) CmpN(n N) (int, error) {
	if !q.dim.IsEmpty() {
		return 0, mismatch("cmp", q.dim, dimension.Empty())
	}
	return q.Cmp(New(n))
}

// Neg returns -q.
func (q Quantity[N]) Neg() Quantity[N] {
	return Quantity[N]{val: -q.val, dim: q.dim}
}

// Abs returns |q|.
func (q Quantity[N]) Abs() Quantity[N] {
	return Quantity[N]{val: N(math.Abs(float64(q.val))), dim: q.dim}
}

// Pow raises q to the rational power r: the value through math.Pow, the
// dimension through Vec.Pow, so sqrt of an area is exactly a length.
func (q Quantity[N]) Pow(r rational.Rational) Quantity[N] {
	return Quantity[N]{
		val: N(math.Pow(float64(q.val), r.Float64())),
		dim: q.dim.Pow(r),
	}
}

// PowInt raises q to an integer power.
func (q Quantity[N]) PowInt(n int) Quantity[N] {
	return q.Pow(rational.FromInt(int64(n)))
}

// Square returns q².
func (q Quantity[N]) Square() Quantity[N] { return q.PowInt(2) }

// Cubic returns q³.
func (q Quantity[N]) Cubic() Quantity[N] { return q.PowInt(3) }

// Sqrt returns the square root of q, dimension included.
func (q Quantity[N]) Sqrt() Quantity[N] { return q.Root(2) }

// Cbrt returns the cube root of q, dimension included.
func (q Quantity[N]) Cbrt() Quantity[N] { return q.Root(3) }

// Root returns the n-th root of q. n must be non-zero; a zero n is a
// programmer error and panics through the rational inversion.
func (q Quantity[N]) Root(n int) Quantity[N] {
	return q.Pow(rational.New(1, int64(n)))
}

// Cmp orders q against o: -1, 0 or +1. Ordering two quantities of
// different dimensions is meaningless, so a mismatch is an error, not
// a false.
func (q Quantity[N]) Cmp(o Quantity[N]) (int, error) {
	if !q.dim.Equal(o.dim) {
		return 0, mismatch("cmp", q.dim, o.dim)
	}
	switch {
	case q.val < o.val:
		return -1, nil
	case q.val > o.val:
		return 1, nil
	default:
		return 0, nil
	}
}

// Less reports q < o under the same dimensional contract as Cmp.
func (q Quantity[N]) Less(o Quantity[N]) (bool, error) {
	c, err := q.Cmp(o)
	return c < 0, err
}

// Equal reports value equality. Like Cmp it refuses to compare across
// dimensions rather than answering false.
func (q Quantity[N]) Equal(o Quantity[N]) (bool, error) {
	c, err := q.Cmp(o)
	return c == 0, err
}

// Scalar extracts the bare value of a dimensionless quantity. A
// non-empty dimension yields a *DimensionError whose Other side is the
// empty vector.
func (q Quantity[N]) Scalar() (N, error) {
	if !q.dim.IsEmpty() {
		return 0, mismatch("scalar", q.dim, dimension.Empty())
	}
	return q.val, nil
}

// Value expresses q in terms of target: q / target, requiring equal
// dimensions. Value(meter) of a 2500 mm quantity returns 2.5.
func (q Quantity[N]) Value(target Quantity[N]) (N, error) {
	if !q.dim.Equal(target.dim) {
		return 0, mismatch("value", q.dim, target.dim)
	}
	return q.val / target.val, nil
}

// String renders "value [dims]", or just the value when dimensionless.
func (q Quantity[N]) String() string {
	if q.dim.IsEmpty() {
		return fmt.Sprintf("%v", q.val)
	}
	return fmt.Sprintf("%v %s", q.val, q.dim)
}
