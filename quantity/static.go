package quantity

import (
	"math"

	"github.com/katalvlaran/quanta/dimension"
	"github.com/katalvlaran/quanta/rational"
)

// Dim is a dimension type tag: a (usually empty) struct whose sole job
// is to name a dimension vector at the type level. The si package
// exports tags for the seven SI base dimensions; applications define
// their own for derived shapes they want pinned by the compiler.
type Dim interface {
	DimVector() dimension.Vec
}

// Dimensionless is the tag of the empty dimension vector.
type Dimensionless struct{}

// DimVector implements Dim.
func (Dimensionless) DimVector() dimension.Vec { return dimension.Empty() }

// dimOf materializes D's vector; tags are stateless so the zero value
// suffices.
func dimOf[D Dim]() dimension.Vec {
	var d D
	return d.DimVector()
}

// Static is the static variant: the dimension lives in the type tag D
// and the struct holds nothing but the raw scalar. Two Static values
// interoperate through methods only when D is the identical type, so
// dimension mismatches in Add/Sub/Value/comparisons are compile errors.
//
// Cross-dimension arithmetic needs a result tag and goes through the
// free functions MulAs/DivAs/PowAs/RootAs, which assert tag consistency
// at the call (see the package doc for the rationale).
type Static[N Scalar, D Dim] struct {
	raw N
}

// FromScalar wraps a bare number. Only the dimensionless tag may hold a
// bare number; any other tag yields a *DimensionError with an empty
// This side.
func FromScalar[N Scalar, D Dim](v N) (Static[N, D], error) {
	if d := dimOf[D](); !d.IsEmpty() {
		return Static[N, D]{}, mismatch("from-scalar", dimension.Empty(), d)
	}
	return Static[N, D]{raw: v}, nil
}

// FromDynamic converts a dynamic quantity into the static tag D,
// checking dimensional equality at the boundary.
func FromDynamic[D Dim, N Scalar](q Quantity[N]) (Static[N, D], error) {
	if d := dimOf[D](); !q.Dimension().Equal(d) {
		return Static[N, D]{}, mismatch("from-dynamic", q.Dimension(), d)
	}
	return Static[N, D]{raw: q.Raw()}, nil
}

// BaseUnit mints the unit quantity (raw value 1) of tag D. It is how a
// table of statically-typed reference units is built.
func BaseUnit[N Scalar, D Dim]() Static[N, D] {
	return Static[N, D]{raw: 1}
}

// Dynamic converts to the dynamic variant. This direction always
// succeeds: the compile-time-known dimension becomes runtime data.
func (q Static[N, D]) Dynamic() Quantity[N] {
	return Unit(q.raw, dimOf[D]())
}

// Raw returns the bare scalar.
func (q Static[N, D]) Raw() N { return q.raw }

// Dimension returns D's vector.
func (q Static[N, D]) Dimension() dimension.Vec { return dimOf[D]() }

// Add returns q + o. Mixing tags does not compile.
func (q Static[N, D]) Add(o Static[N, D]) Static[N, D] {
	return Static[N, D]{raw: q.raw + o.raw}
}

// Sub returns q - o.
func (q Static[N, D]) Sub(o Static[N, D]) Static[N, D] {
	return Static[N, D]{raw: q.raw - o.raw}
}

// Neg returns -q.
func (q Static[N, D]) Neg() Static[N, D] { return Static[N, D]{raw: -q.raw} }

// Abs returns |q|.
func (q Static[N, D]) Abs() Static[N, D] {
	return Static[N, D]{raw: N(math.Abs(float64(q.raw)))}
}

// Cmp orders q against o; same-tag-only, so no error path exists.
func (q Static[N, D]) Cmp(o Static[N, D]) int {
	switch {
	case q.raw < o.raw:
		return -1
	case q.raw > o.raw:
		return 1
	default:
		return 0
	}
}

// Less reports q < o.
func (q Static[N, D]) Less(o Static[N, D]) bool { return q.raw < o.raw }

// Equal reports value equality of two same-tag quantities.
func (q Static[N, D]) Equal(o Static[N, D]) bool { return q.raw == o.raw }

// Value expresses q in terms of target, e.g. distance.Value(kilometer).
// The shared tag D makes the same-dimension requirement a compile-time
// fact.
func (q Static[N, D]) Value(target Static[N, D]) N {
	return q.raw / target.raw
}

// MulAs multiplies two static quantities into the result tag R. R must
// name exactly D1's vector times D2's; the assertion runs eagerly at
// the call and a wrong R yields a *DimensionError carrying the combined
// vector (This) and R's vector (Other).
func MulAs[R Dim, N Scalar, D1 Dim, D2 Dim](a Static[N, D1], b Static[N, D2]) (Static[N, R], error) {
	combined := dimOf[D1]().Mul(dimOf[D2]())
	if want := dimOf[R](); !combined.Equal(want) {
		return Static[N, R]{}, mismatch("mul-as", combined, want)
	}
	return Static[N, R]{raw: a.raw * b.raw}, nil
}

// DivAs divides a by b into the result tag R, with the same eager tag
// assertion as MulAs.
func DivAs[R Dim, N Scalar, D1 Dim, D2 Dim](a Static[N, D1], b Static[N, D2]) (Static[N, R], error) {
	combined := dimOf[D1]().Div(dimOf[D2]())
	if want := dimOf[R](); !combined.Equal(want) {
		return Static[N, R]{}, mismatch("div-as", combined, want)
	}
	return Static[N, R]{raw: a.raw / b.raw}, nil
}

// PowAs raises q to the integer power n into the result tag R.
func PowAs[R Dim, N Scalar, D Dim](q Static[N, D], n int) (Static[N, R], error) {
	combined := dimOf[D]().PowInt(n)
	if want := dimOf[R](); !combined.Equal(want) {
		return Static[N, R]{}, mismatch("pow-as", combined, want)
	}
	return Static[N, R]{raw: N(math.Pow(float64(q.raw), float64(n)))}, nil
}

// RootAs takes the n-th root of q into the result tag R. Rational
// dimension powers keep the root exact; only the tag assertion can
// fail.
func RootAs[R Dim, N Scalar, D Dim](q Static[N, D], n int) (Static[N, R], error) {
	combined := dimOf[D]().Root(rational.FromInt(int64(n)))
	if want := dimOf[R](); !combined.Equal(want) {
		return Static[N, R]{}, mismatch("root-as", combined, want)
	}
	return Static[N, R]{raw: N(math.Pow(float64(q.raw), 1/float64(n)))}, nil
}
