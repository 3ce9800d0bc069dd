package rational

import (
	"fmt"
	"math"
	"strconv"
)

// DefaultPrecision is the decimal precision used by FromFloat when callers
// have no opinion: the float is rounded to the nearest 1/10^6.
const DefaultPrecision = 6

// Rational is an exact fraction num/den in lowest terms with den > 0.
// The zero value is 0/1 and is ready to use.
type Rational struct {
	num int64
	den int64
}

// Zero and One are the two rationals the dimension algebra reaches for
// constantly; having them as prebuilt values keeps call sites readable.
var (
	Zero = Rational{num: 0, den: 1}
	One  = Rational{num: 1, den: 1}
)

// New builds the reduced rational num/den.
// It panics if den == 0: a zero denominator is a logic bug in the caller,
// never a data condition.
func New(num, den int64) Rational {
	if den == 0 {
		panic("rational: zero denominator")
	}
	return reduce(num, den)
}

// FromInt builds the rational n/1.
func FromInt(n int64) Rational {
	return Rational{num: n, den: 1}
}

// FromFloat converts x to the nearest rational with denominator 10^precision,
// then reduces. precision < 0 is treated as DefaultPrecision.
//
// The conversion is lossy by design: 0.1 at precision 6 becomes exactly
// 1/10, while math.Pi becomes 3141593/1000000.
func FromFloat(x float64, precision int) Rational {
	if precision < 0 {
		precision = DefaultPrecision
	}
	scale := math.Pow10(precision)
	return reduce(int64(math.Round(x*scale)), int64(scale))
}

// reduce normalizes sign into the numerator and divides out the gcd.
func reduce(num, den int64) Rational {
	if den < 0 {
		num, den = -num, -den
	}
	if g := gcd(abs(num), den); g > 1 {
		num /= g
		den /= g
	}
	if num == 0 {
		den = 1
	}
	return Rational{num: num, den: den}
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

// Num returns the (sign-carrying) numerator.
func (r Rational) Num() int64 { return r.num }

// Den returns the denominator, always > 0. The zero Rational reports 1.
func (r Rational) Den() int64 {
	if r.den == 0 {
		return 1
	}
	return r.den
}

// norm lifts the zero value 0/0 into canonical 0/1 so the arithmetic
// below never sees a zero denominator.
func (r Rational) norm() Rational {
	if r.den == 0 {
		return Rational{num: r.num, den: 1}
	}
	return r
}

// Add returns r + o, reduced.
func (r Rational) Add(o Rational) Rational {
	r, o = r.norm(), o.norm()
	return reduce(r.num*o.den+o.num*r.den, r.den*o.den)
}

// Sub returns r - o, reduced.
func (r Rational) Sub(o Rational) Rational {
	return r.Add(o.Neg())
}

// Mul returns r * o, reduced.
func (r Rational) Mul(o Rational) Rational {
	r, o = r.norm(), o.norm()
	return reduce(r.num*o.num, r.den*o.den)
}

// Div returns r / o, reduced. It panics when o is zero, mirroring New:
// dividing a dimension exponent by zero is a programmer error.
func (r Rational) Div(o Rational) Rational {
	r, o = r.norm(), o.norm()
	if o.num == 0 {
		panic("rational: division by zero")
	}
	return reduce(r.num*o.den, r.den*o.num)
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	r = r.norm()
	return Rational{num: -r.num, den: r.den}
}

// Inv returns 1/r, panicking when r is zero.
func (r Rational) Inv() Rational {
	return One.Div(r)
}

// Cmp orders r against o, returning -1, 0 or +1. Ordering goes through
// the float64 cross-ratio, which is fine for ordering but must never be
// used for equality — use Equal for that.
func (r Rational) Cmp(o Rational) int {
	a := r.Float64()
	b := o.Float64()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Equal reports exact equality of the reduced forms.
func (r Rational) Equal(o Rational) bool {
	r, o = r.norm(), o.norm()
	return r.num == o.num && r.den == o.den
}

// IsZero reports whether r == 0.
func (r Rational) IsZero() bool { return r.norm().num == 0 }

// IsOne reports whether r == 1.
func (r Rational) IsOne() bool { return r.Equal(One) }

// IsInt reports whether r has denominator 1 after reduction.
func (r Rational) IsInt() bool { return r.norm().den == 1 }

// Float64 returns the closest float64 to r.
func (r Rational) Float64() float64 {
	r = r.norm()
	return float64(r.num) / float64(r.den)
}

// String renders "num" for integers and "num/den" otherwise.
func (r Rational) String() string {
	r = r.norm()
	if r.den == 1 {
		return strconv.FormatInt(r.num, 10)
	}
	return fmt.Sprintf("%d/%d", r.num, r.den)
}
