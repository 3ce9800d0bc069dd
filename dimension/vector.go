package dimension

import (
	"strings"

	"github.com/katalvlaran/quanta/rational"
)

// Term is one (symbol, power) entry of a dimension vector.
// Rank is the declaration order of the base dimension and serves as the
// primary sort key; it never affects identity, only ordering.
type Term struct {
	Symbol string
	Rank   int
	Power  rational.Rational
}

// Vec is an immutable dimension vector: sorted by (Rank, Symbol), no
// duplicate symbols, no zero powers. The zero value is dimensionless.
type Vec struct {
	terms []Term
}

// Empty returns the dimensionless vector.
func Empty() Vec { return Vec{} }

// Mono builds a single-term vector symbol^1 with the given declaration
// rank. An empty symbol yields the dimensionless vector.
func Mono(symbol string, rank int) Vec {
	if symbol == "" {
		return Vec{}
	}
	return Vec{terms: []Term{{Symbol: symbol, Rank: rank, Power: rational.One}}}
}

// less orders terms by (Rank, Symbol); the symbol tie-break keeps the
// order total even when ranks collide.
func less(a, b Term) bool {
	if a.Rank != b.Rank {
		return a.Rank < b.Rank
	}
	return a.Symbol < b.Symbol
}

// merge inserts t into a copy of sorted terms: an existing entry with
// the same symbol absorbs the power (vanishing on zero), otherwise t is
// placed at its sorted position.
func merge(terms []Term, t Term) []Term {
	if t.Power.IsZero() {
		return terms
	}
	for i, cur := range terms {
		if cur.Symbol == t.Symbol {
			sum := cur.Power.Add(t.Power)
			if sum.IsZero() {
				out := make([]Term, 0, len(terms)-1)
				out = append(out, terms[:i]...)
				return append(out, terms[i+1:]...)
			}
			out := make([]Term, len(terms))
			copy(out, terms)
			out[i].Power = sum
			return out
		}
	}
	// New symbol: insert at the sorted position.
	pos := len(terms)
	for i, cur := range terms {
		if less(t, cur) {
			pos = i
			break
		}
	}
	out := make([]Term, 0, len(terms)+1)
	out = append(out, terms[:pos]...)
	out = append(out, t)
	return append(out, terms[pos:]...)
}

// Mul returns the product vector: powers of shared symbols add, zeros
// cancel out of the result.
func (v Vec) Mul(o Vec) Vec {
	out := v.terms
	for _, t := range o.terms {
		out = merge(out, t)
	}
	return Vec{terms: out}
}

// Div returns the quotient vector: powers of o's symbols subtract.
func (v Vec) Div(o Vec) Vec {
	return v.Mul(o.Inv())
}

// Inv returns the vector with every power negated.
func (v Vec) Inv() Vec {
	if len(v.terms) == 0 {
		return Vec{}
	}
	out := make([]Term, len(v.terms))
	copy(out, v.terms)
	for i := range out {
		out[i].Power = out[i].Power.Neg()
	}
	return Vec{terms: out}
}

// Pow scales every power by r. Pow(0) collapses to the dimensionless
// vector, matching x^0 == 1.
func (v Vec) Pow(r rational.Rational) Vec {
	if r.IsZero() || len(v.terms) == 0 {
		return Vec{}
	}
	out := make([]Term, len(v.terms))
	copy(out, v.terms)
	for i := range out {
		out[i].Power = out[i].Power.Mul(r)
	}
	return Vec{terms: out}
}

// PowInt is Pow with an integer exponent.
func (v Vec) PowInt(n int) Vec {
	return v.Pow(rational.FromInt(int64(n)))
}

// Root divides every power by r — the n-th root of the dimension.
// Powers are rational, so this is exact for any non-zero r; a zero r
// panics via rational division, flagging the programmer error.
func (v Vec) Root(r rational.Rational) Vec {
	return v.Pow(r.Inv())
}

// IsEmpty reports whether v is dimensionless.
func (v Vec) IsEmpty() bool { return len(v.terms) == 0 }

// Len returns the number of distinct symbols in v.
func (v Vec) Len() int { return len(v.terms) }

// Terms returns a copy of the term list, in canonical order.
func (v Vec) Terms() []Term {
	if len(v.terms) == 0 {
		return nil
	}
	out := make([]Term, len(v.terms))
	copy(out, v.terms)
	return out
}

// Equal is structural equality over symbols and powers. Both operands
// are canonically sorted by construction, so a single walk suffices.
// Ranks are ordering metadata and do not participate.
func (v Vec) Equal(o Vec) bool {
	if len(v.terms) != len(o.terms) {
		return false
	}
	for i := range v.terms {
		if v.terms[i].Symbol != o.terms[i].Symbol ||
			!v.terms[i].Power.Equal(o.terms[i].Power) {
			return false
		}
	}
	return true
}

// String renders the bracketed space-joined form, powers of one elided:
// "[kg m^-1 s^-2]". The dimensionless vector renders as "[]".
func (v Vec) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, t := range v.terms {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.Symbol)
		if !t.Power.IsOne() {
			b.WriteByte('^')
			b.WriteString(t.Power.String())
		}
	}
	b.WriteByte(']')
	return b.String()
}
