package parse

import (
	"strings"

	"github.com/katalvlaran/quanta/quantity"
	"github.com/katalvlaran/quanta/symtab"
)

// NumberFunc scans a numeric literal off the front of s, returning the
// value, the number of bytes consumed, and whether a number was present.
// Returning ok=false is a normal outcome, never an error: the parser
// then defaults the scalar to 1 and reads the whole input as a unit
// expression. Injecting the function keeps the scalar type pluggable.
type NumberFunc[N quantity.Scalar] func(s string) (val N, consumed int, ok bool)

// Parse evaluates a unit expression against tab, with an optional
// leading numeric literal scanned by numberFn (which may be nil to
// disable number scanning). "1 mm" yields 0.001 [m]; a bare "m/s"
// yields 1 [m s^-1]; a bare "42" yields the dimensionless 42.
//
// All failures are *ParseError (errors.Is ErrParse).
func Parse[N quantity.Scalar](input string, tab *symtab.Table[N], numberFn NumberFunc[N]) (quantity.Quantity[N], error) {
	rest := strings.TrimSpace(input)

	scalar := N(1)
	if numberFn != nil {
		if v, consumed, ok := numberFn(rest); ok && consumed > 0 {
			scalar = v
			rest = rest[consumed:]
		}
	}

	toks, err := Lex(rest)
	if err != nil {
		return quantity.Quantity[N]{}, err
	}
	if len(toks) == 0 {
		return quantity.New(scalar), nil
	}

	p := &parser[N]{toks: toks, tab: tab}
	q, err := p.compound(false)
	if err != nil {
		return quantity.Quantity[N]{}, err
	}
	if !p.eof() {
		return quantity.Quantity[N]{}, failf(ErrUnexpectedToken,
			"unexpected %s %q after expression", p.peek().Kind, p.peek().Text)
	}
	return q.MulN(scalar), nil
}

// ParseFloat is Parse specialized to float64 with the default numeric
// scanner.
func ParseFloat(input string, tab *symtab.Table[float64]) (quantity.Quantity[float64], error) {
	return Parse(input, tab, ScanFloat)
}

// parser is the recursive-descent state: a token cursor plus the symbol
// table consulted for symbol resolution.
type parser[N quantity.Scalar] struct {
	toks []Token
	pos  int
	tab  *symtab.Table[N]
}

func (p *parser[N]) eof() bool { return p.pos >= len(p.toks) }

func (p *parser[N]) peek() Token { return p.toks[p.pos] }

func (p *parser[N]) next() Token { t := p.toks[p.pos]; p.pos++; return t }

// compound parses ExponentUnit ( ('*'|'/'|ε) ExponentUnit )*, folding
// left-associatively. Inside parentheses it stops at the ')' and leaves
// it for the caller; at top level a stray ')' is an error.
func (p *parser[N]) compound(inParens bool) (quantity.Quantity[N], error) {
	q, err := p.exponentUnit()
	if err != nil {
		return q, err
	}

	for !p.eof() {
		switch p.peek().Kind {
		case TokenRParen:
			if inParens {
				return q, nil
			}
			return q, failf(ErrUnexpectedToken, "unexpected ')'")
		case TokenMul:
			p.next()
			rhs, err := p.exponentUnit()
			if err != nil {
				return q, err
			}
			q = q.Mul(rhs)
		case TokenDiv:
			p.next()
			rhs, err := p.exponentUnit()
			if err != nil {
				return q, err
			}
			q = q.Div(rhs)
		default:
			// Juxtaposition: "kg m" multiplies at the same level as *.
			rhs, err := p.exponentUnit()
			if err != nil {
				return q, err
			}
			q = q.Mul(rhs)
		}
	}
	return q, nil
}

// exponentUnit parses Unit ( '^' Integer | SupInteger )?.
func (p *parser[N]) exponentUnit() (quantity.Quantity[N], error) {
	q, err := p.unit()
	if err != nil {
		return q, err
	}
	if p.eof() {
		return q, nil
	}

	switch p.peek().Kind {
	case TokenExp:
		p.next()
		if p.eof() {
			return q, failf(ErrUnexpectedEnd, "exponent expected after '^'")
		}
		t := p.next()
		if t.Kind != TokenInteger {
			return q, failf(ErrUnexpectedToken,
				"integer expected after '^', got %s %q", t.Kind, t.Text)
		}
		return q.PowInt(t.Int), nil
	case TokenSupInteger:
		t := p.next()
		return q.PowInt(t.Int), nil
	}
	return q, nil
}

// unit parses '(' CompoundUnit ')' or a symbol resolved through the
// table's standalone-first, longest-prefix contract.
func (p *parser[N]) unit() (quantity.Quantity[N], error) {
	if p.eof() {
		return quantity.Quantity[N]{}, failf(ErrUnexpectedEnd, "unit expected, input ended")
	}

	t := p.next()
	switch t.Kind {
	case TokenLParen:
		q, err := p.compound(true)
		if err != nil {
			return q, err
		}
		if p.eof() {
			return q, failf(ErrUnbalancedParen, "missing ')'")
		}
		p.next() // the ')'
		return q, nil
	case TokenSymbol:
		q, ok := p.tab.Resolve(t.Text)
		if !ok {
			return quantity.Quantity[N]{}, failf(ErrUnknownSymbol, "unknown unit symbol %q", t.Text)
		}
		return q, nil
	default:
		return quantity.Quantity[N]{}, failf(ErrUnexpectedToken,
			"unit expected, got %s %q", t.Kind, t.Text)
	}
}
