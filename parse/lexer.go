package parse

import (
	"strconv"
	"strings"
	"unicode"
)

// runeClass is the lexer's character classification. Characters of the
// same class accumulate into one run; a class change (or whitespace, or
// end of input) flushes the run as a single token.
type runeClass int

const (
	classNone runeClass = iota
	classSymbol
	classInteger
	classSupInteger
)

// superscripts maps Unicode superscript code points to their ASCII
// counterparts, signs included.
var superscripts = map[rune]rune{
	'⁰': '0', '¹': '1', '²': '2', '³': '3', '⁴': '4',
	'⁵': '5', '⁶': '6', '⁷': '7', '⁸': '8', '⁹': '9',
	'⁺': '+', '⁻': '-',
}

func classify(r rune) runeClass {
	switch {
	case r >= '0' && r <= '9', r == '+', r == '-':
		return classInteger
	default:
		if _, ok := superscripts[r]; ok {
			return classSupInteger
		}
		return classSymbol
	}
}

// lexer accumulates the current run while scanning left to right.
type lexer struct {
	toks []Token
	run  strings.Builder
	cls  runeClass
}

// Lex tokenizes a unit expression. The only lexical failure mode is a
// malformed integer or superscript run, reported as a *ParseError
// unwrapping to ErrBadInteger.
func Lex(input string) ([]Token, error) {
	lx := &lexer{}
	for _, r := range input {
		switch {
		case unicode.IsSpace(r):
			// Whitespace separates runs but emits no token.
			if err := lx.flush(); err != nil {
				return nil, err
			}
		case r == '(':
			if err := lx.emit(Token{Kind: TokenLParen, Text: "("}); err != nil {
				return nil, err
			}
		case r == ')':
			if err := lx.emit(Token{Kind: TokenRParen, Text: ")"}); err != nil {
				return nil, err
			}
		case r == '*' || r == '.' || r == '⋅' || r == '×':
			if err := lx.emit(Token{Kind: TokenMul, Text: string(r)}); err != nil {
				return nil, err
			}
		case r == '/' || r == '÷':
			if err := lx.emit(Token{Kind: TokenDiv, Text: string(r)}); err != nil {
				return nil, err
			}
		case r == '^':
			if err := lx.emit(Token{Kind: TokenExp, Text: "^"}); err != nil {
				return nil, err
			}
		default:
			if err := lx.accumulate(r); err != nil {
				return nil, err
			}
		}
	}
	if err := lx.flush(); err != nil {
		return nil, err
	}
	return lx.toks, nil
}

// emit flushes any pending run, then appends the standalone token.
func (lx *lexer) emit(t Token) error {
	if err := lx.flush(); err != nil {
		return err
	}
	lx.toks = append(lx.toks, t)
	return nil
}

// accumulate extends the current run, flushing first when the class
// changes.
func (lx *lexer) accumulate(r rune) error {
	cls := classify(r)
	if lx.cls != classNone && lx.cls != cls {
		if err := lx.flush(); err != nil {
			return err
		}
	}
	lx.cls = cls
	lx.run.WriteRune(r)
	return nil
}

// flush converts the pending run into a token, translating superscript
// runs to ASCII before integer parsing.
func (lx *lexer) flush() error {
	if lx.run.Len() == 0 {
		lx.cls = classNone
		return nil
	}
	text := lx.run.String()
	cls := lx.cls
	lx.run.Reset()
	lx.cls = classNone

	switch cls {
	case classSymbol:
		lx.toks = append(lx.toks, Token{Kind: TokenSymbol, Text: text})
	case classInteger:
		n, err := strconv.Atoi(text)
		if err != nil {
			return failf(ErrBadInteger, "unexpected integer format %q", text)
		}
		lx.toks = append(lx.toks, Token{Kind: TokenInteger, Text: text, Int: n})
	case classSupInteger:
		var ascii strings.Builder
		for _, r := range text {
			ascii.WriteRune(superscripts[r])
		}
		n, err := strconv.Atoi(ascii.String())
		if err != nil {
			return failf(ErrBadInteger, "unexpected integer format %q", text)
		}
		lx.toks = append(lx.toks, Token{Kind: TokenSupInteger, Text: text, Int: n})
	}
	return nil
}
