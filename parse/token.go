package parse

// TokenKind classifies the tokens the lexer produces.
type TokenKind int

const (
	// TokenSymbol is a unit (or prefix+unit) symbol run such as "m",
	// "kΩ" or "mol".
	TokenSymbol TokenKind = iota

	// TokenMul is an explicit multiplication sign: * . ⋅ ×
	TokenMul

	// TokenDiv is a division sign: / ÷
	TokenDiv

	// TokenExp is the explicit exponent marker ^.
	TokenExp

	// TokenInteger is an ASCII integer run, optionally signed.
	TokenInteger

	// TokenSupInteger is a Unicode superscript integer run such as ² or ⁻¹.
	TokenSupInteger

	// TokenLParen and TokenRParen delimit grouped subexpressions.
	TokenLParen
	TokenRParen
)

// String names the kind for error messages.
func (k TokenKind) String() string {
	switch k {
	case TokenSymbol:
		return "symbol"
	case TokenMul:
		return "'*'"
	case TokenDiv:
		return "'/'"
	case TokenExp:
		return "'^'"
	case TokenInteger:
		return "integer"
	case TokenSupInteger:
		return "superscript integer"
	case TokenLParen:
		return "'('"
	case TokenRParen:
		return "')'"
	default:
		return "unknown"
	}
}

// Token is one lexed unit of input. Int is populated for TokenInteger
// and TokenSupInteger; Text always holds the source fragment.
type Token struct {
	Kind TokenKind
	Text string
	Int  int
}
