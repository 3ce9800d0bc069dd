// Package parse turns human-readable unit expressions — "25 mmol/L",
// "100 kΩ", "kg/(m s^2)", "m²" — into dynamic quantities, resolving
// symbols against a symtab.Table.
//
// 🚀 Pipeline
//
//	input ──Lex──▶ tokens ──recursive descent──▶ quantity.Quantity
//
// The lexer classifies code points into whitespace (an implicit
// multiplication separator), parentheses, multiply signs (* . ⋅ ×),
// divide signs (/ ÷), the explicit exponent marker ^, ASCII integer
// runs (with sign), Unicode superscript-integer runs (⁰…⁹, ⁺, ⁻), and
// symbol runs. Superscripts are translated to ASCII digits before
// integer parsing.
//
// ✨ Grammar (precedence lowest → highest)
//
//	CompoundUnit := ExponentUnit ( ('*' | '/' | ε) ExponentUnit )*
//	ExponentUnit := Unit ( '^' Integer | SupInteger )?
//	Unit         := '(' CompoundUnit ')' | Symbol
//
// Juxtaposition multiplies ("m s" ≡ "m*s") and folds left to right at
// the same level as explicit * and /; exponents bind tighter; a prefix
// must be joined to its unit ("cm" works, "c m" does not).
//
// The top-level Parse entry accepts an optional leading number through
// an injected NumberFunc so the scalar type stays pluggable. A failed
// number parse is NOT an error — the scalar defaults to 1 and the whole
// input is read as a unit expression, so "m/s" parses as 1 m/s.
//
// Every malformed input returns a *ParseError matching ErrParse via
// errors.Is and unwrapping to a fine-grained sentinel naming what went
// wrong. No partial value is ever returned.
//
// Parsing is synchronous, allocation-light, and O(len(input)).
package parse
