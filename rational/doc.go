// Package rational implements exact rational-number arithmetic on int64
// numerator/denominator pairs, always stored in lowest terms.
//
// Rationals are the exponent type of dimension vectors: keeping powers
// rational means the square root of an area is exactly a length, with no
// rounding and no "power not divisible" failure mode.
//
// Invariants (hold for every Rational ever observed):
//
//	gcd(|num|, den) == 1
//	den > 0
//
// All operations return fresh values; a Rational is never mutated.
// A zero denominator is a programmer error and panics — it signals a
// logic bug, not user input, so it is not modeled as a recoverable error.
//
// Construction from a float is deliberately lossy: FromFloat rounds to
// the nearest rational whose denominator is a power of ten controlled by
// the precision argument, then reduces.
package rational
