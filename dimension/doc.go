// Package dimension implements the dimension vector: the multiset of
// (symbol, rational power) pairs that describes a quantity's physical
// shape, e.g. speed = length¹·time⁻¹.
//
// 🚀 Representation
//
//	A Vec is an ordered slice of Terms, sorted by (Rank, Symbol), with
//	no duplicate symbols and no zero powers. Zero-power terms are
//	dropped the moment they appear, so the empty Vec is the one and
//	only dimensionless form — equality is a plain structural walk,
//	never a semantic comparison.
//
// The Rank is the declaration order of the base dimension (meters before
// kilograms in the SI table, say). It is the primary sort key, with the
// symbol string as tie-break, which makes the term order deterministic
// no matter which multiplication order produced the vector. Two
// dimensionally equal vectors are therefore always structurally equal.
//
// ✨ Operations
//
//   - Mul / Div — merge terms, add/subtract powers, cancel zeros
//   - Inv       — negate every power
//   - Pow(r)    — scale every power by a rational r (Pow(0) → empty)
//   - Root(r)   — divide every power by r; powers are rational, so
//     roots never hit a "power not divisible" wall
//
// Every operation returns a fresh Vec; values are immutable and safe to
// share between goroutines without locks.
//
// Complexity: all operations are O(len(a)+len(b)) merges over the sorted
// term slices.
package dimension
