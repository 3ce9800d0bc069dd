// Package quantity provides the two quantity variants built on top of
// dimension vectors: the dynamic Quantity, whose dimension travels as
// runtime data and is checked at every operation, and the static
// Static, whose dimension is pinned by a type tag.
//
// 🚀 Dynamic variant — Quantity[N]
//
//	A value plus its dimension vector. Add/Sub/Mod and comparisons
//	require equal dimensions and return a *DimensionError (matching
//	ErrDimensionMismatch via errors.Is) carrying both vectors when
//	they differ. Mul/Div always succeed and combine dimensions.
//	Pow/Root recompute the dimension with exact rational exponents.
//
// ✨ Static variant — Static[N, D]
//
//	D is a type tag implementing Dim. Two Static values interoperate
//	through methods only when their tags are the identical type, so a
//	meter+second addition is a compile error, not a runtime one.
//
//	Go generics cannot synthesize a brand-new type for the result of a
//	multiplication, so cross-dimension operations take the result tag
//	explicitly (MulAs, DivAs, PowAs, RootAs) and assert — eagerly, at
//	the call — that the requested tag matches the combined dimension.
//	This is the documented degradation of fully type-level dimension
//	tracking into "static tags plus an eager runtime assertion"; the
//	same-dimension operations (Add, Sub, Value, comparisons) remain
//	purely compile-time checked.
//
// Both variants are plain value types: copy freely, share across
// goroutines, no locks needed.
package quantity
