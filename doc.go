// Package quanta is your toolkit for dimensional-quantity arithmetic:
// values tagged with a physical dimension vector, safe unit algebra,
// and a parser that turns strings like "25 mmol/L" into quantities.
//
// 🚀 What is quanta?
//
//	A small, deterministic library that brings together:
//		• Exact rational exponents — roots of units stay exact
//		• Dimension vectors with merge/cancel algebra
//		• Dynamic quantities — dimension checks at every operation
//		• Static quantities — dimensions pinned by type tags
//		• A symbol table with SI prefixes and longest-prefix lookup
//		• A recursive-descent parser for compound unit expressions
//
// ✨ Why choose quanta?
//
//   - Predictable – value semantics everywhere, no hidden globals
//   - Honest errors – every dimension mismatch carries both vectors
//   - Unicode-aware – superscript exponents (m²), ⋅, ×, ÷ all parse
//   - Extensible – register your own units and prefixes, or load
//     them from a TOML file
//
// Everything is organized under focused subpackages:
//
//	rational/  — exact rational numbers used as dimension exponents
//	dimension/ — the dimension vector and its algebra
//	quantity/  — dynamic and static quantity types, DimensionError
//	symtab/    — unit/prefix symbol tables with prefix resolution
//	parse/     — lexer and parser for unit expressions, ParseError
//	si/        — the predefined SI table and dimension tags
//	unitfile/  — user-defined unit tables in TOML
//
// Quick taste:
//
//	q, err := si.Parse("1 kg/(m s^2)")
//	// q.Dimension().String() == "[kg m^-1 s^-2]"  (a pascal)
//
// Dive into each package's doc.go for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/katalvlaran/quanta
package quanta
