// Package si ships the predefined SI symbol table: the seven base
// units, the derived units with special names, the common accepted
// units (liter, tonne, minute, hour, day, bar, electronvolt), and the
// full prefix ladder from quecto to quetta.
//
// The package is pure data on top of the core: every definition is
// built with quantity and symtab constructors, exactly the way user
// code would register its own units.
//
// 🚀 Usage
//
//	q, err := si.Parse("25 mmol/L")     // against the shared table
//	tab := si.Table()                   // a fresh, mutable copy
//	tab.AddUnit("smoot", …)
//
// The shared table behind Parse and Default is built once and must be
// treated as frozen; derive from Table() (or Default().Clone()) when
// you need to extend it.
//
// ✨ Notes
//
//   - The gram is the registered mass unit (0.001 of the base scale),
//     so "kg" resolves through the kilo prefix like any other prefixed
//     symbol, while "cd" stays candela because standalone units win
//     over prefix decompositions.
//   - Celsius deliberately shares the kelvin dimension. The affine
//     offset is not unit algebra and lives in the CelsiusToKelvin and
//     KelvinToCelsius helpers, outside the core.
//   - Dimension type tags (Length, Mass, Duration, ...) for the static
//     quantity variant are exported here, next to the data that
//     defines them.
package si
