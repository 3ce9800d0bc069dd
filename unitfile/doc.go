// Package unitfile loads user-defined units and prefixes from TOML
// files into a symbol table.
//
// 🚀 File format
//
//	[[prefix]]
//	symbol = "dz"
//	factor = 12.0
//
//	[[unit]]
//	symbol = "mph"
//	expr   = "0.44704 m/s"
//
//	[[unit]]
//	symbol = "furlong"
//	expr   = "201.168 m"
//
// Each unit's expr is itself a unit expression, evaluated against the
// table as built so far — prefixes first, then units in file order, so
// later units may reference earlier ones ("fortnight" can be defined
// in terms of "d"). Re-defining a symbol follows the table's
// last-write-wins rule.
//
// The first bad definition stops the load with an error naming the
// offending symbol; definitions before it remain applied. Expression
// failures still match parse.ErrParse via errors.Is.
package unitfile
