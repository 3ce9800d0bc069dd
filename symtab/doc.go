// Package symtab provides the symbol table consulted by the unit
// parser: unit symbols mapped to their quantity (dimension + scale) and
// prefix symbols mapped to scale factors.
//
// 🚀 Lookup contract (the part the parser leans on)
//
//	Resolve tries the exact unit symbol first — a standalone unit
//	always beats any prefix+unit decomposition, which is what makes
//	"cd" candela rather than centi-day. Only when no unit matches does
//	it try prefixes, longest first, against the remaining suffix,
//	accepting the first decomposition whose suffix is a known unit.
//
// Registration is last-write-wins for both units and prefixes, so a
// derived table can shadow entries of the table it was cloned from.
// The longest registered prefix length is cached to bound the parser's
// prefix-matching loop.
//
// ✨ Concurrency
//
//	A Table guards its maps with a sync.RWMutex, so concurrent use is
//	safe. The recommended discipline is still build-then-freeze:
//	populate the table fully at startup, then treat it as read-only
//	while parsing — lookups then only ever contend on RLock.
package symtab
