package symtab

import (
	"sync"

	"github.com/katalvlaran/quanta/quantity"
)

// Table maps unit symbols to quantities and prefix symbols to scale
// factors. The zero value is not usable; construct with New.
type Table[N quantity.Scalar] struct {
	mu        sync.RWMutex
	units     map[string]quantity.Quantity[N]
	prefixes  map[string]N
	maxPrefix int // longest registered prefix, in bytes
}

// New returns an empty table.
func New[N quantity.Scalar]() *Table[N] {
	return &Table[N]{
		units:    make(map[string]quantity.Quantity[N]),
		prefixes: make(map[string]N),
	}
}

// AddUnit registers q under symbol. Re-registering a symbol replaces
// the previous definition (last write wins).
func (t *Table[N]) AddUnit(symbol string, q quantity.Quantity[N]) {
	t.mu.Lock()
	t.units[symbol] = q
	t.mu.Unlock()
}

// AddPrefix registers the scale factor under symbol, updating the
// cached longest-prefix length. Last write wins.
func (t *Table[N]) AddPrefix(symbol string, factor N) {
	t.mu.Lock()
	t.prefixes[symbol] = factor
	if len(symbol) > t.maxPrefix {
		t.maxPrefix = len(symbol)
	}
	t.mu.Unlock()
}

// Unit looks up an exact unit symbol.
func (t *Table[N]) Unit(symbol string) (quantity.Quantity[N], bool) {
	t.mu.RLock()
	q, ok := t.units[symbol]
	t.mu.RUnlock()
	return q, ok
}

// Prefix looks up an exact prefix symbol.
func (t *Table[N]) Prefix(symbol string) (N, bool) {
	t.mu.RLock()
	f, ok := t.prefixes[symbol]
	t.mu.RUnlock()
	return f, ok
}

// Resolve maps a symbol as it appears in a unit expression to a
// quantity. Exact unit match wins outright; otherwise every prefix
// length from longest to shortest is tried against the unit table, and
// the first decomposition with a known suffix is accepted, scaled by
// the prefix factor. ok is false when neither route matches.
func (t *Table[N]) Resolve(symbol string) (quantity.Quantity[N], bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if q, ok := t.units[symbol]; ok {
		return q, true
	}

	// Longest prefix first; the suffix must be non-empty, so a bare
	// prefix never resolves.
	limit := t.maxPrefix
	if max := len(symbol) - 1; limit > max {
		limit = max
	}
	for n := limit; n >= 1; n-- {
		factor, ok := t.prefixes[symbol[:n]]
		if !ok {
			continue
		}
		if q, ok := t.units[symbol[n:]]; ok {
			return q.MulN(factor), true
		}
	}
	return quantity.Quantity[N]{}, false
}

// Len reports the number of registered units and prefixes.
func (t *Table[N]) Len() (units, prefixes int) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.units), len(t.prefixes)
}

// Units returns a snapshot copy of the unit map, for listing surfaces.
func (t *Table[N]) Units() map[string]quantity.Quantity[N] {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make(map[string]quantity.Quantity[N], len(t.units))
	for sym, q := range t.units {
		out[sym] = q
	}
	return out
}

// Prefixes returns a snapshot copy of the prefix map.
func (t *Table[N]) Prefixes() map[string]N {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make(map[string]N, len(t.prefixes))
	for sym, f := range t.prefixes {
		out[sym] = f
	}
	return out
}

// Clone returns an independent copy. Derived tables can add or shadow
// entries without touching the original — the intended way to extend a
// frozen base table (like the SI table) with user definitions.
func (t *Table[N]) Clone() *Table[N] {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := New[N]()
	for sym, q := range t.units {
		out.units[sym] = q
	}
	for sym, f := range t.prefixes {
		out.prefixes[sym] = f
	}
	out.maxPrefix = t.maxPrefix
	return out
}
