package unitfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/katalvlaran/quanta/parse"
	"github.com/katalvlaran/quanta/symtab"
)

// ErrBadDefinition marks a structurally invalid definition: a missing
// symbol, a zero prefix factor, an empty expression.
var ErrBadDefinition = errors.New("unitfile: invalid definition")

// document is the TOML shape of a unit file.
type document struct {
	Prefixes []prefixDef `toml:"prefix"`
	Units    []unitDef   `toml:"unit"`
}

type prefixDef struct {
	Symbol string  `toml:"symbol"`
	Factor float64 `toml:"factor"`
}

type unitDef struct {
	Symbol string `toml:"symbol"`
	Expr   string `toml:"expr"`
}

// Load reads TOML definitions from r and registers them in tab:
// prefixes first, then units in file order, each unit expression
// evaluated against the table as built so far.
func Load(r io.Reader, tab *symtab.Table[float64]) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("unitfile: reading definitions: %w", err)
	}

	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("unitfile: decoding TOML: %w", err)
	}

	for _, p := range doc.Prefixes {
		if p.Symbol == "" {
			return fmt.Errorf("%w: prefix with empty symbol", ErrBadDefinition)
		}
		if p.Factor == 0 {
			return fmt.Errorf("%w: prefix %q has zero factor", ErrBadDefinition, p.Symbol)
		}
		tab.AddPrefix(p.Symbol, p.Factor)
	}

	for _, u := range doc.Units {
		if u.Symbol == "" {
			return fmt.Errorf("%w: unit with empty symbol", ErrBadDefinition)
		}
		if u.Expr == "" {
			return fmt.Errorf("%w: unit %q has empty expr", ErrBadDefinition, u.Symbol)
		}
		q, err := parse.ParseFloat(u.Expr, tab)
		if err != nil {
			return fmt.Errorf("unitfile: unit %q: %w", u.Symbol, err)
		}
		tab.AddUnit(u.Symbol, q)
	}
	return nil
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string, tab *symtab.Table[float64]) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("unitfile: opening %s: %w", path, err)
	}
	defer f.Close()
	return Load(f, tab)
}
