package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List the registered units and prefixes",
	RunE:  runUnits,
}

func init() {
	rootCmd.AddCommand(unitsCmd)
}

func runUnits(cmd *cobra.Command, args []string) error {
	tab, err := loadTable()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	units := tab.Units()
	symbols := make([]string, 0, len(units))
	for sym := range units {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)
	for _, sym := range symbols {
		q := units[sym]
		fmt.Fprintf(out, "%-8s %-24s %s\n", sym, q.Dimension(), formatValue(q.Raw()))
	}

	prefixes := tab.Prefixes()
	symbols = symbols[:0]
	for sym := range prefixes {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)
	fmt.Fprintln(out)
	for _, sym := range symbols {
		fmt.Fprintf(out, "%-8s ×%g\n", sym, prefixes[sym])
	}
	return nil
}
