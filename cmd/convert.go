package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/quanta/parse"
)

var convertCmd = &cobra.Command{
	Use:   "convert EXPRESSION TARGET",
	Short: "Express a quantity in another unit",
	Long: "Convert evaluates EXPRESSION and expresses it in terms of TARGET, " +
		"e.g. `quanta convert \"90 km/h\" \"m/s\"`. The two must be " +
		"dimensionally compatible.",
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	tab, err := loadTable()
	if err != nil {
		return err
	}

	q, err := parse.ParseFloat(args[0], tab)
	if err != nil {
		return fmt.Errorf("expression: %w", err)
	}
	target, err := parse.ParseFloat(args[1], tab)
	if err != nil {
		return fmt.Errorf("target: %w", err)
	}

	v, err := q.Value(target)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", formatValue(v), args[1])
	return nil
}
