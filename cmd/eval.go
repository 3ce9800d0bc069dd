package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/quanta/parse"
)

var evalCmd = &cobra.Command{
	Use:   "eval EXPRESSION",
	Short: "Evaluate a unit expression",
	Long: "Evaluate parses a quantity like \"25 mmol/L\" and prints its value " +
		"in SI base units together with its dimension vector.",
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	tab, err := loadTable()
	if err != nil {
		return err
	}

	// Joined so that `quanta eval 1 m/s` and `quanta eval "1 m/s"`
	// behave the same.
	q, err := parse.ParseFloat(strings.Join(args, " "), tab)
	if err != nil {
		return err
	}

	if q.Dimension().IsEmpty() {
		fmt.Fprintln(cmd.OutOrStdout(), formatValue(q.Raw()))
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", formatValue(q.Raw()), q.Dimension())
	return nil
}
