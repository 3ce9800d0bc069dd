// Package cmd implements the quanta command-line interface: one-shot
// evaluation and conversion of unit expressions against the SI table,
// optionally extended with user-defined units from a TOML file.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/quanta/si"
	"github.com/katalvlaran/quanta/symtab"
	"github.com/katalvlaran/quanta/unitfile"
)

var rootCmd = &cobra.Command{
	Use:   "quanta",
	Short: "Dimensional-quantity calculator",
	Long: "quanta parses unit expressions like \"25 mmol/L\" or \"100 kΩ\", " +
		"evaluates them against the SI table, and converts between " +
		"dimensionally compatible units.",
}

// Execute runs the CLI, printing any error to stderr.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .quanta.yaml)")
	rootCmd.PersistentFlags().String("units-file", "", "TOML file with extra unit definitions")
	rootCmd.PersistentFlags().IntP("precision", "p", 6, "significant digits in output")
	_ = viper.BindPFlag("units_file", rootCmd.PersistentFlags().Lookup("units-file"))
	_ = viper.BindPFlag("precision", rootCmd.PersistentFlags().Lookup("precision"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".quanta")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("QUANTA")
	viper.AutomaticEnv()

	// No config file is fine; flags and defaults cover everything.
	_ = viper.ReadInConfig()
}

// loadTable builds the working symbol table: a fresh SI table plus any
// configured user definitions.
func loadTable() (*symtab.Table[float64], error) {
	tab := si.Table()
	if path := viper.GetString("units_file"); path != "" {
		if err := unitfile.LoadFile(path, tab); err != nil {
			return nil, err
		}
	}
	return tab, nil
}

// formatValue renders a scalar with the configured precision.
func formatValue(v float64) string {
	prec := viper.GetInt("precision")
	if prec <= 0 {
		prec = 6
	}
	return fmt.Sprintf("%.*g", prec, v)
}
