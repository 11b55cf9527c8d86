// =============================================================================
// Sales Data Cleaner - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that the other commands ('clean', 'version') are
// attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (sales-cleaner)
//   ├── cleanCmd (sales-cleaner clean)
//   └── versionCmd (sales-cleaner version)
//
// The root command owns the global flags (--config, --verbose); reading the
// configuration and setting up logging happens in the individual commands,
// after flag parsing.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "sales-cleaner",
	Short: "Sales Data Cleaner - Normalize, dedupe and convert sales exports",
	Long: `Sales Data Cleaner is a CLI tool for ad hoc cleanup of delimited sales
exports. It normalizes field formatting, removes duplicate records, converts
prices from USD to INR at a fixed rate, and writes the result as a JSON
document.

Example Usage:
  sales-cleaner clean                        # Clean sales.csv into clean_sales.json
  sales-cleaner clean --input export.xlsx    # Clean a spreadsheet export
  sales-cleaner clean --rate 84.5 --dry-run  # Report counts without writing`,

	Run: func(cmd *cobra.Command, args []string) {
		// No subcommand: print the help message.
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main() and only needs to happen
// once.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags are available to this command and all subcommands.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file (default is config.yaml)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
