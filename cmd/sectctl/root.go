package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xyproto/env/v2"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
)

var rootCmd = &cobra.Command{
	Use:   "sectctl",
	Short: "Validate section placement for Game Boy link jobs",
	Long: `sectctl inspects the section tables of linker object files and checks
every section's placement constraints (region, bank, fixed address,
alignment, size) against the target's memory model before linking.`,
	Version: "0.1.0",
}

func init() {
	// Environment variables provide the defaults; flags override them.
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v",
		env.Bool("SECTCTL_VERBOSE"), "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q",
		env.Bool("SECTCTL_QUIET"), "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
