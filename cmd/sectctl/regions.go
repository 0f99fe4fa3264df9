package main

import (
	"github.com/spf13/cobra"

	"github.com/dmgtools/sectkit/sect"
)

func init() {
	rootCmd.AddCommand(newRegionsCmd())
}

func newRegionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "Print the target's memory region table",
		Long: `The regions command prints the static layout table: each region's
address window, maximum section size, and legal bank range.

Example:
  sectctl regions
  sectctl regions --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegions()
		},
	}
}

func runRegions() error {
	regions := sect.Regions()

	if jsonOut {
		return printJSON(regions)
	}

	printInfo("%-6s  %-15s  %-8s  %s\n", "REGION", "ADDRESSES", "MAX SIZE", "BANKS")
	for _, r := range regions {
		printInfo("%-6s  $%04X - $%04X   $%04X     %d - %d\n",
			r.Name, r.Base, r.End(), r.MaxSize, r.MinBank, r.MaxBank)
	}
	return nil
}
