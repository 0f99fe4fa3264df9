package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmgtools/sectkit/objfile"
	"github.com/dmgtools/sectkit/sect"
)

var (
	checkTiny       bool
	checkSingleWRAM bool
	checkDMG        bool
	checkCompact    bool
)

func init() {
	cmd := newCheckCmd()
	cmd.Flags().BoolVarP(&checkTiny, "tiny", "t", false,
		"Address all ROM as a single 32 KiB bank")
	cmd.Flags().BoolVarP(&checkSingleWRAM, "single-wram", "w", false,
		"Treat banked WRAM as a single bank")
	cmd.Flags().BoolVarP(&checkDMG, "dmg", "d", false,
		"Target DMG hardware (no VRAM bank 1; implies --single-wram)")
	cmd.Flags().BoolVar(&checkCompact, "compact", false,
		"One finding per line instead of the full report")
	rootCmd.AddCommand(cmd)
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <object>...",
		Short: "Validate section placement across object files",
		Long: `The check command loads the section tables of the given object files
into one registry and validates every section's placement constraints
against the target memory model. All violations are reported in a single
run; the exit status is nonzero when any section cannot be placed.

Example:
  sectctl check game.o sound.o
  sectctl check --dmg game.o
  sectctl check -t game.o --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args)
		},
	}
	return cmd
}

func runCheck(args []string) error {
	modes := sect.Modes{
		ROM32k: checkTiny,
		// DMG hardware has no switchable WRAM banks either.
		SingleWRAM: checkSingleWRAM || checkDMG,
		DMGOnly:    checkDMG,
	}

	reg := sect.NewRegistry()
	rep := sect.NewReport()

	for _, path := range args {
		printVerbose("Loading %s\n", path)
		sections, err := objfile.ReadFile(path)
		if err != nil {
			return err
		}
		for _, s := range sections {
			collided, err := reg.Insert(s)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			if collided && verbose {
				rep.Warnf(s.Name, "section hashmap collision occurred")
			}
		}
	}
	printVerbose("Loaded %d sections from %d files\n", reg.Len(), len(args))

	for _, d := range sect.CheckAll(reg, modes).Diagnostics {
		rep.Add(d)
	}

	if jsonOut {
		if err := printJSON(rep); err != nil {
			return err
		}
	} else if checkCompact {
		printInfo("%s", rep.FormatTextCompact())
	} else {
		printInfo("%s", rep.FormatText())
	}

	if !rep.Passed() {
		return fmt.Errorf("placement validation failed with %d error(s)", rep.Summary.Errors)
	}
	return nil
}
