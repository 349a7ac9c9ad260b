package cmd

import (
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose    bool
	configFile string

	logger = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
	})
)

var rootCmd = &cobra.Command{
	Use:   "otf",
	Short: "OpenTraceFrame - 3D-printable frames and stands for circuit boards",
	Long: `OpenTraceFrame (otf) turns a circuit board description into a parametric
OpenSCAD script for a 3D-printable mounting frame, with an optional base
stand that holds the framed board upright.

Inputs can be KiCad PCB files (.kicad_pcb), JSON board records (.json),
or URLs pointing at either.

Examples:
  otf generate board.kicad_pcb            # Frame with screw holes
  otf generate board.kicad_pcb --pegs     # Frame with mounting pegs
  otf generate board.kicad_pcb --base     # Frame plus base stand
  otf info board.kicad_pcb                # Show board dimensions and holes`,
	Version:       "0.9.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.SetLevel(charmlog.DebugLevel)
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "TOML config file with default frame parameters")
}
