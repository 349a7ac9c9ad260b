package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/OpenTraceLab/OpenTraceFrame/internal/config"
	"github.com/OpenTraceLab/OpenTraceFrame/pkg/scad"
	"github.com/spf13/cobra"
)

var (
	outputFile     string
	frameThickness float64
	margin         float64
	usePegs        bool
	pegHeight      float64
	generateBase   bool
	lipHeight      float64
	baseThickness  float64
)

var generateCmd = &cobra.Command{
	Use:   "generate <board_file_or_url>",
	Short: "Generate an OpenSCAD frame for a board",
	Long: `Reads a board description and writes an OpenSCAD script for a mounting
frame sized to the board plus a margin.

By default the frame is a solid plate with through-holes matching the
board's mounting holes. With --pegs the plate becomes an open frame with
protruding pegs that the board's holes slip onto. With --base two extra
modules are emitted: a base stand with a slot the frame slides into, in
straight and angled variants.

Defaults for the size parameters can be put in a TOML file passed with
--config; flags given on the command line always win.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	defaults := config.Default()
	generateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default <module_name>.scad)")
	generateCmd.Flags().Float64VarP(&frameThickness, "thickness", "t", defaults.FrameThickness, "frame thickness in mm")
	generateCmd.Flags().Float64VarP(&margin, "margin", "m", defaults.Margin, "extra space around the board edge in mm")
	generateCmd.Flags().BoolVarP(&usePegs, "pegs", "p", false, "mounting pegs instead of screw holes")
	generateCmd.Flags().Float64Var(&pegHeight, "peg-height", defaults.PegHeight, "peg height above the frame in mm")
	generateCmd.Flags().BoolVarP(&generateBase, "base", "b", false, "also generate a base stand")
	generateCmd.Flags().Float64Var(&lipHeight, "lip-height", defaults.LipHeight, "base stand wall height in mm")
	generateCmd.Flags().Float64Var(&baseThickness, "base-thickness", defaults.BaseThickness, "base plate thickness in mm")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	input := args[0]

	opts, err := frameOptions(cmd)
	if err != nil {
		return err
	}

	model, err := loadBoard(cmd.Context(), input)
	if err != nil {
		return err
	}

	width, height, err := model.Dimensions()
	if err != nil {
		return err
	}
	holes := model.Holes()
	logger.Debug("board loaded", "width", width, "height", height, "holes", len(holes))

	moduleName := scad.NormalizeModuleName(input)
	source := filepath.Base(input)
	output, err := scad.Generate(moduleName, source, width, height, holes, opts)
	if err != nil {
		return err
	}

	scadFile := outputFile
	if scadFile == "" {
		scadFile = moduleName + ".scad"
	}
	if err := os.WriteFile(scadFile, []byte(output), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", scadFile, err)
	}

	fmt.Printf("Generated OpenSCAD file: %s\n", scadFile)
	return nil
}

// frameOptions merges the built-in defaults, the optional config file, and
// any flags the user set explicitly, in that order of precedence.
func frameOptions(cmd *cobra.Command) (scad.Options, error) {
	cfg := config.Default()
	if configFile != "" {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return scad.Options{}, err
		}
		logger.Debug("loaded config", "file", configFile)
	}

	opts := scad.Options{
		FrameThickness: cfg.FrameThickness,
		Margin:         cfg.Margin,
		PegHeight:      cfg.PegHeight,
		LipHeight:      cfg.LipHeight,
		BaseThickness:  cfg.BaseThickness,
		UsePegs:        usePegs,
		GenerateBase:   generateBase,
	}

	flags := cmd.Flags()
	if flags.Changed("thickness") {
		opts.FrameThickness = frameThickness
	}
	if flags.Changed("margin") {
		opts.Margin = margin
	}
	if flags.Changed("peg-height") {
		opts.PegHeight = pegHeight
	}
	if flags.Changed("lip-height") {
		opts.LipHeight = lipHeight
	}
	if flags.Changed("base-thickness") {
		opts.BaseThickness = baseThickness
	}
	return opts, nil
}
