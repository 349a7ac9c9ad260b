package cmd

import (
	"errors"
	"fmt"

	"github.com/OpenTraceLab/OpenTraceFrame/pkg/board"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <board_file_or_url>",
	Short: "Show board dimensions and mounting holes",
	Long: `Reads a board description and prints its dimensions and the mounting
holes that would anchor a generated frame, without writing any output.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	input := args[0]

	model, err := loadBoard(cmd.Context(), input)
	if err != nil {
		return err
	}

	green := color.New(color.FgGreen)
	cyan := color.New(color.FgCyan)
	yellow := color.New(color.FgYellow)

	cyan.Printf("Board: %s\n", input)

	width, height, err := model.Dimensions()
	if errors.Is(err, board.ErrDimensionsUndetermined) {
		yellow.Println("  Dimensions: not determined (no board outline found)")
	} else if err != nil {
		return err
	} else {
		green.Printf("  Dimensions: %.2f x %.2f mm\n", width, height)
	}

	holes := model.Holes()
	if len(holes) == 0 {
		yellow.Println("  Mounting holes: none")
		return nil
	}

	green.Printf("  Mounting holes: %d\n", len(holes))
	for _, h := range holes {
		fmt.Printf("    %-8s %.2f mm at (%.2f, %.2f)\n", h.Reference, h.Diameter, h.X, h.Y)
	}
	return nil
}
