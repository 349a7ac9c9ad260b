package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

const sampleBoard = `(kicad_pcb (version 20240108) (generator "pcbnew")
  (gr_rect (start 100 50) (end 150 80) (layer "Edge.Cuts") (width 0.1))
  (footprint "MountingHole:MountingHole_2.2mm_M2"
    (at 102.5 52.5)
    (property "Reference" "H1"))
  (footprint "MountingHole:MountingHole_2.2mm_M2"
    (at 147.5 77.5)
    (property "Reference" "H2")))
`

const sampleRecord = `{
  "width": 50,
  "height": 30,
  "mounting_holes": [
    {"x": 2.5, "y": 2.5, "diameter": 3.0, "reference": "H1"},
    {"x": 47.5, "y": 27.5, "diameter": 3.0, "reference": "H2"}
  ]
}`

// resetFlags restores the package-level flag variables between runs. The
// Changed state must go too, or an explicit flag from one run would keep
// overriding config files in the next.
func resetFlags() {
	generateCmd.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	outputFile = ""
	frameThickness = 2.0
	margin = 2.0
	usePegs = false
	pegHeight = 6.0
	generateBase = false
	lipHeight = 5.0
	baseThickness = 2.0
	configFile = ""
	verbose = false
}

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestGenerateE2E(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		filename    string
		extraArgs   []string
		wantErr     bool
		wantContain []string
	}{
		{
			name:     "kicad board",
			input:    sampleBoard,
			filename: "demo.kicad_pcb",
			wantContain: []string{
				"module demo()",
				"// PCB dimensions: 50.00mm x 30.00mm",
				"// Mounting hole for H1",
				"// Mounting hole for H2",
			},
		},
		{
			name:      "kicad board with pegs and base",
			input:     sampleBoard,
			filename:  "demo.kicad_pcb",
			extraArgs: []string{"--pegs", "--base"},
			wantContain: []string{
				"// Mounting peg for H1",
				"// Interior cutout",
				"module demo_base()",
				"module demo_base_angled()",
			},
		},
		{
			name:     "json record",
			input:    sampleRecord,
			filename: "demo.json",
			wantContain: []string{
				"demo_width = 50.00;",
				"demo_depth = 30.00;",
				"// Mounting hole for H1",
			},
		},
		{
			name:      "thickness flag",
			input:     sampleBoard,
			filename:  "demo.kicad_pcb",
			extraArgs: []string{"--thickness", "3.5"},
			wantContain: []string{
				"demo_frame_thickness = 3.50;",
			},
		},
		{
			name:     "no mounting holes",
			input:    `(kicad_pcb (gr_rect (start 0 0) (end 10 10) (layer "Edge.Cuts")))`,
			filename: "bare.kicad_pcb",
			wantErr:  true,
		},
		{
			name:     "no outline",
			input:    `(kicad_pcb (footprint "MountingHole:MountingHole_2.2mm_M2" (at 1 1)))`,
			filename: "holes_only.kicad_pcb",
			wantErr:  true,
		},
		{
			name:     "malformed record",
			input:    `{"width": 50}`,
			filename: "partial.json",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()

			inputPath := writeInput(t, tt.filename, tt.input)
			scadPath := filepath.Join(t.TempDir(), "out.scad")

			args := append([]string{"generate", inputPath, "-o", scadPath}, tt.extraArgs...)
			rootCmd.SetArgs(args)
			err := rootCmd.Execute()

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				if _, statErr := os.Stat(scadPath); statErr == nil {
					t.Error("output file written despite error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			data, err := os.ReadFile(scadPath)
			if err != nil {
				t.Fatalf("reading output: %v", err)
			}
			output := string(data)
			for _, want := range tt.wantContain {
				if !strings.Contains(output, want) {
					t.Errorf("output missing %q", want)
				}
			}
		})
	}
}

func TestGenerateE2EWithConfig(t *testing.T) {
	resetFlags()

	inputPath := writeInput(t, "demo.kicad_pcb", sampleBoard)
	cfgPath := writeInput(t, "otf.toml", "frame_thickness = 4.0\nmargin = 3.0\n")
	scadPath := filepath.Join(t.TempDir(), "out.scad")

	// Explicit --margin beats the config file; frame_thickness comes from it.
	rootCmd.SetArgs([]string{"generate", inputPath, "-o", scadPath, "--config", cfgPath, "--margin", "1.0"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(scadPath)
	if err != nil {
		t.Fatal(err)
	}
	output := string(data)
	if !strings.Contains(output, "demo_frame_thickness = 4.00;") {
		t.Error("config file frame thickness not applied")
	}
	if !strings.Contains(output, "// Margin around PCB: 1.00mm") {
		t.Error("explicit margin flag did not override config")
	}
}

func TestInfoE2E(t *testing.T) {
	resetFlags()

	inputPath := writeInput(t, "demo.kicad_pcb", sampleBoard)
	rootCmd.SetArgs([]string{"info", inputPath})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resetFlags()
	rootCmd.SetArgs([]string{"info", filepath.Join(t.TempDir(), "missing.kicad_pcb")})
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected error for missing file")
	}
}
