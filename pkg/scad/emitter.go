package scad

import (
	"errors"
	"fmt"
	"strings"

	"github.com/OpenTraceLab/OpenTraceFrame/pkg/board"
)

// ErrNoMountingHoles is returned when a frame would have no mounting
// features. A frame that cannot hold its board is not a valid output.
var ErrNoMountingHoles = errors.New("no mounting holes found in input")

// Options controls frame and base generation. All lengths are in mm.
type Options struct {
	FrameThickness float64 // Plate thickness (default 2.0)
	Margin         float64 // Extra space around the board edge (default 2.0)
	UsePegs        bool    // Protruding pegs instead of through-holes
	PegHeight      float64 // Peg height above the plate (default 6.0)
	GenerateBase   bool    // Also emit the base stand modules
	LipHeight      float64 // Height of the base stand walls (default 5.0)
	BaseThickness  float64 // Base plate thickness (default 2.0)
}

// DefaultOptions returns the standard frame parameters.
func DefaultOptions() Options {
	return Options{
		FrameThickness: 2.0,
		Margin:         2.0,
		PegHeight:      6.0,
		LipHeight:      5.0,
		BaseThickness:  2.0,
	}
}

// Fixed emission constants, in mm.
const (
	minPegSpacing  = 5.0  // material kept around pegs in the interior cutout
	wallThickness  = 3.0  // base stand wall thickness
	notchClearance = 0.3  // extra notch width so the frame slides in
	wallLeanAngle  = 15.0 // degrees the angled walls tilt back
	cylinderFacets = 32
)

// Generate emits one OpenSCAD document: a frame module named moduleName plus,
// when requested, straight and angled base stand modules, and a guarded
// default instantiation. sourceName appears in the header comment only.
// Generation fails before emitting anything when the hole list is empty.
func Generate(moduleName, sourceName string, boardWidth, boardHeight float64, holes []board.Hole, opts Options) (string, error) {
	if len(holes) == 0 {
		return "", ErrNoMountingHoles
	}

	frameWidth := boardWidth + 2*opts.Margin
	frameHeight := boardHeight + 2*opts.Margin

	var b strings.Builder

	fmt.Fprintf(&b, "// Generated frame for %s\n", sourceName)
	fmt.Fprintf(&b, "// PCB dimensions: %.2fmm x %.2fmm\n", boardWidth, boardHeight)
	fmt.Fprintf(&b, "// Frame dimensions: %.2fmm x %.2fmm\n", frameWidth, frameHeight)
	fmt.Fprintf(&b, "// Frame thickness: %.2fmm\n", opts.FrameThickness)
	if opts.UsePegs {
		fmt.Fprintf(&b, "// Peg height: %.2fmm\n", opts.PegHeight)
	}
	fmt.Fprintf(&b, "// Margin around PCB: %.2fmm\n\n", opts.Margin)

	fmt.Fprintf(&b, "// PCB dimensions as variables\n")
	fmt.Fprintf(&b, "%s_width = %.2f;\n", moduleName, boardWidth)
	fmt.Fprintf(&b, "%s_depth = %.2f;\n\n", moduleName, boardHeight)

	fmt.Fprintf(&b, "// Frame parameters\n")
	fmt.Fprintf(&b, "%s_frame_thickness = %.2f;  // mm\n", moduleName, opts.FrameThickness)
	if opts.UsePegs {
		fmt.Fprintf(&b, "%s_peg_height = %.2f;  // mm\n", moduleName, opts.PegHeight)
	}

	emitFrameModule(&b, moduleName, frameWidth, frameHeight, holes, opts)

	var base BaseDims
	if opts.GenerateBase {
		base = SolveBase(frameWidth, frameHeight, holes, opts.Margin)
		emitBaseModules(&b, moduleName, base, opts)
	}

	emitInstantiation(&b, moduleName, frameWidth, base, opts)

	return b.String(), nil
}

// emitFrameModule writes the frame module body. Hole mode keeps the plate
// solid and subtracts a through-cylinder per hole; peg mode unions protruding
// pegs onto the plate and then cuts out the interior, leaving an open frame.
// The asymmetry is intentional: pegs need only a rim to stand on, while
// through-holes need material around every fastener.
func emitFrameModule(b *strings.Builder, moduleName string, frameWidth, frameHeight float64, holes []board.Hole, opts Options) {
	fmt.Fprintf(b, "\nmodule %s() {\n", moduleName)
	fmt.Fprintf(b, "    difference() {\n")
	fmt.Fprintf(b, "        // Base frame\n")
	fmt.Fprintf(b, "        union() {\n")
	fmt.Fprintf(b, "            // Main surface\n")
	fmt.Fprintf(b, "            translate([0, 0, 0])\n")
	fmt.Fprintf(b, "                cube([%.2f, %.2f, %s_frame_thickness]);\n", frameWidth, frameHeight, moduleName)

	if opts.UsePegs {
		for _, hole := range holes {
			x := hole.X + opts.Margin
			y := hole.Y + opts.Margin
			pegDiameter := hole.Diameter * 0.9
			fmt.Fprintf(b, "\n            // Mounting peg for %s\n", hole.Reference)
			fmt.Fprintf(b, "            translate([%.2f, %.2f, 0]) {\n", x, y)
			fmt.Fprintf(b, "                cylinder(h=%s_frame_thickness + %s_peg_height, d=%.2f, $fn=%d);\n",
				moduleName, moduleName, pegDiameter, cylinderFacets)
			fmt.Fprintf(b, "            }\n")
		}

		inset := opts.Margin + minPegSpacing
		fmt.Fprintf(b, "        }\n\n")
		fmt.Fprintf(b, "        // Interior cutout\n")
		fmt.Fprintf(b, "        translate([%.2f, %.2f, -1]) {\n", inset, inset)
		fmt.Fprintf(b, "            cube([%.2f, %.2f, %s_frame_thickness + 2]);\n",
			frameWidth-2*inset, frameHeight-2*inset, moduleName)
		fmt.Fprintf(b, "        }\n")
	} else {
		fmt.Fprintf(b, "        }\n")
		for _, hole := range holes {
			x := hole.X + opts.Margin
			y := hole.Y + opts.Margin
			fmt.Fprintf(b, "\n        // Mounting hole for %s\n", hole.Reference)
			fmt.Fprintf(b, "        translate([%.2f, %.2f, -1]) {\n", x, y)
			fmt.Fprintf(b, "            cylinder(h=%s_frame_thickness + 2, d=%.2f, $fn=%d);\n",
				moduleName, hole.Diameter, cylinderFacets)
			fmt.Fprintf(b, "        }\n")
		}
	}

	fmt.Fprintf(b, "    }\n")
	fmt.Fprintf(b, "}\n")
}

// emitBaseModules writes the two base stand modules: straight walls and
// 15-degree angled walls. Both rest two parallel walls on a plate, separated
// by a notch the frame slots into.
func emitBaseModules(b *strings.Builder, moduleName string, base BaseDims, opts Options) {
	notchWidth := opts.FrameThickness + notchClearance
	wallHeight := opts.LipHeight

	fmt.Fprintf(b, "\n// Base to hold the frame\n")
	fmt.Fprintf(b, "// Base dimensions: %.2fmm x %.2fmm\n", base.Width, base.Depth)
	fmt.Fprintf(b, "// Wall height: %.2fmm\n", wallHeight)
	fmt.Fprintf(b, "// Notch width (gap for frame): %.2fmm\n\n", notchWidth)

	fmt.Fprintf(b, "module %s_base() {\n", moduleName)
	fmt.Fprintf(b, "    wall_thickness = %.2f;\n", wallThickness)
	fmt.Fprintf(b, "    notch_width = %.2f;  // Gap between walls = frame thickness + clearance\n\n", notchWidth)
	fmt.Fprintf(b, "    // Base plate\n")
	fmt.Fprintf(b, "    cube([%.2f, %.2f, %.2f]);\n\n", base.Width, base.Depth, opts.BaseThickness)
	fmt.Fprintf(b, "    // Two parallel walls with a gap (notch) between them for the frame to slot into\n")
	fmt.Fprintf(b, "    // First wall\n")
	fmt.Fprintf(b, "    translate([0, 0, %.2f])\n", opts.BaseThickness)
	fmt.Fprintf(b, "        cube([%.2f, wall_thickness, %.2f]);\n\n", base.Width, wallHeight)
	fmt.Fprintf(b, "    // Second wall (with notch_width gap from first wall)\n")
	fmt.Fprintf(b, "    translate([0, wall_thickness + notch_width, %.2f])\n", opts.BaseThickness)
	fmt.Fprintf(b, "        cube([%.2f, wall_thickness, %.2f]);\n", base.Width, wallHeight)
	fmt.Fprintf(b, "}\n")

	fmt.Fprintf(b, "\n// Angled version - walls tilted back %.0f degrees\n", wallLeanAngle)
	fmt.Fprintf(b, "module %s_base_angled() {\n", moduleName)
	fmt.Fprintf(b, "    wall_thickness = %.2f;\n", wallThickness)
	fmt.Fprintf(b, "    notch_width = %.2f;\n", notchWidth)
	fmt.Fprintf(b, "    angle = %.0f;\n", wallLeanAngle)
	fmt.Fprintf(b, "    wall_height = %.2f;\n\n", wallHeight)
	fmt.Fprintf(b, "    // How far the top of the wall moves back when angled\n")
	fmt.Fprintf(b, "    lean_back = wall_height * sin(angle);\n\n")
	fmt.Fprintf(b, "    // Base plate\n")
	fmt.Fprintf(b, "    cube([%.2f, %.2f, %.2f]);\n\n", base.Width, base.Depth, opts.BaseThickness)
	fmt.Fprintf(b, "    // Two parallel angled walls with a gap (notch) between them\n")
	fmt.Fprintf(b, "    // hull() creates solid wedge shapes that sit flat on the base\n")
	fmt.Fprintf(b, "    translate([0, 0, %.2f]) {\n", opts.BaseThickness)
	fmt.Fprintf(b, "        // First wall - solid wedge leaning back\n")
	fmt.Fprintf(b, "        hull() {\n")
	fmt.Fprintf(b, "            // Bottom edge - flat on base\n")
	fmt.Fprintf(b, "            cube([%.2f, wall_thickness, 0.01]);\n", base.Width)
	fmt.Fprintf(b, "            // Top edge - shifted back\n")
	fmt.Fprintf(b, "            translate([0, lean_back, wall_height - 0.01])\n")
	fmt.Fprintf(b, "                cube([%.2f, wall_thickness, 0.01]);\n", base.Width)
	fmt.Fprintf(b, "        }\n\n")
	fmt.Fprintf(b, "        // Second wall - same angle, with notch gap\n")
	fmt.Fprintf(b, "        translate([0, wall_thickness + notch_width, 0]) {\n")
	fmt.Fprintf(b, "            hull() {\n")
	fmt.Fprintf(b, "                // Bottom edge - flat on base\n")
	fmt.Fprintf(b, "                cube([%.2f, wall_thickness, 0.01]);\n", base.Width)
	fmt.Fprintf(b, "                // Top edge - shifted back\n")
	fmt.Fprintf(b, "                translate([0, lean_back, wall_height - 0.01])\n")
	fmt.Fprintf(b, "                    cube([%.2f, wall_thickness, 0.01]);\n", base.Width)
	fmt.Fprintf(b, "            }\n")
	fmt.Fprintf(b, "        }\n")
	fmt.Fprintf(b, "    }\n")
	fmt.Fprintf(b, "}\n")
}

// emitInstantiation writes the guarded default instantiation block.
// Consumers including the file as a library set create_default = 0 first.
func emitInstantiation(b *strings.Builder, moduleName string, frameWidth float64, base BaseDims, opts Options) {
	fmt.Fprintf(b, "\n// Set to 0 when including this file in another project\n")
	fmt.Fprintf(b, "create_default = 1;  // Set to 0 to prevent auto-creation when included\n\n")
	fmt.Fprintf(b, "// Create an instance only if requested\n")
	fmt.Fprintf(b, "if (create_default) {\n")
	fmt.Fprintf(b, "    %s();\n", moduleName)

	if opts.GenerateBase {
		fmt.Fprintf(b, "\n    // Base positioned next to frame for printing\n")
		fmt.Fprintf(b, "    translate([%.2f, 0, 0])\n", frameWidth+5)
		fmt.Fprintf(b, "        %s_base();\n\n", moduleName)
		fmt.Fprintf(b, "    // Angled base positioned next to regular base\n")
		fmt.Fprintf(b, "    translate([%.2f, 0, 0])\n", frameWidth+base.Width+10)
		fmt.Fprintf(b, "        %s_base_angled();\n", moduleName)
	}

	fmt.Fprintf(b, "}\n")
}
