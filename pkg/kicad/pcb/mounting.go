package pcb

import (
	"strconv"
	"strings"

	"github.com/OpenTraceLab/OpenTraceFrame/pkg/board"
	"github.com/OpenTraceLab/OpenTraceFrame/pkg/kicad/sexp"
)

// MountingHolePrefix identifies footprints that represent physical mounting
// holes. KiCad's standard library names them "MountingHole:MountingHole_..."
// with the drill size embedded in the name.
const MountingHolePrefix = "MountingHole"

// scanMountingHole inspects one footprint node and extracts a mounting hole
// from it. Footprints that are not mounting holes, or that are missing a
// position or a parseable drill size, are skipped without error; heterogeneous
// boards are full of components this extractor does not care about.
func scanMountingHole(node *sexp.List) (board.Hole, bool) {
	name, err := sexp.GetString(node, 1)
	if err != nil || !strings.HasPrefix(name, MountingHolePrefix) {
		return board.Hole{}, false
	}

	at, ok := sexp.FindChild(node, "at")
	if !ok {
		return board.Hole{}, false
	}
	x, y, ok := pointOf(at)
	if !ok {
		return board.Hole{}, false
	}

	diameter, ok := drillDiameter(name)
	if !ok {
		return board.Hole{}, false
	}

	return board.Hole{
		X:         x,
		Y:         y,
		Diameter:  diameter,
		Reference: referenceOf(node),
	}, true
}

// drillDiameter extracts the drill size embedded in a footprint name.
// The name is split on underscores and the first token ending in "mm" with a
// numeric prefix wins. Example: "MountingHole:MountingHole_2.2mm_M2" -> 2.2.
// Names carrying no such token ("MountingHole_M3") yield no diameter; there
// is no placeholder default.
func drillDiameter(name string) (float64, bool) {
	for _, part := range strings.Split(name, "_") {
		if !strings.HasSuffix(part, "mm") {
			continue
		}
		if size, err := strconv.ParseFloat(strings.TrimSuffix(part, "mm"), 64); err == nil {
			return size, true
		}
	}
	return 0, false
}

// referenceOf finds the footprint's reference designator from its
// (property "Reference" "H1") child, defaulting to "Unknown".
func referenceOf(node *sexp.List) string {
	for _, prop := range sexp.FindChildren(node, "property") {
		key, err := sexp.GetString(prop, 1)
		if err != nil || key != "Reference" {
			continue
		}
		if value, err := sexp.GetString(prop, 2); err == nil {
			return value
		}
	}
	return "Unknown"
}
