// Package pcb extracts board geometry from KiCad PCB files: the outline
// bounding box from Edge.Cuts graphics and the mounting holes from
// MountingHole footprints. Everything else in the file is ignored.
package pcb

import (
	"fmt"
	"io"
	"os"

	"github.com/OpenTraceLab/OpenTraceFrame/pkg/board"
	"github.com/OpenTraceLab/OpenTraceFrame/pkg/kicad/sexp"
)

// EdgeCutsLayer is the KiCad layer carrying the physical board outline.
const EdgeCutsLayer = "Edge.Cuts"

// ExtractFile reads a KiCad board file and extracts its geometry.
func ExtractFile(filename string) (*board.BoardModel, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Extract(file)
}

// Extract reads a KiCad board from an io.Reader and builds a BoardModel.
// Outline bounds come only from Edge.Cuts graphics, never from hole
// positions; a file without outline primitives yields a model whose
// Dimensions call fails.
func Extract(r io.Reader) (*board.BoardModel, error) {
	sexps, err := sexp.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse s-expression: %w", err)
	}

	if len(sexps) == 0 {
		return nil, fmt.Errorf("empty file or no valid s-expressions found")
	}

	// The root should be a (kicad_pcb ...) expression
	root, ok := sexps[0].(*sexp.List)
	if !ok {
		return nil, fmt.Errorf("not a KiCad PCB file: expected a list at top level")
	}

	rootTag, _ := sexp.Tag(root)
	if rootTag != "kicad_pcb" {
		return nil, fmt.Errorf("not a KiCad PCB file: expected 'kicad_pcb', got %q", rootTag)
	}

	var bounds board.Bounds
	var holes []board.Hole

	for _, elem := range root.Items() {
		node, ok := elem.(*sexp.List)
		if !ok {
			continue
		}

		tag, ok := sexp.Tag(node)
		if !ok {
			continue
		}

		// Outline membership wins over the node type: any graphic on
		// Edge.Cuts contributes to the bounds.
		if onEdgeCuts(node) {
			walkOutline(tag, node, &bounds)
		} else if tag == "footprint" || tag == "module" {
			if hole, ok := scanMountingHole(node); ok {
				holes = append(holes, hole)
			}
		}
	}

	return board.FromOutline(bounds, holes), nil
}

// onEdgeCuts reports whether the node carries a (layer "Edge.Cuts") child.
func onEdgeCuts(node *sexp.List) bool {
	for _, item := range node.Items() {
		child, ok := item.(*sexp.List)
		if !ok || child.Len() < 2 {
			continue
		}

		if tag, ok := sexp.Tag(child); !ok || tag != "layer" {
			continue
		}

		if name, err := sexp.GetString(child, 1); err == nil && name == EdgeCutsLayer {
			return true
		}
	}
	return false
}
