package scad

import (
	"math"

	"github.com/OpenTraceLab/OpenTraceFrame/pkg/board"
)

// Orientation says along which frame axis the base stand runs.
type Orientation int

const (
	// AlongWidth runs the stand along the X axis (frame no wider than tall).
	AlongWidth Orientation = iota
	// AlongHeight runs the stand along the Y axis.
	AlongHeight
)

func (o Orientation) String() string {
	if o == AlongWidth {
		return "width"
	}
	return "height"
}

// BaseDims is the computed footprint of the base stand, in frame-local
// coordinates. Computed once per generation request and not persisted.
type BaseDims struct {
	Width       float64 // Base plate extent along X in mm
	Depth       float64 // Base plate extent along Y in mm
	XOffset     float64 // Plate offset from the frame's left edge in mm
	YOffset     float64 // Plate offset from the frame's top edge in mm
	Orientation Orientation
}

// Geometry constants for the stand layout, all in mm.
const (
	baseEdgeClearance = 2.0  // clearance past the extreme hole edges
	basePerpClearance = 4.0  // total clearance on the perpendicular axis
	baseMinSpan       = 10.0 // floor for both plate spans
	fallbackHoleDia   = 3.0  // assumed hole size when none matches the extremes
)

// SolveBase computes the base-plate footprint that fits between the mounting
// holes on the frame's smaller side. Holes come in board-relative coordinates
// and are shifted by the margin to line up with the frame. With fewer than
// two distinct hole positions on the chosen axis the plate falls back to half
// the frame span, centered.
func SolveBase(frameWidth, frameHeight float64, holes []board.Hole, margin float64) BaseDims {
	if frameWidth <= frameHeight {
		span, offset := solveAxis(holes, margin, frameWidth, axisX)
		return BaseDims{
			Width:       math.Max(span, baseMinSpan),
			Depth:       math.Max(frameHeight-basePerpClearance, baseMinSpan),
			XOffset:     offset,
			YOffset:     basePerpClearance / 2,
			Orientation: AlongWidth,
		}
	}

	span, offset := solveAxis(holes, margin, frameHeight, axisY)
	return BaseDims{
		Width:       math.Max(frameWidth-basePerpClearance, baseMinSpan),
		Depth:       math.Max(span, baseMinSpan),
		XOffset:     basePerpClearance / 2,
		YOffset:     offset,
		Orientation: AlongHeight,
	}
}

type axis int

const (
	axisX axis = iota
	axisY
)

func (a axis) of(h board.Hole) float64 {
	if a == axisX {
		return h.X
	}
	return h.Y
}

// solveAxis finds the usable span between the extreme hole positions on one
// axis. The span stops short of the holes themselves: the largest diameter
// found at the two extreme positions plus fixed clearance is carved off, and
// the offset moves inward past that hole's radius.
func solveAxis(holes []board.Hole, margin, frameSpan float64, a axis) (span, offset float64) {
	positions := make(map[float64]bool)
	for _, h := range holes {
		positions[a.of(h)+margin] = true
	}

	if len(positions) < 2 {
		return frameSpan * 0.5, frameSpan * 0.25
	}

	lo := math.Inf(1)
	hi := math.Inf(-1)
	for p := range positions {
		lo = math.Min(lo, p)
		hi = math.Max(hi, p)
	}

	maxDia := 0.0
	for _, h := range holes {
		if p := a.of(h) + margin; p == lo || p == hi {
			maxDia = math.Max(maxDia, h.Diameter)
		}
	}
	if maxDia == 0 {
		maxDia = fallbackHoleDia
	}

	span = (hi - lo) - maxDia - baseEdgeClearance
	offset = lo + maxDia/2 + baseEdgeClearance/2
	return span, offset
}
