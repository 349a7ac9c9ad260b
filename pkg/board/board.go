// Package board models an extracted circuit board: its outline bounding box
// and its mounting holes, with coordinates normalized to the board's top-left
// corner. A BoardModel is immutable once constructed; the outline path
// normalizes hole coordinates exactly once, at construction.
package board

import (
	"errors"
)

// ErrDimensionsUndetermined is returned when no outline geometry was observed,
// so the board has no usable bounding box. Callers must treat this as fatal
// rather than assuming a zero-size board.
var ErrDimensionsUndetermined = errors.New("board dimensions could not be determined from edge cuts")

// Hole is a mounting hole in board-relative millimeter coordinates.
type Hole struct {
	X         float64 // X coordinate from the left board edge in mm
	Y         float64 // Y coordinate from the top board edge in mm
	Diameter  float64 // Drill diameter in mm
	Reference string  // Reference designator (e.g. "H1")
}

// BoardModel is the extracted geometry of one board. Construct it with
// FromOutline (KiCad path) or FromRecord (JSON path); both produce the same
// immutable value.
type BoardModel struct {
	width, height float64
	bounded       bool
	holes         []Hole
}

// FromOutline builds a model from outline-derived bounds and holes in raw file
// coordinates. Hole coordinates are shifted so the bounds' minimum corner
// becomes the origin. When bounds are undefined (no outline primitives were
// seen) the model is still constructed, but Dimensions will fail and holes
// keep their raw coordinates.
func FromOutline(bounds Bounds, holes []Hole) *BoardModel {
	m := &BoardModel{
		bounded: bounds.Defined(),
		holes:   make([]Hole, len(holes)),
	}
	copy(m.holes, holes)

	if m.bounded {
		m.width = bounds.Width()
		m.height = bounds.Height()
		for i := range m.holes {
			m.holes[i].X -= bounds.MinX()
			m.holes[i].Y -= bounds.MinY()
		}
	}

	return m
}

// FromRecord builds a model from a structured record. Record coordinates are
// already board-relative, so no normalization happens.
func FromRecord(rec Record) *BoardModel {
	m := &BoardModel{
		width:   rec.Width,
		height:  rec.Height,
		bounded: true,
		holes:   make([]Hole, len(rec.Holes)),
	}
	copy(m.holes, rec.Holes)
	return m
}

// Dimensions returns the board width and height in mm. It fails with
// ErrDimensionsUndetermined when no outline geometry was observed.
func (m *BoardModel) Dimensions() (width, height float64, err error) {
	if !m.bounded {
		return 0, 0, ErrDimensionsUndetermined
	}
	return m.width, m.height, nil
}

// Holes returns the board's mounting holes in board-relative coordinates.
// The returned slice is shared; callers must not modify it.
func (m *BoardModel) Holes() []Hole {
	return m.holes
}
