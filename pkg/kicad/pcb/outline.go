package pcb

import (
	"github.com/OpenTraceLab/OpenTraceFrame/pkg/board"
	"github.com/OpenTraceLab/OpenTraceFrame/pkg/kicad/sexp"
)

// walkOutline feeds the extremal points of one Edge.Cuts graphic into the
// bounds accumulator. The per-type rules are deliberate approximations, not
// exact geometric analysis: arcs always contribute the four axis-extremal
// circle points even when the sub-arc never reaches them, and Bezier curves
// contribute their control points instead of the true extremum. Downstream
// tooling depends on these approximate extents, so keep them as they are.
// Unrecognized graphic types contribute no points.
func walkOutline(tag string, node *sexp.List, bounds *board.Bounds) {
	switch tag {
	case "gr_rect":
		walkRect(node, bounds)

	case "gr_line", "segment":
		walkLine(node, bounds)

	case "gr_arc", "gr_circle":
		walkArc(node, bounds)

	case "gr_curve":
		walkCurve(node, bounds)
	}
}

// walkRect observes a rectangle's two opposite corners. For an axis-aligned
// rectangle those fully determine the bounding box.
func walkRect(node *sexp.List, bounds *board.Bounds) {
	var startX, startY, endX, endY float64
	var haveStart, haveEnd bool

	for _, item := range node.Items() {
		child, ok := item.(*sexp.List)
		if !ok {
			continue
		}

		switch tag, _ := sexp.Tag(child); tag {
		case "start":
			if x, y, ok := pointOf(child); ok {
				startX, startY, haveStart = x, y, true
			}
		case "end":
			if x, y, ok := pointOf(child); ok {
				endX, endY, haveEnd = x, y, true
			}
		}
	}

	if haveStart {
		bounds.Observe(startX, startY)
	}
	if haveEnd {
		bounds.Observe(endX, endY)
	}
}

// walkLine observes the endpoints of a line or freeform segment. Every
// matching sub-form is observed: start/end pairs, (pts (xy ...) ...) children
// of polyline-style encodings, and direct (xy ...) coordinate pairs.
func walkLine(node *sexp.List, bounds *board.Bounds) {
	for _, item := range node.Items() {
		child, ok := item.(*sexp.List)
		if !ok {
			continue
		}

		switch tag, _ := sexp.Tag(child); tag {
		case "start", "end", "xy":
			observePoint(child, bounds)
		case "pts":
			observePoints(child, bounds)
		}
	}
}

// walkArc observes an arc or circle: the center, the four axis-extremal
// circle points when a radius is present, plus any explicit start/end points
// and point lists.
func walkArc(node *sexp.List, bounds *board.Bounds) {
	var centerX, centerY, radius float64
	var startX, startY, endX, endY float64
	var haveCenter, haveRadius, haveStart, haveEnd bool

	for _, item := range node.Items() {
		child, ok := item.(*sexp.List)
		if !ok {
			continue
		}

		switch tag, _ := sexp.Tag(child); tag {
		case "center":
			if x, y, ok := pointOf(child); ok {
				centerX, centerY, haveCenter = x, y, true
			}
		case "start":
			if x, y, ok := pointOf(child); ok {
				startX, startY, haveStart = x, y, true
			}
		case "end":
			if x, y, ok := pointOf(child); ok {
				endX, endY, haveEnd = x, y, true
			}
		case "radius":
			if r, err := sexp.GetFloat(child, 1); err == nil {
				radius, haveRadius = r, true
			}
		case "pts":
			observePoints(child, bounds)
		}
	}

	if haveCenter {
		bounds.Observe(centerX, centerY)
		if haveRadius {
			bounds.Observe(centerX-radius, centerY)
			bounds.Observe(centerX+radius, centerY)
			bounds.Observe(centerX, centerY-radius)
			bounds.Observe(centerX, centerY+radius)
		}
	}

	if haveStart {
		bounds.Observe(startX, startY)
	}
	if haveEnd {
		bounds.Observe(endX, endY)
	}
}

// walkCurve observes a Bezier curve's endpoints and both control points
// literally, plus any point lists.
func walkCurve(node *sexp.List, bounds *board.Bounds) {
	for _, item := range node.Items() {
		child, ok := item.(*sexp.List)
		if !ok {
			continue
		}

		switch tag, _ := sexp.Tag(child); tag {
		case "start", "end", "ctrl1", "ctrl2":
			observePoint(child, bounds)
		case "pts":
			observePoints(child, bounds)
		}
	}
}

// pointOf extracts the (x, y) pair from a (tag X Y ...) node.
func pointOf(node *sexp.List) (x, y float64, ok bool) {
	x, err := sexp.GetFloat(node, 1)
	if err != nil {
		return 0, 0, false
	}
	y, err = sexp.GetFloat(node, 2)
	if err != nil {
		return 0, 0, false
	}
	return x, y, true
}

func observePoint(node *sexp.List, bounds *board.Bounds) {
	if x, y, ok := pointOf(node); ok {
		bounds.Observe(x, y)
	}
}

// observePoints observes every (xy X Y) child of a (pts ...) node.
func observePoints(pts *sexp.List, bounds *board.Bounds) {
	for _, xy := range sexp.FindChildren(pts, "xy") {
		observePoint(xy, bounds)
	}
}
