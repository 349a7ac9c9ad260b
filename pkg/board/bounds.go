package board

// Bounds tracks a running axis-aligned bounding box as points are observed.
// The zero value has no defined bounds; the first Observe call sets all four
// edges, later calls only widen them.
type Bounds struct {
	minX, maxX float64
	minY, maxY float64
	defined    bool
}

// Observe widens the bounds to include the point (x, y).
func (b *Bounds) Observe(x, y float64) {
	if !b.defined {
		b.minX, b.maxX = x, x
		b.minY, b.maxY = y, y
		b.defined = true
		return
	}

	if x < b.minX {
		b.minX = x
	}
	if x > b.maxX {
		b.maxX = x
	}
	if y < b.minY {
		b.minY = y
	}
	if y > b.maxY {
		b.maxY = y
	}
}

// Defined reports whether at least one point has been observed.
func (b *Bounds) Defined() bool { return b.defined }

// Width returns maxX-minX. Only meaningful when Defined.
func (b *Bounds) Width() float64 { return b.maxX - b.minX }

// Height returns maxY-minY. Only meaningful when Defined.
func (b *Bounds) Height() float64 { return b.maxY - b.minY }

// MinX returns the left edge. Only meaningful when Defined.
func (b *Bounds) MinX() float64 { return b.minX }

// MinY returns the top edge. Only meaningful when Defined.
func (b *Bounds) MinY() float64 { return b.minY }

// MaxX returns the right edge. Only meaningful when Defined.
func (b *Bounds) MaxX() float64 { return b.maxX }

// MaxY returns the bottom edge. Only meaningful when Defined.
func (b *Bounds) MaxY() float64 { return b.maxY }
