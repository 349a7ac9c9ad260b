package board

import (
	"errors"
	"testing"
)

func TestBoundsObserve(t *testing.T) {
	tests := []struct {
		name   string
		points [][2]float64
		wantW  float64
		wantH  float64
		wantMinX, wantMinY float64
	}{
		{
			name:   "single point defines all four bounds",
			points: [][2]float64{{5, 7}},
			wantW:  0, wantH: 0,
			wantMinX: 5, wantMinY: 7,
		},
		{
			name:   "two corners",
			points: [][2]float64{{0, 0}, {10, 5}},
			wantW:  10, wantH: 5,
			wantMinX: 0, wantMinY: 0,
		},
		{
			name:   "interior point changes nothing",
			points: [][2]float64{{0, 0}, {10, 5}, {4, 2}},
			wantW:  10, wantH: 5,
			wantMinX: 0, wantMinY: 0,
		},
		{
			name:   "negative coordinates",
			points: [][2]float64{{-3, -2}, {7, 8}},
			wantW:  10, wantH: 10,
			wantMinX: -3, wantMinY: -2,
		},
		{
			name:   "widening in each direction",
			points: [][2]float64{{0, 0}, {-1, 0}, {0, 12}, {3, -4}},
			wantW:  4, wantH: 16,
			wantMinX: -1, wantMinY: -4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Bounds
			if b.Defined() {
				t.Fatal("zero Bounds must not be defined")
			}

			for _, p := range tt.points {
				b.Observe(p[0], p[1])
			}

			if !b.Defined() {
				t.Fatal("Bounds not defined after Observe")
			}
			if b.Width() != tt.wantW || b.Height() != tt.wantH {
				t.Errorf("size = %vx%v, want %vx%v", b.Width(), b.Height(), tt.wantW, tt.wantH)
			}
			if b.MinX() != tt.wantMinX || b.MinY() != tt.wantMinY {
				t.Errorf("min = (%v, %v), want (%v, %v)", b.MinX(), b.MinY(), tt.wantMinX, tt.wantMinY)
			}

			// Every observed point must lie inside the final bounds
			for _, p := range tt.points {
				if p[0] < b.MinX() || p[0] > b.MaxX() || p[1] < b.MinY() || p[1] > b.MaxY() {
					t.Errorf("point (%v, %v) outside bounds", p[0], p[1])
				}
			}
		})
	}
}

func TestFromOutlineNormalizesHoles(t *testing.T) {
	var b Bounds
	b.Observe(100, 50)
	b.Observe(150, 80)

	holes := []Hole{
		{X: 102.5, Y: 52.5, Diameter: 3.0, Reference: "H1"},
		{X: 147.5, Y: 77.5, Diameter: 3.0, Reference: "H2"},
	}

	m := FromOutline(b, holes)

	w, h, err := m.Dimensions()
	if err != nil {
		t.Fatalf("Dimensions: %v", err)
	}
	if w != 50 || h != 30 {
		t.Errorf("dimensions = %vx%v, want 50x30", w, h)
	}

	got := m.Holes()
	if got[0].X != 2.5 || got[0].Y != 2.5 {
		t.Errorf("hole 0 = (%v, %v), want (2.5, 2.5)", got[0].X, got[0].Y)
	}
	if got[1].X != 47.5 || got[1].Y != 27.5 {
		t.Errorf("hole 1 = (%v, %v), want (47.5, 27.5)", got[1].X, got[1].Y)
	}

	// Repeated calls must not shift coordinates again
	again := m.Holes()
	if again[0].X != 2.5 || again[0].Y != 2.5 {
		t.Errorf("second Holes() call shifted coordinates: (%v, %v)", again[0].X, again[0].Y)
	}

	// The caller's slice must be untouched
	if holes[0].X != 102.5 {
		t.Errorf("input slice mutated: %v", holes[0].X)
	}
}

func TestFromOutlineUndefinedBounds(t *testing.T) {
	m := FromOutline(Bounds{}, []Hole{{X: 1, Y: 1, Diameter: 3, Reference: "H1"}})

	_, _, err := m.Dimensions()
	if !errors.Is(err, ErrDimensionsUndetermined) {
		t.Fatalf("Dimensions error = %v, want ErrDimensionsUndetermined", err)
	}
}

func TestFromRecord(t *testing.T) {
	rec := Record{
		Width:  50,
		Height: 30,
		Holes:  []Hole{{X: 2.5, Y: 2.5, Diameter: 3, Reference: "H1"}},
	}

	m := FromRecord(rec)

	w, h, err := m.Dimensions()
	if err != nil {
		t.Fatalf("Dimensions: %v", err)
	}
	if w != 50 || h != 30 {
		t.Errorf("dimensions = %vx%v, want 50x30", w, h)
	}

	// Record coordinates are already relative; they must pass through as-is
	if got := m.Holes(); got[0].X != 2.5 || got[0].Y != 2.5 {
		t.Errorf("hole = (%v, %v), want (2.5, 2.5)", got[0].X, got[0].Y)
	}
}

func TestParseRecord(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantErr   error
		wantHoles int
		wantRef   string
	}{
		{
			name: "complete record",
			input: `{
				"width": 50, "height": 30,
				"mounting_holes": [
					{"x": 2.5, "y": 2.5, "diameter": 3.0, "reference": "H1"},
					{"x": 47.5, "y": 27.5, "diameter": 3.0, "reference": "H2"}
				]
			}`,
			wantHoles: 2,
			wantRef:   "H1",
		},
		{
			name:      "missing reference defaults",
			input:     `{"width": 50, "height": 30, "mounting_holes": [{"x": 1, "y": 1, "diameter": 2.2}]}`,
			wantHoles: 1,
			wantRef:   "H?",
		},
		{
			name:      "empty hole list is well-formed",
			input:     `{"width": 50, "height": 30, "mounting_holes": []}`,
			wantHoles: 0,
		},
		{
			name:    "missing width",
			input:   `{"height": 30, "mounting_holes": []}`,
			wantErr: ErrMalformedRecord,
		},
		{
			name:    "missing mounting_holes",
			input:   `{"width": 50, "height": 30}`,
			wantErr: ErrMalformedRecord,
		},
		{
			name:    "hole missing diameter",
			input:   `{"width": 50, "height": 30, "mounting_holes": [{"x": 1, "y": 1}]}`,
			wantErr: ErrMalformedRecord,
		},
		{
			name:    "invalid JSON",
			input:   `{"width": 50,`,
			wantErr: nil, // plain decode error, not ErrMalformedRecord
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := ParseRecord([]byte(tt.input))

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if tt.name == "invalid JSON" {
				if err == nil {
					t.Fatal("expected decode error")
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseRecord: %v", err)
			}
			if len(rec.Holes) != tt.wantHoles {
				t.Fatalf("got %d holes, want %d", len(rec.Holes), tt.wantHoles)
			}
			if tt.wantHoles > 0 && rec.Holes[0].Reference != tt.wantRef {
				t.Errorf("reference = %q, want %q", rec.Holes[0].Reference, tt.wantRef)
			}
		})
	}
}
