package board

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrMalformedRecord is returned when a JSON board record is missing one of
// its required keys.
var ErrMalformedRecord = errors.New("malformed board record")

// Record is a board description supplied directly as structured data instead
// of being derived from a layout file. All coordinates are board-relative.
//
// Expected JSON:
//
//	{
//	    "width": 50.0,
//	    "height": 30.0,
//	    "mounting_holes": [
//	        {"x": 2.5, "y": 2.5, "diameter": 3.0, "reference": "H1"}
//	    ]
//	}
type Record struct {
	Width  float64
	Height float64
	Holes  []Hole
}

// ParseRecord decodes and validates a JSON board record. The width, height
// and mounting_holes keys are required, as are x, y and diameter on every
// hole; a missing reference defaults to "H?".
func ParseRecord(data []byte) (Record, error) {
	var raw struct {
		Width         *float64 `json:"width"`
		Height        *float64 `json:"height"`
		MountingHoles []struct {
			X         *float64 `json:"x"`
			Y         *float64 `json:"y"`
			Diameter  *float64 `json:"diameter"`
			Reference string   `json:"reference"`
		} `json:"mounting_holes"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return Record{}, fmt.Errorf("invalid JSON: %w", err)
	}

	if raw.Width == nil || raw.Height == nil || raw.MountingHoles == nil {
		return Record{}, fmt.Errorf("%w: must contain 'width', 'height', and 'mounting_holes'", ErrMalformedRecord)
	}

	rec := Record{
		Width:  *raw.Width,
		Height: *raw.Height,
		Holes:  make([]Hole, 0, len(raw.MountingHoles)),
	}

	for i, h := range raw.MountingHoles {
		if h.X == nil || h.Y == nil || h.Diameter == nil {
			return Record{}, fmt.Errorf("%w: mounting hole %d must have 'x', 'y', and 'diameter'", ErrMalformedRecord, i)
		}

		ref := h.Reference
		if ref == "" {
			ref = "H?"
		}

		rec.Holes = append(rec.Holes, Hole{
			X:         *h.X,
			Y:         *h.Y,
			Diameter:  *h.Diameter,
			Reference: ref,
		})
	}

	return rec, nil
}

// ReadRecord decodes a JSON board record from r.
func ReadRecord(r io.Reader) (Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Record{}, fmt.Errorf("failed to read record: %w", err)
	}
	return ParseRecord(data)
}

// LoadRecordFile decodes a JSON board record from a file.
func LoadRecordFile(filename string) (Record, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Record{}, fmt.Errorf("failed to open file: %w", err)
	}
	return ParseRecord(data)
}
