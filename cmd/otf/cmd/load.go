package cmd

import (
	"bytes"
	"context"
	"strings"

	"github.com/OpenTraceLab/OpenTraceFrame/internal/fetch"
	"github.com/OpenTraceLab/OpenTraceFrame/pkg/board"
	"github.com/OpenTraceLab/OpenTraceFrame/pkg/kicad/pcb"
)

// loadBoard reads a board description from a local file or URL. JSON inputs
// are structured board records; everything else is treated as a KiCad PCB
// file.
func loadBoard(ctx context.Context, input string) (*board.BoardModel, error) {
	if fetch.IsURL(input) {
		logger.Debug("fetching remote board", "url", input)
		data, err := fetch.NewClient().Get(ctx, input)
		if err != nil {
			return nil, err
		}
		if isJSONInput(input) {
			rec, err := board.ParseRecord(data)
			if err != nil {
				return nil, err
			}
			return board.FromRecord(rec), nil
		}
		return pcb.Extract(bytes.NewReader(data))
	}

	logger.Debug("reading local board", "file", input)
	if isJSONInput(input) {
		rec, err := board.LoadRecordFile(input)
		if err != nil {
			return nil, err
		}
		return board.FromRecord(rec), nil
	}
	return pcb.ExtractFile(input)
}

func isJSONInput(input string) bool {
	return strings.HasSuffix(strings.ToLower(input), ".json")
}
