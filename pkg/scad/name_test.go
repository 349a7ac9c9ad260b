package scad

import "testing"

func TestNormalizeModuleName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain file", "board.kicad_pcb", "board"},
		{"path stripped", "/home/user/projects/my-board.kicad_pcb", "my_board"},
		{"json file", "specs/panel.json", "panel"},
		{"url", "https://github.com/user/repo/blob/main/rev2.kicad_pcb", "rev2"},
		{"url with query", "https://example.com/files/board.kicad_pcb?raw=1", "board"},
		{"dashes and dots", "my.board-v2.kicad_pcb", "my_board_v2"},
		{"leading digit", "2040-carrier.kicad_pcb", "_2040_carrier"},
		{"already clean", "frame_test", "frame_test"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeModuleName(tt.input); got != tt.want {
				t.Errorf("NormalizeModuleName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
