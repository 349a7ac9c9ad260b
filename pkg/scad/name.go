// Package scad generates parametric OpenSCAD source for 3D-printable board
// mounting frames and their optional base stands.
package scad

import (
	"path/filepath"
	"regexp"
	"strings"
)

var invalidNameChars = regexp.MustCompile(`[^a-zA-Z0-9_]`)

// NormalizeModuleName converts an input filename or URL into a valid OpenSCAD
// module name: only letters, digits and underscores, never starting with a
// digit. URLs use their last path segment.
func NormalizeModuleName(input string) string {
	var base string
	lower := strings.ToLower(input)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		parts := strings.Split(input, "/")
		base = parts[len(parts)-1]
	} else {
		base = filepath.Base(input)
	}
	base = strings.TrimSuffix(base, filepath.Ext(base))

	normalized := invalidNameChars.ReplaceAllString(base, "_")
	if normalized == "" {
		return "_"
	}
	if normalized[0] >= '0' && normalized[0] <= '9' {
		normalized = "_" + normalized
	}

	return normalized
}
