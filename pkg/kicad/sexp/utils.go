package sexp

import (
	"fmt"
	"strconv"
)

// Structural navigation helpers. KiCad files are deeply nested lists where
// every sub-form is tagged by its first symbol, e.g. (at 100 50) inside a
// (footprint ...) list. These helpers express the "first child with tag X"
// pattern the extraction code uses everywhere.

// Tag returns the leading symbol of a list node. For a Symbol leaf it returns
// the symbol itself. Str leaves and untagged lists report ok=false.
func Tag(s Sexp) (string, bool) {
	switch n := s.(type) {
	case Symbol:
		return string(n), true
	case *List:
		if n.Len() == 0 {
			return "", false
		}
		if sym, ok := n.Get(0).(Symbol); ok {
			return string(sym), true
		}
	}
	return "", false
}

// FindChild returns the first child list of s tagged with the given key.
// Example: FindChild(footprint, "at") finds (at 100 50).
func FindChild(s Sexp, key string) (*List, bool) {
	list, ok := s.(*List)
	if !ok {
		return nil, false
	}

	for _, item := range list.Items() {
		child, ok := item.(*List)
		if !ok {
			continue
		}
		if tag, ok := Tag(child); ok && tag == key {
			return child, true
		}
	}

	return nil, false
}

// FindChildren returns all child lists of s tagged with the given key.
func FindChildren(s Sexp, key string) []*List {
	list, ok := s.(*List)
	if !ok {
		return nil
	}

	var results []*List
	for _, item := range list.Items() {
		child, ok := item.(*List)
		if !ok {
			continue
		}
		if tag, ok := Tag(child); ok && tag == key {
			results = append(results, child)
		}
	}

	return results
}

// GetString extracts the atom text at the given index of a list.
// Index 0 is the tag, 1 is the first value, and so on. Both symbols and
// quoted strings coerce; the quoted form loses its quotes.
func GetString(s Sexp, index int) (string, error) {
	list, ok := s.(*List)
	if !ok {
		return "", fmt.Errorf("expected list, got leaf")
	}

	item := list.Get(index)
	if item == nil {
		return "", fmt.Errorf("index %d out of bounds (length %d)", index, list.Len())
	}

	switch atom := item.(type) {
	case Symbol:
		return string(atom), nil
	case Str:
		return string(atom), nil
	default:
		return "", fmt.Errorf("expected atom at index %d, got list", index)
	}
}

// GetFloat extracts a float64 value at the given index
func GetFloat(s Sexp, index int) (float64, error) {
	str, err := GetString(s, index)
	if err != nil {
		return 0, err
	}

	val, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse float %q: %w", str, err)
	}

	return val, nil
}

// GetInt extracts an int value at the given index
func GetInt(s Sexp, index int) (int, error) {
	str, err := GetString(s, index)
	if err != nil {
		return 0, err
	}

	val, err := strconv.Atoi(str)
	if err != nil {
		return 0, fmt.Errorf("failed to parse int %q: %w", str, err)
	}

	return val, nil
}
