// Package sexp provides a lightweight streaming S-expression reader for
// KiCad files. Unlike general-purpose sexp libraries, it can handle
// arbitrarily large board files by streaming, and it keeps the distinction
// between unquoted symbols and quoted string literals that KiCad relies on.
package sexp

import (
	"io"
	"strings"
)

// Sexp is a node in a parsed S-expression tree. It is either an atom
// (Symbol or Str) or a *List of child nodes.
type Sexp interface {
	// IsLeaf reports whether this node is an atom (not a list)
	IsLeaf() bool

	// String returns the source-form representation
	String() string
}

// Symbol is an unquoted atom: an identifier or a numeric literal.
type Symbol string

func (s Symbol) IsLeaf() bool   { return true }
func (s Symbol) String() string { return string(s) }

// Str is a quoted string literal. Quotes and escapes are already resolved;
// the stored value is the literal text.
type Str string

func (s Str) IsLeaf() bool   { return true }
func (s Str) String() string { return `"` + string(s) + `"` }

// List is an ordered sequence of child nodes.
type List struct {
	elements []Sexp
}

// NewList builds a list node from the given children. Mostly useful in tests.
func NewList(elements ...Sexp) *List {
	return &List{elements: elements}
}

func (l *List) IsLeaf() bool { return false }

// Len returns the number of elements in the list
func (l *List) Len() int { return len(l.elements) }

// Get returns the element at the given index, or nil when out of range
func (l *List) Get(index int) Sexp {
	if index < 0 || index >= len(l.elements) {
		return nil
	}
	return l.elements[index]
}

// Items returns the underlying element slice. Callers must not modify it.
func (l *List) Items() []Sexp { return l.elements }

func (l *List) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, elem := range l.elements {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(elem.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Parse reads all top-level S-expressions from r.
func Parse(r io.Reader) ([]Sexp, error) {
	return newParser(r).parseAll()
}

// ParseString parses all top-level S-expressions from a string.
func ParseString(s string) ([]Sexp, error) {
	return Parse(strings.NewReader(s))
}
