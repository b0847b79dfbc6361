// Package document holds the ordered line sequence being displayed.
//
// A Document is immutable between loads: Load replaces the content wholesale
// and there is no partial-update support. Resetting viewer state after a
// reload is the owner's responsibility.
package document

import "fmt"

// Document is an ordered, 0-indexed sequence of display lines.
// Lines never contain embedded newlines.
type Document struct {
	lines []string
}

// New creates an empty document.
func New() *Document {
	return &Document{}
}

// FromLines creates a document holding a copy of the given lines.
func FromLines(lines []string) *Document {
	d := New()
	d.Load(lines)
	return d
}

// Load replaces the document content wholesale.
// The input slice is copied so later caller mutations cannot leak in.
func (d *Document) Load(lines []string) {
	copied := make([]string, len(lines))
	copy(copied, lines)
	d.lines = copied
}

// Len returns the number of lines.
func (d *Document) Len() int {
	return len(d.lines)
}

// Line returns the text at index i.
//
// An out-of-range index is an internal invariant violation, not a condition
// expected at runtime, and panics like a slice access would.
func (d *Document) Line(i int) string {
	if i < 0 || i >= len(d.lines) {
		panic(fmt.Sprintf("document: line index %d out of range [0,%d)", i, len(d.lines)))
	}
	return d.lines[i]
}
