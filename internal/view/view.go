// Package view implements the scrollable, cursor-navigable line viewer.
//
// A View owns three pieces of state: the document being displayed, the
// viewport top line, and the cursor line. It borrows a display surface, which
// may be absent at any time; every operation that would draw treats a missing
// surface as a silent no-op. All operations are synchronous and run on the
// caller's goroutine.
package view

import (
	"github.com/dshills/lineview/internal/document"
	"github.com/dshills/lineview/internal/surface"
)

// View is the line viewer component.
type View struct {
	doc *document.Document

	// Viewport and cursor state. Both start at zero and are mutated only by
	// SetTopLine and SetCursorLine.
	topLine    int
	cursorLine int

	// Borrowed display surface; nil while detached.
	sfc surface.Surface

	gutterWidth int
	tabWidth    int
	theme       Theme

	renderNumber  NumberFunc
	renderContent ContentFunc
	resolveAttr   AttrFunc
}

// Default layout parameters. The gutter fits a 6-digit line number plus one
// separator column.
const (
	DefaultGutterWidth = 7
	DefaultTabWidth    = 8
)

// Options configures a View. Zero values select the defaults.
type Options struct {
	// GutterWidth is the number of columns reserved for line numbers,
	// including the separator column. Negative disables the gutter.
	GutterWidth int

	// TabWidth is the tab stop interval in display columns.
	TabWidth int

	// Theme provides the default styles used by the built-in hooks.
	Theme Theme

	// Number, Content, and Attr override the three render hooks.
	Number  NumberFunc
	Content ContentFunc
	Attr    AttrFunc
}

// New creates a view over the given document.
func New(doc *document.Document, opts Options) *View {
	if doc == nil {
		doc = document.New()
	}

	v := &View{
		doc:         doc,
		gutterWidth: opts.GutterWidth,
		tabWidth:    opts.TabWidth,
		theme:       opts.Theme,
	}
	if v.gutterWidth == 0 {
		v.gutterWidth = DefaultGutterWidth
	}
	if v.gutterWidth < 0 {
		v.gutterWidth = 0
	}
	if v.tabWidth < 1 {
		v.tabWidth = DefaultTabWidth
	}
	if v.theme.isZero() {
		v.theme = DefaultTheme()
	}

	v.renderNumber = opts.Number
	if v.renderNumber == nil {
		v.renderNumber = defaultNumber
	}
	v.renderContent = opts.Content
	if v.renderContent == nil {
		v.renderContent = defaultContent
	}
	v.resolveAttr = opts.Attr
	if v.resolveAttr == nil {
		v.resolveAttr = defaultAttr
	}

	return v
}

// Document returns the displayed document.
func (v *View) Document() *document.Document {
	return v.doc
}

// SetDocument replaces the displayed document wholesale and resets the
// viewport and cursor to the top. It does not repaint; the owner triggers
// the next render.
func (v *View) SetDocument(doc *document.Document) {
	if doc == nil {
		doc = document.New()
	}
	v.doc = doc
	v.topLine = 0
	v.cursorLine = 0
}

// Lines returns the number of document lines.
func (v *View) Lines() int {
	return v.doc.Len()
}

// CursorLine returns the active line index.
func (v *View) CursorLine() int {
	return v.cursorLine
}

// TopLine returns the first visible document line.
func (v *View) TopLine() int {
	return v.topLine
}

// GutterWidth returns the configured gutter width in columns.
func (v *View) GutterWidth() int {
	return v.gutterWidth
}

// Theme returns the view's theme.
func (v *View) Theme() Theme {
	return v.theme
}

// SetCursorLine moves the cursor to line n.
//
// While a surface of height H is attached, the viewport follows the cursor
// with the minimal correction that brings it back on screen: a cursor above
// the viewport becomes the first visible row, one below becomes the last.
// A cursor already visible leaves the viewport untouched. Any cursor change
// while attached repaints the window, since both the old and new cursor rows
// change appearance.
func (v *View) SetCursorLine(n int) {
	if n == v.cursorLine {
		return
	}
	v.cursorLine = n

	if v.sfc == nil {
		return
	}
	h := v.sfc.RowCount()
	if h < 1 {
		return
	}

	switch {
	case n < v.topLine:
		v.topLine = n
	case n >= v.topLine+h:
		v.topLine = n - (h - 1)
	}
	v.repaint()
}

// SetTopLine scrolls the viewport so line n is the first visible row.
//
// While attached, n is clamped to [0, max(0, Lines()-H)] so the viewport
// cannot be scrolled into blank space, and the surface is asked to scroll in
// place by the difference; a surface that cannot do so gets a full repaint
// instead. Detached, the value is stored verbatim since no height is known
// to clamp against.
func (v *View) SetTopLine(n int) {
	if v.sfc != nil {
		n = clampTop(n, v.doc.Len(), v.sfc.RowCount())
	}
	if n == v.topLine {
		return
	}
	prev := v.topLine
	v.topLine = n

	if v.sfc == nil {
		return
	}
	if !v.sfc.Scroll(n-prev, 0) {
		v.repaint()
	}
}

// Attach lends a display surface to the view. The host triggers the first
// render; attaching alone draws nothing.
func (v *View) Attach(s surface.Surface) {
	v.sfc = s
}

// Detach removes the display surface. Subsequent draws are silent no-ops.
func (v *View) Detach() {
	v.sfc = nil
}

// Attached reports whether a surface is currently held.
func (v *View) Attached() bool {
	return v.sfc != nil
}

// Refresh re-applies the scroll-follow correction for the current cursor and
// repaints the whole window. Intended for resize and reload handling.
func (v *View) Refresh() {
	if v.sfc == nil {
		return
	}
	h := v.sfc.RowCount()
	if h < 1 {
		return
	}

	v.topLine = clampTop(v.topLine, v.doc.Len(), h)
	switch {
	case v.cursorLine < v.topLine:
		v.topLine = v.cursorLine
	case v.cursorLine >= v.topLine+h:
		v.topLine = v.cursorLine - (h - 1)
	}
	v.repaint()
}

// repaint redraws every row of the attached surface.
func (v *View) repaint() {
	v.Render(0, v.sfc.RowCount())
}

// clampTop bounds a top line to the range that keeps document content on
// screen: [0, max(0, lines-height)].
func clampTop(top, lines, height int) int {
	maxTop := lines - height
	if maxTop < 0 {
		maxTop = 0
	}
	if top > maxTop {
		top = maxTop
	}
	if top < 0 {
		top = 0
	}
	return top
}
