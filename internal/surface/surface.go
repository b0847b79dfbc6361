// Package surface defines the display-surface capability the viewer draws
// through, plus two implementations: an in-memory cell grid used by tests and
// a tcell-backed terminal.
//
// The surface is a borrowed capability. The viewer may hold one or none at
// any time; implementations are not shared between components.
package surface

import "github.com/dshills/lineview/internal/style"

// Surface is the drawing contract consumed by the viewer.
//
// Drawing is pen-based: MoveCursorTo positions the pen, and DrawText and
// EraseRow operate at the pen row, advancing the pen column as they go.
type Surface interface {
	// RowCount returns the number of rows available for drawing.
	RowCount() int

	// ColumnCount returns the number of columns available for drawing.
	ColumnCount() int

	// MoveCursorTo positions the pen at the given row and column.
	MoveCursorTo(row, col int)

	// DrawText draws text at the pen position with the given style and
	// advances the pen by the text's display width. Text extending past the
	// last column is clipped.
	DrawText(text string, st style.Style)

	// EraseRow blanks width columns of the pen row starting at fromCol.
	EraseRow(fromCol, width int)

	// Scroll shifts the surface content in place by the given deltas and
	// returns true. A surface that cannot scroll in place returns false,
	// signalling that the caller must repaint instead.
	Scroll(rowDelta, colDelta int) bool
}
