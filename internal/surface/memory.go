package surface

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/lineview/internal/style"
)

// Cell is a single character cell of the in-memory surface.
type Cell struct {
	Rune  rune
	Style style.Style
}

// emptyCell returns a blank cell with the default style.
func emptyCell() Cell {
	return Cell{Rune: ' ', Style: style.Default()}
}

// OpKind identifies a recorded surface operation.
type OpKind int

const (
	OpMove OpKind = iota
	OpDraw
	OpErase
	OpScroll
)

// Op records one surface call for test inspection.
type Op struct {
	Kind OpKind

	// Move fields
	Row, Col int

	// Draw fields
	Text  string
	Style style.Style

	// Erase fields
	FromCol, Width int

	// Scroll fields
	RowDelta, ColDelta int
}

// Memory is an in-memory Surface backed by a cell grid.
// It records every call so tests can assert on the exact draw sequence,
// and it supports in-place vertical scrolling.
type Memory struct {
	rows, cols     int
	cells          [][]Cell
	penRow, penCol int
	ops            []Op

	// ScrollInPlace controls what Scroll reports. Defaults to true;
	// tests flip it to exercise the repaint fallback.
	ScrollInPlace bool
}

// NewMemory creates an in-memory surface of the given size.
func NewMemory(rows, cols int) *Memory {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	m := &Memory{rows: rows, cols: cols, ScrollInPlace: true}
	m.cells = make([][]Cell, rows)
	for r := range m.cells {
		m.cells[r] = blankRow(cols)
	}
	return m
}

func blankRow(cols int) []Cell {
	row := make([]Cell, cols)
	for c := range row {
		row[c] = emptyCell()
	}
	return row
}

// RowCount returns the surface height.
func (m *Memory) RowCount() int { return m.rows }

// ColumnCount returns the surface width.
func (m *Memory) ColumnCount() int { return m.cols }

// MoveCursorTo positions the pen.
func (m *Memory) MoveCursorTo(row, col int) {
	m.penRow, m.penCol = row, col
	m.ops = append(m.ops, Op{Kind: OpMove, Row: row, Col: col})
}

// DrawText draws text at the pen position, clipping at the right edge.
func (m *Memory) DrawText(text string, st style.Style) {
	m.ops = append(m.ops, Op{Kind: OpDraw, Row: m.penRow, Col: m.penCol, Text: text, Style: st})

	if m.penRow < 0 || m.penRow >= m.rows {
		m.penCol += runewidth.StringWidth(text)
		return
	}
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if m.penCol+w > m.cols {
			m.penCol = m.cols
			break
		}
		if m.penCol >= 0 {
			m.cells[m.penRow][m.penCol] = Cell{Rune: r, Style: st}
			// Wide runes own their continuation cell.
			if w == 2 && m.penCol+1 < m.cols {
				m.cells[m.penRow][m.penCol+1] = Cell{Rune: 0, Style: st}
			}
		}
		m.penCol += w
	}
}

// EraseRow blanks width columns of the pen row starting at fromCol.
func (m *Memory) EraseRow(fromCol, width int) {
	m.ops = append(m.ops, Op{Kind: OpErase, Row: m.penRow, FromCol: fromCol, Width: width})

	if m.penRow < 0 || m.penRow >= m.rows {
		return
	}
	for c := fromCol; c < fromCol+width && c < m.cols; c++ {
		if c >= 0 {
			m.cells[m.penRow][c] = emptyCell()
		}
	}
}

// Scroll shifts rows in place. Positive rowDelta moves content up, exposing
// blank rows at the bottom. Horizontal scrolling is not supported and forces
// a repaint, as does ScrollInPlace being unset.
func (m *Memory) Scroll(rowDelta, colDelta int) bool {
	m.ops = append(m.ops, Op{Kind: OpScroll, RowDelta: rowDelta, ColDelta: colDelta})

	if !m.ScrollInPlace || colDelta != 0 {
		return false
	}
	if rowDelta == 0 {
		return true
	}

	d := rowDelta
	if d > m.rows || -d > m.rows {
		for r := range m.cells {
			m.cells[r] = blankRow(m.cols)
		}
		return true
	}

	if d > 0 {
		copy(m.cells, m.cells[d:])
		for r := m.rows - d; r < m.rows; r++ {
			m.cells[r] = blankRow(m.cols)
		}
	} else {
		d = -d
		copy(m.cells[d:], m.cells[:m.rows-d])
		for r := 0; r < d; r++ {
			m.cells[r] = blankRow(m.cols)
		}
	}
	return true
}

// CellAt returns the cell at the given position, or a blank cell when the
// position is outside the surface.
func (m *Memory) CellAt(row, col int) Cell {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return emptyCell()
	}
	return m.cells[row][col]
}

// RowText returns the text of a row with trailing blanks trimmed.
// Continuation cells of wide runes are skipped.
func (m *Memory) RowText(row int) string {
	if row < 0 || row >= m.rows {
		return ""
	}
	var b strings.Builder
	for _, c := range m.cells[row] {
		if c.Rune != 0 {
			b.WriteRune(c.Rune)
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// Ops returns the recorded operations.
func (m *Memory) Ops() []Op { return m.ops }

// OpsOfKind returns the recorded operations of one kind.
func (m *Memory) OpsOfKind(kind OpKind) []Op {
	var ops []Op
	for _, op := range m.ops {
		if op.Kind == kind {
			ops = append(ops, op)
		}
	}
	return ops
}

// ClearOps discards the recorded operations.
func (m *Memory) ClearOps() { m.ops = nil }
