package view

import (
	"testing"

	"github.com/dshills/lineview/internal/document"
	"github.com/dshills/lineview/internal/style"
	"github.com/dshills/lineview/internal/surface"
)

func TestRenderTouchesEveryRow(t *testing.T) {
	// Every requested row gets a pen move: either a draw pair or an erase.
	v := New(numberedDoc(3), Options{})
	m := surface.NewMemory(6, 30)
	v.Attach(m)

	v.Render(0, 6)

	if got := len(m.OpsOfKind(surface.OpMove)); got != 6 {
		t.Errorf("pen moves = %d, want 6", got)
	}
	// Rows 3..5 have no document line behind them and are erased full-width.
	erases := m.OpsOfKind(surface.OpErase)
	if len(erases) != 3 {
		t.Fatalf("erase ops = %d, want 3", len(erases))
	}
	for _, op := range erases {
		if op.FromCol != 0 || op.Width != 30 {
			t.Errorf("erase op = %+v, want full-width from column 0", op)
		}
	}
}

func TestRenderTruncatesToContentWidth(t *testing.T) {
	// 10 columns minus a 7-column gutter leaves 3 for content.
	v := New(document.FromLines([]string{"abcde"}), Options{})
	m := surface.NewMemory(1, 10)
	v.Attach(m)

	v.Render(0, 1)

	if got := m.RowText(0); got != "     1 abc" {
		t.Errorf("RowText(0) = %q, want %q", got, "     1 abc")
	}
	if c := m.CellAt(0, 9); c.Rune != 'c' {
		t.Errorf("CellAt(0,9) = %q, want 'c'", c.Rune)
	}
}

func TestRenderWideRuneAtBoundary(t *testing.T) {
	// A full-width rune that would straddle the content edge is dropped and
	// its columns padded, never half-drawn.
	v := New(document.FromLines([]string{"ab日本"}), Options{GutterWidth: -1})
	m := surface.NewMemory(1, 5)
	v.Attach(m)

	v.Render(0, 1)

	if got := m.RowText(0); got != "ab日" {
		t.Errorf("RowText(0) = %q, want %q", got, "ab日")
	}
	if c := m.CellAt(0, 4); c.Rune != ' ' {
		t.Errorf("CellAt(0,4) = %q, want padding space", c.Rune)
	}
}

func TestRenderExpandsTabs(t *testing.T) {
	v := New(document.FromLines([]string{"a\tb"}), Options{GutterWidth: -1, TabWidth: 4})
	m := surface.NewMemory(1, 10)
	v.Attach(m)

	v.Render(0, 1)

	if got := m.RowText(0); got != "a   b" {
		t.Errorf("RowText(0) = %q, want %q", got, "a   b")
	}
}

func TestRenderCursorLineStyle(t *testing.T) {
	v := New(numberedDoc(3), Options{GutterWidth: -1})
	m := surface.NewMemory(3, 20)
	v.Attach(m)
	v.SetCursorLine(1)

	cursor := v.Theme().Cursor
	if c := m.CellAt(1, 0); !c.Style.Equals(cursor) {
		t.Errorf("cursor row style = %+v, want theme cursor %+v", c.Style, cursor)
	}
	if c := m.CellAt(0, 0); c.Style.Equals(cursor) {
		t.Error("non-cursor row drawn with cursor style")
	}
}

func TestRenderGutterStyle(t *testing.T) {
	v := New(numberedDoc(1), Options{})
	m := surface.NewMemory(1, 20)
	v.Attach(m)

	v.Render(0, 1)

	if c := m.CellAt(0, 6); c.Rune != '1' || !c.Style.Equals(v.Theme().Gutter) {
		t.Errorf("gutter cell = %+v, want '1' in gutter style", c)
	}
}

func TestRenderNarrowerThanGutter(t *testing.T) {
	// Content width floors at zero when the gutter eats the whole surface.
	v := New(document.FromLines([]string{"abc"}), Options{})
	m := surface.NewMemory(1, 5)
	v.Attach(m)

	v.Render(0, 1)

	for col := 0; col < 5; col++ {
		if c := m.CellAt(0, col); c.Rune == 'a' || c.Rune == 'b' || c.Rune == 'c' {
			t.Fatalf("content leaked into column %d with no room for it", col)
		}
	}
}

func TestRenderPartialRange(t *testing.T) {
	// Rendering a sub-block paints only those rows; document line for row r
	// is topLine+r.
	v := New(numberedDoc(30), Options{})
	m := surface.NewMemory(5, 20)
	v.Attach(m)
	v.SetTopLine(10)
	m.ClearOps()

	v.Render(3, 2)

	if got := len(m.OpsOfKind(surface.OpMove)); got != 2 {
		t.Errorf("pen moves = %d, want 2", got)
	}
	if got := m.RowText(3); got != "    14 line 13" {
		t.Errorf("RowText(3) = %q, want %q", got, "    14 line 13")
	}
	if got := m.RowText(4); got != "    15 line 14" {
		t.Errorf("RowText(4) = %q, want %q", got, "    15 line 14")
	}
}

func TestRenderEmptyDocument(t *testing.T) {
	v := New(nil, Options{})
	m := surface.NewMemory(4, 20)
	v.Attach(m)

	v.Render(0, 4)

	if got := len(m.OpsOfKind(surface.OpErase)); got != 4 {
		t.Errorf("erase ops = %d, want 4 for an empty document", got)
	}
	if got := len(m.OpsOfKind(surface.OpDraw)); got != 0 {
		t.Errorf("draw ops = %d, want 0 for an empty document", got)
	}
}

func TestRenderZeroRowCount(t *testing.T) {
	v := New(numberedDoc(3), Options{})
	m := surface.NewMemory(3, 20)
	v.Attach(m)
	m.ClearOps()

	v.Render(0, 0)
	v.Render(1, -2)

	if len(m.Ops()) != 0 {
		t.Errorf("non-positive row counts issued %d ops, want 0", len(m.Ops()))
	}
}

func TestRenderCustomHooks(t *testing.T) {
	var numbered, drew []int
	v := New(numberedDoc(2), Options{
		Number: func(_ *View, line int) {
			numbered = append(numbered, line)
		},
		Content: func(v *View, line int, text string) {
			drew = append(drew, line)
		},
		Attr: func(_ *View, _ int) style.Style {
			return style.New(style.ColorYellow)
		},
	})
	m := surface.NewMemory(2, 20)
	v.Attach(m)

	v.Render(0, 2)

	if len(numbered) != 2 || numbered[0] != 0 || numbered[1] != 1 {
		t.Errorf("number hook saw lines %v, want [0 1]", numbered)
	}
	if len(drew) != 2 || drew[0] != 0 || drew[1] != 1 {
		t.Errorf("content hook saw lines %v, want [0 1]", drew)
	}
	// Custom hooks fully own drawing: nothing reached the surface.
	if got := len(m.OpsOfKind(surface.OpDraw)); got != 0 {
		t.Errorf("draw ops = %d, want 0 with drawing-free hooks", got)
	}
}

func TestRenderCustomAttrUsedByDefaultContent(t *testing.T) {
	want := style.New(style.ColorYellow)
	v := New(numberedDoc(1), Options{
		GutterWidth: -1,
		Attr: func(_ *View, _ int) style.Style {
			return want
		},
	})
	m := surface.NewMemory(1, 10)
	v.Attach(m)

	v.Render(0, 1)

	if c := m.CellAt(0, 0); !c.Style.Equals(want) {
		t.Errorf("cell style = %+v, want custom attr %+v", c.Style, want)
	}
}
