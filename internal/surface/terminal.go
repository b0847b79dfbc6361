package surface

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/lineview/internal/style"
)

// EventKind identifies the type of terminal event.
type EventKind int

const (
	EventNone EventKind = iota
	EventKey
	EventText
	EventResize
	EventReload
)

// Event is a terminal event delivered by PollEvent.
type Event struct {
	Kind EventKind

	// Key is the symbolic name of a special key ("Up", "PgDn", "Esc", ...).
	Key string

	// Text is the literal input of a text event.
	Text string

	// Resize fields.
	Width, Height int
}

// Terminal implements Surface on a tcell screen and doubles as the key-event
// source for the application loop.
type Terminal struct {
	screen         tcell.Screen
	penRow, penCol int
}

// NewTerminal creates a terminal surface. Init must be called before use.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewTerminalForScreen wraps an existing screen, such as a simulation screen
// in tests.
func NewTerminalForScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Init initializes the underlying screen.
func (t *Terminal) Init() error {
	return t.screen.Init()
}

// Fini restores the terminal state.
func (t *Terminal) Fini() {
	t.screen.Fini()
}

// Show flushes pending draws to the terminal.
func (t *Terminal) Show() {
	t.screen.Show()
}

// Sync forces a full terminal redraw, typically after a resize.
func (t *Terminal) Sync() {
	t.screen.Sync()
}

// RowCount returns the terminal height.
func (t *Terminal) RowCount() int {
	_, h := t.screen.Size()
	return h
}

// ColumnCount returns the terminal width.
func (t *Terminal) ColumnCount() int {
	w, _ := t.screen.Size()
	return w
}

// MoveCursorTo positions the pen.
func (t *Terminal) MoveCursorTo(row, col int) {
	t.penRow, t.penCol = row, col
}

// DrawText draws text at the pen position, clipping at the right edge.
func (t *Terminal) DrawText(text string, st style.Style) {
	cols, rows := t.screen.Size()
	if t.penRow < 0 || t.penRow >= rows {
		t.penCol += runewidth.StringWidth(text)
		return
	}

	ts := convertStyle(st)
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if t.penCol+w > cols {
			t.penCol = cols
			break
		}
		if t.penCol >= 0 {
			t.screen.SetContent(t.penCol, t.penRow, r, nil, ts)
		}
		t.penCol += w
	}
}

// EraseRow blanks width columns of the pen row starting at fromCol.
func (t *Terminal) EraseRow(fromCol, width int) {
	cols, rows := t.screen.Size()
	if t.penRow < 0 || t.penRow >= rows {
		return
	}
	for c := fromCol; c < fromCol+width && c < cols; c++ {
		if c >= 0 {
			t.screen.SetContent(c, t.penRow, ' ', nil, tcell.StyleDefault)
		}
	}
}

// Scroll always reports false: tcell diffs the whole cell buffer on Show, so
// a repaint is the cheaper path and in-place scrolling buys nothing.
func (t *Terminal) Scroll(rowDelta, colDelta int) bool {
	return false
}

// PollEvent blocks until the next terminal event and converts it.
// Events with no viewer-level meaning are reported as EventNone.
func (t *Terminal) PollEvent() Event {
	switch ev := t.screen.PollEvent().(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune && ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) == 0 {
			return Event{Kind: EventText, Text: string(ev.Rune())}
		}
		return Event{Kind: EventKey, Key: keyName(ev.Key())}

	case *tcell.EventResize:
		w, h := ev.Size()
		return Event{Kind: EventResize, Width: w, Height: h}

	case *tcell.EventInterrupt:
		return Event{Kind: EventReload}

	default:
		return Event{Kind: EventNone}
	}
}

// PostReload queues a reload event, waking a blocked PollEvent.
// Safe to call from other goroutines.
func (t *Terminal) PostReload() {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// keyName returns the symbolic name for a special key.
func keyName(k tcell.Key) string {
	switch k {
	case tcell.KeyUp:
		return "Up"
	case tcell.KeyDown:
		return "Down"
	case tcell.KeyPgUp:
		return "PgUp"
	case tcell.KeyPgDn:
		return "PgDn"
	case tcell.KeyEscape:
		return "Esc"
	default:
		if name, ok := tcell.KeyNames[k]; ok {
			return name
		}
		return "Unknown"
	}
}

// convertStyle converts the closed style descriptor to a tcell style.
func convertStyle(s style.Style) tcell.Style {
	ts := tcell.StyleDefault

	if !s.Foreground.IsDefault() {
		ts = ts.Foreground(convertColor(s.Foreground))
	}
	if !s.Background.IsDefault() {
		ts = ts.Background(convertColor(s.Background))
	}
	if s.Bold {
		ts = ts.Bold(true)
	}
	return ts
}

// convertColor converts a color value to a tcell color.
func convertColor(c style.Color) tcell.Color {
	if c.Indexed {
		return tcell.PaletteColor(int(c.R))
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
