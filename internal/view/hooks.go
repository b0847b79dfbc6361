package view

import "github.com/dshills/lineview/internal/style"

// The three render hooks are function-shaped capabilities injected at
// construction. Each receives the view so custom hooks can reach the surface,
// document, and theme without subclass-style wiring.

// NumberFunc draws the gutter for one line. The pen is at column 0 of the
// line's row when called.
type NumberFunc func(v *View, line int)

// ContentFunc draws the prepared text of one line. The text is already
// tab-expanded and fitted to the content width; the pen sits where the
// number hook left it.
type ContentFunc func(v *View, line int, text string)

// AttrFunc resolves the style for one line.
type AttrFunc func(v *View, line int) style.Style

// Theme holds the styles used by the built-in hooks.
type Theme struct {
	// Gutter is the low-emphasis line number style.
	Gutter style.Style

	// Line is the style of ordinary lines.
	Line style.Style

	// Cursor is the highlighted style of the active line.
	Cursor style.Style
}

// DefaultTheme returns the built-in theme: dim gutter, plain lines, and a
// bold white-on-blue cursor line.
func DefaultTheme() Theme {
	return Theme{
		Gutter: style.New(style.ColorGray),
		Line:   style.Default(),
		Cursor: style.Style{
			Foreground: style.ColorWhite,
			Background: style.ColorBlue,
			Bold:       true,
		},
	}
}

func (t Theme) isZero() bool {
	return t == Theme{}
}

// defaultNumber draws the 1-based line number right-aligned in the gutter.
func defaultNumber(v *View, line int) {
	if v.gutterWidth <= 0 {
		return
	}
	v.sfc.DrawText(formatGutter(line+1, v.gutterWidth), v.theme.Gutter)
}

// defaultContent resolves the line's attributes and draws its text.
func defaultContent(v *View, line int, text string) {
	v.sfc.DrawText(text, v.resolveAttr(v, line))
}

// defaultAttr highlights the cursor line and leaves the rest plain.
func defaultAttr(v *View, line int) style.Style {
	if line == v.cursorLine {
		return v.theme.Cursor
	}
	return v.theme.Line
}
