package view

import "strconv"

// formatGutter formats a 1-based line number right-aligned in width columns,
// the last of which is a separator space. Numbers too wide for the field keep
// their trailing digits so the gutter stays fixed-width.
func formatGutter(n, width int) string {
	if width <= 0 {
		return ""
	}
	field := width - 1
	s := strconv.Itoa(n)
	switch {
	case len(s) > field:
		s = s[len(s)-field:]
	case len(s) < field:
		s = padLeft(s, field)
	}
	return s + " "
}

// padLeft pads a string with spaces on the left to the given width.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := make([]byte, width-len(s))
	for i := range padding {
		padding[i] = ' '
	}
	return string(padding) + s
}
