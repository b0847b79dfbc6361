package view

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// expandTabs replaces tabs with spaces at fixed tab stops. Positions are
// measured in display columns, so wide characters before a tab shift its
// stop correctly.
func expandTabs(s string, tabWidth int) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}

	var b strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			n := tabWidth - col%tabWidth
			for i := 0; i < n; i++ {
				b.WriteByte(' ')
			}
			col += n
			continue
		}
		b.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}
	return b.String()
}

// fitToWidth truncates or pads s to exactly width display columns. A wide
// character straddling the boundary is dropped and its columns padded with
// spaces.
func fitToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(s, width, ""), width)
}
