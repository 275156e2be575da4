package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// VisibleLen returns the visible character width of s in terminal cells.
// ANSI escape sequences are ignored. Wide characters (CJK, emoji) are
// counted as width 2.
func VisibleLen(s string) int {
	return ansi.StringWidth(s)
}

// PadRight pads s with trailing spaces so that its visible width equals
// width. If s is already wider than width, it is returned unchanged.
func PadRight(s string, width int) string {
	vis := VisibleLen(s)
	if vis >= width {
		return s
	}
	return s + strings.Repeat(" ", width-vis)
}

// Rule returns a line of ch as wide as the plain text s, counting wide
// characters as two cells.
func Rule(s string, ch rune) string {
	w := runewidth.StringWidth(s)
	if w <= 0 {
		return ""
	}
	cw := runewidth.RuneWidth(ch)
	if cw <= 0 {
		cw = 1
	}
	return strings.Repeat(string(ch), w/cw)
}
