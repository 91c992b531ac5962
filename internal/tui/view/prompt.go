package view

import (
	"github.com/mattn/go-runewidth"
)

// ClipTail keeps the end of s that fits in width cells, so the cursor end
// of a long input stays visible.
func ClipTail(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	runes := []rune(s)
	w := 0
	i := len(runes)
	for i > 0 {
		rw := runewidth.RuneWidth(runes[i-1])
		if w+rw > width-1 {
			break
		}
		w += rw
		i--
	}
	return "…" + string(runes[i:])
}
