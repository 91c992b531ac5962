package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// FitCell cuts s to width cells, marking a cut with an ellipsis, and pads
// the rest with spaces so every cell of a row lines up.
func FitCell(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) > width {
		tail := "…"
		if width == 1 {
			tail = ""
		}
		s = ansi.Truncate(s, width, tail)
	}
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// RenderCell renders text as one styled cell of exactly width columns.
func RenderCell(style lipgloss.Style, text string, width int) string {
	return style.Render(FitCell(text, width))
}

// JoinCells joins rendered cells into one line.
func JoinCells(cells []string) string {
	return strings.Join(cells, "")
}
