package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Dates: bold cyan so day headings stand out
	colorDate = color.New(color.FgCyan, color.Bold)

	// Groups: magenta tag after the title
	colorGroup = color.New(color.FgMagenta)

	// Selections: yellow for resolved ranges
	colorRange = color.New(color.FgYellow)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Success: green for confirmations
	colorOK = color.New(color.FgGreen)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

func formatDate(s string) string   { return colorDate.Sprint(s) }
func formatGroup(s string) string  { return colorGroup.Sprint(s) }
func formatRange(s string) string  { return colorRange.Sprint(s) }
func formatHeader(s string) string { return colorHeader.Sprint(s) }
func formatOK(s string) string     { return colorOK.Sprint(s) }
func formatMuted(s string) string  { return colorMuted.Sprint(s) }
