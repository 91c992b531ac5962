package theme

import (
	"math"

	"github.com/charmbracelet/lipgloss"
)

// Palette holds precomputed colors derived from a Theme.
type Palette struct {
	Bg          lipgloss.Color
	BgHighlight lipgloss.Color
	BgSelection lipgloss.Color
	Fg          lipgloss.Color
	FgMuted     lipgloss.Color
	Accent      lipgloss.Color
	Today       lipgloss.Color
	Warning     lipgloss.Color
	Weekend     lipgloss.Color

	EventBg     lipgloss.Color
	SelectionBg lipgloss.Color

	TextOnEvent     lipgloss.Color
	TextOnSelection lipgloss.Color
	TextOnAccent    lipgloss.Color
}

// NewPalette derives a Palette from the provided Theme.
func NewPalette(t *Theme) *Palette {
	if t == nil {
		t, _ = Load("mocha")
	}

	light := isLightTheme(t.Bg)
	eventBg := tint(t.Event, t.Bg, light)

	return &Palette{
		Bg:          lipgloss.Color(t.Bg),
		BgHighlight: lipgloss.Color(t.BgHighlight),
		BgSelection: lipgloss.Color(t.BgSelection),
		Fg:          lipgloss.Color(t.Fg),
		FgMuted:     lipgloss.Color(t.FgMuted),
		Accent:      lipgloss.Color(t.Accent),
		Today:       lipgloss.Color(t.Today),
		Warning:     lipgloss.Color(t.Warning),
		Weekend:     lipgloss.Color(t.Weekend),

		EventBg:     lipgloss.Color(eventBg),
		SelectionBg: lipgloss.Color(t.Selection),

		TextOnEvent:     lipgloss.Color(chooseTextColor(eventBg, t.Fg, t.Bg)),
		TextOnSelection: lipgloss.Color(chooseTextColor(t.Selection, t.Fg, t.Bg)),
		TextOnAccent:    lipgloss.Color(chooseTextColor(t.Accent, t.Fg, t.Bg)),
	}
}

func isLightTheme(bg string) bool {
	return relativeLuminance(bg) > 0.55
}

// tint softens an accent into a cell background: towards the page color
// on light themes, towards black on dark ones.
func tint(accent, bg string, light bool) string {
	if light {
		return blendColors(accent, bg, 0.75)
	}
	return blendColors(accent, "#000000", 0.5)
}

func chooseTextColor(bg, a, b string) string {
	if contrastRatio(bg, a) >= contrastRatio(bg, b) {
		return a
	}
	return b
}

func contrastRatio(a, b string) float64 {
	l1 := relativeLuminance(a)
	l2 := relativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

func relativeLuminance(hex string) float64 {
	r, g, b, ok := parseRGB(hex)
	if !ok {
		return 0
	}
	return 0.2126*srgbToLinear(r) + 0.7152*srgbToLinear(g) + 0.0722*srgbToLinear(b)
}

func srgbToLinear(c int) float64 {
	v := float64(c) / 255.0
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func blendColors(a, b string, ratio float64) string {
	ar, ag, ab, ok := parseRGB(a)
	if !ok {
		return a
	}
	br, bg, bb, ok := parseRGB(b)
	if !ok {
		return a
	}
	ratio = math.Max(0, math.Min(1, ratio))

	mix := func(x, y int) int {
		return int(float64(x)*(1-ratio) + float64(y)*ratio)
	}
	return formatHexColor(mix(ar, br), mix(ag, bg), mix(ab, bb))
}

// parseRGB splits a #rrggbb color into its channels.
func parseRGB(hex string) (r, g, b int, ok bool) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0, false
	}
	return parseHex(hex[1:3]), parseHex(hex[3:5]), parseHex(hex[5:7]), true
}

func parseHex(s string) int {
	var val int
	for i := 0; i < len(s); i++ {
		val *= 16
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			val += int(c - '0')
		case c >= 'a' && c <= 'f':
			val += int(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			val += int(c - 'A' + 10)
		}
	}
	return val
}

func formatHexColor(r, g, b int) string {
	const hex = "0123456789abcdef"
	return string([]byte{'#', hex[r>>4], hex[r&0xf], hex[g>>4], hex[g&0xf], hex[b>>4], hex[b&0xf]})
}
