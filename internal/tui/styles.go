package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/slotpick/internal/tui/theme"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	colorBg      lipgloss.Color
	colorFg      lipgloss.Color
	colorFgMuted lipgloss.Color
	colorAccent  lipgloss.Color

	TitleStyle          lipgloss.Style
	DayHeaderStyle      lipgloss.Style
	DayHeaderTodayStyle lipgloss.Style

	// Day cells
	CellStyle         lipgloss.Style
	CellWeekendStyle  lipgloss.Style
	CellOutsideStyle  lipgloss.Style // days outside the month on display
	TodayNumberStyle  lipgloss.Style
	SelectedCellStyle lipgloss.Style
	EventStyle        lipgloss.Style

	BandLabelStyle lipgloss.Style
	SeparatorStyle lipgloss.Style

	// Footer
	StatusStyle lipgloss.Style
	ErrorStyle  lipgloss.Style
	HelpStyle   lipgloss.Style
	PromptStyle lipgloss.Style

	// Agenda
	AgendaHeaderStyle lipgloss.Style
	AgendaDateStyle   lipgloss.Style
	AgendaBorderStyle lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	p := theme.NewPalette(t)
	base := lipgloss.NewStyle().Background(p.Bg).Foreground(p.Fg)

	return &Styles{
		colorBg:      p.Bg,
		colorFg:      p.Fg,
		colorFgMuted: p.FgMuted,
		colorAccent:  p.Accent,

		TitleStyle: base.
			Foreground(p.Accent).
			Bold(true),
		DayHeaderStyle: base.
			Background(p.BgHighlight).
			Foreground(p.FgMuted),
		DayHeaderTodayStyle: base.
			Background(p.BgHighlight).
			Foreground(p.Today).
			Bold(true),

		CellStyle:        base,
		CellWeekendStyle: base.Background(p.Weekend),
		CellOutsideStyle: base.Foreground(p.FgMuted),
		TodayNumberStyle: base.
			Foreground(p.Today).
			Bold(true),
		SelectedCellStyle: base.
			Background(p.SelectionBg).
			Foreground(p.TextOnSelection),
		EventStyle: base.
			Background(p.EventBg).
			Foreground(p.TextOnEvent),

		BandLabelStyle: base.
			Foreground(p.Accent).
			Italic(true),
		SeparatorStyle: base.Foreground(p.BgSelection),

		StatusStyle: base.Foreground(p.FgMuted),
		ErrorStyle:  base.Foreground(p.Warning),
		HelpStyle:   base.Foreground(p.FgMuted),
		PromptStyle: base.
			Background(p.BgSelection).
			Foreground(p.Fg),

		AgendaHeaderStyle: base.
			Foreground(p.Accent).
			Bold(true),
		AgendaDateStyle: base.Foreground(p.Today),
		AgendaBorderStyle: lipgloss.NewStyle().
			Foreground(p.Accent).
			Background(p.Bg),
	}
}
