package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// TableViewState holds data needed to render the agenda table.
type TableViewState struct {
	InnerW      int
	Height      int
	Headers     []string
	Rows        [][]string
	HeaderStyle lipgloss.Style
	CellStyle   func(row, col int) lipgloss.Style
	BorderStyle lipgloss.Style
	Bg          lipgloss.Color
}

// RenderTable renders rows in a bordered lipgloss table that fills the box.
func RenderTable(state TableViewState) string {
	if state.InnerW <= 2 || state.Height <= 0 {
		return ""
	}

	t := table.New().
		Headers(state.Headers...).
		Width(state.InnerW).
		Border(lipgloss.RoundedBorder()).
		BorderHeader(true).
		BorderColumn(true).
		BorderRow(false).
		BorderStyle(state.BorderStyle).
		Rows(state.Rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return state.HeaderStyle
			}
			if state.CellStyle == nil {
				return lipgloss.NewStyle()
			}
			return state.CellStyle(row, col)
		})

	return PlaceBox(state.InnerW, state.Height, lipgloss.Top, t.Render(), state.Bg)
}
