package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/slotpick/internal/calendar"
	"github.com/javiermolinar/slotpick/internal/dateutil"
	"github.com/javiermolinar/slotpick/internal/grid"
	"github.com/javiermolinar/slotpick/internal/tui/view"
)

const helpText = "drag/click select · v/V view · h/l move · t today · r rtl · s selectable · y copy · u undo · q quit"

// View renders the TUI. Every line of the grid is drawn at the position
// buildLayout gave it so that the boxes the controllers measure match
// what is on screen.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "Loading..."
	}
	if m.height < headerLines+footerLines+1 {
		return "Terminal too small"
	}

	bodyH := m.height - headerLines - footerLines
	var body string
	if m.view == calendar.ViewAgenda {
		body = m.renderAgenda(bodyH)
	} else {
		body = m.renderGrid()
	}

	out := strings.Join([]string{
		m.renderTitle(),
		m.renderDayHeader(),
		view.PadLinesWithBackground(body, m.width, bodyH, m.styles.colorBg),
		m.renderFooter(),
	}, "\n")
	out = view.PadLinesWithBackground(out, m.width, m.height, m.styles.colorBg)
	if m.zones != nil {
		return m.zones.Scan(out)
	}
	return out
}

func (m Model) renderTitle() string {
	start, end := m.view.Range(m.date, m.weekStart)
	var text string
	switch m.view {
	case calendar.ViewMonth:
		text = m.date.Format("January 2006")
	case calendar.ViewDay:
		text = m.date.Format("Monday, Jan 2, 2006")
	default:
		text = fmt.Sprintf("%s - %s", start.Format("Jan 2"), end.Format("Jan 2, 2006"))
	}
	text = fmt.Sprintf(" %s  %s", m.view.Label(), text)
	if m.rtl {
		text += "  (rtl)"
	}
	return m.styles.TitleStyle.Render(view.FitCell(text, m.width))
}

// renderDayHeader draws the weekday names over the grid columns.
func (m Model) renderDayHeader() string {
	l := m.layout
	if l.Cols == 0 {
		return m.styles.DayHeaderStyle.Render(view.FitCell("", m.width))
	}
	today := m.today()
	cells := make([]string, l.Cols)
	for vis := range cells {
		i := m.logical(vis)
		var label string
		style := m.styles.DayHeaderStyle
		if m.view == calendar.ViewMonth {
			label = " " + time.Weekday((int(m.weekStart)+i)%7).String()[:3]
		} else if i < len(l.Dates) {
			d := l.Dates[i]
			label = fmt.Sprintf(" %s %d", d.Format("Mon"), d.Day())
			if d.Equal(today) {
				style = m.styles.DayHeaderTodayStyle
			}
		}
		cells[vis] = view.RenderCell(style, label, l.ColW)
	}
	return view.JoinCells(cells)
}

// logical maps an on-screen column to its index in the date range.
func (m Model) logical(vis int) int {
	if m.layout.RTL {
		return m.layout.Cols - 1 - vis
	}
	return vis
}

// segKey addresses an event line by screen line and logical day.
type segKey struct{ y, day int }

func (m Model) segIndex() map[segKey]int {
	idx := make(map[segKey]int, len(m.layout.Segs))
	for i, s := range m.layout.Segs {
		idx[segKey{s.Box.Top, s.Day}] = i
	}
	return idx
}

// renderGrid draws rows, separator and bands from the top of the body.
func (m Model) renderGrid() string {
	l := m.layout
	ids := m.zoneIDs()
	segs := m.segIndex()
	var blocks []string

	if len(l.Rows) > 0 {
		rows := make([]string, 0, len(l.Rows))
		for i, r := range l.Rows {
			state := m.host.rowState(i)
			lines := make([]string, 0, r.Box.Height())
			for y := r.Box.Top; y < r.Box.Bottom; y++ {
				lines = append(lines, m.renderRowLine(r, y, state, segs))
			}
			rows = append(rows, mark(m.zones, ids.row(i), strings.Join(lines, "\n")))
		}
		blocks = append(blocks, mark(m.zones, ids.rowGrid(), strings.Join(rows, "\n")))
	}

	if l.Separator >= 0 {
		line := strings.Repeat("─", l.gridWidth())
		blocks = append(blocks, m.styles.SeparatorStyle.Render(line))
	}

	if len(l.Bands) > 0 {
		var parts []string
		for i, b := range l.Bands {
			if b.Label >= 0 {
				parts = append(parts, m.styles.BandLabelStyle.Render(view.FitCell(" "+bandTitle(b.Group), l.gridWidth())))
			}
			state := m.host.bandState(i)
			lines := make([]string, 0, b.Box.Height())
			for y := b.Box.Top; y < b.Box.Bottom; y++ {
				lines = append(lines, m.renderBandLine(b, y, state, segs))
			}
			parts = append(parts, mark(m.zones, ids.band(i), strings.Join(lines, "\n")))
		}
		blocks = append(blocks, mark(m.zones, ids.bandGrid(), strings.Join(parts, "\n")))
	}

	return strings.Join(blocks, "\n")
}

func (m Model) renderRowLine(r rowLayout, y int, state grid.GestureState, segs map[segKey]int) string {
	l := m.layout
	ids := m.zoneIDs()
	today := m.today()
	cells := make([]string, l.Cols)
	for vis := range cells {
		i := m.logical(vis)
		if i >= len(r.Dates) {
			cells[vis] = view.RenderCell(m.styles.CellStyle, "", l.ColW)
			continue
		}
		d := r.Dates[i]
		style := m.dayStyle(d, state.Covers(i))

		if y < r.EventLine {
			num := fmt.Sprintf(" %d", d.Day())
			numStyle := style
			if d.Equal(today) && !state.Covers(i) {
				numStyle = m.styles.TodayNumberStyle
			}
			cells[vis] = view.RenderCell(numStyle, num, l.ColW)
			continue
		}
		if k, ok := segs[segKey{y, i}]; ok {
			cells[vis] = mark(m.zones, ids.seg(k), m.renderSeg(l.Segs[k], d))
			continue
		}
		cells[vis] = view.RenderCell(style, "", l.ColW)
	}
	return view.JoinCells(cells)
}

func (m Model) renderBandLine(b bandLayout, y int, state grid.GestureState, segs map[segKey]int) string {
	l := m.layout
	ids := m.zoneIDs()
	cells := make([]string, l.Cols)
	for vis := range cells {
		i := m.logical(vis)
		if i >= len(b.Dates) {
			cells[vis] = view.RenderCell(m.styles.CellStyle, "", l.ColW)
			continue
		}
		if k, ok := segs[segKey{y, i}]; ok {
			cells[vis] = mark(m.zones, ids.seg(k), m.renderSeg(l.Segs[k], b.Dates[i]))
			continue
		}
		cells[vis] = view.RenderCell(m.dayStyle(b.Dates[i], state.Covers(i)), "", l.ColW)
	}
	return view.JoinCells(cells)
}

// renderSeg draws one event line. The title is shown on the event's first
// day and on the first column of each row it continues into.
func (m Model) renderSeg(s eventSeg, day time.Time) string {
	text := " " + s.Event.Title
	if !day.Equal(s.Event.Start) && s.Day != 0 {
		text = ""
	}
	return view.RenderCell(m.styles.EventStyle, text, m.layout.ColW)
}

func (m Model) dayStyle(d time.Time, selected bool) lipgloss.Style {
	switch {
	case selected:
		return m.styles.SelectedCellStyle
	case m.view == calendar.ViewMonth && d.Month() != m.date.Month():
		return m.styles.CellOutsideStyle
	case d.Weekday() == time.Saturday || d.Weekday() == time.Sunday:
		return m.styles.CellWeekendStyle
	default:
		return m.styles.CellStyle
	}
}

func bandTitle(g grid.Group) string {
	if g.Description != "" {
		return g.Description
	}
	if key := calendar.GroupKey(g.Value); key != "" {
		return key
	}
	return "Ungrouped"
}

// renderAgenda lists the events of the agenda range in a table.
func (m Model) renderAgenda(height int) string {
	rows := make([][]string, 0, len(m.events))
	for _, e := range m.agendaEvents() {
		when := dateutil.FormatDate(e.Start)
		if !e.End.Equal(e.Start) {
			when += " .. " + dateutil.FormatDate(e.End)
		}
		rows = append(rows, []string{when, e.Title, e.Group})
	}
	if len(rows) == 0 {
		return m.styles.StatusStyle.Render(view.FitCell(" No events in the next 30 days", m.width))
	}
	return view.RenderTable(view.TableViewState{
		InnerW:      m.width,
		Height:      height,
		Headers:     []string{"Date", "Title", "Group"},
		Rows:        rows,
		HeaderStyle: m.styles.AgendaHeaderStyle,
		CellStyle: func(_, col int) lipgloss.Style {
			if col == 0 {
				return m.styles.AgendaDateStyle
			}
			return m.styles.CellStyle
		},
		BorderStyle: m.styles.AgendaBorderStyle,
		Bg:          m.styles.colorBg,
	})
}

func (m Model) agendaEvents() []*calendar.Event {
	start, end := m.view.Range(m.date, m.weekStart)
	var out []*calendar.Event
	for _, e := range m.events {
		if e.Overlaps(start, end) {
			out = append(out, e)
		}
	}
	return out
}

func (m Model) renderFooter() string {
	var status string
	switch {
	case m.mode == ModePrompt && m.pending != nil:
		label := view.ClipTail(fmt.Sprintf(" New event %s ", slotsText(*m.pending)), m.width/2)
		status = m.styles.PromptStyle.Render(label) + m.prompt.View()
	case m.err != nil && m.statusMsg != "":
		status = m.styles.ErrorStyle.Render(view.FitCell(" "+m.statusMsg, m.width))
	default:
		status = m.styles.StatusStyle.Render(view.FitCell(" "+m.statusMsg, m.width))
	}
	help := m.styles.HelpStyle.Render(view.FitCell(" "+helpText, m.width))
	return status + "\n" + help
}
