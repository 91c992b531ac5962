package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/slotpick/internal/calendar"
	"github.com/javiermolinar/slotpick/internal/dateutil"
	"github.com/javiermolinar/slotpick/internal/grid"
	"github.com/javiermolinar/slotpick/internal/tui/commands"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.mode {
	case ModePrompt:
		return m.handlePromptKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	// Views
	case "v":
		return m.switchView(1)
	case "V":
		return m.switchView(-1)

	// Navigation
	case "h", "left":
		return m.navigate(-1)
	case "l", "right":
		return m.navigate(1)
	case "t":
		m.date = m.today()
		m.relayout()
		return m, m.loadEvents()

	// Selection behavior
	case "r":
		m.rtl = !m.rtl
		m.relayout()
		return m, statusCmd(fmt.Sprintf("Direction: %s", direction(m.rtl)))
	case "s":
		m.selectable = nextSelectable(m.selectable)
		m.host.setSelectable(m.selectable)
		return m, statusCmd(fmt.Sprintf("Selectable: %s", m.selectable))

	case "y":
		return m.handleYank()
	case "u":
		if m.lastCreatedID == 0 {
			return m, statusCmd("Nothing to undo")
		}
		return m, commands.DeleteEvent(m.repo, m.lastCreatedID)

	case "esc":
		m.statusMsg = ""
		m.err = nil
		return m, nil
	}
	return m, nil
}

// handlePromptKeys handles keys while a selection is being named.
func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePrompt("cancel")
		return m, statusCmd("Selection discarded")

	case "enter":
		if m.pending == nil {
			m.closePrompt("no selection")
			return m, nil
		}
		e, err := calendar.EventFromSlots(m.prompt.Value(), *m.pending)
		if errors.Is(err, calendar.ErrEmptyTitle) {
			return m, statusCmd("Type a title or press esc")
		}
		if err != nil {
			m.closePrompt("invalid selection")
			return m, func() tea.Msg { return commands.ErrMsg{Err: err} }
		}
		m.closePrompt("submit")
		return m, commands.CreateEvent(m.repo, e)
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m *Model) closePrompt(reason string) {
	m.pending = nil
	m.prompt.Blur()
	m.prompt.SetValue("")
	m.setMode(ModeNormal, reason)
}

func (m Model) switchView(step int) (tea.Model, tea.Cmd) {
	idx := 0
	for i, v := range calendar.Views {
		if v == m.view {
			idx = i
			break
		}
	}
	n := len(calendar.Views)
	m.view = calendar.Views[((idx+step)%n+n)%n]
	m.relayout()
	return m, tea.Batch(m.loadEvents(), statusCmd(m.view.Label()))
}

func (m Model) navigate(step int) (tea.Model, tea.Cmd) {
	m.date = m.view.Navigate(m.date, step)
	m.relayout()
	return m, m.loadEvents()
}

// handleYank copies the last selection's dates.
func (m Model) handleYank() (tea.Model, tea.Cmd) {
	if m.lastSlots == nil {
		return m, statusCmd("Nothing selected")
	}
	return m, commands.CopyText(slotsText(*m.lastSlots))
}

// slotsText formats a selection as a date or an inclusive date range.
func slotsText(s grid.SlotsInfo) string {
	start, end := dateutil.FormatDate(s.Start), dateutil.FormatDate(s.End)
	if start == end {
		return start
	}
	return start + ".." + end
}

func nextSelectable(s grid.Selectable) grid.Selectable {
	switch s {
	case grid.SelectableOff:
		return grid.SelectableOn
	case grid.SelectableOn:
		return grid.SelectableIgnoreEvents
	default:
		return grid.SelectableOff
	}
}

func direction(rtl bool) string {
	if rtl {
		return "right to left"
	}
	return "left to right"
}
