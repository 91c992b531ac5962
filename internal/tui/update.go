package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/slotpick/internal/selection"
	"github.com/javiermolinar/slotpick/internal/tui/commands"
)

const (
	statusTTL = 3 * time.Second
	errorTTL  = 5 * time.Second
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.prompt.Width = max(0, msg.Width/2-4)
		m.relayout()
		return m, nil

	case commands.EventsLoadedMsg:
		start, _ := m.view.Range(m.date, m.weekStart)
		if !msg.Start.Equal(start) {
			// A navigation overtook this load.
			return m, nil
		}
		m.events = msg.Events
		m.relayout()
		return m, nil

	case commands.EventCreatedMsg:
		m.lastCreatedID = msg.Event.ID
		return m, tea.Batch(
			m.loadEvents(),
			statusCmd(fmt.Sprintf("Booked %q", msg.Event.Title)),
		)

	case commands.EventDeletedMsg:
		if m.lastCreatedID == msg.ID {
			m.lastCreatedID = 0
		}
		return m, tea.Batch(m.loadEvents(), statusCmd("Event removed"))

	case commands.ErrMsg:
		LogError("command", msg.Err)
		m.err = msg.Err
		m.statusMsg = fmt.Sprintf("Error: %v", msg.Err)
		m.statusTime = time.Now().Add(errorTTL)
		return m, clearStatusAfter(errorTTL)

	case commands.StatusMsgCmd:
		m.statusMsg = msg.Msg
		m.statusTime = time.Now().Add(statusTTL)
		return m, clearStatusAfter(statusTTL)

	case commands.ClearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
			m.err = nil
		}
		return m, nil
	}

	if m.mode == ModePrompt {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleMouse feeds a terminal mouse report to the selection controllers.
// A completed selection opens the title prompt.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode != ModeNormal {
		return m, nil
	}
	p, ok := selection.FromMouse(msg)
	if !ok {
		return m, nil
	}
	LogPointer(p)

	slots, ok := mergeSlots(m.host.dispatch(p))
	if !ok {
		return m, nil
	}
	m.pending = &slots
	m.lastSlots = &slots
	m.prompt.SetValue("")
	m.setMode(ModePrompt, "selection")
	return m, tea.Batch(m.prompt.Focus(), textinput.Blink)
}

func statusCmd(text string) tea.Cmd {
	return func() tea.Msg { return commands.StatusMsgCmd{Msg: text} }
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return commands.ClearStatusMsg{}
	})
}
