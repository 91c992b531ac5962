// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/slotpick/internal/calendar"
)

// EventsLoadedMsg is sent when the events of the visible range are loaded.
type EventsLoadedMsg struct {
	Start  time.Time
	End    time.Time
	Events []*calendar.Event
}

// EventCreatedMsg is sent after a selection has been booked.
type EventCreatedMsg struct {
	Event *calendar.Event
}

// EventDeletedMsg is sent after an event has been removed.
type EventDeletedMsg struct {
	ID int64
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// LoadEvents loads the events overlapping start..end.
func LoadEvents(repo calendar.Repository, start, end time.Time) tea.Cmd {
	return func() tea.Msg {
		if repo == nil {
			return EventsLoadedMsg{Start: start, End: end}
		}
		events, err := repo.ListEventsByDateRange(context.Background(), start, end)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading events: %w", err)}
		}
		return EventsLoadedMsg{Start: start, End: end, Events: events}
	}
}

// CreateEvent books e.
func CreateEvent(repo calendar.Repository, e *calendar.Event) tea.Cmd {
	return func() tea.Msg {
		if repo == nil {
			return ErrMsg{Err: fmt.Errorf("booking %q: no storage configured", e.Title)}
		}
		if err := repo.CreateEvent(context.Background(), e); err != nil {
			return ErrMsg{Err: fmt.Errorf("booking %q: %w", e.Title, err)}
		}
		return EventCreatedMsg{Event: e}
	}
}

// DeleteEvent removes the event with id.
func DeleteEvent(repo calendar.Repository, id int64) tea.Cmd {
	return func() tea.Msg {
		if repo == nil {
			return ErrMsg{Err: fmt.Errorf("deleting event %d: no storage configured", id)}
		}
		if err := repo.DeleteEvent(context.Background(), id); err != nil {
			return ErrMsg{Err: err}
		}
		return EventDeletedMsg{ID: id}
	}
}

// CopyText writes text to the system clipboard.
func CopyText(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return ErrMsg{Err: fmt.Errorf("copying to clipboard: %w", err)}
		}
		return StatusMsgCmd{Msg: "Copied " + text}
	}
}
