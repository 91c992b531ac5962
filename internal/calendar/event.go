package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/javiermolinar/slotpick/internal/dateutil"
	"github.com/javiermolinar/slotpick/internal/grid"
)

// Validation errors.
var (
	ErrEmptyTitle     = errors.New("title cannot be empty")
	ErrEndBeforeStart = errors.New("end date must be on or after start date")
	ErrEmptySelection = errors.New("selection covers no days")
)

// Domain errors.
var ErrEventNotFound = errors.New("event not found")

// Event is a booked selection. Start and End are whole days, inclusive.
type Event struct {
	ID        int64
	Title     string
	Group     string // empty when the event belongs to no group
	Start     time.Time
	End       time.Time
	AllDay    bool
	Action    grid.Action
	CreatedAt time.Time
}

// NewEvent validates and builds an all-day event spanning start..end.
func NewEvent(title string, start, end time.Time) (*Event, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	start, end = dateutil.TruncateToDay(start), dateutil.TruncateToDay(end)
	if end.Before(start) {
		return nil, ErrEndBeforeStart
	}
	return &Event{
		Title:     title,
		Start:     start,
		End:       end,
		AllDay:    true,
		Action:    grid.ActionSelect,
		CreatedAt: time.Now(),
	}, nil
}

// EventFromSlots books a completed selection under title.
func EventFromSlots(title string, slots grid.SlotsInfo) (*Event, error) {
	if len(slots.Slots) == 0 {
		return nil, fmt.Errorf("booking selection: %w", ErrEmptySelection)
	}
	e, err := NewEvent(title, slots.Start, slots.End)
	if err != nil {
		return nil, err
	}
	e.Action = slots.Action
	e.Group = GroupKey(slots.Group)
	return e, nil
}

// Days returns the number of days the event covers.
func (e *Event) Days() int {
	return len(dateutil.Days(e.Start, e.End))
}

// Covers reports whether the event spans day.
func (e *Event) Covers(day time.Time) bool {
	day = dateutil.TruncateToDay(day)
	return !day.Before(e.Start) && !day.After(e.End)
}

// Overlaps reports whether the event shares at least one day with start..end.
func (e *Event) Overlaps(start, end time.Time) bool {
	return !e.End.Before(dateutil.TruncateToDay(start)) && !e.Start.After(dateutil.TruncateToDay(end))
}

// GroupKey renders a group value as stored text. A nil value is no group.
func GroupKey(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
