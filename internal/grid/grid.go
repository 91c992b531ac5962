// Package grid connects selection engines to calendar grids.
//
// A RowController serves a single row of whole-day cells (the all-day band
// or one week of a month view). A ColumnController serves a band of day
// columns in a time grid, one per group. Both resolve a gesture into column
// indices and report it through OnSelectSlot exactly once per completed
// gesture.
package grid

import (
	"fmt"
	"strings"

	"github.com/javiermolinar/slotpick/internal/cellindex"
	"github.com/javiermolinar/slotpick/internal/geometry"
)

// Selectable controls whether a grid accepts gestures.
type Selectable int

const (
	SelectableOff Selectable = iota
	SelectableOn
	// SelectableIgnoreEvents accepts gestures except presses that land on
	// an event, which are left to the event itself.
	SelectableIgnoreEvents
)

// String returns the config name of the mode.
func (s Selectable) String() string {
	switch s {
	case SelectableOff:
		return "off"
	case SelectableOn:
		return "on"
	case SelectableIgnoreEvents:
		return "ignore_events"
	default:
		return fmt.Sprintf("Selectable(%d)", int(s))
	}
}

// ParseSelectable parses a config name into a Selectable.
func ParseSelectable(s string) (Selectable, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "false", "":
		return SelectableOff, nil
	case "on", "true":
		return SelectableOn, nil
	case "ignore_events", "ignore-events", "ignoreevents":
		return SelectableIgnoreEvents, nil
	default:
		return SelectableOff, fmt.Errorf("invalid selectable mode %q", s)
	}
}

// Action says how a selection was made.
type Action string

const (
	ActionClick  Action = "click"
	ActionSelect Action = "select"
)

// Group is a named band of columns, such as a resource.
type Group struct {
	Value       any
	Description string
}

// SlotInfo describes a completed selection in column indices.
type SlotInfo struct {
	Start     int
	End       int
	Action    Action
	IsStart   bool
	IsCurrent bool
	Group     any // nil for ungrouped grids
}

// GestureState is the per-controller view of the gesture in progress.
type GestureState struct {
	Selecting bool
	StartIdx  int
	EndIdx    int
	IsStart   bool
	IsCurrent bool

	// SelectedDays marks the highlighted columns of a column grid.
	SelectedDays map[int]bool
}

// emptyState is the state between gestures.
func emptyState() GestureState {
	return GestureState{StartIdx: -1, EndIdx: -1}
}

// Range returns the state's indices as a cellindex.Range.
func (s GestureState) Range() cellindex.Range {
	return cellindex.Range{
		StartIdx:  s.StartIdx,
		EndIdx:    s.EndIdx,
		IsStart:   s.IsStart,
		IsCurrent: s.IsCurrent,
	}
}

// Covers reports whether column idx is highlighted by the gesture.
func (s GestureState) Covers(idx int) bool {
	if !s.Selecting {
		return false
	}
	if s.SelectedDays != nil {
		return s.SelectedDays[idx]
	}
	return idx >= s.StartIdx && idx <= s.EndIdx && s.StartIdx >= 0
}

// EventHitTester reports whether an event element is rendered under a point.
type EventHitTester interface {
	EventAt(p geometry.Point) bool
}

// EventHitFunc adapts a function to EventHitTester.
type EventHitFunc func(p geometry.Point) bool

// EventAt implements EventHitTester.
func (f EventHitFunc) EventAt(p geometry.Point) bool {
	return f != nil && f(p)
}

func eventAt(t EventHitTester, p geometry.Point) bool {
	return t != nil && t.EventAt(p)
}

// allowPress is the MouseDown veto shared by both controllers.
func allowPress(mode Selectable, events EventHitTester, p geometry.Point) bool {
	if mode != SelectableIgnoreEvents {
		return true
	}
	return !eventAt(events, p)
}
