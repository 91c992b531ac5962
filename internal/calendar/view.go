// Package calendar holds the calendar domain: the views a grid can show,
// booked events, and the repository that stores them.
package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/javiermolinar/slotpick/internal/dateutil"
)

// ErrUnknownView is returned by ParseView for names outside the registry.
var ErrUnknownView = errors.New("unknown view")

// View is one of the calendar layouts.
type View string

const (
	ViewMonth       View = "month"
	ViewWeek        View = "week"
	ViewGroupedWeek View = "grouped_week"
	ViewWorkWeek    View = "work_week"
	ViewDay         View = "day"
	ViewAgenda      View = "agenda"
)

// AgendaLength is the number of days an agenda lists.
const AgendaLength = 30

// Views lists every registered view in display order.
var Views = []View{ViewMonth, ViewWeek, ViewGroupedWeek, ViewWorkWeek, ViewDay, ViewAgenda}

// ParseView resolves a view name. Dashes and case are ignored so that
// "work-week" and "Work_Week" both resolve.
func ParseView(s string) (View, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for _, v := range Views {
		if string(v) == name {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownView, s)
}

func (v View) String() string { return string(v) }

// Label is the title shown in the view switcher.
func (v View) Label() string {
	switch v {
	case ViewGroupedWeek:
		return "Grouped week"
	case ViewWorkWeek:
		return "Work week"
	default:
		s := string(v)
		if s == "" {
			return ""
		}
		return strings.ToUpper(s[:1]) + s[1:]
	}
}

// HasColumns reports whether the view lays days out as time-sliced
// columns rather than whole-day rows.
func (v View) HasColumns() bool {
	switch v {
	case ViewWeek, ViewGroupedWeek, ViewWorkWeek, ViewDay:
		return true
	}
	return false
}

// Grouped reports whether the view renders one column band per group.
func (v View) Grouped() bool { return v == ViewGroupedWeek }

// Selectable reports whether the view has a grid to select on.
func (v View) Selectable() bool { return v != ViewAgenda }

// Range returns the first and last day the view shows around date.
func (v View) Range(date time.Time, weekStart time.Weekday) (start, end time.Time) {
	date = dateutil.TruncateToDay(date)
	switch v {
	case ViewMonth:
		return dateutil.MonthRange(date, weekStart)
	case ViewWeek, ViewGroupedWeek:
		return dateutil.WeekRange(date, weekStart)
	case ViewWorkWeek:
		mon := dateutil.StartOfWeek(date, time.Monday)
		return mon, mon.AddDate(0, 0, 4)
	case ViewAgenda:
		return date, date.AddDate(0, 0, AgendaLength-1)
	default:
		return date, date
	}
}

// Dates lists the days the view shows around date.
func (v View) Dates(date time.Time, weekStart time.Weekday) []time.Time {
	return dateutil.Days(v.Range(date, weekStart))
}

// Navigate moves date one page forward (step > 0) or back (step < 0).
func (v View) Navigate(date time.Time, step int) time.Time {
	switch v {
	case ViewMonth:
		first := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
		return first.AddDate(0, step, 0)
	case ViewWeek, ViewGroupedWeek, ViewWorkWeek:
		return date.AddDate(0, 0, 7*step)
	case ViewAgenda:
		return date.AddDate(0, 0, AgendaLength*step)
	default:
		return date.AddDate(0, 0, step)
	}
}

// Weeks splits dates into rows of seven days. The last row may be short.
func Weeks(dates []time.Time) [][]time.Time {
	var rows [][]time.Time
	for len(dates) > 0 {
		n := min(7, len(dates))
		rows = append(rows, dates[:n])
		dates = dates[n:]
	}
	return rows
}
