// Package dateutil provides the date arithmetic behind calendar views:
// day truncation, week and month windows, and date parsing.
package dateutil

import (
	"errors"
	"strings"
	"time"
)

// Validation errors.
var (
	ErrInvalidDateFormat  = errors.New("date must be in YYYY-MM-DD format")
	ErrEndDateBeforeStart = errors.New("end date must be on or after start date")
	ErrInvalidWeekday     = errors.New("unknown weekday")
)

const layout = "2006-01-02"

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// DateRange is an inclusive, validated span of days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange parses both ends of a range. An empty start means today and
// an empty end means the start day.
func NewDateRange(startDate, endDate string) (*DateRange, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return nil, err
	}

	end := start
	if endDate != "" {
		end, err = ParseDate(endDate)
		if err != nil {
			return nil, err
		}
	}

	if end.Before(start) {
		return nil, ErrEndDateBeforeStart
	}
	return &DateRange{Start: start, End: end}, nil
}

// Days lists every day in the range.
func (r DateRange) Days() []time.Time {
	return Days(r.Start, r.End)
}

// ParseDate parses a YYYY-MM-DD date. An empty string yields today.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return TruncateToDay(time.Now()), nil
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(layout)
}

// ParseWeekday accepts full or three-letter English weekday names.
func ParseWeekday(s string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if d, ok := weekdays[name]; ok {
		return d, nil
	}
	if len(name) == 3 {
		for full, d := range weekdays {
			if strings.HasPrefix(full, name) {
				return d, nil
			}
		}
	}
	return time.Sunday, ErrInvalidWeekday
}

// TruncateToDay returns t with time set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns the first day of the week holding t, where weeks
// begin on first.
func StartOfWeek(t time.Time, first time.Weekday) time.Time {
	t = TruncateToDay(t)
	back := (int(t.Weekday()) - int(first) + 7) % 7
	return t.AddDate(0, 0, -back)
}

// WeekRange returns the first and last day of the week holding t.
func WeekRange(t time.Time, first time.Weekday) (start, end time.Time) {
	start = StartOfWeek(t, first)
	return start, start.AddDate(0, 0, 6)
}

// MonthRange returns the first and last day visible in a month grid for
// the month holding t: whole weeks from the week of the 1st to the week
// of the last day.
func MonthRange(t time.Time, first time.Weekday) (start, end time.Time) {
	firstOfMonth := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	lastOfMonth := firstOfMonth.AddDate(0, 1, -1)
	start = StartOfWeek(firstOfMonth, first)
	_, end = WeekRange(lastOfMonth, first)
	return start, end
}

// Days lists the days from start to end inclusive. It returns nil when
// end is before start.
func Days(start, end time.Time) []time.Time {
	start, end = TruncateToDay(start), TruncateToDay(end)
	if end.Before(start) {
		return nil
	}
	var out []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		out = append(out, d)
	}
	return out
}

// ParseRelativeDate parses a navigation target:
//   - "" or "today"
//   - "tomorrow", "yesterday"
//   - a weekday name: its next occurrence after today
//   - "next-<weekday>", "next-week", "last-week"
//   - YYYY-MM-DD
//
// Input is case-insensitive.
func ParseRelativeDate(s string, relativeTo time.Time) (time.Time, error) {
	today := TruncateToDay(relativeTo)
	input := strings.ToLower(strings.TrimSpace(s))

	switch input {
	case "", "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	case "next-week":
		return today.AddDate(0, 0, 7), nil
	case "last-week":
		return today.AddDate(0, 0, -7), nil
	}

	if name, ok := strings.CutPrefix(input, "next-"); ok {
		if d, ok := weekdays[name]; ok {
			return nextWeekday(today, d), nil
		}
		return time.Time{}, ErrInvalidDateFormat
	}
	if d, ok := weekdays[input]; ok {
		return nextWeekday(today, d), nil
	}

	t, err := time.Parse(layout, input)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// nextWeekday returns the next target day strictly after today.
func nextWeekday(today time.Time, target time.Weekday) time.Time {
	ahead := int(target) - int(today.Weekday())
	if ahead <= 0 {
		ahead += 7
	}
	return today.AddDate(0, 0, ahead)
}
