package tui

import (
	"sort"
	"time"

	"github.com/javiermolinar/slotpick/internal/calendar"
	"github.com/javiermolinar/slotpick/internal/geometry"
	"github.com/javiermolinar/slotpick/internal/grid"
)

const (
	headerLines  = 2 // title, weekday names
	footerLines  = 2 // status, help
	minCellWidth = 4
	maxRowLines  = 8
	maxAllDay    = 4
	maxBandLines = 6
)

// rowLayout is a row of whole-day cells: a month week or the all-day row.
type rowLayout struct {
	Box   geometry.Box
	Dates []time.Time
	// EventLine is the first line inside Box that lists events.
	EventLine int
}

// bandLayout is a band of day columns, one per group in the grouped week.
type bandLayout struct {
	Box   geometry.Box
	Dates []time.Time
	Group grid.Group
	// Label is the line above Box holding the group description, or -1.
	Label  int
	Events []*calendar.Event
}

// eventSeg is one line of an event drawn inside a day cell.
type eventSeg struct {
	Box   geometry.Box
	Event *calendar.Event
	Day   int // logical column
}

// Layout places the current view on screen. Everything the view draws and
// every box the selection controllers measure comes from here.
type Layout struct {
	Width, Height int
	View          calendar.View
	Dates         []time.Time
	Cols          int
	ColW          int
	RTL           bool

	// RowGrid contains all rows; BandGrid contains all bands.
	RowGrid  geometry.Box
	BandGrid geometry.Box
	Rows     []rowLayout
	Bands    []bandLayout
	Segs     []eventSeg
	// Separator is the line between the all-day row and the day columns, or -1.
	Separator int
}

type layoutInput struct {
	view   calendar.View
	dates  []time.Time
	events []*calendar.Event
	groups []grid.Group
	width  int
	height int
	rtl    bool
}

func buildLayout(in layoutInput) Layout {
	l := Layout{
		Width:     in.width,
		Height:    in.height,
		View:      in.view,
		Dates:     in.dates,
		RTL:       in.rtl,
		Separator: -1,
	}
	if !in.view.Selectable() || len(in.dates) == 0 {
		return l
	}

	l.Cols = len(in.dates)
	if in.view == calendar.ViewMonth {
		l.Cols = 7
	}
	l.ColW = max(minCellWidth, in.width/l.Cols)

	top := headerLines
	avail := in.height - headerLines - footerLines
	if avail < 1 {
		return l
	}

	switch {
	case in.view == calendar.ViewMonth:
		l.layoutMonth(in, top, avail)
	case in.view.Grouped():
		l.layoutBands(in, top, avail)
	default:
		l.layoutColumns(in, top, avail)
	}
	return l
}

// x returns the left edge of logical column i.
func (l Layout) x(i int) int {
	if l.RTL {
		i = l.Cols - 1 - i
	}
	return i * l.ColW
}

func (l Layout) gridWidth() int { return l.Cols * l.ColW }

func (l *Layout) layoutMonth(in layoutInput, top, avail int) {
	weeks := calendar.Weeks(in.dates)
	rowH := min(maxRowLines, max(1, avail/len(weeks)))

	for i, week := range weeks {
		box := geometry.Box{Top: top + i*rowH, Left: 0, Right: l.gridWidth(), Bottom: top + (i+1)*rowH}
		l.Rows = append(l.Rows, rowLayout{Box: box, Dates: week, EventLine: box.Top + 1})
		l.placeEvents(in.events, week, box.Top+1, box.Bottom)
	}
	l.RowGrid = geometry.Box{Top: top, Left: 0, Right: l.gridWidth(), Bottom: top + len(weeks)*rowH}
}

func (l *Layout) layoutColumns(in layoutInput, top, avail int) {
	allDayH := 1
	for _, d := range in.dates {
		allDayH = max(allDayH, len(eventsOn(in.events, d)))
	}
	allDayH = min(allDayH, maxAllDay, max(1, avail-2))

	row := geometry.Box{Top: top, Left: 0, Right: l.gridWidth(), Bottom: top + allDayH}
	l.Rows = []rowLayout{{Box: row, Dates: in.dates, EventLine: row.Top}}
	l.RowGrid = row
	l.placeEvents(in.events, in.dates, row.Top, row.Bottom)

	bodyTop := row.Bottom + 1
	bodyBottom := top + avail
	if bodyBottom <= bodyTop {
		return
	}
	l.Separator = row.Bottom
	body := geometry.Box{Top: bodyTop, Left: 0, Right: l.gridWidth(), Bottom: bodyBottom}
	l.Bands = []bandLayout{{Box: body, Dates: in.dates, Label: -1}}
	l.BandGrid = body
}

func (l *Layout) layoutBands(in layoutInput, top, avail int) {
	bands := calendar.Bands(in.groups, in.events)
	if len(bands) == 0 {
		bands = []calendar.Band{{Events: in.events}}
	}
	bandH := min(maxBandLines, max(2, avail/len(bands)))

	for i, b := range bands {
		label := top + i*bandH
		if label+1 >= top+avail {
			break
		}
		box := geometry.Box{Top: label + 1, Left: 0, Right: l.gridWidth(), Bottom: min(label+bandH, top+avail)}
		l.Bands = append(l.Bands, bandLayout{Box: box, Dates: in.dates, Group: b.Group, Label: label, Events: b.Events})
		l.placeEvents(b.Events, in.dates, box.Top, box.Bottom)
	}
	if n := len(l.Bands); n > 0 {
		l.BandGrid = geometry.Box{Top: top, Left: 0, Right: l.gridWidth(), Bottom: l.Bands[n-1].Box.Bottom}
	}
}

// placeEvents stacks the events of each day on the lines first..last-1.
func (l *Layout) placeEvents(events []*calendar.Event, dates []time.Time, first, last int) {
	for i, d := range dates {
		for k, e := range eventsOn(events, d) {
			line := first + k
			if line >= last {
				break
			}
			left := l.x(i)
			l.Segs = append(l.Segs, eventSeg{
				Box:   geometry.Box{Top: line, Left: left, Right: left + l.ColW, Bottom: line + 1},
				Event: e,
				Day:   i,
			})
		}
	}
}

// segAt returns the event drawn under p.
func (l Layout) segAt(p geometry.Point) (eventSeg, bool) {
	for _, s := range l.Segs {
		if s.Box.HasCell(p) {
			return s, true
		}
	}
	return eventSeg{}, false
}

// eventsOn returns the events covering day ordered by start, longer
// events first on ties.
func eventsOn(events []*calendar.Event, day time.Time) []*calendar.Event {
	var out []*calendar.Event
	for _, e := range events {
		if e.Covers(day) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Start.Equal(out[j].Start) {
			return out[i].Start.Before(out[j].Start)
		}
		if di, dj := out[i].Days(), out[j].Days(); di != dj {
			return di > dj
		}
		return out[i].ID < out[j].ID
	})
	return out
}
