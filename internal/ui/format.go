package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/javiermolinar/slotpick/internal/calendar"
	"github.com/javiermolinar/slotpick/internal/dateutil"
)

// eventRowOverhead is the width of "  #NNNN  " plus the span column.
const eventRowOverhead = 32

// PrintOpts configures event printing.
type PrintOpts struct {
	Verbose bool // show full titles
	Width   int  // terminal width, 0 = detect
}

func (o PrintOpts) titleWidth() int {
	if o.Verbose {
		return 0
	}
	w := o.Width
	if w <= 0 {
		w = termWidth()
	}
	return max(10, w-eventRowOverhead)
}

// PrintEvents prints events under a heading for each start date.
func PrintEvents(w io.Writer, events []*calendar.Event, opts PrintOpts) {
	var current string
	for _, e := range events {
		date := dateutil.FormatDate(e.Start)
		if date != current {
			if current != "" {
				fmt.Fprintln(w)
			}
			fmt.Fprintln(w, formatDate(fmt.Sprintf("=== %s %s ===", date, e.Start.Format("Mon"))))
			current = date
		}
		fmt.Fprintln(w, formatEventRow(e, opts.titleWidth()))
	}
}

// formatEventRow renders one event; titleWidth 0 disables truncation.
func formatEventRow(e *calendar.Event, titleWidth int) string {
	title := e.Title
	if titleWidth > 0 {
		title = runewidth.Truncate(title, titleWidth, "...")
	}
	var b strings.Builder
	fmt.Fprintf(&b, "  #%-4d %s  %s", e.ID, formatMuted(formatSpan(e)), title)
	if e.Group != "" {
		b.WriteString("  " + formatGroup("@"+e.Group))
	}
	return b.String()
}

// formatSpan describes how many days an event covers and where it ends.
func formatSpan(e *calendar.Event) string {
	days := e.Days()
	if days <= 1 {
		return fmt.Sprintf("%-22s", "1 day")
	}
	return fmt.Sprintf("%-22s", fmt.Sprintf("%d days → %s", days, dateutil.FormatDate(e.End)))
}
