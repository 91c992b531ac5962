package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/slotpick/internal/calendar"
	"github.com/javiermolinar/slotpick/internal/dateutil"
)

func (a *App) eventsCmd() *cobra.Command {
	var (
		from    string
		to      string
		group   string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "events",
		Short: "List booked events in a date range",
		Long: `List booked events that share at least one day with a date range.

Dates accept YYYY-MM-DD, today, tomorrow, yesterday, next-week, last-week,
a weekday name or next-<weekday>. Without --from the range starts today;
without --to it covers the agenda length.`,
		Example: `  slotpick events
  slotpick events --from=2025-03-01 --to=2025-03-31
  slotpick events --from=monday --to=friday --group=room-a`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start, end, err := parseSpan(from, to, time.Now())
			if err != nil {
				return err
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}

			events, err := a.repo.ListEventsByDateRange(context.Background(), start, end)
			if err != nil {
				return fmt.Errorf("listing events: %w", err)
			}
			events = filterGroup(events, group)

			w := cmd.OutOrStdout()
			if len(events) == 0 {
				fmt.Fprintln(w, "No events found in the specified date range.")
				return nil
			}
			PrintEvents(w, events, PrintOpts{Verbose: verbose})
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "First day (defaults to today)")
	cmd.Flags().StringVar(&to, "to", "", "Last day (defaults to the agenda length)")
	cmd.Flags().StringVar(&group, "group", "", "Only events booked in this group")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show full titles")

	return cmd
}

// parseSpan resolves the from/to flags relative to now.
func parseSpan(from, to string, now time.Time) (start, end time.Time, err error) {
	start, err = dateutil.ParseRelativeDate(from, now)
	if err != nil {
		return start, end, fmt.Errorf("--from: %w", err)
	}
	if to == "" {
		return start, start.AddDate(0, 0, calendar.AgendaLength-1), nil
	}
	end, err = dateutil.ParseRelativeDate(to, now)
	if err != nil {
		return start, end, fmt.Errorf("--to: %w", err)
	}
	if end.Before(start) {
		return start, end, dateutil.ErrEndDateBeforeStart
	}
	return start, end, nil
}

func filterGroup(events []*calendar.Event, group string) []*calendar.Event {
	if group == "" {
		return events
	}
	out := events[:0:0]
	for _, e := range events {
		if e.Group == group {
			out = append(out, e)
		}
	}
	return out
}
