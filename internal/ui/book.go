package ui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/slotpick/internal/calendar"
	"github.com/javiermolinar/slotpick/internal/dateutil"
)

func (a *App) bookCmd() *cobra.Command {
	var (
		from  string
		to    string
		group string
	)

	cmd := &cobra.Command{
		Use:   "book <title>",
		Short: "Book an all-day event without opening the calendar",
		Example: `  slotpick book "Offsite" --from=2025-03-03 --to=2025-03-05
  slotpick book "Review" --from=friday --group=room-a`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			start, err := dateutil.ParseRelativeDate(from, now)
			if err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			end := start
			if to != "" {
				if end, err = dateutil.ParseRelativeDate(to, now); err != nil {
					return fmt.Errorf("--to: %w", err)
				}
			}

			e, err := calendar.NewEvent(strings.Join(args, " "), start, end)
			if err != nil {
				return err
			}
			e.Group = group

			if err := a.ensureRepo(); err != nil {
				return err
			}
			if err := a.repo.CreateEvent(context.Background(), e); err != nil {
				return fmt.Errorf("booking event: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d %s %s\n",
				formatOK("Booked"), e.ID, e.Title, formatRange(spanText(e)))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "First day (defaults to today)")
	cmd.Flags().StringVar(&to, "to", "", "Last day (defaults to --from)")
	cmd.Flags().StringVar(&group, "group", "", "Group to book the event in")

	return cmd
}

func (a *App) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a booked event",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid event id %q", args[0])
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}
			if err := a.repo.DeleteEvent(context.Background(), id); err != nil {
				if errors.Is(err, calendar.ErrEventNotFound) {
					return fmt.Errorf("event #%d: %w", id, err)
				}
				return fmt.Errorf("deleting event: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d\n", formatOK("Deleted"), id)
			return nil
		},
	}
}

// spanText formats an event's days as a date or an inclusive range.
func spanText(e *calendar.Event) string {
	start, end := dateutil.FormatDate(e.Start), dateutil.FormatDate(e.End)
	if start == end {
		return start
	}
	return start + ".." + end
}
