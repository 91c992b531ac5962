package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/slotpick/internal/calendar"
	"github.com/javiermolinar/slotpick/internal/dateutil"
	"github.com/javiermolinar/slotpick/internal/geometry"
	"github.com/javiermolinar/slotpick/internal/grid"
	"github.com/javiermolinar/slotpick/internal/selection"
)

// resolveOpts describes a drag across a single row of cells.
type resolveOpts struct {
	cols      int
	width     int
	from      int
	to        int
	rtl       bool
	tolerance int
}

func (a *App) resolveCmd() *cobra.Command {
	var (
		opts resolveOpts
		week string
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a drag across a row of cells",
		Long: `Feed a press at --from, a move and a release at --to through the
selection engine for a one-line row of --cols cells spread over --width
columns, and print the cells it selects. With --week the cells are mapped
onto the days of that week.`,
		Example: `  slotpick resolve --cols 7 --width 70 --from 15 --to 35
  slotpick resolve --cols 7 --width 70 --from 5 --to 5 --rtl --week 2025-03-12`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.cols <= 0 || opts.width < opts.cols {
				return fmt.Errorf("need --cols > 0 and --width >= --cols")
			}
			info, ok := resolveDrag(opts)
			w := cmd.OutOrStdout()
			if !ok {
				fmt.Fprintln(w, "No selection")
				return nil
			}
			printSlot(w, info)

			if week == "" {
				return nil
			}
			date, err := dateutil.ParseRelativeDate(week, time.Now())
			if err != nil {
				return fmt.Errorf("--week: %w", err)
			}
			dates := calendar.ViewWeek.Dates(date, a.config.WeekStart())
			slots, ok := grid.AllDaySlots(dates, info)
			if !ok {
				return fmt.Errorf("cells %d..%d fall outside the %d days of the week", info.Start, info.End, len(dates))
			}
			fmt.Fprintf(w, "dates:   %s\n", formatRange(slotsSpan(slots)))
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.cols, "cols", 7, "Number of cells in the row")
	cmd.Flags().IntVar(&opts.width, "width", 70, "Row width in terminal columns")
	cmd.Flags().IntVar(&opts.from, "from", 0, "Column of the press")
	cmd.Flags().IntVar(&opts.to, "to", 0, "Column of the release")
	cmd.Flags().BoolVar(&opts.rtl, "rtl", false, "Number cells right to left")
	cmd.Flags().IntVar(&opts.tolerance, "click-tolerance", 0, "Movement that still counts as a click")
	cmd.Flags().StringVar(&week, "week", "", "Map the cells onto the week containing this date")

	return cmd
}

// resolveDrag runs the gesture through a row controller and returns what it
// selected.
func resolveDrag(o resolveOpts) (grid.SlotInfo, bool) {
	row := geometry.Fixed(geometry.Box{Top: 0, Left: 0, Right: o.width, Bottom: 1})
	selOpts := selection.DefaultOptions()
	selOpts.ClickTolerance = o.tolerance

	var (
		got grid.SlotInfo
		ok  bool
	)
	hub := selection.NewHub()
	ctrl := grid.NewRowController(grid.RowConfig{
		Node:       row,
		Container:  row,
		Columns:    o.cols,
		RTL:        o.rtl,
		Selectable: grid.SelectableOn,
		Options:    selOpts,
		OnSelectSlot: func(info grid.SlotInfo) {
			got, ok = info, true
		},
	})
	ctrl.Attach(hub)
	defer ctrl.Teardown()

	hub.Dispatch(selection.Down(o.from, 0))
	if o.to != o.from {
		hub.Dispatch(selection.Move(o.to, 0))
	}
	hub.Dispatch(selection.Up(o.to, 0))
	return got, ok
}

func printSlot(w io.Writer, info grid.SlotInfo) {
	fmt.Fprintf(w, "cells:   %s\n", formatRange(fmt.Sprintf("%d..%d", info.Start, info.End)))
	fmt.Fprintf(w, "action:  %s\n", info.Action)
	fmt.Fprintf(w, "start:   %t\n", info.IsStart)
	fmt.Fprintf(w, "current: %t\n", info.IsCurrent)
}

func slotsSpan(s grid.SlotsInfo) string {
	start, end := dateutil.FormatDate(s.Start), dateutil.FormatDate(s.End)
	if start == end {
		return start
	}
	return start + ".." + end
}
