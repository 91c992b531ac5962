package integration

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/javiermolinar/slotpick/internal/calendar"
	"github.com/javiermolinar/slotpick/internal/db"
	"github.com/javiermolinar/slotpick/internal/geometry"
	"github.com/javiermolinar/slotpick/internal/grid"
	"github.com/javiermolinar/slotpick/internal/selection"
)

// openRepo creates a fresh repository for each test with automatic cleanup.
func openRepo(t *testing.T) *db.SQLite {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")
	repo, err := db.New(dbPath)
	if err != nil {
		t.Fatalf("failed to open repo: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

// mustParseDate parses a date string as local midnight or fails the test.
func mustParseDate(t *testing.T, s string) time.Time {
	t.Helper()
	date, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		t.Fatalf("failed to parse date %q: %v", s, err)
	}
	return date
}

// createEvent is a helper to build and insert an event.
func createEvent(t *testing.T, repo *db.SQLite, title, group, start, end string) *calendar.Event {
	t.Helper()
	e, err := calendar.NewEvent(title, mustParseDate(t, start), mustParseDate(t, end))
	if err != nil {
		t.Fatalf("failed to build event: %v", err)
	}
	e.Group = group
	if err := repo.CreateEvent(context.Background(), e); err != nil {
		t.Fatalf("failed to insert event: %v", err)
	}
	return e
}

// weekRow wires a row controller for one week of 10-column cells to a hub
// and collects what it selects.
type weekRow struct {
	hub   *selection.Hub
	ctrl  *grid.RowController
	dates []time.Time
	got   []grid.SlotInfo
}

func newWeekRow(t *testing.T, week time.Time, rtl bool, selectable grid.Selectable, events grid.EventHitTester) *weekRow {
	t.Helper()
	box := geometry.Box{Top: 0, Left: 0, Right: 70, Bottom: 5}
	r := &weekRow{
		hub:   selection.NewHub(),
		dates: calendar.ViewWeek.Dates(week, time.Sunday),
	}
	r.ctrl = grid.NewRowController(grid.RowConfig{
		Node:       geometry.Fixed(box),
		Container:  geometry.Fixed(box),
		Columns:    7,
		RTL:        rtl,
		Selectable: selectable,
		Events:     events,
		Options:    selection.DefaultOptions(),
		OnSelectSlot: func(info grid.SlotInfo) {
			r.got = append(r.got, info)
		},
	})
	r.ctrl.Attach(r.hub)
	t.Cleanup(r.ctrl.Teardown)
	return r
}

func (r *weekRow) send(samples ...selection.Pointer) {
	for _, p := range samples {
		r.hub.Dispatch(p)
	}
}

func TestCreateEvent(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	e := createEvent(t, repo, "Integration offsite", "", "2025-01-20", "2025-01-22")
	if e.ID == 0 {
		t.Error("expected event ID to be set after insert")
	}

	got, err := repo.GetEvent(ctx, e.ID)
	if err != nil {
		t.Fatalf("failed to get event: %v", err)
	}
	if got.Title != "Integration offsite" {
		t.Errorf("Title: got %q, want %q", got.Title, "Integration offsite")
	}
	if !got.Start.Equal(mustParseDate(t, "2025-01-20")) || !got.End.Equal(mustParseDate(t, "2025-01-22")) {
		t.Errorf("span: got %v..%v", got.Start, got.End)
	}
	if got.Days() != 3 {
		t.Errorf("Days: got %d, want 3", got.Days())
	}
}

func TestNewEvent_ValidationErrors(t *testing.T) {
	day := mustParseDate(t, "2025-01-20")
	tests := []struct {
		name    string
		title   string
		start   time.Time
		end     time.Time
		wantErr error
	}{
		{"empty title", "", day, day, calendar.ErrEmptyTitle},
		{"blank title", "   ", day, day, calendar.ErrEmptyTitle},
		{"end before start", "x", day, day.AddDate(0, 0, -1), calendar.ErrEndBeforeStart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := calendar.NewEvent(tt.title, tt.start, tt.end)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetAndDeleteEvent_NotFound(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	if _, err := repo.GetEvent(ctx, 99999); !errors.Is(err, calendar.ErrEventNotFound) {
		t.Errorf("GetEvent: got %v, want ErrEventNotFound", err)
	}
	if err := repo.DeleteEvent(ctx, 99999); !errors.Is(err, calendar.ErrEventNotFound) {
		t.Errorf("DeleteEvent: got %v, want ErrEventNotFound", err)
	}
}

func TestListEventsByDateRange_MultiDay(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	createEvent(t, repo, "Before", "", "2025-01-10", "2025-01-12")
	createEvent(t, repo, "Straddles start", "", "2025-01-18", "2025-01-20")
	createEvent(t, repo, "Inside", "room-a", "2025-01-21", "2025-01-21")
	createEvent(t, repo, "Straddles end", "", "2025-01-25", "2025-01-28")
	createEvent(t, repo, "After", "", "2025-02-01", "2025-02-02")

	start, end := calendar.ViewWeek.Range(mustParseDate(t, "2025-01-22"), time.Sunday)
	events, err := repo.ListEventsByDateRange(ctx, start, end)
	if err != nil {
		t.Fatalf("failed to list events: %v", err)
	}

	want := []string{"Straddles start", "Inside", "Straddles end"}
	if len(events) != len(want) {
		t.Fatalf("got %d events, want %d", len(events), len(want))
	}
	for i, title := range want {
		if events[i].Title != title {
			t.Errorf("event %d: got %q, want %q", i, events[i].Title, title)
		}
	}
}

// TestSelectionToStorage drags across a week row, maps the cells to dates
// and books the result.
func TestSelectionToStorage(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()
	row := newWeekRow(t, mustParseDate(t, "2025-03-12"), false, grid.SelectableOn, nil)

	row.send(selection.Down(15, 2), selection.Move(25, 2), selection.Move(45, 3), selection.Up(45, 3))
	if len(row.got) != 1 {
		t.Fatalf("got %d selections, want 1", len(row.got))
	}

	slots, ok := grid.AllDaySlots(row.dates, row.got[0])
	if !ok {
		t.Fatalf("selection %+v does not map onto the week", row.got[0])
	}
	e, err := calendar.EventFromSlots("Sprint", slots)
	if err != nil {
		t.Fatalf("EventFromSlots: %v", err)
	}
	if err := repo.CreateEvent(ctx, e); err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	got, err := repo.GetEvent(ctx, e.ID)
	if err != nil {
		t.Fatalf("GetEvent: %v", err)
	}
	if !got.Start.Equal(mustParseDate(t, "2025-03-10")) || !got.End.Equal(mustParseDate(t, "2025-03-13")) {
		t.Errorf("stored span %v..%v, want 2025-03-10..2025-03-13", got.Start, got.End)
	}
	if got.Action != grid.ActionSelect {
		t.Errorf("Action: got %q, want select", got.Action)
	}
}

func TestSelectionRTLClick(t *testing.T) {
	row := newWeekRow(t, mustParseDate(t, "2025-03-12"), true, grid.SelectableOn, nil)
	row.send(selection.Down(5, 1), selection.Up(5, 1))

	if len(row.got) != 1 {
		t.Fatalf("got %d selections, want 1", len(row.got))
	}
	slots, _ := grid.AllDaySlots(row.dates, row.got[0])
	if slots.Action != grid.ActionClick || !slots.Start.Equal(mustParseDate(t, "2025-03-15")) {
		t.Errorf("got %s on %v, want click on 2025-03-15", slots.Action, slots.Start)
	}
}

func TestSelectionIgnoresEvents(t *testing.T) {
	repo := openRepo(t)
	createEvent(t, repo, "Busy", "", "2025-03-10", "2025-03-10")

	// The stored event is drawn on Monday's first line.
	busy := geometry.Box{Top: 0, Left: 10, Right: 20, Bottom: 1}
	events := grid.EventHitFunc(busy.HasCell)
	row := newWeekRow(t, mustParseDate(t, "2025-03-12"), false, grid.SelectableIgnoreEvents, events)

	row.send(selection.Down(15, 0), selection.Move(35, 0), selection.Up(35, 0))
	if len(row.got) != 0 {
		t.Fatalf("press on an event started a selection: %+v", row.got)
	}

	row.send(selection.Down(15, 2), selection.Move(35, 2), selection.Up(35, 2))
	if len(row.got) != 1 || row.got[0].Start != 1 || row.got[0].End != 3 {
		t.Errorf("got %+v, want cells 1..3", row.got)
	}
}

func TestFullWorkflow(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	// Book two ranges through the selection pipeline, then one directly.
	row := newWeekRow(t, mustParseDate(t, "2025-03-12"), false, grid.SelectableOn, nil)
	row.send(selection.Down(5, 1), selection.Move(15, 1), selection.Up(15, 1))
	row.send(selection.Down(65, 1), selection.Up(65, 1))
	for i, info := range row.got {
		slots, ok := grid.AllDaySlots(row.dates, info)
		if !ok {
			t.Fatalf("selection %d does not map: %+v", i, info)
		}
		e, err := calendar.EventFromSlots("Booked", slots)
		if err != nil {
			t.Fatalf("EventFromSlots: %v", err)
		}
		if err := repo.CreateEvent(ctx, e); err != nil {
			t.Fatalf("CreateEvent: %v", err)
		}
	}
	createEvent(t, repo, "Direct", "room-a", "2025-03-12", "2025-03-12")

	start, end := calendar.ViewWeek.Range(mustParseDate(t, "2025-03-12"), time.Sunday)
	events, err := repo.ListEventsByDateRange(ctx, start, end)
	if err != nil {
		t.Fatalf("ListEventsByDateRange: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}

	bands := calendar.Bands([]grid.Group{{Value: "room-a", Description: "Room A"}}, events)
	if len(bands) != 2 || len(bands[0].Events) != 1 || len(bands[1].Events) != 2 {
		t.Errorf("bands: got %d, want room-a with 1 event and ungrouped with 2", len(bands))
	}

	if err := repo.DeleteEvent(ctx, events[0].ID); err != nil {
		t.Fatalf("DeleteEvent: %v", err)
	}
	events, err = repo.ListEventsByDateRange(ctx, start, end)
	if err != nil {
		t.Fatalf("ListEventsByDateRange: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("after delete got %d events, want 2", len(events))
	}
}
