package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/slotpick/internal/calendar"
	"github.com/javiermolinar/slotpick/internal/config"
	"github.com/javiermolinar/slotpick/internal/dateutil"
	"github.com/javiermolinar/slotpick/internal/tui/commands"
)

// memRepo keeps events in memory.
type memRepo struct {
	events []*calendar.Event
	nextID int64
}

func (r *memRepo) CreateEvent(ctx context.Context, e *calendar.Event) error {
	r.nextID++
	e.ID = r.nextID
	r.events = append(r.events, e)
	return nil
}

func (r *memRepo) GetEvent(ctx context.Context, id int64) (*calendar.Event, error) {
	for _, e := range r.events {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, calendar.ErrEventNotFound
}

func (r *memRepo) ListEventsByDateRange(ctx context.Context, start, end time.Time) ([]*calendar.Event, error) {
	var out []*calendar.Event
	for _, e := range r.events {
		if e.Overlaps(start, end) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memRepo) DeleteEvent(ctx context.Context, id int64) error {
	for i, e := range r.events {
		if e.ID == id {
			r.events = append(r.events[:i], r.events[i+1:]...)
			return nil
		}
	}
	return calendar.ErrEventNotFound
}

func (r *memRepo) Close() error { return nil }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// fixedNow is Wednesday 2025-03-12.
func fixedNow() time.Time {
	return time.Date(2025, 3, 12, 10, 0, 0, 0, time.Local)
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Storage.DBPath = ""
	return cfg
}

// newTestModel returns a sized model without a zone manager, so the
// controllers measure the layout boxes directly.
func newTestModel(t *testing.T, repo calendar.Repository, cfg *config.Config, opts ...ModelOption) Model {
	t.Helper()
	if cfg == nil {
		cfg = testConfig(t)
	}
	opts = append([]ModelOption{WithNow(fixedNow)}, opts...)
	m := *New(repo, cfg, opts...)
	return update(t, m, tea.WindowSizeMsg{Width: 70, Height: 40})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model
}

func updateCmd(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease}
}

func drag(t *testing.T, m Model, from, to [2]int) Model {
	t.Helper()
	m = update(t, m, press(from[0], from[1]))
	m = update(t, m, motion(to[0], to[1]))
	return update(t, m, release(to[0], to[1]))
}

func click(t *testing.T, m Model, x, y int) Model {
	t.Helper()
	m = update(t, m, press(x, y))
	return update(t, m, release(x, y))
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	return update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func loaded(t *testing.T, m Model, events ...*calendar.Event) Model {
	t.Helper()
	start, end := m.view.Range(m.date, m.weekStart)
	return update(t, m, commands.EventsLoadedMsg{Start: start, End: end, Events: events})
}

func mustEvent(t *testing.T, title string, start, end time.Time) *calendar.Event {
	t.Helper()
	e, err := calendar.NewEvent(title, start, end)
	if err != nil {
		t.Fatalf("NewEvent: %v", err)
	}
	return e
}

func assertSlots(t *testing.T, m Model, start, end time.Time) {
	t.Helper()
	if m.mode != ModePrompt {
		t.Fatalf("mode = %s, want prompt", m.mode)
	}
	if m.pending == nil {
		t.Fatal("pending selection is nil")
	}
	if got, want := dateutil.FormatDate(m.pending.Start), dateutil.FormatDate(start); got != want {
		t.Errorf("start = %s, want %s", got, want)
	}
	if got, want := dateutil.FormatDate(m.pending.End), dateutil.FormatDate(end); got != want {
		t.Errorf("end = %s, want %s", got, want)
	}
}

func groupCfg(value, desc string) config.GroupConfig {
	return config.GroupConfig{Value: value, Description: desc}
}

func sizeMsg(w, h int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: w, Height: h}
}
