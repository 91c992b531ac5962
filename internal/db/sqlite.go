// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/slotpick/internal/calendar"
	"github.com/javiermolinar/slotpick/internal/grid"
)

const dateLayout = "2006-01-02"

// SQLite implements calendar.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

var _ calendar.Repository = (*SQLite)(nil)

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// CreateEvent stores e and sets its ID.
func (s *SQLite) CreateEvent(ctx context.Context, e *calendar.Event) error {
	if strings.TrimSpace(e.Title) == "" {
		return calendar.ErrEmptyTitle
	}
	if e.End.Before(e.Start) {
		return calendar.ErrEndBeforeStart
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	if e.Action == "" {
		e.Action = grid.ActionSelect
	}

	query := `
		INSERT INTO events (title, group_value, start_date, end_date, all_day, action, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		e.Title,
		e.Group,
		e.Start.Format(dateLayout),
		e.End.Format(dateLayout),
		e.AllDay,
		string(e.Action),
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	e.ID = id

	return nil
}

const selectEvents = `
	SELECT id, title, group_value, start_date, end_date, all_day, action, created_at
	FROM events
`

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(row scanner) (*calendar.Event, error) {
	var (
		e                   calendar.Event
		start, end, created string
		action              string
	)
	if err := row.Scan(&e.ID, &e.Title, &e.Group, &start, &end, &e.AllDay, &action, &created); err != nil {
		return nil, err
	}

	var err error
	if e.Start, err = parseDate(start); err != nil {
		return nil, fmt.Errorf("parsing start date: %w", err)
	}
	if e.End, err = parseDate(end); err != nil {
		return nil, fmt.Errorf("parsing end date: %w", err)
	}
	if e.CreatedAt, err = parseDate(created); err != nil {
		return nil, fmt.Errorf("parsing created at: %w", err)
	}
	e.Action = grid.Action(action)

	return &e, nil
}

// GetEvent retrieves an event by ID.
func (s *SQLite) GetEvent(ctx context.Context, id int64) (*calendar.Event, error) {
	e, err := scanEvent(s.db.QueryRowContext(ctx, selectEvents+` WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("event %d: %w", id, calendar.ErrEventNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying event: %w", err)
	}
	return e, nil
}

// ListEventsByDateRange returns events sharing at least one day with
// start..end, ordered by start date.
func (s *SQLite) ListEventsByDateRange(ctx context.Context, start, end time.Time) ([]*calendar.Event, error) {
	query := selectEvents + `
		WHERE start_date <= ? AND end_date >= ?
		ORDER BY start_date, id
	`
	return s.queryEvents(ctx, query, end.Format(dateLayout), start.Format(dateLayout))
}

// ListAllEvents returns every stored event ordered by id.
func (s *SQLite) ListAllEvents(ctx context.Context) ([]*calendar.Event, error) {
	return s.queryEvents(ctx, selectEvents+` ORDER BY id`)
}

func (s *SQLite) queryEvents(ctx context.Context, query string, args ...any) ([]*calendar.Event, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var events []*calendar.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}

	return events, nil
}

func (s *SQLite) DeleteEvent(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting event: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("event %d: %w", id, calendar.ErrEventNotFound)
	}
	return nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// parseDate parses a date string in the formats SQLite may return.
// Date-only values (midnight) are parsed in the local timezone so they
// match dates the TUI derives from time.Now().
func parseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(dateLayout, s, time.Local); err == nil {
		return t, nil
	}

	// DATE columns can come back as "2006-01-02T00:00:00Z".
	if len(s) == 20 && strings.HasSuffix(s, "T00:00:00Z") {
		if t, err := time.ParseInLocation(dateLayout, s[:10], time.Local); err == nil {
			return t, nil
		}
	}

	for _, f := range []string{time.RFC3339, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %s", s)
}
