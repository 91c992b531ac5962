// Package tui provides the terminal user interface for slotpick.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/javiermolinar/slotpick/internal/calendar"
	"github.com/javiermolinar/slotpick/internal/config"
	"github.com/javiermolinar/slotpick/internal/dateutil"
	"github.com/javiermolinar/slotpick/internal/grid"
	"github.com/javiermolinar/slotpick/internal/selection"
	"github.com/javiermolinar/slotpick/internal/tui/commands"
	"github.com/javiermolinar/slotpick/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModePrompt      // naming a completed selection
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModePrompt:
		return "prompt"
	default:
		return "unknown"
	}
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	repo   calendar.Repository
	config *config.Config

	styles *Styles

	// bubblezone tracks where marked elements were drawn; nil disables
	// live bounds and the layout boxes are used directly.
	zones      *zone.Manager
	zonePrefix string

	// Calendar state
	view       calendar.View
	date       time.Time
	weekStart  time.Weekday
	rtl        bool
	selectable grid.Selectable
	groups     []grid.Group
	opts       selection.Options
	events     []*calendar.Event
	now        func() time.Time

	// Selection
	layout        Layout
	host          *selectionHost
	gen           int
	pending       *grid.SlotsInfo // selection waiting for a title
	lastSlots     *grid.SlotsInfo
	lastCreatedID int64

	mode   Mode
	prompt textinput.Model

	width  int
	height int

	// Messages
	statusMsg  string
	statusTime time.Time

	err error
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithZones measures rendered elements through z.
func WithZones(z *zone.Manager) ModelOption {
	return func(m *Model) {
		m.zones = z
		if z != nil {
			m.zonePrefix = z.NewPrefix()
		}
	}
}

// WithNow overrides the clock used for "today".
func WithNow(now func() time.Time) ModelOption {
	return func(m *Model) {
		m.now = now
		m.date = dateutil.TruncateToDay(now())
	}
}

// WithView overrides the configured view.
func WithView(v calendar.View) ModelOption {
	return func(m *Model) { m.view = v }
}

// WithRTL overrides the configured column direction.
func WithRTL(rtl bool) ModelOption {
	return func(m *Model) { m.rtl = rtl }
}

// New creates a new TUI model.
func New(repo calendar.Repository, cfg *config.Config, opts ...ModelOption) *Model {
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("mocha")
	}
	styles := NewStyles(t)

	ti := textinput.New()
	ti.Placeholder = "Title"
	ti.CharLimit = 256
	ti.Prompt = "› "
	ti.TextStyle = styles.PromptStyle
	ti.PromptStyle = styles.PromptStyle

	selOpts := selection.DefaultOptions()
	selOpts.ClickTolerance = cfg.Calendar.ClickTolerance

	m := &Model{
		repo:       repo,
		config:     cfg,
		styles:     styles,
		view:       cfg.View(),
		date:       dateutil.TruncateToDay(time.Now()),
		weekStart:  cfg.WeekStart(),
		rtl:        cfg.Calendar.RTL,
		selectable: cfg.Selectable(),
		groups:     cfg.Groups(),
		opts:       selOpts,
		now:        time.Now,
		host:       newSelectionHost(),
		mode:       ModeNormal,
		prompt:     ti,
	}

	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Init loads the events of the first visible range.
func (m Model) Init() tea.Cmd {
	return m.loadEvents()
}

func (m Model) loadEvents() tea.Cmd {
	start, end := m.view.Range(m.date, m.weekStart)
	return commands.LoadEvents(m.repo, start, end)
}

// dates returns the days the current view shows.
func (m Model) dates() []time.Time {
	return m.view.Dates(m.date, m.weekStart)
}

// relayout rebuilds the layout for the current state and binds fresh
// controllers to it. Any gesture in flight is dropped.
func (m *Model) relayout() {
	m.gen++
	m.layout = buildLayout(layoutInput{
		view:   m.view,
		dates:  m.dates(),
		events: m.events,
		groups: m.groups,
		width:  m.width,
		height: m.height,
		rtl:    m.rtl,
	})
	m.host.rebuild(m.layout, m.hostConfig())
	LogLayout(m.layout)
}

func (m Model) hostConfig() hostConfig {
	return hostConfig{
		rtl:        m.rtl,
		selectable: m.selectable,
		opts:       m.opts,
		zones:      m.zones,
		ids:        m.zoneIDs(),
	}
}

func (m Model) zoneIDs() zoneIDs {
	return zoneIDs{prefix: m.zonePrefix, gen: m.gen}
}

func (m *Model) setMode(to Mode, reason string) {
	if m.mode == to {
		return
	}
	LogModeChange(m.mode, to, reason)
	m.mode = to
}

func (m Model) today() time.Time {
	return dateutil.TruncateToDay(m.now())
}

// Run starts the TUI. When repo is nil the configured database is opened
// and closed on exit.
func Run(repo calendar.Repository, cfg *config.Config, debug bool, opts ...ModelOption) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	if repo == nil {
		opened, err := openRepo(cfg.Storage.DBPath)
		if err != nil {
			return err
		}
		defer func() { _ = opened.Close() }()
		repo = opened
	}

	zones := zone.New()
	defer zones.Close()

	model := New(repo, cfg, append([]ModelOption{WithZones(zones)}, opts...)...)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
