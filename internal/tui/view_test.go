package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/javiermolinar/slotpick/internal/calendar"
)

func asciiProfile(t *testing.T) {
	t.Helper()
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() {
		lipgloss.SetColorProfile(prev)
	})
}

func renderLines(t *testing.T, m Model) []string {
	t.Helper()
	lines := strings.Split(ansi.Strip(m.View()), "\n")
	if len(lines) != m.height {
		t.Fatalf("rendered %d lines, want %d", len(lines), m.height)
	}
	return lines
}

func TestView_Month(t *testing.T) {
	asciiProfile(t)
	m := newTestModel(t, nil, nil)
	m = loaded(t, m, mustEvent(t, "Offsite", day(2025, 3, 3), day(2025, 3, 4)))
	lines := renderLines(t, m)

	if !strings.Contains(lines[0], "March 2025") {
		t.Errorf("title = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], " Sun") || !strings.Contains(lines[1], " Sat") {
		t.Errorf("weekday header = %q", lines[1])
	}
	// Row 1 starts on Sunday Mar 2; its day numbers sit on line 8.
	if !strings.HasPrefix(lines[8], " 2 ") || !strings.Contains(lines[8], " 3 ") {
		t.Errorf("day numbers = %q", lines[8])
	}
	// The title is drawn once, on the first day of the event.
	if got := strings.Count(lines[9], "Offsite"); got != 1 {
		t.Errorf("event line = %q", lines[9])
	}
	for i, l := range lines {
		if w := ansi.StringWidth(l); w != m.width {
			t.Errorf("line %d width = %d, want %d", i, w, m.width)
		}
	}
}

func TestView_MonthRTL(t *testing.T) {
	asciiProfile(t)
	m := newTestModel(t, nil, nil, WithRTL(true))
	lines := renderLines(t, m)

	if !strings.HasPrefix(lines[1], " Sat") {
		t.Errorf("rtl header should start with Saturday: %q", lines[1])
	}
	if !strings.HasPrefix(lines[8], " 8 ") {
		t.Errorf("rtl row should start with the 8th: %q", lines[8])
	}
	if !strings.Contains(lines[0], "(rtl)") {
		t.Errorf("title = %q", lines[0])
	}
}

func TestView_WeekHasSeparator(t *testing.T) {
	asciiProfile(t)
	m := newTestModel(t, nil, nil, WithView(calendar.ViewWeek))
	lines := renderLines(t, m)

	if !strings.Contains(lines[0], "Mar 9 - Mar 15, 2025") {
		t.Errorf("title = %q", lines[0])
	}
	if !strings.Contains(lines[1], "Wed 12") {
		t.Errorf("header = %q", lines[1])
	}
	if !strings.HasPrefix(lines[3], "───") {
		t.Errorf("separator line = %q", lines[3])
	}
}

func TestView_GroupedLabels(t *testing.T) {
	asciiProfile(t)
	cfg := testConfig(t)
	cfg.Calendar.Groups = append(cfg.Calendar.Groups, groupCfg("room-a", "Room A"), groupCfg("room-b", ""))
	m := newTestModel(t, nil, cfg, WithView(calendar.ViewGroupedWeek))
	lines := renderLines(t, m)

	if !strings.Contains(lines[2], "Room A") {
		t.Errorf("first band label = %q", lines[2])
	}
	if !strings.Contains(lines[8], "room-b") {
		t.Errorf("second band label = %q", lines[8])
	}
}

func TestView_Agenda(t *testing.T) {
	asciiProfile(t)
	m := newTestModel(t, nil, nil, WithView(calendar.ViewAgenda))
	lines := renderLines(t, m)
	if !strings.Contains(strings.Join(lines, "\n"), "No events") {
		t.Error("expected empty agenda message")
	}

	m = loaded(t, m, mustEvent(t, "Offsite", day(2025, 3, 14), day(2025, 3, 15)))
	out := strings.Join(renderLines(t, m), "\n")
	for _, want := range []string{"Date", "Title", "Offsite", "2025-03-14 .. 2025-03-15"} {
		if !strings.Contains(out, want) {
			t.Errorf("agenda missing %q", want)
		}
	}
}

func TestView_PromptFooter(t *testing.T) {
	asciiProfile(t)
	m := newTestModel(t, nil, nil)
	m = drag(t, m, [2]int{15, 10}, [2]int{35, 10})
	lines := renderLines(t, m)

	if !strings.Contains(lines[len(lines)-2], "New event 2025-03-03..2025-03-05") {
		t.Errorf("prompt line = %q", lines[len(lines)-2])
	}
}

func TestView_SmallTerminal(t *testing.T) {
	m := *New(nil, testConfig(t), WithNow(fixedNow))
	if got := m.View(); got != "Loading..." {
		t.Errorf("unsized view = %q", got)
	}
	m = update(t, m, sizeMsg(20, 3))
	if got := m.View(); got != "Terminal too small" {
		t.Errorf("tiny view = %q", got)
	}
}
