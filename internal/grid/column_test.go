package grid

import (
	"reflect"
	"testing"

	"github.com/javiermolinar/slotpick/internal/geometry"
	"github.com/javiermolinar/slotpick/internal/selection"
)

var (
	bandA     = geometry.Box{Top: 0, Left: 0, Right: 70, Bottom: 10}
	bandB     = geometry.Box{Top: 10, Left: 0, Right: 70, Bottom: 20}
	timeGrid  = geometry.Box{Top: 0, Left: 0, Right: 70, Bottom: 20}
	weekCount = 7
)

func newColumn(t *testing.T, hub *selection.Hub, node geometry.Box, cfg ColumnConfig) (*ColumnController, *slotSink) {
	t.Helper()
	sink := &slotSink{}
	cfg.Node = geometry.Fixed(node)
	if cfg.Container == nil {
		cfg.Container = geometry.Fixed(timeGrid)
	}
	if cfg.Columns == 0 {
		cfg.Columns = weekCount
	}
	if cfg.Selectable == SelectableOff {
		cfg.Selectable = SelectableOn
	}
	cfg.Options = selection.DefaultOptions()
	cfg.OnSelectSlot = sink.add

	c := NewColumnController(cfg)
	c.Attach(hub)
	t.Cleanup(c.Teardown)
	return c, sink
}

func TestColumnController_SelectedDays(t *testing.T) {
	hub := selection.NewHub()
	c, sink := newColumn(t, hub, bandA, ColumnConfig{Group: "A"})

	send(hub, selection.Down(15, 2), selection.Move(45, 5))

	st := c.State()
	wantDays := map[int]bool{1: true, 2: true, 3: true, 4: true}
	if !reflect.DeepEqual(st.SelectedDays, wantDays) {
		t.Fatalf("SelectedDays = %v, want %v", st.SelectedDays, wantDays)
	}
	if !st.Covers(2) || st.Covers(0) || st.Covers(5) {
		t.Errorf("Covers mismatch for %+v", st)
	}
	if len(sink.got) != 0 {
		t.Fatalf("notified while selecting: %+v", sink.got)
	}

	send(hub, selection.Up(45, 5))

	want := []SlotInfo{{Start: 1, End: 4, Action: ActionSelect, IsStart: true, IsCurrent: true, Group: "A"}}
	if !reflect.DeepEqual(sink.got, want) {
		t.Errorf("slots = %+v, want %+v", sink.got, want)
	}
	if c.State().Selecting || c.State().SelectedDays != nil {
		t.Errorf("state after select = %+v", c.State())
	}
}

func TestColumnController_RTL(t *testing.T) {
	hub := selection.NewHub()
	_, sink := newColumn(t, hub, bandA, ColumnConfig{RTL: true})

	send(hub, selection.Down(15, 2), selection.Move(45, 5), selection.Up(45, 5))

	if len(sink.got) != 1 || sink.got[0].Start != 2 || sink.got[0].End != 5 {
		t.Errorf("slots = %+v, want one [2,5]", sink.got)
	}
}

func TestColumnController_Click(t *testing.T) {
	hub := selection.NewHub()
	_, sink := newColumn(t, hub, bandA, ColumnConfig{})

	send(hub, selection.Down(65, 3), selection.Up(65, 3))

	want := []SlotInfo{{Start: 6, End: 6, Action: ActionClick, IsStart: true, IsCurrent: true}}
	if !reflect.DeepEqual(sink.got, want) {
		t.Errorf("slots = %+v, want %+v", sink.got, want)
	}
}

func TestColumnController_UnevenColumnsAgree(t *testing.T) {
	narrow := geometry.Box{Top: 0, Left: 0, Right: 10, Bottom: 10}

	for x := 0; x < narrow.Right; x++ {
		hub := selection.NewHub()
		_, sink := newColumn(t, hub, narrow, ColumnConfig{Columns: 3})

		send(hub, selection.Down(x, 2), selection.Up(x, 2))
		send(hub, selection.Down(x, 2), selection.Move(x, 3), selection.Up(x, 3))

		if len(sink.got) != 2 {
			t.Fatalf("x %d: slots = %+v, want a click and a select", x, sink.got)
		}
		click, drag := sink.got[0], sink.got[1]
		if click.Start != drag.Start || drag.Start != drag.End {
			t.Errorf("x %d: click picked %d, drag picked %d..%d", x, click.Start, drag.Start, drag.End)
		}
	}
}

func TestColumnController_Groups(t *testing.T) {
	hub := selection.NewHub()
	a, sinkA := newColumn(t, hub, bandA, ColumnConfig{Group: "A"})
	b, sinkB := newColumn(t, hub, bandB, ColumnConfig{Group: "B"})

	send(hub, selection.Down(5, 2), selection.Move(25, 5))
	if len(b.State().SelectedDays) != 0 {
		t.Errorf("group B highlighted %v", b.State().SelectedDays)
	}
	if len(a.State().SelectedDays) != 3 {
		t.Errorf("group A highlighted %v, want 3 days", a.State().SelectedDays)
	}
	send(hub, selection.Up(25, 5))

	if len(sinkA.got) != 1 || sinkA.got[0].Group != "A" || sinkA.got[0].Start != 0 || sinkA.got[0].End != 2 {
		t.Errorf("group A slots = %+v", sinkA.got)
	}
	if len(sinkB.got) != 0 {
		t.Errorf("group B slots = %+v, want none", sinkB.got)
	}

	// A click inside B only reaches B.
	send(hub, selection.Down(35, 15), selection.Up(35, 15))
	if len(sinkA.got) != 1 || len(sinkB.got) != 1 || sinkB.got[0].Start != 3 {
		t.Errorf("after click: A=%+v B=%+v", sinkA.got, sinkB.got)
	}
}

func TestColumnController_IgnoreEvents(t *testing.T) {
	hub := selection.NewHub()
	events := EventHitFunc(func(p geometry.Point) bool { return p.X >= 20 && p.X < 30 })
	c, sink := newColumn(t, hub, bandA, ColumnConfig{Selectable: SelectableIgnoreEvents, Events: events})

	send(hub, selection.Down(25, 4), selection.Move(55, 4))
	if c.State().Selecting {
		t.Errorf("vetoed press started selecting")
	}
	send(hub, selection.Up(55, 4))
	if len(sink.got) != 0 {
		t.Errorf("vetoed gesture notified: %+v", sink.got)
	}
}

func TestColumnController_TeardownAndToggle(t *testing.T) {
	hub := selection.NewHub()
	c, sink := newColumn(t, hub, bandA, ColumnConfig{})

	c.SetSelectable(SelectableOff)
	c.Teardown()
	if hub.Len() != 0 || c.Attached() {
		t.Fatalf("listeners = %d after teardown", hub.Len())
	}
	send(hub, selection.Down(5, 2), selection.Up(5, 2))
	if len(sink.got) != 0 {
		t.Fatalf("disabled grid notified")
	}

	c.SetSelectable(SelectableOn)
	c.SetColumns(2)
	send(hub, selection.Down(50, 2), selection.Up(50, 2))
	if len(sink.got) != 1 || sink.got[0].Start != 1 {
		t.Errorf("slots after re-enable = %+v, want column 1 of 2", sink.got)
	}
}
