package selection

import (
	"reflect"
	"testing"

	"github.com/javiermolinar/slotpick/internal/geometry"
)

var testContainer = geometry.Box{Top: 0, Left: 0, Right: 100, Bottom: 20}

// recorder captures the events an engine emits, in order.
type recorder struct {
	events []string
	boxes  []geometry.DragBox
	clicks []geometry.Point
	veto   bool
}

func (r *recorder) handlers() Handlers {
	return Handlers{
		MouseDown: func(geometry.Point) bool {
			r.events = append(r.events, "mousedown")
			return !r.veto
		},
		SelectStart: func(box geometry.DragBox) {
			r.events = append(r.events, "selectStart")
		},
		Selecting: func(box geometry.DragBox) {
			r.events = append(r.events, "selecting")
			r.boxes = append(r.boxes, box)
		},
		Click: func(p geometry.Point) {
			r.events = append(r.events, "click")
			r.clicks = append(r.clicks, p)
		},
		Select: func(box geometry.DragBox) {
			r.events = append(r.events, "select")
			r.boxes = append(r.boxes, box)
		},
		Reset: func() {
			r.events = append(r.events, "reset")
		},
	}
}

func newTestEngine(t *testing.T, opts Options) (*Engine, *Hub, *recorder) {
	t.Helper()
	hub := NewHub()
	e := New(geometry.Fixed(testContainer), opts)
	rec := &recorder{}
	e.On(rec.handlers())
	e.Attach(hub)
	t.Cleanup(e.Teardown)
	return e, hub, rec
}

func dispatch(hub *Hub, samples ...Pointer) {
	for _, p := range samples {
		hub.Dispatch(p)
	}
}

func TestEngine_Click(t *testing.T) {
	e, hub, rec := newTestEngine(t, DefaultOptions())

	dispatch(hub, Down(65, 5), Up(65, 5))

	want := []string{"mousedown", "click"}
	if !reflect.DeepEqual(rec.events, want) {
		t.Fatalf("events = %v, want %v", rec.events, want)
	}
	if rec.clicks[0] != (geometry.Point{X: 65, Y: 5}) {
		t.Errorf("click point = %+v, want (65,5)", rec.clicks[0])
	}
	if e.State() != StateIdle {
		t.Errorf("state = %v, want idle", e.State())
	}
}

func TestEngine_DragOrder(t *testing.T) {
	e, hub, rec := newTestEngine(t, DefaultOptions())

	dispatch(hub, Down(5, 5))
	if e.State() != StatePressed {
		t.Fatalf("state after down = %v, want pressed", e.State())
	}
	dispatch(hub, Move(15, 5))
	if e.State() != StateDragging {
		t.Fatalf("state after move = %v, want dragging", e.State())
	}
	dispatch(hub, Move(25, 6), Up(25, 6))

	want := []string{"mousedown", "selectStart", "selecting", "selecting", "select"}
	if !reflect.DeepEqual(rec.events, want) {
		t.Fatalf("events = %v, want %v", rec.events, want)
	}

	last := rec.boxes[len(rec.boxes)-1]
	wantBox := geometry.Box{Top: 5, Left: 5, Right: 26, Bottom: 7}
	if last.Box != wantBox {
		t.Errorf("select box = %+v, want %+v", last.Box, wantBox)
	}
	if last.Origin != (geometry.Point{X: 5, Y: 5}) || last.Current != (geometry.Point{X: 25, Y: 6}) {
		t.Errorf("select points = %+v -> %+v", last.Origin, last.Current)
	}
}

func TestEngine_RightToLeftDrag(t *testing.T) {
	_, hub, rec := newTestEngine(t, DefaultOptions())

	dispatch(hub, Down(40, 2), Move(10, 2), Up(10, 2))

	last := rec.boxes[len(rec.boxes)-1]
	if last.Left != 10 || last.Right != 41 {
		t.Errorf("box = %+v, want left 10 right 41", last.Box)
	}
}

func TestEngine_ClickTolerance(t *testing.T) {
	_, hub, rec := newTestEngine(t, Options{ClickTolerance: 2})

	dispatch(hub, Down(10, 10), Move(12, 9), Up(12, 9))

	want := []string{"mousedown", "click"}
	if !reflect.DeepEqual(rec.events, want) {
		t.Fatalf("events = %v, want %v", rec.events, want)
	}
}

func TestEngine_MouseDownVeto(t *testing.T) {
	e, hub, rec := newTestEngine(t, DefaultOptions())
	rec.veto = true

	dispatch(hub, Down(5, 5), Move(30, 5), Move(50, 8), Up(50, 8))

	want := []string{"mousedown"}
	if !reflect.DeepEqual(rec.events, want) {
		t.Fatalf("events = %v, want %v", rec.events, want)
	}
	if e.State() != StateIdle {
		t.Errorf("state = %v, want idle", e.State())
	}
	if _, ok := e.Box(); ok {
		t.Error("vetoed gesture left a drag box")
	}
}

func TestEngine_PressOutsideContainer(t *testing.T) {
	_, hub, rec := newTestEngine(t, DefaultOptions())

	dispatch(hub, Down(150, 5), Move(20, 5), Up(20, 5))

	if len(rec.events) != 0 {
		t.Errorf("events = %v, want none", rec.events)
	}
}

func TestEngine_ReleaseOutsideContainer(t *testing.T) {
	_, hub, rec := newTestEngine(t, Options{ClickTolerance: 200})

	dispatch(hub, Down(99, 19), Up(150, 19))

	want := []string{"mousedown", "reset"}
	if !reflect.DeepEqual(rec.events, want) {
		t.Fatalf("events = %v, want %v", rec.events, want)
	}
}

func TestEngine_SecondaryButtonIgnored(t *testing.T) {
	_, hub, rec := newTestEngine(t, DefaultOptions())

	p := Down(5, 5)
	p.Button = ButtonOther
	dispatch(hub, p, Up(5, 5))

	if len(rec.events) != 0 {
		t.Errorf("events = %v, want none", rec.events)
	}
}

func TestEngine_NoContainer(t *testing.T) {
	hub := NewHub()
	e := New(nil, DefaultOptions())
	rec := &recorder{}
	e.On(rec.handlers())
	e.Attach(hub)
	defer e.Teardown()

	dispatch(hub, Down(500, 500), Move(510, 500), Up(510, 500))

	want := []string{"mousedown", "selectStart", "selecting", "select"}
	if !reflect.DeepEqual(rec.events, want) {
		t.Fatalf("events = %v, want %v", rec.events, want)
	}
	if e.IsSelected(nil) {
		t.Error("IsSelected(nil) = true, want false")
	}
}

func TestEngine_IsSelected(t *testing.T) {
	e, hub, _ := newTestEngine(t, DefaultOptions())

	left := geometry.Fixed(geometry.Box{Top: 0, Left: 0, Right: 50, Bottom: 20})
	right := geometry.Fixed(geometry.Box{Top: 0, Left: 50, Right: 100, Bottom: 20})

	if e.IsSelected(left) {
		t.Fatal("IsSelected before any gesture = true")
	}

	dispatch(hub, Down(10, 5), Move(30, 5))
	if !e.IsSelected(left) {
		t.Error("left half not selected while dragging over it")
	}
	if e.IsSelected(right) {
		t.Error("right half selected although the drag stops at column 30")
	}

	dispatch(hub, Move(49, 5), Up(49, 5))
	if !e.IsSelected(left) {
		t.Error("last drag box forgotten after release")
	}
	if e.IsSelected(right) {
		t.Error("box ending at the edge column collides with the next box")
	}

	dispatch(hub, Down(10, 5))
	if e.IsSelected(left) {
		t.Error("new press kept the previous drag box")
	}
}

func TestEngine_TeardownIdempotent(t *testing.T) {
	e, hub, rec := newTestEngine(t, DefaultOptions())

	if hub.Len() != 1 || !e.Attached() {
		t.Fatalf("hub listeners = %d attached = %v, want 1 true", hub.Len(), e.Attached())
	}

	dispatch(hub, Down(5, 5), Move(10, 5))
	e.Teardown()
	e.Teardown()

	if hub.Len() != 0 || e.Attached() {
		t.Fatalf("after teardown: listeners = %d attached = %v", hub.Len(), e.Attached())
	}
	if e.State() != StateIdle {
		t.Errorf("state = %v, want idle", e.State())
	}

	before := len(rec.events)
	dispatch(hub, Move(20, 5), Up(20, 5), Down(1, 1), Up(1, 1))
	if len(rec.events) != before {
		t.Errorf("events after teardown: %v", rec.events[before:])
	}
}

func TestEngine_Reattach(t *testing.T) {
	e, hub, _ := newTestEngine(t, DefaultOptions())
	other := NewHub()

	e.Attach(other)
	if hub.Len() != 0 || other.Len() != 1 {
		t.Errorf("listeners: old=%d new=%d, want 0 and 1", hub.Len(), other.Len())
	}
}

func TestEngine_PressWithoutRelease(t *testing.T) {
	_, hub, rec := newTestEngine(t, DefaultOptions())

	dispatch(hub, Down(5, 5), Move(15, 5), Down(50, 5), Up(50, 5))

	want := []string{"mousedown", "selectStart", "selecting", "mousedown", "click"}
	if !reflect.DeepEqual(rec.events, want) {
		t.Fatalf("events = %v, want %v", rec.events, want)
	}
}
