// Package selection turns raw pointer samples into a small vocabulary of
// selection events, independent of any grid layout.
//
// An Engine is scoped to a container element. It tracks one gesture at a
// time through the states idle, pressed and dragging:
//
//	down (inside container, not vetoed)  idle     -> pressed
//	move past the click tolerance         pressed  -> dragging  (SelectStart, Selecting)
//	move                                  dragging -> dragging  (Selecting)
//	up                                    pressed  -> idle      (Click or Reset)
//	up                                    dragging -> idle      (Select)
//
// Engines receive samples through a Hub. Attach subscribes the engine and
// Teardown releases the subscription.
package selection

import (
	"fmt"

	"github.com/javiermolinar/slotpick/internal/geometry"
)

// State is the gesture state of an Engine.
type State int

const (
	StateIdle State = iota
	StatePressed
	StateDragging
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePressed:
		return "pressed"
	case StateDragging:
		return "dragging"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Handlers holds one callback per event kind. Nil callbacks are skipped.
type Handlers struct {
	// MouseDown runs on every press inside the container. Returning false
	// vetoes the gesture: the engine stays idle until the next press.
	MouseDown func(p geometry.Point) bool

	// SelectStart runs once, when the pointer first moves past the click
	// tolerance.
	SelectStart func(box geometry.DragBox)

	// Selecting runs for every move while dragging.
	Selecting func(box geometry.DragBox)

	// Click runs when a press is released inside the container without
	// a drag.
	Click func(p geometry.Point)

	// Select runs when a drag is released.
	Select func(box geometry.DragBox)

	// Reset runs when a press is released outside the container without
	// a drag.
	Reset func()
}

// Options tunes gesture classification.
type Options struct {
	// ClickTolerance is the largest per-axis movement, in cells, that still
	// counts as a click.
	ClickTolerance int

	// CollideTolerance is passed to geometry.Collide by IsSelected.
	CollideTolerance int
}

// DefaultOptions returns the options used for terminal grids: any movement
// to another cell starts a drag, and boxes that only touch do not collide.
func DefaultOptions() Options {
	return Options{
		ClickTolerance:   0,
		CollideTolerance: geometry.EdgeTolerance,
	}
}

// Engine tracks pointer gestures scoped to a container.
type Engine struct {
	container geometry.Bounder
	opts      Options
	handlers  Handlers

	unsubscribe func()

	state  State
	origin geometry.Point
	box    geometry.DragBox
	hasBox bool
}

// New creates an Engine scoped to container. A nil container, or one that
// is not rendered, accepts presses anywhere.
func New(container geometry.Bounder, opts Options) *Engine {
	if opts.ClickTolerance < 0 {
		opts.ClickTolerance = 0
	}
	return &Engine{container: container, opts: opts}
}

// On replaces the engine's handlers.
func (e *Engine) On(h Handlers) {
	e.handlers = h
}

// Attach subscribes the engine to hub. Attaching an attached engine moves
// it to the new hub.
func (e *Engine) Attach(hub *Hub) {
	e.Teardown()
	e.unsubscribe = hub.Subscribe(e.Handle)
}

// Attached reports whether the engine is subscribed to a hub.
func (e *Engine) Attached() bool {
	return e.unsubscribe != nil
}

// Teardown unsubscribes the engine and abandons any gesture in progress.
// It is safe to call more than once.
func (e *Engine) Teardown() {
	if e.unsubscribe != nil {
		e.unsubscribe()
		e.unsubscribe = nil
	}
	e.state = StateIdle
	e.hasBox = false
}

// State returns the current gesture state.
func (e *Engine) State() State {
	return e.state
}

// Box returns the current or last drag box. The second value is false when
// no drag happened since the last press.
func (e *Engine) Box() (geometry.DragBox, bool) {
	return e.box, e.hasBox
}

// IsSelected reports whether the current or last drag box overlaps the
// rendered bounds of node.
func (e *Engine) IsSelected(node geometry.Bounder) bool {
	if !e.hasBox {
		return false
	}
	bounds, ok := geometry.BoundsOf(node)
	if !ok {
		return false
	}
	return geometry.Collide(e.box.Box, bounds, e.opts.CollideTolerance)
}

// Handle feeds one pointer sample through the state machine.
func (e *Engine) Handle(p Pointer) {
	switch p.Kind {
	case PointerDown:
		e.down(p)
	case PointerMove:
		e.move(p)
	case PointerUp:
		e.up(p)
	}
}

// inContainer reports whether pt falls in the container. When the container
// cannot be measured the zero box is used and every point is accepted.
func (e *Engine) inContainer(pt geometry.Point) bool {
	bounds, ok := geometry.BoundsOf(e.container)
	if !ok {
		return true
	}
	return bounds.HasCell(pt)
}

func (e *Engine) down(p Pointer) {
	if p.Button != ButtonPrimary {
		return
	}
	// A press without a matching release abandons the old gesture.
	e.state = StateIdle
	e.hasBox = false

	if !e.inContainer(p.Point) {
		return
	}
	if e.handlers.MouseDown != nil && !e.handlers.MouseDown(p.Point) {
		return
	}

	e.state = StatePressed
	e.origin = p.Point
	e.box = geometry.NewDragBox(p.Point, p.Point)
}

func (e *Engine) move(p Pointer) {
	if e.state == StateIdle {
		return
	}

	box := geometry.NewDragBox(e.origin, p.Point)

	if e.state == StatePressed {
		if e.isClick(p.Point) {
			return
		}
		e.state = StateDragging
		e.box, e.hasBox = box, true
		if e.handlers.SelectStart != nil {
			e.handlers.SelectStart(box)
		}
	}

	e.box, e.hasBox = box, true
	if e.handlers.Selecting != nil {
		e.handlers.Selecting(box)
	}
}

func (e *Engine) up(p Pointer) {
	if e.state == StateIdle {
		return
	}

	dragging := e.state == StateDragging
	e.state = StateIdle

	if !dragging {
		if e.inContainer(p.Point) {
			if e.handlers.Click != nil {
				e.handlers.Click(p.Point)
			}
			return
		}
		if e.handlers.Reset != nil {
			e.handlers.Reset()
		}
		return
	}

	if e.handlers.Select != nil {
		e.handlers.Select(e.box)
	}
}

func (e *Engine) isClick(pt geometry.Point) bool {
	return abs(pt.X-e.origin.X) <= e.opts.ClickTolerance &&
		abs(pt.Y-e.origin.Y) <= e.opts.ClickTolerance
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
