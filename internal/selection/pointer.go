package selection

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/slotpick/internal/geometry"
)

// PointerKind identifies the phase of a pointer sample.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
)

// String returns a string representation of the kind.
func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	default:
		return fmt.Sprintf("PointerKind(%d)", int(k))
	}
}

// Button identifies which button produced a sample.
type Button int

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonOther
)

// Pointer is a single pointer sample in screen cells.
type Pointer struct {
	Kind   PointerKind
	Point  geometry.Point
	Button Button
}

// Down returns a primary-button press at (x, y).
func Down(x, y int) Pointer {
	return Pointer{Kind: PointerDown, Point: geometry.Point{X: x, Y: y}, Button: ButtonPrimary}
}

// Move returns a motion sample at (x, y).
func Move(x, y int) Pointer {
	return Pointer{Kind: PointerMove, Point: geometry.Point{X: x, Y: y}, Button: ButtonPrimary}
}

// Up returns a release at (x, y).
func Up(x, y int) Pointer {
	return Pointer{Kind: PointerUp, Point: geometry.Point{X: x, Y: y}}
}

// FromMouse converts a terminal mouse report into a pointer sample.
// Wheel events and reports without an action are not pointer samples.
func FromMouse(msg tea.MouseMsg) (Pointer, bool) {
	p := Pointer{Point: geometry.Point{X: msg.X, Y: msg.Y}}

	switch msg.Button {
	case tea.MouseButtonLeft:
		p.Button = ButtonPrimary
	case tea.MouseButtonNone:
		p.Button = ButtonNone
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown,
		tea.MouseButtonWheelLeft, tea.MouseButtonWheelRight:
		return Pointer{}, false
	default:
		p.Button = ButtonOther
	}

	switch msg.Action {
	case tea.MouseActionPress:
		p.Kind = PointerDown
	case tea.MouseActionMotion:
		p.Kind = PointerMove
	case tea.MouseActionRelease:
		p.Kind = PointerUp
	default:
		return Pointer{}, false
	}
	return p, true
}
