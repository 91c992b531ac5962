// Package geometry provides box and point math in terminal cell coordinates.
package geometry

// Box is an axis-aligned rectangle in screen cells. Right and Bottom sit one
// cell past the last covered column and row, so Right-Left is the width.
type Box struct {
	Top    int
	Left   int
	Right  int
	Bottom int
}

// EdgeTolerance is the Collide tolerance under which two boxes that merely
// touch do not count as overlapping.
const EdgeTolerance = 1

// Point is a single pointer sample in screen cells.
type Point struct {
	X int
	Y int
}

// DragBox is the rectangle swept from the gesture start to the current
// pointer position, together with both end points.
type DragBox struct {
	Box
	Origin  Point
	Current Point
}

// NewDragBox returns the DragBox of a sweep from origin to current.
func NewDragBox(origin, current Point) DragBox {
	return DragBox{Box: BoxFrom(origin, current), Origin: origin, Current: current}
}

// Bounder reports the current rendered bounds of an element. The second
// return value is false when the element is not rendered.
type Bounder interface {
	Bounds() (Box, bool)
}

// BounderFunc adapts a function to the Bounder interface.
type BounderFunc func() (Box, bool)

// Bounds implements Bounder.
func (f BounderFunc) Bounds() (Box, bool) {
	if f == nil {
		return Box{}, false
	}
	return f()
}

// Fixed returns a Bounder that always reports box.
func Fixed(box Box) Bounder {
	return BounderFunc(func() (Box, bool) { return box, true })
}

// BoundsOf measures b. A nil Bounder yields the zero box.
func BoundsOf(b Bounder) (Box, bool) {
	if b == nil {
		return Box{}, false
	}
	return b.Bounds()
}

// BoxFrom returns the rectangle covering the cells of two points given in
// any order.
func BoxFrom(a, b Point) Box {
	return Box{
		Top:    min(a.Y, b.Y),
		Left:   min(a.X, b.X),
		Right:  max(a.X, b.X) + 1,
		Bottom: max(a.Y, b.Y) + 1,
	}
}

// Width returns the horizontal extent of the box.
func (b Box) Width() int {
	return b.Right - b.Left
}

// Height returns the vertical extent of the box.
func (b Box) Height() int {
	return b.Bottom - b.Top
}

// IsZero reports whether b is the zero box.
func (b Box) IsZero() bool {
	return b == Box{}
}

// Collide reports whether a and b overlap on both axes. Boundaries are
// inclusive; tolerance shrinks the overlap test by that many cells per edge.
// Pass EdgeTolerance to ignore boxes that only share an edge.
func Collide(a, b Box, tolerance int) bool {
	return !(a.Bottom-tolerance < b.Top ||
		a.Top+tolerance > b.Bottom ||
		a.Right-tolerance < b.Left ||
		a.Left+tolerance > b.Right)
}

// HasCell reports whether the cell at p is covered by b, treating Right and
// Bottom as exclusive edges.
func (b Box) HasCell(p Point) bool {
	return p.X >= b.Left && p.X < b.Right &&
		p.Y >= b.Top && p.Y < b.Bottom
}

// Contains reports whether p lies within box, boundaries included.
func Contains(box Box, p Point) bool {
	return p.X >= box.Left && p.X <= box.Right &&
		p.Y >= box.Top && p.Y <= box.Bottom
}
