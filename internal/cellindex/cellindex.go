// Package cellindex translates screen positions inside a row of day or time
// slots into column indices.
//
// All functions are pure. Callers must guard against a zero column count
// before calling SlotWidth; the other functions treat it as "no selection".
package cellindex

import (
	"math"

	"github.com/javiermolinar/slotpick/internal/geometry"
)

// Range is a resolved run of columns within a row.
// StartIdx and EndIdx are both -1 when nothing in the row is selected.
type Range struct {
	StartIdx  int
	EndIdx    int
	IsStart   bool // the row holds the point where the gesture began
	IsCurrent bool // the pointer is currently inside the row
}

// None is the empty Range.
var None = Range{StartIdx: -1, EndIdx: -1}

// Valid reports whether r selects at least one column.
func (r Range) Valid() bool {
	return r.StartIdx >= 0 && r.EndIdx >= r.StartIdx
}

// Len returns the number of selected columns.
func (r Range) Len() int {
	if !r.Valid() {
		return 0
	}
	return r.EndIdx - r.StartIdx + 1
}

// SlotWidth returns the width of a single column when row is divided into
// columns equal parts. The result is not finite when columns is zero.
func SlotWidth(row geometry.Box, columns int) float64 {
	return float64(row.Right-row.Left) / float64(columns)
}

// CellAtX returns the column under x. In right-to-left layouts the index is
// mirrored so column 0 is the rightmost one. The result is clamped to
// [0, columns-1]; -1 is returned only when columns is not positive.
func CellAtX(row geometry.Box, x int, width float64, rtl bool, columns int) int {
	if columns <= 0 {
		return -1
	}

	idx := 0
	if usableWidth(width) {
		idx = physical(row, x, width)
	}
	idx = clamp(idx, 0, columns-1)

	if rtl {
		return columns - 1 - idx
	}
	return idx
}

// ColumnLeft returns the first x that CellAtX places in physical column i,
// so the half-open span [ColumnLeft(i), ColumnLeft(i+1)) holds exactly the
// cells that resolve to column i. Column 0 starts at row.Left and column
// columns ends at row.Right.
func ColumnLeft(row geometry.Box, i int, width float64, columns int) int {
	if i <= 0 || !usableWidth(width) {
		return row.Left
	}
	if i >= columns {
		return row.Right
	}
	x := row.Left + int(math.Ceil(float64(i)*width))
	for x > row.Left && physical(row, x-1, width) >= i {
		x--
	}
	for x < row.Right && physical(row, x, width) < i {
		x++
	}
	return x
}

func usableWidth(width float64) bool {
	return width > 0 && !math.IsInf(width, 0) && !math.IsNaN(width)
}

// physical is the unclamped left-to-right column under x.
func physical(row geometry.Box, x int, width float64) int {
	return int(math.Floor(float64(x-row.Left) / width))
}

// inRow reports whether y falls inside the vertical extent of row.
func inRow(row geometry.Box, y int) bool {
	return row.Top <= y && y < row.Bottom
}

// GroupedCellSelection resolves which columns of row are covered by a drag
// that started at initial and currently spans drag.
//
// Rows strictly between the start row and the pointer row are selected in
// full. The start row is selected from the start cell towards the pointer,
// and the pointer row from its edge to the pointer cell. Indices are ordered
// regardless of drag direction.
func GroupedCellSelection(initial geometry.Point, row geometry.Box, drag geometry.DragBox, columns int, rtl bool) Range {
	if columns <= 0 || row.Width() <= 0 {
		return None
	}

	width := SlotWidth(row, columns)
	last := columns - 1
	current := drag.Current

	isCurrentRow := inRow(row, current.Y)
	isStartRow := inRow(row, initial.Y)
	isAboveStart := initial.Y >= row.Bottom
	isBelowStart := row.Top > initial.Y
	isBetween := drag.Top < row.Top && drag.Bottom > row.Bottom

	r := None
	r.IsStart = isStartRow
	r.IsCurrent = isCurrentRow

	currentSlot := CellAtX(row, current.X, width, rtl, columns)

	if isBetween {
		r.StartIdx, r.EndIdx = 0, last
	}

	if isCurrentRow {
		switch {
		case isBelowStart:
			r.StartIdx, r.EndIdx = 0, currentSlot
		case isAboveStart:
			r.StartIdx, r.EndIdx = currentSlot, last
		}
	}

	if isStartRow {
		startSlot := CellAtX(row, initial.X, width, rtl, columns)
		r.StartIdx, r.EndIdx = startSlot, startSlot

		switch {
		case isCurrentRow:
			if currentSlot < startSlot {
				r.StartIdx = currentSlot
			} else {
				r.EndIdx = currentSlot
			}
		case initial.Y < current.Y:
			r.EndIdx = last
		default:
			r.StartIdx = 0
		}
	}

	if !r.Valid() {
		r.StartIdx, r.EndIdx = -1, -1
	}
	return r
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
