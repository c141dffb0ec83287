// geom.go re-exports geometry types from internal/geom.
// Any changes to internal/geom types must be mirrored here.
package dnd

import "github.com/grindlemire/go-dnd/internal/geom"

// Point is an (X, Y) coordinate in page space.
type Point = geom.Point

// Rect is a box given by its four edges in page space.
type Rect = geom.Rect

// Line selects one component of a Point.
type Line = geom.Line

const (
	X = geom.X
	Y = geom.Y
)

// Direction labels the orientation of an Axis.
type Direction = geom.Direction

const (
	DirectionNone       = geom.DirectionNone
	DirectionVertical   = geom.DirectionVertical
	DirectionHorizontal = geom.DirectionHorizontal
)

// Axis describes the main and cross lines of a list.
type Axis = geom.Axis

var (
	// Vertical lays items out top to bottom.
	Vertical = geom.Vertical
	// Horizontal lays items out left to right.
	Horizontal = geom.Horizontal
)

// NewRect returns the Rect at (x, y) with the given size.
func NewRect(x, y, width, height float64) Rect {
	return geom.NewRect(x, y, width, height)
}

// Patch builds a Point with main on line and cross on the other line.
func Patch(line Line, main, cross float64) Point {
	return geom.Patch(line, main, cross)
}

// AxisFor returns the Axis for a direction.
func AxisFor(d Direction) Axis {
	return geom.AxisFor(d)
}
