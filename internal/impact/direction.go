package impact

import "github.com/grindlemire/go-dnd/internal/geom"

// VerticalMotion is the pointer's last vertical heading.
type VerticalMotion uint8

const (
	Down VerticalMotion = iota
	Up
)

func (m VerticalMotion) String() string {
	if m == Up {
		return "up"
	}
	return "down"
}

// HorizontalMotion is the pointer's last horizontal heading.
type HorizontalMotion uint8

const (
	Right HorizontalMotion = iota
	Left
)

func (m HorizontalMotion) String() string {
	if m == Left {
		return "left"
	}
	return "right"
}

// UserDirection is the heading of the pointer on both lines.
type UserDirection struct {
	Vertical   VerticalMotion
	Horizontal HorizontalMotion
}

var (
	// Forward moves toward the end edge of either axis.
	Forward = UserDirection{Vertical: Down, Horizontal: Right}
	// Backward moves toward the start edge of either axis.
	Backward = UserDirection{Vertical: Up, Horizontal: Left}
)

// String renders the heading as "down/right".
func (d UserDirection) String() string {
	return d.Vertical.String() + "/" + d.Horizontal.String()
}

// IsMovingForward reports whether the heading points at the end edge of axis.
func (d UserDirection) IsMovingForward(axis geom.Axis) bool {
	if axis.Line == geom.X {
		return d.Horizontal == Right
	}
	return d.Vertical == Down
}

// NextDirection derives the heading for a move from previous to current.
// A line without movement keeps the heading from last.
func NextDirection(previous, current geom.Point, last UserDirection) UserDirection {
	next := last
	switch {
	case current.Y > previous.Y:
		next.Vertical = Down
	case current.Y < previous.Y:
		next.Vertical = Up
	}
	switch {
	case current.X > previous.X:
		next.Horizontal = Right
	case current.X < previous.X:
		next.Horizontal = Left
	}
	return next
}
