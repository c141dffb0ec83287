// impact.go re-exports the impact model and resolvers from internal/impact.
// Any changes to internal/impact types must be mirrored here.
package dnd

import "github.com/grindlemire/go-dnd/internal/impact"

type (
	DraggableID = impact.DraggableID
	DroppableID = impact.DroppableID
	TypeID      = impact.TypeID
)

// DraggableDescriptor identifies an item and its home slot.
type DraggableDescriptor = impact.DraggableDescriptor

// Draggable is a measured item.
type Draggable = impact.Draggable

// DroppableDescriptor identifies a list.
type DroppableDescriptor = impact.DroppableDescriptor

// Droppable is a measured list.
type Droppable = impact.Droppable

type (
	DraggableMap = impact.DraggableMap
	DroppableMap = impact.DroppableMap
)

// Viewport is the visible part of the page.
type Viewport = impact.Viewport

// DisplacedBy is the shift applied to every displaced item.
type DisplacedBy = impact.DisplacedBy

// DisplacementKind tells whether a displacement should animate.
type DisplacementKind = impact.DisplacementKind

const (
	DisplacedFresh  = impact.DisplacedFresh
	DisplacedAtLift = impact.DisplacedAtLift
)

// Displacement records one item moved out of the way.
type Displacement = impact.Displacement

// DisplacementMap indexes displacements by item.
type DisplacementMap = impact.DisplacementMap

// Movement is the set of displaced items, closest first.
type Movement = impact.Movement

// Location is a slot in a list.
type Location = impact.Location

// Merge is a drop onto another item.
type Merge = impact.Merge

// DragImpact is the outcome of a drag at one pointer position.
type DragImpact = impact.DragImpact

// OnLift is recorded once when an item is lifted.
type OnLift = impact.OnLift

// UserDirection is the pointer heading on both lines.
type UserDirection = impact.UserDirection

type (
	VerticalMotion   = impact.VerticalMotion
	HorizontalMotion = impact.HorizontalMotion
)

const (
	Down  = impact.Down
	Up    = impact.Up
	Right = impact.Right
	Left  = impact.Left
)

var (
	Forward  = impact.Forward
	Backward = impact.Backward
)

var (
	ErrDraggableNotFound = impact.ErrDraggableNotFound
	ErrDroppableNotFound = impact.ErrDroppableNotFound
)

// LiftArgs are the inputs of HomeOnLift.
type LiftArgs = impact.LiftArgs

// ResolveArgs are the inputs of Resolve.
type ResolveArgs = impact.ResolveArgs

// NewViewport returns the viewport of a window of the given size scrolled to scroll.
func NewViewport(width, height float64, scroll Point) Viewport {
	return impact.NewViewport(width, height, scroll)
}

// NoImpact returns an impact with no destination, merge or displacement.
func NoImpact() DragImpact {
	return impact.NoImpact()
}

// ComputeDisplacedBy returns the shift of displaced items along axis.
func ComputeDisplacedBy(axis Axis, displaceBy Point) DisplacedBy {
	return impact.ComputeDisplacedBy(axis, displaceBy)
}

// BuildMap indexes displacements by item id.
func BuildMap(displaced []Displacement) DisplacementMap {
	return impact.BuildMap(displaced)
}

// DraggablesInside returns the ids of a list's items in index order.
func DraggablesInside(id DroppableID, draggables DraggableMap) []DraggableID {
	return impact.DraggablesInside(id, draggables)
}

// HomeOnLift computes the lift record and the initial impact of a drag.
func HomeOnLift(args LiftArgs) (OnLift, DragImpact, error) {
	return impact.HomeOnLift(args)
}

// Resolve computes the impact of the dragged item centered at
// args.PageBorderBoxCenter.
func Resolve(args ResolveArgs) (DragImpact, error) {
	return impact.Resolve(args)
}

// NextDirection derives the heading for a move from previous to current.
func NextDirection(previous, current Point, last UserDirection) UserDirection {
	return impact.NextDirection(previous, current, last)
}
