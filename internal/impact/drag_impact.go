package impact

import (
	"fmt"

	"github.com/grindlemire/go-dnd/internal/geom"
)

// ResolveArgs are the inputs of Resolve.
type ResolveArgs struct {
	// PageBorderBoxCenter is the current center of the dragged item.
	PageBorderBoxCenter geom.Point

	Draggable      Draggable
	Draggables     DraggableMap
	Droppables     DroppableMap
	PreviousImpact DragImpact
	Viewport       Viewport
	UserDirection  UserDirection
	OnLift         OnLift
}

// Resolve computes the impact of the dragged item's current position.
//
// The result depends only on the arguments. PreviousImpact supplies the
// displacement state that the edge tests compare against; the returned
// impact never aliases it.
func Resolve(args ResolveArgs) (DragImpact, error) {
	draggable := args.Draggable
	if _, ok := args.Draggables[draggable.Descriptor.ID]; !ok {
		return DragImpact{}, fmt.Errorf("dragging %q: %w", draggable.Descriptor.ID, ErrDraggableNotFound)
	}
	if _, ok := args.Droppables[draggable.Descriptor.DroppableID]; !ok {
		return DragImpact{}, fmt.Errorf("home %q of %q: %w",
			draggable.Descriptor.DroppableID, draggable.Descriptor.ID, ErrDroppableNotFound)
	}

	destination, ok := droppableOver(args.PageBorderBoxCenter, draggable, args.Droppables)
	if !ok {
		return NoImpact(), nil
	}

	axis := destination.Axis
	target := axis.Main(args.PageBorderBoxCenter.Add(destination.Scroll))
	displacedBy := ComputeDisplacedBy(axis, draggable.DisplaceBy)
	inHome := destination.Descriptor.ID == draggable.Descriptor.DroppableID

	inside := withoutDraggable(draggable.Descriptor.ID, insideDroppable(destination.Descriptor.ID, args.Draggables))
	last := args.PreviousImpact.Movement.Map
	siblings := make([]sibling, len(inside))
	for i, d := range inside {
		siblings[i] = newSibling(d, inHome, args.OnLift, last)
	}

	if merged, ok := combineImpact(combineArgs{
		target:         target,
		destination:    destination,
		siblings:       siblings,
		displacedBy:    displacedBy,
		previousImpact: args.PreviousImpact,
	}); ok {
		return merged, nil
	}

	return reorderImpact(reorderArgs{
		target:        target,
		draggable:     draggable,
		destination:   destination,
		siblings:      siblings,
		displacedBy:   displacedBy,
		viewport:      args.Viewport,
		userDirection: args.UserDirection,
		inHome:        inHome,
	}), nil
}
