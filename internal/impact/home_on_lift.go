package impact

import "fmt"

// LiftArgs are the inputs of HomeOnLift.
type LiftArgs struct {
	Draggable  Draggable
	Home       Droppable
	Draggables DraggableMap
	Viewport   Viewport
}

// HomeOnLift computes the displacement that exists the moment an item is
// picked up, and the impact to use as the first previous impact.
//
// Lifting an item leaves its slot to the siblings after it, so those siblings
// start out displaced. They are marked DisplacedAtLift so that they are never
// animated into a position the user already sees them in.
func HomeOnLift(args LiftArgs) (OnLift, DragImpact, error) {
	draggable := args.Draggable
	home := args.Home

	if draggable.Descriptor.DroppableID != home.Descriptor.ID {
		return OnLift{}, DragImpact{}, fmt.Errorf("draggable %q lives in %q, not %q: %w",
			draggable.Descriptor.ID, draggable.Descriptor.DroppableID, home.Descriptor.ID, ErrDroppableNotFound)
	}

	displacedBy := ComputeDisplacedBy(home.Axis, draggable.DisplaceBy)
	inside := insideDroppable(home.Descriptor.ID, args.Draggables)

	// The index inside the list may differ from the descriptor index when a
	// list does not start at zero.
	at := -1
	for i, d := range inside {
		if d.Descriptor.ID == draggable.Descriptor.ID {
			at = i
			break
		}
	}
	if at == -1 {
		return OnLift{}, DragImpact{}, fmt.Errorf("draggable %q in home %q: %w",
			draggable.Descriptor.ID, home.Descriptor.ID, ErrDraggableNotFound)
	}

	after := inside[at+1:]
	wasDisplaced := make(map[DraggableID]bool, len(after))
	displaced := make([]Displacement, 0, len(after))
	for _, d := range after {
		wasDisplaced[d.Descriptor.ID] = true
		// Resting box of a lift-displaced sibling is one slot back.
		resting := d.BorderBox.Shift(displacedBy.Point.Negate())
		displaced = append(displaced, Displacement{
			DraggableID: d.Descriptor.ID,
			IsVisible:   isDisplacementVisible(resting, displacedBy, args.Viewport, home),
			Kind:        DisplacedAtLift,
		})
	}

	onLift := OnLift{
		DisplacedBy:  displacedBy,
		WasDisplaced: wasDisplaced,
	}
	impact := DragImpact{
		Movement: Movement{
			Displaced:   displaced,
			Map:         BuildMap(displaced),
			DisplacedBy: displacedBy,
		},
		Direction: home.Axis.Direction,
		Destination: &Location{
			DroppableID: home.Descriptor.ID,
			Index:       draggable.Descriptor.Index,
		},
	}
	return onLift, impact, nil
}
