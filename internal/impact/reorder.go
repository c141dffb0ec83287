package impact

import "github.com/grindlemire/go-dnd/internal/geom"

// reorderArgs are the inputs of reorderImpact.
type reorderArgs struct {
	target        float64
	draggable     Draggable
	destination   Droppable
	siblings      []sibling
	displacedBy   DisplacedBy
	viewport      Viewport
	userDirection UserDirection
	inHome        bool
}

// shouldDisplace applies the direction dependent edge test to one sibling.
//
// Moving backward, a sibling is displaced while the pointer is on or before its
// current end edge. Moving forward, a displaced sibling stays displaced while
// the pointer is on or before its displaced start edge; a sibling at rest is
// only displaced if the pointer is still strictly before it.
func shouldDisplace(s sibling, target float64, axis geom.Axis, displacedBy DisplacedBy, isForward bool) bool {
	box := s.current(displacedBy)
	if !isForward {
		return target <= axis.EndOf(box)
	}
	if s.isDisplaced {
		return target <= axis.StartOf(box)
	}
	return target < axis.StartOf(box)
}

// reorderImpact computes the impact of dropping between items of destination.
func reorderImpact(args reorderArgs) DragImpact {
	axis := args.destination.Axis
	isForward := args.userDirection.IsMovingForward(axis)

	first := -1
	for i, s := range args.siblings {
		if shouldDisplace(s, args.target, axis, args.displacedBy, isForward) {
			first = i
			break
		}
	}

	// Everything from the first displaced sibling onward makes room, which
	// keeps the list ordered closest first.
	displaced := []Displacement{}
	if first != -1 {
		for _, s := range args.siblings[first:] {
			displaced = append(displaced, Displacement{
				DraggableID: s.draggable.Descriptor.ID,
				IsVisible:   isDisplacementVisible(s.resting(args.displacedBy), args.displacedBy, args.viewport, args.destination),
				Kind:        s.kind(),
			})
		}
	}

	return DragImpact{
		Movement: Movement{
			Displaced:   displaced,
			Map:         BuildMap(displaced),
			DisplacedBy: args.displacedBy,
		},
		Direction: axis.Direction,
		Destination: &Location{
			DroppableID: args.destination.Descriptor.ID,
			Index:       reorderIndex(args, first),
		},
	}
}

// reorderIndex returns the destination index for an insertion before the
// sibling at position first, or at the end of the list when first is -1.
func reorderIndex(args reorderArgs, first int) int {
	if first == -1 {
		// In the home list the siblings exclude the dragged item, so the
		// last slot equals their count either way.
		return len(args.siblings)
	}
	closest := args.siblings[first].draggable.Descriptor.Index
	// In the home list an item after the dragged one shifts down a slot once
	// the dragged item is taken out.
	if args.inHome && closest > args.draggable.Descriptor.Index {
		return closest - 1
	}
	return closest
}
