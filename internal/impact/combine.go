package impact

// combineThresholdDivisor sets the part of a sibling's size on each side that
// reorders rather than combines. 4 leaves the middle half for combining.
const combineThresholdDivisor = 4

// combineArgs are the inputs of combineImpact.
type combineArgs struct {
	target         float64
	destination    Droppable
	siblings       []sibling
	displacedBy    DisplacedBy
	previousImpact DragImpact
}

// combineImpact returns a merge impact when the pointer sits well inside a
// sibling of a list that allows combining. The second result is false when no
// sibling qualifies and the caller should fall back to reordering.
func combineImpact(args combineArgs) (DragImpact, bool) {
	if !args.destination.IsCombineEnabled {
		return DragImpact{}, false
	}
	axis := args.destination.Axis

	for _, s := range args.siblings {
		box := s.current(args.displacedBy)
		threshold := axis.SizeOf(box) / combineThresholdDivisor
		if args.target <= axis.StartOf(box)+threshold || args.target >= axis.EndOf(box)-threshold {
			continue
		}

		// Siblings keep whatever displacement they had in this list; a
		// displacement from a different list does not carry over.
		displaced := []Displacement{}
		if args.previousImpact.DroppableID() == args.destination.Descriptor.ID {
			displaced = append(displaced, args.previousImpact.Movement.Displaced...)
		}

		return DragImpact{
			Movement: Movement{
				Displaced:   displaced,
				Map:         BuildMap(displaced),
				DisplacedBy: args.displacedBy,
			},
			Direction: axis.Direction,
			Merge: &Merge{
				DraggableID: s.draggable.Descriptor.ID,
				DroppableID: args.destination.Descriptor.ID,
			},
		}, true
	}
	return DragImpact{}, false
}
