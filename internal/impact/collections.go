package impact

import (
	"cmp"
	"slices"
)

// insideDroppable returns the draggables that live in the droppable, ordered by index.
func insideDroppable(id DroppableID, draggables DraggableMap) []Draggable {
	inside := make([]Draggable, 0, len(draggables))
	for _, d := range draggables {
		if d.Descriptor.DroppableID == id {
			inside = append(inside, d)
		}
	}
	slices.SortFunc(inside, func(a, b Draggable) int {
		if c := cmp.Compare(a.Descriptor.Index, b.Descriptor.Index); c != 0 {
			return c
		}
		return cmp.Compare(a.Descriptor.ID, b.Descriptor.ID)
	})
	return inside
}

// withoutDraggable returns list with the entry for id removed.
func withoutDraggable(id DraggableID, list []Draggable) []Draggable {
	out := make([]Draggable, 0, len(list))
	for _, d := range list {
		if d.Descriptor.ID != id {
			out = append(out, d)
		}
	}
	return out
}

// DraggablesInside returns the ids of the droppable's draggables in list order.
func DraggablesInside(id DroppableID, draggables DraggableMap) []DraggableID {
	inside := insideDroppable(id, draggables)
	ids := make([]DraggableID, len(inside))
	for i, d := range inside {
		ids[i] = d.Descriptor.ID
	}
	return ids
}
