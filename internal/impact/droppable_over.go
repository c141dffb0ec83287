package impact

import (
	"cmp"
	"slices"

	"github.com/grindlemire/go-dnd/internal/geom"
)

// visibleBox returns the part of the droppable that can receive a pointer.
func visibleBox(d Droppable) geom.Rect {
	if d.Frame == nil {
		return d.BorderBox
	}
	return d.BorderBox.Intersect(*d.Frame)
}

// droppableOver picks the list under the pointer.
//
// Only enabled lists of the dragged item's type qualify. When lists overlap the
// home list wins, then the smallest list (the innermost), then the lowest id.
func droppableOver(center geom.Point, draggable Draggable, droppables DroppableMap) (Droppable, bool) {
	candidates := make([]Droppable, 0, len(droppables))
	for _, d := range droppables {
		if !d.IsEnabled || d.Descriptor.Type != draggable.Descriptor.Type {
			continue
		}
		box := visibleBox(d)
		if box.IsEmpty() || !box.ContainsPoint(center) {
			continue
		}
		candidates = append(candidates, d)
	}
	if len(candidates) == 0 {
		return Droppable{}, false
	}

	home := draggable.Descriptor.DroppableID
	slices.SortFunc(candidates, func(a, b Droppable) int {
		aHome, bHome := a.Descriptor.ID == home, b.Descriptor.ID == home
		switch {
		case aHome && !bHome:
			return -1
		case bHome && !aHome:
			return 1
		}
		if c := cmp.Compare(visibleBox(a).Area(), visibleBox(b).Area()); c != 0 {
			return c
		}
		return cmp.Compare(a.Descriptor.ID, b.Descriptor.ID)
	})
	return candidates[0], true
}
