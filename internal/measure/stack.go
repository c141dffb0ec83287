package measure

import (
	"fmt"

	"github.com/grindlemire/go-dnd/internal/geom"
	"github.com/grindlemire/go-dnd/internal/impact"
)

// Item is one entry of a stacked list.
type Item struct {
	ID   impact.DraggableID
	Size float64 // extent along the list axis
}

// List describes a stacked list and its items.
type List struct {
	ID   impact.DroppableID
	Type impact.TypeID
	Axis geom.Axis

	// Origin is the top-left corner of the list border box.
	Origin geom.Point

	// CrossSize is the list extent across its axis.
	CrossSize float64

	// Padding is applied on every side between the list edge and its items.
	Padding float64

	// Gap is the space between consecutive items (main axis only).
	Gap float64

	// MinSize is the minimum main extent of the list; 0 fits the content.
	MinSize float64

	Items []Item

	Disabled       bool
	CombineEnabled bool

	// Frame optionally clips the list, as a scroll container would.
	Frame *geom.Rect
}

// Measured is the snapshot of one list.
type Measured struct {
	Droppable  impact.Droppable
	Draggables []impact.Draggable
}

// Stack measures a single list.
func Stack(l List) (Measured, error) {
	if l.ID == "" {
		return Measured{}, fmt.Errorf("list id must not be empty")
	}
	if l.CrossSize < 2*l.Padding {
		return Measured{}, fmt.Errorf("list %q: cross size %v is smaller than its padding", l.ID, l.CrossSize)
	}
	if l.Gap < 0 || l.Padding < 0 {
		return Measured{}, fmt.Errorf("list %q: gap and padding must not be negative", l.ID)
	}

	axis := l.Axis
	mainStart := axis.Main(l.Origin)
	crossStart := axis.Cross(l.Origin)
	itemCrossStart := crossStart + l.Padding
	itemCrossEnd := crossStart + l.CrossSize - l.Padding

	draggables := make([]impact.Draggable, 0, len(l.Items))
	seen := make(map[impact.DraggableID]bool, len(l.Items))
	cursor := mainStart + l.Padding
	for i, item := range l.Items {
		if item.ID == "" {
			return Measured{}, fmt.Errorf("list %q: item %d has no id", l.ID, i)
		}
		if seen[item.ID] {
			return Measured{}, fmt.Errorf("list %q: duplicate item %q", l.ID, item.ID)
		}
		if item.Size <= 0 {
			return Measured{}, fmt.Errorf("list %q: item %q must have a positive size", l.ID, item.ID)
		}
		seen[item.ID] = true

		start := geom.Patch(axis.Line, cursor, itemCrossStart)
		end := geom.Patch(axis.Line, cursor+item.Size, itemCrossEnd)
		draggables = append(draggables, impact.Draggable{
			Descriptor: impact.DraggableDescriptor{
				ID:          item.ID,
				Index:       i,
				DroppableID: l.ID,
				Type:        l.Type,
			},
			BorderBox:  geom.Rect{Top: start.Y, Right: end.X, Bottom: end.Y, Left: start.X},
			DisplaceBy: geom.Patch(axis.Line, item.Size+l.Gap, itemCrossEnd-itemCrossStart),
		})
		cursor += item.Size + l.Gap
	}

	// The gap only sits between items.
	content := cursor - mainStart + l.Padding
	if len(l.Items) > 0 {
		content -= l.Gap
	}
	mainSize := max(content, l.MinSize)

	listEnd := geom.Patch(axis.Line, mainStart+mainSize, crossStart+l.CrossSize)
	return Measured{
		Droppable: impact.Droppable{
			Descriptor: impact.DroppableDescriptor{ID: l.ID, Type: l.Type},
			Axis:       axis,
			BorderBox: geom.Rect{
				Top:    l.Origin.Y,
				Right:  listEnd.X,
				Bottom: listEnd.Y,
				Left:   l.Origin.X,
			},
			Frame:            l.Frame,
			IsEnabled:        !l.Disabled,
			IsCombineEnabled: l.CombineEnabled,
		},
		Draggables: draggables,
	}, nil
}

// Board measures several lists into the collections the impact engine takes.
// Ids must be unique across all lists.
func Board(lists ...List) (impact.DraggableMap, impact.DroppableMap, error) {
	draggables := impact.DraggableMap{}
	droppables := impact.DroppableMap{}
	for _, l := range lists {
		if _, ok := droppables[l.ID]; ok {
			return nil, nil, fmt.Errorf("duplicate list %q", l.ID)
		}
		m, err := Stack(l)
		if err != nil {
			return nil, nil, err
		}
		droppables[l.ID] = m.Droppable
		for _, d := range m.Draggables {
			if existing, ok := draggables[d.Descriptor.ID]; ok {
				return nil, nil, fmt.Errorf("item %q appears in both %q and %q",
					d.Descriptor.ID, existing.Descriptor.DroppableID, l.ID)
			}
			draggables[d.Descriptor.ID] = d
		}
	}
	return draggables, droppables, nil
}
