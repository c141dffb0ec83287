package impact

import "github.com/grindlemire/go-dnd/internal/geom"

// DraggableID identifies a draggable item.
type DraggableID string

// DroppableID identifies a list that accepts draggables.
type DroppableID string

// TypeID groups droppables and draggables that may interact.
type TypeID string

// DraggableDescriptor is the identity of a draggable and its slot in its home list.
type DraggableDescriptor struct {
	ID          DraggableID
	Index       int
	DroppableID DroppableID
	Type        TypeID
}

// Draggable is the measured snapshot of one draggable item.
type Draggable struct {
	Descriptor DraggableDescriptor

	// BorderBox is the item's border box in page coordinates at lift time.
	BorderBox geom.Rect

	// DisplaceBy is how far a sibling must move on each line to make room for
	// this item: its size plus the gap to its neighbour.
	DisplaceBy geom.Point
}

// DroppableDescriptor is the identity of a droppable list.
type DroppableDescriptor struct {
	ID   DroppableID
	Type TypeID
}

// Droppable is the measured snapshot of one list.
type Droppable struct {
	Descriptor DroppableDescriptor
	Axis       geom.Axis

	// BorderBox is the list's border box in page coordinates.
	BorderBox geom.Rect

	// Frame clips the list when it sits inside a scroll container.
	// nil means the list is not clipped.
	Frame *geom.Rect

	// Scroll is how far the list's own scroll container has scrolled since lift.
	Scroll geom.Point

	IsEnabled        bool
	IsCombineEnabled bool
}

// DraggableMap holds every measured draggable keyed by id.
type DraggableMap map[DraggableID]Draggable

// DroppableMap holds every measured droppable keyed by id.
type DroppableMap map[DroppableID]Droppable

// Viewport is the visible part of the page.
type Viewport struct {
	// Frame is the visible area in page coordinates.
	Frame geom.Rect

	// Scroll is the window scroll offset that Frame was derived from.
	Scroll geom.Point
}

// NewViewport returns the viewport of a window of the given size scrolled to scroll.
func NewViewport(width, height float64, scroll geom.Point) Viewport {
	return Viewport{
		Frame:  geom.NewRect(scroll.X, scroll.Y, width, height),
		Scroll: scroll,
	}
}

// DisplacedBy is the shift applied to every displaced sibling.
type DisplacedBy struct {
	Value float64
	Point geom.Point
}

// DisplacementKind distinguishes displacements that need an animation from
// those that were already in place when the drag began.
type DisplacementKind uint8

const (
	DisplacedFresh  DisplacementKind = iota // Entered displacement during this drag
	DisplacedAtLift                         // Displaced since the item was lifted
)

// String returns a short label for the kind.
func (k DisplacementKind) String() string {
	if k == DisplacedAtLift {
		return "at-lift"
	}
	return "fresh"
}

// Displacement is the displaced state of one sibling.
type Displacement struct {
	DraggableID DraggableID
	IsVisible   bool
	Kind        DisplacementKind
}

// ShouldAnimate reports whether the renderer should animate the sibling into
// its displaced position. Off-screen and lift-time displacements are not animated.
func (d Displacement) ShouldAnimate() bool {
	return d.IsVisible && d.Kind == DisplacedFresh
}

// DisplacementMap looks up a displacement by draggable id.
type DisplacementMap map[DraggableID]Displacement

// Movement is the displacement half of an impact.
type Movement struct {
	// Displaced is ordered closest to the dragged item first.
	Displaced   []Displacement
	Map         DisplacementMap
	DisplacedBy DisplacedBy
}

// Location is a slot in a list.
type Location struct {
	DroppableID DroppableID `json:"droppable"`
	Index       int         `json:"index"`
}

// Merge is the outcome of dropping onto another item instead of between items.
type Merge struct {
	DraggableID DraggableID `json:"draggable"`
	DroppableID DroppableID `json:"droppable"`
}

// DragImpact is the full outcome of a drag at one pointer position.
// At most one of Destination and Merge is non-nil.
type DragImpact struct {
	Movement    Movement
	Direction   geom.Direction
	Destination *Location
	Merge       *Merge
}

// DroppableID returns the list the impact concerns, or "" when there is none.
func (i DragImpact) DroppableID() DroppableID {
	switch {
	case i.Destination != nil:
		return i.Destination.DroppableID
	case i.Merge != nil:
		return i.Merge.DroppableID
	default:
		return ""
	}
}

// OnLift records the displacement that existed when the item was picked up.
type OnLift struct {
	DisplacedBy  DisplacedBy
	WasDisplaced map[DraggableID]bool
}

// NoImpact is the impact of a pointer that is not over any list.
func NoImpact() DragImpact {
	return DragImpact{
		Movement: Movement{
			Displaced: []Displacement{},
			Map:       DisplacementMap{},
		},
	}
}
