package impact

import "github.com/grindlemire/go-dnd/internal/geom"

// sibling is a non-dragging item of the target list together with the state
// the previous impact left it in.
type sibling struct {
	draggable Draggable

	// startedDisplaced is true when the sibling was displaced at lift.
	// Its measured box is then already the displaced box.
	startedDisplaced bool

	// previous is the sibling's entry in the previous impact, if any.
	previous    Displacement
	isDisplaced bool
}

func newSibling(d Draggable, inHome bool, onLift OnLift, last DisplacementMap) sibling {
	previous, ok := last[d.Descriptor.ID]
	return sibling{
		draggable:        d,
		startedDisplaced: inHome && onLift.WasDisplaced[d.Descriptor.ID],
		previous:         previous,
		isDisplaced:      ok,
	}
}

// resting returns the box the sibling occupies when it is not displaced.
func (s sibling) resting(displacedBy DisplacedBy) geom.Rect {
	if s.startedDisplaced {
		return s.draggable.BorderBox.Shift(displacedBy.Point.Negate())
	}
	return s.draggable.BorderBox
}

// current returns the box the sibling occupies right now.
func (s sibling) current(displacedBy DisplacedBy) geom.Rect {
	box := s.resting(displacedBy)
	if s.isDisplaced {
		return box.Shift(displacedBy.Point)
	}
	return box
}

// kind returns the displacement kind the sibling carries if it is displaced now.
// Only an uninterrupted displacement since lift keeps DisplacedAtLift.
func (s sibling) kind() DisplacementKind {
	if s.isDisplaced && s.previous.Kind == DisplacedAtLift {
		return DisplacedAtLift
	}
	return DisplacedFresh
}
