package impact

import "github.com/grindlemire/go-dnd/internal/geom"

// isPartiallyVisible reports whether any part of box shows through both the
// viewport and the droppable's clipping frame.
func isPartiallyVisible(box geom.Rect, viewport Viewport, droppable Droppable) bool {
	if !box.Intersects(viewport.Frame) {
		return false
	}
	if droppable.Frame != nil && !box.Intersects(*droppable.Frame) {
		return false
	}
	return true
}

// isDisplacementVisible reports whether a sibling is on screen at either end of
// its displacement: the resting box or the displaced box.
func isDisplacementVisible(resting geom.Rect, displacedBy DisplacedBy, viewport Viewport, droppable Droppable) bool {
	return isPartiallyVisible(resting, viewport, droppable) ||
		isPartiallyVisible(resting.Shift(displacedBy.Point), viewport, droppable)
}
