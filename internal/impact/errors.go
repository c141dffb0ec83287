package impact

import "errors"

var (
	// ErrDraggableNotFound is returned when a referenced draggable was not measured.
	ErrDraggableNotFound = errors.New("draggable not found")

	// ErrDroppableNotFound is returned when a referenced droppable was not measured.
	ErrDroppableNotFound = errors.New("droppable not found")
)
