package session

import (
	"errors"
	"slices"

	"go.uber.org/zap"

	"github.com/grindlemire/go-dnd/internal/impact"
)

// ErrDragEnded is returned when a drag is used after Drop or Cancel.
var ErrDragEnded = errors.New("drag already ended")

// DropReason tells why a drag ended.
type DropReason uint8

const (
	ReasonDrop DropReason = iota
	ReasonCancel
)

// String returns the lowercase reason.
func (r DropReason) String() string {
	if r == ReasonCancel {
		return "cancel"
	}
	return "drop"
}

// Result is the committed outcome of a drag.
// At most one of Destination and Merge is non-nil.
type Result struct {
	DraggableID impact.DraggableID
	Source      impact.Location
	Destination *impact.Location
	Merge       *impact.Merge
	Reason      DropReason
}

// Drop ends the drag with the latest impact.
func (d *Drag) Drop() (Result, error) {
	if d.done {
		return Result{}, ErrDragEnded
	}
	d.done = true

	r := d.result(ReasonDrop)
	if d.impact.Destination != nil {
		dest := *d.impact.Destination
		r.Destination = &dest
	}
	if d.impact.Merge != nil {
		merge := *d.impact.Merge
		r.Merge = &merge
	}
	d.log.Debug("dropped", zap.String("draggable", string(r.DraggableID)), zap.String("outcome", Describe(d.impact)))
	return r, nil
}

// Cancel ends the drag without moving anything.
func (d *Drag) Cancel() (Result, error) {
	if d.done {
		return Result{}, ErrDragEnded
	}
	d.done = true
	d.log.Debug("cancelled", zap.String("draggable", string(d.draggable.Descriptor.ID)))
	return d.result(ReasonCancel), nil
}

func (d *Drag) result(reason DropReason) Result {
	return Result{
		DraggableID: d.draggable.Descriptor.ID,
		Source: impact.Location{
			DroppableID: d.draggable.Descriptor.DroppableID,
			Index:       d.draggable.Descriptor.Index,
		},
		Reason: reason,
	}
}

// Apply returns list orders with the result applied. A reorder moves the
// item to its destination; a merge removes it from its source list. lists is
// left unchanged.
func Apply(lists map[impact.DroppableID][]impact.DraggableID, r Result) map[impact.DroppableID][]impact.DraggableID {
	out := make(map[impact.DroppableID][]impact.DraggableID, len(lists))
	for id, order := range lists {
		out[id] = slices.Clone(order)
	}
	if r.Reason == ReasonCancel || (r.Destination == nil && r.Merge == nil) {
		return out
	}

	source := out[r.Source.DroppableID]
	at := slices.Index(source, r.DraggableID)
	if at == -1 {
		return out
	}
	out[r.Source.DroppableID] = slices.Delete(source, at, at+1)

	if r.Destination == nil {
		return out
	}
	dest := out[r.Destination.DroppableID]
	index := min(max(r.Destination.Index, 0), len(dest))
	out[r.Destination.DroppableID] = slices.Insert(dest, index, r.DraggableID)
	return out
}
