package session

import (
	"fmt"
	"maps"

	"go.uber.org/zap"

	"github.com/grindlemire/go-dnd/internal/geom"
	"github.com/grindlemire/go-dnd/internal/impact"
)

// Option configures a Drag.
type Option func(*Drag) error

// WithLogger sets the logger used to trace impact changes.
// Default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(d *Drag) error {
		if l == nil {
			return fmt.Errorf("logger must not be nil")
		}
		d.log = l
		return nil
	}
}

// WithDirection sets the heading assumed before the first move.
// Default is impact.Forward.
func WithDirection(dir impact.UserDirection) Option {
	return func(d *Drag) error {
		d.direction = dir
		return nil
	}
}

// Drag is one drag gesture from lift to drop. It is not safe for concurrent use.
type Drag struct {
	draggable  impact.Draggable
	draggables impact.DraggableMap
	droppables impact.DroppableMap
	viewport   impact.Viewport
	onLift     impact.OnLift

	impact    impact.DragImpact
	center    geom.Point
	direction impact.UserDirection
	done      bool

	log *zap.Logger
}

// Start lifts the draggable with the given id.
func Start(id impact.DraggableID, draggables impact.DraggableMap, droppables impact.DroppableMap, viewport impact.Viewport, opts ...Option) (*Drag, error) {
	draggable, ok := draggables[id]
	if !ok {
		return nil, fmt.Errorf("lifting %q: %w", id, impact.ErrDraggableNotFound)
	}
	home, ok := droppables[draggable.Descriptor.DroppableID]
	if !ok {
		return nil, fmt.Errorf("lifting %q from %q: %w", id, draggable.Descriptor.DroppableID, impact.ErrDroppableNotFound)
	}

	d := &Drag{
		draggable:  draggable,
		draggables: draggables,
		droppables: droppables,
		viewport:   viewport,
		center:     draggable.BorderBox.Center(),
		direction:  impact.Forward,
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}

	onLift, initial, err := impact.HomeOnLift(impact.LiftArgs{
		Draggable:  draggable,
		Home:       home,
		Draggables: draggables,
		Viewport:   viewport,
	})
	if err != nil {
		return nil, err
	}
	d.onLift = onLift
	d.impact = initial

	d.log.Debug("lifted",
		zap.String("draggable", string(id)),
		zap.String("droppable", string(home.Descriptor.ID)),
		zap.Int("index", draggable.Descriptor.Index),
		zap.Int("displaced", len(initial.Movement.Displaced)),
	)
	return d, nil
}

// Move updates the impact for a new center of the dragged item.
func (d *Drag) Move(center geom.Point) (impact.DragImpact, error) {
	if d.done {
		return impact.DragImpact{}, ErrDragEnded
	}
	d.direction = impact.NextDirection(d.center, center, d.direction)
	d.center = center
	return d.resolve()
}

// MoveBy moves the center of the dragged item by offset.
func (d *Drag) MoveBy(offset geom.Point) (impact.DragImpact, error) {
	return d.Move(d.center.Add(offset))
}

// ScrollDroppable records that a list's scroll container has scrolled by
// scroll since lift and recomputes the impact at the current center.
// Content scrolling past a still pointer counts as pointer motion in the
// opposite direction, so the heading follows the scroll change.
func (d *Drag) ScrollDroppable(id impact.DroppableID, scroll geom.Point) (impact.DragImpact, error) {
	if d.done {
		return impact.DragImpact{}, ErrDragEnded
	}
	droppable, ok := d.droppables[id]
	if !ok {
		return impact.DragImpact{}, fmt.Errorf("scrolling %q: %w", id, impact.ErrDroppableNotFound)
	}
	d.direction = impact.NextDirection(d.center.Add(droppable.Scroll), d.center.Add(scroll), d.direction)
	droppable.Scroll = scroll

	// Callers may share the map they started with; copy before writing.
	droppables := maps.Clone(d.droppables)
	droppables[id] = droppable
	d.droppables = droppables
	return d.resolve()
}

func (d *Drag) resolve() (impact.DragImpact, error) {
	next, err := impact.Resolve(impact.ResolveArgs{
		PageBorderBoxCenter: d.center,
		Draggable:           d.draggable,
		Draggables:          d.draggables,
		Droppables:          d.droppables,
		PreviousImpact:      d.impact,
		Viewport:            d.viewport,
		UserDirection:       d.direction,
		OnLift:              d.onLift,
	})
	if err != nil {
		return impact.DragImpact{}, err
	}
	if changed(d.impact, next) {
		d.log.Debug("impact changed",
			zap.Float64("x", d.center.X),
			zap.Float64("y", d.center.Y),
			zap.String("outcome", Describe(next)),
			zap.Int("displaced", len(next.Movement.Displaced)),
		)
	}
	d.impact = next
	return next, nil
}

// changed reports whether the drop outcome of two impacts differs.
func changed(prev, next impact.DragImpact) bool {
	return Describe(prev) != Describe(next) || len(prev.Movement.Displaced) != len(next.Movement.Displaced)
}

// Impact returns the latest impact.
func (d *Drag) Impact() impact.DragImpact {
	return d.impact
}

// Center returns the latest center of the dragged item.
func (d *Drag) Center() geom.Point {
	return d.center
}

// Direction returns the latest heading.
func (d *Drag) Direction() impact.UserDirection {
	return d.direction
}

// OnLift returns what was recorded when the item was lifted.
func (d *Drag) OnLift() impact.OnLift {
	return d.onLift
}

// Draggable returns the item being dragged.
func (d *Drag) Draggable() impact.Draggable {
	return d.draggable
}

// Describe renders the outcome of an impact as a short label such as
// "home[2]", "merge inhome1 in home" or "none".
func Describe(i impact.DragImpact) string {
	switch {
	case i.Destination != nil:
		return fmt.Sprintf("%s[%d]", i.Destination.DroppableID, i.Destination.Index)
	case i.Merge != nil:
		return fmt.Sprintf("merge %s in %s", i.Merge.DraggableID, i.Merge.DroppableID)
	default:
		return "none"
	}
}
