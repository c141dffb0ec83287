package impact

import "github.com/grindlemire/go-dnd/internal/geom"

// ComputeDisplacedBy returns the shift siblings receive on axis to make room
// for an item whose size-plus-gap vector is displaceBy.
func ComputeDisplacedBy(axis geom.Axis, displaceBy geom.Point) DisplacedBy {
	value := axis.Main(displaceBy)
	return DisplacedBy{
		Value: value,
		Point: geom.Patch(axis.Line, value, 0),
	}
}
