package impact

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/grindlemire/go-dnd/internal/geom"
)

const presetType TypeID = "DEFAULT"

// preset is a home list and a foreign list laid out side by side on the cross
// axis. Both lists hold four items of sizes 20, 30, 40 and 50 starting 10
// units into the list.
type preset struct {
	axis     geom.Axis
	viewport Viewport

	home    Droppable
	foreign Droppable

	inHome1, inHome2, inHome3, inHome4             Draggable
	inForeign1, inForeign2, inForeign3, inForeign4 Draggable

	draggables DraggableMap
	droppables DroppableMap
}

// boxOn builds a rect from main and cross extents on axis.
func boxOn(axis geom.Axis, mainStart, mainEnd, crossStart, crossEnd float64) geom.Rect {
	start := geom.Patch(axis.Line, mainStart, crossStart)
	end := geom.Patch(axis.Line, mainEnd, crossEnd)
	return geom.Rect{Top: start.Y, Right: end.X, Bottom: end.Y, Left: start.X}
}

func getPreset(axis geom.Axis) preset {
	p := preset{
		axis:     axis,
		viewport: NewViewport(1000, 1000, geom.Origin),
	}

	list := func(id DroppableID, crossStart float64) Droppable {
		return Droppable{
			Descriptor: DroppableDescriptor{ID: id, Type: presetType},
			Axis:       axis,
			BorderBox:  boxOn(axis, 0, 160, crossStart, crossStart+100),
			IsEnabled:  true,
		}
	}
	item := func(id DraggableID, index int, home Droppable, start, end float64) Draggable {
		crossStart := axis.Cross(geom.Point{X: home.BorderBox.Left, Y: home.BorderBox.Top})
		return Draggable{
			Descriptor: DraggableDescriptor{
				ID:          id,
				Index:       index,
				DroppableID: home.Descriptor.ID,
				Type:        presetType,
			},
			BorderBox:  boxOn(axis, start, end, crossStart, crossStart+100),
			DisplaceBy: geom.Patch(axis.Line, end-start, 100),
		}
	}

	p.home = list("home", 0)
	p.foreign = list("foreign", 200)

	p.inHome1 = item("inhome1", 0, p.home, 10, 30)
	p.inHome2 = item("inhome2", 1, p.home, 30, 60)
	p.inHome3 = item("inhome3", 2, p.home, 60, 100)
	p.inHome4 = item("inhome4", 3, p.home, 100, 150)

	p.inForeign1 = item("inforeign1", 0, p.foreign, 10, 30)
	p.inForeign2 = item("inforeign2", 1, p.foreign, 30, 60)
	p.inForeign3 = item("inforeign3", 2, p.foreign, 60, 100)
	p.inForeign4 = item("inforeign4", 3, p.foreign, 100, 150)

	p.draggables = DraggableMap{}
	for _, d := range []Draggable{
		p.inHome1, p.inHome2, p.inHome3, p.inHome4,
		p.inForeign1, p.inForeign2, p.inForeign3, p.inForeign4,
	} {
		p.draggables[d.Descriptor.ID] = d
	}
	p.droppables = DroppableMap{
		p.home.Descriptor.ID:    p.home,
		p.foreign.Descriptor.ID: p.foreign,
	}
	return p
}

// withDroppable returns a copy of the droppable map with d replaced.
func (p preset) withDroppable(d Droppable) DroppableMap {
	out := make(DroppableMap, len(p.droppables))
	for id, existing := range p.droppables {
		out[id] = existing
	}
	out[d.Descriptor.ID] = d
	return out
}

// at builds a pointer position on the preset axis.
func (p preset) at(main, cross float64) geom.Point {
	return geom.Patch(p.axis.Line, main, cross)
}

func (p preset) homeCross() float64 {
	return p.axis.Cross(p.inHome3.BorderBox.Center())
}

func (p preset) foreignCross() float64 {
	return p.axis.Cross(p.inForeign1.BorderBox.Center())
}

func visibleDisplacement(d Draggable) Displacement {
	return Displacement{DraggableID: d.Descriptor.ID, IsVisible: true, Kind: DisplacedFresh}
}

func notAnimatedDisplacement(d Draggable) Displacement {
	return Displacement{DraggableID: d.Descriptor.ID, IsVisible: true, Kind: DisplacedAtLift}
}

func reorderTo(axis geom.Axis, displacedBy DisplacedBy, droppable DroppableID, index int, displaced ...Displacement) DragImpact {
	if displaced == nil {
		displaced = []Displacement{}
	}
	return DragImpact{
		Movement: Movement{
			Displaced:   displaced,
			Map:         BuildMap(displaced),
			DisplacedBy: displacedBy,
		},
		Direction:   axis.Direction,
		Destination: &Location{DroppableID: droppable, Index: index},
	}
}

func assertImpact(t *testing.T, got, want DragImpact) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("impact mismatch (-want +got):\n%s", diff)
	}
}

var axes = map[string]geom.Axis{
	"vertical":   geom.Vertical,
	"horizontal": geom.Horizontal,
}
