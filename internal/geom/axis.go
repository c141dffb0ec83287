package geom

// Direction labels the orientation of an Axis.
type Direction uint8

const (
	DirectionNone       Direction = iota // No axis, e.g. when not over any list
	DirectionVertical                    // Children laid out top-to-bottom
	DirectionHorizontal                  // Children laid out left-to-right
)

// String returns the lowercase direction label.
func (d Direction) String() string {
	switch d {
	case DirectionVertical:
		return "vertical"
	case DirectionHorizontal:
		return "horizontal"
	default:
		return "none"
	}
}

// Axis describes the main and cross lines a list lays its children along.
type Axis struct {
	Direction  Direction
	Line       Line
	CrossLine  Line
	Start      Edge
	End        Edge
	CrossStart Edge
	CrossEnd   Edge
}

// Vertical is the axis of a top-to-bottom list.
var Vertical = Axis{
	Direction:  DirectionVertical,
	Line:       Y,
	CrossLine:  X,
	Start:      Top,
	End:        Bottom,
	CrossStart: Left,
	CrossEnd:   Right,
}

// Horizontal is the axis of a left-to-right list.
var Horizontal = Axis{
	Direction:  DirectionHorizontal,
	Line:       X,
	CrossLine:  Y,
	Start:      Left,
	End:        Right,
	CrossStart: Top,
	CrossEnd:   Bottom,
}

// AxisFor returns the axis with the given direction.
// Any value other than DirectionHorizontal yields Vertical.
func AxisFor(d Direction) Axis {
	if d == DirectionHorizontal {
		return Horizontal
	}
	return Vertical
}

// ParseDirection maps "vertical"/"horizontal" to a Direction.
// The second return value is false for anything else.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "vertical", "column":
		return DirectionVertical, true
	case "horizontal", "row":
		return DirectionHorizontal, true
	default:
		return DirectionNone, false
	}
}

// Main returns the component of p along the axis.
func (a Axis) Main(p Point) float64 {
	return p.On(a.Line)
}

// Cross returns the component of p across the axis.
func (a Axis) Cross(p Point) float64 {
	return p.On(a.CrossLine)
}

// StartOf returns the start edge of r on the axis.
func (a Axis) StartOf(r Rect) float64 {
	return r.Edge(a.Start)
}

// EndOf returns the end edge of r on the axis.
func (a Axis) EndOf(r Rect) float64 {
	return r.Edge(a.End)
}

// SizeOf returns the extent of r along the axis.
func (a Axis) SizeOf(r Rect) float64 {
	return r.Size(a.Line)
}
