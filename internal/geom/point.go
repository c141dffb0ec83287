package geom

// Line selects one component of a Point.
type Line uint8

const (
	X Line = iota // Horizontal component
	Y             // Vertical component
)

// Point represents an (X, Y) coordinate in page space.
type Point struct {
	X, Y float64
}

// Origin is the zero Point.
var Origin = Point{}

// Add returns a new Point offset by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns a new Point with other subtracted.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Negate returns the Point mirrored through the origin.
func (p Point) Negate() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// On returns the component of the point along line.
func (p Point) On(line Line) float64 {
	if line == X {
		return p.X
	}
	return p.Y
}

// In returns true if the point is inside the given rectangle.
func (p Point) In(r Rect) bool {
	return r.ContainsPoint(p)
}

// Patch builds a Point with main on line and cross on the other component.
func Patch(line Line, main, cross float64) Point {
	if line == X {
		return Point{X: main, Y: cross}
	}
	return Point{X: cross, Y: main}
}
