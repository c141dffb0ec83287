package geom

// Edge names one side of a Rect.
type Edge uint8

const (
	Top Edge = iota
	Right
	Bottom
	Left
)

// Rect is an axis-aligned box in page coordinates.
// Unlike cell rects, edges are floats and Right/Bottom are the far edges.
type Rect struct {
	Top, Right, Bottom, Left float64
}

// NewRect creates a Rect from a top-left position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return Rect{Top: y, Right: x + width, Bottom: y + height, Left: x}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// Edge returns the coordinate of the given side.
func (r Rect) Edge(e Edge) float64 {
	switch e {
	case Top:
		return r.Top
	case Right:
		return r.Right
	case Bottom:
		return r.Bottom
	default:
		return r.Left
	}
}

// Size returns the extent of the rectangle along line.
func (r Rect) Size(line Line) float64 {
	if line == X {
		return r.Width()
	}
	return r.Height()
}

// Shift returns the rectangle moved by offset.
func (r Rect) Shift(offset Point) Rect {
	return Rect{
		Top:    r.Top + offset.Y,
		Right:  r.Right + offset.X,
		Bottom: r.Bottom + offset.Y,
		Left:   r.Left + offset.X,
	}
}

// ContainsPoint returns true if p lies inside the rectangle.
// All four edges count as inside.
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// Intersect returns the overlap of two rectangles.
// If the rectangles don't overlap, returns an empty Rect.
func (r Rect) Intersect(other Rect) Rect {
	out := Rect{
		Top:    max(r.Top, other.Top),
		Right:  min(r.Right, other.Right),
		Bottom: min(r.Bottom, other.Bottom),
		Left:   max(r.Left, other.Left),
	}
	if out.IsEmpty() {
		return Rect{}
	}
	return out
}

// Intersects returns true if the two rectangles overlap.
// Touching edges do not count as overlapping.
func (r Rect) Intersects(other Rect) bool {
	return !r.Intersect(other).IsEmpty()
}

// Union returns the smallest rectangle that contains both rectangles.
// If either rectangle is empty, returns the other rectangle.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	return Rect{
		Top:    min(r.Top, other.Top),
		Right:  max(r.Right, other.Right),
		Bottom: max(r.Bottom, other.Bottom),
		Left:   min(r.Left, other.Left),
	}
}

// Area returns the area of the rectangle, or 0 when empty.
func (r Rect) Area() float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.Width() * r.Height()
}
