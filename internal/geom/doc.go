// Package geom provides the axis-aware 2D math used by the drag impact engine.
//
// It defines page-coordinate [Point] and [Rect] values plus the two layout
// axes, [Vertical] and [Horizontal]. Algorithms are written once against an
// [Axis] and read main/cross components through it instead of branching on
// the list direction.
package geom
