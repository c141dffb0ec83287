// Package dnd computes the impact of dragging an item over list-based layouts.
//
// Given the measured geometry of every list (droppable) and item (draggable),
// the pointer position and the previous impact, Resolve reports which items
// move out of the way, by how much, and where the dragged item would land:
// a slot in a list or a merge onto another item. Resolve is pure, so callers
// keep the previous impact themselves and pass it back on the next move.
//
// Users import this single package for the public API: geometry, the impact
// model, the lift and drag resolvers and a measurer for simple stacked lists.
package dnd
