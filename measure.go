package dnd

import "github.com/grindlemire/go-dnd/internal/measure"

// Item is one entry of a stacked list.
type Item = measure.Item

// List describes a list of items stacked along an axis.
type List = measure.List

// Measured is the geometry of one stacked list.
type Measured = measure.Measured

// Stack measures a single list.
func Stack(l List) (Measured, error) {
	return measure.Stack(l)
}

// Board measures several lists into the collections Resolve takes.
func Board(lists ...List) (DraggableMap, DroppableMap, error) {
	return measure.Board(lists...)
}
