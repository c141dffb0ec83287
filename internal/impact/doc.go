// Package impact computes what happens to a list while an item is dragged over it.
//
// For every pointer move the caller hands [Resolve] the current center of the
// dragged item, the measured geometry of all draggables and droppables, and the
// impact returned by the previous call. The result is a fresh [DragImpact]:
// which siblings are displaced, in what order, by how much, and where the item
// would land (or which item it would merge with) if dropped now.
//
// The package holds no state between calls. The previous impact is the only
// memory, which is what gives the sequence of calls its hysteresis: a pointer
// resting exactly on a threshold edge reproduces the previous impact.
//
// [HomeOnLift] seeds the first previous impact when a drag starts.
package impact
