// Package session drives the impact engine across the lifetime of one drag.
//
// A [Drag] plays the part of the caller the engine expects: it lifts the item,
// feeds each new pointer position to impact.Resolve together with the previous
// impact, derives the user direction from consecutive positions and finally
// reports a drop [Result]. Independent drags share nothing and may run on
// different goroutines.
package session
