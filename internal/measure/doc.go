// Package measure produces the geometry snapshots the impact engine consumes
// for simple stacked lists.
//
// It stands in for a real measurement layer in the replay tool, the terminal
// demo and tests: items are placed one after another along the list axis with
// a fixed gap, the way a single-line flex container would place them.
package measure
