// Package scenario loads YAML drag scenarios and replays them through a drag
// session, recording the impact after every step.
//
// A scenario declares stacked lists, the item to lift and a list of steps
// (absolute moves, relative moves, list scrolls, drop or cancel). Reports can
// be rendered as tables or JSON.
package scenario
