// Package rect provides Rectangle[T], the axis-aligned box used to bound the
// valid regions that cardgraph and pathmaker search over.
//
// A Rectangle is Start (its top-left corner, in the Y-increases-downward
// convention of package vec2) plus a non-negative Size. Like vec2, this
// package is a pure value type collaborator: no locking, no hidden state.
package rect
