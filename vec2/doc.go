// Package vec2 provides the generic 2-D point algebra, and the closed
// Direction/Axis enumerations, that the rest of gridord builds on.
//
// Everything here is a pure value type: no locking, no allocation beyond what
// an operation's return value needs, no hidden state. The coordinate type T
// is any signed integer (golang.org/x/exp/constraints.Signed) — signed
// because grid coordinates may be negative (see cardgraph's removal
// examples), integer because the rest of the module forbids floating-point
// coordinates by design.
//
// The Y axis increases downward: Direction.Up decreases Y, Direction.Down
// increases Y, Direction.Left decreases X, Direction.Right increases X.
package vec2
