package vec2

// DirectionRecord is a total mapping from Direction to V, backed by four
// fields rather than a map — indexing by direction is a pattern match, not a
// hash lookup. cardgraph uses DirectionRecord[bool] as its per-vertex
// edge-presence record; callers needing a different V (e.g. a per-direction
// cost) may reuse it directly.
type DirectionRecord[V any] struct {
	up, down, left, right V
}

// NewDirectionRecord builds a record by evaluating f once per direction, in
// canonical order (Up, Down, Left, Right).
func NewDirectionRecord[V any](f func(Direction) V) DirectionRecord[V] {
	return DirectionRecord[V]{
		up:    f(Up),
		down:  f(Down),
		left:  f(Left),
		right: f(Right),
	}
}

// Get returns the value stored for d.
func (r DirectionRecord[V]) Get(d Direction) V {
	switch d {
	case Up:
		return r.up
	case Down:
		return r.down
	case Left:
		return r.left
	case Right:
		return r.right
	default:
		panic("vec2: invalid Direction value")
	}
}

// Set returns a copy of r with d's value replaced by v.
func (r DirectionRecord[V]) Set(d Direction, v V) DirectionRecord[V] {
	switch d {
	case Up:
		r.up = v
	case Down:
		r.down = v
	case Left:
		r.left = v
	case Right:
		r.right = v
	default:
		panic("vec2: invalid Direction value")
	}
	return r
}
