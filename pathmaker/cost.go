package pathmaker

import "github.com/brunoczim/gridord/vec2"

// cost is the (distance, turns) pair A* orders the frontier by, compared
// lexicographically: distance dominates, turns only break ties within equal
// distance.
type cost[T vec2.Coord] struct {
	distance T
	turns    int
}

// less reports whether c sorts strictly before other.
func (c cost[T]) less(other cost[T]) bool {
	if c.distance != other.distance {
		return c.distance < other.distance
	}
	return c.turns < other.turns
}

func (c cost[T]) add(distance T, turn bool) cost[T] {
	t := c.turns
	if turn {
		t++
	}
	return cost[T]{distance: c.distance + distance, turns: t}
}

// Step is one run-length-encoded leg of a path: Magnitude unit steps in
// Direction.
type Step[T vec2.Coord] struct {
	Direction vec2.Direction
	Magnitude T
}
