package cardgraph

import "github.com/brunoczim/gridord/vec2"

// Connect adds an edge between a and b. Both must already be vertices, a and
// b must share a row or column, and b must be a's first map-neighbour in
// that direction (equivalently a must be b's first neighbour in the opposite
// direction) — violating any of these is a programming error and panics,
// matching the precondition-as-panic idiom used for construction errors
// elsewhere in this module. Returns false without effect if the edge already
// exists.
func (g *Graph[T]) Connect(a, b vec2.Point[T]) bool {
	d := g.requireAdjacent(a, b)
	recA, ok := g.vertices.Get(a)
	if !ok {
		panicf("Connect: %v is not a vertex", a)
	}
	if recA.Get(d) {
		return false
	}
	recB, _ := g.vertices.Get(b)
	g.vertices.Insert(a, recA.Set(d, true))
	g.vertices.Insert(b, recB.Set(d.Opposite(), true))
	return true
}

// Disconnect removes the edge between a and b, subject to the same
// adjacency precondition as Connect. Returns false without effect if the
// edge does not exist.
func (g *Graph[T]) Disconnect(a, b vec2.Point[T]) bool {
	d := g.requireAdjacent(a, b)
	recA, ok := g.vertices.Get(a)
	if !ok {
		panicf("Disconnect: %v is not a vertex", a)
	}
	if !recA.Get(d) {
		return false
	}
	recB, _ := g.vertices.Get(b)
	g.vertices.Insert(a, recA.Set(d, false))
	g.vertices.Insert(b, recB.Set(d.Opposite(), false))
	return true
}

// AreConnected reports whether a and b are joined by an edge. Unlike Connect
// and Disconnect, it never panics: a non-cardinal pair, or a pair with
// something between them, simply is not connected.
func (g *Graph[T]) AreConnected(a, b vec2.Point[T]) bool {
	d, ok := a.StraightDirection(b)
	if !ok {
		return false
	}
	rec, ok := g.vertices.Get(a)
	if !ok || !rec.Get(d) {
		return false
	}
	q, _, ok := g.vertices.FirstNeighbour(a, d)
	return ok && q == b
}

// ConnectedAt returns p's edge partner along d, if p has an edge there.
func (g *Graph[T]) ConnectedAt(p vec2.Point[T], d vec2.Direction) (vec2.Point[T], bool) {
	rec, ok := g.vertices.Get(p)
	if !ok || !rec.Get(d) {
		return vec2.Point[T]{}, false
	}
	q, _, ok := g.vertices.FirstNeighbour(p, d)
	if !ok {
		return vec2.Point[T]{}, false
	}
	return q, true
}

// requireAdjacent panics unless a and b are a valid Connect/Disconnect
// target pair, returning the direction from a to b.
func (g *Graph[T]) requireAdjacent(a, b vec2.Point[T]) vec2.Direction {
	d, ok := a.StraightDirection(b)
	if !ok {
		panicf("%v and %v do not share a row or column", a, b)
	}
	q, _, ok := g.vertices.FirstNeighbour(a, d)
	if !ok || q != b {
		panicf("%v is not the first map-neighbour of %v along %v", b, a, d)
	}
	return d
}
