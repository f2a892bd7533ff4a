package cardgraph

import (
	"iter"

	"github.com/brunoczim/gridord/vec2"
)

// CreateVertex adds p as an isolated-looking vertex, but immediately wires it
// into any straight edge it now sits inside of: for each direction d, if p's
// first map-neighbour q along d already carries an edge back toward p's side
// (edges[q][opposite(d)] = true), p's own edges[d] flag is set to true too.
//
// This is option (i) of the insertion ambiguity: neither neighbour's stored
// flag ever needs to change, because first-neighbour is always recomputed
// from the live map rather than cached. Once p exists, a's first neighbour
// along d is dynamically p instead of the old far vertex b, so a's
// consistency requirement ("first neighbour along d has the opposite flag
// set") is satisfied purely by p carrying the opposite flag — which this
// loop sets. Processing all four directions within the same call handles
// both the inserted-into-a-line case and the inserted-at-a-dead-end case
// uniformly.
//
// Returns false without effect if p is already a vertex.
func (g *Graph[T]) CreateVertex(p vec2.Point[T]) bool {
	if g.vertices.Contains(p) {
		return false
	}
	rec := vec2.NewDirectionRecord(func(d vec2.Direction) bool {
		_, qEdges, ok := g.vertices.FirstNeighbour(p, d)
		return ok && qEdges.Get(d.Opposite())
	})
	g.vertices.Insert(p, rec)
	return true
}

// RemoveVertex deletes p, preserving any pass-through edge along each axis:
// if p had edges on both sides of an axis, the two neighbours remain
// connected to each other once p is gone (first-neighbour recomputes past
// p). If p only had an edge on one side of an axis, that edge terminated at
// p and the neighbour's flag pointing back at p is cleared. Reports whether
// p was a vertex.
func (g *Graph[T]) RemoveVertex(p vec2.Point[T]) bool {
	rec, ok := g.vertices.Get(p)
	if !ok {
		return false
	}
	for _, d := range vec2.Directions() {
		q, _, ok := g.vertices.FirstNeighbour(p, d)
		if !ok {
			continue
		}
		if !rec.Get(d.Opposite()) {
			g.clearFlag(q, d.Opposite())
		}
	}
	g.vertices.Remove(p)
	return true
}

// RemoveWithEdges deletes p along with every edge incident to it: unlike
// RemoveVertex, pass-through edges are not reformed across the gap. Reports
// whether p was a vertex.
func (g *Graph[T]) RemoveWithEdges(p vec2.Point[T]) bool {
	rec, ok := g.vertices.Get(p)
	if !ok {
		return false
	}
	for _, d := range vec2.Directions() {
		if !rec.Get(d) {
			continue
		}
		q, _, ok := g.vertices.FirstNeighbour(p, d)
		if !ok {
			continue
		}
		g.clearFlag(q, d.Opposite())
	}
	g.vertices.Remove(p)
	return true
}

// clearFlag sets q's edge flag along d to false. q must be a vertex; this is
// only ever called with a q just produced by FirstNeighbour.
func (g *Graph[T]) clearFlag(q vec2.Point[T], d vec2.Direction) {
	rec, ok := g.vertices.Get(q)
	if !ok {
		return
	}
	g.vertices.Insert(q, rec.Set(d, false))
}

// Vertices returns a lazy sequence of every vertex, in Y-major then X-minor
// order.
func (g *Graph[T]) Vertices() iter.Seq[vec2.Point[T]] {
	return func(yield func(vec2.Point[T]) bool) {
		for p, _ := range g.vertices.Rows() {
			if !yield(p) {
				return
			}
		}
	}
}
