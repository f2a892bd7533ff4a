package cardgraph

import (
	"iter"

	"github.com/brunoczim/gridord/spatialmap"
	"github.com/brunoczim/gridord/vec2"
)

// Components returns a lazy sequence of the graph's connected components,
// each as an independent Graph holding the induced vertices and edges. The
// component boundary is discovered by depth-first search over map-neighbour
// edges, grounded on the same explicit-stack traversal style used
// throughout this codebase's ancestry rather than a recursive walk.
func (g *Graph[T]) Components() iter.Seq[*Graph[T]] {
	return func(yield func(*Graph[T]) bool) {
		visited := spatialmap.NewSet[T]()
		for root := range g.Vertices() {
			if visited.Contains(root) {
				continue
			}
			comp := New[T]()
			stack := []vec2.Point[T]{root}
			visited.Insert(root)
			for len(stack) > 0 {
				cur := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				rec, _ := g.vertices.Get(cur)
				comp.vertices.Insert(cur, rec)
				for _, d := range vec2.Directions() {
					if !rec.Get(d) {
						continue
					}
					next, _, ok := g.vertices.FirstNeighbour(cur, d)
					if !ok {
						continue
					}
					if visited.Insert(next) {
						stack = append(stack, next)
					}
				}
			}
			if !yield(comp) {
				return
			}
		}
	}
}

// Connections returns a lazy sequence of every edge, each yielded exactly
// once as (a, b) with a preceding b in Y-major-then-X-minor order. Forward
// direction (Down or Right) is used to name the edge's owning endpoint so
// no edge is produced twice.
func (g *Graph[T]) Connections() iter.Seq2[vec2.Point[T], vec2.Point[T]] {
	return func(yield func(vec2.Point[T], vec2.Point[T]) bool) {
		for v, rec := range g.vertices.Rows() {
			for _, d := range vec2.Directions() {
				if !d.Forward() || !rec.Get(d) {
					continue
				}
				next, _, ok := g.vertices.FirstNeighbour(v, d)
				if !ok {
					continue
				}
				if !yield(v, next) {
					return
				}
			}
		}
	}
}
