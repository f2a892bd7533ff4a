package cardgraph

import (
	"fmt"

	"github.com/brunoczim/gridord/spatialmap"
	"github.com/brunoczim/gridord/vec2"
)

// VertexEdges records, for a single vertex, which of its four cardinal
// directions carry an edge. It is a vec2.DirectionRecord rather than a map:
// there are exactly four possible keys and indexing by direction is a
// pattern match, not a lookup.
type VertexEdges = vec2.DirectionRecord[bool]

// Graph is an undirected graph over grid points whose edges run only along
// the four cardinal directions. The zero value is not usable; build one
// with New or FromVertices.
type Graph[T vec2.Coord] struct {
	vertices *spatialmap.Map[T, VertexEdges]
}

// New returns an empty Graph.
func New[T vec2.Coord]() *Graph[T] {
	return &Graph[T]{vertices: spatialmap.New[T, VertexEdges]()}
}

// FromVertices returns a Graph containing every point in points as an
// isolated vertex (no edges). Duplicate points collapse to one vertex.
func FromVertices[T vec2.Coord](points ...vec2.Point[T]) *Graph[T] {
	g := New[T]()
	for _, p := range points {
		g.CreateVertex(p)
	}
	return g
}

// Len returns the number of vertices in the graph.
func (g *Graph[T]) Len() int { return g.vertices.Len() }

// HasVertex reports whether p is a vertex of the graph.
func (g *Graph[T]) HasVertex(p vec2.Point[T]) bool {
	return g.vertices.Contains(p)
}

// VertexEdges returns the edge flags stored at p, if p is a vertex.
func (g *Graph[T]) VertexEdges(p vec2.Point[T]) (VertexEdges, bool) {
	return g.vertices.Get(p)
}

// String renders a short summary, not the full vertex/edge listing.
func (g *Graph[T]) String() string {
	edges := 0
	for range g.Connections() {
		edges++
	}
	return fmt.Sprintf("cardgraph.Graph{vertices: %d, edges: %d}", g.vertices.Len(), edges)
}

func panicf(format string, args ...any) {
	panic(fmt.Sprintf("cardgraph: "+format, args...))
}
