// Package cardgraph implements the cardinal connectivity graph: an
// undirected graph whose vertices are grid points and whose edges run only
// along the four cardinal directions.
//
// Graph is built directly on a spatialmap.Map[T, VertexEdges] — there is no
// separate adjacency list. Because a cardinal edge between two vertices is
// unique per direction, a per-vertex 4-tuple of booleans (VertexEdges) plus
// the underlying map's first-neighbour query fully reconstructs the
// adjacency relation; materialising a second, cached adjacency list would
// duplicate that invariant and invite drift between the two representations.
//
// Representation invariant ("consistency"): for every vertex a with
// edges[a][d] = true, letting b be a's first map-neighbour along d, b must
// exist and edges[b][opposite(d)] must be true. There is at most one edge
// between any two vertices, and it only exists between vertices that share a
// row or column with no other vertex strictly between them.
//
// Violating a Connect/Disconnect precondition (non-cardinal pair, or the
// target not being the first neighbour) is a programming error, not a
// runtime condition: it panics with a diagnostic rather than returning an
// error value.
package cardgraph
