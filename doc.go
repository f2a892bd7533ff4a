// Package gridord is an integer 2-D geometry toolkit for grid worlds: point
// and direction algebra, axis-aligned rectangles, a dual-indexed spatial
// map and set, a cardinal-edges-only connectivity graph, and a
// turn-penalised A* path maker that writes its result back into the graph.
//
// Everything is generic over a signed integer coordinate type
// (constraints.Signed): callers pick int, int32, int16, or any custom
// signed integer that fits their world's coordinate range.
//
// Under the hood, the toolkit is organized as:
//
//	vec2/       — Point, Direction, Axis: the pure value types everything else builds on
//	rect/       — Rectangle: an axis-aligned box over vec2.Point
//	spatialmap/ — Map and Set: a dual-indexed point-keyed container with O(log n) cardinal neighbour queries
//	cardgraph/  — Graph: an undirected graph whose edges run only along the four cardinal directions
//	pathmaker/  — MakePath: turn-penalised A* search that splices its result into a cardgraph.Graph
//
// None of these packages introduce concurrency of their own; callers
// serialize access the way they would for any other mutable Go value.
package gridord
