// Package pathmaker implements turn-penalised A* search over a
// cardgraph.Graph, splicing the winning path's corners back into the graph
// as new vertices and edges.
//
// The cost model is a lexicographic pair (distance, turns): every unit step
// contributes 1 to distance, and a direction change relative to the step
// that entered the current point contributes 1 to turns plus a caller-
// supplied penalty to distance. The heuristic is Manhattan distance to the
// goal, admissible whenever the penalty is non-negative.
//
// A Buffer holds the frontier, travelled-cost table, and predecessor table
// across repeated MakePath calls. It follows the same per-run scratch-struct
// shape as a typical Dijkstra runner, but is made explicitly caller-owned and
// reusable here since turn-penalised search is expected to run repeatedly
// over the same region — reset, not reallocated, between calls.
package pathmaker
