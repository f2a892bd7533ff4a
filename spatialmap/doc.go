// Package spatialmap provides Map[T,V], a mapping from vec2.Point[T] to V
// with O(log n) first-neighbour lookup along any cardinal direction, and
// Set[T], a thin façade over Map with V = struct{}.
//
// Representation: Map keeps two independent ordered indexes over the same
// points — one keyed by X outer / Y inner ("byX"), one keyed by Y outer / X
// inner ("byY") — so that a straight-line neighbour query in either axis is
// a single bucket lookup plus a binary search, never a full scan. The two
// indexes are always kept in lock-step: every mutating method updates both
// before returning, and an empty bucket is removed from its map rather than
// left as an empty slice (see Map.Remove in map.go).
//
// No ordered-map or B-tree package appears in any go.mod across the
// retrieved example corpus, so each bucket here is realized as a slice kept
// sorted by its inner key and probed with sort.Search — see DESIGN.md for
// why this is the one component documented as intentionally
// standard-library-only rather than grounded on a third-party structure.
package spatialmap
