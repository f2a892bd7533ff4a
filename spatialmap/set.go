package spatialmap

import (
	"iter"

	"github.com/brunoczim/gridord/vec2"
)

// Set is a Map[T, struct{}]: membership only, same dual-index neighbour
// queries. All operations defer to a wrapped Map.
type Set[T vec2.Coord] struct {
	m *Map[T, struct{}]
}

// NewSet returns an empty Set.
func NewSet[T vec2.Coord]() *Set[T] {
	return &Set[T]{m: New[T, struct{}]()}
}

// Len returns the number of points stored.
func (s *Set[T]) Len() int { return s.m.Len() }

// Contains reports whether p is in the set.
func (s *Set[T]) Contains(p vec2.Point[T]) bool {
	return s.m.Contains(p)
}

// Insert adds p to the set, returning true iff it was newly added.
func (s *Set[T]) Insert(p vec2.Point[T]) bool {
	return s.m.Create(p, struct{}{})
}

// Remove deletes p from the set, returning whether it was present.
func (s *Set[T]) Remove(p vec2.Point[T]) bool {
	_, had := s.m.Remove(p)
	return had
}

// FirstNeighbour returns the nearest point past p along d, if any.
func (s *Set[T]) FirstNeighbour(p vec2.Point[T], d vec2.Direction) (vec2.Point[T], bool) {
	n, _, ok := s.m.FirstNeighbour(p, d)
	return n, ok
}

// LastNeighbour returns the farthest point past p along d, if any.
func (s *Set[T]) LastNeighbour(p vec2.Point[T], d vec2.Direction) (vec2.Point[T], bool) {
	n, _, ok := s.m.LastNeighbour(p, d)
	return n, ok
}

// Neighbours returns a lazy sequence of points strictly past p along d,
// nearest to farthest.
func (s *Set[T]) Neighbours(p vec2.Point[T], d vec2.Direction) iter.Seq[vec2.Point[T]] {
	return func(yield func(vec2.Point[T]) bool) {
		for pt, _ := range s.m.Neighbours(p, d) {
			if !yield(pt) {
				return
			}
		}
	}
}

// NeighboursIncl is Neighbours, including p itself as the first element if
// it is a member.
func (s *Set[T]) NeighboursIncl(p vec2.Point[T], d vec2.Direction) iter.Seq[vec2.Point[T]] {
	return func(yield func(vec2.Point[T]) bool) {
		for pt, _ := range s.m.NeighboursIncl(p, d) {
			if !yield(pt) {
				return
			}
		}
	}
}

// Rows iterates every member in Y-major, then X-minor order.
func (s *Set[T]) Rows() iter.Seq[vec2.Point[T]] {
	return func(yield func(vec2.Point[T]) bool) {
		for pt, _ := range s.m.Rows() {
			if !yield(pt) {
				return
			}
		}
	}
}

// Columns iterates every member in X-major, then Y-minor order.
func (s *Set[T]) Columns() iter.Seq[vec2.Point[T]] {
	return func(yield func(vec2.Point[T]) bool) {
		for pt, _ := range s.m.Columns() {
			if !yield(pt) {
				return
			}
		}
	}
}
