package spatialmap

import (
	"iter"
	"sort"

	"github.com/brunoczim/gridord/vec2"
)

// Map is a mapping from vec2.Point[T] to V maintaining the dual-index
// representation described in doc.go. The zero value is not usable; build
// one with New.
type Map[T vec2.Coord, V any] struct {
	byX  map[T][]entry[T, V] // outer key: X, inner key: Y
	byY  map[T][]entry[T, V] // outer key: Y, inner key: X
	size int
}

// New returns an empty Map.
func New[T vec2.Coord, V any]() *Map[T, V] {
	return &Map[T, V]{
		byX: make(map[T][]entry[T, V]),
		byY: make(map[T][]entry[T, V]),
	}
}

// Len returns the number of points stored.
func (m *Map[T, V]) Len() int { return m.size }

// Contains reports whether p is in the map. O(log n).
func (m *Map[T, V]) Contains(p vec2.Point[T]) bool {
	_, _, found := m.lookup(p)
	return found
}

// lookup returns the X-bucket for p.X, the index of p.Y within it, and
// whether p is present.
func (m *Map[T, V]) lookup(p vec2.Point[T]) (bucket []entry[T, V], idx int, found bool) {
	bucket = m.byX[p.X]
	idx, found = bucketFind(bucket, p.Y)
	return
}

// Get returns the value stored at p, if any. O(log n).
func (m *Map[T, V]) Get(p vec2.Point[T]) (V, bool) {
	bucket, idx, found := m.lookup(p)
	if !found {
		var zero V
		return zero, false
	}
	return bucket[idx].val, true
}

// Insert sets p's value to v, returning the previous value (if any) and
// whether p was already present. O(log n) search plus O(bucket length)
// shift on the rare path where a new key lands inside an existing bucket.
func (m *Map[T, V]) Insert(p vec2.Point[T], v V) (V, bool) {
	xBucket, old, had := bucketUpsert(m.byX[p.X], p.Y, v)
	m.byX[p.X] = xBucket
	yBucket, _, _ := bucketUpsert(m.byY[p.Y], p.X, v)
	m.byY[p.Y] = yBucket
	if !had {
		m.size++
	}
	return old, had
}

// Create inserts v at p iff p is absent, returning true on insertion. If p
// is already present, the existing value is left untouched and Create
// returns false.
func (m *Map[T, V]) Create(p vec2.Point[T], v V) bool {
	if m.Contains(p) {
		return false
	}
	m.Insert(p, v)
	return true
}

// Update replaces p's value with v, returning the previous value. If p is
// absent, Update leaves the map untouched and returns a *NotPresentError
// carrying v.
func (m *Map[T, V]) Update(p vec2.Point[T], v V) (V, error) {
	old, had := m.Get(p)
	if !had {
		return old, notPresent(v)
	}
	m.Insert(p, v)
	return old, nil
}

// Remove deletes p from the map, returning its value and whether it was
// present. Empty outer buckets are pruned from both indexes.
func (m *Map[T, V]) Remove(p vec2.Point[T]) (V, bool) {
	xBucket, old, had := bucketRemove(m.byX[p.X], p.Y)
	if !had {
		return old, false
	}
	if len(xBucket) == 0 {
		delete(m.byX, p.X)
	} else {
		m.byX[p.X] = xBucket
	}
	yBucket, _, _ := bucketRemove(m.byY[p.Y], p.X)
	if len(yBucket) == 0 {
		delete(m.byY, p.Y)
	} else {
		m.byY[p.Y] = yBucket
	}
	m.size--
	return old, true
}

// neighbourRange resolves the bucket and the [lo,hi) index window holding
// every candidate neighbour of p along d, in ascending key order. Direction
// Up/Left consume the window in descending order (see Neighbours).
func (m *Map[T, V]) neighbourRange(p vec2.Point[T], d vec2.Direction, inclusive bool) (bucket []entry[T, V], lo, hi int, ascending bool) {
	var table map[T][]entry[T, V]
	var outer, ref T
	if d.Axis() == vec2.Y {
		table, outer, ref = m.byX, p.X, p.Y
	} else {
		table, outer, ref = m.byY, p.Y, p.X
	}
	bucket = table[outer]

	switch d {
	case vec2.Down, vec2.Right:
		ascending = true
		hi = len(bucket)
		if inclusive {
			lo = lowerBound(bucket, ref)
		} else {
			lo = upperBound(bucket, ref)
		}
	case vec2.Up, vec2.Left:
		ascending = false
		lo = 0
		if inclusive {
			hi = upperBound(bucket, ref)
		} else {
			hi = lowerBound(bucket, ref)
		}
	}

	return bucket, lo, hi, ascending
}

func (m *Map[T, V]) pointAt(p vec2.Point[T], d vec2.Direction, e entry[T, V]) vec2.Point[T] {
	if d.Axis() == vec2.Y {
		return vec2.New(p.X, e.key)
	}
	return vec2.New(e.key, p.Y)
}

func (m *Map[T, V]) iterate(p vec2.Point[T], d vec2.Direction, inclusive bool) iter.Seq2[vec2.Point[T], V] {
	return func(yield func(vec2.Point[T], V) bool) {
		bucket, lo, hi, ascending := m.neighbourRange(p, d, inclusive)
		if ascending {
			for i := lo; i < hi; i++ {
				if !yield(m.pointAt(p, d, bucket[i]), bucket[i].val) {
					return
				}
			}
		} else {
			for i := hi - 1; i >= lo; i-- {
				if !yield(m.pointAt(p, d, bucket[i]), bucket[i].val) {
					return
				}
			}
		}
	}
}

// Neighbours returns a lazy sequence of (point, value) for every point
// strictly past p along direction d, ordered from nearest to farthest.
// Excludes p itself even if p is in the map. O(log n) to locate the first
// element; each subsequent element is O(1) amortized.
func (m *Map[T, V]) Neighbours(p vec2.Point[T], d vec2.Direction) iter.Seq2[vec2.Point[T], V] {
	return m.iterate(p, d, false)
}

// NeighboursIncl is Neighbours, but includes p itself (with its current
// value) as the first element if p is in the map.
func (m *Map[T, V]) NeighboursIncl(p vec2.Point[T], d vec2.Direction) iter.Seq2[vec2.Point[T], V] {
	return m.iterate(p, d, true)
}

// FirstNeighbour returns the nearest point past p along d, if any.
func (m *Map[T, V]) FirstNeighbour(p vec2.Point[T], d vec2.Direction) (vec2.Point[T], V, bool) {
	bucket, lo, hi, ascending := m.neighbourRange(p, d, false)
	if lo >= hi {
		var zero V
		return vec2.Point[T]{}, zero, false
	}
	idx := lo
	if !ascending {
		idx = hi - 1
	}
	return m.pointAt(p, d, bucket[idx]), bucket[idx].val, true
}

// LastNeighbour returns the farthest point past p along d, if any.
func (m *Map[T, V]) LastNeighbour(p vec2.Point[T], d vec2.Direction) (vec2.Point[T], V, bool) {
	bucket, lo, hi, ascending := m.neighbourRange(p, d, false)
	if lo >= hi {
		var zero V
		return vec2.Point[T]{}, zero, false
	}
	idx := hi - 1
	if !ascending {
		idx = lo
	}
	return m.pointAt(p, d, bucket[idx]), bucket[idx].val, true
}

func sortedKeys[T vec2.Coord, V any](table map[T][]entry[T, V]) []T {
	keys := make([]T, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Rows iterates every stored point in Y-major, then X-minor order
// (ascending Y, then ascending X within each row). Restartable: every call
// produces a fresh sequence over the map's current contents.
func (m *Map[T, V]) Rows() iter.Seq2[vec2.Point[T], V] {
	return func(yield func(vec2.Point[T], V) bool) {
		for _, y := range sortedKeys(m.byY) {
			for _, e := range m.byY[y] {
				if !yield(vec2.New(e.key, y), e.val) {
					return
				}
			}
		}
	}
}

// Columns iterates every stored point in X-major, then Y-minor order
// (ascending X, then ascending Y within each column).
func (m *Map[T, V]) Columns() iter.Seq2[vec2.Point[T], V] {
	return func(yield func(vec2.Point[T], V) bool) {
		for _, x := range sortedKeys(m.byX) {
			for _, e := range m.byX[x] {
				if !yield(vec2.New(x, e.key), e.val) {
					return
				}
			}
		}
	}
}
