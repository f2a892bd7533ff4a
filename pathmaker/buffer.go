package pathmaker

import (
	"container/heap"

	"github.com/brunoczim/gridord/vec2"
)

// predEntry records how a point was reached: the point stepped from and the
// direction of that step. start never gets an entry, which is how "p has no
// predecessor, so there is no turn" is recognised during expansion.
type predEntry[T vec2.Coord] struct {
	from vec2.Point[T]
	dir  vec2.Direction
}

// item is one entry on the frontier: a candidate point and the priority it
// was enqueued with (travelled cost plus heuristic, per doc.go).
type item[T vec2.Coord] struct {
	point    vec2.Point[T]
	priority cost[T]
}

type frontier[T vec2.Coord] []*item[T]

func (f frontier[T]) Len() int            { return len(f) }
func (f frontier[T]) Less(i, j int) bool  { return f[i].priority.less(f[j].priority) }
func (f frontier[T]) Swap(i, j int)       { f[i], f[j] = f[j], f[i] }
func (f *frontier[T]) Push(x interface{}) { *f = append(*f, x.(*item[T])) }
func (f *frontier[T]) Pop() interface{} {
	old := *f
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]
	return it
}

// Buffer holds the working state of a turn-penalised A* search: the
// frontier heap, the best-known travelled cost per point, the visited set,
// and the predecessor table used both for "was this a turn" checks and for
// path reconstruction. A Buffer may be reused across many MakePath calls on
// the same or different graphs — Reset clears it without discarding the
// underlying map and slice allocations, kept caller-owned here since a
// single region is typically searched many times in a row.
type Buffer[T vec2.Coord] struct {
	frontier  frontier[T]
	travelled map[vec2.Point[T]]cost[T]
	visited   map[vec2.Point[T]]bool
	preds     map[vec2.Point[T]]predEntry[T]
}

// NewBuffer returns an empty, ready-to-use Buffer.
func NewBuffer[T vec2.Coord]() *Buffer[T] {
	return &Buffer[T]{
		travelled: make(map[vec2.Point[T]]cost[T]),
		visited:   make(map[vec2.Point[T]]bool),
		preds:     make(map[vec2.Point[T]]predEntry[T]),
	}
}

// Reset clears the buffer for reuse in a new MakePath call, keeping the
// maps' and the frontier slice's existing capacity.
func (b *Buffer[T]) Reset() {
	b.frontier = b.frontier[:0]
	clear(b.travelled)
	clear(b.visited)
	clear(b.preds)
}

func (b *Buffer[T]) push(p vec2.Point[T], priority cost[T]) {
	heap.Push(&b.frontier, &item[T]{point: p, priority: priority})
}

func (b *Buffer[T]) pop() (*item[T], bool) {
	if b.frontier.Len() == 0 {
		return nil, false
	}
	return heap.Pop(&b.frontier).(*item[T]), true
}
