package rect

import (
	"iter"

	"github.com/brunoczim/gridord/vec2"
)

// Rectangle is an axis-aligned box: Start is its top-left corner, Size is its
// (width, height) — both must be non-negative for the rectangle to be
// well-formed. A Size of (0,0) denotes an empty rectangle.
type Rectangle[T vec2.Coord] struct {
	Start vec2.Point[T]
	Size  vec2.Point[T]
}

// New builds a Rectangle from a start corner and a size.
func New[T vec2.Coord](start, size vec2.Point[T]) Rectangle[T] {
	return Rectangle[T]{Start: start, Size: size}
}

// FromHalfOpen builds a Rectangle from [start, end) — end is exclusive on
// both axes. It never panics: the size is computed with wrapping
// subtraction, and a negative or wrapped size is not rejected. Use
// FromHalfOpenChecked when end might precede start.
func FromHalfOpen[T vec2.Coord](start, end vec2.Point[T]) Rectangle[T] {
	return Rectangle[T]{Start: start, Size: end.Sub(start)}
}

// FromHalfOpenChecked is FromHalfOpen, reporting false instead of producing a
// negative size when end does not dominate start on both axes, or when the
// subtraction overflows T.
func FromHalfOpenChecked[T vec2.Coord](start, end vec2.Point[T]) (Rectangle[T], bool) {
	if end.X < start.X || end.Y < start.Y {
		return Rectangle[T]{}, false
	}
	// With end >= start the true difference is non-negative, so it overflowed
	// T exactly when the wrapped result is negative.
	size := end.Sub(start)
	if size.X < 0 || size.Y < 0 {
		return Rectangle[T]{}, false
	}
	return Rectangle[T]{Start: start, Size: size}, true
}

// FromClosed builds a Rectangle from [start, end] — end is inclusive on both
// axes, so Size is end-start+(1,1).
func FromClosed[T vec2.Coord](start, end vec2.Point[T]) Rectangle[T] {
	return FromHalfOpen(start, end.Add(vec2.Point[T]{X: 1, Y: 1}))
}

// FromClosedChecked is FromClosed, reporting false on overflow or when end
// does not dominate start on both axes.
func FromClosedChecked[T vec2.Coord](start, end vec2.Point[T]) (Rectangle[T], bool) {
	endExcl, ok := vec2.AddChecked(end, vec2.Point[T]{X: 1, Y: 1})
	if !ok {
		return Rectangle[T]{}, false
	}
	return FromHalfOpenChecked(start, endExcl)
}

// IsEmpty reports whether the rectangle contains no points.
func (r Rectangle[T]) IsEmpty() bool {
	return r.Size.X <= 0 || r.Size.Y <= 0
}

// End returns the exclusive end corner (Start+Size), wrapping on overflow.
func (r Rectangle[T]) End() vec2.Point[T] {
	return r.Start.Add(r.Size)
}

// EndInclusive returns the last point inside the rectangle, or Start-(1,1)
// for an empty rectangle, its documented degenerate case.
func (r Rectangle[T]) EndInclusive() vec2.Point[T] {
	if r.IsEmpty() {
		return r.Start.Sub(vec2.Point[T]{X: 1, Y: 1})
	}
	return r.Start.Add(r.Size.Sub(vec2.Point[T]{X: 1, Y: 1}))
}

// Contains reports whether p lies within the rectangle.
func (r Rectangle[T]) Contains(p vec2.Point[T]) bool {
	if r.IsEmpty() {
		return false
	}
	end := r.End()
	return p.X >= r.Start.X && p.X < end.X && p.Y >= r.Start.Y && p.Y < end.Y
}

// Overlaps reports whether r and other share at least one point.
func (r Rectangle[T]) Overlaps(other Rectangle[T]) bool {
	if r.IsEmpty() || other.IsEmpty() {
		return false
	}
	rEnd, oEnd := r.End(), other.End()
	return r.Start.X < oEnd.X && other.Start.X < rEnd.X &&
		r.Start.Y < oEnd.Y && other.Start.Y < rEnd.Y
}

// Intersection returns the overlapping region of r and other, wrapping on
// overflow; ok is false when the two rectangles do not overlap.
func (r Rectangle[T]) Intersection(other Rectangle[T]) (result Rectangle[T], ok bool) {
	if !r.Overlaps(other) {
		return Rectangle[T]{}, false
	}
	rEnd, oEnd := r.End(), other.End()
	start := vec2.New(maxT(r.Start.X, other.Start.X), maxT(r.Start.Y, other.Start.Y))
	end := vec2.New(minT(rEnd.X, oEnd.X), minT(rEnd.Y, oEnd.Y))
	return FromHalfOpen(start, end), true
}

// IntersectionChecked is Intersection, reporting false instead of wrapping
// if End() of either input overflows T.
func (r Rectangle[T]) IntersectionChecked(other Rectangle[T]) (result Rectangle[T], ok bool) {
	rEnd, rOk := vec2.AddChecked(r.Start, r.Size)
	oEnd, oOk := vec2.AddChecked(other.Start, other.Size)
	if !rOk || !oOk {
		return Rectangle[T]{}, false
	}
	start := vec2.New(maxT(r.Start.X, other.Start.X), maxT(r.Start.Y, other.Start.Y))
	end := vec2.New(minT(rEnd.X, oEnd.X), minT(rEnd.Y, oEnd.Y))
	if end.X <= start.X || end.Y <= start.Y {
		return Rectangle[T]{}, false
	}
	return FromHalfOpenChecked(start, end)
}

func maxT[T vec2.Coord](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func minT[T vec2.Coord](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Rows iterates every point in the rectangle in Y-major, X-minor order
// (row by row, left to right within each row). Empty for an empty
// rectangle.
func (r Rectangle[T]) Rows() iter.Seq[vec2.Point[T]] {
	return func(yield func(vec2.Point[T]) bool) {
		if r.IsEmpty() {
			return
		}
		end := r.End()
		for y := r.Start.Y; y < end.Y; y++ {
			for x := r.Start.X; x < end.X; x++ {
				if !yield(vec2.New(x, y)) {
					return
				}
			}
		}
	}
}

// Columns iterates every point in the rectangle in X-major, Y-minor order
// (column by column, top to bottom within each column). Empty for an empty
// rectangle.
func (r Rectangle[T]) Columns() iter.Seq[vec2.Point[T]] {
	return func(yield func(vec2.Point[T]) bool) {
		if r.IsEmpty() {
			return
		}
		end := r.End()
		for x := r.Start.X; x < end.X; x++ {
			for y := r.Start.Y; y < end.Y; y++ {
				if !yield(vec2.New(x, y)) {
					return
				}
			}
		}
	}
}

// Borders returns the perimeter points of r in the order: left column
// top-to-bottom, right column top-to-bottom, then the top row's inner
// points left-to-right, then the bottom row's inner points left-to-right.
// The row phases skip the columns already emitted by the column phases.
// Returns nil for an empty rectangle.
func (r Rectangle[T]) Borders() []vec2.Point[T] {
	if r.IsEmpty() {
		return nil
	}
	end := r.End()
	lastX, lastY := end.X-1, end.Y-1

	var out []vec2.Point[T]
	for y := r.Start.Y; y <= lastY; y++ {
		out = append(out, vec2.New(r.Start.X, y))
	}
	if r.Size.X > 1 {
		for y := r.Start.Y; y <= lastY; y++ {
			out = append(out, vec2.New(lastX, y))
		}
	}
	for x := r.Start.X + 1; x < lastX; x++ {
		out = append(out, vec2.New(x, r.Start.Y))
	}
	if r.Size.Y > 1 {
		if r.Size.X > 1 {
			for x := r.Start.X + 1; x < lastX; x++ {
				out = append(out, vec2.New(x, lastY))
			}
		}
	}

	return out
}
