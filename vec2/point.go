// File: point.go
// Role: Point[T] — a pair (x, y) of a generic signed-integer coordinate, and
// its arithmetic: addition, subtraction, dot product, magnitude, and the
// wrapping/saturating/checked step variants every coordinate-producing
// operation needs.
package vec2

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Coord is the constraint every gridord coordinate type must satisfy: a
// signed integer. Signed because coordinates may be negative; integer
// because floating-point coordinates are explicitly out of scope.
type Coord = constraints.Signed

// Point is an ordered pair (X, Y) of coordinate T. The zero value is the
// origin.
type Point[T Coord] struct {
	X, Y T
}

// New builds a Point from its coordinates.
func New[T Coord](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Get returns the coordinate of p along axis a.
func (p Point[T]) Get(a Axis) T {
	if a == X {
		return p.X
	}
	return p.Y
}

// With returns a copy of p with axis a set to v.
func (p Point[T]) With(a Axis, v T) Point[T] {
	if a == X {
		p.X = v
	} else {
		p.Y = v
	}
	return p
}

// Add returns p+q, wrapping on overflow (Go's native fixed-width behavior).
func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q, wrapping on overflow.
func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

// Dot returns the dot product p.X*q.X + p.Y*q.Y, wrapping on overflow.
func (p Point[T]) Dot(q Point[T]) T {
	return p.X*q.X + p.Y*q.Y
}

// Magnitude returns the integer (Manhattan) magnitude |X|+|Y|, wrapping on
// overflow. This is the heuristic pathmaker uses for A*.
func (p Point[T]) Magnitude() T {
	return absT(p.X) + absT(p.Y)
}

// ManhattanDistance returns the Manhattan distance between p and q.
func (p Point[T]) ManhattanDistance(q Point[T]) T {
	return p.Sub(q).Magnitude()
}

// StraightDirection reports the cardinal direction from p to q, when p and q
// share exactly one coordinate and differ in the other. The second return
// value is false when p == q or when p and q share neither or both
// coordinates' "difference" (i.e. they are not in a cardinal line).
func (p Point[T]) StraightDirection(q Point[T]) (Direction, bool) {
	switch {
	case p.X == q.X && p.Y == q.Y:
		return 0, false
	case p.X == q.X:
		if q.Y > p.Y {
			return Down, true
		}
		return Up, true
	case p.Y == q.Y:
		if q.X > p.X {
			return Right, true
		}
		return Left, true
	default:
		return 0, false
	}
}

// Flip returns p with its two coordinates swapped (X becomes Y, Y becomes X).
func (p Point[T]) Flip() Point[T] {
	return Point[T]{X: p.Y, Y: p.X}
}

// RecenterOn returns p expressed relative to origin o (p-o); the inverse of
// adding o back.
func (p Point[T]) RecenterOn(o Point[T]) Point[T] {
	return p.Sub(o)
}

func absT[T Coord](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// bitSize returns the bit width of T, used by the saturating/checked helpers
// below to find T's min and max without a type switch over every possible
// signed integer type.
func bitSize[T Coord]() uint {
	var zero T
	return uint(unsafe.Sizeof(zero)) * 8
}

// Bounds returns the minimum and maximum representable values of T.
func Bounds[T Coord]() (min, max T) {
	bits := bitSize[T]()
	max = T(uint64(1)<<(bits-1) - 1)
	min = -max - 1
	return min, max
}

func addChecked[T Coord](a, b T) (T, bool) {
	sum := a + b
	// Two's-complement overflow check: overflow happened iff the sign of the
	// result disagrees with what the signs of the operands demand.
	if b > 0 && sum < a {
		return 0, false
	}
	if b < 0 && sum > a {
		return 0, false
	}
	return sum, true
}

func addSaturating[T Coord](a, b T) T {
	sum, ok := addChecked(a, b)
	if ok {
		return sum
	}
	min, max := Bounds[T]()
	if b > 0 {
		return max
	}
	return min
}

// AddChecked returns p+q and true, or the zero Point and false if either
// coordinate overflows T.
func AddChecked[T Coord](p, q Point[T]) (Point[T], bool) {
	x, ok := addChecked(p.X, q.X)
	if !ok {
		return Point[T]{}, false
	}
	y, ok := addChecked(p.Y, q.Y)
	if !ok {
		return Point[T]{}, false
	}
	return Point[T]{X: x, Y: y}, true
}

// AddSaturating returns p+q with each coordinate clamped to T's bounds on
// overflow instead of wrapping.
func AddSaturating[T Coord](p, q Point[T]) Point[T] {
	return Point[T]{X: addSaturating(p.X, q.X), Y: addSaturating(p.Y, q.Y)}
}

// unit returns the single-step offset for direction d as a Point: (0,-1) for
// Up, (0,1) for Down, (-1,0) for Left, (1,0) for Right.
func unit[T Coord](d Direction) Point[T] {
	switch d {
	case Up:
		return Point[T]{X: 0, Y: -1}
	case Down:
		return Point[T]{X: 0, Y: 1}
	case Left:
		return Point[T]{X: -1, Y: 0}
	case Right:
		return Point[T]{X: 1, Y: 0}
	default:
		panic(fmt.Sprintf("vec2: invalid Direction value %d", int(d)))
	}
}

// Step moves p one unit along d, wrapping on overflow. Panics are never
// raised by Step itself (wrapping cannot fail); callers that must detect
// overflow use StepChecked.
func (p Point[T]) Step(d Direction) Point[T] {
	return p.Add(unit[T](d))
}

// StepChecked moves p one unit along d, returning false instead of wrapping
// if the result would overflow T.
func (p Point[T]) StepChecked(d Direction) (Point[T], bool) {
	return AddChecked(p, unit[T](d))
}

// StepSaturating moves p one unit along d, clamping to T's bounds on
// overflow instead of wrapping.
func (p Point[T]) StepSaturating(d Direction) Point[T] {
	return AddSaturating(p, unit[T](d))
}

// StepWrapping moves p one unit along d, wrapping on overflow. Identical to
// Step; provided for symmetry with StepChecked/StepSaturating so call sites
// can name the variant they intend explicitly.
func (p Point[T]) StepWrapping(d Direction) Point[T] {
	return p.Step(d)
}

// ErrMissingSeparator indicates ParsePoint's input had no comma.
var ErrMissingSeparator = errors.New("vec2: missing comma separator")

// BadCoordinateError indicates one half of a ParsePoint input failed to
// parse as an integer.
type BadCoordinateError struct {
	// Axis identifies which half of the pair failed to parse.
	Axis Axis
	// Err is the underlying strconv.ParseInt failure.
	Err error
}

func (e *BadCoordinateError) Error() string {
	return fmt.Sprintf("vec2: bad %s coordinate: %v", e.Axis, e.Err)
}

func (e *BadCoordinateError) Unwrap() error { return e.Err }

// ParsePoint parses "<x><sep><y>" where sep is a single comma; both halves
// are trimmed and parsed as base-radix integers. Returns ErrMissingSeparator
// if s has no comma, or a *BadCoordinateError naming the offending axis.
func ParsePoint[T Coord](s string, radix int) (Point[T], error) {
	idx := strings.IndexByte(s, ',')
	if idx < 0 {
		return Point[T]{}, ErrMissingSeparator
	}
	xStr := strings.TrimSpace(s[:idx])
	yStr := strings.TrimSpace(s[idx+1:])

	bits := int(bitSize[T]())
	x, err := strconv.ParseInt(xStr, radix, bits)
	if err != nil {
		return Point[T]{}, &BadCoordinateError{Axis: X, Err: err}
	}
	y, err := strconv.ParseInt(yStr, radix, bits)
	if err != nil {
		return Point[T]{}, &BadCoordinateError{Axis: Y, Err: err}
	}

	return Point[T]{X: T(x), Y: T(y)}, nil
}

// String renders p as "x,y" — the format ParsePoint accepts back (radix 10).
func (p Point[T]) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}
