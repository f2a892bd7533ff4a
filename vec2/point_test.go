package vec2_test

import (
	"errors"
	"math"
	"testing"

	"github.com/brunoczim/gridord/vec2"
)

func TestPointAddSub(t *testing.T) {
	p := vec2.New(1, 2)
	q := vec2.New(3, -5)
	if got, want := p.Add(q), vec2.New(4, -3); got != want {
		t.Fatalf("Add = %v, want %v", got, want)
	}
	if got, want := p.Sub(q), vec2.New(-2, 7); got != want {
		t.Fatalf("Sub = %v, want %v", got, want)
	}
}

func TestManhattanDistance(t *testing.T) {
	p := vec2.New(0, 0)
	q := vec2.New(3, -4)
	if got, want := p.ManhattanDistance(q), 7; got != want {
		t.Fatalf("ManhattanDistance = %d, want %d", got, want)
	}
}

func TestStraightDirection(t *testing.T) {
	cases := []struct {
		p, q vec2.Point[int]
		dir  vec2.Direction
		ok   bool
	}{
		{vec2.New(0, 0), vec2.New(0, 5), vec2.Down, true},
		{vec2.New(0, 0), vec2.New(0, -5), vec2.Up, true},
		{vec2.New(0, 0), vec2.New(5, 0), vec2.Right, true},
		{vec2.New(0, 0), vec2.New(-5, 0), vec2.Left, true},
		{vec2.New(0, 0), vec2.New(0, 0), 0, false},
		{vec2.New(0, 0), vec2.New(3, 3), 0, false},
	}
	for _, c := range cases {
		got, ok := c.p.StraightDirection(c.q)
		if ok != c.ok {
			t.Fatalf("StraightDirection(%v,%v) ok = %v, want %v", c.p, c.q, ok, c.ok)
		}
		if ok && got != c.dir {
			t.Fatalf("StraightDirection(%v,%v) = %v, want %v", c.p, c.q, got, c.dir)
		}
	}
}

func TestStepVariants(t *testing.T) {
	max := int8(math.MaxInt8)
	p := vec2.New(max, int8(0))

	if got := p.Step(vec2.Right); got.X != -max-1 {
		t.Fatalf("Step should wrap on overflow, got X=%d", got.X)
	}

	if _, ok := p.StepChecked(vec2.Right); ok {
		t.Fatalf("StepChecked should report overflow")
	}

	if got := p.StepSaturating(vec2.Right); got.X != max {
		t.Fatalf("StepSaturating should clamp to max, got X=%d", got.X)
	}
}

func TestParsePointRoundTrip(t *testing.T) {
	p := vec2.New(-12, 34)
	s := p.String()
	got, err := vec2.ParsePoint[int](s, 10)
	if err != nil {
		t.Fatalf("ParsePoint(%q) error: %v", s, err)
	}
	if got != p {
		t.Fatalf("ParsePoint(%q) = %v, want %v", s, got, p)
	}
}

func TestParsePointMissingSeparator(t *testing.T) {
	_, err := vec2.ParsePoint[int]("12", 10)
	if !errors.Is(err, vec2.ErrMissingSeparator) {
		t.Fatalf("expected ErrMissingSeparator, got %v", err)
	}
}

func TestParsePointBadCoordinate(t *testing.T) {
	_, err := vec2.ParsePoint[int]("abc,5", 10)
	var bad *vec2.BadCoordinateError
	if !errors.As(err, &bad) {
		t.Fatalf("expected *BadCoordinateError, got %v", err)
	}
	if bad.Axis != vec2.X {
		t.Fatalf("expected failure on X axis, got %v", bad.Axis)
	}
}

func TestDirectionRecord(t *testing.T) {
	rec := vec2.NewDirectionRecord(func(d vec2.Direction) int { return int(d) })
	for _, d := range vec2.Directions() {
		if got := rec.Get(d); got != int(d) {
			t.Fatalf("Get(%v) = %d, want %d", d, got, int(d))
		}
	}
	rec2 := rec.Set(vec2.Up, 99)
	if rec2.Get(vec2.Up) != 99 {
		t.Fatalf("Set should update the targeted direction")
	}
	if rec.Get(vec2.Up) != int(vec2.Up) {
		t.Fatalf("Set should not mutate the receiver")
	}
}
