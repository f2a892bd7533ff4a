package rect_test

import (
	"testing"

	"github.com/brunoczim/gridord/rect"
	"github.com/brunoczim/gridord/vec2"
)

func TestFromHalfOpenAndContains(t *testing.T) {
	r := rect.FromHalfOpen(vec2.New(0, 0), vec2.New(3, 2))
	if r.IsEmpty() {
		t.Fatalf("expected non-empty rectangle")
	}
	for _, p := range []vec2.Point[int]{vec2.New(0, 0), vec2.New(2, 1)} {
		if !r.Contains(p) {
			t.Fatalf("expected %v to be contained", p)
		}
	}
	for _, p := range []vec2.Point[int]{vec2.New(3, 0), vec2.New(0, 2), vec2.New(-1, 0)} {
		if r.Contains(p) {
			t.Fatalf("expected %v not to be contained", p)
		}
	}
}

func TestFromClosedInclusiveEnd(t *testing.T) {
	r := rect.FromClosed(vec2.New(1, 1), vec2.New(3, 3))
	if got, want := r.Size, vec2.New(3, 3); got != want {
		t.Fatalf("Size = %v, want %v", got, want)
	}
	if got, want := r.EndInclusive(), vec2.New(3, 3); got != want {
		t.Fatalf("EndInclusive = %v, want %v", got, want)
	}
}

func TestEmptyRectangleIterationYieldsNothing(t *testing.T) {
	r := rect.New(vec2.New(0, 0), vec2.New(0, 0))
	for range r.Rows() {
		t.Fatalf("expected no rows from an empty rectangle")
	}
	for range r.Columns() {
		t.Fatalf("expected no columns from an empty rectangle")
	}
	if got := r.Borders(); got != nil {
		t.Fatalf("expected nil borders for empty rectangle, got %v", got)
	}
	if got, want := r.EndInclusive(), vec2.New(-1, -1); got != want {
		t.Fatalf("EndInclusive = %v, want %v", got, want)
	}
}

func TestIntersection(t *testing.T) {
	a := rect.FromHalfOpen(vec2.New(0, 0), vec2.New(5, 5))
	b := rect.FromHalfOpen(vec2.New(3, 3), vec2.New(8, 8))
	got, ok := a.Intersection(b)
	if !ok {
		t.Fatalf("expected overlap")
	}
	want := rect.FromHalfOpen(vec2.New(3, 3), vec2.New(5, 5))
	if got != want {
		t.Fatalf("Intersection = %v, want %v", got, want)
	}

	c := rect.FromHalfOpen(vec2.New(10, 10), vec2.New(12, 12))
	if _, ok := a.Intersection(c); ok {
		t.Fatalf("expected no overlap between disjoint rectangles")
	}
}

func TestBordersSingleRow(t *testing.T) {
	r := rect.FromHalfOpen(vec2.New(0, 0), vec2.New(3, 1))
	got := r.Borders()
	want := []vec2.Point[int]{vec2.New(0, 0), vec2.New(2, 0), vec2.New(1, 0)}
	if len(got) != len(want) {
		t.Fatalf("Borders() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Borders()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestBordersSquare(t *testing.T) {
	r := rect.FromHalfOpen(vec2.New(0, 0), vec2.New(3, 3))
	got := r.Borders()
	want := []vec2.Point[int]{
		vec2.New(0, 0), vec2.New(0, 1), vec2.New(0, 2),
		vec2.New(2, 0), vec2.New(2, 1), vec2.New(2, 2),
		vec2.New(1, 0),
		vec2.New(1, 2),
	}
	if len(got) != len(want) {
		t.Fatalf("Borders() length = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Borders()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRowsOrder(t *testing.T) {
	r := rect.FromHalfOpen(vec2.New(0, 0), vec2.New(2, 2))
	var got []vec2.Point[int]
	for p := range r.Rows() {
		got = append(got, p)
	}
	want := []vec2.Point[int]{vec2.New(0, 0), vec2.New(1, 0), vec2.New(0, 1), vec2.New(1, 1)}
	if len(got) != len(want) {
		t.Fatalf("Rows() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Rows()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
