package pathmaker_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/brunoczim/gridord/cardgraph"
	"github.com/brunoczim/gridord/pathmaker"
	"github.com/brunoczim/gridord/vec2"
)

func pt(x, y int) vec2.Point[int] { return vec2.New(x, y) }

func boxValid(minX, minY, maxX, maxY int) func(vec2.Point[int]) bool {
	return func(p vec2.Point[int]) bool {
		return p.X >= minX && p.X < maxX && p.Y >= minY && p.Y < maxY
	}
}

func TestMakePathStraight(t *testing.T) {
	g := cardgraph.New[int]()
	start, goal := pt(0, 0), pt(5, 7)
	g.CreateVertex(start)
	g.CreateVertex(goal)

	buf := pathmaker.NewBuffer[int]()
	steps, ok := pathmaker.MakePath(g, start, goal, 100, boxValid(0, 0, 10, 10), buf)
	if !ok {
		t.Fatalf("expected a path to be found")
	}
	want := []pathmaker.Step[int]{
		{Direction: vec2.Down, Magnitude: 7},
		{Direction: vec2.Right, Magnitude: 5},
	}
	if diff := cmp.Diff(want, steps); diff != "" {
		t.Fatalf("steps mismatch (-want +got):\n%s", diff)
	}

	corner := pt(0, 7)
	if !g.HasVertex(corner) {
		t.Fatalf("expected new vertex at corner %v", corner)
	}
	if !g.AreConnected(start, corner) {
		t.Fatalf("expected %v connected to %v", start, corner)
	}
	if !g.AreConnected(corner, goal) {
		t.Fatalf("expected %v connected to %v", corner, goal)
	}
	if g.Len() != 3 {
		t.Fatalf("expected graph to gain exactly one vertex, got %d total", g.Len())
	}
}

func TestMakePathSameStartAndGoal(t *testing.T) {
	g := cardgraph.New[int]()
	p := pt(2, 2)
	g.CreateVertex(p)

	buf := pathmaker.NewBuffer[int]()
	steps, ok := pathmaker.MakePath(g, p, p, 1, boxValid(0, 0, 10, 10), buf)
	if !ok {
		t.Fatalf("expected success for start == goal")
	}
	if len(steps) != 0 {
		t.Fatalf("expected zero-step path, got %+v", steps)
	}
	if g.Len() != 1 {
		t.Fatalf("expected no graph mutation, got %d vertices", g.Len())
	}
}

func TestMakePathNoPath(t *testing.T) {
	g := cardgraph.New[int]()
	start, goal := pt(0, 0), pt(5, 5)
	g.CreateVertex(start)
	g.CreateVertex(goal)

	buf := pathmaker.NewBuffer[int]()
	wall := func(p vec2.Point[int]) bool {
		return p == start || p == goal
	}
	_, ok := pathmaker.MakePath(g, start, goal, 1, wall, buf)
	if ok {
		t.Fatalf("expected no path when goal is unreachable")
	}
}

func TestMakePathRespectsMaxExpansions(t *testing.T) {
	g := cardgraph.New[int]()
	start, goal := pt(0, 0), pt(50, 50)
	g.CreateVertex(start)
	g.CreateVertex(goal)

	buf := pathmaker.NewBuffer[int]()
	_, ok := pathmaker.MakePath(g, start, goal, 1, boxValid(0, 0, 100, 100), buf, pathmaker.WithMaxExpansions(5))
	if ok {
		t.Fatalf("expected search to give up within the expansion cap")
	}
}

func TestMakePathMultiCornerDetour(t *testing.T) {
	g := cardgraph.New[int]()
	start, goal := pt(0, 0), pt(2, 2)
	g.CreateVertex(start)
	g.CreateVertex(goal)

	// A single-cell-wide S-shaped corridor: these five points are the only
	// ones reachable, so the path is forced regardless of tie-breaking.
	corridor := map[vec2.Point[int]]bool{
		pt(0, 0): true,
		pt(1, 0): true,
		pt(1, 1): true,
		pt(2, 1): true,
		pt(2, 2): true,
	}
	valid := func(p vec2.Point[int]) bool { return corridor[p] }

	buf := pathmaker.NewBuffer[int]()
	steps, ok := pathmaker.MakePath(g, start, goal, 5, valid, buf)
	if !ok {
		t.Fatalf("expected a path to be found")
	}
	want := []pathmaker.Step[int]{
		{Direction: vec2.Right, Magnitude: 1},
		{Direction: vec2.Down, Magnitude: 1},
		{Direction: vec2.Right, Magnitude: 1},
		{Direction: vec2.Down, Magnitude: 1},
	}
	if diff := cmp.Diff(want, steps); diff != "" {
		t.Fatalf("steps mismatch (-want +got):\n%s", diff)
	}

	chain := []vec2.Point[int]{start, pt(1, 0), pt(1, 1), pt(2, 1), goal}
	for _, p := range chain {
		if !g.HasVertex(p) {
			t.Fatalf("expected corner %v to become a vertex", p)
		}
	}
	for i := 1; i < len(chain); i++ {
		if !g.AreConnected(chain[i-1], chain[i]) {
			t.Fatalf("expected %v connected to %v", chain[i-1], chain[i])
		}
	}
	if g.Len() != 5 {
		t.Fatalf("expected graph to gain exactly three vertices, got %d total", g.Len())
	}
}

func TestMakePathBufferIsReusable(t *testing.T) {
	g := cardgraph.New[int]()
	a, b, c := pt(0, 0), pt(3, 0), pt(3, 3)
	g.CreateVertex(a)
	g.CreateVertex(b)
	g.CreateVertex(c)

	buf := pathmaker.NewBuffer[int]()
	if _, ok := pathmaker.MakePath(g, a, b, 1, boxValid(0, 0, 10, 10), buf); !ok {
		t.Fatalf("first MakePath call failed")
	}
	if _, ok := pathmaker.MakePath(g, b, c, 1, boxValid(0, 0, 10, 10), buf); !ok {
		t.Fatalf("second MakePath call on reused buffer failed")
	}
}

func TestMakePathPanicsWhenStartNotVertex(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic when start is not a vertex")
		}
	}()
	g := cardgraph.New[int]()
	g.CreateVertex(pt(1, 1))
	buf := pathmaker.NewBuffer[int]()
	pathmaker.MakePath(g, pt(0, 0), pt(1, 1), 1, boxValid(0, 0, 10, 10), buf)
}
