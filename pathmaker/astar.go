package pathmaker

import (
	"github.com/brunoczim/gridord/cardgraph"
	"github.com/brunoczim/gridord/vec2"
)

// MakePath searches for a minimum-(distance,turns) path from start to goal
// over the region accepted by valid, using buf as scratch space (reset at
// the start of every call, so the same Buffer may be reused across many
// MakePath calls). start and goal must already be vertices of g; violating
// that is a programming error and panics.
//
// On success, the graph is mutated: every corner of the winning path and
// every pre-existing vertex the path passes through becomes an anchor,
// consecutive anchors are connected, and the run-length-encoded step
// sequence describing the path from start to goal is returned alongside
// true. If no path exists, or the search exceeds Options.MaxExpansions, the
// graph is left untouched and MakePath returns (nil, false).
func MakePath[T vec2.Coord](g *cardgraph.Graph[T], start, goal vec2.Point[T], penalty T, valid func(vec2.Point[T]) bool, buf *Buffer[T], opts ...Option) ([]Step[T], bool) {
	if !g.HasVertex(start) {
		panic("pathmaker: start is not a vertex of g")
	}
	if !g.HasVertex(goal) {
		panic("pathmaker: goal is not a vertex of g")
	}
	if start == goal {
		return []Step[T]{}, true
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	buf.Reset()
	buf.travelled[start] = cost[T]{}
	buf.push(start, cost[T]{distance: start.ManhattanDistance(goal)})

	expansions := 0
	found := false
	for {
		it, ok := buf.pop()
		if !ok {
			break
		}
		p := it.point
		if buf.visited[p] {
			continue
		}
		buf.visited[p] = true
		if p == goal {
			found = true
			break
		}
		expansions++
		if cfg.MaxExpansions > 0 && expansions > cfg.MaxExpansions {
			break
		}

		enteringDir, hasPred := directionInto(buf, p)
		base := buf.travelled[p]
		for _, d := range vec2.Directions() {
			next, ok := p.StepChecked(d)
			if !ok || !valid(next) || buf.visited[next] {
				continue
			}
			turn := hasPred && enteringDir != d
			stepDistance := T(1)
			if turn {
				stepDistance += penalty
			}
			candidate := base.add(stepDistance, turn)
			if old, had := buf.travelled[next]; had && !candidate.less(old) {
				continue
			}
			buf.travelled[next] = candidate
			buf.preds[next] = predEntry[T]{from: p, dir: d}
			buf.push(next, cost[T]{distance: candidate.distance + next.ManhattanDistance(goal), turns: candidate.turns})
		}
	}

	if !found {
		return nil, false
	}

	points, dirs := reconstruct(buf, start, goal)
	spliceIntoGraph(g, points, dirs)
	return encodeSteps[T](dirs), true
}

func directionInto[T vec2.Coord](buf *Buffer[T], p vec2.Point[T]) (vec2.Direction, bool) {
	pe, ok := buf.preds[p]
	if !ok {
		return 0, false
	}
	return pe.dir, true
}

// reconstruct walks buf.preds from goal back to start, returning the full
// point sequence (start..goal inclusive) and the direction of each step
// between consecutive points.
func reconstruct[T vec2.Coord](buf *Buffer[T], start, goal vec2.Point[T]) ([]vec2.Point[T], []vec2.Direction) {
	var revPoints []vec2.Point[T]
	var revDirs []vec2.Direction
	cur := goal
	revPoints = append(revPoints, cur)
	for cur != start {
		pe := buf.preds[cur]
		revDirs = append(revDirs, pe.dir)
		cur = pe.from
		revPoints = append(revPoints, cur)
	}

	points := make([]vec2.Point[T], len(revPoints))
	for i, p := range revPoints {
		points[len(revPoints)-1-i] = p
	}
	dirs := make([]vec2.Direction, len(revDirs))
	for i, d := range revDirs {
		dirs[len(revDirs)-1-i] = d
	}
	return points, dirs
}

// encodeSteps coalesces consecutive same-direction entries of dirs into
// run-length-encoded Steps.
func encodeSteps[T vec2.Coord](dirs []vec2.Direction) []Step[T] {
	if len(dirs) == 0 {
		return []Step[T]{}
	}
	steps := make([]Step[T], 0, len(dirs))
	runDir := dirs[0]
	var runLen T = 1
	for _, d := range dirs[1:] {
		if d == runDir {
			runLen++
			continue
		}
		steps = append(steps, Step[T]{Direction: runDir, Magnitude: runLen})
		runDir = d
		runLen = 1
	}
	steps = append(steps, Step[T]{Direction: runDir, Magnitude: runLen})
	return steps
}

// spliceIntoGraph materialises the winning path into g: every corner and
// every pre-existing vertex along the walk becomes an anchor, and
// consecutive anchors are connected.
func spliceIntoGraph[T vec2.Coord](g *cardgraph.Graph[T], points []vec2.Point[T], dirs []vec2.Direction) {
	anchor := points[0]
	last := len(points) - 1
	for i := 1; i <= last; i++ {
		p := points[i]
		isCorner := i < last && dirs[i-1] != dirs[i]
		isGoal := i == last
		if !isCorner && !isGoal && !g.HasVertex(p) {
			continue
		}
		g.CreateVertex(p)
		g.Connect(anchor, p)
		anchor = p
	}
}
