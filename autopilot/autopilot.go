// Package autopilot steers a snake for demo mode: it heads for the food
// along safe cells and avoids walking into pockets smaller than itself.
package autopilot

import (
	"roboshep/game"
	"roboshep/game/types"
)

// Next picks the heading to request before the next tick. When every move is
// fatal it keeps the current heading.
func Next(s game.State) types.Heading {
	head := s.Head()
	occupied := make(map[types.Point]bool, s.Len())
	for _, part := range s.Snake {
		occupied[part] = true
	}

	best := s.Heading
	bestScore := -1 << 31
	for _, h := range candidates(s.Heading) {
		next := head.Add(h.Delta())
		if isDanger(s.Grid, occupied, next) {
			continue
		}

		score := -manhattan(next, s.Food)
		if reachable(s.Grid, occupied, next, s.Len()) < s.Len() {
			score -= s.Grid.Cells() * 2
		}
		if h == s.Heading {
			score++ // prefer straight on ties
		}
		if score > bestScore {
			best, bestScore = h, score
		}
	}
	return best
}

// candidates returns the three headings that are not a reversal.
func candidates(current types.Heading) []types.Heading {
	out := make([]types.Heading, 0, 3)
	for _, h := range types.Headings {
		if h != current.Inverse() {
			out = append(out, h)
		}
	}
	return out
}

func isDanger(grid types.Grid, occupied map[types.Point]bool, p types.Point) bool {
	return !grid.Contains(p) || occupied[p]
}

// reachable counts free cells connected to start, stopping once limit is hit.
func reachable(grid types.Grid, occupied map[types.Point]bool, start types.Point, limit int) int {
	seen := map[types.Point]bool{start: true}
	queue := []types.Point{start}
	for len(queue) > 0 && len(seen) < limit {
		p := queue[0]
		queue = queue[1:]
		for _, h := range types.Headings {
			n := p.Add(h.Delta())
			if seen[n] || isDanger(grid, occupied, n) {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return len(seen)
}

func manhattan(a, b types.Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
