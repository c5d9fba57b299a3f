package worker

import (
	"github.com/battlesnakeio/solo/board"
	"github.com/battlesnakeio/solo/rules"
)

// Greedy heads for the food along safe cells. A move is safe when it stays
// on the board, does not hit the body (tail included) and leaves at least as
// much reachable space as the snake is long. When no move is safe it picks
// the one with the most room.
type Greedy struct{}

// Next implements Pilot.
func (Greedy) Next(s rules.Snapshot) (board.Direction, bool) {
	if len(s.Snake) == 0 {
		return s.Direction, false
	}
	head := s.Head()
	occupied := make(map[board.Cell]bool, len(s.Snake))
	for _, c := range s.Snake {
		occupied[c] = true
	}

	best, bestRoom, bestDist, found := s.Direction, -1, 0, false
	for _, d := range board.Directions {
		if len(s.Snake) > 1 && d.IsOpposite(s.Direction) {
			continue
		}
		next := head.Move(d)
		if !board.InBounds(next, s.Width, s.Height) || occupied[next] {
			continue
		}
		room := reachable(next, s.Width, s.Height, occupied)
		if room > len(s.Snake) {
			room = len(s.Snake)
		}
		dist := 0
		if s.Food != nil {
			dist = manhattan(next, *s.Food)
		}
		if !found || room > bestRoom || (room == bestRoom && dist < bestDist) {
			best, bestRoom, bestDist, found = d, room, dist, true
		}
	}
	return best, found
}

func reachable(from board.Cell, width, height int, occupied map[board.Cell]bool) int {
	seen := map[board.Cell]bool{from: true}
	queue := []board.Cell{from}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, d := range board.Directions {
			n := c.Move(d)
			if seen[n] || occupied[n] || !board.InBounds(n, width, height) {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return len(seen)
}

func manhattan(a, b board.Cell) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
