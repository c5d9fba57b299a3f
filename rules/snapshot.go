package rules

import (
	"time"

	"github.com/battlesnakeio/solo/board"
)

// Snapshot is a read-only copy of the engine state for renderers and the
// frame store.
type Snapshot struct {
	GameID    string
	Turn      int64
	Width     int
	Height    int
	Snake     []board.Cell
	Food      *board.Cell
	Result    Result
	Direction board.Direction
	Interval  time.Duration
	FoodEaten int
	Death     *Death
}

// Head returns the head cell of the snake in the snapshot. It panics on a
// snapshot without a snake; check Snake before calling it on a hand built one.
func (s Snapshot) Head() board.Cell {
	return s.Snake[len(s.Snake)-1]
}

// Over reports whether the snapshot shows a finished game.
func (s Snapshot) Over() bool { return s.Result.Over() }

// Occupied reports whether the snake covers c.
func (s Snapshot) Occupied(c board.Cell) bool {
	for _, b := range s.Snake {
		if b == c {
			return true
		}
	}
	return false
}
