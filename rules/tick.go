package rules

import (
	"github.com/battlesnakeio/solo/board"
	log "github.com/sirupsen/logrus"
)

// Step runs the game one tick and returns the updated state. It does
// nothing once the game is over.
func (e *Engine) Step() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.result.Over() {
		return e.snapshot()
	}

	// 1. consume the next heading
	// 2. wall collision leaves the snake where it was
	// 3. self collision commits the fatal move
	// 4. eat and grow, or just move
	dir := e.directions.Next()
	e.turn++
	newHead := e.snake.Head().Move(dir)

	if deathByOutOfBounds(newHead, e.cfg.GridWidth, e.cfg.GridHeight) {
		e.lose(DeathCauseWallCollision)
		return e.snapshot()
	}

	grown := e.snake.Clone()
	grown.Grow(newHead, tailExtension(e.snake, newHead, dir))
	if deathBySelfCollision(grown) {
		e.snake.Advance(newHead)
		e.lose(DeathCauseSnakeSelfCollision)
		return e.snapshot()
	}

	if e.hasFood && newHead == e.food {
		e.eat(grown)
		return e.snapshot()
	}

	e.snake.Advance(newHead)
	return e.snapshot()
}

func (e *Engine) eat(grown *board.Snake) {
	e.snake = grown
	e.foodEaten++
	e.interval = e.speed.OnGrowth(e.interval)

	log.WithFields(log.Fields{
		"GameID":   e.id,
		"Turn":     e.turn,
		"Food":     e.food,
		"Length":   grown.Len(),
		"Interval": e.interval,
	}).Info("snake ate")

	if checkForWin(e.cfg.WinCondition, e.cfg.GridWidth, e.cfg.GridHeight, e.snake) {
		e.result = ResultWon
		e.hasFood = false
		log.WithFields(log.Fields{
			"GameID": e.id,
			"Turn":   e.turn,
		}).Info("board filled")
		return
	}

	e.food, e.hasFood = e.spawner.Spawn(e.snake, e.cfg.GridWidth, e.cfg.GridHeight)
	if !e.hasFood {
		log.WithFields(log.Fields{
			"GameID": e.id,
			"Turn":   e.turn,
		}).Warn("no free cell left for food")
	}
}

// tailExtension picks the cell a growing snake keeps at its tail end. A
// single cell snake extends opposite to its heading from the new head;
// longer snakes extend opposite to the travel of the two tail-end cells.
// Either way the result is the cell the tail is about to vacate.
func tailExtension(s *board.Snake, newHead board.Cell, dir board.Direction) board.Cell {
	if s.Len() == 1 {
		return newHead.Move(dir.Opposite())
	}
	tail, next := s.Body[0], s.Body[1]
	travel, ok := board.DirectionBetween(tail, next)
	if !ok {
		return tail
	}
	return next.Move(travel.Opposite())
}
