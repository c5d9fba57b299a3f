package rules

import (
	"sync"
	"time"

	"github.com/battlesnakeio/solo/board"
	"github.com/battlesnakeio/solo/config"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// ErrGameOver is returned when a direction is proposed to a finished game.
var ErrGameOver = errors.New("rules: game is over")

// Engine owns the simulation state of a single game. Step and Propose are
// safe to call from different goroutines.
type Engine struct {
	mu sync.Mutex

	cfg        config.Config
	id         string
	snake      *board.Snake
	food       board.Cell
	hasFood    bool
	directions *DirectionController
	spawner    *FoodSpawner
	speed      SpeedPolicy
	interval   time.Duration
	result     Result
	death      *Death
	turn       int64
	foodEaten  int
}

// ID returns the game ID.
func (e *Engine) ID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.id
}

// Config returns a copy of the config the engine was built with.
func (e *Engine) Config() config.Config { return e.cfg.Clone() }

// Propose offers a new heading for a later step. An illegal reversal ends
// the game immediately and the returned error wraps ErrRejected. A full
// queue drops the heading and returns an error wrapping ErrQueueFull.
func (e *Engine) Propose(d board.Direction) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.result.Over() {
		return ErrGameOver
	}
	err := e.directions.Propose(d, e.snake.Len())
	if errors.Cause(err) == ErrRejected {
		e.lose(DeathCauseIllegalReversal)
	}
	return err
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshot()
}

func (e *Engine) snapshot() Snapshot {
	s := Snapshot{
		GameID:    e.id,
		Turn:      e.turn,
		Width:     e.cfg.GridWidth,
		Height:    e.cfg.GridHeight,
		Snake:     e.snake.Cells(),
		Result:    e.result,
		Direction: e.directions.Current(),
		Interval:  e.interval,
		FoodEaten: e.foodEaten,
	}
	if e.hasFood {
		food := e.food
		s.Food = &food
	}
	if e.death != nil {
		death := *e.death
		s.Death = &death
	}
	return s
}

func (e *Engine) lose(cause string) {
	e.result = ResultLost
	e.death = &Death{Turn: e.turn, Cause: cause}
	log.WithFields(log.Fields{
		"GameID": e.id,
		"Turn":   e.turn,
		"Cause":  cause,
		"Length": e.snake.Len(),
	}).Info("snake died")
}
