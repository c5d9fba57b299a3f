package rules

import (
	"time"

	"github.com/battlesnakeio/solo/board"
	"github.com/battlesnakeio/solo/config"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
)

// NewEngine creates a new game based on the config passed in.
func NewEngine(cfg config.Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.Clone()
	// Validate accepts any spelling ParseWinCondition does; keep the canonical one.
	cfg.WinCondition, _ = config.ParseWinCondition(string(cfg.WinCondition))
	e := &Engine{cfg: cfg}
	e.reset()
	return e, nil
}

// reset builds the starting state. Callers hold mu or own e exclusively.
func (e *Engine) reset() {
	seed := e.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	e.id = uuid.NewV4().String()
	e.snake = board.NewSnake(e.cfg.StartingSnake()...)
	e.directions = NewDirectionController(e.cfg.InitialDirection, e.cfg.DirectionQueueSize)
	e.spawner = NewFoodSpawner(seed)
	e.speed = SpeedPolicy{Step: e.cfg.SpeedStep(), Floor: e.cfg.SpeedFloor()}
	e.interval = e.cfg.InitialInterval()
	e.result = ResultInProgress
	e.death = nil
	e.turn = 0
	e.foodEaten = 0
	e.food, e.hasFood = e.spawner.Spawn(e.snake, e.cfg.GridWidth, e.cfg.GridHeight)

	log.WithFields(log.Fields{
		"GameID": e.id,
		"Width":  e.cfg.GridWidth,
		"Height": e.cfg.GridHeight,
		"Seed":   seed,
	}).Debug("game created")
}

// Restart throws the current game away and starts a fresh one with a new
// ID from the same config.
func (e *Engine) Restart() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.reset()
	return e.snapshot()
}
