package rules

import (
	"testing"

	"github.com/battlesnakeio/solo/board"
	"github.com/battlesnakeio/solo/config"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	return config.Config{
		GridWidth:          10,
		GridHeight:         10,
		InitialIntervalMs:  500,
		SpeedStepMs:        100,
		SpeedFloorMs:       200,
		DirectionQueueSize: 3,
		InitialDirection:   board.Left,
		WinCondition:       config.WinNone,
		Seed:               42,
	}
}

func testEngine(t *testing.T, modify func(*config.Config)) *Engine {
	cfg := testConfig()
	if modify != nil {
		modify(&cfg)
	}
	e, err := NewEngine(cfg)
	require.NoError(t, err)
	return e
}

// placeFood moves the food to c. c must be free.
func placeFood(t *testing.T, e *Engine, c board.Cell) {
	e.mu.Lock()
	defer e.mu.Unlock()
	require.False(t, e.snake.Occupies(c), "food on snake")
	e.food = c
	e.hasFood = true
}

// placeFoodAway moves the food to the first free cell not in avoid.
func placeFoodAway(t *testing.T, e *Engine, avoid ...board.Cell) {
	for r := e.cfg.GridHeight - 1; r >= 0; r-- {
		for c := e.cfg.GridWidth - 1; c >= 0; c-- {
			cell := board.Cell{Row: r, Col: c}
			if e.snake.Occupies(cell) || contains(avoid, cell) {
				continue
			}
			placeFood(t, e, cell)
			return
		}
	}
	t.Fatal("no free cell for food")
}

func contains(cells []board.Cell, c board.Cell) bool {
	for _, x := range cells {
		if x == c {
			return true
		}
	}
	return false
}

func requireNoDuplicates(t *testing.T, cells []board.Cell) {
	seen := map[board.Cell]bool{}
	for _, c := range cells {
		require.False(t, seen[c], "duplicate cell %s in %v", c, cells)
		seen[c] = true
	}
}
