package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/battlesnakeio/solo/board"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// WinCondition selects how, if at all, a game can be won.
type WinCondition string

const (
	// WinNone means the game only ends in a loss.
	WinNone WinCondition = "none"
	// WinFillBoard means the game is won once the snake covers every cell.
	WinFillBoard WinCondition = "fillBoard"
)

// ParseWinCondition accepts "none" and "fillBoard" (case insensitive).
func ParseWinCondition(s string) (WinCondition, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return WinNone, nil
	case "fillboard", "fill-board", "fill":
		return WinFillBoard, nil
	}
	return WinNone, errors.Errorf("config: unknown win condition %q", s)
}

// Defaults. These can be tuned from the environment without touching flags.
var (
	GridWidth          = getEnvInt("SOLO_GRID_WIDTH", 10)
	GridHeight         = getEnvInt("SOLO_GRID_HEIGHT", 10)
	InitialIntervalMs  = getEnvInt("SOLO_INITIAL_INTERVAL_MS", 500)
	SpeedStepMs        = getEnvInt("SOLO_SPEED_STEP_MS", 100)
	SpeedFloorMs       = getEnvInt("SOLO_SPEED_FLOOR_MS", 200)
	DirectionQueueSize = getEnvInt("SOLO_DIRECTION_QUEUE", 3)
	InputRate          = rate.Limit(getEnvInt("SOLO_INPUT_RPS", 20))
	InputBurst         = getEnvInt("SOLO_INPUT_BURST", 4)
	Seed               = int64(getEnvInt("SOLO_SEED", 0))
)

// Config holds everything needed to start a game.
type Config struct {
	GridWidth          int
	GridHeight         int
	InitialIntervalMs  int
	SpeedStepMs        int
	SpeedFloorMs       int
	DirectionQueueSize int
	// InitialSnake lists the starting body from tail to head. Empty means a
	// single cell at the centre of the board.
	InitialSnake     []board.Cell
	InitialDirection board.Direction
	WinCondition     WinCondition
	// Seed feeds food placement. Zero picks a time based seed.
	Seed int64
}

// Default returns the configuration built from the package defaults.
func Default() Config {
	return Config{
		GridWidth:          GridWidth,
		GridHeight:         GridHeight,
		InitialIntervalMs:  InitialIntervalMs,
		SpeedStepMs:        SpeedStepMs,
		SpeedFloorMs:       SpeedFloorMs,
		DirectionQueueSize: DirectionQueueSize,
		InitialDirection:   board.Left,
		WinCondition:       WinNone,
		Seed:               Seed,
	}
}

// InitialInterval is InitialIntervalMs as a duration.
func (c Config) InitialInterval() time.Duration {
	return time.Duration(c.InitialIntervalMs) * time.Millisecond
}

// SpeedStep is SpeedStepMs as a duration.
func (c Config) SpeedStep() time.Duration {
	return time.Duration(c.SpeedStepMs) * time.Millisecond
}

// SpeedFloor is SpeedFloorMs as a duration.
func (c Config) SpeedFloor() time.Duration {
	return time.Duration(c.SpeedFloorMs) * time.Millisecond
}

// StartingSnake returns the configured initial body, or the board centre.
func (c Config) StartingSnake() []board.Cell {
	if len(c.InitialSnake) > 0 {
		out := make([]board.Cell, len(c.InitialSnake))
		copy(out, c.InitialSnake)
		return out
	}
	return []board.Cell{{Row: c.GridHeight / 2, Col: c.GridWidth / 2}}
}

// Clone returns a copy that shares no memory with c.
func (c Config) Clone() Config {
	if c.InitialSnake != nil {
		c.InitialSnake = append([]board.Cell{}, c.InitialSnake...)
	}
	return c
}

// Heading returns the direction a body is already travelling in, read from
// its last two cells. Single cells have no heading.
func Heading(body []board.Cell) (board.Direction, bool) {
	if len(body) < 2 {
		return board.Up, false
	}
	return board.DirectionBetween(body[len(body)-2], body[len(body)-1])
}

// Validate checks the configuration can produce a playable game.
func (c Config) Validate() error {
	if c.GridWidth <= 0 || c.GridHeight <= 0 {
		return errors.Errorf("config: grid must be positive, got %dx%d", c.GridWidth, c.GridHeight)
	}
	if c.InitialIntervalMs <= 0 {
		return errors.Errorf("config: initial interval must be positive, got %dms", c.InitialIntervalMs)
	}
	if c.SpeedStepMs < 0 {
		return errors.Errorf("config: speed step must not be negative, got %dms", c.SpeedStepMs)
	}
	if c.SpeedFloorMs <= 0 || c.SpeedFloorMs > c.InitialIntervalMs {
		return errors.Errorf("config: speed floor must be in (0, %d], got %dms", c.InitialIntervalMs, c.SpeedFloorMs)
	}
	if c.DirectionQueueSize <= 0 {
		return errors.Errorf("config: direction queue size must be positive, got %d", c.DirectionQueueSize)
	}
	if _, err := ParseWinCondition(string(c.WinCondition)); err != nil {
		return err
	}

	snake := board.NewSnake(c.StartingSnake()...)
	for _, cell := range snake.Body {
		if !board.InBounds(cell, c.GridWidth, c.GridHeight) {
			return errors.Errorf("config: initial snake cell %s is off the board", cell)
		}
	}
	if snake.SelfCollides() {
		return errors.New("config: initial snake overlaps itself")
	}
	if !snake.Contiguous() {
		return errors.New("config: initial snake is not contiguous")
	}
	if heading, ok := Heading(snake.Body); ok && c.InitialDirection.IsOpposite(heading) {
		return errors.Errorf("config: initial direction %s turns the snake back on itself, it is heading %s",
			c.InitialDirection, heading)
	}
	return nil
}

// ParseSnake reads a body written as space separated "row+col" keys, tail
// first.
func ParseSnake(s string) ([]board.Cell, error) {
	var cells []board.Cell
	for _, key := range strings.Fields(s) {
		c, err := board.DecodeKey(key)
		if err != nil {
			return nil, errors.Wrap(err, "config: initial snake")
		}
		cells = append(cells, c)
	}
	return cells, nil
}

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}
