package config

import (
	"os"
	"testing"
	"time"

	"github.com/battlesnakeio/solo/board"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	require.Equal(t, board.Left, c.InitialDirection)
	require.Equal(t, WinNone, c.WinCondition)
}

func TestDurations(t *testing.T) {
	c := Config{InitialIntervalMs: 500, SpeedStepMs: 100, SpeedFloorMs: 200}
	require.Equal(t, 500*time.Millisecond, c.InitialInterval())
	require.Equal(t, 100*time.Millisecond, c.SpeedStep())
	require.Equal(t, 200*time.Millisecond, c.SpeedFloor())
}

func TestStartingSnakeDefaultsToCentre(t *testing.T) {
	c := Default()
	c.GridWidth, c.GridHeight = 10, 10
	require.Equal(t, []board.Cell{{Row: 5, Col: 5}}, c.StartingSnake())

	c.GridWidth, c.GridHeight = 16, 16
	require.Equal(t, []board.Cell{{Row: 8, Col: 8}}, c.StartingSnake())

	c.InitialSnake = []board.Cell{{Row: 1, Col: 1}, {Row: 1, Col: 2}}
	require.Equal(t, c.InitialSnake, c.StartingSnake())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		Name   string
		Modify func(*Config)
	}{
		{"zero width", func(c *Config) { c.GridWidth = 0 }},
		{"negative height", func(c *Config) { c.GridHeight = -3 }},
		{"zero interval", func(c *Config) { c.InitialIntervalMs = 0 }},
		{"negative step", func(c *Config) { c.SpeedStepMs = -1 }},
		{"floor above initial", func(c *Config) { c.SpeedFloorMs = c.InitialIntervalMs + 1 }},
		{"zero floor", func(c *Config) { c.SpeedFloorMs = 0 }},
		{"empty queue", func(c *Config) { c.DirectionQueueSize = 0 }},
		{"bad win condition", func(c *Config) { c.WinCondition = "sometimes" }},
		{"snake off board", func(c *Config) { c.InitialSnake = []board.Cell{{Row: -1, Col: 0}} }},
		{"snake overlaps", func(c *Config) {
			c.InitialSnake = []board.Cell{{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 1, Col: 1}}
		}},
		{"snake gap", func(c *Config) { c.InitialSnake = []board.Cell{{Row: 1, Col: 1}, {Row: 1, Col: 3}} }},
		{"heading into neck", func(c *Config) {
			c.InitialSnake = []board.Cell{{Row: 5, Col: 4}, {Row: 5, Col: 5}}
			c.InitialDirection = board.Left
		}},
	}

	for _, test := range tests {
		c := Default()
		test.Modify(&c)
		require.Error(t, c.Validate(), test.Name)
	}
}

func TestValidateInitialDirection(t *testing.T) {
	c := Default()
	c.InitialSnake = []board.Cell{{Row: 5, Col: 4}, {Row: 5, Col: 5}}
	for _, d := range []board.Direction{board.Right, board.Up, board.Down} {
		c.InitialDirection = d
		require.NoError(t, c.Validate(), d.String())
	}

	// A single cell has no neck to turn into.
	c.InitialSnake = []board.Cell{{Row: 5, Col: 5}}
	c.InitialDirection = board.Left
	require.NoError(t, c.Validate())
}

func TestHeading(t *testing.T) {
	_, ok := Heading(nil)
	require.False(t, ok)
	_, ok = Heading([]board.Cell{{Row: 1, Col: 1}})
	require.False(t, ok)

	d, ok := Heading([]board.Cell{{Row: 3, Col: 2}, {Row: 2, Col: 2}, {Row: 2, Col: 3}})
	require.True(t, ok)
	require.Equal(t, board.Right, d)
}

func TestCloneCopiesSnake(t *testing.T) {
	c := Default()
	c.InitialSnake = []board.Cell{{Row: 1, Col: 1}, {Row: 1, Col: 2}}
	clone := c.Clone()
	clone.InitialSnake[0] = board.Cell{Row: 9, Col: 9}
	require.Equal(t, board.Cell{Row: 1, Col: 1}, c.InitialSnake[0])
}

func TestParseWinCondition(t *testing.T) {
	w, err := ParseWinCondition("none")
	require.NoError(t, err)
	require.Equal(t, WinNone, w)

	w, err = ParseWinCondition("fillBoard")
	require.NoError(t, err)
	require.Equal(t, WinFillBoard, w)

	for _, spelling := range []string{"fillboard", "FILLBOARD", "fill-board", "fill"} {
		w, err = ParseWinCondition(spelling)
		require.NoError(t, err, spelling)
		require.Equal(t, WinFillBoard, w, spelling)
	}

	w, err = ParseWinCondition("")
	require.NoError(t, err)
	require.Equal(t, WinNone, w)

	_, err = ParseWinCondition("maybe")
	require.Error(t, err)
}

func TestParseSnake(t *testing.T) {
	cells, err := ParseSnake("5+3 5+4  5+5")
	require.NoError(t, err)
	require.Equal(t, []board.Cell{{Row: 5, Col: 3}, {Row: 5, Col: 4}, {Row: 5, Col: 5}}, cells)

	_, err = ParseSnake("5+3 nope")
	require.Error(t, err)
}

func TestGetEnvInt(t *testing.T) {
	const key = "SOLO_TEST_ENV_INT"
	defer os.Unsetenv(key)

	require.Equal(t, 7, getEnvInt(key, 7))

	os.Setenv(key, "42")
	require.Equal(t, 42, getEnvInt(key, 7))

	os.Setenv(key, "forty-two")
	require.Equal(t, 7, getEnvInt(key, 7))
}
