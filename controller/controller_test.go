package controller

import (
	"context"
	"testing"

	"github.com/battlesnakeio/solo/board"
	"github.com/battlesnakeio/solo/config"
	"github.com/battlesnakeio/solo/rules"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.GridWidth, cfg.GridHeight = 10, 10
	cfg.InitialIntervalMs, cfg.SpeedStepMs, cfg.SpeedFloorMs = 500, 100, 200
	cfg.DirectionQueueSize = 3
	cfg.Seed = 3
	return cfg
}

func TestController_Create(t *testing.T) {
	ctx := context.Background()
	ctrl := New(InMemStore())

	e, err := ctrl.Create(ctx, testConfig())
	require.NoError(t, err)

	game, last, err := ctrl.Status(ctx, e.ID())
	require.NoError(t, err)
	require.Equal(t, e.ID(), game.ID)
	require.Equal(t, rules.GameStatusStopped, game.Status)
	require.NotNil(t, last)
	require.Equal(t, int64(0), last.Turn)
}

func TestController_CreateInvalid(t *testing.T) {
	cfg := testConfig()
	cfg.GridHeight = 0
	_, err := New(InMemStore()).Create(context.Background(), cfg)
	require.Error(t, err)
}

func TestController_Frames(t *testing.T) {
	ctx := context.Background()
	ctrl := New(InMemStore())
	e, err := ctrl.Create(ctx, testConfig())
	require.NoError(t, err)

	for i := 0; i < 250; i++ {
		require.NoError(t, ctrl.Store.PushGameFrame(ctx, e.ID(), rules.Snapshot{GameID: e.ID(), Turn: int64(i + 1)}))
	}

	frames, err := ctrl.Frames(ctx, e.ID())
	require.NoError(t, err)
	require.Len(t, frames, 251)
	for i, f := range frames {
		require.Equal(t, int64(i), f.Turn)
	}

	_, last, err := ctrl.Status(ctx, e.ID())
	require.NoError(t, err)
	require.Equal(t, int64(250), last.Turn)
}

func TestController_Restart(t *testing.T) {
	ctx := context.Background()
	ctrl := New(InMemStore())
	cfg := testConfig()
	cfg.InitialSnake = []board.Cell{{Row: 0, Col: 0}}
	cfg.InitialDirection = board.Up

	e, err := ctrl.Create(ctx, cfg)
	require.NoError(t, err)
	oldID := e.ID()
	e.Step()

	s, err := ctrl.Restart(ctx, e)
	require.NoError(t, err)
	require.NotEqual(t, oldID, s.GameID)

	old, err := ctrl.Store.GetGame(ctx, oldID)
	require.NoError(t, err)
	require.Equal(t, rules.GameStatusComplete, old.Status)

	game, _, err := ctrl.Status(ctx, s.GameID)
	require.NoError(t, err)
	require.Equal(t, rules.GameStatusStopped, game.Status)
}

func TestController_StatusNotFound(t *testing.T) {
	_, _, err := New(InMemStore()).Status(context.Background(), "nope")
	require.Error(t, err)
}
