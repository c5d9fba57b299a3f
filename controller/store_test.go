package controller

import (
	"context"
	"testing"

	"github.com/battlesnakeio/solo/board"
	"github.com/battlesnakeio/solo/config"
	"github.com/battlesnakeio/solo/rules"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func testFrames(id string, n int) []rules.Snapshot {
	frames := []rules.Snapshot{}
	for i := 0; i < n; i++ {
		frames = append(frames, rules.Snapshot{
			GameID: id,
			Turn:   int64(i),
			Snake:  []board.Cell{{Row: 5, Col: 5 - i}},
		})
	}
	return frames
}

func testStore(t *testing.T, s Store) {
	ctx := context.Background()
	frames := testFrames("myid", 3)

	err := s.CreateGame(ctx, &Game{ID: "myid", Width: 10, Height: 10, Status: rules.GameStatusStopped}, frames[:1])
	require.NoError(t, err)

	err = s.CreateGame(ctx, &Game{ID: "myid"}, nil)
	require.Equal(t, ErrExists, errors.Cause(err))

	g, err := s.GetGame(ctx, "myid")
	require.NoError(t, err)
	require.Equal(t, rules.GameStatusStopped, g.Status)
	require.Equal(t, 10, g.Width)

	require.NoError(t, s.PushGameFrame(ctx, "myid", frames[1]))
	require.NoError(t, s.PushGameFrame(ctx, "myid", frames[2]))

	list, err := s.ListGameFrames(ctx, "myid", 10, 0)
	require.NoError(t, err)
	require.Equal(t, frames, list)

	list, err = s.ListGameFrames(ctx, "myid", 1, -1)
	require.NoError(t, err)
	require.Equal(t, frames[2:], list)

	list, err = s.ListGameFrames(ctx, "myid", 1, 1)
	require.NoError(t, err)
	require.Equal(t, frames[1:2], list)

	list, err = s.ListGameFrames(ctx, "myid", 5, 7)
	require.NoError(t, err)
	require.Empty(t, list)

	require.NoError(t, s.SetGameStatus(ctx, "myid", rules.GameStatusComplete))
	g, err = s.GetGame(ctx, "myid")
	require.NoError(t, err)
	require.Equal(t, rules.GameStatusComplete, g.Status)
}

func testStoreNotFound(t *testing.T, s Store) {
	ctx := context.Background()

	_, err := s.GetGame(ctx, "notfound")
	require.Equal(t, ErrNotFound, errors.Cause(err))

	err = s.PushGameFrame(ctx, "notfound", rules.Snapshot{})
	require.Equal(t, ErrNotFound, errors.Cause(err))

	_, err = s.ListGameFrames(ctx, "notfound", 5, 0)
	require.Equal(t, ErrNotFound, errors.Cause(err))

	err = s.SetGameStatus(ctx, "notfound", rules.GameStatusRunning)
	require.Equal(t, ErrNotFound, errors.Cause(err))
}

func TestInMemStore(t *testing.T) {
	testStore(t, InMemStore())
	testStoreNotFound(t, InMemStore())
}

func TestInstrumentedStore(t *testing.T) {
	testStore(t, InstrumentStore(InMemStore()))
	testStoreNotFound(t, InstrumentStore(InMemStore()))
}

func TestGetGameReturnsClone(t *testing.T) {
	ctx := context.Background()
	s := InMemStore()
	require.NoError(t, s.CreateGame(ctx, &Game{ID: "a", Status: rules.GameStatusRunning}, nil))

	g, err := s.GetGame(ctx, "a")
	require.NoError(t, err)
	g.Status = rules.GameStatusError

	g, err = s.GetGame(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, rules.GameStatusRunning, g.Status)
}

func TestInMemStoreCopiesConfig(t *testing.T) {
	ctx := context.Background()
	s := InMemStore()

	snake := []board.Cell{{Row: 1, Col: 1}, {Row: 1, Col: 2}}
	g := &Game{ID: "myid", Config: config.Config{InitialSnake: snake}}
	require.NoError(t, s.CreateGame(ctx, g, nil))
	snake[0] = board.Cell{Row: 9, Col: 9}

	got, err := s.GetGame(ctx, "myid")
	require.NoError(t, err)
	require.Equal(t, board.Cell{Row: 1, Col: 1}, got.Config.InitialSnake[0])

	got.Config.InitialSnake[1] = board.Cell{Row: 8, Col: 8}
	again, err := s.GetGame(ctx, "myid")
	require.NoError(t, err)
	require.Equal(t, board.Cell{Row: 1, Col: 2}, again.Config.InitialSnake[1])
}
