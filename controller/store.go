package controller

import (
	"context"
	"sync"
	"time"

	"github.com/battlesnakeio/solo/config"
	"github.com/battlesnakeio/solo/rules"
	"github.com/pkg/errors"
)

var (
	// ErrNotFound is thrown when a game is not found.
	ErrNotFound = errors.New("controller: game not found")
	// ErrExists is returned when a game ID is created twice.
	ErrExists = errors.New("controller: game already exists")
)

// Game is the record kept for every game played in this process.
type Game struct {
	ID      string
	Width   int
	Height  int
	Status  rules.GameStatus
	Config  config.Config
	Created time.Time
}

// Store is the interface to the frame log backend.
type Store interface {
	CreateGame(context.Context, *Game, []rules.Snapshot) error
	SetGameStatus(c context.Context, id string, status rules.GameStatus) error
	PushGameFrame(c context.Context, id string, frame rules.Snapshot) error
	ListGameFrames(c context.Context, id string, limit, offset int) ([]rules.Snapshot, error)
	GetGame(context.Context, string) (*Game, error)
}

// InMemStore returns an in memory implementation of the Store interface.
func InMemStore() Store {
	return &inmem{
		games:  map[string]*Game{},
		frames: map[string][]rules.Snapshot{},
	}
}

type inmem struct {
	games  map[string]*Game
	frames map[string][]rules.Snapshot
	lock   sync.Mutex
}

func (in *inmem) CreateGame(ctx context.Context, g *Game, frames []rules.Snapshot) error {
	in.lock.Lock()
	defer in.lock.Unlock()

	if _, ok := in.games[g.ID]; ok {
		return errors.Wrapf(ErrExists, "game %s", g.ID)
	}
	clone := *g
	clone.Config = g.Config.Clone()
	in.games[g.ID] = &clone
	in.frames[g.ID] = append([]rules.Snapshot{}, frames...)
	return nil
}

func (in *inmem) SetGameStatus(ctx context.Context, id string, status rules.GameStatus) error {
	in.lock.Lock()
	defer in.lock.Unlock()

	g, ok := in.games[id]
	if !ok {
		return errors.Wrapf(ErrNotFound, "game %s", id)
	}
	g.Status = status
	return nil
}

func (in *inmem) PushGameFrame(ctx context.Context, id string, f rules.Snapshot) error {
	in.lock.Lock()
	defer in.lock.Unlock()

	if _, ok := in.games[id]; !ok {
		return errors.Wrapf(ErrNotFound, "game %s", id)
	}
	in.frames[id] = append(in.frames[id], f)
	return nil
}

// ListGameFrames pages through the frames of a game. A negative offset
// counts back from the latest frame.
func (in *inmem) ListGameFrames(ctx context.Context, id string, limit, offset int) ([]rules.Snapshot, error) {
	in.lock.Lock()
	defer in.lock.Unlock()

	if _, ok := in.games[id]; !ok {
		return nil, errors.Wrapf(ErrNotFound, "game %s", id)
	}
	frames := in.frames[id]

	if offset < 0 {
		offset = len(frames) + offset
		if offset < 0 {
			offset = 0
		}
	}

	if len(frames) == 0 || offset >= len(frames) {
		return nil, nil
	}
	if offset+limit >= len(frames) {
		limit = len(frames) - offset
	}
	return append([]rules.Snapshot{}, frames[offset:offset+limit]...), nil
}

func (in *inmem) GetGame(ctx context.Context, id string) (*Game, error) {
	in.lock.Lock()
	defer in.lock.Unlock()

	g, ok := in.games[id]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "game %s", id)
	}
	// Clone the game, since this could be modified after this is returned
	// and upset internal state inside the store.
	clone := *g
	clone.Config = g.Config.Clone()
	return &clone, nil
}
