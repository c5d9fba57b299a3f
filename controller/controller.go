// Package controller keeps track of the games played in this process: it
// creates engines, records their frames and answers status queries for the
// renderers and the CLI.
package controller

import (
	"context"
	"time"

	"github.com/battlesnakeio/solo/config"
	"github.com/battlesnakeio/solo/rules"
	log "github.com/sirupsen/logrus"
)

// New will initialize a new Controller.
func New(store Store) *Controller {
	return &Controller{Store: store}
}

// Controller creates games and exposes their recorded state.
type Controller struct {
	Store Store
}

// Create builds a new engine from cfg and records its initial frame.
func (c *Controller) Create(ctx context.Context, cfg config.Config) (*rules.Engine, error) {
	e, err := rules.NewEngine(cfg)
	if err != nil {
		return nil, err
	}
	if err := c.record(ctx, e.Snapshot(), cfg); err != nil {
		return nil, err
	}
	return e, nil
}

// Restart ends the current game of e, starts a new one in its place and
// records it.
func (c *Controller) Restart(ctx context.Context, e *rules.Engine) (rules.Snapshot, error) {
	if err := c.EndGame(ctx, e.ID()); err != nil {
		log.WithError(err).WithField("GameID", e.ID()).Warn("unable to end game before restart")
	}
	s := e.Restart()
	return s, c.record(ctx, s, e.Config())
}

// EndGame marks the game complete.
func (c *Controller) EndGame(ctx context.Context, id string) error {
	return c.Store.SetGameStatus(ctx, id, rules.GameStatusComplete)
}

// Status returns the game record and its latest frame.
func (c *Controller) Status(ctx context.Context, id string) (*Game, *rules.Snapshot, error) {
	game, err := c.Store.GetGame(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	frames, err := c.Store.ListGameFrames(ctx, id, 1, -1)
	if err != nil {
		return nil, nil, err
	}
	if len(frames) == 0 {
		return game, nil, nil
	}
	return game, &frames[0], nil
}

// Frames returns every frame recorded for the game, oldest first.
func (c *Controller) Frames(ctx context.Context, id string) ([]rules.Snapshot, error) {
	const page = 100
	var all []rules.Snapshot
	for offset := 0; ; offset += page {
		frames, err := c.Store.ListGameFrames(ctx, id, page, offset)
		if err != nil {
			return nil, err
		}
		all = append(all, frames...)
		if len(frames) < page {
			return all, nil
		}
	}
}

func (c *Controller) record(ctx context.Context, s rules.Snapshot, cfg config.Config) error {
	game := &Game{
		ID:      s.GameID,
		Width:   s.Width,
		Height:  s.Height,
		Status:  rules.GameStatusStopped,
		Config:  cfg,
		Created: time.Now(),
	}
	log.WithFields(log.Fields{
		"GameID": s.GameID,
		"Width":  s.Width,
		"Height": s.Height,
	}).Info("game created")
	return c.Store.CreateGame(ctx, game, []rules.Snapshot{s})
}
