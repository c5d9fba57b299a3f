package worker

import (
	"context"

	"github.com/battlesnakeio/solo/board"
	"github.com/battlesnakeio/solo/controller"
	"github.com/battlesnakeio/solo/rules"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Pilot picks a heading before each tick of a headless game. Returning
// false keeps the current heading.
type Pilot interface {
	Next(rules.Snapshot) (board.Direction, bool)
}

// Runner will run a game to completion without waiting between ticks. It
// stops early after maxTurns ticks when maxTurns is positive. Frames go to
// store when it is not nil.
func Runner(ctx context.Context, store controller.Store, e *rules.Engine, pilot Pilot, maxTurns int64) (rules.Snapshot, error) {
	snap := e.Snapshot()
	id := snap.GameID
	if store != nil {
		if err := store.SetGameStatus(ctx, id, rules.GameStatusRunning); err != nil {
			return snap, err
		}
	}

	for !snap.Over() {
		select {
		case <-ctx.Done():
			return snap, ctx.Err()
		default:
		}
		if maxTurns > 0 && snap.Turn >= maxTurns {
			log.WithField("GameID", id).
				WithField("Turn", snap.Turn).
				Info("turn limit reached")
			return snap, nil
		}

		if pilot != nil {
			if d, ok := pilot.Next(snap); ok {
				if err := e.Propose(d); err != nil && errors.Cause(err) != rules.ErrQueueFull {
					log.WithError(err).
						WithField("GameID", id).
						Debug("pilot proposal rejected")
				}
			}
		}

		snap = e.Step()
		ticks.Inc()
		if store != nil {
			if err := store.PushGameFrame(ctx, id, snap); err != nil {
				// The game is no longer tracked, nothing left to record to.
				return snap, err
			}
		}
	}

	log.WithField("GameID", id).
		WithField("Turn", snap.Turn).
		WithField("Result", snap.Result).
		Info("ending game")
	if store != nil {
		if err := store.SetGameStatus(ctx, id, rules.GameStatusComplete); err != nil {
			return snap, err
		}
	}
	return snap, nil
}
