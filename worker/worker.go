// Package worker provides the actual running of games in time. It owns the
// tick source: it steps the engine, re-arms its timer with the interval the
// engine reports and publishes every frame to the store and the renderer.
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/battlesnakeio/solo/controller"
	"github.com/battlesnakeio/solo/rules"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

var (
	ticks = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "solo",
		Subsystem: "worker",
		Name:      "ticks_total",
		Help:      "Ticks processed by the worker.",
	})
	tickDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "solo",
		Subsystem: "worker",
		Name:      "tick_seconds",
		Help:      "Time spent stepping and publishing a tick.",
	})
)

func init() {
	prometheus.MustRegister(ticks, tickDuration)
}

// Clock drives an engine with a timer whose interval follows the game
// speed. Pause and Resume may be called from any goroutine.
type Clock struct {
	Engine *rules.Engine
	// Store receives every frame. Optional.
	Store controller.Store
	// OnFrame is called with every frame after it is stored. Optional.
	OnFrame func(rules.Snapshot)

	once   sync.Once
	mu     sync.Mutex
	paused bool
	wake   chan struct{}
}

func (c *Clock) init() {
	c.once.Do(func() { c.wake = make(chan struct{}, 1) })
}

// Pause stops the tick source. The game state is left untouched.
func (c *Clock) Pause() { c.set(true) }

// Resume re-arms the tick source at the last known interval.
func (c *Clock) Resume() { c.set(false) }

// Toggle flips between paused and running and reports the new paused state.
func (c *Clock) Toggle() bool {
	paused := !c.Paused()
	c.set(paused)
	return paused
}

// Paused reports whether the clock is paused.
func (c *Clock) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}

func (c *Clock) set(paused bool) {
	c.init()
	c.mu.Lock()
	changed := c.paused != paused
	c.paused = paused
	c.mu.Unlock()

	if changed {
		select {
		case c.wake <- struct{}{}:
		default:
		}
	}
}

// Run ticks the engine until the game ends, returning nil, or until ctx is
// cancelled, returning ctx.Err().
func (c *Clock) Run(ctx context.Context) error {
	c.init()

	snap := c.Engine.Snapshot()
	if snap.Over() {
		return nil
	}

	timer := time.NewTimer(snap.Interval)
	defer timer.Stop()
	if c.Paused() {
		stopTimer(timer)
		c.setStatus(ctx, snap.GameID, rules.GameStatusPaused)
	} else {
		c.setStatus(ctx, snap.GameID, rules.GameStatusRunning)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-c.wake:
			stopTimer(timer)
			snap = c.Engine.Snapshot()
			fields := log.Fields{"GameID": snap.GameID, "Turn": snap.Turn}
			if c.Paused() {
				log.WithFields(fields).Info("clock paused")
				c.setStatus(ctx, snap.GameID, rules.GameStatusPaused)
				continue
			}
			log.WithFields(fields).WithField("Interval", snap.Interval).Info("clock resumed")
			c.setStatus(ctx, snap.GameID, rules.GameStatusRunning)
			timer.Reset(snap.Interval)

		case <-timer.C:
			if c.Paused() {
				continue
			}
			start := time.Now()
			snap = c.Engine.Step()
			c.publish(ctx, snap)
			ticks.Inc()
			tickDuration.Observe(time.Since(start).Seconds())

			if snap.Over() {
				log.WithFields(log.Fields{
					"GameID": snap.GameID,
					"Turn":   snap.Turn,
					"Result": snap.Result,
				}).Info("game over")
				c.setStatus(ctx, snap.GameID, rules.GameStatusComplete)
				return nil
			}
			timer.Reset(snap.Interval)
		}
	}
}

func (c *Clock) publish(ctx context.Context, snap rules.Snapshot) {
	if c.Store != nil {
		if err := c.Store.PushGameFrame(ctx, snap.GameID, snap); err != nil {
			log.WithError(err).WithField("GameID", snap.GameID).Warn("unable to store frame")
		}
	}
	if c.OnFrame != nil {
		c.OnFrame(snap)
	}
}

func (c *Clock) setStatus(ctx context.Context, id string, status rules.GameStatus) {
	if c.Store == nil {
		return
	}
	if err := c.Store.SetGameStatus(ctx, id, status); err != nil {
		log.WithError(err).WithField("GameID", id).Warn("unable to set game status")
	}
}

func stopTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}
