package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/battlesnakeio/solo/controller"
	"github.com/battlesnakeio/solo/worker"
	"github.com/davecgh/go-spew/spew"
	termbox "github.com/nsf/termbox-go"
	"github.com/spf13/cobra"
)

var (
	maxTurns    int64 = 10000
	dump        bool
	replay      bool
	replayDelay = 100 * time.Millisecond
)

func init() {
	simCmd.Flags().Int64Var(&maxTurns, "max-turns", maxTurns, "stop after this many turns, 0 for no limit")
	simCmd.Flags().BoolVar(&dump, "dump", dump, "dump the final frame")
	simCmd.Flags().BoolVar(&replay, "replay", replay, "replay the recorded game in the terminal")
	simCmd.Flags().DurationVar(&replayDelay, "replay-delay", replayDelay, "delay between replayed frames")
}

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "run a headless game driven by the greedy autopilot",
	RunE: func(c *cobra.Command, args []string) error {
		cfg, err := gameFlags.build()
		if err != nil {
			return err
		}

		ctx := context.Background()
		ctrl := controller.New(controller.InstrumentStore(controller.InMemStore()))
		engine, err := ctrl.Create(ctx, cfg)
		if err != nil {
			return err
		}

		start := time.Now()
		final, err := worker.Runner(ctx, ctrl.Store, engine, worker.Greedy{}, maxTurns)
		if err != nil {
			return err
		}

		fmt.Printf("game %s: %s after %d turns, length %d, score %d (%s)\n",
			final.GameID, final.Result, final.Turn, len(final.Snake), final.FoodEaten, time.Since(start))
		if final.Death != nil {
			fmt.Printf("cause: %s\n", final.Death.Cause)
		}
		if dump {
			spew.Dump(final)
		}

		if !replay {
			return nil
		}
		frames, err := ctrl.Frames(ctx, final.GameID)
		if err != nil {
			return err
		}
		fh := &frameHolder{}
		fh.append(frames...)
		return replayFrames(fh, replayDelay)
	},
}

func replayFrames(fh *frameHolder, delay time.Duration) error {
	if err := termbox.Init(); err != nil {
		return err
	}
	defer termbox.Close()

	quit := make(chan struct{})
	go func() {
		for {
			ev := termbox.PollEvent()
			if ev.Type == termbox.EventKey || ev.Type == termbox.EventInterrupt {
				close(quit)
				return
			}
		}
	}()

	for i := 0; i < fh.count(); i++ {
		if err := render(fh.get(i), "replay - any key to quit"); err != nil {
			return err
		}
		select {
		case <-quit:
			return nil
		case <-time.After(delay):
		}
	}
	<-quit
	return nil
}
