package commands

import (
	"context"
	"os"

	"github.com/battlesnakeio/solo/board"
	"github.com/battlesnakeio/solo/config"
	"github.com/battlesnakeio/solo/controller"
	"github.com/battlesnakeio/solo/rules"
	"github.com/battlesnakeio/solo/worker"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

const helpText = "arrows/wasd move - p pause - r restart - q quit"

var (
	logFile    = "solo.log"
	inputRate  = float64(config.InputRate)
	inputBurst = config.InputBurst
)

func init() {
	playCmd.Flags().StringVar(&logFile, "log-file", logFile, "file receiving logs while the terminal is in use")
	playCmd.Flags().Float64Var(&inputRate, "input-rps", inputRate, "direction changes accepted per second")
	playCmd.Flags().IntVar(&inputBurst, "input-burst", inputBurst, "direction changes accepted in a burst")
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "play a game in the terminal",
	RunE: func(c *cobra.Command, args []string) error {
		cfg, err := gameFlags.build()
		if err != nil {
			return err
		}

		f, err := os.OpenFile(logFile, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
		if err != nil {
			return errors.Wrap(err, "unable to open log file")
		}
		defer f.Close()
		log.SetOutput(f)

		if err := termbox.Init(); err != nil {
			return err
		}
		defer termbox.Close()

		ctrl := controller.New(controller.InstrumentStore(controller.InMemStore()))
		engine, err := ctrl.Create(context.Background(), cfg)
		if err != nil {
			return err
		}

		s := &session{
			ctrl:    ctrl,
			engine:  engine,
			limiter: rate.NewLimiter(rate.Limit(inputRate), inputBurst),
			frames:  &frameHolder{},
		}
		return s.loop()
	},
}

// session ties the engine, its clock and the terminal together.
type session struct {
	ctrl    *controller.Controller
	engine  *rules.Engine
	limiter *rate.Limiter
	frames  *frameHolder

	clock  *worker.Clock
	cancel context.CancelFunc
	done   chan struct{}
}

func (s *session) start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})
	s.clock = &worker.Clock{
		Engine:  s.engine,
		Store:   s.ctrl.Store,
		OnFrame: s.show,
	}

	go func(clock *worker.Clock, done chan struct{}) {
		defer close(done)
		if err := clock.Run(ctx); err != nil && err != context.Canceled {
			log.WithError(err).Error("clock stopped")
		}
	}(s.clock, s.done)
}

func (s *session) stop() {
	s.cancel()
	<-s.done
}

func (s *session) show(frame rules.Snapshot) {
	s.frames.append(frame)
	s.draw()
}

func (s *session) draw() {
	frame := s.frames.latest()
	if frame == nil {
		return
	}
	status := helpText
	switch {
	case frame.Over():
		status = "r restart - q quit"
	case s.clock != nil && s.clock.Paused():
		status = "paused - p to resume"
	}
	if err := render(frame, status); err != nil {
		log.WithError(err).Warn("unable to render frame")
	}
}

func (s *session) restart() error {
	s.stop()
	snap, err := s.ctrl.Restart(context.Background(), s.engine)
	if err != nil {
		return err
	}
	s.frames.reset()
	s.frames.append(snap)
	s.start()
	s.draw()
	return nil
}

func (s *session) loop() error {
	s.frames.append(s.engine.Snapshot())
	s.start()
	defer s.stop()
	s.draw()

	for {
		ev := termbox.PollEvent()
		switch ev.Type {
		case termbox.EventError:
			return ev.Err
		case termbox.EventResize:
			s.draw()
		case termbox.EventKey:
			if ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC || ev.Ch == 'q' {
				return nil
			}
			switch ev.Ch {
			case 'p':
				s.clock.Toggle()
				s.draw()
				continue
			case 'r':
				if err := s.restart(); err != nil {
					return err
				}
				continue
			}
			if d, ok := keyDirection(ev); ok {
				s.propose(d)
			}
		}
	}
}

func (s *session) propose(d board.Direction) {
	if s.clock.Paused() || !s.limiter.Allow() {
		return
	}
	err := s.engine.Propose(d)
	if err == nil {
		return
	}
	log.WithError(err).WithField("Direction", d).Debug("direction not accepted")
	if errors.Cause(err) == rules.ErrRejected {
		// The reversal ended the game without a tick, show it now.
		s.show(s.engine.Snapshot())
	}
}

func keyDirection(ev termbox.Event) (board.Direction, bool) {
	switch ev.Key {
	case termbox.KeyArrowUp:
		return board.Up, true
	case termbox.KeyArrowDown:
		return board.Down, true
	case termbox.KeyArrowLeft:
		return board.Left, true
	case termbox.KeyArrowRight:
		return board.Right, true
	}
	switch ev.Ch {
	case 'w', 'k':
		return board.Up, true
	case 's', 'j':
		return board.Down, true
	case 'a', 'h':
		return board.Left, true
	case 'd', 'l':
		return board.Right, true
	}
	return board.Up, false
}
