package commands

import (
	"fmt"
	"os"

	"github.com/battlesnakeio/solo/board"
	"github.com/battlesnakeio/solo/config"
	"github.com/battlesnakeio/solo/version"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "solo",
	Short:   "solo plays single player snake in the terminal",
	Version: version.Version,
	PersistentPreRunE: func(c *cobra.Command, args []string) error {
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		log.SetLevel(level)
		prometheus()
		return nil
	},
	RunE: func(c *cobra.Command, args []string) error {
		return playCmd.RunE(c, args)
	},
}

var (
	logLevel  = "info"
	gameFlags = flagConfig{
		width:     config.GridWidth,
		height:    config.GridHeight,
		interval:  config.InitialIntervalMs,
		step:      config.SpeedStepMs,
		floor:     config.SpeedFloorMs,
		queue:     config.DirectionQueueSize,
		seed:      config.Seed,
		win:       string(config.WinNone),
	}
)

type flagConfig struct {
	width     int
	height    int
	interval  int
	step      int
	floor     int
	queue     int
	seed      int64
	win       string
	direction string
	snake     string
}

// build turns the flag values into a validated game config.
func (f flagConfig) build() (config.Config, error) {
	cfg := config.Default()
	cfg.GridWidth = f.width
	cfg.GridHeight = f.height
	cfg.InitialIntervalMs = f.interval
	cfg.SpeedStepMs = f.step
	cfg.SpeedFloorMs = f.floor
	cfg.DirectionQueueSize = f.queue
	cfg.Seed = f.seed

	win, err := config.ParseWinCondition(f.win)
	if err != nil {
		return cfg, err
	}
	cfg.WinCondition = win

	if f.snake != "" {
		cells, err := config.ParseSnake(f.snake)
		if err != nil {
			return cfg, err
		}
		cfg.InitialSnake = cells
	}

	// Without --direction a longer snake keeps going the way it points.
	if f.direction == "" {
		if heading, ok := config.Heading(cfg.InitialSnake); ok {
			cfg.InitialDirection = heading
		}
	} else {
		dir, err := board.ParseDirection(f.direction)
		if err != nil {
			return cfg, errors.Wrap(err, "--direction")
		}
		cfg.InitialDirection = dir
	}
	return cfg, cfg.Validate()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&logLevel, "log-level", logLevel, "log level (debug, info, warn, error)")
	pf.BoolVar(&promEnable, "prometheus", promEnable, "enable prometheus metrics")
	pf.StringVar(&promListen, "prometheus-listen", promListen, "prometheus http endpoint")

	pf.IntVar(&gameFlags.width, "width", gameFlags.width, "grid width in cells")
	pf.IntVar(&gameFlags.height, "height", gameFlags.height, "grid height in cells")
	pf.IntVar(&gameFlags.interval, "interval", gameFlags.interval, "initial tick interval in milliseconds")
	pf.IntVar(&gameFlags.step, "speed-step", gameFlags.step, "interval reduction per food in milliseconds")
	pf.IntVar(&gameFlags.floor, "speed-floor", gameFlags.floor, "shortest tick interval in milliseconds")
	pf.IntVar(&gameFlags.queue, "queue", gameFlags.queue, "direction changes buffered between ticks")
	pf.Int64Var(&gameFlags.seed, "seed", gameFlags.seed, "food placement seed, 0 for a random one")
	pf.StringVar(&gameFlags.win, "win", gameFlags.win, "win condition (none, fillBoard)")
	pf.StringVar(&gameFlags.direction, "direction", gameFlags.direction, "initial heading, defaults to the way --snake points or left")
	pf.StringVar(&gameFlags.snake, "snake", "", `initial snake as "row+col" cells, tail first, e.g. "5+6 5+5"`)
}

// Execute runs the root command
func Execute() {
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
