package main

import (
	"context"
	"flag"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-term/model"
	"github.com/sheikhrachel/go-gol-term/utils"
)

const (
	exitOK       = 0
	exitFailure  = 1
	exitBadUsage = 2
)

// run parses the configuration, sets the game up and drives it until ctx is
// done or the generation limit is hit. It returns the process exit code.
func run(ctx context.Context, name string, args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "gol: ", log.LstdFlags)

	config, err := utils.ParseArgs(name, args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		logger.Printf("error: %v", err)
		if errors.Is(err, utils.ErrInvalidConfig) {
			return exitBadUsage
		}
		return exitFailure
	}
	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}

	board, stepper, renderer, err := initializeGame(config, stdout)
	if err != nil {
		logger.Printf("error: %v", err)
		if errors.Is(err, utils.ErrInvalidConfig) {
			return exitBadUsage
		}
		return exitFailure
	}
	displayGameInfo(logger, config, board, stepper)

	stats := utils.NewStats()
	if err = gameLoop(ctx, config, board, stepper, renderer, stats, logger); err != nil {
		logger.Printf("error: %v", err)
		return exitFailure
	}

	logger.Printf("final stats: %s", stats)
	return exitOK
}

// initializeGame validates the configuration and builds the starting state
func initializeGame(config utils.Config, out io.Writer) (*model.Board, model.Stepper, *model.TerminalRenderer, error) {
	if err := config.Validate(); err != nil {
		return nil, model.Stepper{}, nil, errors.Wrap(err, "[initializeGame]")
	}

	stepper, err := model.NewStepper(config)
	if err != nil {
		return nil, model.Stepper{}, nil, errors.Wrap(err, "[initializeGame]")
	}

	board, err := model.GenerateBoard(config.Rows, config.Cols, rand.New(rand.NewSource(config.Seed)))
	if err != nil {
		return nil, model.Stepper{}, nil, errors.Wrap(err, "[initializeGame] failed to generate board")
	}

	return board, stepper, model.NewTerminalRenderer(out, config), nil
}

// displayGameInfo logs the starting parameters
func displayGameInfo(logger *log.Logger, config utils.Config, board *model.Board, stepper model.Stepper) {
	logger.Printf("grid: %dx%d | boundary: %s | workers: %d | seed: %d | delay: %s",
		board.Rows(), board.Cols(), stepper.Boundary, stepper.Workers, config.Seed, time.Duration(config.Delay))
	logger.Printf("initial living cells: %d", board.Population())
}

// gameLoop renders, advances and swaps the board once per generation, pausing
// config.Delay between generations
func gameLoop(
	ctx context.Context,
	config utils.Config,
	board *model.Board,
	stepper model.Stepper,
	sink model.Sink,
	stats *utils.Stats,
	logger *log.Logger,
) error {
	lastFrameTime := time.Now()

	for generation := 0; config.MaxGenerations == 0 || generation < config.MaxGenerations; generation++ {
		if ctx.Err() != nil {
			return nil
		}

		if err := sink.Render(board.Frame(), board.Rows(), board.Cols()); err != nil {
			return errors.Wrapf(err, "[gameLoop] failed to render generation %d", generation)
		}

		if err := board.Replace(stepper.Advance(board)); err != nil {
			return errors.Wrapf(err, "[gameLoop] failed to advance generation %d", generation)
		}

		frameStart := time.Now()
		stats.Update(generation+1, board.Population(), frameStart.Sub(lastFrameTime))
		lastFrameTime = frameStart
		if config.Verbose {
			logger.Print(stats)
		}

		if !pause(ctx, time.Duration(config.Delay)) {
			return nil
		}
	}

	return nil
}

// pause waits for d and reports false if ctx ended first
func pause(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
