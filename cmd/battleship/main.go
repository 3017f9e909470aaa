package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"

	"battleship-cli/internal/app"
	"battleship-cli/internal/cli"
	"battleship-cli/internal/fair"
	"battleship-cli/internal/game"
)

func main() {
	size := flag.Int("size", 4, "board dimension")
	ships := flag.Int("ships", 4, "ships per side")
	seed := flag.Int64("seed", 0, "random seed (0 = time-based)")
	fairMode := flag.Bool("fair", false, "commit to the enemy board and prove every shot result")
	keysDir := flag.String("keys", "./keys", "fair-mode proving/verifying keys directory")
	logLevel := flag.String("log-level", "warn", "log level (trace..disabled)")
	noColor := flag.Bool("no-color", false, "disable colored output")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if lvl, err := zerolog.ParseLevel(*logLevel); err == nil {
		logger = logger.Level(lvl)
	} else {
		logger.Warn().Str("log-level", *logLevel).Msg("unknown log level, keeping warn")
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(s))
	logger.Debug().Int64("seed", s).Msg("rng seeded")

	human, err := game.NewBoard(*size, *ships, rng)
	if err != nil {
		logger.Fatal().Err(err).Msg("set up your board")
	}
	enemy, err := game.NewBoard(*size, *ships, rng)
	if err != nil {
		logger.Fatal().Err(err).Msg("set up enemy board")
	}

	ui := cli.NewRenderer(!*noColor)
	in := cli.NewCoordReader(os.Stdin, os.Stdout, *size)

	ui.Welcome()
	wantTutorial, err := in.Confirm("Would you like to see the tutorial? (y/n): ")
	if err != nil {
		logger.Fatal().Err(err).Msg("read tutorial choice")
	}
	if wantTutorial {
		ui.Tutorial(*size)
	}

	m := app.NewMatch(human, enemy, in, ui, rng, logger)
	if *fairMode {
		ref, err := fair.NewReferee(*keysDir, enemy)
		if err != nil {
			logger.Fatal().Err(err).Msg("set up fair-play referee")
		}
		ui.ShowCommitment(ref.RootHex())
		m = m.WithReferee(ref)
	}

	winner, err := m.Run()
	if err != nil {
		logger.Fatal().Err(err).Msg("match aborted")
	}
	logger.Info().Stringer("winner", winner).Msg("match finished")
}
