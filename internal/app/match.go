package app

import (
	"fmt"

	"github.com/rs/zerolog"

	"battleship-cli/internal/fair"
	"battleship-cli/internal/game"
)

// Winner identifies which side destroyed the other's fleet.
type Winner int

const (
	HumanWins Winner = iota + 1
	ComputerWins
)

func (w Winner) String() string {
	switch w {
	case HumanWins:
		return "human"
	case ComputerWins:
		return "computer"
	}
	return "none"
}

// MoveSource supplies the human's next shot as validated, zero-indexed
// coordinates. Implementations own all prompting and input recovery; the
// match only ever sees in-range values.
type MoveSource interface {
	NextMove() (row, col int, err error)
}

// RandSource draws the computer's shots. *rand.Rand satisfies it; tests
// inject scripted sources.
type RandSource interface {
	Intn(n int) int
}

// Renderer is the presentation side of the match. The match hands it full
// board/view snapshots and never formats text itself.
type Renderer interface {
	ShowBoards(own *game.Board, enemy *game.View)
	ShowHumanShot(row, col int, out game.Outcome)
	ShowComputerShot(row, col int, out game.Outcome)
	ShowWinner(w Winner)
}

// Match runs one game: the human fires at the enemy board, then, if the
// game isn't over, the computer fires a uniformly random shot at the human
// board. Repeats are possible on both sides and resolve as no-ops.
type Match struct {
	human *game.Board
	enemy *game.Board
	view  *game.View // human's knowledge of the enemy board

	moves MoveSource
	ui    Renderer
	rng   RandSource
	ref   *fair.Referee
	log   zerolog.Logger
}

func NewMatch(human, enemy *game.Board, moves MoveSource, ui Renderer, rng RandSource, log zerolog.Logger) *Match {
	return &Match{
		human: human,
		enemy: enemy,
		view:  game.NewView(enemy.Size),
		moves: moves,
		ui:    ui,
		rng:   rng,
		log:   log,
	}
}

// WithReferee enables fair-play checking of every first-time resolution on
// the enemy board.
func (m *Match) WithReferee(ref *fair.Referee) *Match {
	m.ref = ref
	return m
}

// Run drives the turn loop until one side's ships are all destroyed.
// The human always moves first within a round; a human win ends the round
// before any computer shot is drawn.
func (m *Match) Run() (Winner, error) {
	for {
		m.ui.ShowBoards(m.human, m.view)

		row, col, err := m.moves.NextMove()
		if err != nil {
			return 0, fmt.Errorf("read move: %w", err)
		}
		out, err := game.Resolve(m.enemy, m.view, row, col)
		if err != nil {
			return 0, err
		}
		m.log.Debug().
			Int("row", row).Int("col", col).
			Bool("hit", out.Hit).Bool("repeat", out.Repeat).
			Msg("human shot resolved")

		if m.ref != nil && !out.Repeat {
			if err := m.checkResolution(row, col, out.Hit); err != nil {
				return 0, err
			}
		}

		m.ui.ShowHumanShot(row, col, out)
		if out.AllShipsDestroyed {
			m.ui.ShowWinner(HumanWins)
			return HumanWins, nil
		}

		crow := m.rng.Intn(m.human.Size)
		ccol := m.rng.Intn(m.human.Size)
		cout, err := game.Resolve(m.human, nil, crow, ccol)
		if err != nil {
			return 0, err
		}
		m.log.Debug().
			Int("row", crow).Int("col", ccol).
			Bool("hit", cout.Hit).Bool("repeat", cout.Repeat).
			Msg("computer shot resolved")

		m.ui.ShowComputerShot(crow, ccol, cout)
		if cout.AllShipsDestroyed {
			m.ui.ShowWinner(ComputerWins)
			return ComputerWins, nil
		}
	}
}

// checkResolution proves and verifies one first-time resolution on the
// enemy board. A failure here means the engine can't back its own answer,
// which is unrecoverable for the session.
func (m *Match) checkResolution(row, col int, hit bool) error {
	proof, err := m.ref.ProveResolution(row, col, hit)
	if err != nil {
		return fmt.Errorf("fair-play proof: %w", err)
	}
	if err := m.ref.VerifyResolution(*proof, row, col, hit); err != nil {
		return fmt.Errorf("fair-play check: %w", err)
	}
	m.log.Info().Int("row", row).Int("col", col).Bool("hit", hit).Msg("shot proof verified")
	return nil
}
