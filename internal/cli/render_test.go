package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"battleship-cli/internal/app"
	"battleship-cli/internal/game"
)

func TestShowBoardsHidesEnemyShips(t *testing.T) {
	own, err := game.NewBoardWithShips(4, game.Coord{Row: 0, Col: 0})
	require.NoError(t, err)
	_, err = game.Resolve(own, nil, 1, 1) // miss on our own board
	require.NoError(t, err)

	view := game.NewView(4)
	view.Cells[2][2] = game.CellHit

	var out bytes.Buffer
	r := NewRendererTo(&out, false)
	r.ShowBoards(own, view)

	want := "\nYour grid:\n" +
		"S 0 0 0 \n" +
		"0 M 0 0 \n" +
		"0 0 0 0 \n" +
		"0 0 0 0 \n" +
		"\nEnemy grid:\n" +
		"0 0 0 0 \n" +
		"0 0 0 0 \n" +
		"0 0 X 0 \n" +
		"0 0 0 0 \n"
	require.Equal(t, want, out.String())
}

func TestShipCellHiddenWhenNotRevealed(t *testing.T) {
	var out bytes.Buffer
	r := NewRendererTo(&out, false)
	require.Equal(t, "0", r.cellGlyph(game.CellShip, false))
	require.Equal(t, "S", r.cellGlyph(game.CellShip, true))
	require.Equal(t, "X", r.cellGlyph(game.CellHit, false))
	require.Equal(t, "M", r.cellGlyph(game.CellMiss, false))
	require.Equal(t, "0", r.cellGlyph(game.CellEmpty, false))
}

func TestColoredGlyphsWrapInAnsiCodes(t *testing.T) {
	var out bytes.Buffer
	r := NewRendererTo(&out, true)
	require.Equal(t, "\x1b[31mX\x1b[0m", r.cellGlyph(game.CellHit, false))
	require.Equal(t, "\x1b[32mS\x1b[0m", r.cellGlyph(game.CellShip, true))
	require.Equal(t, "\x1b[36m0\x1b[0m", r.cellGlyph(game.CellShip, false))
}

func TestShowHumanShotMessages(t *testing.T) {
	var out bytes.Buffer
	r := NewRendererTo(&out, false)

	r.ShowHumanShot(1, 2, game.Outcome{Hit: true})
	r.ShowHumanShot(1, 2, game.Outcome{})
	r.ShowHumanShot(1, 2, game.Outcome{Hit: true, Repeat: true})

	s := out.String()
	require.Contains(t, s, "Hit!")
	require.Contains(t, s, "Miss!")
	require.Contains(t, s, "Already fired at (2, 3).")
}

func TestShowComputerShotReportsOneBasedCoords(t *testing.T) {
	var out bytes.Buffer
	r := NewRendererTo(&out, false)
	r.ShowComputerShot(0, 3, game.Outcome{Hit: true})
	require.Contains(t, out.String(), "Enemy fires at (1, 4)")
	require.Contains(t, out.String(), "Your ship was hit!")
}

func TestShowWinner(t *testing.T) {
	var out bytes.Buffer
	r := NewRendererTo(&out, false)
	r.ShowWinner(app.HumanWins)
	r.ShowWinner(app.ComputerWins)
	require.Contains(t, out.String(), "You win!")
	require.Contains(t, out.String(), "The enemy has sunk all your ships. Game over!")
}
