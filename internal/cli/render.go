// Package cli holds the terminal adapters: colored board rendering and the
// validated coordinate prompt. The core never prints or reads on its own.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"battleship-cli/internal/app"
	"battleship-cli/internal/game"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiCyan   = "\x1b[36m"
)

// Renderer writes game output with ANSI colors when stdout is a terminal,
// plain text otherwise.
type Renderer struct {
	out   io.Writer
	color bool
}

// NewRenderer renders to stdout. color is forced off when stdout is not a
// terminal so piped output stays clean.
func NewRenderer(color bool) *Renderer {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		color = false
	}
	return &Renderer{out: colorable.NewColorableStdout(), color: color}
}

// NewRendererTo renders to an arbitrary writer; used by tests.
func NewRendererTo(out io.Writer, color bool) *Renderer {
	return &Renderer{out: out, color: color}
}

func (r *Renderer) paint(code, s string) string {
	if !r.color {
		return s
	}
	return code + s + ansiReset
}

// cellGlyph maps a cell to its symbol and color. Ship cells render as
// empty water unless revealShips is set (the viewer owns the board).
func (r *Renderer) cellGlyph(c game.Cell, revealShips bool) string {
	switch c {
	case game.CellShip:
		if !revealShips {
			return r.paint(ansiCyan, "0")
		}
		return r.paint(ansiGreen, "S")
	case game.CellHit:
		return r.paint(ansiRed, "X")
	case game.CellMiss:
		return r.paint(ansiYellow, "M")
	}
	return r.paint(ansiCyan, "0")
}

func (r *Renderer) renderGrid(cells [][]game.Cell, revealShips bool) {
	for _, row := range cells {
		for _, c := range row {
			fmt.Fprint(r.out, r.cellGlyph(c, revealShips), " ")
		}
		fmt.Fprintln(r.out)
	}
}

func (r *Renderer) ShowBoards(own *game.Board, enemy *game.View) {
	fmt.Fprintln(r.out, "\nYour grid:")
	r.renderGrid(own.Cells, true)
	fmt.Fprintln(r.out, "\nEnemy grid:")
	r.renderGrid(enemy.Cells, false)
}

func (r *Renderer) ShowHumanShot(row, col int, out game.Outcome) {
	switch {
	case out.Repeat:
		fmt.Fprintf(r.out, "Already fired at (%d, %d).\n", row+1, col+1)
	case out.Hit:
		fmt.Fprintln(r.out, r.paint(ansiRed, "Hit!"))
	default:
		fmt.Fprintln(r.out, r.paint(ansiYellow, "Miss!"))
	}
}

func (r *Renderer) ShowComputerShot(row, col int, out game.Outcome) {
	fmt.Fprintf(r.out, "Enemy fires at (%d, %d)\n", row+1, col+1)
	switch {
	case out.Repeat:
		fmt.Fprintln(r.out, "The enemy wastes a shot on old wreckage.")
	case out.Hit:
		fmt.Fprintln(r.out, r.paint(ansiRed, "Your ship was hit!"))
	default:
		fmt.Fprintln(r.out, r.paint(ansiYellow, "The enemy missed."))
	}
}

func (r *Renderer) ShowWinner(w app.Winner) {
	if w == app.HumanWins {
		fmt.Fprintln(r.out, r.paint(ansiGreen, "You win!"))
		return
	}
	fmt.Fprintln(r.out, r.paint(ansiRed, "The enemy has sunk all your ships. Game over!"))
}

// Welcome prints the banner and, when the player asks for it, the tutorial.
func (r *Renderer) Welcome() {
	fmt.Fprintln(r.out, "Welcome to Battleship!")
}

func (r *Renderer) Tutorial(size int) {
	fmt.Fprintln(r.out, "\nTutorial:")
	fmt.Fprintf(r.out, "You and the computer each get a %dx%d grid.\n", size, size)
	fmt.Fprintf(r.out, "S = Ship, %s, %s, %s.\n",
		r.paint(ansiRed, "X = Hit"),
		r.paint(ansiYellow, "M = Miss"),
		r.paint(ansiCyan, "0 = Empty"))
	fmt.Fprintln(r.out, "Take turns guessing enemy positions until all ships are sunk.")
	fmt.Fprintln(r.out, "Good luck!")
	fmt.Fprintln(r.out)
}

// ShowCommitment prints the fair-mode board commitment root.
func (r *Renderer) ShowCommitment(rootHex string) {
	fmt.Fprintln(r.out, "Enemy fleet committed. ROOT:", rootHex)
	fmt.Fprintln(r.out, "Every shot result will carry a proof against this root.")
}
