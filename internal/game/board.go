package game

import (
	"errors"
	"fmt"
	"math/rand"
)

// Cell is the state of a single board square.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellShip
	CellHit
	CellMiss
)

func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellShip:
		return "ship"
	case CellHit:
		return "hit"
	case CellMiss:
		return "miss"
	}
	return fmt.Sprintf("cell(%d)", uint8(c))
}

var (
	ErrInvalidConfiguration = errors.New("ship count exceeds board capacity")
	ErrOutOfBounds          = errors.New("coordinate out of bounds")
)

// Coord is a zero-indexed board coordinate.
type Coord struct {
	Row int
	Col int
}

// Board is one side's authoritative grid. Cells only ever transition
// Empty->Miss or Ship->Hit, so RemainingShips()+Hits() equals the initial
// ship count for the board's whole lifetime.
type Board struct {
	Size  int
	Cells [][]Cell

	ships int
}

func newEmptyBoard(size int) *Board {
	cells := make([][]Cell, size)
	for r := range cells {
		cells[r] = make([]Cell, size)
	}
	return &Board{Size: size, Cells: cells}
}

// NewBoard builds a size x size board and places shipCount single-cell
// ships at distinct coordinates drawn from rng (rejection sampling).
func NewBoard(size, shipCount int, rng *rand.Rand) (*Board, error) {
	if shipCount > size*size {
		return nil, fmt.Errorf("%d ships on a %dx%d board: %w", shipCount, size, size, ErrInvalidConfiguration)
	}
	b := newEmptyBoard(size)
	placed := 0
	for placed < shipCount {
		r := rng.Intn(size)
		c := rng.Intn(size)
		if b.Cells[r][c] == CellEmpty {
			b.Cells[r][c] = CellShip
			placed++
		}
	}
	b.ships = shipCount
	return b, nil
}

// NewBoardWithShips builds a board with ships at fixed coordinates.
// Duplicate coordinates collapse to a single ship.
func NewBoardWithShips(size int, ships ...Coord) (*Board, error) {
	if len(ships) > size*size {
		return nil, fmt.Errorf("%d ships on a %dx%d board: %w", len(ships), size, size, ErrInvalidConfiguration)
	}
	b := newEmptyBoard(size)
	for _, s := range ships {
		if !b.InBounds(s.Row, s.Col) {
			return nil, fmt.Errorf("ship at (%d,%d): %w", s.Row, s.Col, ErrOutOfBounds)
		}
		if b.Cells[s.Row][s.Col] == CellEmpty {
			b.Cells[s.Row][s.Col] = CellShip
			b.ships++
		}
	}
	return b, nil
}

func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.Size && col >= 0 && col < b.Size
}

// RemainingShips counts cells still in Ship state. The board is destroyed
// when this reaches zero.
func (b *Board) RemainingShips() int {
	n := 0
	for r := range b.Cells {
		for c := range b.Cells[r] {
			if b.Cells[r][c] == CellShip {
				n++
			}
		}
	}
	return n
}

// Hits counts struck ship cells.
func (b *Board) Hits() int {
	n := 0
	for r := range b.Cells {
		for c := range b.Cells[r] {
			if b.Cells[r][c] == CellHit {
				n++
			}
		}
	}
	return n
}

// InitialShips is the ship count the board was created with.
func (b *Board) InitialShips() int { return b.ships }

// ShipBits flattens the board's initial ship occupancy row-major: 1 where
// a ship was placed (struck or not), 0 elsewhere. Fair mode commits to
// this, so it must stay constant as the game proceeds.
func (b *Board) ShipBits() []uint8 {
	out := make([]uint8, 0, b.Size*b.Size)
	for r := range b.Cells {
		for c := range b.Cells[r] {
			if b.Cells[r][c] == CellShip || b.Cells[r][c] == CellHit {
				out = append(out, 1)
			} else {
				out = append(out, 0)
			}
		}
	}
	return out
}
