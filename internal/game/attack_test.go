package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveHit(t *testing.T) {
	b, err := NewBoardWithShips(4, Coord{2, 2})
	require.NoError(t, err)
	v := NewView(4)

	out, err := Resolve(b, v, 2, 2)
	require.NoError(t, err)
	require.True(t, out.Hit)
	require.True(t, out.AllShipsDestroyed)
	require.False(t, out.Repeat)
	require.Equal(t, CellHit, b.Cells[2][2])
	require.Equal(t, CellHit, v.Cells[2][2])
}

func TestResolveMiss(t *testing.T) {
	b, err := NewBoardWithShips(4, Coord{0, 0})
	require.NoError(t, err)
	v := NewView(4)

	out, err := Resolve(b, v, 3, 3)
	require.NoError(t, err)
	require.False(t, out.Hit)
	require.False(t, out.AllShipsDestroyed)
	require.Equal(t, CellMiss, b.Cells[3][3])
	require.Equal(t, CellMiss, v.Cells[3][3])
	require.Equal(t, 1, b.RemainingShips())
}

func TestResolveRepeatOnHitCell(t *testing.T) {
	b, err := NewBoardWithShips(4, Coord{1, 1}, Coord{2, 2})
	require.NoError(t, err)

	first, err := Resolve(b, nil, 1, 1)
	require.NoError(t, err)
	require.True(t, first.Hit)
	require.Equal(t, 1, b.RemainingShips())

	second, err := Resolve(b, nil, 1, 1)
	require.NoError(t, err)
	require.True(t, second.Hit, "repeat reports the recorded result")
	require.True(t, second.Repeat)
	require.Equal(t, 1, b.RemainingShips(), "repeat must not decrement again")
	require.Equal(t, 1, b.Hits())
}

func TestResolveRepeatOnMissCell(t *testing.T) {
	b, err := NewBoardWithShips(4, Coord{0, 0})
	require.NoError(t, err)

	_, err = Resolve(b, nil, 3, 0)
	require.NoError(t, err)

	out, err := Resolve(b, nil, 3, 0)
	require.NoError(t, err)
	require.False(t, out.Hit)
	require.True(t, out.Repeat)
	require.Equal(t, CellMiss, b.Cells[3][0])
}

func TestResolveOutOfBounds(t *testing.T) {
	b, err := NewBoardWithShips(4, Coord{0, 0})
	require.NoError(t, err)

	for _, c := range []Coord{{-1, 0}, {0, -1}, {4, 0}, {0, 4}} {
		_, err := Resolve(b, nil, c.Row, c.Col)
		require.ErrorIs(t, err, ErrOutOfBounds, "coord %+v", c)
	}
}

func TestResolveNilViewLeavesOnlyBoardMutated(t *testing.T) {
	b, err := NewBoardWithShips(4, Coord{0, 0})
	require.NoError(t, err)

	out, err := Resolve(b, nil, 0, 0)
	require.NoError(t, err)
	require.True(t, out.Hit)
	require.Equal(t, CellHit, b.Cells[0][0])
}

func TestConservationAcrossRandomAttacks(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b, err := NewBoard(4, 4, rng)
	require.NoError(t, err)

	for i := 0; i < 32; i++ {
		row, col := rng.Intn(4), rng.Intn(4)
		_, err := Resolve(b, nil, row, col)
		require.NoError(t, err)
		require.Equal(t, 4, b.RemainingShips()+b.Hits(),
			"conservation broke after shot %d at (%d,%d)", i, row, col)
	}

	// sweep every cell so the board ends fully resolved
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			_, err := Resolve(b, nil, row, col)
			require.NoError(t, err)
			require.Equal(t, 4, b.RemainingShips()+b.Hits())
		}
	}
	require.Equal(t, 0, b.RemainingShips())
	require.Equal(t, 4, b.Hits())
}

func TestViewNeverHoldsShips(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	b, err := NewBoard(4, 4, rng)
	require.NoError(t, err)
	v := NewView(4)

	for i := 0; i < 32; i++ {
		_, err := Resolve(b, v, rng.Intn(4), rng.Intn(4))
		require.NoError(t, err)
	}
	for r := range v.Cells {
		for c := range v.Cells[r] {
			require.NotEqual(t, CellShip, v.Cells[r][c])
		}
	}
}
