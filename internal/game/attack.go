package game

import "fmt"

// Outcome reports the result of resolving one shot.
type Outcome struct {
	Hit               bool
	AllShipsDestroyed bool
	// Repeat is set when the cell was already resolved; the shot is then a
	// no-op and Hit echoes the recorded result.
	Repeat bool
}

// Resolve applies a shot at (row, col) to target, recording the result in
// view when the attacker has one (nil means the attacker owns target and
// sees it directly).
//
// Ship becomes Hit, Empty becomes Miss. A cell that is already Hit or Miss
// is left untouched and reported via Outcome.Repeat, so ship accounting
// never double-counts.
func Resolve(target *Board, view *View, row, col int) (Outcome, error) {
	if !target.InBounds(row, col) {
		return Outcome{}, fmt.Errorf("resolve shot at (%d,%d): %w", row, col, ErrOutOfBounds)
	}

	var out Outcome
	switch target.Cells[row][col] {
	case CellShip:
		target.Cells[row][col] = CellHit
		if view != nil {
			view.Cells[row][col] = CellHit
		}
		out.Hit = true
	case CellEmpty:
		target.Cells[row][col] = CellMiss
		if view != nil {
			view.Cells[row][col] = CellMiss
		}
	case CellHit:
		out.Hit = true
		out.Repeat = true
	case CellMiss:
		out.Repeat = true
	}

	out.AllShipsDestroyed = target.RemainingShips() == 0
	return out, nil
}
