package game

// View is an attacker's partial knowledge of an opponent's board: Empty
// means unknown, Hit and Miss record resolved shots. It never holds Ship,
// so rendering a View can't leak unrevealed positions.
//
// A side's own board needs no View; Resolve accepts nil for that case.
type View struct {
	Size  int
	Cells [][]Cell
}

func NewView(size int) *View {
	cells := make([][]Cell, size)
	for r := range cells {
		cells[r] = make([]Cell, size)
	}
	return &View{Size: size, Cells: cells}
}
