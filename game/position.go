package game

// Position is a board cell. X indexes rows and Y columns, so Up decreases X
// and Left decreases Y. Values outside the board are legal to construct and
// pass around; only indexing into a board requires them to be in range.
type Position struct {
	X int
	Y int
}

// Delta returns the row and column offsets a move applies. Stop and Terminal
// have no offset.
func (m Move) Delta() (dx, dy int) {
	switch m {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	}
	return 0, 0
}

// Next returns the cell a move leads to from p. The result may lie outside
// the board.
func (p Position) Next(m Move) Position {
	dx, dy := m.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Manhattan returns the |dx| + |dy| grid distance between two cells.
func Manhattan(a, b Position) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
