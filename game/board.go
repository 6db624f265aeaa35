package game

import "fmt"

// BoardSize is the fixed side length of every maze. Boards are always
// square.
const BoardSize = 30

// Board holds the maze contents: walls, pellets and the agent marker. Ghosts
// are tracked separately and never appear on the board itself.
type Board struct {
	cells   [BoardSize][BoardSize]Content
	pellets int
}

// ParseBoard builds a board from its ASCII form, one string per row:
//
//	'#' wall, '.' pellet, '*' power pellet, 'O' the agent, ' ' empty
//
// Exactly BoardSize rows of BoardSize characters are required.
func ParseBoard(rows []string) (*Board, error) {
	if len(rows) != BoardSize {
		return nil, fmt.Errorf("board has %d rows, want %d", len(rows), BoardSize)
	}
	b := &Board{}
	for x, row := range rows {
		if len(row) != BoardSize {
			return nil, fmt.Errorf("row %d has %d cells, want %d", x, len(row), BoardSize)
		}
		for y := 0; y < BoardSize; y++ {
			var c Content
			switch row[y] {
			case '#':
				c = Wall
			case '.':
				c = Pellet
			case '*':
				c = PowerPellet
			case 'O':
				c = Pacman
			case ' ':
				c = Empty
			default:
				return nil, fmt.Errorf("row %d col %d: unknown cell %q", x, y, row[y])
			}
			b.cells[x][y] = c
			if c == Pellet || c == PowerPellet {
				b.pellets++
			}
		}
	}
	return b, nil
}

// InRange reports whether (x, y) lies on the board.
func (b *Board) InRange(x, y int) bool {
	return x >= 0 && x < BoardSize && y >= 0 && y < BoardSize
}

// Contents reports what occupies cell (x, y). Cells outside the board read
// as Wall.
func (b *Board) Contents(x, y int) Content {
	if !b.InRange(x, y) {
		return Wall
	}
	return b.cells[x][y]
}

// SetContents overwrites cell (x, y), keeping the pellet count in step.
// Writes outside the board are ignored.
func (b *Board) SetContents(x, y int, c Content) {
	if !b.InRange(x, y) {
		return
	}
	if old := b.cells[x][y]; old == Pellet || old == PowerPellet {
		b.pellets--
	}
	if c == Pellet || c == PowerPellet {
		b.pellets++
	}
	b.cells[x][y] = c
}

// PelletCount returns how many pellets of either kind remain.
func (b *Board) PelletCount() int {
	return b.pellets
}

// Find returns the first cell holding c in row-major scan order.
func (b *Board) Find(c Content) (Position, bool) {
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			if b.cells[x][y] == c {
				return Position{X: x, Y: y}, true
			}
		}
	}
	return Position{}, false
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// String renders the board back to its ASCII form, rows joined by newlines.
func (b *Board) String() string {
	buf := make([]byte, 0, BoardSize*(BoardSize+1))
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			switch b.cells[x][y] {
			case Wall:
				buf = append(buf, '#')
			case Pellet:
				buf = append(buf, '.')
			case PowerPellet:
				buf = append(buf, '*')
			case Pacman:
				buf = append(buf, 'O')
			default:
				buf = append(buf, ' ')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
