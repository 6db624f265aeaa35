package planner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"pacman/game"
)

// openRows returns a walled board with an empty interior and no agent; each
// test places its own cells.
func openRows() []string {
	rows := make([]string, game.BoardSize)
	rows[0] = strings.Repeat("#", game.BoardSize)
	rows[game.BoardSize-1] = rows[0]
	for x := 1; x < game.BoardSize-1; x++ {
		rows[x] = "#" + strings.Repeat(" ", game.BoardSize-2) + "#"
	}
	return rows
}

func setRowCell(rows []string, x, y int, c byte) {
	row := []byte(rows[x])
	row[y] = c
	rows[x] = string(row)
}

func stateFor(t *testing.T, rows []string) *game.BeliefState {
	t.Helper()
	b, err := game.ParseBoard(rows)
	require.NoError(t, err, "test board should parse")
	s, err := game.NewBeliefState(b)
	require.NoError(t, err, "test board should carry an agent cell")
	return s
}
