package planner

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pacman/game"
)

func TestNearestPellet(t *testing.T) {
	t.Run("picks the closest by manhattan distance", func(t *testing.T) {
		rows := openRows()
		setRowCell(rows, 10, 10, 'O')
		setRowCell(rows, 10, 13, '.')
		setRowCell(rows, 20, 20, '.')
		setRowCell(rows, 12, 10, '*')
		s := stateFor(t, rows)

		pos, ok := nearestPellet(s)
		require.True(t, ok)
		require.Equal(t, game.Position{X: 12, Y: 10}, pos, "the power pellet two cells away should win")
	})

	t.Run("ties break to scan order", func(t *testing.T) {
		rows := openRows()
		setRowCell(rows, 10, 10, 'O')
		setRowCell(rows, 8, 10, '.')
		setRowCell(rows, 12, 10, '.')
		s := stateFor(t, rows)

		pos, ok := nearestPellet(s)
		require.True(t, ok)
		require.Equal(t, game.Position{X: 8, Y: 10}, pos, "the row-major first of two equidistant pellets should win")
	})

	t.Run("ignores pellets outside the scan window", func(t *testing.T) {
		rows := openRows()
		setRowCell(rows, 10, 10, 'O')
		setRowCell(rows, 10, 1, '.')  // column outside the window
		setRowCell(rows, 27, 10, '.') // row outside the window
		setRowCell(rows, 20, 20, '.')
		s := stateFor(t, rows)

		pos, ok := nearestPellet(s)
		require.True(t, ok)
		require.Equal(t, game.Position{X: 20, Y: 20}, pos, "window-outside pellets must never be chosen")
	})

	t.Run("reports no pellet when the window is bare", func(t *testing.T) {
		rows := openRows()
		setRowCell(rows, 10, 10, 'O')
		setRowCell(rows, 1, 1, '.')
		s := stateFor(t, rows)

		_, ok := nearestPellet(s)
		require.False(t, ok)
	})
}

func TestGoalCache(t *testing.T) {
	t.Run("reuses the path until the cache ages out", func(t *testing.T) {
		rows := openRows()
		setRowCell(rows, 10, 10, 'O')
		setRowCell(rows, 10, 20, '.')
		s := stateFor(t, rows)

		var g goalCache
		first := g.refresh(s, 4)
		require.NotEmpty(t, first)
		require.Equal(t, game.Position{X: 10, Y: 20}, g.target)

		// Move the agent; a cached path is not recomputed, so it keeps
		// starting at the old cell for the next four ticks.
		_, err := s.MovePacman(game.Down)
		require.NoError(t, err)
		for i := 0; i < 4; i++ {
			require.Equal(t, first, g.refresh(s, 4), "tick %d should reuse the cached path", i+2)
		}
		refreshed := g.refresh(s, 4)
		require.Equal(t, game.Position{X: 11, Y: 10}, refreshed[0], "the sixth tick should recompute from the agent's new cell")
	})

	t.Run("recomputes as soon as the target is eaten", func(t *testing.T) {
		rows := openRows()
		setRowCell(rows, 10, 10, 'O')
		setRowCell(rows, 10, 12, '.')
		setRowCell(rows, 20, 10, '.')
		s := stateFor(t, rows)

		var g goalCache
		g.refresh(s, 4)
		require.Equal(t, game.Position{X: 10, Y: 12}, g.target)

		s.Board().SetContents(10, 12, game.Empty)
		g.refresh(s, 4)
		require.Equal(t, game.Position{X: 20, Y: 10}, g.target, "a consumed target should trigger an immediate recompute")
	})

	t.Run("empty window keeps yielding no path", func(t *testing.T) {
		rows := openRows()
		setRowCell(rows, 10, 10, 'O')
		s := stateFor(t, rows)

		var g goalCache
		for i := 0; i < 3; i++ {
			require.Empty(t, g.refresh(s, 4))
		}
	})
}
