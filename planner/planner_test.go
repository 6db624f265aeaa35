package planner

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pacman/game"
)

// probeState lets a test observe the risk field at the exact moment the
// selector evaluates candidates, after all stamps and before any revert.
type probeState struct {
	*game.BeliefState
	onPlans func()
}

func (p *probeState) Plans() []game.Plan {
	if p.onPlans != nil {
		p.onPlans()
	}
	return p.BeliefState.Plans()
}

func TestTerminalWhenCleared(t *testing.T) {
	rows := openRows()
	setRowCell(rows, 10, 10, 'O')
	s := stateFor(t, rows)
	s.SetGhostSightings(0, []game.Position{{X: 12, Y: 12}})

	p := New()
	p.Field().Adjust(game.Position{X: 9, Y: 10}, -5000)
	require.Equal(t, game.Terminal, p.NextMove(s),
		"an empty board must yield the terminal signal regardless of field contents")
}

func TestWalksToPellet(t *testing.T) {
	/*
		One pellet three cells due east, no ghosts. The goal discount pulls
		the agent east tick after tick while the self bias burns the cells
		behind it, and the terminal signal fires on the tick after the
		pellet is eaten.
	*/
	rows := openRows()
	setRowCell(rows, 10, 10, 'O')
	setRowCell(rows, 10, 13, '.')
	s := stateFor(t, rows)

	p := New()
	for i := 0; i < 3; i++ {
		m := p.NextMove(s)
		require.Equal(t, game.Right, m, "tick %d should head for the pellet", i+1)
		_, err := s.MovePacman(m)
		require.NoError(t, err)
	}
	require.Equal(t, 0, s.PelletCount(), "the pellet should be eaten after three steps")
	require.Equal(t, game.Terminal, p.NextMove(s), "the cleared board should end the game")
}

func TestAvoidsAdjacentThreat(t *testing.T) {
	/*
		A single hypothesized ghost sits directly east with its fear counter
		at zero, a pellet waits to the west. Stepping east means walking
		into the 500 stamp; every other direction carries at most the 100
		ring, so east must never win.
	*/
	rows := openRows()
	setRowCell(rows, 10, 10, 'O')
	setRowCell(rows, 10, 7, '.')
	s := stateFor(t, rows)
	s.SetGhostSightings(0, []game.Position{{X: 10, Y: 11}})
	s.SetFearCounter(0, 0)

	p := New()
	m := p.NextMove(s)
	require.NotEqual(t, game.Right, m, "the agent must not walk onto the hypothesized ghost")
	require.Equal(t, game.Left, m, "the goal discount should tip the choice toward the pellet")
}

func TestChaseDiscount(t *testing.T) {
	newChaseState := func(t *testing.T) *game.BeliefState {
		rows := openRows()
		setRowCell(rows, 10, 10, 'O')
		setRowCell(rows, 10, 14, '.')
		return stateFor(t, rows)
	}
	goalCell := game.Position{X: 10, Y: 12}

	t.Run("both ghosts huntable adds the chase discount for one tick", func(t *testing.T) {
		s := newChaseState(t)
		s.SetGhostSightings(0, []game.Position{{X: 5, Y: 10}})
		s.SetGhostSightings(1, []game.Position{{X: 5, Y: 12}})
		s.SetFearCounter(0, 40)
		s.SetFearCounter(1, 40)

		p := New()
		var seen int
		probe := &probeState{BeliefState: s, onPlans: func() {
			seen = p.Field().At(goalCell)
		}}
		p.NextMove(probe)
		require.Equal(t, -225, seen, "goal path cells should carry -25 and the extra -200 while both ghosts are huntable")
		require.Zero(t, p.Field().At(goalCell), "the whole discount must be gone once the tick returns")
	})

	t.Run("a single huntable ghost gets no extra discount", func(t *testing.T) {
		s := newChaseState(t)
		s.SetGhostSightings(0, []game.Position{{X: 5, Y: 10}})
		s.SetGhostSightings(1, []game.Position{{X: 5, Y: 12}})
		s.SetFearCounter(0, 40)
		s.SetFearCounter(1, 0)

		p := New()
		var seen int
		probe := &probeState{BeliefState: s, onPlans: func() {
			seen = p.Field().At(goalCell)
		}}
		p.NextMove(probe)
		require.Equal(t, -25, seen, "only the plain goal discount should apply")
		require.Zero(t, p.Field().At(goalCell))
	})
}

func TestTickRestoresField(t *testing.T) {
	/*
		A full tick with one evading ghost (three hypotheses, so the stamp
		weights truncate), one hunted ghost (two hypotheses, so the pursuit
		discount splits), and a live goal path. Afterwards the field must
		match its pre-tick state except for the self bias at the agent's
		cell.
	*/
	rows := openRows()
	setRowCell(rows, 10, 10, 'O')
	setRowCell(rows, 20, 20, '.')
	setRowCell(rows, 3, 3, '.')
	s := stateFor(t, rows)
	s.SetGhostSightings(0, []game.Position{{X: 6, Y: 6}, {X: 6, Y: 7}, {X: 7, Y: 6}})
	s.SetFearCounter(0, 3)
	s.SetGhostSightings(1, []game.Position{{X: 15, Y: 15}, {X: 15, Y: 16}})
	s.SetFearCounter(1, 20)

	p := New()
	for x := 0; x < game.BoardSize; x++ {
		for y := 0; y < game.BoardSize; y++ {
			p.Field().Set(game.Position{X: x, Y: y}, (x*13+y*7)%53-20)
		}
	}
	want := p.Field().Snapshot()
	agent := s.PacmanPosition()
	want[agent.X][agent.Y] += DefaultConfig().SelfBias

	p.NextMove(s)
	require.Equal(t, want, p.Field().Snapshot(),
		"after a tick only the self bias may remain")
}

func TestMilestonePersistsThroughRevert(t *testing.T) {
	/*
		The milestone stamp is an absolute set that lands between the threat
		stamps and their reverts. A pellet cell inside a threat stamp
		therefore ends the tick at the set value minus the stamp weight:
		the revert subtracts from the freshly set value. That asymmetry is
		part of the field's contract.
	*/
	rows := openRows()
	setRowCell(rows, 20, 20, 'O')
	setRowCell(rows, 10, 11, '.')
	setRowCell(rows, 21, 20, '.')
	setRowCell(rows, 22, 22, '.')
	s := stateFor(t, rows)
	s.SetGhostSightings(0, []game.Position{{X: 10, Y: 12}})
	s.SetFearCounter(0, 0)

	cfg := DefaultConfig()
	cfg.Milestones = []int{3}
	p := New(WithConfig(cfg))
	p.NextMove(s)

	require.Equal(t, -520, p.Field().At(game.Position{X: 10, Y: 11}),
		"a threat-covered pellet ends at the set value minus the reverted stamp")
	require.Equal(t, -20, p.Field().At(game.Position{X: 21, Y: 20}),
		"the goal target keeps the plain standing discount")
	require.Equal(t, -20, p.Field().At(game.Position{X: 22, Y: 22}))
	require.Equal(t, 15, p.Field().At(game.Position{X: 20, Y: 20}),
		"the agent cell keeps only the self bias")
}

func TestStopWhenBoxedIn(t *testing.T) {
	rows := openRows()
	setRowCell(rows, 10, 10, 'O')
	for _, d := range game.Directions {
		n := (game.Position{X: 10, Y: 10}).Next(d)
		setRowCell(rows, n.X, n.Y, '#')
	}
	setRowCell(rows, 20, 20, '.')
	s := stateFor(t, rows)

	p := New()
	require.Equal(t, game.Stop, p.NextMove(s), "no playable move should fall back to STOP")

	t.Run("terminal still wins over stop", func(t *testing.T) {
		boxed := openRows()
		setRowCell(boxed, 10, 10, 'O')
		for _, d := range game.Directions {
			n := (game.Position{X: 10, Y: 10}).Next(d)
			setRowCell(boxed, n.X, n.Y, '#')
		}
		s := stateFor(t, boxed)
		require.Equal(t, game.Terminal, New().NextMove(s))
	})
}

func TestIsLegalMove(t *testing.T) {
	rows := openRows()
	setRowCell(rows, 10, 10, 'O')
	setRowCell(rows, 10, 12, '#')
	s := stateFor(t, rows)

	require.True(t, isLegalMove(s, game.Position{X: 10, Y: 10}, game.Right))
	require.False(t, isLegalMove(s, game.Position{X: 10, Y: 11}, game.Right), "a wall destination is illegal")
	require.False(t, isLegalMove(s, game.Position{X: 1, Y: 1}, game.Up), "the border is a wall")
	require.True(t, isLegalMove(s, game.Position{X: 0, Y: 5}, game.Up), "negative destinations count as legal")
	require.False(t, isLegalMove(s, game.Position{X: 29, Y: 5}, game.Down), "past the far edge reads as wall")
}
