package game

import "fmt"

// BeliefState is the concrete State the engine maintains between ticks: the
// board, the agent's cell, and per-ghost sightings and fear counters. The
// engine mutates it as the game advances; the planner only reads it.
type BeliefState struct {
	board     *Board
	pacman    Position
	sightings [NumGhosts][]Position
	fear      [NumGhosts]int
}

// NewBeliefState wraps a board whose agent marker has already been placed.
func NewBeliefState(board *Board) (*BeliefState, error) {
	start, ok := board.Find(Pacman)
	if !ok {
		return nil, fmt.Errorf("board has no agent cell")
	}
	return &BeliefState{board: board, pacman: start}, nil
}

func (s *BeliefState) PacmanPosition() Position {
	return s.pacman
}

func (s *BeliefState) Contents(x, y int) Content {
	return s.board.Contents(x, y)
}

func (s *BeliefState) GhostSightings(ghost int) []Position {
	if ghost < 0 || ghost >= NumGhosts {
		return nil
	}
	return s.sightings[ghost]
}

func (s *BeliefState) FearCounter(ghost int) int {
	if ghost < 0 || ghost >= NumGhosts {
		return 0
	}
	return s.fear[ghost]
}

func (s *BeliefState) PelletCount() int {
	return s.board.PelletCount()
}

// Plans lists one single-move plan per playable direction, in canonical
// order. An empty result means the agent is boxed in.
func (s *BeliefState) Plans() []Plan {
	plans := make([]Plan, 0, len(Directions))
	for _, m := range Directions {
		next := s.pacman.Next(m)
		if s.board.Contents(next.X, next.Y) != Wall {
			plans = append(plans, Plan{Moves: []Move{m}})
		}
	}
	return plans
}

// MovePacman plays a direction move: the agent leaves its cell, enters the
// target cell and eats whatever was there. The eaten content is returned so
// the caller can score it. Stop and Terminal leave the state untouched.
func (s *BeliefState) MovePacman(m Move) (Content, error) {
	if m == Stop || m == Terminal {
		return Empty, nil
	}
	target := s.pacman.Next(m)
	eaten := s.board.Contents(target.X, target.Y)
	if eaten == Wall {
		return Empty, fmt.Errorf("move %s from (%d,%d) runs into a wall", m, s.pacman.X, s.pacman.Y)
	}
	s.board.SetContents(s.pacman.X, s.pacman.Y, Empty)
	s.board.SetContents(target.X, target.Y, Pacman)
	s.pacman = target
	return eaten, nil
}

// SetGhostSightings replaces the hypothesis set for a ghost. Out-of-range
// ghost indices are ignored.
func (s *BeliefState) SetGhostSightings(ghost int, cells []Position) {
	if ghost < 0 || ghost >= NumGhosts {
		return
	}
	s.sightings[ghost] = cells
}

// SetFearCounter replaces the frightened tick counter for a ghost.
func (s *BeliefState) SetFearCounter(ghost, ticks int) {
	if ghost < 0 || ghost >= NumGhosts {
		return
	}
	s.fear[ghost] = ticks
}

// Board exposes the underlying board for engine bookkeeping.
func (s *BeliefState) Board() *Board {
	return s.board
}
