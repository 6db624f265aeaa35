package planner

import "pacman/game"

// nearestPellet scans the reward window for the pellet closest to the agent
// by Manhattan distance. Ties go to the first cell in row-major scan order.
// ok is false when the window holds no pellet at all.
func nearestPellet(s game.State) (pos game.Position, ok bool) {
	agent := s.PacmanPosition()
	best := int(^uint(0) >> 1)
	for x := scanMin; x < scanMax; x++ {
		for y := scanMin; y < scanMax; y++ {
			c := s.Contents(x, y)
			if c != game.Pellet && c != game.PowerPellet {
				continue
			}
			cell := game.Position{X: x, Y: y}
			if d := game.Manhattan(cell, agent); d < best {
				best = d
				pos = cell
				ok = true
			}
		}
	}
	return pos, ok
}

// goalCache holds the current target pellet and the path toward it across
// ticks, so the board scan and the path search only rerun when the target
// is gone or the cache has aged out.
type goalCache struct {
	target game.Position
	path   []game.Position
	valid  bool
	age    int
}

// refresh returns the goal path to stamp this tick, recomputing target and
// path when the cached target no longer holds a pellet or the cache is
// older than maxAge ticks. A nil result means there is nothing to chase.
func (g *goalCache) refresh(s game.State, maxAge int) []game.Position {
	if !g.valid || !holdsPellet(s, g.target) || g.age > maxAge {
		g.age = 0
		if target, ok := nearestPellet(s); ok {
			g.target = target
			g.path = findPath(s, s.PacmanPosition(), target)
			g.valid = true
		} else {
			g.path = nil
			g.valid = false
		}
	}
	g.age++
	return g.path
}

func holdsPellet(s game.State, p game.Position) bool {
	c := s.Contents(p.X, p.Y)
	return c == game.Pellet || c == game.PowerPellet
}
