package agent

import (
	"time"

	"pacman/game"
	"pacman/planner"
)

type plannerAgent struct {
	planner *planner.Planner
}

// NewPlannerAgent wraps the risk-field planner for game play. The planner
// keeps per-game state (its field and goal cache), so a fresh planner is
// needed per game.
func NewPlannerAgent(p *planner.Planner) Agent {
	return plannerAgent{planner: p}
}

func (a plannerAgent) FindMove(state game.State) (game.Move, DecisionMetrics) {
	start := time.Now()
	move := a.planner.NextMove(state)
	return move, DecisionMetrics{
		Elapsed:     time.Since(start),
		PelletsLeft: state.PelletCount(),
	}
}
