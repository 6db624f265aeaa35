package agent

import (
	"time"

	"pacman/game"
)

// Agent picks one move per tick of a running game.
type Agent interface {
	// FindMove returns the chosen move and timing data for the decision.
	FindMove(state game.State) (game.Move, DecisionMetrics)
}

// DecisionMetrics describes a single decision for the experiment layer.
type DecisionMetrics struct {
	Elapsed     time.Duration
	PelletsLeft int
}
