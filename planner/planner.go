package planner

import (
	"math"

	"github.com/rs/zerolog/log"

	"pacman/game"
)

// Planner picks the agent's next move, one call per tick. It owns the risk
// field: between ticks the field keeps only the standing mutations (the
// per-tick self bias and the milestone pellet discounts); every other
// perturbation applied during a tick is reverted before NextMove returns.
//
// A Planner serves one game at a time. Ticks must not overlap; nothing else
// may touch the field while a tick runs.
type Planner struct {
	cfg   Config
	field *Field
	goal  goalCache
}

// Option configures a Planner at construction.
type Option func(*Planner)

// WithConfig replaces the default tuning.
func WithConfig(cfg Config) Option {
	return func(p *Planner) { p.cfg = cfg }
}

// New builds a planner with a zeroed risk field.
func New(opts ...Option) *Planner {
	p := &Planner{
		cfg:   DefaultConfig(),
		field: NewField(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Field exposes the risk field for inspection and experiment dumps. Callers
// must not mutate it.
func (p *Planner) Field() *Field {
	return p.field
}

// isLegalMove reports whether a move may be played from the given cell: the
// destination must not be a wall. Negative destinations count as legal
// here; the field and the board both bounds-check their own accesses, so a
// negative probe never indexes anything.
func isLegalMove(s game.State, from game.Position, m game.Move) bool {
	next := from.Next(m)
	if next.X < 0 || next.Y < 0 {
		return true
	}
	return s.Contents(next.X, next.Y) != game.Wall
}

// NextMove runs one decision tick against the current belief state.
//
// Per ghost, the tick either stamps threat risk around every hypothesized
// cell (evasion, fear counter below the threshold) or discounts every cell
// on the approach paths toward the hypotheses (pursuit). The cached goal
// path gets its own transient discount. All of these are scheduled for
// exact reversal the moment they are applied, so the field cannot leak
// tick-local state no matter how the tick exits. The milestone pellet
// discounts and the self bias at the agent's cell stay behind on purpose.
func (p *Planner) NextMove(s game.State) game.Move {
	agent := s.PacmanPosition()

	for g := 0; g < game.NumGhosts; g++ {
		hyps := s.GhostSightings(g)
		if len(hyps) == 0 {
			continue
		}
		if s.FearCounter(g) < p.cfg.FearThreshold {
			applyThreat(p.field, hyps)
			defer revertThreat(p.field, hyps)
		} else {
			paths := make([][]game.Position, 0, len(hyps))
			for _, h := range hyps {
				paths = append(paths, findPath(s, agent, h))
			}
			per := p.cfg.PursuitDiscount / len(hyps)
			adjustPaths(p.field, paths, -per)
			defer adjustPaths(p.field, paths, per)
		}
	}

	if p.cfg.isMilestone(s.PelletCount()) {
		applyRewardDiscount(p.field, s, p.cfg)
	}

	if goalPath := p.goal.refresh(s, p.cfg.GoalCooldown); len(goalPath) > 0 {
		discount := p.cfg.GoalDiscount
		if p.bothHuntable(s) {
			discount += p.cfg.ChaseDiscount
		}
		adjustPaths(p.field, [][]game.Position{goalPath}, -discount)
		defer adjustPaths(p.field, [][]game.Position{goalPath}, discount)
	}

	p.field.Adjust(agent, p.cfg.SelfBias)

	// One-step lookahead: the playable candidate whose destination carries
	// the least risk wins, first scanned on ties.
	best := game.Stop
	found := false
	minRisk := math.MaxInt
	for _, plan := range s.Plans() {
		for _, m := range plan.Moves {
			if !isLegalMove(s, agent, m) {
				continue
			}
			if risk := p.field.At(agent.Next(m)); risk < minRisk {
				minRisk = risk
				best = m
				found = true
			}
		}
	}

	if s.PelletCount() == 0 {
		return game.Terminal
	}
	if !found {
		log.Debug().Msgf("agent boxed in at (%d,%d), stopping", agent.X, agent.Y)
		return game.Stop
	}
	log.Debug().Msgf("tick: %s with risk %d, %d pellets left", best, minRisk, s.PelletCount())
	return best
}

func (p *Planner) bothHuntable(s game.State) bool {
	for g := 0; g < game.NumGhosts; g++ {
		if s.FearCounter(g) < p.cfg.FearThreshold {
			return false
		}
	}
	return true
}
