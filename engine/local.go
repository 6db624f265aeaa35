package engine

import (
	"fmt"
	"time"

	"pacman/agent"
	"pacman/experiments/metrics"
	"pacman/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const (
	pelletScore      = 10
	powerPelletScore = 50
	ghostScore       = 200

	// DefaultFearDuration is how many ticks the ghosts stay edible after
	// the agent eats a power pellet.
	DefaultFearDuration = 40
)

type ghost struct {
	pos  game.Position
	home game.Position
	fear int
}

// Local plays a single game between one agent and scripted random-walk
// ghosts on a fixed level.
type Local struct {
	level     game.Level
	agent     agent.Agent
	state     *game.BeliefState
	ghosts    [game.NumGhosts]ghost
	rng       *rand.Rand
	seed      uint64
	maxTicks  int
	fearTicks int
	fog       bool
	score     int
}

type Option func(*Local)

func WithSeed(seed uint64) Option {
	return func(e *Local) {
		e.seed = seed
	}
}

func WithMaxTicks(n int) Option {
	return func(e *Local) {
		e.maxTicks = n
	}
}

func WithFearDuration(ticks int) Option {
	return func(e *Local) {
		e.fearTicks = ticks
	}
}

// WithFog widens each ghost sighting to the ghost's cell plus its walkable
// neighbors, so the agent plans against several hypotheses per ghost.
func WithFog() Option {
	return func(e *Local) {
		e.fog = true
	}
}

func LocalEngine(level game.Level, ag agent.Agent, options ...Option) *Local {
	board, err := level.NewBoard()
	if err != nil {
		panic(fmt.Sprintf("level %s does not parse: %v", level.Name, err))
	}
	state, err := game.NewBeliefState(board)
	if err != nil {
		panic(fmt.Sprintf("level %s has no agent cell: %v", level.Name, err))
	}

	e := &Local{
		level:     level,
		agent:     ag,
		state:     state,
		seed:      1,
		maxTicks:  MaxTicks,
		fearTicks: DefaultFearDuration,
	}
	for i, home := range level.GhostHomes {
		e.ghosts[i] = ghost{pos: home, home: home}
	}
	for _, option := range options {
		option(e)
	}
	e.rng = rand.New(rand.NewSource(e.seed))
	return e
}

// Run executes the game loop until the agent announces the level complete,
// a ghost catches it, or the tick cap is reached.
func (e *Local) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	start := time.Now()
	log.Info().Msgf("starting game on level %s with seed %d", e.level.Name, e.seed)

	caught := false
	var moveMetrics []metrics.MoveMetric

	for tick := 1; tick <= e.maxTicks; tick++ {
		e.syncSightings()

		move, dm := e.agent.FindMove(e.state)
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Tick:        tick,
			Move:        string(move),
			Elapsed:     dm.Elapsed,
			PelletsLeft: dm.PelletsLeft,
			Score:       e.score,
		})

		if move == game.Terminal {
			break
		}

		eaten, err := e.state.MovePacman(move)
		if err != nil {
			panic(fmt.Sprintf("agent played an illegal move: %v", err))
		}
		e.scoreContent(eaten)

		if e.resolveContacts() {
			caught = true
			break
		}
		e.moveGhosts()
		if e.resolveContacts() {
			caught = true
			break
		}

		for i := range e.ghosts {
			if e.ghosts[i].fear > 0 {
				e.ghosts[i].fear--
			}
		}
	}

	outcome := "stalled"
	if caught {
		outcome = "caught"
	} else if e.state.PelletCount() == 0 {
		outcome = "cleared"
	}

	end := time.Now()
	gameMetric := metrics.GameMetric{
		Level:       e.level.Name,
		Seed:        e.seed,
		Outcome:     outcome,
		Score:       e.score,
		Ticks:       len(moveMetrics),
		PelletsLeft: e.state.PelletCount(),
		StartTime:   start,
		EndTime:     end,
		Duration:    end.Sub(start),
	}

	log.Info().Msgf("completed game on level %s after %d ticks with outcome: %s", e.level.Name, gameMetric.Ticks, outcome)

	return outcome, gameMetric, moveMetrics
}

// syncSightings publishes each ghost's cell and fear counter into the
// belief state before the agent decides.
func (e *Local) syncSightings() {
	for i := range e.ghosts {
		cells := []game.Position{e.ghosts[i].pos}
		if e.fog {
			cells = append(cells, walkableNeighbors(e.state, e.ghosts[i].pos)...)
		}
		e.state.SetGhostSightings(i, cells)
		e.state.SetFearCounter(i, e.ghosts[i].fear)
	}
}

func (e *Local) scoreContent(eaten game.Content) {
	switch eaten {
	case game.Pellet:
		e.score += pelletScore
	case game.PowerPellet:
		e.score += powerPelletScore
		for i := range e.ghosts {
			e.ghosts[i].fear = e.fearTicks
		}
	}
}

// resolveContacts settles collisions between the agent and the ghosts. An
// edible ghost is eaten and sent home; a hostile one ends the game.
func (e *Local) resolveContacts() bool {
	pac := e.state.PacmanPosition()
	for i := range e.ghosts {
		if e.ghosts[i].pos != pac {
			continue
		}
		if e.ghosts[i].fear > 0 {
			e.score += ghostScore
			e.ghosts[i].pos = e.ghosts[i].home
			e.ghosts[i].fear = 0
		} else {
			return true
		}
	}
	return false
}

// moveGhosts advances each ghost one random walkable step. A boxed-in ghost
// stays where it is.
func (e *Local) moveGhosts() {
	for i := range e.ghosts {
		candidates := walkableNeighbors(e.state, e.ghosts[i].pos)
		if len(candidates) == 0 {
			continue
		}
		e.ghosts[i].pos = candidates[e.rng.Intn(len(candidates))]
	}
}

func walkableNeighbors(s game.State, p game.Position) []game.Position {
	cells := make([]game.Position, 0, len(game.Directions))
	for _, m := range game.Directions {
		next := p.Next(m)
		if s.Contents(next.X, next.Y) != game.Wall {
			cells = append(cells, next)
		}
	}
	return cells
}
