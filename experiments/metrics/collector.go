package metrics

import (
	"sync/atomic"
	"time"
)

// GameMetric describes one finished game.
type GameMetric struct {
	Level       string
	Seed        uint64
	Outcome     string
	Score       int
	Ticks       int
	PelletsLeft int
	StartTime   time.Time
	EndTime     time.Time
	Duration    time.Duration
}

// MoveMetric describes one decision within a game.
type MoveMetric struct {
	Tick        int
	Move        string
	Elapsed     time.Duration
	PelletsLeft int
	Score       int
}

// BatchMetric aggregates a batch of games played under one configuration.
type BatchMetric struct {
	Level      string
	Config     int // AgentConfig.ID
	Games      int
	Cleared    int
	Caught     int
	Stalled    int
	TotalScore int64
	TotalTicks int64
	Duration   time.Duration
}

// Collector aggregates game outcomes across a batch. Implementations must
// be safe for concurrent use; the batch runner finishes games on several
// goroutines at once.
type Collector interface {
	Start(level string, config int)
	AddGame(outcome string, score, ticks int)
	Complete() BatchMetric
}

type collector struct {
	level     string
	config    int
	startTime time.Time
	games     atomic.Int32
	cleared   atomic.Int32
	caught    atomic.Int32
	stalled   atomic.Int32
	score     atomic.Int64
	ticks     atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(level string, config int) {
	c.startTime = time.Now()
	c.level = level
	c.config = config
}

func (c *collector) AddGame(outcome string, score, ticks int) {
	c.games.Add(1)
	switch outcome {
	case "cleared":
		c.cleared.Add(1)
	case "caught":
		c.caught.Add(1)
	default:
		c.stalled.Add(1)
	}
	c.score.Add(int64(score))
	c.ticks.Add(int64(ticks))
}

func (c *collector) Complete() BatchMetric {
	return BatchMetric{
		Level:      c.level,
		Config:     c.config,
		Games:      int(c.games.Load()),
		Cleared:    int(c.cleared.Load()),
		Caught:     int(c.caught.Load()),
		Stalled:    int(c.stalled.Load()),
		TotalScore: c.score.Load(),
		TotalTicks: c.ticks.Load(),
		Duration:   time.Since(c.startTime),
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a collector that records nothing, for runs that
// do not persist metrics.
func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (d *dummyCollector) Start(level string, config int)           {}
func (d *dummyCollector) AddGame(outcome string, score, ticks int) {}
func (d *dummyCollector) Complete() BatchMetric                    { return BatchMetric{} }
