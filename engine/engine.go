package engine

import "pacman/experiments/metrics"

const MaxTicks = 2000

type Engine interface {
	// Run plays a game till it ends or a max number of ticks is reached
	Run() (outcome string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
