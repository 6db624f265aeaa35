package planner

import "pacman/game"

// The reward scans only cover the inner window of the board. Pellets outside
// it exist and can be eaten, but neither the milestone discount nor goal
// selection will ever consider them.
const (
	scanMin = 2
	scanMax = 25
)

// threatPattern is the fixed stamp applied around every hypothesized ghost
// cell: the cell itself and its four neighbours weigh most, and the weight
// decays outward through the diagonals, the knight cells and the straight
// runs at distance two and three.
var threatPattern = []struct {
	dx, dy, weight int
}{
	{0, 0, 500},
	{-1, 0, 500},
	{0, -1, 500},
	{1, 0, 500},
	{0, 1, 500},

	{-1, -1, 100},
	{-1, 1, 100},
	{1, 1, 100},
	{1, -1, 100},

	{-2, -1, 40},
	{-2, 1, 40},
	{1, 2, 40},
	{1, -2, 40},
	{-1, -2, 40},
	{-1, 2, 40},
	{2, 1, 40},
	{2, -1, 40},

	{-2, 0, 100},
	{2, 0, 100},
	{0, -2, 100},
	{0, 2, 100},
	{-3, 0, 50},
	{3, 0, 50},
	{0, -3, 50},
	{0, 3, 50},
}

// stampThreat applies the threat pattern once per hypothesis, scaled by
// sign. Every elementary write divides the base weight by the hypothesis
// count with truncating division, so applying with sign +1 and then -1
// restores every cell exactly. An empty hypothesis set stamps nothing.
func stampThreat(f *Field, hyps []game.Position, sign int) {
	n := len(hyps)
	if n == 0 {
		return
	}
	for _, h := range hyps {
		for _, c := range threatPattern {
			f.Adjust(game.Position{X: h.X + c.dx, Y: h.Y + c.dy}, sign*(c.weight/n))
		}
	}
}

func applyThreat(f *Field, hyps []game.Position) {
	stampThreat(f, hyps, 1)
}

func revertThreat(f *Field, hyps []game.Position) {
	stampThreat(f, hyps, -1)
}

// adjustPaths adds delta to every cell of every path. Overlapping paths
// compound, and the caller reverts by calling again with -delta over the
// same paths.
func adjustPaths(f *Field, paths [][]game.Position, delta int) {
	for _, path := range paths {
		for _, cell := range path {
			f.Adjust(cell, delta)
		}
	}
}

// applyRewardDiscount writes the standing pellet discounts: every pellet
// cell inside the scan window gets its risk set outright, power pellets
// lower than regular ones. This is an absolute set and is never reverted;
// it stays until the next milestone stamps over it.
func applyRewardDiscount(f *Field, s game.State, cfg Config) {
	for x := scanMin; x < scanMax; x++ {
		for y := scanMin; y < scanMax; y++ {
			switch s.Contents(x, y) {
			case game.PowerPellet:
				f.Set(game.Position{X: x, Y: y}, cfg.PowerPelletReward)
			case game.Pellet:
				f.Set(game.Position{X: x, Y: y}, cfg.PelletReward)
			}
		}
	}
}
