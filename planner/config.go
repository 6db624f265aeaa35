package planner

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries the planner's tuning knobs. The zero value is not usable;
// start from DefaultConfig and override selectively, or load overrides from
// a YAML file.
type Config struct {
	// FearThreshold is the fear counter value at which a ghost flips from a
	// threat to evade into a target to hunt.
	FearThreshold int `yaml:"fear_threshold"`
	// SelfBias is added permanently to the agent's current cell each tick so
	// the agent prefers ground it has not just covered.
	SelfBias int `yaml:"self_bias"`
	// PursuitDiscount is subtracted, divided by the hypothesis count, from
	// every cell on every approach path toward a huntable ghost.
	PursuitDiscount int `yaml:"pursuit_discount"`
	// GoalDiscount is subtracted from every cell of the cached goal path for
	// the duration of one tick.
	GoalDiscount int `yaml:"goal_discount"`
	// ChaseDiscount is additionally subtracted from every goal path cell
	// while both ghosts are huntable at once.
	ChaseDiscount int `yaml:"chase_discount"`
	// GoalCooldown is the number of ticks a cached goal survives before it
	// is recomputed even if its pellet is still there.
	GoalCooldown int `yaml:"goal_cooldown"`
	// PelletReward and PowerPelletReward are the standing risk values written
	// at pellet cells when a milestone fires.
	PelletReward      int `yaml:"pellet_reward"`
	PowerPelletReward int `yaml:"power_pellet_reward"`
	// Milestones are the remaining-pellet counts at which the standing
	// reward discount is stamped. Pellets leave the board at most one per
	// tick, so a clearing run observes each count exactly on the way down.
	Milestones []int `yaml:"milestones"`
}

// DefaultConfig returns the tuning the planner was calibrated with.
func DefaultConfig() Config {
	return Config{
		FearThreshold:     10,
		SelfBias:          15,
		PursuitDiscount:   250,
		GoalDiscount:      25,
		ChaseDiscount:     200,
		GoalCooldown:      4,
		PelletReward:      -20,
		PowerPelletReward: -50,
		Milestones:        []int{140, 205, 165},
	}
}

// LoadConfig reads YAML overrides from path on top of the defaults. Fields
// absent from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read planner config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse planner config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) isMilestone(pellets int) bool {
	for _, m := range c.Milestones {
		if pellets == m {
			return true
		}
	}
	return false
}
