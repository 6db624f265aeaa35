package experiments

import (
	"fmt"
	"sync"

	"pacman/agent"
	"pacman/engine"
	"pacman/experiments/metrics"
	"pacman/experiments/storage"
	"pacman/game"
	"pacman/planner"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	NumGames   = 30 // Per configuration
	NumWorkers = 4
)

// Options controls where a batch runs and where its results go. Zero fields
// fall back to the packaged level and the constants above.
type Options struct {
	Level    game.Level
	Games    int
	Workers  int
	BaseSeed uint64
	OutDir   string
	DBPath   string // empty disables SQLite logging
}

func (o Options) withDefaults() Options {
	if o.Level.Name == "" {
		o.Level = game.ClassicLevel()
	}
	if o.Games <= 0 {
		o.Games = NumGames
	}
	if o.Workers <= 0 {
		o.Workers = NumWorkers
	}
	if o.BaseSeed == 0 {
		o.BaseSeed = 1
	}
	if o.OutDir == "" {
		o.OutDir = "experiments"
	}
	return o
}

// batchConfig pairs the planner tuning a batch plays with its catalog entry.
type batchConfig struct {
	agent metrics.AgentConfig
	cfg   planner.Config
	fog   bool
}

func describe(id int, cfg planner.Config, fog bool) metrics.AgentConfig {
	return metrics.AgentConfig{
		ID:              id,
		FearThreshold:   cfg.FearThreshold,
		SelfBias:        cfg.SelfBias,
		PursuitDiscount: cfg.PursuitDiscount,
		GoalDiscount:    cfg.GoalDiscount,
		ChaseDiscount:   cfg.ChaseDiscount,
		GoalCooldown:    cfg.GoalCooldown,
		Fog:             fog,
	}
}

// RunTuningExperiment compares the default planner weights against variants
// that shift the evasion threshold and the chase incentive.
func RunTuningExperiment(opts Options) {
	base := planner.DefaultConfig()

	timid := base
	timid.FearThreshold = 20

	bold := base
	bold.FearThreshold = 5

	greedy := base
	greedy.ChaseDiscount = 400

	variants := []planner.Config{base, timid, bold, greedy}
	batch := make([]batchConfig, len(variants))
	for i, cfg := range variants {
		batch[i] = batchConfig{agent: describe(i+1, cfg, false), cfg: cfg}
	}

	runExperiment("tuning", opts, batch)
}

// RunFogExperiment plays the default planner with exact sightings against
// the same planner under widened multi-hypothesis sightings.
func RunFogExperiment(opts Options) {
	base := planner.DefaultConfig()
	batch := []batchConfig{
		{agent: describe(1, base, false), cfg: base},
		{agent: describe(2, base, true), cfg: base, fog: true},
	}

	runExperiment("fog", opts, batch)
}

// RunSingleExperiment plays one batch with the given planner weights.
func RunSingleExperiment(opts Options, cfg planner.Config, fog bool) {
	batch := []batchConfig{{agent: describe(1, cfg, fog), cfg: cfg, fog: fog}}

	runExperiment("single", opts, batch)
}

func runExperiment(name string, opts Options, batch []batchConfig) {
	opts = opts.withDefaults()

	var store *storage.Store
	if opts.DBPath != "" {
		var err error
		store, err = storage.New(opts.DBPath)
		if err != nil {
			panic(fmt.Sprintf("failed to open experiment store: %v", err))
		}
		defer store.Close()
	}

	count := 0
	configs := []metrics.AgentConfig{}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for ci, bc := range batch {
		configs = append(configs, bc.agent)

		log.Info().Msgf("starting configuration %d of %d: %+v...", ci+1, len(batch), bc.agent)

		collector := metrics.NewCollector()
		collector.Start(opts.Level.Name, bc.agent.ID)

		runID := uuid.New().String()
		if store != nil {
			if err := store.CreateRun(runID, name, opts.Level.Name, bc.agent.ID); err != nil {
				panic(fmt.Sprintf("failed to create run record: %v", err))
			}
		}

		results := playBatch(opts, bc, collector)

		for _, r := range results {
			count++
			record := metrics.GameRecord{
				ID:         count,
				Agent:      bc.agent.ID,
				GameMetric: r.gm,
			}
			gameRecords = append(gameRecords, record)
			for _, mm := range r.mm {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}
			if store != nil {
				if err := store.SaveGame(runID, record); err != nil {
					panic(fmt.Sprintf("failed to save game record: %v", err))
				}
				if err := store.SaveMoves(runID, count, r.mm); err != nil {
					panic(fmt.Sprintf("failed to save move records: %v", err))
				}
			}
		}

		batchMetric := collector.Complete()
		if store != nil {
			if err := store.FinishRun(runID, batchMetric); err != nil {
				panic(fmt.Sprintf("failed to finish run record: %v", err))
			}
		}

		log.Info().Msgf("completed configuration %d of %d: %d cleared, %d caught, %d stalled",
			ci+1, len(batch), batchMetric.Cleared, batchMetric.Caught, batchMetric.Stalled)
	}

	log.Info().Msgf("completed %s experiment", name)

	// Store experiment metadata
	writer, err := metrics.NewWriter(opts.OutDir, name)
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		panic(fmt.Sprintf("failed to store agent configs: %v", err))
	}
	log.Info().Msg("stored agent configs")

	// Store experiment results
	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write game records: %v", err))
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write move records: %v", err))
	}
	log.Info().Msgf("stored move records under %s", writer.Dir())
}

type gameResult struct {
	outcome string
	gm      metrics.GameMetric
	mm      []metrics.MoveMetric
}

// playBatch plays the batch's games on a small worker pool. Results are
// indexed by game number so records stay in seed order no matter which
// worker finishes first.
func playBatch(opts Options, bc batchConfig, collector metrics.Collector) []gameResult {
	results := make([]gameResult, opts.Games)
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				r := playGame(opts, bc, i)
				collector.AddGame(r.outcome, r.gm.Score, r.gm.Ticks)
				results[i] = r
			}
		}()
	}
	for i := 0; i < opts.Games; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

// playGame executes a single game for one configuration and seed
func playGame(opts Options, bc batchConfig, index int) gameResult {
	p := planner.New(planner.WithConfig(bc.cfg))
	ag := agent.NewPlannerAgent(p)

	options := []engine.Option{engine.WithSeed(opts.BaseSeed + uint64(index))}
	if bc.fog {
		options = append(options, engine.WithFog())
	}
	e := engine.LocalEngine(opts.Level, ag, options...)

	outcome, gameMetric, moveMetrics := e.Run()

	return gameResult{outcome: outcome, gm: gameMetric, mm: moveMetrics}
}
