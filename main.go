package main

import (
	"flag"
	"os"

	"pacman/experiments"
	"pacman/game"
	"pacman/planner"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	experiment := flag.String("experiment", "tuning", "Experiment to run: tuning, fog or single")
	games := flag.Int("games", experiments.NumGames, "Number of games per configuration")
	workers := flag.Int("workers", experiments.NumWorkers, "Number of games played in parallel")
	seed := flag.Uint64("seed", 1, "Base seed; game i plays with seed+i")
	out := flag.String("out", "experiments", "Directory for CSV results")
	db := flag.String("db", "", "SQLite database path; empty disables storage")
	configPath := flag.String("config", "", "YAML planner tuning file for the single experiment")
	fog := flag.Bool("fog", false, "Widen ghost sightings for the single experiment")
	logLevel := flag.String("loglevel", "info", "Log level: debug, info, warn or error")
	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal().Msgf("unknown log level %q", *logLevel)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	opts := experiments.Options{
		Level:    game.ClassicLevel(),
		Games:    *games,
		Workers:  *workers,
		BaseSeed: *seed,
		OutDir:   *out,
		DBPath:   *db,
	}

	switch *experiment {
	case "tuning":
		experiments.RunTuningExperiment(opts)
	case "fog":
		experiments.RunFogExperiment(opts)
	case "single":
		cfg := planner.DefaultConfig()
		if *configPath != "" {
			cfg, err = planner.LoadConfig(*configPath)
			if err != nil {
				log.Fatal().Msgf("failed to load planner config: %v", err)
			}
		}
		experiments.RunSingleExperiment(opts, cfg, *fog)
	default:
		log.Fatal().Msgf("unknown experiment %q", *experiment)
	}
}
