package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"nogo/config"
	"nogo/experiments"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	experiments.RunBaselineExperiment(cfg)
	experiments.RunBudgetExperiment(cfg)
	experiments.RunRaveExperiment(cfg)
}
