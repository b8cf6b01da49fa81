package experiments

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"

	"nogo/config"
	"nogo/engine"
	"nogo/experiments/metrics"
	"nogo/game"
	"nogo/searcher"
	"nogo/searcher/agent"
)

// RunBaselineExperiment pits the search agent against the uniform-random
// baseline, with colors swapped between matchups.
func RunBaselineExperiment(cfg config.Config) {
	random := metrics.AgentConfig{ID: 0, Kind: metrics.KindRandom}
	search := metrics.AgentConfig{
		ID:                1,
		Kind:              metrics.KindSearch,
		MinIterations:     cfg.MinIterations,
		MinTime:           cfg.MinTime,
		TimeCheckInterval: cfg.TimeCheckInterval,
		Rave:              true,
	}

	matchUps := [][2]metrics.AgentConfig{
		{search, random},
		{random, search},
	}
	runExperiment("baseline", cfg, []metrics.AgentConfig{random, search}, matchUps)
}

// RunBudgetExperiment sweeps the iteration floor against a fixed reference
// budget, with the time floor disabled so budgets actually differ.
func RunBudgetExperiment(cfg config.Config) {
	reference := metrics.AgentConfig{
		ID:            0,
		Kind:          metrics.KindSearch,
		MinIterations: 5000,
		Rave:          true,
	}
	budgets := []int{1000, 5000, 20000}

	configs := []metrics.AgentConfig{reference}
	matchUps := [][2]metrics.AgentConfig{}
	for i, budget := range budgets {
		challenger := metrics.AgentConfig{
			ID:            i + 1,
			Kind:          metrics.KindSearch,
			MinIterations: budget,
			Rave:          true,
		}
		configs = append(configs, challenger)
		matchUps = append(matchUps, [2]metrics.AgentConfig{reference, challenger})
	}

	runExperiment("budget", cfg, configs, matchUps)
}

// RunRaveExperiment compares the RAVE-augmented policy against plain UCB1 at
// the same budget.
func RunRaveExperiment(cfg config.Config) {
	ucb1 := metrics.AgentConfig{
		ID:            0,
		Kind:          metrics.KindSearch,
		MinIterations: cfg.MinIterations,
		MinTime:       cfg.MinTime,
	}
	rave := metrics.AgentConfig{
		ID:            1,
		Kind:          metrics.KindSearch,
		MinIterations: cfg.MinIterations,
		MinTime:       cfg.MinTime,
		Rave:          true,
	}

	matchUps := [][2]metrics.AgentConfig{
		{ucb1, rave},
		{rave, ucb1},
	}
	runExperiment("rave", cfg, []metrics.AgentConfig{ucb1, rave}, matchUps)
}

func runExperiment(name string, cfg config.Config, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig) {
	log.Info().Msgf("starting %s experiment...", name)

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	for mi, matchUp := range matchUps {
		black := matchUp[0]
		white := matchUp[1]

		log.Info().Msgf("starting matchup %d of %d between black=%+v and white=%+v...", mi+1, len(matchUps), black, white)

		outcomes := make([]float64, 0, cfg.Games)
		for i := 0; i < cfg.Games; i++ {
			seed := cfg.Seed + uint64(count)
			winner, gameMetric, moveMetrics := runGame(black, white, seed)

			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Black:      black.ID,
				White:      white.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			if winner == game.Black {
				outcomes = append(outcomes, 1)
			} else {
				outcomes = append(outcomes, 0)
			}
			log.Info().Msgf("completed matchup %d of %d game %d of %d with winner: %s", mi+1, len(matchUps), i+1, cfg.Games, winner)
		}

		winRate := stat.Mean(outcomes, nil)
		stderr := stat.StdDev(outcomes, nil) / math.Sqrt(float64(len(outcomes)))
		log.Info().Msgf("completed matchup %d of %d: black agent %d won %.2f±%.2f of %d games", mi+1, len(matchUps), black.ID, winRate, stderr, cfg.Games)
	}

	log.Info().Msgf("completed %s experiment", name)

	// Store experiment metadata
	writer, err := metrics.NewWriter(cfg.ResultsDir, name)
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
	log.Info().Msg("stored move records")
}

// runGame executes a single game between two agent configs and returns the
// winner. Each side gets its own deterministically seeded generator.
func runGame(black, white metrics.AgentConfig, seed uint64) (game.Color, metrics.GameMetric, []metrics.MoveMetric) {
	e := engine.LocalEngine(createAgent(black, seed), createAgent(white, seed+1))
	return e.Run()
}

func createAgent(cfg metrics.AgentConfig, seed uint64) agent.Agent {
	rng := rand.New(rand.NewSource(seed))
	if cfg.Kind == metrics.KindRandom {
		return agent.NewRandomAgent(rng)
	}

	options := []searcher.Option{
		searcher.WithMinIterations(cfg.MinIterations),
		searcher.WithMinTime(cfg.MinTime),
		searcher.WithTimeCheckInterval(cfg.TimeCheckInterval),
		searcher.WithMetrics(),
	}
	if !cfg.Rave {
		options = append(options, searcher.WithoutRave())
	}
	return agent.NewSearchAgent(searcher.NewMCTS(rng, options...))
}
