package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds the experiment-level knobs: the per-move search budget, the
// number of games per matchup and the base seed. Values come from defaults,
// an optional nogo.yaml in the working directory, and NOGO_* environment
// variables, in increasing order of precedence.
type Config struct {
	Games             int
	MinIterations     int
	MinTime           time.Duration
	TimeCheckInterval int
	Seed              uint64
	ResultsDir        string
}

func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("games", 20)
	v.SetDefault("min_iterations", 50000)
	v.SetDefault("min_time", "1s")
	v.SetDefault("time_check_interval", 64)
	v.SetDefault("seed", 1)
	v.SetDefault("results_dir", "results")

	v.SetConfigName("nogo")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("nogo")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file is fine; defaults and env apply
	}

	return Config{
		Games:             v.GetInt("games"),
		MinIterations:     v.GetInt("min_iterations"),
		MinTime:           v.GetDuration("min_time"),
		TimeCheckInterval: v.GetInt("time_check_interval"),
		Seed:              v.GetUint64("seed"),
		ResultsDir:        v.GetString("results_dir"),
	}, nil
}
