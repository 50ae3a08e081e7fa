package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/knapsack/genetic"
)

// Environment variables read after the env file is loaded.
const (
	envLogLevel = "KNAPSACK_LOG_LEVEL"
	envWorkers  = "KNAPSACK_WORKERS"
	envGAConfig = "KNAPSACK_GA_CONFIG"
)

// envConfig holds the process-wide settings.
type envConfig struct {
	LogLevel slog.Level
	Workers  int
	GAConfig string
}

// app carries what every subcommand needs.
type app struct {
	env    envConfig
	log    *slog.Logger
	stdout io.Writer
	stderr io.Writer
}

// loadEnv loads path into the process environment when it exists, then
// reads the KNAPSACK_* variables. Variables already set win over the file.
func loadEnv(path string) (envConfig, error) {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err != nil {
				return envConfig{}, fmt.Errorf("load env file %s: %w", path, err)
			}
		}
	}

	cfg := envConfig{LogLevel: slog.LevelInfo, GAConfig: os.Getenv(envGAConfig)}
	if v := os.Getenv(envLogLevel); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return envConfig{}, fmt.Errorf("%s: %w", envLogLevel, err)
		}
	}
	if v := os.Getenv(envWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envConfig{}, fmt.Errorf("%s: %w", envWorkers, err)
		}
		cfg.Workers = n
	}
	return cfg, nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// gaConfig is the YAML form of the GA parameters. Selection and management
// accept their names or the numeric codes 0, 1, 2.
type gaConfig struct {
	PopulationSize       int     `yaml:"population_size"`
	MaxGenerations       int     `yaml:"max_generations"`
	ParentSelection      string  `yaml:"parent_selection"`
	TournamentSize       int     `yaml:"tournament_size"`
	PopulationManagement string  `yaml:"population_management"`
	ElitesCount          int     `yaml:"elites_count"`
	MutationProbability  float64 `yaml:"mutation_probability"`
	Seed                 int64   `yaml:"seed"`
	PrintStatus          bool    `yaml:"print_status"`
}

func defaultGAConfig() gaConfig {
	d := genetic.DefaultOptions()
	return gaConfig{
		PopulationSize:       d.PopulationSize,
		MaxGenerations:       d.MaxGenerations,
		ParentSelection:      d.Selection.String(),
		TournamentSize:       d.TournamentSize,
		PopulationManagement: d.Management.String(),
		ElitesCount:          d.ElitesCount,
		MutationProbability:  d.MutationProbability,
	}
}

// loadGAConfig reads path over the defaults. An empty path yields the defaults.
func loadGAConfig(path string) (gaConfig, error) {
	cfg := defaultGAConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return gaConfig{}, fmt.Errorf("read GA config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return gaConfig{}, fmt.Errorf("parse GA config %s: %w", path, err)
	}
	return cfg, nil
}

// options converts c into genetic options. Generation records go to log at
// debug level; with print_status each generation is also written to status.
func (c gaConfig) options(log *slog.Logger, status io.Writer) ([]genetic.Option, error) {
	opts := []genetic.Option{
		genetic.WithPopulationSize(c.PopulationSize),
		genetic.WithMaxGenerations(c.MaxGenerations),
		genetic.WithMutationProbability(c.MutationProbability),
		genetic.WithSeed(c.Seed),
	}

	switch strings.ToLower(strings.TrimSpace(c.ParentSelection)) {
	case "0", "tournament":
		opts = append(opts, genetic.WithTournament(c.TournamentSize))
	case "1", "roulette":
		opts = append(opts, genetic.WithRoulette())
	default:
		return nil, fmt.Errorf("parent_selection %q: %w", c.ParentSelection, genetic.ErrUnsupportedSelection)
	}

	var m genetic.Management
	switch strings.ToLower(strings.TrimSpace(c.PopulationManagement)) {
	case "0", "replace-all":
		m = genetic.ReplaceAll
	case "1", "replace-all-but-elites":
		m = genetic.ReplaceAllButElites
	case "2", "replace-weakest":
		m = genetic.ReplaceWeakest
	default:
		return nil, fmt.Errorf("population_management %q: %w", c.PopulationManagement, genetic.ErrUnsupportedManagement)
	}
	opts = append(opts, genetic.WithManagement(m), func(o *genetic.Options) { o.ElitesCount = c.ElitesCount })

	if log != nil {
		opts = append(opts, genetic.WithLogger(log))
	}
	if c.PrintStatus && status != nil {
		opts = append(opts, genetic.WithOnGeneration(func(st genetic.GenerationStats) {
			fmt.Fprintf(status, "Generation %3d: Fitness; %6d; %6d; %6d; %8d\n",
				st.Generation, st.Min, st.Avg, st.Max, st.Total)
		}))
	}
	return opts, nil
}
