package genetic

import (
	"errors"

	"github.com/katalvlaran/knapsack/problem"
)

// Sentinel errors returned by New.
var (
	ErrBadPopulationSize      = errors.New("genetic: population size must be positive")
	ErrBadTournamentSize      = errors.New("genetic: tournament size must be at least 1")
	ErrBadElitesCount         = errors.New("genetic: elites count must be in [0, population size)")
	ErrBadMutationProbability = errors.New("genetic: mutation probability must be in [0, 1]")
	ErrUnsupportedSelection   = errors.New("genetic: unsupported parent selection")
	ErrUnsupportedManagement  = errors.New("genetic: unsupported population management")
)

// Selection is the parent selection method.
type Selection int

const (
	// Tournament draws TournamentSize individuals with replacement and keeps
	// the fittest; the first one drawn wins a tie.
	Tournament Selection = iota

	// Roulette picks an individual with probability fitness/total. When the
	// whole population scores 0 the last individual is picked.
	Roulette
)

// String returns the lower-case name used in configuration files, or
// "unknown" for a value outside the enum.
func (s Selection) String() string {
	switch s {
	case Tournament:
		return "tournament"
	case Roulette:
		return "roulette"
	}
	return "unknown"
}

// Management is the population replacement policy.
type Management int

const (
	// ReplaceAll breeds a complete new generation from the current one.
	ReplaceAll Management = iota

	// ReplaceAllButElites carries up to ElitesCount of the fittest
	// chromosomes with positive fitness, cloned, and breeds the rest.
	ReplaceAllButElites

	// ReplaceWeakest is steady state: each offspring overwrites the current
	// weakest chromosome, so the population size never changes and the best
	// fitness never drops.
	ReplaceWeakest
)

// String returns the hyphenated name used in configuration files, or
// "unknown" for a value outside the enum.
func (m Management) String() string {
	switch m {
	case ReplaceAll:
		return "replace-all"
	case ReplaceAllButElites:
		return "replace-all-but-elites"
	case ReplaceWeakest:
		return "replace-weakest"
	}
	return "unknown"
}

// GenerationStats summarises the fitness of one population. Generation 0 is
// the random initial population.
type GenerationStats struct {
	Generation int
	Min        int
	Avg        int // truncated mean
	Max        int
	Total      int
}

// Result is the outcome of Run.
type Result struct {
	Solution    problem.Solution
	Generations int               // generations bred after the initial population
	History     []GenerationStats // one entry per population, initial included
}
