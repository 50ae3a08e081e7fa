package solver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/knapsack/genetic"
)

var (
	// ErrUnsupportedAlgorithm is returned for an unknown Algorithm value or name.
	ErrUnsupportedAlgorithm = errors.New("solver: unsupported algorithm")

	// ErrBadEpsilon is returned when FPTAS is requested with ε outside (0, 1].
	ErrBadEpsilon = errors.New("solver: epsilon must be in (0, 1]")
)

// Algorithm selects the solver used by Solve.
type Algorithm int

const (
	BruteForce Algorithm = iota
	BruteForcePruned
	RatioGreedy
	DynamicProgramming
	FPTAS
	Genetic
)

var names = [...]string{
	BruteForce:         "bf",
	BruteForcePruned:   "bf-pruned",
	RatioGreedy:        "greedy",
	DynamicProgramming: "dp",
	FPTAS:              "fptas",
	Genetic:            "ga",
}

// Algorithms lists every supported algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{BruteForce, BruteForcePruned, RatioGreedy, DynamicProgramming, FPTAS, Genetic}
}

func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(names) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return names[a]
}

// ParseAlgorithm maps a case-insensitive name back to its Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if n == key {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnsupportedAlgorithm)
}

// Options configures Solve.
type Options struct {
	Algo    Algorithm
	Epsilon float64          // FPTAS only
	Genetic []genetic.Option // Genetic only; applied over genetic.DefaultOptions
}

// DefaultOptions selects the exact DP and ε = 0.1 for FPTAS.
func DefaultOptions() Options {
	return Options{Algo: DynamicProgramming, Epsilon: 0.1}
}
