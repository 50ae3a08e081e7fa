package solver

import (
	"math"

	"github.com/katalvlaran/knapsack/dynamic"
	"github.com/katalvlaran/knapsack/exact"
	"github.com/katalvlaran/knapsack/genetic"
	"github.com/katalvlaran/knapsack/heuristic"
	"github.com/katalvlaran/knapsack/problem"
)

// Func is the common shape of every algorithm.
type Func func(*problem.Knapsack) (problem.Solution, error)

// New validates opts once and returns the chosen algorithm as a Func.
// Reuse the Func to avoid rebuilding a genetic.Solver per instance.
//
// Errors: ErrUnsupportedAlgorithm, ErrBadEpsilon, genetic configuration errors.
func New(opts Options) (Func, error) {
	switch opts.Algo {
	case BruteForce:
		return exact.BruteForce, nil
	case BruteForcePruned:
		return exact.BruteForcePruned, nil
	case RatioGreedy:
		return heuristic.RatioGreedy, nil
	case DynamicProgramming:
		return dynamic.ByPrice, nil
	case FPTAS:
		eps := opts.Epsilon
		if math.IsNaN(eps) || eps <= 0 || eps > 1 {
			return nil, ErrBadEpsilon
		}
		return func(k *problem.Knapsack) (problem.Solution, error) {
			return dynamic.ByPriceFPTAS(k, eps)
		}, nil
	case Genetic:
		ga, err := genetic.New(opts.Genetic...)
		if err != nil {
			return nil, err
		}
		return ga.Solve, nil
	}
	return nil, ErrUnsupportedAlgorithm
}

// Solve runs the algorithm selected by opts on k.
func Solve(k *problem.Knapsack, opts Options) (problem.Solution, error) {
	fn, err := New(opts)
	if err != nil {
		return problem.Solution{}, err
	}
	return fn(k)
}
