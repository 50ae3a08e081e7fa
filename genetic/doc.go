// Package genetic implements a generational genetic algorithm for the 0/1
// knapsack problem.
//
// 🚀 Model
//
//	chromosome = one bit per item (problem.Selection)
//	fitness    = total price, or 0 when the total weight exceeds the capacity
//
// Each generation selects parents (tournament or roulette wheel), breeds
// offspring by single-point crossover followed by an optional single-gene
// mutation, and forms the next population by one of three policies:
//
//   - ReplaceAll:          every slot gets a fresh offspring; parents are
//     crossed as a ring (p₀×p₁, p₁×p₂, …, pₖ×p₀).
//   - ReplaceAllButElites: up to ElitesCount fittest chromosomes with
//     positive fitness are cloned forward; the rest is bred as above.
//   - ReplaceWeakest:      steady state; each offspring overwrites the
//     current least fit chromosome.
//
// ⚙️ Stopping
//
//	MaxGenerations > 0   run exactly that many generations
//	MaxGenerations < 0   run until the best fitness has not changed for
//	                     |MaxGenerations| consecutive generations
//	MaxGenerations = 0   return the best of the initial population
//
// ✨ Determinism
//
//	A Solver built with WithRand derives an independent stream from that
//	source on every call; equal sources give equal sequences of runs. Without
//	it, each Run seeds a fresh source from Options.Seed (0 selects a fixed
//	default), so equal seeds give equal results.
//
//	Solvers are safe for concurrent use; bench runs one Solver from many
//	workers.
//
// Usage:
//
//	ga, err := genetic.New(
//	    genetic.WithPopulationSize(200),
//	    genetic.WithMaxGenerations(-50),
//	    genetic.WithTournament(5),
//	    genetic.WithElites(4),
//	    genetic.WithSeed(42),
//	)
//	if err != nil { ... }
//	sol, err := ga.Solve(k)
//
// A Solver may be shared between goroutines only when it was not given an
// explicit *rand.Rand.
package genetic
