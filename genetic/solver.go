package genetic

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"

	"github.com/katalvlaran/knapsack/problem"
)

// Solver runs the GA with a fixed, validated configuration.
//
// A Solver is safe for concurrent use. With a shared source (WithRand) each
// Run derives its own stream from it under a lock, so parallel callers never
// touch the same *rand.Rand. Sequential runs stay reproducible: the n-th Run
// of a Solver always gets the same stream for the same source seed.
type Solver struct {
	opts Options

	mu   sync.Mutex // guards opts.Rand and runs
	runs uint64
}

// New applies opts over DefaultOptions and validates the result. No
// generation runs until Run or Solve is called.
//
// Errors: ErrBadPopulationSize, ErrBadTournamentSize, ErrBadElitesCount,
// ErrBadMutationProbability, ErrUnsupportedSelection, ErrUnsupportedManagement.
func New(opts ...Option) (*Solver, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewWithOptions(cfg)
}

// NewWithOptions validates cfg as given, without DefaultOptions underneath.
// It is the entry point for configurations decoded from files.
//
// Errors: as New.
func NewWithOptions(cfg Options) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Solver{opts: cfg}, nil
}

// Options returns a copy of the configuration. The Rand field, when set, is
// the shared source itself and must not be drawn from concurrently with Run.
func (s *Solver) Options() Options { return s.opts }

// Solve is Run without the history. Its signature matches solver.Func, so a
// Solver plugs straight into the dispatcher and bench.Runner.
func (s *Solver) Solve(k *problem.Knapsack) (problem.Solution, error) {
	res, err := s.Run(k)
	if err != nil {
		return problem.Solution{}, err
	}
	return res.Solution, nil
}

// Run evolves a population for k and returns the fittest feasible
// chromosome of the final population. If none is feasible the empty
// selection is returned.
//
// Steps:
//  1. Draw PopulationSize random chromosomes and score them.
//  2. Select parents, breed offspring with crossover and mutation and
//     replace according to Management.
//  3. Stop after MaxGenerations, or after |MaxGenerations| generations
//     without a change of the best fitness when it is negative.
//
// Errors: problem.ErrNilKnapsack.
//
// Complexity: O(G·P·n) time for G generations, population P and n items;
// O(P·n) memory, two populations alive at a time.
func (s *Solver) Run(k *problem.Knapsack) (Result, error) {
	if k == nil {
		return Result{}, problem.ErrNilKnapsack
	}

	e := &engine{opts: s.opts, k: k, n: k.Size(), rng: s.rng()}

	var (
		size  = s.opts.PopulationSize
		pop   = make([]chromosome, size)
		spare = make([]chromosome, size)
		res   Result

		generation int
		stagnant   int
		lastBest   int
	)
	for i := range pop {
		pop[i] = e.randomChromosome()
	}

	for {
		res.History = append(res.History, s.report(k, generation, pop))
		if generation == s.opts.MaxGenerations || stagnant == -s.opts.MaxGenerations {
			break
		}

		switch s.opts.Management {
		case ReplaceAll:
			e.ring(spare, pop, e.selectParents(pop, size))
			pop, spare = spare, pop

		case ReplaceAllButElites:
			elites := e.elites(pop)
			copy(spare, elites)
			e.ring(spare[len(elites):], pop, e.selectParents(pop, size-len(elites)))
			pop, spare = spare, pop

		case ReplaceWeakest:
			parents := e.selectParents(pop, size)
			mates := make([]chromosome, len(parents))
			for i, p := range parents {
				mates[i] = pop[p]
			}
			for i := 0; i+1 < len(mates); i += 2 {
				pop[weakest(pop)] = e.cross(mates[i], mates[i+1])
			}
		}
		generation++

		if s.opts.MaxGenerations < 0 {
			if best := pop[fittest(pop)].fitness; best == lastBest {
				stagnant++
			} else {
				lastBest, stagnant = best, 0
			}
		}
	}

	res.Generations = generation
	best := pop[fittest(pop)]
	if best.feasible(k) {
		res.Solution = problem.NewSolution(k, best.genes.Clone())
	} else {
		res.Solution = problem.EmptySolution(k)
	}
	return res, nil
}

// rng returns the source of one Run: a stream derived from the shared
// source when there is one, else a fresh source seeded from Options.Seed.
func (s *Solver) rng() *rand.Rand {
	if s.opts.Rand == nil {
		return rngFromSeed(s.opts.Seed)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	r := deriveRNG(s.opts.Rand, s.runs)
	s.runs++
	return r
}

// report builds the stats of pop and forwards them to the hook and logger.
func (s *Solver) report(k *problem.Knapsack, generation int, pop []chromosome) GenerationStats {
	st := GenerationStats{Generation: generation, Min: pop[0].fitness, Max: pop[0].fitness}
	for i := range pop {
		f := pop[i].fitness
		st.Total += f
		st.Min = min(st.Min, f)
		st.Max = max(st.Max, f)
	}
	st.Avg = st.Total / len(pop)

	if s.opts.OnGeneration != nil {
		s.opts.OnGeneration(st)
	}
	if l := s.opts.Logger; l != nil && l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("generation",
			slog.Int("knapsack", k.ID()),
			slog.Int("generation", st.Generation),
			slog.Int("min", st.Min),
			slog.Int("avg", st.Avg),
			slog.Int("max", st.Max),
			slog.Int("total", st.Total),
		)
	}
	return st
}
