package genetic

import (
	"log/slog"
	"math"
	"math/rand"
)

// Options holds every GA parameter. Build it with DefaultOptions and Option
// helpers; New validates the result.
type Options struct {
	PopulationSize      int
	MaxGenerations      int // sign selects the stopping mode
	TournamentSize      int
	Selection           Selection
	Management          Management
	ElitesCount         int
	MutationProbability float64

	// Seed feeds a fresh source per Run when Rand is nil. 0 means default.
	Seed int64
	// Rand, when set, takes precedence over Seed: each Run derives its own
	// stream from it.
	Rand *rand.Rand

	// Logger receives one debug record per generation. nil disables it.
	Logger *slog.Logger
	// OnGeneration is called with the stats of every population.
	OnGeneration func(GenerationStats)
}

// DefaultOptions returns a 100×100 tournament GA with two elites.
func DefaultOptions() Options {
	return Options{
		PopulationSize:      100,
		MaxGenerations:      100,
		TournamentSize:      4,
		Selection:           Tournament,
		Management:          ReplaceAllButElites,
		ElitesCount:         2,
		MutationProbability: 0.1,
	}
}

// Option customizes Options.
type Option func(*Options)

// WithPopulationSize sets the number of chromosomes per generation.
func WithPopulationSize(n int) Option { return func(o *Options) { o.PopulationSize = n } }

// WithMaxGenerations sets the generation bound; a negative value switches to
// the stagnation window |n|.
func WithMaxGenerations(n int) Option { return func(o *Options) { o.MaxGenerations = n } }

// WithTournament selects tournament selection of the given size.
func WithTournament(size int) Option {
	return func(o *Options) {
		o.Selection = Tournament
		o.TournamentSize = size
	}
}

// WithRoulette selects fitness-proportionate selection.
func WithRoulette() Option { return func(o *Options) { o.Selection = Roulette } }

// WithManagement sets the replacement policy.
func WithManagement(m Management) Option { return func(o *Options) { o.Management = m } }

// WithElites selects ReplaceAllButElites carrying up to n chromosomes.
func WithElites(n int) Option {
	return func(o *Options) {
		o.Management = ReplaceAllButElites
		o.ElitesCount = n
	}
}

// WithMutationProbability sets the chance that an offspring has one gene flipped.
func WithMutationProbability(p float64) Option {
	return func(o *Options) { o.MutationProbability = p }
}

// WithSeed makes every Run start from a fresh source seeded with seed.
func WithSeed(seed int64) Option { return func(o *Options) { o.Seed = seed } }

// WithRand makes every Run draw from a stream derived from rng, one value of
// rng per Run. The Solver owns rng from then on: reading it elsewhere while
// Run executes is a data race. Panics on nil.
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic("genetic: WithRand(nil)")
	}
	return func(o *Options) { o.Rand = rng }
}

// WithLogger enables per-generation debug records. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("genetic: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}

// WithOnGeneration installs a per-generation hook. Panics on nil.
func WithOnGeneration(fn func(GenerationStats)) Option {
	if fn == nil {
		panic("genetic: WithOnGeneration(nil)")
	}
	return func(o *Options) { o.OnGeneration = fn }
}

// Validate reports the first invalid parameter.
func (o Options) Validate() error {
	switch {
	case o.PopulationSize <= 0:
		return ErrBadPopulationSize
	case o.Selection != Tournament && o.Selection != Roulette:
		return ErrUnsupportedSelection
	case o.Selection == Tournament && o.TournamentSize < 1:
		return ErrBadTournamentSize
	case o.Management < ReplaceAll || o.Management > ReplaceWeakest:
		return ErrUnsupportedManagement
	case o.ElitesCount < 0:
		return ErrBadElitesCount
	case o.Management == ReplaceAllButElites && o.ElitesCount >= o.PopulationSize:
		return ErrBadElitesCount
	case math.IsNaN(o.MutationProbability) || o.MutationProbability < 0 || o.MutationProbability > 1:
		return ErrBadMutationProbability
	}
	return nil
}
