package genetic_test

import (
	"bytes"
	"log/slog"
	"math"
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/katalvlaran/knapsack/dynamic"
	"github.com/katalvlaran/knapsack/generator"
	"github.com/katalvlaran/knapsack/genetic"
	"github.com/katalvlaran/knapsack/problem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func instances(t testing.TB, n, count int, seed int64) []*problem.Knapsack {
	t.Helper()
	ks, err := generator.Generate(
		generator.WithItems(n),
		generator.WithInstances(count),
		generator.WithRatio(0.5),
		generator.WithSeed(seed),
	)
	require.NoError(t, err)
	return ks
}

func mustSolver(t testing.TB, opts ...genetic.Option) *genetic.Solver {
	t.Helper()
	ga, err := genetic.New(opts...)
	require.NoError(t, err)
	return ga
}

func TestNew_Validation(t *testing.T) {
	cases := []struct {
		name string
		opts []genetic.Option
		want error
	}{
		{"population zero", []genetic.Option{genetic.WithPopulationSize(0)}, genetic.ErrBadPopulationSize},
		{"tournament zero", []genetic.Option{genetic.WithTournament(0)}, genetic.ErrBadTournamentSize},
		{"elites negative", []genetic.Option{genetic.WithElites(-1)}, genetic.ErrBadElitesCount},
		{"elites fill population", []genetic.Option{genetic.WithPopulationSize(4), genetic.WithElites(4)}, genetic.ErrBadElitesCount},
		{"mutation above one", []genetic.Option{genetic.WithMutationProbability(1.01)}, genetic.ErrBadMutationProbability},
		{"mutation NaN", []genetic.Option{genetic.WithMutationProbability(math.NaN())}, genetic.ErrBadMutationProbability},
		{"selection", []genetic.Option{func(o *genetic.Options) { o.Selection = 7 }}, genetic.ErrUnsupportedSelection},
		{"management", []genetic.Option{genetic.WithManagement(3)}, genetic.ErrUnsupportedManagement},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ga, err := genetic.New(tc.opts...)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, ga)
		})
	}
}

func TestNew_RouletteIgnoresTournamentSize(t *testing.T) {
	_, err := genetic.New(genetic.WithTournament(0), genetic.WithRoulette())
	require.NoError(t, err)
}

func TestNew_ElitesOnlyBoundWhenUsed(t *testing.T) {
	// The default two elites do not constrain a single-chromosome ReplaceAll run.
	_, err := genetic.New(genetic.WithPopulationSize(1), genetic.WithManagement(genetic.ReplaceAll))
	require.NoError(t, err)
	_, err = genetic.New(genetic.WithPopulationSize(1))
	require.ErrorIs(t, err, genetic.ErrBadElitesCount)
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { genetic.WithRand(nil) })
	require.Panics(t, func() { genetic.WithLogger(nil) })
	require.Panics(t, func() { genetic.WithOnGeneration(nil) })
}

func TestRun_FixedGenerations(t *testing.T) {
	k := instances(t, 25, 1, 1)[0]
	res, err := mustSolver(t, genetic.WithPopulationSize(30), genetic.WithMaxGenerations(25)).Run(k)
	require.NoError(t, err)
	assert.Equal(t, 25, res.Generations)
	require.Len(t, res.History, 26)
	for g, st := range res.History {
		assert.Equal(t, g, st.Generation)
		assert.LessOrEqual(t, st.Min, st.Avg)
		assert.LessOrEqual(t, st.Avg, st.Max)
	}
	assert.Equal(t, res.History[25].Max, res.Solution.BestPrice)
}

func TestRun_ZeroGenerations(t *testing.T) {
	k := instances(t, 10, 1, 2)[0]
	res, err := mustSolver(t, genetic.WithMaxGenerations(0)).Run(k)
	require.NoError(t, err)
	assert.Zero(t, res.Generations)
	assert.Len(t, res.History, 1)
	assert.True(t, res.Solution.Feasible())
}

func TestRun_Convergence(t *testing.T) {
	const window = 6
	k := instances(t, 20, 1, 3)[0]
	res, err := mustSolver(t,
		genetic.WithPopulationSize(40),
		genetic.WithMaxGenerations(-window),
		genetic.WithSeed(3),
	).Run(k)
	require.NoError(t, err)

	require.GreaterOrEqual(t, res.Generations, window)
	tail := res.History[len(res.History)-window-1:]
	for _, st := range tail {
		assert.Equal(t, tail[0].Max, st.Max)
	}
}

func TestRun_Deterministic(t *testing.T) {
	k := instances(t, 30, 1, 4)[0]
	for _, m := range []genetic.Management{genetic.ReplaceAll, genetic.ReplaceAllButElites, genetic.ReplaceWeakest} {
		for _, sel := range []genetic.Option{genetic.WithTournament(3), genetic.WithRoulette()} {
			t.Run(m.String(), func(t *testing.T) {
				ga := mustSolver(t, sel, genetic.WithManagement(m), genetic.WithMaxGenerations(30), genetic.WithSeed(99))
				a, err := ga.Run(k)
				require.NoError(t, err)
				b, err := ga.Run(k)
				require.NoError(t, err)

				assert.Equal(t, a.History, b.History)
				assert.True(t, a.Solution.Selection.Equal(b.Solution.Selection))
				assert.True(t, a.Solution.Feasible())
				assert.Equal(t, a.Solution.Price(), a.Solution.BestPrice)
			})
		}
	}
}

func TestRun_SharedRandReproducible(t *testing.T) {
	k := instances(t, 15, 1, 5)[0]
	a := mustSolver(t, genetic.WithSeed(1234), genetic.WithRand(rand.New(rand.NewSource(9))))
	b := mustSolver(t, genetic.WithRand(rand.New(rand.NewSource(9))))

	for run := 0; run < 3; run++ {
		ra, err := a.Run(k)
		require.NoError(t, err)
		rb, err := b.Run(k)
		require.NoError(t, err)
		assert.Equal(t, ra.History, rb.History, "run %d", run)
	}
}

func TestRun_ConcurrentSharedRand(t *testing.T) {
	ks := instances(t, 20, 8, 11)
	ga := mustSolver(t,
		genetic.WithRand(rand.New(rand.NewSource(3))),
		genetic.WithPopulationSize(40),
		genetic.WithMaxGenerations(15),
	)

	var wg sync.WaitGroup
	sols := make([]problem.Solution, len(ks))
	errs := make([]error, len(ks))
	for i, k := range ks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sols[i], errs[i] = ga.Solve(k)
		}()
	}
	wg.Wait()

	for i := range ks {
		require.NoError(t, errs[i])
		assert.True(t, sols[i].Feasible())
	}
}

func TestRun_ReplaceWeakestSteadyState(t *testing.T) {
	const size = 40
	for _, k := range instances(t, 25, 5, 12) {
		for _, sel := range []genetic.Option{genetic.WithTournament(3), genetic.WithRoulette()} {
			var history []genetic.GenerationStats
			ga := mustSolver(t,
				sel,
				genetic.WithManagement(genetic.ReplaceWeakest),
				genetic.WithPopulationSize(size),
				genetic.WithMaxGenerations(50),
				genetic.WithMutationProbability(0.3),
				genetic.WithSeed(int64(k.ID())),
				genetic.WithOnGeneration(func(st genetic.GenerationStats) { history = append(history, st) }),
			)
			res, err := ga.Run(k)
			require.NoError(t, err)
			require.Len(t, history, 51)
			assert.Equal(t, history, res.History)

			for g, st := range history {
				assert.Equal(t, st.Total/size, st.Avg, "%v generation %d: population size changed", k, g)
				if g > 0 {
					assert.GreaterOrEqual(t, st.Max, history[g-1].Max, "%v generation %d", k, g)
				}
			}
			assert.Equal(t, history[50].Max, res.Solution.BestPrice)
		}
	}
}

func TestRun_ElitismMonotonic(t *testing.T) {
	for _, k := range instances(t, 30, 5, 6) {
		var maxes []int
		ga := mustSolver(t,
			genetic.WithPopulationSize(50),
			genetic.WithMaxGenerations(60),
			genetic.WithElites(1),
			genetic.WithMutationProbability(0.3),
			genetic.WithSeed(int64(k.ID())),
			genetic.WithOnGeneration(func(st genetic.GenerationStats) { maxes = append(maxes, st.Max) }),
		)
		_, err := ga.Solve(k)
		require.NoError(t, err)
		require.Len(t, maxes, 61)
		for g := 1; g < len(maxes); g++ {
			assert.GreaterOrEqual(t, maxes[g], maxes[g-1], "%v generation %d", k, g)
		}
	}
}

func TestRun_QualityNearOptimum(t *testing.T) {
	ks := instances(t, 20, 10, 7)
	ga := mustSolver(t,
		genetic.WithPopulationSize(120),
		genetic.WithMaxGenerations(150),
		genetic.WithTournament(4),
		genetic.WithElites(4),
		genetic.WithMutationProbability(0.2),
		genetic.WithSeed(7),
	)

	var gap float64
	for _, k := range ks {
		opt, err := dynamic.ByPrice(k)
		require.NoError(t, err)
		got, err := ga.Solve(k)
		require.NoError(t, err)
		require.True(t, got.Feasible())
		require.LessOrEqual(t, got.BestPrice, opt.BestPrice)
		gap += float64(opt.BestPrice-got.BestPrice) / float64(opt.BestPrice)
	}
	assert.Less(t, gap/float64(len(ks)), 0.1)
}

func TestRun_RouletteZeroFitness(t *testing.T) {
	// Nothing fits, so every chromosome scores 0.
	k, err := problem.New(1, 0, []problem.Item{
		{Weight: 3, Price: 9}, {Weight: 4, Price: 2}, {Weight: 5, Price: 7},
	})
	require.NoError(t, err)

	for _, m := range []genetic.Management{genetic.ReplaceAll, genetic.ReplaceAllButElites, genetic.ReplaceWeakest} {
		res, err := mustSolver(t, genetic.WithRoulette(), genetic.WithManagement(m), genetic.WithMaxGenerations(10)).Run(k)
		require.NoError(t, err)
		assert.Zero(t, res.Solution.BestPrice)
		assert.True(t, res.Solution.Feasible())
		assert.Zero(t, res.Solution.Weight())
		for _, st := range res.History {
			assert.Zero(t, st.Total)
		}
	}
}

func TestRun_TinyInstances(t *testing.T) {
	empty, err := problem.New(1, 5, nil)
	require.NoError(t, err)
	sol, err := mustSolver(t, genetic.WithPopulationSize(3), genetic.WithMaxGenerations(3)).Solve(empty)
	require.NoError(t, err)
	assert.Zero(t, sol.Selection.Len())
	assert.Zero(t, sol.BestPrice)

	single, err := problem.New(2, 5, []problem.Item{{Weight: 5, Price: 8}})
	require.NoError(t, err)
	sol, err = mustSolver(t,
		genetic.WithPopulationSize(1),
		genetic.WithMaxGenerations(5),
		genetic.WithManagement(genetic.ReplaceAll),
		genetic.WithMutationProbability(1),
	).Solve(single)
	require.NoError(t, err)
	assert.True(t, sol.Feasible())
}

func TestRun_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	k := instances(t, 8, 1, 8)[0]

	res, err := mustSolver(t, genetic.WithMaxGenerations(4), genetic.WithLogger(logger)).Run(k)
	require.NoError(t, err)
	assert.Equal(t, len(res.History), strings.Count(buf.String(), "msg=generation"))
	assert.Contains(t, buf.String(), "knapsack=1")
}

func TestRun_Nil(t *testing.T) {
	_, err := mustSolver(t).Run(nil)
	require.ErrorIs(t, err, problem.ErrNilKnapsack)
}
