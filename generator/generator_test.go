// SPDX-License-Identifier: MIT
package generator_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/knapsack/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Shape(t *testing.T) {
	ks, err := generator.Generate(
		generator.WithInitialID(100),
		generator.WithItems(15),
		generator.WithInstances(8),
		generator.WithRatio(0.4),
		generator.WithMaxWeight(60),
		generator.WithMaxPrice(30),
		generator.WithSeed(7),
	)
	require.NoError(t, err)
	require.Len(t, ks, 8)

	for i, k := range ks {
		assert.Equal(t, 100+i, k.ID())
		require.Equal(t, 15, k.Size())

		seen := make(map[uint16]bool)
		for _, it := range k.Items() {
			assert.False(t, seen[it.Weight], "duplicate weight %d", it.Weight)
			seen[it.Weight] = true
			assert.GreaterOrEqual(t, it.Weight, uint16(1))
			assert.LessOrEqual(t, it.Weight, uint16(60))
			assert.GreaterOrEqual(t, it.Price, uint16(1))
			assert.LessOrEqual(t, it.Price, uint16(30))
		}
		assert.Equal(t, int(math.Floor(0.4*float64(k.TotalWeight()))), k.Capacity())
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	opts := []generator.Option{generator.WithItems(12), generator.WithInstances(5)}

	a, err := generator.Generate(append(opts, generator.WithSeed(99))...)
	require.NoError(t, err)
	b, err := generator.Generate(append(opts, generator.WithSeed(99))...)
	require.NoError(t, err)
	c, err := generator.Generate(append(opts, generator.WithSeed(100))...)
	require.NoError(t, err)

	for i := range a {
		assert.Equal(t, a[i].Items(), b[i].Items())
		assert.Equal(t, a[i].Capacity(), b[i].Capacity())
	}
	assert.NotEqual(t, a[0].Items(), c[0].Items())
}

func TestGenerate_AllWeights(t *testing.T) {
	// Items == MaxWeight forces every weight 1…MaxWeight to appear once.
	ks, err := generator.Generate(
		generator.WithItems(20),
		generator.WithMaxWeight(20),
		generator.WithRatio(1),
		generator.WithSeed(3),
	)
	require.NoError(t, err)
	require.Len(t, ks, 1)
	assert.Equal(t, 210, ks[0].TotalWeight())
	assert.Equal(t, 210, ks[0].Capacity())
}

func TestGenerate_SkewShiftsMean(t *testing.T) {
	mean := func(b generator.Balance) float64 {
		ks, err := generator.Generate(
			generator.WithItems(10),
			generator.WithInstances(40),
			generator.WithMaxWeight(100),
			generator.WithSkew(b, 1),
			generator.WithSeed(11),
		)
		require.NoError(t, err)
		var sum, cnt int
		for _, k := range ks {
			sum += k.TotalWeight()
			cnt += k.Size()
		}
		return float64(sum) / float64(cnt)
	}

	small, even, large := mean(generator.BalanceSmall), mean(generator.BalanceEven), mean(generator.BalanceLarge)
	assert.Less(t, small, even)
	assert.Greater(t, large, even)
}

func TestGenerate_ZeroExponentIsUniform(t *testing.T) {
	a, err := generator.Generate(generator.WithSkew(generator.BalanceSmall, 0), generator.WithSeed(5))
	require.NoError(t, err)
	require.Len(t, a, 1)
	assert.Equal(t, 10, a[0].Size())
}

func TestGenerate_Errors(t *testing.T) {
	cases := []struct {
		name string
		opts []generator.Option
		want error
	}{
		{"no rng", nil, generator.ErrNeedRandSource},
		{"too many items", []generator.Option{generator.WithItems(11), generator.WithMaxWeight(10)}, generator.ErrTooManyItems},
		{"ratio above one", []generator.Option{generator.WithRatio(1.5)}, generator.ErrBadRatio},
		{"ratio NaN", []generator.Option{generator.WithRatio(math.NaN())}, generator.ErrBadRatio},
		{"balance", []generator.Option{generator.WithSkew(2, 1)}, generator.ErrBadBalance},
		{"negative items", []generator.Option{generator.WithItems(-1)}, generator.ErrOutOfRange},
		{"weight bound", []generator.Option{generator.WithMaxWeight(70000)}, generator.ErrOutOfRange},
		{"price bound", []generator.Option{generator.WithMaxPrice(0)}, generator.ErrOutOfRange},
		{"id overflow", []generator.Option{generator.WithInitialID(math.MaxInt16), generator.WithInstances(2)}, generator.ErrOutOfRange},
		{"negative exponent", []generator.Option{generator.WithSkew(generator.BalanceLarge, -1)}, generator.ErrOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := tc.opts
			if tc.want != generator.ErrNeedRandSource {
				opts = append(opts, generator.WithSeed(1))
			}
			_, err := generator.Generate(opts...)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestGenerate_CapacityOverflow(t *testing.T) {
	// 1000 distinct weights up to 1000 sum to 500500, far beyond int16.
	_, err := generator.Generate(
		generator.WithItems(1000),
		generator.WithMaxWeight(1000),
		generator.WithRatio(1),
		generator.WithSeed(1),
	)
	require.ErrorIs(t, err, generator.ErrOutOfRange)
}

func TestWithRand_NilPanics(t *testing.T) {
	require.Panics(t, func() { generator.WithRand(nil) })
}

func TestWithRand_SharedSource(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	a, err := generator.Generate(generator.WithRand(rng))
	require.NoError(t, err)
	b, err := generator.Generate(generator.WithRand(rng))
	require.NoError(t, err)
	// The source advances between calls.
	assert.NotEqual(t, a[0].Items(), b[0].Items())
}

func TestGenerate_UnreachableWeights(t *testing.T) {
	// With k = 40 every weight below MaxWeight is accepted with chance ~2⁻³¹,
	// so 64 distinct weights out of 1…64 cannot be collected.
	_, err := generator.Generate(
		generator.WithItems(64),
		generator.WithMaxWeight(64),
		generator.WithSkew(generator.BalanceLarge, 40),
		generator.WithSeed(21),
	)
	require.ErrorIs(t, err, generator.ErrTooManyItems)
}
