package genetic

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func population(fitness ...int) []chromosome {
	pop := make([]chromosome, len(fitness))
	for i, f := range fitness {
		pop[i].fitness = f
	}
	return pop
}

func TestRoulette_Proportional(t *testing.T) {
	e := &engine{rng: rand.New(rand.NewSource(5))}
	pop := population(0, 6, 0, 2, 0)
	total := totalFitness(pop)
	require.Equal(t, 8, total)

	const draws = 40000
	hits := make([]int, len(pop))
	for i := 0; i < draws; i++ {
		hits[e.roulette(pop, total)]++
	}

	for _, j := range []int{0, 2, 4} {
		assert.Zero(t, hits[j], "zero-fitness individual %d picked", j)
	}
	assert.InDelta(t, 0.75, float64(hits[1])/draws, 0.02)
	assert.InDelta(t, 0.25, float64(hits[3])/draws, 0.02)
}

func TestRoulette_ZeroTotalPicksLast(t *testing.T) {
	e := &engine{rng: rand.New(rand.NewSource(5))}
	pop := population(0, 0, 0)
	for i := 0; i < 10; i++ {
		assert.Equal(t, 2, e.roulette(pop, 0))
	}
}

func TestDeriveRNG_Independent(t *testing.T) {
	a := deriveRNG(rand.New(rand.NewSource(1)), 0)
	b := deriveRNG(rand.New(rand.NewSource(1)), 1)
	c := deriveRNG(rand.New(rand.NewSource(1)), 0)

	x, y, z := a.Int63(), b.Int63(), c.Int63()
	assert.NotEqual(t, x, y)
	assert.Equal(t, x, z)
	assert.NotEqual(t, deriveSeed(1, 0), deriveSeed(1, 1))
}
