package genetic

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/knapsack/problem"
)

// engine carries the state of a single Run. It is never shared.
type engine struct {
	opts Options
	k    *problem.Knapsack
	n    int
	rng  *rand.Rand
}

// randomChromosome sets each gene independently with probability 0.5.
func (e *engine) randomChromosome() chromosome {
	c := chromosome{genes: problem.NewSelection(e.n)}
	for i := 0; i < e.n; i++ {
		if e.rng.Float64() > 0.5 {
			c.genes.Set(i)
		}
	}
	c.evaluate(e.k)
	return c
}

// selectParents returns count indices into pop.
func (e *engine) selectParents(pop []chromosome, count int) []int {
	parents := make([]int, count)
	if e.opts.Selection == Roulette {
		total := totalFitness(pop)
		for i := range parents {
			parents[i] = e.roulette(pop, total)
		}
		return parents
	}
	for i := range parents {
		parents[i] = e.tournament(pop)
	}
	return parents
}

// tournament samples TournamentSize individuals with replacement and keeps
// the first fittest one drawn.
//
// Complexity: O(TournamentSize).
func (e *engine) tournament(pop []chromosome) int {
	best := e.rng.Intn(len(pop))
	for j := 1; j < e.opts.TournamentSize; j++ {
		if next := e.rng.Intn(len(pop)); pop[next].fitness > pop[best].fitness {
			best = next
		}
	}
	return best
}

// roulette picks an index with probability fitness/total. A zero total
// selects the last individual. Zero-fitness individuals are never picked
// otherwise, since point < total and only a positive fitness advances the
// running sum past it.
//
// Complexity: O(P).
func (e *engine) roulette(pop []chromosome, total int) int {
	last := len(pop) - 1
	if total <= 0 {
		return last
	}
	point := e.rng.Intn(total)
	running := 0
	for j := range pop {
		running += pop[j].fitness
		if running > point {
			return j
		}
	}
	return last
}

// cross breeds a single-point offspring of a and b, applies the mutation
// and evaluates it. Neither parent is modified.
func (e *engine) cross(a, b chromosome) chromosome {
	child := chromosome{genes: a.genes.Clone()}
	if e.n >= 2 {
		cut := 1 + e.rng.Intn(e.n-1)
		for i := cut; i < e.n; i++ {
			child.genes.SetTo(i, b.genes.Test(i))
		}
	}
	if e.n > 0 && e.rng.Float64() < e.opts.MutationProbability {
		child.genes.Flip(e.rng.Intn(e.n))
	}
	child.evaluate(e.k)
	return child
}

// ring fills dst with offspring of consecutive parents, the last one
// wrapping to parents[0].
func (e *engine) ring(dst []chromosome, pop []chromosome, parents []int) {
	m := len(parents)
	for i := 0; i < m; i++ {
		dst[i] = e.cross(pop[parents[i]], pop[parents[(i+1)%m]])
	}
}

// elites returns clones of up to ElitesCount chromosomes with positive
// fitness, fittest first. Ties keep population order.
func (e *engine) elites(pop []chromosome) []chromosome {
	if e.opts.ElitesCount == 0 {
		return nil
	}
	idx := make([]int, 0, len(pop))
	for i := range pop {
		if pop[i].fitness > 0 {
			idx = append(idx, i)
		}
	}
	sort.SliceStable(idx, func(a, b int) bool { return pop[idx[a]].fitness > pop[idx[b]].fitness })
	if len(idx) > e.opts.ElitesCount {
		idx = idx[:e.opts.ElitesCount]
	}
	out := make([]chromosome, len(idx))
	for i, j := range idx {
		out[i] = pop[j].clone()
	}
	return out
}

// weakest returns the first index of minimum fitness.
func weakest(pop []chromosome) int {
	w := 0
	for j := 1; j < len(pop); j++ {
		if pop[j].fitness < pop[w].fitness {
			w = j
		}
	}
	return w
}

// fittest returns the first index of maximum fitness.
func fittest(pop []chromosome) int {
	b := 0
	for j := 1; j < len(pop); j++ {
		if pop[j].fitness > pop[b].fitness {
			b = j
		}
	}
	return b
}

func totalFitness(pop []chromosome) int {
	total := 0
	for i := range pop {
		total += pop[i].fitness
	}
	return total
}
