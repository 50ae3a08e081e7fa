package genetic

import "github.com/katalvlaran/knapsack/problem"

// chromosome is one individual. Its genes are never shared with another
// chromosome once it has been placed in a population.
type chromosome struct {
	genes   problem.Selection
	weight  int
	fitness int
}

// evaluate recomputes weight and fitness of c against k.
func (c *chromosome) evaluate(k *problem.Knapsack) {
	c.weight, c.fitness = 0, 0
	for _, i := range c.genes.Indices() {
		it := k.Item(i)
		c.weight += int(it.Weight)
		c.fitness += int(it.Price)
	}
	if c.weight > k.Capacity() {
		c.fitness = 0
	}
}

func (c chromosome) clone() chromosome {
	return chromosome{genes: c.genes.Clone(), weight: c.weight, fitness: c.fitness}
}

func (c chromosome) feasible(k *problem.Knapsack) bool {
	return c.weight <= k.Capacity()
}
