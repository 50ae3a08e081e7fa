package heuristic

import (
	"math"
	"slices"

	"github.com/katalvlaran/knapsack/problem"
)

// RatioGreedy packs items in descending integer price/weight order.
//
// Errors: problem.ErrNilKnapsack.
func RatioGreedy(k *problem.Knapsack) (problem.Solution, error) {
	if k == nil {
		return problem.Solution{}, problem.ErrNilKnapsack
	}

	var (
		n        = k.Size()
		capacity = k.Capacity()
		order    = make([]int, n)
		ratio    = make([]int, n)
	)
	for i := 0; i < n; i++ {
		order[i] = i
		ratio[i] = ratioOf(k.Item(i))
	}
	slices.SortStableFunc(order, func(a, b int) int {
		// descending
		switch {
		case ratio[a] > ratio[b]:
			return -1
		case ratio[a] < ratio[b]:
			return 1
		}
		return 0
	})

	sel := problem.NewSelection(n)
	weight := 0
	for _, i := range order {
		w := int(k.Item(i).Weight)
		if weight+w > capacity {
			continue
		}
		weight += w
		sel.Set(i)
		if weight == capacity {
			break
		}
	}

	return problem.NewSolution(k, sel), nil
}

// ratioOf returns price/weight truncated, or MaxInt for weight 0.
func ratioOf(it problem.Item) int {
	if it.Weight == 0 {
		return math.MaxInt
	}
	return int(it.Price) / int(it.Weight)
}
