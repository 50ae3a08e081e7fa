package exact

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/knapsack/problem"
)

// BruteForce solves k optimally by summing every subset in full.
//
// Errors: problem.ErrNilKnapsack, ErrInstanceTooLarge.
//
// Time complexity:  O(n · 2ⁿ)
// Memory complexity: O(n)
func BruteForce(k *problem.Knapsack) (problem.Solution, error) {
	return enumerate(k, false)
}

// BruteForcePruned solves k optimally, abandoning a subset as soon as its
// running weight exceeds the capacity. The result is identical to BruteForce.
//
// Errors: problem.ErrNilKnapsack, ErrInstanceTooLarge.
func BruteForcePruned(k *problem.Knapsack) (problem.Solution, error) {
	return enumerate(k, true)
}

// enumerate walks masks 1 … 2ⁿ−1. Bit i of a mask selects item i.
func enumerate(k *problem.Knapsack, prune bool) (problem.Solution, error) {
	if k == nil {
		return problem.Solution{}, problem.ErrNilKnapsack
	}
	n := k.Size()
	if n > MaxInstanceSize {
		return problem.Solution{}, fmt.Errorf("%v has %d items: %w", k, n, ErrInstanceTooLarge)
	}

	var (
		capacity  = k.Capacity()
		last      = uint64(1)<<uint(n) - 1 // all n bits set; 0 when n == 0
		bestMask  uint64
		bestPrice int
	)

	for mask := uint64(1); mask <= last; mask++ {
		var (
			price  int
			weight int
		)
		// Visit set bits only, lowest first.
		for rest := mask; rest != 0; rest &= rest - 1 {
			it := k.Item(bits.TrailingZeros64(rest))
			price += int(it.Price)
			weight += int(it.Weight)
			if prune && weight > capacity {
				break
			}
		}

		if weight <= capacity && price > bestPrice {
			bestPrice = price
			bestMask = mask
		}
	}

	return problem.Solution{
		BestPrice: bestPrice,
		Selection: problem.SelectionFromMask(bestMask, n),
		Knapsack:  k,
	}, nil
}
