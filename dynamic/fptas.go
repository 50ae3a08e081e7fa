package dynamic

import (
	"math"

	"github.com/katalvlaran/knapsack/problem"
)

// ShiftBits returns ⌊log₂(eps · Σprice / n²)⌋ for k. An empty instance, a
// zero total price or a non-finite logarithm yields 0.
func ShiftBits(k *problem.Knapsack, eps float64) int {
	if k == nil || k.Size() == 0 {
		return 0
	}
	n := float64(k.Size())
	v := math.Floor(math.Log2(eps * float64(k.TotalPrice()) / (n * n)))
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(v)
}

// WithFPTAS returns k with every price shifted right by ShiftBits(k, eps).
// When the shift is below 1 the same knapsack is returned.
func WithFPTAS(k *problem.Knapsack, eps float64) *problem.Knapsack {
	shift := ShiftBits(k, eps)
	if shift < 1 {
		return k
	}
	return k.WithPrices(func(it problem.Item) problem.Item {
		it.Price >>= uint(shift)
		return it
	})
}

// ByPriceFPTAS runs ByPrice on WithFPTAS(k, eps) and returns the selection
// against k itself, with BestPrice in real (unscaled) units.
//
// Errors: problem.ErrNilKnapsack.
func ByPriceFPTAS(k *problem.Knapsack, eps float64) (problem.Solution, error) {
	if k == nil {
		return problem.Solution{}, problem.ErrNilKnapsack
	}
	scaled, err := ByPrice(WithFPTAS(k, eps))
	if err != nil {
		return problem.Solution{}, err
	}
	return problem.NewSolution(k, scaled.Selection), nil
}
