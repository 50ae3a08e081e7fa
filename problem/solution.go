package problem

import (
	"fmt"
	"strconv"
)

// Solution is the outcome of one solve call.
//
// BestPrice is the objective the solver optimized. For every solver except
// dynamic programming over FPTAS-rescaled prices it equals Price(); with
// rescaled prices it is in rescaled units and PriceIn(original) gives the
// real value.
type Solution struct {
	BestPrice int
	Selection Selection
	Knapsack  *Knapsack
}

// NewSolution wraps sel for k and sets BestPrice to the price of sel in k.
func NewSolution(k *Knapsack, sel Selection) Solution {
	sol := Solution{Selection: sel, Knapsack: k}
	sol.BestPrice = sol.Price()
	return sol
}

// EmptySolution returns the always-feasible empty selection for k.
func EmptySolution(k *Knapsack) Solution {
	return Solution{Selection: NewSelection(k.Size()), Knapsack: k}
}

// Price recomputes the total price of the selected items in the referenced
// knapsack. A Solution whose selection length differs from the knapsack size
// prices at 0; Feasible reports false for it, so use Feasible or PriceIn to
// tell that case from an empty selection.
func (s Solution) Price() int {
	if s.Knapsack == nil || s.Selection.Len() != s.Knapsack.Size() {
		return 0
	}
	p, _ := s.PriceIn(s.Knapsack) // sizes checked above, PriceIn cannot fail
	return p
}

// PriceIn recomputes the total price of the selection against k, typically the
// unscaled original of an FPTAS instance. Returns ErrSizeMismatch when the
// selection length differs from k.Size().
func (s Solution) PriceIn(k *Knapsack) (int, error) {
	if k == nil {
		return 0, ErrNilKnapsack
	}
	if s.Selection.Len() != k.Size() {
		return 0, ErrSizeMismatch
	}
	var total int
	for _, i := range s.Selection.Indices() {
		total += int(k.items[i].Price)
	}
	return total, nil
}

// Weight returns the total weight of the selected items.
func (s Solution) Weight() int {
	if s.Knapsack == nil {
		return 0
	}
	var total int
	for _, i := range s.Selection.Indices() {
		if i < s.Knapsack.Size() {
			total += int(s.Knapsack.items[i].Weight)
		}
	}
	return total
}

// Feasible reports whether the selection fits the knapsack capacity.
func (s Solution) Feasible() bool {
	return s.Knapsack != nil &&
		s.Selection.Len() == s.Knapsack.Size() &&
		s.Weight() <= s.Knapsack.capacity
}

// String renders the solution-file line "<id> <n> <price> <b0> <b1> ...".
func (s Solution) String() string {
	var id, n int
	if s.Knapsack != nil {
		id, n = s.Knapsack.id, s.Knapsack.Size()
	}
	line := fmt.Sprintf("%d %d %s", id, n, strconv.Itoa(s.BestPrice))
	if bits := s.Selection.String(); bits != "" {
		line += " " + bits
	}
	return line
}
