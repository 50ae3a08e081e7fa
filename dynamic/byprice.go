package dynamic

import (
	"math"

	"github.com/katalvlaran/knapsack/problem"
)

// unreachable marks a price that no subset of the prefix attains.
const unreachable = math.MaxUint32

// ByPrice returns an optimal solution of k.
//
// Errors: problem.ErrNilKnapsack.
func ByPrice(k *problem.Knapsack) (problem.Solution, error) {
	if k == nil {
		return problem.Solution{}, problem.ErrNilKnapsack
	}

	var (
		n     = k.Size()
		rows  = k.TotalPrice() + 1
		table = make([][]uint32, n+1) // table[j][c] holds W[c][j]
	)
	for j := range table {
		table[j] = make([]uint32, rows)
	}
	for c := 1; c < rows; c++ {
		table[0][c] = unreachable
	}

	for j := 1; j <= n; j++ {
		var (
			it   = k.Item(j - 1)
			p    = int(it.Price)
			w    = uint32(it.Weight)
			prev = table[j-1]
			cur  = table[j]
		)
		// Column 0 is unreachable above c = 0, so column 1 reduces to
		// "weight₀ iff c == price₀" without a special case.
		for c := 1; c < rows; c++ {
			cur[c] = prev[c]
			if c-p < 0 || prev[c-p] == unreachable {
				continue
			}
			if with := prev[c-p] + w; with < cur[c] {
				cur[c] = with
			}
		}
	}

	// Highest price whose minimum weight fits.
	var (
		capacity = uint64(k.Capacity())
		last     = table[n]
		row      = rows - 1
	)
	for ; row > 0; row-- {
		if uint64(last[row]) <= capacity {
			break
		}
	}

	sel := problem.NewSelection(n)
	best := row
	for col := n; col > 0 && row > 0; col-- {
		if table[col][row] == table[col-1][row] {
			continue
		}
		row -= int(k.Item(col - 1).Price)
		sel.Set(col - 1)
	}

	return problem.Solution{BestPrice: best, Selection: sel, Knapsack: k}, nil
}
