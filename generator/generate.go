// SPDX-License-Identifier: MIT
package generator

import (
	"fmt"
	"math"

	"github.com/katalvlaran/knapsack/problem"
)

// maxRejections bounds the consecutive draws spent looking for the next
// weight. A strong skew with Items close to MaxWeight can leave weights whose
// acceptance chance is about 2⁻³¹, and those are effectively never drawn.
const maxRejections = 1 << 24

// Generate returns Options.Instances knapsacks with consecutive ids starting
// at InitialID.
//
// Errors: ErrNeedRandSource, ErrBadBalance, ErrBadRatio, ErrTooManyItems,
// ErrOutOfRange (also when a capacity would not fit int16). ErrTooManyItems is
// also returned when the skew makes the remaining distinct weights
// practically unreachable.
func Generate(opts ...Option) ([]*problem.Knapsack, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	out := make([]*problem.Knapsack, 0, cfg.Instances)
	for i := 0; i < cfg.Instances; i++ {
		k, err := cfg.instance(cfg.InitialID + i)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}

	return out, nil
}

// instance draws one knapsack. cfg must have been validated.
func (o Options) instance(id int) (*problem.Knapsack, error) {
	var (
		items = make([]problem.Item, 0, o.Items)
		used  = make(map[int]struct{}, o.Items)
		total int
	)
	for rejected := 0; len(items) < o.Items; {
		if rejected == maxRejections {
			return nil, fmt.Errorf("instance %d: no new weight after %d draws (%d of %d found): %w",
				id, rejected, len(items), o.Items, ErrTooManyItems)
		}
		w := 1 + o.rng.Intn(o.MaxWeight)
		if _, dup := used[w]; dup {
			rejected++
			continue
		}
		if !o.accept(w) {
			rejected++
			continue
		}
		rejected = 0
		used[w] = struct{}{}
		total += w
		items = append(items, problem.Item{
			Weight: uint16(w),
			Price:  uint16(1 + o.rng.Intn(o.MaxPrice)),
		})
	}

	capacity := int(math.Floor(o.Ratio * float64(total)))
	if capacity > math.MaxInt16 {
		return nil, fmt.Errorf("instance %d: capacity %d: %w", id, capacity, ErrOutOfRange)
	}

	return problem.New(id, capacity, items)
}

// accept applies the balance rule to a candidate weight.
func (o Options) accept(w int) bool {
	var base float64
	switch o.Balance {
	case BalanceSmall:
		base = float64(w)
	case BalanceLarge:
		base = float64(o.MaxWeight - w + 1)
	default:
		return true
	}
	threshold := float64(math.MaxInt32) / math.Pow(base, o.Exponent)

	return threshold >= float64(o.rng.Int31())
}
