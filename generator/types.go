// SPDX-License-Identifier: MIT
package generator

import (
	"errors"
	"math"
	"math/rand"
)

// Balance selects which end of the weight range the draw favours.
type Balance int

const (
	// BalanceSmall prefers light items.
	BalanceSmall Balance = -1
	// BalanceEven keeps weights uniform (0).
	BalanceEven Balance = 0
	// BalanceLarge prefers heavy items (+1).
	BalanceLarge Balance = 1
)

// Limits imposed by the plain-text instance format.
const (
	MaxID     = math.MaxInt16
	MaxWeight = math.MaxUint16
	MaxPrice  = math.MaxUint16
)

var (
	// ErrTooManyItems is returned when more distinct weights are requested
	// than 1…MaxWeight can supply, or than the skew lets Generate draw.
	ErrTooManyItems = errors.New("generator: items exceed the number of distinct weights")

	// ErrBadRatio is returned when Ratio is outside [0, 1] or NaN.
	ErrBadRatio = errors.New("generator: capacity ratio must be in [0, 1]")

	// ErrBadBalance is returned for a Balance other than -1, 0, 1.
	ErrBadBalance = errors.New("generator: balance must be -1, 0 or 1")

	// ErrOutOfRange is returned when a count, bound, id or capacity does not
	// fit the instance format.
	ErrOutOfRange = errors.New("generator: parameter out of range")

	// ErrNeedRandSource is returned when neither WithSeed nor WithRand was given.
	ErrNeedRandSource = errors.New("generator: rng is required")
)

// Options configures Generate. Use DefaultOptions and the With* helpers.
type Options struct {
	InitialID int     // id of the first instance
	Items     int     // items per instance
	Instances int     // number of instances
	Ratio     float64 // capacity / total weight
	MaxWeight int     // weights are drawn from 1…MaxWeight
	MaxPrice  int     // prices are drawn from 1…MaxPrice
	Exponent  float64 // skew exponent k; 0 disables the skew
	Balance   Balance

	rng *rand.Rand
}

// DefaultOptions returns one instance of 10 items, capacity at half the total
// weight, weights and prices up to 100 and no skew. No RNG is set.
func DefaultOptions() Options {
	return Options{
		InitialID: 1,
		Items:     10,
		Instances: 1,
		Ratio:     0.5,
		MaxWeight: 100,
		MaxPrice:  100,
		Exponent:  1,
		Balance:   BalanceEven,
	}
}

// Option mutates Options before generation.
type Option func(*Options)

// WithInitialID sets the id of the first generated instance.
func WithInitialID(id int) Option { return func(o *Options) { o.InitialID = id } }

// WithItems sets the number of items per instance.
func WithItems(n int) Option { return func(o *Options) { o.Items = n } }

// WithInstances sets how many instances Generate returns.
func WithInstances(n int) Option { return func(o *Options) { o.Instances = n } }

// WithRatio sets capacity as a fraction of the total weight.
func WithRatio(r float64) Option { return func(o *Options) { o.Ratio = r } }

// WithMaxWeight sets the largest weight that may be drawn.
func WithMaxWeight(w int) Option { return func(o *Options) { o.MaxWeight = w } }

// WithMaxPrice sets the largest price that may be drawn.
func WithMaxPrice(p int) Option { return func(o *Options) { o.MaxPrice = p } }

// WithSkew sets the Balance direction and its exponent k.
func WithSkew(b Balance, k float64) Option {
	return func(o *Options) {
		o.Balance = b
		o.Exponent = k
	}
}

// WithSeed installs a deterministic source seeded with seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand installs rng as the random source. Panics on nil.
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic("generator: WithRand(nil)")
	}
	return func(o *Options) { o.rng = rng }
}

// validate checks every parameter against the format limits.
func (o Options) validate() error {
	switch {
	case o.rng == nil:
		return ErrNeedRandSource
	case o.Balance < BalanceSmall || o.Balance > BalanceLarge:
		return ErrBadBalance
	case math.IsNaN(o.Ratio) || o.Ratio < 0 || o.Ratio > 1:
		return ErrBadRatio
	case o.Items < 0, o.Instances < 0:
		return ErrOutOfRange
	case o.MaxWeight < 1 || o.MaxWeight > MaxWeight:
		return ErrOutOfRange
	case o.MaxPrice < 1 || o.MaxPrice > MaxPrice:
		return ErrOutOfRange
	case math.IsNaN(o.Exponent) || math.IsInf(o.Exponent, 0) || o.Exponent < 0:
		return ErrOutOfRange
	case o.InitialID < 0 || (o.Instances > 0 && o.InitialID+o.Instances-1 > MaxID):
		return ErrOutOfRange
	case o.Items > o.MaxWeight:
		return ErrTooManyItems
	}
	return nil
}
