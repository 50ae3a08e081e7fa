package problem

import "errors"

// Sentinel errors returned by constructors in this package and reused by
// solver packages for shared input checks.
var (
	// ErrNegativeCapacity indicates a knapsack capacity below zero.
	ErrNegativeCapacity = errors.New("problem: capacity must be non-negative")

	// ErrNilKnapsack indicates that a solver received a nil *Knapsack.
	ErrNilKnapsack = errors.New("problem: knapsack is nil")

	// ErrSizeMismatch indicates a selection whose length differs from the
	// instance size it is evaluated against.
	ErrSizeMismatch = errors.New("problem: selection length does not match instance size")
)

// Item is a single knapsack item. Both fields are non-negative by construction;
// a zero weight is legal and describes a free item.
type Item struct {
	Weight uint16
	Price  uint16
}
