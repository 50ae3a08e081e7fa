// Package exact provides exhaustive 0/1 knapsack solvers.
//
// Both solvers enumerate every non-empty subset of items as an integer mask
// 1 … 2ⁿ−1 and keep the most valuable feasible one:
//
//   - BruteForce: sums every selected item of a subset, then compares the
//     total weight with the capacity. O(n·2ⁿ) time, O(n) memory.
//
//   - BruteForcePruned: stops summing a subset as soon as its running weight
//     exceeds the capacity. Same result, fewer additions on tight instances.
//
// Tie-break: only a strictly greater price replaces the incumbent, so among
// equally priced subsets the one with the smallest mask wins. When no
// non-empty subset is feasible the empty selection (price 0) is returned.
//
// Subsets are encoded in a uint64, which bounds the instance size to
// MaxInstanceSize (63) items. Larger instances are rejected with
// ErrInstanceTooLarge; in practice n≲30 is the useful range.
package exact
