// Package heuristic implements the greedy price/weight ratio heuristic for
// the 0/1 knapsack problem.
//
// 🚀 Algorithm
//
//	ratio(i) = price(i) / weight(i)   (integer division; weight 0 ⇒ +∞)
//	rank items by ratio, descending, stable on ties
//	walk the ranking, packing every item that still fits
//	stop the moment the load equals the capacity
//
// ✨ Properties
//
//   - O(n log n) time, O(n) memory.
//   - Always feasible, never better than the optimum.
//   - The truncated ratio is kept on purpose: it reproduces the reference
//     outputs exactly, including items with close ratios ranked by index.
//
// ⚙️ Usage
//
//	sol, err := heuristic.RatioGreedy(k)
package heuristic
