// Package dynamic solves the 0/1 knapsack problem by dynamic programming over
// prices, with an optional FPTAS price-rescaling pre-pass.
//
// 🚀 Table
//
//	W[c][j] = minimum weight of a subset of the first j items whose price
//	          is exactly c, or +∞ when no such subset exists.
//
//	W[0][j] = 0
//	W[c][0] = +∞                                  (c > 0)
//	W[c][1] = weight₀ if c == price₀ else +∞
//	W[c][j] = min(W[c][j-1], W[c-priceⱼ₋₁][j-1] + weightⱼ₋₁)
//
//	The answer is the largest c with W[c][n] ≤ capacity; the selection is
//	recovered by walking the columns back from (c, n).
//
// ✨ FPTAS
//
//	shift = ⌊log₂(ε · Σprice / n²)⌋
//	When shift ≥ 1 every price is replaced by price >> shift before the DP.
//	The transform is lossy. Applying it again to an already scaled instance
//	shifts again unless the second shift is below 1.
//	The DP price of a scaled instance is in scaled units; ByPriceFPTAS
//	recomputes the real price against the original prices.
//
// ⚙️ Complexity
//
//	Time   = O(n · Σprice)
//	Memory = O(n · Σprice)
package dynamic
