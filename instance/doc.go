// SPDX-License-Identifier: MIT
// Package instance reads and writes the plain-text knapsack formats.
//
// Instance line (one knapsack per line, fields separated by whitespace):
//
//	<id> <n> <capacity> <w₁> <p₁> <w₂> <p₂> … <wₙ> <pₙ>
//
//	id, capacity : int16 (capacity ≥ 0)
//	w, p         : uint16
//	n            : must equal the number of (w, p) pairs
//
// Solution line, as produced by problem.Solution.String:
//
//	<id> <n> <price> <b₁> <b₂> … <bₙ>      bᵢ ∈ {0, 1}
//
// Reference files hold one optimal solution line per instance and are used
// to compute relative errors of approximate solvers.
//
// Blank lines are skipped. Every parse error carries the 1-based line number
// and wraps one of ErrMalformedLine, ErrOutOfRange or ErrItemCountMismatch.
package instance
