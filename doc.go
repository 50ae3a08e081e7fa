// Package knapsack is a suite of 0/1 knapsack solvers with the tooling to
// generate instances, solve them in batches and compare the results.
//
// 🚀 What is inside?
//
//	• problem/  : Item, Knapsack, Selection (bit vector) and Solution values
//	• exact/    : exhaustive search, full and pruned (≤ 63 items)
//	• heuristic/: greedy price/weight ratio
//	• dynamic/  : DP over prices, FPTAS price rescaling
//	• genetic/  : genetic algorithm with tournament/roulette selection and
//	             three replacement policies
//	• solver/   : one dispatcher over all of the above
//	• instance/ : plain-text instance and solution formats, relative error
//	• generator/: seeded random instances with weight skew
//	• bench/    : parallel batch runner, Prometheus metrics, table and
//	             Excel reports
//	• cmd/knapsack: the generate / solve / bench command
//
// ✨ Guarantees
//
//   - Every solver returns a feasible selection: its weight never exceeds
//     the capacity.
//   - Solvers are synchronous and single-threaded; independent instances
//     can be solved in parallel (bench does exactly that).
//   - Randomness is always injected (seed or *rand.Rand), so runs are
//     reproducible.
//
// Quick example:
//
//	k, _ := problem.New(1, 10, []problem.Item{{5, 10}, {4, 40}, {6, 30}, {3, 50}})
//	sol, _ := solver.Solve(k, solver.Options{Algo: solver.DynamicProgramming})
//	fmt.Println(sol) // 1 4 90 0 1 0 1
package knapsack
