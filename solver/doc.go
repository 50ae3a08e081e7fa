// Package solver is the single entry point over every knapsack algorithm in
// this module.
//
// Solve validates Options, routes to the chosen algorithm and returns a
// problem.Solution whose BestPrice is always in real price units:
//
//	BruteForce          exact.BruteForce          optimal, n ≤ 63
//	BruteForcePruned    exact.BruteForcePruned    optimal, n ≤ 63
//	RatioGreedy         heuristic.RatioGreedy     O(n log n)
//	DynamicProgramming  dynamic.ByPrice           optimal, O(n·Σprice)
//	FPTAS               dynamic.ByPriceFPTAS      relative error ≈ ε
//	Genetic             genetic.Solver            metaheuristic
//
// Algorithm names ("bf", "bf-pruned", "greedy", "dp", "fptas", "ga") are the
// ones accepted by the knapsack command.
package solver
