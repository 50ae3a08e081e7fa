// Package bench runs several knapsack solvers over a batch of instances and
// reports timing and solution quality.
//
// 🚀 Flow
//
//	instances ─► worker pool (Runner.Workers) ─► one job per (instance, solver)
//	          ─► Row{price, duration, feasibility}
//	          ─► relative error vs Runner.References or the Baseline solver
//	          ─► Summary per solver
//
// Every solver call stays single-threaded; the pool only parallelises across
// jobs. Rows come back in instance order, then solver order, whatever the
// scheduling.
//
// ✨ Outputs
//
//   - RenderTable / RenderRows: go-pretty text tables.
//   - WriteXLSX: an Excel workbook with "Runs" and "Summary" sheets.
//   - Metrics: Prometheus collectors on a private registry
//     (knapsack_solve_duration_seconds, knapsack_solved_total,
//     knapsack_relative_error), exposable with Metrics.Handler.
//
// An infeasible solution aborts the run with ErrInfeasible.
package bench
