package bench

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/knapsack/instance"
	"github.com/katalvlaran/knapsack/problem"
)

// Runner executes every solver on every instance.
type Runner struct {
	Solvers []NamedSolver
	Workers int // ≤ 0 uses runtime.NumCPU
	Repeat  int // calls per job, the mean duration is reported; ≤ 0 means 1

	// References maps instance id to its optimal price.
	References map[int]int
	// Baseline names a solver whose price stands in for a missing reference.
	Baseline string

	Metrics *Metrics     // optional
	Logger  *slog.Logger // optional
}

// Run solves all instances and builds the report. The first solver error,
// infeasible solution or context cancellation stops the run.
func (r *Runner) Run(ctx context.Context, instances []*problem.Knapsack) (*Report, error) {
	if len(r.Solvers) == 0 {
		return nil, ErrNoSolvers
	}
	baseline := -1
	if r.Baseline != "" {
		for i, s := range r.Solvers {
			if s.Name == r.Baseline {
				baseline = i
			}
		}
		if baseline < 0 {
			return nil, fmt.Errorf("%q: %w", r.Baseline, ErrUnknownBaseline)
		}
	}

	log := r.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	report := &Report{
		RunID:   uuid.New(),
		Started: time.Now(),
		Rows:    make([]Row, len(instances)*len(r.Solvers)),
	}
	log = log.With(slog.String("run", report.RunID.String()))
	log.Info("bench started",
		slog.Int("instances", len(instances)),
		slog.Int("solvers", len(r.Solvers)),
	)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := newPool(r.Workers, r.Repeat)
	p.start(ctx)
	go func() {
		defer close(p.jobs)
		for i, k := range instances {
			for s, ns := range r.Solvers {
				select {
				case p.jobs <- job{slot: i*len(r.Solvers) + s, knapsack: k, solver: ns}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	var firstErr error
	for res := range p.results {
		if firstErr != nil {
			continue
		}
		k := instances[res.slot/len(r.Solvers)]
		name := r.Solvers[res.slot%len(r.Solvers)].Name
		if err := r.record(report, res, k, name); err != nil {
			firstErr = err
			cancel()
			continue
		}
		log.Debug("solved",
			slog.Int("knapsack", k.ID()),
			slog.String("solver", name),
			slog.Int("price", res.solution.BestPrice),
			slog.Duration("duration", res.duration),
		)
	}
	if firstErr != nil {
		log.Error("bench aborted", slog.Any("err", firstErr))
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.rate(report, baseline)
	report.Summaries = summarize(report.Rows, r.Solvers)
	report.Elapsed = time.Since(report.Started)
	log.Info("bench finished", slog.Duration("elapsed", report.Elapsed))
	return report, nil
}

// record validates res and stores it in its slot.
func (r *Runner) record(report *Report, res result, k *problem.Knapsack, name string) error {
	if res.err != nil {
		return fmt.Errorf("%s on %v: %w", name, k, res.err)
	}
	sol := res.solution
	if !sol.Feasible() {
		return fmt.Errorf("%s on %v: weight %d: %w", name, k, sol.Weight(), ErrInfeasible)
	}
	price, err := sol.PriceIn(k)
	if err != nil {
		return fmt.Errorf("%s on %v: %w", name, k, err)
	}
	r.Metrics.observeSolve(name, res.duration)

	report.Rows[res.slot] = Row{
		InstanceID: k.ID(),
		Size:       k.Size(),
		Solver:     name,
		Price:      price,
		Weight:     sol.Weight(),
		Selection:  sol.Selection.String(),
		Duration:   res.duration,
	}
	return nil
}

// rate fills the optimum and relative error of every row that has one.
func (r *Runner) rate(report *Report, baseline int) {
	n := len(r.Solvers)
	for i := range report.Rows {
		row := &report.Rows[i]
		opt, ok := r.References[row.InstanceID]
		if !ok && baseline >= 0 {
			opt, ok = report.Rows[i-i%n+baseline].Price, true
		}
		if !ok {
			continue
		}
		row.Optimum, row.HasOptimum = opt, true
		row.RelativeError = instance.RelativeError(opt, row.Price)
		r.Metrics.observeError(row.Solver, row.RelativeError)
	}
}

func summarize(rows []Row, solvers []NamedSolver) []Summary {
	out := make([]Summary, len(solvers))
	for s, ns := range solvers {
		out[s].Solver = ns.Name
	}
	n := len(solvers)
	for i, row := range rows {
		sum := &out[i%n]
		sum.Instances++
		sum.TotalDuration += row.Duration
		if row.HasOptimum {
			sum.Rated++
			sum.AvgRelativeError += row.RelativeError
			sum.MaxRelativeError = max(sum.MaxRelativeError, row.RelativeError)
		}
	}
	for i := range out {
		if out[i].Instances > 0 {
			out[i].AvgDuration = out[i].TotalDuration / time.Duration(out[i].Instances)
		}
		if out[i].Rated > 0 {
			out[i].AvgRelativeError /= float64(out[i].Rated)
		}
	}
	return out
}
