package main

import (
	"context"
	"errors"
	"flag"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/katalvlaran/knapsack/bench"
	"github.com/katalvlaran/knapsack/instance"
	"github.com/katalvlaran/knapsack/solver"
)

func (a *app) bench(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	var (
		in          = fs.String("in", "", "instance file")
		refPath     = fs.String("ref", "", "reference solution file")
		algos       = fs.String("algos", "dp,greedy", "comma separated solver names")
		eps         = fs.Float64("eps", solver.DefaultOptions().Epsilon, "FPTAS relative error in (0, 1]")
		gaPath      = fs.String("ga", a.env.GAConfig, "GA YAML config")
		workers     = fs.Int("workers", a.env.Workers, "parallel jobs (0 = CPU count)")
		repeat      = fs.Int("repeat", 1, "calls per instance and solver")
		limit       = fs.Int("max", 0, "use at most this many instances (0 = all)")
		baseline    = fs.String("baseline", "", "solver whose price replaces a missing reference")
		rows        = fs.Bool("rows", false, "print every run, not only the summary")
		xlsx        = fs.String("xlsx", "", "write the report to this workbook")
		metricsAddr = fs.String("metrics-addr", "", "serve Prometheus metrics on this address until interrupted")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return errMissingInput
	}

	ks, err := instance.LoadFile(*in, *limit)
	if err != nil {
		return err
	}
	runner := &bench.Runner{
		Workers:  *workers,
		Repeat:   *repeat,
		Baseline: *baseline,
		Metrics:  bench.NewMetrics(),
		Logger:   a.log,
	}
	for _, name := range strings.Split(*algos, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		fn, err := a.solverFor(name, *eps, *gaPath)
		if err != nil {
			return err
		}
		runner.Solvers = append(runner.Solvers, bench.NamedSolver{Name: name, Solve: fn})
	}
	if *refPath != "" {
		refs, err := instance.LoadReferencesFile(*refPath)
		if err != nil {
			return err
		}
		runner.References = instance.PricesByID(refs)
	}

	var srv *http.Server
	if *metricsAddr != "" {
		ln, err := net.Listen("tcp", *metricsAddr)
		if err != nil {
			return err
		}
		mux := http.NewServeMux()
		mux.Handle("/metrics", runner.Metrics.Handler())
		srv = &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
				a.log.Error("metrics server", "err", err)
			}
		}()
		a.log.Info("serving metrics", "addr", ln.Addr().String())
	}

	rep, err := runner.Run(ctx, ks)
	if err != nil {
		return err
	}
	bench.RenderTable(a.stdout, rep)
	if *rows {
		bench.RenderRows(a.stdout, rep)
	}
	if *xlsx != "" {
		if err := bench.WriteXLSX(*xlsx, rep); err != nil {
			return err
		}
		a.log.Info("report saved", "path", *xlsx)
	}

	if srv != nil {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdown)
	}
	return nil
}
