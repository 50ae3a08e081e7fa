package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/katalvlaran/knapsack/instance"
	"github.com/katalvlaran/knapsack/problem"
	"github.com/katalvlaran/knapsack/solver"
)

var errMissingInput = errors.New("-in is required")

func (a *app) solve(args []string) error {
	fs := flag.NewFlagSet("solve", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	var (
		in     = fs.String("in", "", "instance file")
		algo   = fs.String("algo", solver.DynamicProgramming.String(), "bf, bf-pruned, greedy, dp, fptas or ga")
		eps    = fs.Float64("eps", solver.DefaultOptions().Epsilon, "FPTAS relative error in (0, 1]")
		gaPath = fs.String("ga", a.env.GAConfig, "GA YAML config")
		limit  = fs.Int("max", 0, "solve at most this many instances (0 = all)")
		out    = fs.String("out", "", "solution file (stdout when empty)")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return errMissingInput
	}

	fn, err := a.solverFor(*algo, *eps, *gaPath)
	if err != nil {
		return err
	}
	ks, err := instance.LoadFile(*in, *limit)
	if err != nil {
		return err
	}

	sols := make([]problem.Solution, 0, len(ks))
	start := time.Now()
	for _, k := range ks {
		sol, err := fn(k)
		if err != nil {
			return fmt.Errorf("%s on %v: %w", *algo, k, err)
		}
		a.log.Debug("solved", "knapsack", k.ID(), "price", sol.BestPrice)
		sols = append(sols, sol)
	}
	a.log.Info("solve finished", "algo", *algo, "instances", len(ks), "elapsed", time.Since(start))

	w, err := create(a.stdout, *out)
	if err != nil {
		return err
	}
	if err := instance.WriteSolutions(w, sols); err != nil {
		w.Close()
		return fmt.Errorf("write solutions: %w", err)
	}
	return w.Close()
}

// solverFor builds the named solver; GA parameters come from gaPath.
func (a *app) solverFor(name string, eps float64, gaPath string) (solver.Func, error) {
	algo, err := solver.ParseAlgorithm(name)
	if err != nil {
		return nil, err
	}
	opts := solver.Options{Algo: algo, Epsilon: eps}
	if algo == solver.Genetic {
		cfg, err := loadGAConfig(gaPath)
		if err != nil {
			return nil, err
		}
		if opts.Genetic, err = cfg.options(a.log, a.stderr); err != nil {
			return nil, err
		}
	}
	return solver.New(opts)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// create opens path for writing, or wraps stdout when path is empty or "-".
func create(stdout io.Writer, path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{stdout}, nil
	}
	return os.Create(path)
}
