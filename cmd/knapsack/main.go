// Command knapsack generates, solves and benchmarks 0/1 knapsack instances.
//
//	knapsack generate -n 20 -N 50 -m 0.6 -W 100 -C 250 -k 1 -d 0 -out inst.dat
//	knapsack solve    -in inst.dat -algo dp -out inst.sol
//	knapsack bench    -in inst.dat -ref inst.sol -algos greedy,fptas,ga -xlsx bench.xlsx
//
// A .env file in the working directory (or the file named by -env) may set
// KNAPSACK_LOG_LEVEL, KNAPSACK_WORKERS and KNAPSACK_GA_CONFIG.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
)

var errUsage = errors.New("usage: knapsack [-env FILE] <generate|solve|bench> [flags]")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "knapsack:", err)
		}
		stop()
		os.Exit(1)
	}
}

// run parses the global flags, loads the environment and dispatches to a
// subcommand.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("knapsack", flag.ContinueOnError)
	fs.SetOutput(stderr)
	envFile := fs.String("env", ".env", "environment file (ignored when missing)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errUsage
	}

	env, err := loadEnv(*envFile)
	if err != nil {
		return err
	}
	app := &app{env: env, log: newLogger(stderr, env.LogLevel), stdout: stdout, stderr: stderr}

	sub, rest := fs.Arg(0), fs.Args()[1:]
	switch sub {
	case "generate":
		return app.generate(rest)
	case "solve":
		return app.solve(rest)
	case "bench":
		return app.bench(ctx, rest)
	}
	return fmt.Errorf("unknown command %q: %w", sub, errUsage)
}
