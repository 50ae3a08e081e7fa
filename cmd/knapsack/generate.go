package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/katalvlaran/knapsack/generator"
	"github.com/katalvlaran/knapsack/instance"
)

func (a *app) generate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	var (
		initialID = fs.Int("I", 1, "id of the first instance")
		items     = fs.Int("n", 10, "items per instance")
		count     = fs.Int("N", 1, "number of instances")
		ratio     = fs.Float64("m", 0.5, "capacity / total weight")
		maxWeight = fs.Int("W", 100, "maximum item weight")
		maxPrice  = fs.Int("C", 100, "maximum item price")
		exponent  = fs.Float64("k", 1, "weight skew exponent")
		balance   = fs.Int("d", 0, "-1 more small items, 0 balanced, 1 more large items")
		seed      = fs.Int64("seed", 0, "random seed (0 picks one from the clock)")
		out       = fs.String("out", "", "output file (stdout when empty)")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	a.log.Info("generating",
		"instances", *count, "items", *items, "ratio", *ratio, "seed", *seed)

	ks, err := generator.Generate(
		generator.WithInitialID(*initialID),
		generator.WithItems(*items),
		generator.WithInstances(*count),
		generator.WithRatio(*ratio),
		generator.WithMaxWeight(*maxWeight),
		generator.WithMaxPrice(*maxPrice),
		generator.WithSkew(generator.Balance(*balance), *exponent),
		generator.WithSeed(*seed),
	)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	w, err := create(a.stdout, *out)
	if err != nil {
		return err
	}
	if err := instance.Write(w, ks); err != nil {
		w.Close()
		return fmt.Errorf("write instances: %w", err)
	}
	return w.Close()
}
