package bench

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/katalvlaran/knapsack/problem"
)

// job is one (instance, solver) pair; slot is its position in Report.Rows.
type job struct {
	slot     int
	knapsack *problem.Knapsack
	solver   NamedSolver
}

type result struct {
	slot     int
	solution problem.Solution
	duration time.Duration
	err      error
}

// pool runs jobs on a fixed number of goroutines until jobs is closed or
// ctx is done.
type pool struct {
	workers int
	repeat  int
	jobs    chan job
	results chan result
	wg      sync.WaitGroup
}

func newPool(workers, repeat int) *pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if repeat <= 0 {
		repeat = 1
	}
	return &pool{
		workers: workers,
		repeat:  repeat,
		jobs:    make(chan job, workers),
		results: make(chan result, workers),
	}
}

// start launches the workers and closes results once all have exited.
func (p *pool) start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
	go func() {
		p.wg.Wait()
		close(p.results)
	}()
}

func (p *pool) worker(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case j, ok := <-p.jobs:
			if !ok {
				return
			}
			r := p.process(j)
			select {
			case p.results <- r:
			case <-ctx.Done():
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

// process solves j repeat times and keeps the last solution.
func (p *pool) process(j job) result {
	r := result{slot: j.slot}
	start := time.Now()
	for i := 0; i < p.repeat; i++ {
		r.solution, r.err = j.solver.Solve(j.knapsack)
		if r.err != nil {
			return r
		}
	}
	r.duration = time.Since(start) / time.Duration(p.repeat)
	return r
}
