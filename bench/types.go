package bench

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/knapsack/solver"
)

var (
	// ErrInfeasible is returned when a solver packs more than the capacity.
	ErrInfeasible = errors.New("bench: infeasible solution")

	// ErrNoSolvers is returned by Run when Runner.Solvers is empty.
	ErrNoSolvers = errors.New("bench: no solvers configured")

	// ErrUnknownBaseline is returned when Runner.Baseline names no solver.
	ErrUnknownBaseline = errors.New("bench: baseline is not one of the solvers")
)

// NamedSolver labels a solver in rows, summaries and metrics.
type NamedSolver struct {
	Name  string
	Solve solver.Func
}

// Row is the outcome of one solver on one instance.
type Row struct {
	InstanceID int
	Size       int
	Solver     string
	Price      int
	Weight     int
	Selection  string
	Duration   time.Duration // mean over Runner.Repeat calls

	// Optimum and RelativeError are set when HasOptimum is true.
	Optimum       int
	HasOptimum    bool
	RelativeError float64
}

// Summary aggregates every row of one solver.
type Summary struct {
	Solver           string
	Instances        int
	Rated            int // rows with a known optimum
	AvgRelativeError float64
	MaxRelativeError float64
	AvgDuration      time.Duration
	TotalDuration    time.Duration
}

// Report is the result of Runner.Run.
type Report struct {
	RunID     uuid.UUID
	Started   time.Time
	Elapsed   time.Duration
	Rows      []Row
	Summaries []Summary
}
