package genetic_test

import (
	"fmt"

	"github.com/katalvlaran/knapsack/genetic"
	"github.com/katalvlaran/knapsack/problem"
)

func ExampleSolver_Solve() {
	k, _ := problem.New(1, 10, []problem.Item{
		{Weight: 5, Price: 10},
		{Weight: 4, Price: 40},
		{Weight: 6, Price: 30},
		{Weight: 3, Price: 50},
	})
	ga, err := genetic.New(
		genetic.WithPopulationSize(20),
		genetic.WithMaxGenerations(30),
		genetic.WithElites(2),
		genetic.WithSeed(42),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	sol, _ := ga.Solve(k)
	fmt.Println(sol.BestPrice, sol.Feasible())
	// Output: 90 true
}
