// Package problem defines the value types shared by every knapsack solver:
// items, immutable knapsack instances, selection bit vectors and solutions.
//
// 🚀 What is modelled?
//
//	A 0/1 knapsack instance is a capacity plus an ordered list of items.
//	Item i corresponds to bit i of every Selection, so item order is part
//	of the instance identity.
//
// ✨ Key properties:
//   - Knapsack values are immutable: New copies the items, accessors return
//     copies, and price transforms (WithPrices) build a new instance.
//   - Selection is an arbitrary-width bit vector with a fixed logical length
//     equal to the instance size; out-of-range indices are ignored.
//   - Solution keeps a shared, read-only reference to the solved Knapsack.
//
// ⚙️ Usage:
//
//	k, err := problem.New(1, 10, []problem.Item{{Weight: 5, Price: 10}, {Weight: 4, Price: 40}})
//	if err != nil {
//		// handle ErrNegativeCapacity
//	}
//	sel := problem.NewSelection(k.Size())
//	sel.Set(1)
//	sol := problem.NewSolution(k, sel)
//	fmt.Println(sol) // "1 2 40 0 1"
package problem
