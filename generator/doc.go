// SPDX-License-Identifier: MIT
// Package generator produces random 0/1 knapsack instances for experiments.
//
// 🚀 What it does
//
//	Each instance gets Items distinct weights drawn from 1…MaxWeight and a
//	price drawn uniformly from 1…MaxPrice per item. The capacity is a fixed
//	fraction (Ratio) of the total weight, rounded down.
//
// ✨ Weight skew
//
//	Balance and Exponent bias which weights survive the draw:
//	  • BalanceSmall:  w is kept when MaxInt32 / wᵏ ≥ U
//	  • BalanceLarge:  w is kept when MaxInt32 / (MaxWeight−w+1)ᵏ ≥ U
//	  • BalanceEven:   every distinct w is kept
//	where U is a fresh uniform int31 and k is the Exponent.
//
// ⚙️ Usage
//
//	ks, err := generator.Generate(
//	    generator.WithItems(20),
//	    generator.WithInstances(50),
//	    generator.WithRatio(0.6),
//	    generator.WithSeed(42),
//	)
//
// Determinism: a stochastic source is mandatory (WithSeed or WithRand); the
// same seed and options always produce the same instances.
package generator
