package dynamic_test

import (
	"testing"

	"github.com/katalvlaran/knapsack/dynamic"
	"github.com/katalvlaran/knapsack/generator"
	"github.com/katalvlaran/knapsack/problem"
)

func benchInstance(b *testing.B, n int) *problem.Knapsack {
	b.Helper()
	ks, err := generator.Generate(
		generator.WithItems(n),
		generator.WithMaxWeight(n*4),
		generator.WithMaxPrice(500),
		generator.WithSeed(1),
	)
	if err != nil {
		b.Fatal(err)
	}
	return ks[0]
}

func BenchmarkByPrice_n40(b *testing.B) {
	k := benchInstance(b, 40)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dynamic.ByPrice(k)
	}
}

func BenchmarkByPriceFPTAS_n40_eps01(b *testing.B) {
	k := benchInstance(b, 40)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dynamic.ByPriceFPTAS(k, 0.1)
	}
}
