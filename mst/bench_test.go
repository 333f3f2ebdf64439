package mst_test

import (
	"testing"

	"github.com/ostraca/spantree/builder"
	"github.com/ostraca/spantree/mst"
)

// BenchmarkPrim measures Prim on a random sparse graph, always starting
// from vertex 0.
func BenchmarkPrim(b *testing.B) {
	g, weight, err := builder.Build(nil, nil, builder.RandomSparse(500, 1500))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer() // exclude graph construction
	for i := 0; i < b.N; i++ {
		_, _ = mst.Prim(g, 0, weight)
	}
}

// BenchmarkKruskal measures Kruskal on the same graph shape.
func BenchmarkKruskal(b *testing.B) {
	g, weight, err := builder.Build(nil, nil, builder.RandomSparse(500, 1500))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer() // exclude graph construction
	for i := 0; i < b.N; i++ {
		_, _, _ = mst.Kruskal(g, weight)
	}
}
