package mst_test

import (
	"fmt"

	"github.com/ostraca/spantree/core"
	"github.com/ostraca/spantree/mst"
)

// ExamplePrim demonstrates growing an MST from a source vertex on the
// four-vertex square A—B(1), B—C(2), A—C(4), C—D(1).
func ExamplePrim() {
	// 1. Construct the graph: four vertices, four weighted edges.
	g := core.NewDense()
	vs, _ := g.AddVertices(4)
	a, b, c, d := vs[0], vs[1], vs[2], vs[3]

	weights := make(map[core.Edge]int64)
	addEdge := func(u, v core.Vertex, w int64) {
		e, _ := g.AddEdge(u, v)
		weights[e] = w
	}
	addEdge(a, b, 1)
	addEdge(b, c, 2)
	addEdge(a, c, 4)
	addEdge(c, d, 1)

	// 2. Run Prim from A.
	forest, err := mst.Prim(g, a, func(e core.Edge) int64 { return weights[e] })
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3. Print the tree edges and the total weight.
	for _, te := range forest.Edges() {
		fmt.Printf("%d->%d (%d)\n", te.Parent, te.Child, te.Weight)
	}
	fmt.Println("total:", forest.TotalWeight())
	// Output:
	// 0->1 (1)
	// 1->2 (2)
	// 2->3 (1)
	// total: 4
}

// ExampleKruskal demonstrates the reference algorithm on the same square;
// it selects the same edge set.
func ExampleKruskal() {
	g := core.NewDense()
	vs, _ := g.AddVertices(4)

	weights := make(map[core.Edge]int64)
	addEdge := func(u, v core.Vertex, w int64) {
		e, _ := g.AddEdge(u, v)
		weights[e] = w
	}
	addEdge(vs[0], vs[1], 1)
	addEdge(vs[1], vs[2], 2)
	addEdge(vs[0], vs[2], 4)
	addEdge(vs[2], vs[3], 1)

	edges, total, err := mst.Kruskal(g, func(e core.Edge) int64 { return weights[e] })
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("edges:", len(edges), "total:", total)
	// Output: edges: 3 total: 4
}
