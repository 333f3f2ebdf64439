// This file defines Forest, the result artifact of Prim: the predecessor
// labeling together with the connecting-weight labeling, and the
// reconstruction helpers derived from them.

package mst

import (
	"github.com/ostraca/spantree/core"
	"github.com/ostraca/spantree/label"
)

// Forest is the output of Prim: a minimum spanning forest of the source's
// connected component, represented as a predecessor labeling.
//
// For the source, Predecessor returns the source itself. For every other
// vertex reached from the source, Predecessor returns the vertex it was
// connected through. Unreached vertices keep core.NilVertex; prefer
// Reached over comparing against the sentinel directly.
type Forest[W core.Weight] struct {
	source core.Vertex
	pred   *label.Labeling[core.Vertex]
	dist   *label.Labeling[W]
}

// Source returns the vertex the forest was grown from.
func (f *Forest[W]) Source() core.Vertex { return f.source }

// Predecessor returns the vertex v was reached from, the source itself
// for v == Source(), or core.NilVertex when v is unreached.
// Complexity: O(1).
func (f *Forest[W]) Predecessor(v core.Vertex) core.Vertex { return f.pred.Get(v) }

// Reached reports whether v belongs to the spanning forest (always true
// for the source). Complexity: O(1).
func (f *Forest[W]) Reached(v core.Vertex) bool { return f.pred.Get(v) != core.NilVertex }

// ConnectingWeight returns the weight of the tree edge connecting v to
// its predecessor, and whether v has one (the source and unreached
// vertices do not). Complexity: O(1).
func (f *Forest[W]) ConnectingWeight(v core.Vertex) (W, bool) {
	if v == f.source || !f.Reached(v) {
		var zero W
		return zero, false
	}

	return f.dist.Get(v), true
}

// Predecessors exposes the underlying predecessor labeling. The labeling
// is owned by the forest; treat it as read-only.
func (f *Forest[W]) Predecessors() *label.Labeling[core.Vertex] { return f.pred }

// Edges reconstructs the tree edges (Predecessor(v), v) for every reached
// non-source vertex, in ascending order of child identifier.
// Complexity: O(V).
func (f *Forest[W]) Edges() []TreeEdge[W] {
	edges := make([]TreeEdge[W], 0, f.pred.Len())
	var v core.Vertex
	for i := 0; i < f.pred.Len(); i++ {
		v = core.Vertex(i)
		if v == f.source || !f.Reached(v) {
			continue
		}
		edges = append(edges, TreeEdge[W]{
			Parent: f.pred.Get(v),
			Child:  v,
			Weight: f.dist.Get(v),
		})
	}

	return edges
}

// TotalWeight sums the weights of all tree edges. Complexity: O(V).
func (f *Forest[W]) TotalWeight() W {
	var total W
	var v core.Vertex
	for i := 0; i < f.pred.Len(); i++ {
		v = core.Vertex(i)
		if v == f.source || !f.Reached(v) {
			continue
		}
		total += f.dist.Get(v)
	}

	return total
}
