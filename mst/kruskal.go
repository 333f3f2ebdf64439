// This file implements Kruskal's algorithm over the abstract graph
// capability set. It is the independent reference the test suite checks
// the Prim engine against, and it spans every component of the graph
// (Prim spans only the source's).

package mst

import (
	"sort"

	"github.com/ostraca/spantree/core"
	"github.com/ostraca/spantree/label"
)

// Kruskal computes a minimum spanning forest of all of g, returning the
// chosen edge identifiers and their total weight.
//
// Error conditions:
//   - ErrNilGraph      : g is nil.
//   - ErrNilWeightFunc : weight is nil.
//
// Steps:
//  1. Collect the edge set from per-vertex incident enumeration,
//     deduplicating the two appearances of every undirected edge and
//     dropping self-loops (they can never join two components).
//  2. Sort edges by ascending weight, ties by ascending edge identifier,
//     for deterministic output.
//  3. Sweep the sorted edges with a union-find (path compression, union
//     by rank), keeping each edge whose endpoints lie in different
//     components.
//
// Complexity: O(E log E + α(V)·E) time, O(V + E) space.
func Kruskal[W core.Weight](g core.Graph, weight core.WeightFunc[W]) ([]core.Edge, W, error) {
	var total W
	if g == nil {
		return nil, total, ErrNilGraph
	}
	if weight == nil {
		return nil, total, ErrNilWeightFunc
	}

	// 1. Derive the edge set. The capability interface exposes only
	//    incident enumeration, so every edge is seen once per endpoint;
	//    the anchor map both removes the duplicate sighting and records
	//    one known endpoint, which Opposite later turns into the pair.
	anchor := make(map[core.Edge]core.Vertex)
	edges := make([]core.Edge, 0)
	for _, u := range g.Vertices() {
		for _, e := range g.IncidentEdges(u) {
			if _, dup := anchor[e]; dup {
				continue
			}
			if g.Opposite(e, u) == u {
				// Self-loop: cannot be part of any spanning forest.
				continue
			}
			anchor[e] = u
			edges = append(edges, e)
		}
	}

	// 2. Deterministic order: weight ascending, edge identifier as the
	//    tie-break (incident enumeration order is unspecified, so the
	//    sort key itself must be total).
	sort.Slice(edges, func(i, j int) bool {
		wi, wj := weight(edges[i]), weight(edges[j])
		if wi != wj {
			return wi < wj
		}

		return edges[i] < edges[j]
	})

	// 3. Union-find over the dense vertex range.
	parent := label.Of(g.Order(), core.NilVertex)
	rank := label.Of(g.Order(), 0)
	for _, v := range g.Vertices() {
		parent.Set(v, v)
	}

	// Iterative find with path compression.
	find := func(u core.Vertex) core.Vertex {
		for parent.Get(u) != u {
			parent.Set(u, parent.Get(parent.Get(u)))
			u = parent.Get(u)
		}

		return u
	}

	// Union by rank; reports whether a merge happened.
	union := func(u, v core.Vertex) bool {
		rootU, rootV := find(u), find(v)
		if rootU == rootV {
			return false
		}
		if rank.Get(rootU) < rank.Get(rootV) {
			rootU, rootV = rootV, rootU
		}
		parent.Set(rootV, rootU)
		if rank.Get(rootU) == rank.Get(rootV) {
			rank.Set(rootU, rank.Get(rootU)+1)
		}

		return true
	}

	forest := make([]core.Edge, 0, g.Order())
	for _, e := range edges {
		u := anchor[e]
		v := g.Opposite(e, u)
		if union(u, v) {
			forest = append(forest, e)
			total += weight(e)
		}
	}

	return forest, total, nil
}
