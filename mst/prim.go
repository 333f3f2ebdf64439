// This file implements Prim's greedy frontier expansion over an abstract
// graph: three labelings (predecessor, color, tentative weight), a
// decrease-key queue built atop the weight labeling, and the main
// extract-relax-finalize loop.

package mst

import (
	"github.com/ostraca/spantree/core"
	"github.com/ostraca/spantree/label"
	"github.com/ostraca/spantree/weightq"
)

// Prim computes the minimum spanning forest of the component of g
// containing source, by growing outwards from source.
//
// The returned Forest maps every vertex reached from source to the vertex
// it was connected through (source maps to itself); vertices in other
// components keep the core.NilVertex predecessor and the core.Infinity
// weight. That is expected behavior for a disconnected input, not an
// error.
//
// Error conditions:
//   - ErrNilGraph       : g is nil.
//   - ErrNilWeightFunc  : weight is nil.
//   - ErrSourceNotFound : source is outside [0, g.Order()).
//
// Steps:
//  1. Validate g, weight and source.
//  2. Allocate the predecessor, color and tentative-weight labelings
//     (NilVertex / White / Infinity for every vertex) and wrap the weight
//     labeling in a decrease-key queue.
//  3. Seed: push source, set pred(source) = source, color(source) = Gray.
//     Source's own weight entry is never consulted while it is the sole
//     member, so it needs no special minimal value.
//  4. While the queue is non-empty: extract the minimum-weight frontier
//     vertex u; for each incident edge e with opposite endpoint v, skip
//     self-loops and Black vertices, and when weight(e) improves v's
//     tentative weight, record the new weight and predecessor, then
//     either push v (White → Gray) or decrease its key (Gray). Finally
//     color u Black.
//
// The engine runs synchronously to completion; each invocation owns its
// labelings and queue exclusively, so concurrent invocations against the
// same read-only graph are safe.
//
// Complexity: O(E log V) time, O(V) additional space.
func Prim[W core.Weight](g core.Graph, source core.Vertex, weight core.WeightFunc[W]) (*Forest[W], error) {
	// 1. Entry validation. Anything deeper (weight-function totality,
	//    graph consistency) is a documented precondition.
	if g == nil {
		return nil, ErrNilGraph
	}
	if weight == nil {
		return nil, ErrNilWeightFunc
	}
	if source < 0 || int(source) >= g.Order() {
		return nil, ErrSourceNotFound
	}

	// 2. Fresh per-invocation state: every vertex starts unreached
	//    (NilVertex), undiscovered (White), infinitely far (Infinity).
	pred := label.Vertices(g, core.NilVertex)
	color := label.Vertices[Color](g, White)
	dist := label.Vertices(g, core.Infinity[W]())
	queue := weightq.New(dist)

	// 3. Seed the frontier with the source.
	queue.Push(source)
	pred.Set(source, source)
	color.Set(source, Gray)

	// 4. Greedy frontier expansion.
	var (
		u, v core.Vertex
		w    W
	)
	for !queue.Empty() {
		// Extract the frontier vertex with the minimum tentative weight.
		// By the cut property its recorded edge belongs to some MST.
		u = queue.Top()
		queue.Pop()

		for _, e := range g.IncidentEdges(u) {
			v = g.Opposite(e, u)
			// A self-loop cannot improve u's own connection; skipping it
			// also keeps the queue's decrease-key precondition intact
			// (u is no longer a member at this point).
			if v == u {
				continue
			}
			// Black vertices are finalized; relaxing one would be useless
			// and would violate the decrease-key precondition.
			if color.Get(v) == Black {
				continue
			}
			// Relax: does e improve the best known connection to v?
			// Every incident edge is considered independently, so among
			// parallel edges only the minimum survives in the labeling.
			if w = weight(e); w < dist.Get(v) {
				dist.Set(v, w)
				pred.Set(v, u)
				if color.Get(v) == White {
					// First discovery: join the frontier.
					queue.Push(v)
					color.Set(v, Gray)
				} else {
					// Already in the frontier: the label was just
					// lowered, so the queue's Update precondition holds.
					queue.Update(v)
				}
			}
		}

		// Finalize u; it never re-enters the frontier.
		color.Set(u, Black)
	}

	return &Forest[W]{source: source, pred: pred, dist: dist}, nil
}
