// Package spantree is a minimum-spanning-tree construction kit built from
// small, reusable graph-algorithm primitives.
//
// The kernel is the triple that also underlies shortest-path and other
// greedy frontier algorithms:
//
//	label/   — generic dense per-vertex labelings (predecessors, weights,
//	           colors) with O(1) index access
//	weightq/ — an indexed min-heap keyed by an external weight labeling,
//	           with true in-place decrease-key
//	mst/     — the three-color Prim engine driving greedy frontier
//	           expansion over an abstract graph, plus a Kruskal reference
//
// Supporting packages:
//
//	core/    — dense Vertex/Edge identifiers, the NilVertex sentinel, the
//	           generic Weight constraint with Infinity, the abstract Graph
//	           capability interface, and a concrete adjacency-list graph
//	builder/ — deterministic seeded fixture graphs for tests and benchmarks
//
// Any graph representation exposing vertex enumeration, incident-edge
// enumeration and opposite-endpoint lookup plugs into the engines
// unchanged; the shipped core.DenseGraph is one such representation, not
// a requirement.
//
// Quick ASCII example:
//
//	    A──1──B
//	    │     │
//	    4     2
//	    │     │
//	    C──1──D
//
//	From source A, Prim keeps A─B, B─D and D─C: total weight 4.
//
// All algorithms are synchronous and invocation-local: each call owns its
// labelings and queue, so concurrent calls against the same read-only
// graph are safe without locking.
package spantree
