// Package mst computes minimum spanning trees and forests on abstract
// undirected graphs.
//
// Two algorithms are provided:
//
//   - Prim(g, source, weight) grows a tree outwards from a source vertex
//     using a three-color visitation state machine and a decrease-key
//     priority queue (weightq.Queue) over a tentative-weight labeling.
//     It returns a Forest: the predecessor labeling of the minimum
//     spanning forest restricted to the source's connected component.
//
//   - Kruskal(g, weight) sorts the edge set and joins components with a
//     union-find structure. It spans every component of the graph and is
//     the reference oracle the test suite checks Prim against.
//
// Engine state machine (per vertex):
//
//	White — undiscovered; no tentative connection to the growing tree.
//	Gray  — discovered, in the frontier queue with a tentative best edge.
//	Black — finalized; its tree edge is fixed and never relaxed again.
//
// Transitions are monotonic: White → Gray → Black, never reversed. At
// every extraction of the queue minimum the cut property guarantees the
// extracted edge belongs to some MST, because it is the lightest edge
// crossing the cut between the Black set and its complement (the
// classical Jarník–Prim argument).
//
// Disconnected graphs are expected, not defective: vertices unreachable
// from the source stay White, keep the core.NilVertex predecessor and the
// core.Infinity weight, and the result is a spanning forest of the
// source's component only. Use Kruskal to span every component.
//
// Negative edge weights are accepted; unlike Dijkstra, Prim has no
// non-negative-weight requirement. Self-loops and multi-edges are handled
// (loops are skipped, only the minimum parallel edge survives in the
// labeling).
//
// Complexity of Prim: O(E log V) time, O(V) additional space — the
// decrease-key queue holds each vertex at most once, unlike the
// lazy-duplicate strategy which can hold O(E) entries.
package mst
