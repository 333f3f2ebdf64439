// Package weightq provides Queue, a min-priority queue over vertices
// whose priorities live in an externally owned weight labeling, with an
// in-place decrease-key operation (Update).
//
// The queue does not copy priorities: it holds a reference to a
// *label.Labeling[W] and orders its members by that labeling's current
// values. The invariant is that every member's heap position is
// consistent with the labeling; the invariant may be violated only
// momentarily between a label mutation and the Update call that must
// immediately follow it.
//
// Implementation: an indexed binary heap — the heap array of vertices
// plus a dense position labeling — so Update can locate an arbitrary
// member and sift it in O(log n). A heap without the position index would
// need an O(n) scan per decrease-key, defeating the complexity target of
// the greedy algorithms built on top.
//
// Ties between equal priorities break by ascending vertex identifier, so
// extraction order is deterministic for a fixed input.
//
// All preconditions (Push only absent vertices, Update only present ones
// whose label was just lowered, Top/Pop only on non-empty queues) are
// caller-enforced; violating them is undefined behavior, not a reported
// error. The structure is a hot-path primitive and performs no defensive
// checks.
package weightq
