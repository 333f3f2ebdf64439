package weightq

import (
	"container/heap"

	"github.com/ostraca/spantree/core"
	"github.com/ostraca/spantree/label"
)

// absent marks a vertex with no current heap position.
const absent = -1

// Queue is a min-priority queue of vertices ordered by an external weight
// labeling, supporting in-place decrease-key. See the package comment for
// the consistency invariant and precondition discipline.
type Queue[W core.Weight] struct {
	h indexedHeap[W]
}

// New creates an empty queue ordered by weights. The queue keeps a
// reference to weights, not a copy; it can hold any vertex in the
// labeling's index range [0, weights.Len()).
// Complexity: O(V) to size the position index.
func New[W core.Weight](weights *label.Labeling[W]) *Queue[W] {
	return &Queue[W]{
		h: indexedHeap[W]{
			weights: weights,
			pos:     label.Of(weights.Len(), absent),
		},
	}
}

// Push inserts v with its current weight-labeling value as priority.
// Precondition: v is not already a member.
// Complexity: O(log n) amortized.
func (q *Queue[W]) Push(v core.Vertex) {
	heap.Push(&q.h, v)
}

// Top returns the member with the minimum current priority without
// removing it. Precondition: the queue is non-empty.
// Complexity: O(1).
func (q *Queue[W]) Top() core.Vertex {
	return q.h.order[0]
}

// Pop removes and returns the member with the minimum current priority.
// Precondition: the queue is non-empty.
// Complexity: O(log n) amortized.
func (q *Queue[W]) Pop() core.Vertex {
	return heap.Pop(&q.h).(core.Vertex)
}

// Update restores v's heap position after its weight-labeling value has
// been decreased by the caller. Precondition: v is a member and its label
// value was just lowered, never raised.
// Complexity: O(log n).
func (q *Queue[W]) Update(v core.Vertex) {
	heap.Fix(&q.h, q.h.pos.Get(v))
}

// Contains reports whether v is currently a member. Complexity: O(1).
func (q *Queue[W]) Contains(v core.Vertex) bool {
	return q.h.pos.Get(v) != absent
}

// Empty reports whether no members remain. Complexity: O(1).
func (q *Queue[W]) Empty() bool { return len(q.h.order) == 0 }

// Len returns the number of members. Complexity: O(1).
func (q *Queue[W]) Len() int { return len(q.h.order) }

// indexedHeap implements heap.Interface over the member vertices, keeping
// pos (vertex → heap slot) in sync on every Swap so that heap.Fix can
// locate an arbitrary member in O(1).
type indexedHeap[W core.Weight] struct {
	weights *label.Labeling[W]   // externally owned priorities
	order   []core.Vertex        // heap array of member vertices
	pos     *label.Labeling[int] // vertex → index in order, absent if none
}

// Len returns the number of members. Complexity: O(1).
func (h *indexedHeap[W]) Len() int { return len(h.order) }

// Less orders members by current labeling value, then by vertex
// identifier for deterministic tie-breaks. Complexity: O(1).
func (h *indexedHeap[W]) Less(i, j int) bool {
	u, v := h.order[i], h.order[j]
	wu, wv := h.weights.Get(u), h.weights.Get(v)
	if wu != wv {
		return wu < wv
	}

	return u < v
}

// Swap exchanges two members and records their new positions.
// Complexity: O(1).
func (h *indexedHeap[W]) Swap(i, j int) {
	h.order[i], h.order[j] = h.order[j], h.order[i]
	h.pos.Set(h.order[i], i)
	h.pos.Set(h.order[j], j)
}

// Push appends a new member. Called by heap.Push. Complexity: O(1) amortized.
func (h *indexedHeap[W]) Push(x interface{}) {
	v := x.(core.Vertex)
	h.pos.Set(v, len(h.order))
	h.order = append(h.order, v)
}

// Pop removes and returns the last member after heap adjustments placed
// the minimum there. Called by heap.Pop. Complexity: O(1).
func (h *indexedHeap[W]) Pop() interface{} {
	n := len(h.order)
	v := h.order[n-1]
	h.order = h.order[:n-1]
	h.pos.Set(v, absent)

	return v
}
