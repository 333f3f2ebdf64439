package label

import "github.com/ostraca/spantree/core"

// Labeling is a total map from the vertices of a fixed graph to values of
// type T, backed by a dense slice indexed by vertex identifier.
type Labeling[T any] struct {
	values []T
}

// Vertices constructs a labeling over every vertex of g, initialized to
// def for all of them.
// Complexity: O(V) time and space.
func Vertices[T any](g core.Graph, def T) *Labeling[T] {
	return Of(g.Order(), def)
}

// Of constructs a labeling over the dense index range [0, n), initialized
// to def. It serves consumers that track per-vertex state sized by a
// sibling labeling rather than by a graph (see weightq).
// Complexity: O(n) time and space.
func Of[T any](n int, def T) *Labeling[T] {
	values := make([]T, n)
	for i := range values {
		values[i] = def
	}

	return &Labeling[T]{values: values}
}

// Get returns the current value for v. Complexity: O(1).
func (l *Labeling[T]) Get(v core.Vertex) T { return l.values[v] }

// Set replaces the value for v. Complexity: O(1).
func (l *Labeling[T]) Set(v core.Vertex, x T) { l.values[v] = x }

// Len returns the number of vertices covered. Complexity: O(1).
func (l *Labeling[T]) Len() int { return len(l.values) }
