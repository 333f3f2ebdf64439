// Package core defines the identifier types, the abstract Graph capability
// set, and the generic Weight machinery shared by every algorithm package
// in spantree.
//
// This file declares Vertex, Edge, the NilVertex sentinel, the Weight
// constraint with its Infinity sentinel, WeightFunc, the Graph interface,
// and the sentinel errors returned by the concrete DenseGraph.
//
// Errors:
//
//	ErrVertexNotFound    - an endpoint passed to AddEdge does not exist.
//	ErrLoopNotAllowed    - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
//	ErrTooManyVertices   - the dense index space is exhausted.
package core

import (
	"errors"
	"math"
)

// Sentinel errors for concrete graph construction.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrTooManyVertices indicates the dense vertex index space is exhausted.
	// The maximum index is reserved for NilVertex and is never allocated.
	ErrTooManyVertices = errors.New("core: vertex index space exhausted")
)

// Vertex identifies a node in a graph. Identifiers are allocated densely
// from zero, so a Vertex doubles as an index into per-vertex state such as
// label.Labeling. Vertices are totally ordered by their numeric value.
type Vertex int32

// NilVertex is the distinguished "absent / unreached" vertex: the maximum
// representable index. DenseGraph never allocates it (ErrTooManyVertices),
// so within this repository the sentinel cannot collide with a live vertex.
const NilVertex Vertex = math.MaxInt32

// Edge identifies a connection between two vertices. Like Vertex, edge
// identifiers are dense and opaque; endpoint queries go through the Graph.
type Edge int32

// Weight constrains edge weights to the ordered numeric kinds. Every type
// in the set supports < and has a maximum value obtainable via Infinity.
type Weight interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// WeightFunc maps an edge to its weight. It is supplied by the caller of
// the MST engine and must induce a total order; a non-total order produces
// silently incorrect results (documented precondition, not checked).
type WeightFunc[W Weight] func(Edge) W

// Infinity returns the maximum representable value of W, used by the MST
// engine as the "unreached" weight sentinel. For floating-point types it
// is +Inf; for integer types, the type's maximum.
//
// Complexity: O(1) for float and unsigned kinds, O(log bits) for signed.
func Infinity[W Weight]() W {
	var zero W
	// Floating-point kinds keep the fraction under conversion; integer
	// kinds truncate it away. The operand is a variable so the conversion
	// is a run-time one and legal for every type in the constraint.
	half := 0.5
	if W(half) != zero {
		return W(math.Inf(1))
	}
	// Unsigned kinds wrap below zero to the all-ones maximum.
	if zero-1 > zero {
		return zero - 1
	}
	// Signed kinds: climb 1, 3, 7, ... by doubling until overflow wraps.
	max := W(1)
	for next := max*2 + 1; next > max; next = max*2 + 1 {
		max = next
	}

	return max
}

// Graph is the capability set the algorithms consume from a graph
// collaborator. Any adjacency-list, adjacency-matrix or edge-list
// representation satisfying it plugs into the engines unchanged.
//
// Contract:
//   - Vertex identifiers are dense over [0, Order()).
//   - IncidentEdges(v) enumerates every edge touching v, in an
//     unspecified but stable order; undirected multi-edges and self-loops
//     may appear.
//   - Opposite(e, v) returns the endpoint of e other than v; for a
//     self-loop it returns v itself. Behavior is undefined when v is not
//     an endpoint of e.
//
// Implementations must be safe for concurrent read-only use; the
// algorithms never mutate the graph.
type Graph interface {
	// Order returns the number of vertices.
	Order() int

	// Vertices enumerates all vertex identifiers in ascending order.
	Vertices() []Vertex

	// IncidentEdges returns the edges incident to v.
	IncidentEdges(v Vertex) []Edge

	// Opposite returns the endpoint of e other than v.
	Opposite(e Edge, v Vertex) Vertex
}
