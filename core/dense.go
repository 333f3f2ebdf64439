// This file implements DenseGraph, the concrete adjacency-list graph
// shipped with spantree. It allocates dense Vertex and Edge identifiers,
// satisfies the Graph interface, and is safe for concurrent use: a single
// RWMutex guards mutation, read accessors take the read lock and return
// copies so callers never alias internal storage.

package core

import "sync"

// Option configures behavior of a DenseGraph before creation.
type Option func(*DenseGraph)

// WithLoops permits self-loop edges (an edge from a vertex to itself).
func WithLoops() Option {
	return func(g *DenseGraph) { g.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same vertex pair.
func WithMultiEdges() Option {
	return func(g *DenseGraph) { g.allowMulti = true }
}

// DenseGraph is an undirected adjacency-list graph over dense identifiers.
//
// Vertices are created by AddVertex and numbered 0, 1, 2, ...; edges are
// created by AddEdge and numbered the same way. Both identifier spaces are
// append-only: there is no removal, so identifiers stay dense for the
// graph's lifetime, which is what label.Labeling and weightq.Queue rely on.
type DenseGraph struct {
	mu sync.RWMutex // guards all fields below

	allowLoops bool // permit u == v edges
	allowMulti bool // permit parallel edges

	incident [][]Edge               // vertex index → incident edge identifiers
	ends     [][2]Vertex            // edge index → endpoints, lower vertex first
	pairs    map[[2]Vertex]struct{} // normalized endpoint pairs, for multi-edge rejection
}

// NewDense creates an empty DenseGraph. By default self-loops and parallel
// edges are rejected; enable them with WithLoops and WithMultiEdges.
// Complexity: O(1).
func NewDense(opts ...Option) *DenseGraph {
	g := &DenseGraph{
		pairs: make(map[[2]Vertex]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// AddVertex allocates and returns the next dense vertex identifier.
// Returns ErrTooManyVertices once the index before NilVertex is reached,
// so the sentinel is never handed out as a live identifier.
// Complexity: amortized O(1).
func (g *DenseGraph) AddVertex() (Vertex, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	v := Vertex(len(g.incident))
	if v >= NilVertex {
		return NilVertex, ErrTooManyVertices
	}
	g.incident = append(g.incident, nil)

	return v, nil
}

// AddVertices allocates n vertices at once and returns their identifiers
// in allocation order. On exhaustion the already-allocated prefix is kept
// and ErrTooManyVertices is returned with a nil slice.
// Complexity: amortized O(n).
func (g *DenseGraph) AddVertices(n int) ([]Vertex, error) {
	vs := make([]Vertex, 0, n)
	for i := 0; i < n; i++ {
		v, err := g.AddVertex()
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}

	return vs, nil
}

// AddEdge connects u and v with a new undirected edge and returns its
// identifier.
//
// Errors:
//   - ErrVertexNotFound if either endpoint was not allocated by this graph.
//   - ErrLoopNotAllowed if u == v and loops are disabled.
//   - ErrMultiEdgeNotAllowed if the pair is already connected and
//     multi-edges are disabled.
//
// Complexity: amortized O(1).
func (g *DenseGraph) AddEdge(u, v Vertex) (Edge, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := Vertex(len(g.incident))
	if u < 0 || u >= n || v < 0 || v >= n {
		return 0, ErrVertexNotFound
	}
	if u == v && !g.allowLoops {
		return 0, ErrLoopNotAllowed
	}

	// Normalize the endpoint pair so (u,v) and (v,u) are the same key.
	pair := [2]Vertex{u, v}
	if v < u {
		pair = [2]Vertex{v, u}
	}
	if _, dup := g.pairs[pair]; dup && !g.allowMulti {
		return 0, ErrMultiEdgeNotAllowed
	}
	g.pairs[pair] = struct{}{}

	e := Edge(len(g.ends))
	g.ends = append(g.ends, pair)
	g.incident[u] = append(g.incident[u], e)
	if v != u {
		g.incident[v] = append(g.incident[v], e)
	}

	return e, nil
}

// Order returns the number of vertices. Complexity: O(1).
func (g *DenseGraph) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.incident)
}

// Size returns the number of edges. Complexity: O(1).
func (g *DenseGraph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.ends)
}

// Vertices returns all vertex identifiers in ascending order.
// Complexity: O(V).
func (g *DenseGraph) Vertices() []Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	vs := make([]Vertex, len(g.incident))
	for i := range vs {
		vs[i] = Vertex(i)
	}

	return vs
}

// IncidentEdges returns a copy of the edges incident to v. A self-loop
// appears once. Behavior is undefined for vertices not allocated by this
// graph (out-of-range indices panic).
// Complexity: O(deg(v)).
func (g *DenseGraph) IncidentEdges(v Vertex) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.incident[v]))
	copy(out, g.incident[v])

	return out
}

// Opposite returns the endpoint of e other than v; for a self-loop it
// returns v. Behavior is undefined when v is not an endpoint of e.
// Complexity: O(1).
func (g *DenseGraph) Opposite(e Edge, v Vertex) Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ends := g.ends[e]
	if ends[0] == v {
		return ends[1]
	}

	return ends[0]
}

// Endpoints returns both endpoints of e, lower identifier first.
// Complexity: O(1).
func (g *DenseGraph) Endpoints(e Edge) (Vertex, Vertex) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ends := g.ends[e]

	return ends[0], ends[1]
}

// Graph interface conformance.
var _ Graph = (*DenseGraph)(nil)
