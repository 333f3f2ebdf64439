package core_test

import (
	"testing"

	"github.com/ostraca/spantree/core" // package under test
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDense_VertexAllocation verifies identifiers come out dense and
// ascending from zero.
func TestDense_VertexAllocation(t *testing.T) {
	g := core.NewDense()

	for want := 0; want < 5; want++ {
		v, err := g.AddVertex()
		require.NoError(t, err)
		assert.EqualValues(t, want, v)
	}
	assert.Equal(t, 5, g.Order())
	assert.Equal(t, []core.Vertex{0, 1, 2, 3, 4}, g.Vertices())
}

// TestDense_AddVertices verifies bulk allocation returns the identifiers
// in allocation order.
func TestDense_AddVertices(t *testing.T) {
	g := core.NewDense()

	vs, err := g.AddVertices(3)
	require.NoError(t, err)
	assert.Equal(t, []core.Vertex{0, 1, 2}, vs)
	assert.Equal(t, 3, g.Order())
}

// TestDense_AddEdge_Errors verifies the construction sentinel errors.
func TestDense_AddEdge_Errors(t *testing.T) {
	g := core.NewDense()
	vs, err := g.AddVertices(2)
	require.NoError(t, err)
	u, v := vs[0], vs[1]

	// Endpoints must have been allocated by this graph.
	_, err = g.AddEdge(u, 99)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.AddEdge(core.NilVertex, v)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	// Self-loops are rejected by default.
	_, err = g.AddEdge(u, u)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	// Parallel edges are rejected by default, in either orientation.
	_, err = g.AddEdge(u, v)
	require.NoError(t, err)
	_, err = g.AddEdge(v, u)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
}

// TestDense_LoopsAndMultiEdges verifies the options lift the restrictions
// and that a self-loop appears exactly once in the incident list.
func TestDense_LoopsAndMultiEdges(t *testing.T) {
	g := core.NewDense(core.WithLoops(), core.WithMultiEdges())
	vs, err := g.AddVertices(2)
	require.NoError(t, err)
	u, v := vs[0], vs[1]

	loop, err := g.AddEdge(u, u)
	require.NoError(t, err)
	e1, err := g.AddEdge(u, v)
	require.NoError(t, err)
	e2, err := g.AddEdge(v, u)
	require.NoError(t, err)

	assert.Equal(t, 3, g.Size())
	assert.Equal(t, []core.Edge{loop, e1, e2}, g.IncidentEdges(u))
	assert.Equal(t, []core.Edge{e1, e2}, g.IncidentEdges(v))

	// Opposite of a self-loop is the vertex itself.
	assert.Equal(t, u, g.Opposite(loop, u))
}

// TestDense_OppositeAndEndpoints verifies endpoint queries from both sides.
func TestDense_OppositeAndEndpoints(t *testing.T) {
	g := core.NewDense()
	vs, err := g.AddVertices(2)
	require.NoError(t, err)
	u, v := vs[0], vs[1]

	e, err := g.AddEdge(v, u) // reversed on purpose; edges are undirected
	require.NoError(t, err)

	assert.Equal(t, v, g.Opposite(e, u))
	assert.Equal(t, u, g.Opposite(e, v))

	lo, hi := g.Endpoints(e)
	assert.Equal(t, u, lo) // normalized: lower identifier first
	assert.Equal(t, v, hi)
}

// TestDense_IncidentEdgesCopy verifies callers cannot corrupt internal
// adjacency storage through the returned slice.
func TestDense_IncidentEdgesCopy(t *testing.T) {
	g := core.NewDense()
	vs, err := g.AddVertices(3)
	require.NoError(t, err)

	_, err = g.AddEdge(vs[0], vs[1])
	require.NoError(t, err)
	_, err = g.AddEdge(vs[0], vs[2])
	require.NoError(t, err)

	got := g.IncidentEdges(vs[0])
	got[0] = 42 // mutate the copy
	assert.Equal(t, []core.Edge{0, 1}, g.IncidentEdges(vs[0]))
}
