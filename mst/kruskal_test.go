package mst_test

import (
	"testing"

	"github.com/ostraca/spantree/builder"
	"github.com/ostraca/spantree/core"
	"github.com/ostraca/spantree/mst" // package under test
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestKruskal_Triangle verifies the classic triangle: A—B(1), B—C(2),
// A—C(4) keeps the two cheap edges.
func TestKruskal_Triangle(t *testing.T) {
	f := newFixture(t, 3)
	ab := f.edge(t, 0, 1, 1)
	bc := f.edge(t, 1, 2, 2)
	f.edge(t, 0, 2, 4)

	edges, total, err := mst.Kruskal(f.g, f.weight)
	require.NoError(t, err)

	assert.Equal(t, []core.Edge{ab, bc}, edges)
	assert.EqualValues(t, 3, total)
}

// TestKruskal_SpansEveryComponent verifies Kruskal, unlike Prim, covers
// all components of a disconnected graph.
func TestKruskal_SpansEveryComponent(t *testing.T) {
	f := newFixture(t, 4)
	f.edge(t, 0, 1, 1)
	f.edge(t, 2, 3, 5)

	edges, total, err := mst.Kruskal(f.g, f.weight)
	require.NoError(t, err)

	assert.Len(t, edges, 2)
	assert.EqualValues(t, 6, total)
}

// TestKruskal_SkipsSelfLoops verifies loops never enter the forest even
// with negative weights.
func TestKruskal_SkipsSelfLoops(t *testing.T) {
	f := newFixture(t, 2, core.WithLoops())
	f.edge(t, 0, 0, -10)
	ab := f.edge(t, 0, 1, 3)

	edges, total, err := mst.Kruskal(f.g, f.weight)
	require.NoError(t, err)

	assert.Equal(t, []core.Edge{ab}, edges)
	assert.EqualValues(t, 3, total)
}

// TestKruskal_DeterministicTieBreak verifies equal-weight edges are taken
// by ascending edge identifier, so repeated runs agree exactly.
func TestKruskal_DeterministicTieBreak(t *testing.T) {
	g, weight, err := builder.Build(nil,
		[]builder.Option{builder.WithSeed(3), builder.WithWeightRange(1, 2)},
		builder.RandomSparse(40, 120))
	require.NoError(t, err)

	first, totalFirst, err := mst.Kruskal(g, weight)
	require.NoError(t, err)
	second, totalSecond, err := mst.Kruskal(g, weight)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, totalFirst, totalSecond)
}

// TestKruskal_Validation verifies the entry-point sentinel errors.
func TestKruskal_Validation(t *testing.T) {
	f := newFixture(t, 2)
	f.edge(t, 0, 1, 1)

	_, _, err := mst.Kruskal[int64](nil, f.weight)
	assert.ErrorIs(t, err, mst.ErrNilGraph)

	_, _, err = mst.Kruskal[int64](f.g, nil)
	assert.ErrorIs(t, err, mst.ErrNilWeightFunc)
}

// TestColor_String pins the color names used in diagnostics.
func TestColor_String(t *testing.T) {
	assert.Equal(t, "white", mst.White.String())
	assert.Equal(t, "gray", mst.Gray.String())
	assert.Equal(t, "black", mst.Black.String())
	assert.Equal(t, "invalid", mst.Color(9).String())
}
