// This file declares the visitation colors, sentinel errors, and the
// TreeEdge view shared by Prim and Kruskal.

package mst

import (
	"errors"

	"github.com/ostraca/spantree/core"
)

// Sentinel errors returned by the entry points. Interior preconditions
// (queue discipline, weight-function totality) are caller-enforced and
// deliberately unchecked; see the package comment.
var (
	// ErrNilGraph indicates a nil graph collaborator was passed in.
	ErrNilGraph = errors.New("mst: graph is nil")

	// ErrNilWeightFunc indicates no edge-weight function was supplied.
	ErrNilWeightFunc = errors.New("mst: weight function is nil")

	// ErrSourceNotFound indicates the source vertex is outside the
	// graph's dense index range.
	ErrSourceNotFound = errors.New("mst: source vertex not found")
)

// Color is the visitation state of a vertex during frontier expansion.
type Color uint8

const (
	// White: the vertex has not been discovered yet.
	White Color = iota
	// Gray: the vertex is in the frontier queue with a tentative best edge.
	Gray
	// Black: the vertex is finalized; no further relaxation can touch it.
	Black
)

// String returns the conventional lowercase color name.
func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Gray:
		return "gray"
	case Black:
		return "black"
	default:
		return "invalid"
	}
}

// TreeEdge is one edge of a spanning tree or forest, as reconstructed
// from a predecessor labeling: Child was reached from Parent over an edge
// of the given weight.
type TreeEdge[W core.Weight] struct {
	// Parent is the endpoint already inside the tree when the edge was taken.
	Parent core.Vertex

	// Child is the endpoint the edge added to the tree.
	Child core.Vertex

	// Weight is the edge's weight at the moment Child was connected.
	Weight W
}
