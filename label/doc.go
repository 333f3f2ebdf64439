// Package label provides Labeling, a generic total mapping from the
// vertices of a fixed graph to an arbitrary value type.
//
// A Labeling is the per-vertex state primitive shared by the spantree
// algorithm packages: predecessor maps, tentative weights and visitation
// colors are all labelings. Because vertex identifiers are dense (see
// core.Vertex), a labeling is a plain slice indexed by vertex, not a hash
// map: reads and writes are O(1) with no hashing overhead.
//
// Contract:
//
//   - Vertices(g, def) guarantees a defined value (def) for every vertex
//     existing in g at construction time.
//   - The vertex set is fixed for the labeling's lifetime; there is no
//     removal, and vertices added to the graph later are not covered.
//   - Querying a vertex outside the originating graph is undefined
//     behavior (it panics on the slice bounds check; it is not a
//     reported error).
//
// A Labeling is an independent value fully owned by its creator. Sharing
// one across concurrent algorithm invocations is not supported; each
// invocation allocates its own.
package label
