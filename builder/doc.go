// Package builder constructs deterministic graph fixtures for tests,
// examples and benchmarks.
//
// Build creates a core.DenseGraph, resolves the builder options into a
// configuration (seeded RNG, weight range), applies the given
// constructors in order, and returns the graph together with a
// core.WeightFunc covering every edge the constructors emitted.
//
// Each constructor appends its own vertices and edges as an independent
// component: composing Path(3) with Cycle(4) yields a disconnected
// seven-vertex fixture, which is exactly what the spanning-forest tests
// need.
//
// Determinism: the same options, constructor list and seed always produce
// an identical graph and identical weights. Constructors validate their
// parameters early and return sentinel errors; they never panic.
package builder
