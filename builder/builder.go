// This file holds the Build orchestrator, the option machinery and the
// per-edge weight store shared by all constructors.

package builder

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/ostraca/spantree/core"
)

// Sentinel errors returned by constructors.
var (
	// ErrTooFewVertices indicates a constructor parameter below its minimum.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrBadWeightRange indicates WithWeightRange(min, max) with max < min.
	ErrBadWeightRange = errors.New("builder: bad weight range")
)

// DefaultSeed is the RNG seed used when WithSeed is not given.
const DefaultSeed int64 = 42

// Default inclusive weight range when WithWeightRange is not given.
const (
	DefaultMinWeight int64 = 1
	DefaultMaxWeight int64 = 10
)

// config is the resolved, immutable builder configuration.
type config struct {
	seed       int64
	minW, maxW int64
}

// Option configures the builder before constructors run.
type Option func(*config)

// WithSeed freezes the RNG seed so stochastic constructors (RandomSparse,
// random weights) become reproducible across runs.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithWeightRange sets the inclusive [min, max] range edge weights are
// drawn from. Negative bounds are allowed; the MST algorithms accept
// negative weights.
func WithWeightRange(min, max int64) Option {
	return func(c *config) { c.minW, c.maxW = min, max }
}

// state carries the mutable build context handed to constructors: the
// graph under construction, the seeded RNG, and the edge weight store.
type state struct {
	g   *core.DenseGraph
	cfg config
	rng *rand.Rand

	weights map[core.Edge]int64
}

// addEdge inserts an edge and records a freshly drawn weight for it.
func (s *state) addEdge(u, v core.Vertex) (core.Edge, error) {
	e, err := s.g.AddEdge(u, v)
	if err != nil {
		return 0, err
	}
	s.weights[e] = s.nextWeight()

	return e, nil
}

// nextWeight draws a uniform weight from the configured inclusive range.
func (s *state) nextWeight() int64 {
	span := s.cfg.maxW - s.cfg.minW
	if span == 0 {
		return s.cfg.minW
	}

	return s.cfg.minW + s.rng.Int63n(span+1)
}

// Constructor applies one deterministic topology mutation to the build
// state. Constructors must validate parameters early, return sentinel
// errors, and keep emission order stable for a fixed configuration.
type Constructor func(s *state) error

// Build creates a DenseGraph with the given graph options, resolves the
// builder options, applies all constructors in order, and returns the
// graph together with a weight function covering every emitted edge
// (edges added outside the builder weigh zero).
//
// The first constructor error aborts the build and is wrapped with the
// constructor's context; no partial cleanup is attempted.
//
// Complexity: O(len(bopts)) resolution plus the sum of constructor costs.
func Build(gopts []core.Option, bopts []Option, cons ...Constructor) (*core.DenseGraph, core.WeightFunc[int64], error) {
	cfg := config{
		seed: DefaultSeed,
		minW: DefaultMinWeight,
		maxW: DefaultMaxWeight,
	}
	for _, opt := range bopts {
		opt(&cfg)
	}
	if cfg.maxW < cfg.minW {
		return nil, nil, fmt.Errorf("Build: min=%d max=%d: %w", cfg.minW, cfg.maxW, ErrBadWeightRange)
	}

	s := &state{
		g:       core.NewDense(gopts...),
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(cfg.seed)),
		weights: make(map[core.Edge]int64),
	}
	for _, con := range cons {
		if err := con(s); err != nil {
			return nil, nil, fmt.Errorf("Build: %w", err)
		}
	}

	weights := s.weights
	weightFn := func(e core.Edge) int64 { return weights[e] }

	return s.g, weightFn, nil
}
