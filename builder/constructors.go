// This file implements the topology constructors. Every constructor
// appends a fresh component: it allocates its own vertices and only
// connects those, so compositions build disconnected fixtures.

package builder

import "fmt"

// Parameter minima per constructor.
const (
	minPathNodes     = 2
	minCycleNodes    = 3
	minCompleteNodes = 2
	minStarNodes     = 2
	minSparseNodes   = 2
)

// Path returns a constructor building a simple path P_n: edges
// (i-1)—i for i = 1..n-1 in stable increasing order.
func Path(n int) Constructor {
	return func(s *state) error {
		if n < minPathNodes {
			return fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
		}
		vs, err := s.g.AddVertices(n)
		if err != nil {
			return fmt.Errorf("Path: %w", err)
		}
		for i := 1; i < n; i++ {
			if _, err = s.addEdge(vs[i-1], vs[i]); err != nil {
				return fmt.Errorf("Path: %w", err)
			}
		}

		return nil
	}
}

// Cycle returns a constructor building a cycle C_n: a path plus the
// closing edge (n-1)—0.
func Cycle(n int) Constructor {
	return func(s *state) error {
		if n < minCycleNodes {
			return fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
		}
		vs, err := s.g.AddVertices(n)
		if err != nil {
			return fmt.Errorf("Cycle: %w", err)
		}
		for i := 1; i < n; i++ {
			if _, err = s.addEdge(vs[i-1], vs[i]); err != nil {
				return fmt.Errorf("Cycle: %w", err)
			}
		}
		if _, err = s.addEdge(vs[n-1], vs[0]); err != nil {
			return fmt.Errorf("Cycle: %w", err)
		}

		return nil
	}
}

// Complete returns a constructor building the complete graph K_n: one
// edge per unordered vertex pair, emitted in lexicographic order.
func Complete(n int) Constructor {
	return func(s *state) error {
		if n < minCompleteNodes {
			return fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewVertices)
		}
		vs, err := s.g.AddVertices(n)
		if err != nil {
			return fmt.Errorf("Complete: %w", err)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if _, err = s.addEdge(vs[i], vs[j]); err != nil {
					return fmt.Errorf("Complete: %w", err)
				}
			}
		}

		return nil
	}
}

// Star returns a constructor building the star S_n: the first allocated
// vertex is the hub, connected to each of the n-1 leaves.
func Star(n int) Constructor {
	return func(s *state) error {
		if n < minStarNodes {
			return fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewVertices)
		}
		vs, err := s.g.AddVertices(n)
		if err != nil {
			return fmt.Errorf("Star: %w", err)
		}
		for i := 1; i < n; i++ {
			if _, err = s.addEdge(vs[0], vs[i]); err != nil {
				return fmt.Errorf("Star: %w", err)
			}
		}

		return nil
	}
}

// RandomSparse returns a constructor building a connected random graph:
// a chain over n vertices guarantees connectivity, then up to extra
// additional random edges are drawn (self-loops and, when the graph
// rejects them, duplicate pairs are skipped without counting).
func RandomSparse(n, extra int) Constructor {
	return func(s *state) error {
		if n < minSparseNodes {
			return fmt.Errorf("RandomSparse: n=%d < min=%d: %w", n, minSparseNodes, ErrTooFewVertices)
		}
		vs, err := s.g.AddVertices(n)
		if err != nil {
			return fmt.Errorf("RandomSparse: %w", err)
		}
		for i := 1; i < n; i++ {
			if _, err = s.addEdge(vs[i-1], vs[i]); err != nil {
				return fmt.Errorf("RandomSparse: %w", err)
			}
		}

		// Bound the attempts so a saturated pair space cannot spin the
		// loop forever; duplicates simply do not count toward extra.
		attempts := 0
		maxAttempts := extra * 16
		for added := 0; added < extra && attempts < maxAttempts; attempts++ {
			u := vs[s.rng.Intn(n)]
			v := vs[s.rng.Intn(n)]
			if u == v {
				continue
			}
			if _, err = s.addEdge(u, v); err == nil {
				added++
			}
		}

		return nil
	}
}
