// SPDX-License-Identifier: MIT
// Package: pathcount/builder
//
// impl_complete.go - Complete(n) and RandomSparse(n, p) constructors.
//
// Contract:
//   • Complete:     n ≥ 1, one edge per unordered pair {i<j}, i asc then j asc.
//   • RandomSparse: n ≥ 1, p ∈ [0,1]; each pair {i<j} kept with probability p.
//     p ∈ {0,1} is deterministic without an RNG; 0 < p < 1 needs WithSeed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathcount/core"
)

const (
	methodComplete          = "Complete"
	methodRandomSparse      = "RandomSparse"
	minCompleteVertices     = 1
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteVertices, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodComplete, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addWeighted(g, cfg, methodComplete, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// RandomSparse returns a Constructor that samples an Erdős–Rényi graph over
// n vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		if err := addVertices(g, cfg, methodRandomSparse, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				keep := p == probMax
				if cfg.rng != nil && p > probMin && p < probMax {
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err := addWeighted(g, cfg, methodRandomSparse, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
