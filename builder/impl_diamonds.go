// SPDX-License-Identifier: MIT
// Package: pathcount/builder
//
// impl_diamonds.go - Diamonds(k) and Parallel(u, v, k) constructors.
//
// Diamonds(k) chains k diamonds between hubs "h0" … "hk":
//
//	      a_i
//	     /   \
//	 h_i       h_{i+1}
//	     \   /
//	      b_i
//
// With equal weights there are exactly 2^k shortest paths from "h0" to "hk",
// which makes it the standard fixture for counts beyond 64 bits.
// IDs are fixed ("h%d", "a%d", "b%d") and ignore cfg.idFn.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathcount/core"
)

const (
	methodDiamonds = "Diamonds"
	methodParallel = "Parallel"
	minDiamonds    = 1
	minParallel    = 1
)

// HubID returns the ID of the i-th hub built by Diamonds.
func HubID(i int) string {
	return fmt.Sprintf("h%d", i)
}

// Diamonds returns a Constructor that chains k diamonds.
func Diamonds(k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if k < minDiamonds {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodDiamonds, k, minDiamonds, ErrTooFewVertices)
		}
		for i := 0; i < k; i++ {
			from, to := HubID(i), HubID(i+1)
			for _, mid := range []string{fmt.Sprintf("a%d", i), fmt.Sprintf("b%d", i)} {
				if err := addWeighted(g, cfg, methodDiamonds, from, mid); err != nil {
					return err
				}
				if err := addWeighted(g, cfg, methodDiamonds, mid, to); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Parallel returns a Constructor that adds k parallel edges u—v.
func Parallel(u, v string, k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if k < minParallel {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodParallel, k, minParallel, ErrTooFewVertices)
		}
		for i := 0; i < k; i++ {
			if err := addWeighted(g, cfg, methodParallel, u, v); err != nil {
				return err
			}
		}

		return nil
	}
}
