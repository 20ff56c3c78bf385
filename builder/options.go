// SPDX-License-Identifier: MIT
// Package: pathcount/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed.

package builder

import (
	"math/rand"
	"strconv"
)

// BuilderOption customizes constructors by mutating a builderConfig before
// graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDPrefix makes vertex IDs prefix + decimal index ("v0", "v1", ...).
func WithIDPrefix(prefix string) BuilderOption {
	return func(c *builderConfig) {
		c.idFn = func(i int) string { return prefix + strconv.Itoa(i) }
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
