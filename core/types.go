// SPDX-License-Identifier: MIT
// Package core defines the Graph, Arc and Edge types, the sentinel errors and
// the NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a vertex that no
	// edge or AddVertex call ever introduced.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNegativeWeight indicates AddEdge was called with a weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrGraphFrozen indicates a mutation was attempted on a frozen graph.
	ErrGraphFrozen = errors.New("core: graph is frozen")
)

// Arc is one traversal record stored in a vertex's adjacency list.
// Each undirected Edge produces two arcs, one from each endpoint.
type Arc struct {
	// To is the vertex reached by following this arc.
	To string

	// Weight is the cost of traversing the arc.
	Weight int64

	// EdgeID identifies the Edge that produced this arc.
	EdgeID string
}

// Edge is an undirected, weighted connection between two vertices as it was
// inserted. From/To keep the insertion orientation for stable listings only.
type Edge struct {
	ID     string
	From   string
	To     string
	Weight int64
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithVertexCapacity pre-sizes the adjacency map for n vertices.
// Values ≤ 0 are ignored.
func WithVertexCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capacity = n
		}
	}
}

// Graph is an undirected weighted multigraph held in memory.
//
// mu guards every field below it. edgeSeq is a plain counter because it is
// only advanced under the write lock.
type Graph struct {
	mu sync.RWMutex

	capacity int
	frozen   bool
	edgeSeq  uint64

	// adjacency[from] = arcs leaving from, in insertion order.
	adjacency map[string][]Arc

	// edges is the edge catalog in insertion (and therefore ID) order.
	edges []Edge
}

// NewGraph creates an empty, mutable Graph.
// Complexity: O(1) (O(n) when WithVertexCapacity(n) is given).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.adjacency = make(map[string][]Arc, g.capacity)

	return g
}

// Freeze seals the graph. Subsequent AddVertex/AddEdge calls fail with
// ErrGraphFrozen. Freeze is idempotent.
func (g *Graph) Freeze() {
	g.mu.Lock()
	g.frozen = true
	g.mu.Unlock()
}

// Frozen reports whether Freeze has been called.
func (g *Graph) Frozen() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.frozen
}
