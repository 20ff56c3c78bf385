// File: methods_edges.go
// Role: Edge insertion & catalog queries: AddEdge/Edges/EdgeCount, plus nextEdgeID().
// Determinism:
//   - Edges() returns edges in insertion order, which is also Edge.ID order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - AddEdge under the write lock; queries under the read lock.

package core

import (
	"fmt"
	"strconv"
)

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge inserts the undirected edge {from, to} with the given weight and
// returns its ID.
//
// Steps:
//  1. Validate IDs and weight.
//  2. Lock, reject if frozen.
//  3. Ensure both endpoints exist (idempotent, existing arcs are kept).
//  4. Append Arc from→to and Arc to→from. For a self-loop both arcs land on
//     the same vertex.
//  5. Record the Edge in the catalog.
//
// Parallel edges are never rejected: each call creates a new, distinct route.
//
// Errors:
//   - ErrEmptyVertexID: from or to is empty.
//   - ErrNegativeWeight: weight < 0 (wrapped with the offending edge).
//   - ErrGraphFrozen: the graph has been frozen.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if weight < 0 {
		return "", fmt.Errorf("%w: edge %s—%s weight=%d", ErrNegativeWeight, from, to, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen {
		return "", ErrGraphFrozen
	}

	g.ensureVertex(from)
	g.ensureVertex(to)

	eid := g.nextEdgeID()
	g.adjacency[from] = append(g.adjacency[from], Arc{To: to, Weight: weight, EdgeID: eid})
	g.adjacency[to] = append(g.adjacency[to], Arc{To: from, Weight: weight, EdgeID: eid})
	g.edges = append(g.edges, Edge{ID: eid, From: from, To: to, Weight: weight})

	return eid, nil
}

// Edges returns a copy of the edge catalog in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of undirected edges (not arcs).
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// nextEdgeID returns a new unique textual edge ID. Caller must hold the
// write lock.
func (g *Graph) nextEdgeID() string {
	g.edgeSeq++
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, g.edgeSeq, 10)

	return string(buf)
}
