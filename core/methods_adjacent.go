// File: methods_adjacent.go
// Role: Neighborhood queries (Neighbors, Degree).
// Determinism:
//   - Neighbors() returns arcs in insertion order.
// Concurrency:
//   - Read lock only; returned slices never alias internal storage.

package core

// Neighbors returns the traversal records leaving vertex id.
//
// A vertex that is known but has no edges (AddVertex only) yields an empty,
// non-nil slice, which lets callers distinguish "no edges" from "never seen".
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if id was never referenced.
//
// Complexity: O(d) to copy, where d is the number of arcs at id.
func (g *Graph) Neighbors(id string) ([]Arc, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	arcs, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]Arc, len(arcs))
	copy(out, arcs)

	return out, nil
}

// Degree returns the number of arcs leaving id. A self-loop counts twice,
// matching the two arcs it installs.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound as for Neighbors.
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	arcs, ok := g.adjacency[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(arcs), nil
}
