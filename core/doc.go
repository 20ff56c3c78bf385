// Package core provides the weighted, undirected multigraph consumed by the
// path-counting algorithms in this module.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Undirected: AddEdge(a, b, w) installs one traversal record (Arc) a→b
//     and a second one b→a, both with weight w and the same edge ID.
//   - Multigraph: parallel edges between the same endpoints are kept as
//     distinct routes; each one contributes independently to path counts.
//   - Self-loops are accepted; a loop on v installs two arcs v→v.
//   - Non-negative integer weights: AddEdge rejects w < 0 with ErrNegativeWeight.
//   - Immutable after construction: Freeze() seals the graph, after which
//     every mutation returns ErrGraphFrozen. Loaders freeze before returning.
//
// Storage:
//
//	adjacency[vertexID] = []Arc{{To, Weight, EdgeID}, ...}   // insertion order
//	edges               = []Edge                              // catalog, ID order
//
// Vertices are created implicitly on first reference by AddEdge, or
// explicitly by AddVertex for isolated vertices. Creation is idempotent: an
// already-known vertex keeps its arcs.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - the vertex was never referenced by AddVertex/AddEdge.
//	ErrNegativeWeight - AddEdge called with weight < 0.
//	ErrGraphFrozen    - mutation attempted after Freeze.
//
// Concurrency:
//
// A single sync.RWMutex guards the graph. Any number of goroutines may call
// the read methods (Neighbors, HasVertex, Vertices, Edges, ...) at the same
// time; a frozen graph can therefore be shared by concurrent queries that each
// keep their own working state.
//
// Example:
//
//	g := core.NewGraph()
//	_, _ = g.AddEdge("1", "2", 2)
//	_, _ = g.AddEdge("2", "3", 2)
//	g.Freeze()
//	arcs, _ := g.Neighbors("2") // [{1 2 e1} {3 2 e2}]
package core
