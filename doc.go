// Package pathcount answers one question about weighted undirected graphs:
// how many distinct minimum-weight paths connect two vertices?
//
// 🚀 What is in the box?
//
//	A small, thread-safe library plus a command-line tool:
//		• Core primitives: vertices, weighted undirected edges, parallel edges and self-loops
//		• Counting: a Dijkstra-style search that sums multiplicities of equal-weight arrivals
//		• Unbounded counts: results are *big.Int, so 2^k paths never wrap
//		• Sources: edge-list files, Neo4j/Cypher queries, deterministic generators
//		• Batches: YAML query files answered on a bounded worker pool
//
// ✨ Why counts are exact
//
//   - Every frontier entry remembers the vertex it came from, so an
//     equal-weight arrival contributes its count even after the vertex was
//     expanded.
//   - Parallel edges are separate routes and multiply the count.
//   - Early termination stops as soon as the target distance is final;
//     it never changes the answer.
//
// Layout:
//
//	core/       - Graph, Arc, Edge; thread-safe construction, frozen reads
//	pathcount/  - Count and Counts, options, the frontier
//	edgelist/   - "from to weight" text loader
//	graphdb/    - Neo4j client and Cypher loader
//	builder/    - Path, Cycle, Grid, Complete, RandomSparse, Diamonds, Parallel
//	batch/      - YAML query files, concurrent runner, YAML report
//	cmd/pathcount - the CLI
//
// Quick ASCII example:
//
//	    A─1─B
//	    │   │
//	    1   1
//	    │   │
//	    C─1─D
//
//	count(A, D) == 2 at distance 2.
//
//	go install github.com/katalvlaran/pathcount/cmd/pathcount@latest
package pathcount
