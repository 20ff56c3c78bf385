// Package builder generates deterministic core.Graph fixtures: paths,
// cycles, grids, complete graphs, random sparse graphs, diamond chains and
// bundles of parallel edges.
//
// Constructors are composed with BuildGraph, which applies them in order to
// a fresh graph and freezes it:
//
//	g, err := builder.BuildGraph(
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithWeightFn(builder.UniformWeightFn(1, 3))},
//	    builder.Grid(4, 4),
//	)
//
// Options:
//
//	WithSeed(seed)       – seeded *rand.Rand for RandomSparse and random weights.
//	WithWeightFn(fn)     – per-edge weight generator (default constant 1).
//	WithIDPrefix(prefix) – vertex IDs prefix+index for index-based constructors.
//
// The generators are used by the property tests of package pathcount and by
// the -generate flag of cmd/pathcount.
package builder
