// Package pathcount counts distinct minimum-weight paths between two vertices.
//
// The counter is a Dijkstra variant that carries path multiplicities along
// with distances. Frontier entries are edges (from, to, cumulative weight)
// rather than vertices, so every equal-weight arrival at a vertex is seen as
// its own pop and adds its origin's count.
//
// Complexity:
//
//   - Time:  O(E log E); each expanded vertex pushes one entry per arc.
//   - Space: O(V + E) for the tables and the lazy frontier.
//
// Notes on implementation choices:
//
//   - Count contribution is applied before the visited check. A vertex that
//     was already expanded still collects later equal-weight arrivals; only
//     re-expansion is suppressed.
//   - Early termination stops the loop once the popped weight strictly
//     exceeds the target's finalized distance. Entries are popped in
//     non-decreasing weight order, so nothing after that point can reach the
//     target at its shortest distance.
//   - All state lives in a per-call runner; a frozen graph can be queried
//     concurrently.
package pathcount

import (
	"container/heap"
	"fmt"
	"log/slog"
	"math"
	"math/big"

	"github.com/katalvlaran/pathcount/core"
)

// Count returns the number of distinct minimum-weight paths between source
// and target in g.
//
// Preconditions and validation (in order):
//  1. source and target must be non-empty (ErrEmptyVertexID).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain source and target (ErrUnknownVertex).
//
// source == target yields the single trivial path of weight zero.
//
// Errors:
//   - ErrNoPathExists if target is unreachable (or beyond MaxDistance).
//   - ErrDistanceOverflow if a cumulative weight exceeds math.MaxInt64.
func Count(g *core.Graph, source, target string, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if source == "" || target == "" {
		return nil, ErrEmptyVertexID
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := checkVertex(g, source); err != nil {
		return nil, err
	}
	if err := checkVertex(g, target); err != nil {
		return nil, err
	}

	if source == target {
		return &Result{Source: source, Target: target, Distance: 0, Paths: big.NewInt(1)}, nil
	}

	r := newRunner(g, cfg, source)
	r.target = target
	r.hasTarget = true
	if err := r.run(); err != nil {
		return nil, err
	}

	paths, ok := r.paths[target]
	if !ok {
		return nil, fmt.Errorf("%w: %s → %s", ErrNoPathExists, source, target)
	}

	return &Result{
		Source:   source,
		Target:   target,
		Distance: r.dist[target],
		Paths:    new(big.Int).Set(paths),
		Stats:    r.stats,
	}, nil
}

// Counts runs the same relaxation from source without a target, so the
// whole frontier is processed, and returns one Result per reachable vertex
// (source included, with a single path of weight zero).
//
// Errors: ErrEmptyVertexID, ErrNilGraph, ErrUnknownVertex, ErrDistanceOverflow.
func Counts(g *core.Graph, source string, opts ...Option) (map[string]*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if source == "" {
		return nil, ErrEmptyVertexID
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := checkVertex(g, source); err != nil {
		return nil, err
	}

	r := newRunner(g, cfg, source)
	if err := r.run(); err != nil {
		return nil, err
	}

	out := make(map[string]*Result, len(r.paths))
	for v, paths := range r.paths {
		res := &Result{
			Source:   source,
			Target:   v,
			Distance: r.dist[v],
			Paths:    new(big.Int).Set(paths),
			Stats:    r.stats,
		}
		if v == source {
			// Zero-weight cycles can feed back into the seed; the trivial
			// path is the only one reported for the source itself.
			res.Paths = big.NewInt(1)
		}
		out[v] = res
	}

	return out, nil
}

func checkVertex(g *core.Graph, id string) error {
	if !g.HasVertex(id) {
		return fmt.Errorf("%w: %q: %w", ErrUnknownVertex, id, core.ErrVertexNotFound)
	}

	return nil
}

// runner holds the mutable state of a single counting run.
type runner struct {
	g         *core.Graph
	options   Options
	log       *slog.Logger
	source    string
	target    string
	hasTarget bool

	dist    map[string]int64    // finalized shortest distance from source
	paths   map[string]*big.Int // shortest-path multiplicity
	visited map[string]bool     // vertices whose arcs were expanded
	fr      frontier
	seq     uint64
	stats   Stats
}

func newRunner(g *core.Graph, cfg Options, source string) *runner {
	n := g.VertexCount()

	return &runner{
		g:       g,
		options: cfg,
		log:     cfg.Logger.With(slog.String("source", source)),
		source:  source,
		dist:    make(map[string]int64, n),
		paths:   make(map[string]*big.Int, n),
		visited: make(map[string]bool, n),
		fr:      make(frontier, 0, n),
	}
}

// run seeds the frontier from the source and drains it.
func (r *runner) run() error {
	r.dist[r.source] = 0
	r.paths[r.source] = big.NewInt(1)
	r.visited[r.source] = true
	heap.Init(&r.fr)
	if err := r.expand(r.source, 0); err != nil {
		return err
	}

	return r.process()
}

// process pops entries in non-decreasing weight order until the frontier is
// empty or the early-termination rule fires.
func (r *runner) process() error {
	var e *entry
	for r.fr.Len() > 0 {
		e = heap.Pop(&r.fr).(*entry)
		r.stats.Pops++

		// 1) Every remaining entry is strictly longer than the best path to target.
		if r.hasTarget && r.options.EarlyTermination {
			if best, ok := r.dist[r.target]; ok && e.dist > best {
				r.stats.Pruned = true
				r.log.Debug("frontier pruned",
					slog.String("target", r.target),
					slog.Int64("best", best),
					slog.Int64("popped", e.dist),
					slog.Int("remaining", r.fr.Len()))
				break
			}
		}

		// 2) First sight of e.to: zero count, and this weight becomes final.
		count, ok := r.paths[e.to]
		if !ok {
			count = new(big.Int)
			r.paths[e.to] = count
		}
		best, ok := r.dist[e.to]
		if !ok {
			best = e.dist
			r.dist[e.to] = best
		}

		// 3) Another route achieving the shortest distance. Applied even when
		//    e.to was already expanded.
		if best == e.dist {
			count.Add(count, r.paths[e.from])
		}

		// 4) Suppress expansion for longer routes and already-expanded vertices.
		if best != e.dist || r.visited[e.to] {
			continue
		}

		r.log.Debug("vertex finalized",
			slog.String("vertex", e.to),
			slog.Int64("dist", e.dist))
		r.visited[e.to] = true
		if err := r.expand(e.to, e.dist); err != nil {
			return err
		}
	}

	return nil
}

// expand pushes one entry per arc leaving u, reached at cumulative weight d.
func (r *runner) expand(u string, d int64) error {
	arcs, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("pathcount: neighbors of %q: %w", u, err)
	}

	for _, a := range arcs {
		if a.Weight > math.MaxInt64-d {
			return fmt.Errorf("%w: %s→%s at %d + %d", ErrDistanceOverflow, u, a.To, d, a.Weight)
		}
		nd := d + a.Weight
		if nd > r.options.MaxDistance {
			continue
		}
		r.seq++
		heap.Push(&r.fr, &entry{from: u, to: a.To, dist: nd, seq: r.seq})
		r.stats.Pushes++
	}

	return nil
}
