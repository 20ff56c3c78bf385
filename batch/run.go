package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathcount/core"
	"github.com/katalvlaran/pathcount/pathcount"
)

// Options controls Run. The zero value uses GOMAXPROCS workers, the default
// counter options and no logging.
type Options struct {
	Workers int
	Count   []pathcount.Option
	Logger  *slog.Logger
}

// Outcome is the answer to one Query. Exactly one of Result and Err is set.
type Outcome struct {
	Query    Query
	Result   *pathcount.Result
	Err      error
	Mismatch bool
}

// Run answers every query against g and returns the outcomes in query order.
// The graph must not be mutated while Run is in progress; freeze it first.
// When ctx is canceled, queries that have not started get ctx.Err().
func Run(ctx context.Context, g *core.Graph, queries []Query, opts Options) []Outcome {
	workers := opts.Workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	out := make([]Outcome, len(queries))
	var eg errgroup.Group
	eg.SetLimit(workers)

	for i, q := range queries {
		out[i].Query = q
		i, q := i, q // per-iteration copies (go 1.21 loop semantics)
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				out[i].Err = err
				return nil
			}
			res, err := pathcount.Count(g, q.Source, q.Target, opts.Count...)
			if err != nil {
				out[i].Err = err
				log.Debug("query failed", "name", q.Name, "error", err)
				return nil
			}
			out[i].Result = res
			if want, ok := q.expected(); ok && want.Cmp(res.Paths) != 0 {
				out[i].Mismatch = true
				log.Warn("unexpected path count", "name", q.Name, "want", want.String(), "got", res.Paths.String())
			}
			log.Debug("query done", "name", q.Name, "paths", res.Paths.String(), "distance", res.Distance)
			return nil
		})
	}
	_ = eg.Wait()

	return out
}

// Summary tallies a set of outcomes.
type Summary struct {
	Total      int
	OK         int
	NoPath     int
	Failed     int
	Mismatched int
}

// Summarize counts outcomes by kind. A query with no path is tallied under
// NoPath rather than Failed; a mismatch is also counted as OK.
func Summarize(outcomes []Outcome) Summary {
	s := Summary{Total: len(outcomes)}
	for _, o := range outcomes {
		switch {
		case o.Err == nil:
			s.OK++
		case errors.Is(o.Err, pathcount.ErrNoPathExists):
			s.NoPath++
		default:
			s.Failed++
		}
		if o.Mismatch {
			s.Mismatched++
		}
	}
	return s
}

type reportEntry struct {
	Name     string `yaml:"name"`
	Source   string `yaml:"source"`
	Target   string `yaml:"target"`
	Paths    string `yaml:"paths,omitempty"`
	Distance *int64 `yaml:"distance,omitempty"`
	Expect   string `yaml:"expect,omitempty"`
	Mismatch bool   `yaml:"mismatch,omitempty"`
	Error    string `yaml:"error,omitempty"`
}

type report struct {
	Results []reportEntry `yaml:"results"`
}

// Report writes outcomes to w as a YAML document with a "results" list.
// Path counts are written as decimal strings so they survive any size.
func Report(w io.Writer, outcomes []Outcome) error {
	rep := report{Results: make([]reportEntry, 0, len(outcomes))}
	for _, o := range outcomes {
		e := reportEntry{
			Name:     o.Query.Name,
			Source:   o.Query.Source,
			Target:   o.Query.Target,
			Expect:   o.Query.Expect,
			Mismatch: o.Mismatch,
		}
		if o.Err != nil {
			e.Error = o.Err.Error()
		} else if o.Result != nil {
			d := o.Result.Distance
			e.Paths = o.Result.Paths.String()
			e.Distance = &d
		}
		rep.Results = append(rep.Results, e)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("batch: encoding report: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("batch: encoding report: %w", err)
	}
	return nil
}
