// Package batch runs many shortest-path-count queries against one graph.
//
// Queries come from a YAML file:
//
//	queries:
//	  - name: city
//	    source: "1"
//	    target: "9"
//	    expect: 3        # optional
//
// Run executes them on a bounded worker pool and Report writes the outcomes
// back as YAML. A failing query is recorded in its Outcome and never stops
// the others.
package batch

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidQuery reports a query entry that cannot be executed.
var ErrInvalidQuery = errors.New("batch: invalid query")

// File is the decoded form of a query file.
type File struct {
	Queries []Query `yaml:"queries"`
}

// Query is one count request. Expect, when set, is the decimal path count
// the caller anticipates; a different answer marks the outcome as Mismatch.
type Query struct {
	Name   string `yaml:"name,omitempty"`
	Source string `yaml:"source"`
	Target string `yaml:"target"`
	Expect string `yaml:"expect,omitempty"`
}

// expected parses Expect. ok is false when no expectation is set.
func (q Query) expected() (n *big.Int, ok bool) {
	if q.Expect == "" {
		return nil, false
	}
	n, ok = new(big.Int).SetString(q.Expect, 10)
	return n, ok
}

func (q Query) validate(i int) error {
	if q.Source == "" || q.Target == "" {
		return fmt.Errorf("%w: query %d (%q): source and target are required", ErrInvalidQuery, i, q.Name)
	}
	if q.Expect != "" {
		n, ok := q.expected()
		if !ok || n.Sign() < 0 {
			return fmt.Errorf("%w: query %d (%q): expect %q is not a non-negative integer", ErrInvalidQuery, i, q.Name, q.Expect)
		}
	}
	return nil
}

// Parse decodes and validates a query file. Unnamed queries are named
// "source->target".
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("batch: parsing queries: %w", err)
	}

	for i := range f.Queries {
		q := &f.Queries[i]
		if err := q.validate(i); err != nil {
			return nil, err
		}
		if q.Name == "" {
			q.Name = q.Source + "->" + q.Target
		}
	}
	return &f, nil
}

// ReadFile opens path and parses it with Parse.
func ReadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}
	defer f.Close()

	file, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}
