// SPDX-License-Identifier: MIT
// Package: pathcount/edgelist
//
// Package edgelist loads a weighted undirected graph from a plain text edge
// list, one record per line:
//
//	# from to weight
//	1 2 2
//	2 3 2
//
// Each record holds exactly three whitespace-separated integers. Blank lines
// and lines whose first non-space character is '#' are skipped. Vertex IDs
// are the canonical decimal form of the parsed integer, so "01" and "1" name
// the same vertex.
//
// A malformed record aborts loading with a *FormatError and no graph is
// returned. A successful load returns a frozen *core.Graph.
package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathcount/core"
)

// ErrBadRecord is matched by every *FormatError.
var ErrBadRecord = errors.New("edgelist: record must have 3 integers: from to weight")

// fieldsPerRecord is the number of integers on a data line.
const fieldsPerRecord = 3

// FormatError reports a line that could not be turned into an edge.
type FormatError struct {
	Line int    // 1-based line number
	Text string // raw line content
	Err  error  // underlying cause (parse error or core error), may be nil
}

func (e *FormatError) Error() string {
	msg := fmt.Sprintf("edgelist: line %d: wrong format, expected 3 integers \"from to weight\", got %q", e.Line, e.Text)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Is reports ErrBadRecord so callers can match any format problem.
func (e *FormatError) Is(target error) bool { return target == ErrBadRecord }

func (e *FormatError) Unwrap() error { return e.Err }

// Read parses an edge list from r.
func Read(r io.Reader) (*core.Graph, error) {
	g := core.NewGraph()
	sc := bufio.NewScanner(r)

	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		trimmed := strings.TrimSpace(text)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if err := addRecord(g, trimmed); err != nil {
			return nil, &FormatError{Line: line, Text: text, Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("edgelist: read: %w", err)
	}
	g.Freeze()

	return g, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("edgelist: %w", err)
	}
	defer f.Close()

	g, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// addRecord parses one data line and inserts its edge.
func addRecord(g *core.Graph, text string) error {
	fields := strings.Fields(text)
	if len(fields) != fieldsPerRecord {
		return fmt.Errorf("got %d fields", len(fields))
	}

	var nums [fieldsPerRecord]int64
	for i, f := range fields {
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return err
		}
		nums[i] = n
	}

	_, err := g.AddEdge(strconv.FormatInt(nums[0], 10), strconv.FormatInt(nums[1], 10), nums[2])

	return err
}

// Write emits g as an edge list in edge-ID order, one "from to weight" per
// line. Vertex IDs are written verbatim, so the output only round-trips
// through Read when every ID is an integer.
func Write(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(bw, "%s %s %d\n", e.From, e.To, e.Weight); err != nil {
			return fmt.Errorf("edgelist: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("edgelist: write: %w", err)
	}

	return nil
}
