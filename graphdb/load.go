package graphdb

import (
	"context"
	"fmt"
	"strconv"

	"github.com/katalvlaran/pathcount/core"
)

// DefaultQuery returns every relationship as an undirected weighted edge,
// keyed by the "id" property of its endpoints.
const DefaultQuery = "MATCH (a)-[r]->(b) RETURN a.id AS from, b.id AS to, r.weight AS weight"

// Record keys read by Load.
const (
	KeyFrom   = "from"
	KeyTo     = "to"
	KeyWeight = "weight"
)

// Load runs query (DefaultQuery when empty) through client and builds a
// frozen graph from the rows. Any unusable row aborts the load with an
// error matching ErrBadRecord that names the row index; no graph is returned.
func Load(ctx context.Context, client Client, query string) (*core.Graph, error) {
	if query == "" {
		query = DefaultQuery
	}

	records, err := client.Read(ctx, query, nil)
	if err != nil {
		return nil, fmt.Errorf("graphdb: read edges: %w", err)
	}

	g := core.NewGraph(core.WithVertexCapacity(len(records)))
	for i, rec := range records {
		from, err := vertexID(rec, KeyFrom)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %w", ErrBadRecord, i, err)
		}
		to, err := vertexID(rec, KeyTo)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %w", ErrBadRecord, i, err)
		}
		w, err := weight(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %w", ErrBadRecord, i, err)
		}
		if _, err := g.AddEdge(from, to, w); err != nil {
			return nil, fmt.Errorf("%w: record %d: %w", ErrBadRecord, i, err)
		}
	}
	g.Freeze()

	return g, nil
}

// vertexID accepts Bolt integers and strings.
func vertexID(rec Record, key string) (string, error) {
	v, ok := rec[key]
	if !ok || v == nil {
		return "", fmt.Errorf("missing %q", key)
	}
	switch id := v.(type) {
	case string:
		if id == "" {
			return "", fmt.Errorf("empty %q", key)
		}
		return id, nil
	case int64:
		return strconv.FormatInt(id, 10), nil
	case int:
		return strconv.Itoa(id), nil
	case int32:
		return strconv.FormatInt(int64(id), 10), nil
	default:
		return "", fmt.Errorf("%q has unsupported type %T", key, v)
	}
}

func weight(rec Record) (int64, error) {
	v, ok := rec[KeyWeight]
	if !ok || v == nil {
		return 0, fmt.Errorf("missing %q", KeyWeight)
	}
	switch w := v.(type) {
	case int64:
		return w, nil
	case int:
		return int64(w), nil
	case int32:
		return int64(w), nil
	default:
		return 0, fmt.Errorf("%q must be an integer, got %T", KeyWeight, v)
	}
}
