// Package graphdb loads pathcount graphs from a Cypher-speaking graph
// database (Neo4j, or any Bolt-compatible endpoint such as Neptune).
//
// A query must return one row per undirected edge with the columns
// "from", "to" and "weight". Vertex IDs may be integers or strings; weights
// must be non-negative integers. See DefaultQuery.
package graphdb

import (
	"context"
	"errors"
)

// Client is the minimal read contract Load needs from a graph database.
type Client interface {
	Read(ctx context.Context, cypher string, params map[string]any) ([]Record, error)
	Close(ctx context.Context) error
}

// Record groups the key-value pairs of one result row.
type Record map[string]any

// Options configures a Neo4j client.
type Options struct {
	URI            string
	Database       string
	Username       string
	Password       string
	MaxConnections int
}

var (
	// ErrMissingURI indicates the database URI is not provided.
	ErrMissingURI = errors.New("graphdb: URI is required")

	// ErrBadRecord indicates a result row that cannot be turned into an edge.
	ErrBadRecord = errors.New("graphdb: bad edge record")
)
