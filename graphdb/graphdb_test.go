package graphdb_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathcount/core"
	"github.com/katalvlaran/pathcount/graphdb"
	"github.com/katalvlaran/pathcount/pathcount"
)

func edge(from, to, w any) graphdb.Record {
	return graphdb.Record{graphdb.KeyFrom: from, graphdb.KeyTo: to, graphdb.KeyWeight: w}
}

// cityRecords is the reference network as a Bolt driver would return it.
func cityRecords() []graphdb.Record {
	triples := [][3]int64{
		{1, 2, 2}, {2, 3, 2}, {2, 4, 1}, {3, 5, 2}, {4, 6, 5},
		{5, 7, 2}, {5, 8, 3}, {7, 8, 1}, {6, 9, 2}, {8, 9, 1},
	}
	out := make([]graphdb.Record, 0, len(triples))
	for _, t := range triples {
		out = append(out, edge(t[0], t[1], t[2]))
	}
	return out
}

func TestLoad_CountsPaths(t *testing.T) {
	mem := graphdb.NewMemoryClient(cityRecords()...)
	g, err := graphdb.Load(context.Background(), mem, "")
	require.NoError(t, err)
	assert.True(t, g.Frozen())
	assert.Equal(t, 9, g.VertexCount())

	res, err := pathcount.Count(g, "1", "9")
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Paths.Int64())

	calls := mem.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, graphdb.DefaultQuery, calls[0].Query)
}

func TestLoad_CustomQueryAndMixedIDs(t *testing.T) {
	const q = "MATCH (a:City)-[r:ROAD]->(b:City) RETURN a.name AS from, b.name AS to, r.km AS weight"
	mem := graphdb.NewMemoryClient(
		edge("Lyon", "Paris", int64(4)),
		edge("Lyon", 7, 2),
		edge(int32(7), "Paris", int64(2)),
	)
	g, err := graphdb.Load(context.Background(), mem, q)
	require.NoError(t, err)

	want := []core.Edge{
		{ID: "e1", From: "Lyon", To: "Paris", Weight: 4},
		{ID: "e2", From: "Lyon", To: "7", Weight: 2},
		{ID: "e3", From: "7", To: "Paris", Weight: 2},
	}
	if diff := cmp.Diff(want, g.Edges()); diff != "" {
		t.Errorf("edges mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, q, mem.Calls()[0].Query)

	res, err := pathcount.Count(g, "Lyon", "Paris")
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Paths.Int64())
}

func TestLoad_BadRecords(t *testing.T) {
	cases := []struct {
		name string
		rec  graphdb.Record
		msg  string
	}{
		{"missing from", graphdb.Record{graphdb.KeyTo: "b", graphdb.KeyWeight: int64(1)}, `missing "from"`},
		{"nil to", edge("a", nil, int64(1)), `missing "to"`},
		{"empty id", edge("", "b", int64(1)), `empty "from"`},
		{"float id", edge(1.5, "b", int64(1)), "unsupported type float64"},
		{"float weight", edge("a", "b", 1.0), "must be an integer"},
		{"missing weight", graphdb.Record{graphdb.KeyFrom: "a", graphdb.KeyTo: "b"}, `missing "weight"`},
		{"negative weight", edge("a", "b", int64(-2)), "negative"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mem := graphdb.NewMemoryClient(edge("x", "y", int64(1)), tc.rec)
			g, err := graphdb.Load(context.Background(), mem, "")
			require.ErrorIs(t, err, graphdb.ErrBadRecord)
			assert.Nil(t, g)
			assert.Contains(t, err.Error(), "record 1")
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestLoad_ReadError(t *testing.T) {
	boom := errors.New("connection reset")
	mem := graphdb.NewMemoryClient().WithError(boom)
	_, err := graphdb.Load(context.Background(), mem, "")
	require.ErrorIs(t, err, boom)
}

func TestLoad_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := graphdb.Load(ctx, graphdb.NewMemoryClient(cityRecords()...), "")
	require.ErrorIs(t, err, context.Canceled)
}

func TestMemoryClient_IsolatesRecords(t *testing.T) {
	mem := graphdb.NewMemoryClient(edge("a", "b", int64(1)))
	rows, err := mem.Read(context.Background(), "q", map[string]any{"k": 1})
	require.NoError(t, err)
	rows[0][graphdb.KeyFrom] = "mutated"

	again, err := mem.Read(context.Background(), "q", nil)
	require.NoError(t, err)
	assert.Equal(t, "a", again[0][graphdb.KeyFrom])

	require.NoError(t, mem.Close(context.Background()))
	assert.True(t, mem.Closed())
	assert.Equal(t, map[string]any{"k": 1}, mem.Calls()[0].Params)
}

func TestNewNeo4jClient_MissingURI(t *testing.T) {
	_, err := graphdb.NewNeo4jClient(context.Background(), graphdb.Options{})
	require.ErrorIs(t, err, graphdb.ErrMissingURI)
}
