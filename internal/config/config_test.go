package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathcount/graphdb"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pathcount.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, graphdb.DefaultQuery, cfg.Neo4j.Query)
	assert.True(t, cfg.Query.Prune)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
[log]
level = "debug"
format = "json"

[query]
workers = 2
prune = false

[neo4j]
uri = "neo4j://db:7687"
username = "reader"
max_connections = 3
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	want := Default()
	want.Log = LogConfig{Level: "debug", Format: "json"}
	want.Query = QueryConfig{Workers: 2, Prune: false}
	want.Neo4j.URI = "neo4j://db:7687"
	want.Neo4j.Username = "reader"
	want.Neo4j.MaxConnections = 3
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "[query]\nworkers = 2\n\n[neo4j]\nuri = \"neo4j://file:7687\"\n")
	t.Setenv("PATHCOUNT_WORKERS", "16")
	t.Setenv("PATHCOUNT_PRUNE", "false")
	t.Setenv("PATHCOUNT_NEO4J_URI", "neo4j://env:7687")
	t.Setenv("PATHCOUNT_NEO4J_PASSWORD", "s3cret")
	t.Setenv("PATHCOUNT_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Query.Workers)
	assert.False(t, cfg.Query.Prune)
	assert.Equal(t, "neo4j://env:7687", cfg.Neo4j.URI)
	assert.Equal(t, "s3cret", cfg.Neo4j.Password)
	assert.Equal(t, "warn", cfg.Log.Level)

	opts := cfg.Neo4jOptions()
	assert.Equal(t, "neo4j://env:7687", opts.URI)
	assert.Equal(t, "s3cret", opts.Password)
	assert.Equal(t, defaultMaxConnections, opts.MaxConnections)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		assert.ErrorContains(t, err, "read config file")
	})
	t.Run("bad toml", func(t *testing.T) {
		_, err := Load(writeFile(t, "[query\nworkers = 1\n"))
		assert.ErrorContains(t, err, "parse config file")
	})
	t.Run("unknown key", func(t *testing.T) {
		_, err := Load(writeFile(t, "[query]\nthreads = 1\n"))
		assert.ErrorContains(t, err, "query.threads")
	})
	t.Run("bad env int", func(t *testing.T) {
		t.Setenv("PATHCOUNT_WORKERS", "many")
		_, err := Load("")
		assert.ErrorContains(t, err, "PATHCOUNT_WORKERS")
	})
	t.Run("bad env bool", func(t *testing.T) {
		t.Setenv("PATHCOUNT_PRUNE", "sometimes")
		_, err := Load("")
		assert.ErrorContains(t, err, "PATHCOUNT_PRUNE")
	})
	t.Run("validation", func(t *testing.T) {
		_, err := Load(writeFile(t, "[log]\nformat = \"xml\"\n\n[query]\nworkers = 0\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "log.format")
		assert.Contains(t, err.Error(), "query.workers")
	})
}
