// Package config resolves pathcount settings from an optional TOML file and
// PATHCOUNT_* environment variables. Precedence, lowest to highest:
// built-in defaults, the file, the environment. Command-line flags are
// applied on top by the caller.
//
// TOML format:
//
//	[log]
//	level = "debug"
//	format = "json"
//
//	[query]
//	workers = 8
//	prune = true
//
//	[neo4j]
//	uri = "neo4j://localhost:7687"
//	username = "neo4j"
//	password = "secret"
//	query = "MATCH (a)-[r:ROAD]->(b) RETURN a.id AS from, b.id AS to, r.weight AS weight"
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/pathcount/graphdb"
	"github.com/katalvlaran/pathcount/internal/logging"
)

// Config aggregates application configuration values.
type Config struct {
	Log   LogConfig   `toml:"log"`
	Query QueryConfig `toml:"query"`
	Neo4j Neo4jConfig `toml:"neo4j"`
}

// LogConfig controls structured logging settings.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // text|json
}

// QueryConfig tunes how queries are executed.
type QueryConfig struct {
	Workers int  `toml:"workers"`
	Prune   bool `toml:"prune"`
}

// Neo4jConfig describes connectivity to the graph database holding edges.
type Neo4jConfig struct {
	URI            string `toml:"uri"`
	Database       string `toml:"database"`
	Username       string `toml:"username"`
	Password       string `toml:"password"`
	Query          string `toml:"query"`
	MaxConnections int    `toml:"max_connections"`
}

const (
	envPrefix = "PATHCOUNT_"

	defaultLogLevel       = "info"
	defaultLogFormat      = "text"
	defaultWorkers        = 4
	defaultMaxConnections = 10
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log:   LogConfig{Level: defaultLogLevel, Format: defaultLogFormat},
		Query: QueryConfig{Workers: defaultWorkers, Prune: true},
		Neo4j: Neo4jConfig{Query: graphdb.DefaultQuery, MaxConnections: defaultMaxConnections},
	}
}

// Load reads path (skipped when empty) over the defaults, then applies
// environment overrides and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file %q: %w", path, err)
		}
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("parse config file %q: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("config file %q: unknown key %q", path, undecoded[0].String())
		}
	}

	cfg.Log.Level = valueOrDefault("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = valueOrDefault("LOG_FORMAT", cfg.Log.Format)

	workers, err := parseIntWithDefault("WORKERS", cfg.Query.Workers)
	if err != nil {
		return Config{}, err
	}
	cfg.Query.Workers = workers
	prune, err := parseBoolWithDefault("PRUNE", cfg.Query.Prune)
	if err != nil {
		return Config{}, err
	}
	cfg.Query.Prune = prune

	cfg.Neo4j.URI = valueOrDefault("NEO4J_URI", cfg.Neo4j.URI)
	cfg.Neo4j.Database = valueOrDefault("NEO4J_DATABASE", cfg.Neo4j.Database)
	cfg.Neo4j.Username = valueOrDefault("NEO4J_USERNAME", cfg.Neo4j.Username)
	cfg.Neo4j.Password = valueOrDefault("NEO4J_PASSWORD", cfg.Neo4j.Password)
	cfg.Neo4j.Query = valueOrDefault("NEO4J_QUERY", cfg.Neo4j.Query)
	maxConns, err := parseIntWithDefault("NEO4J_MAX_CONNECTIONS", cfg.Neo4j.MaxConnections)
	if err != nil {
		return Config{}, err
	}
	cfg.Neo4j.MaxConnections = maxConns

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	var errs []error
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if !logging.ValidFormat(c.Log.Format) {
		errs = append(errs, fmt.Errorf("log.format: unknown format %q (want text or json)", c.Log.Format))
	}
	if c.Query.Workers < 1 {
		errs = append(errs, fmt.Errorf("query.workers: must be >= 1, got %d", c.Query.Workers))
	}
	if c.Neo4j.MaxConnections < 1 {
		errs = append(errs, fmt.Errorf("neo4j.max_connections: must be >= 1, got %d", c.Neo4j.MaxConnections))
	}

	return errors.Join(errs...)
}

// Neo4jOptions converts the [neo4j] section for graphdb.NewNeo4jClient.
func (c Config) Neo4jOptions() graphdb.Options {
	return graphdb.Options{
		URI:            c.Neo4j.URI,
		Database:       c.Neo4j.Database,
		Username:       c.Neo4j.Username,
		Password:       c.Neo4j.Password,
		MaxConnections: c.Neo4j.MaxConnections,
	}
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(envPrefix + key); v != "" {
		return v
	}
	return fallback
}

func parseBoolWithDefault(key string, fallback bool) (bool, error) {
	if v := os.Getenv(envPrefix + key); v != "" {
		val, err := strconv.ParseBool(v)
		if err != nil {
			return false, fmt.Errorf("invalid %s%s value %q: %w", envPrefix, key, v, err)
		}
		return val, nil
	}
	return fallback, nil
}

func parseIntWithDefault(key string, fallback int) (int, error) {
	if v := os.Getenv(envPrefix + key); v != "" {
		val, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s%s value %q: %w", envPrefix, key, v, err)
		}
		return val, nil
	}
	return fallback, nil
}
