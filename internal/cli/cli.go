package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathcount/builder"
	"github.com/katalvlaran/pathcount/internal/logging"
)

// Exit codes used by the pathcount command.
const (
	ExitFailure = 1 // query failed, no path, or mismatched expectations
	ExitUsage   = 2 // bad flags or configuration
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: ExitUsage, Message: fmt.Sprintf(format, args...)}
}

// Options is the parsed command line. Zero values mean "not given on the
// command line" so configuration file and environment values survive.
type Options struct {
	ConfigPath  string
	GraphPath   string
	Generate    builder.Constructor
	GenerateArg string
	UseNeo4j    bool

	From        string
	To          string
	QueriesPath string

	NoPrune   bool
	Workers   int
	LogLevel  string
	LogFormat string
}

// Parse processes command-line arguments. It returns the options, a boolean
// indicating the program should exit cleanly (help was requested), or an
// *ExitError.
func Parse(args []string, output io.Writer) (*Options, bool, error) {
	fs := flag.NewFlagSet("pathcount", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
pathcount - count the distinct minimum-weight paths between two vertices
of a weighted undirected graph.

Usage:
  pathcount [options] -graph FILE -from A -to B
  pathcount [options] -generate grid:5x5 -from 0,0 -to 4,4
  pathcount [options] -neo4j -queries QUERIES.yaml

Exactly one graph source (-graph, -generate, -neo4j) is required, together
with either -from/-to or -queries.

Options:
`)
		fs.PrintDefaults()
	}

	var o Options
	fs.StringVar(&o.ConfigPath, "config", "", "Path to a TOML configuration file.")
	fs.StringVar(&o.GraphPath, "graph", "", "Path to an edge list file (\"from to weight\" per line).")
	fs.StringVar(&o.GenerateArg, "generate", "", "Generate a unit-weight graph: grid:RxC, cycle:N, path:N or diamonds:K.")
	fs.BoolVar(&o.UseNeo4j, "neo4j", false, "Load the graph from the configured Neo4j database.")
	fs.StringVar(&o.From, "from", "", "Source vertex ID.")
	fs.StringVar(&o.To, "to", "", "Target vertex ID.")
	fs.StringVar(&o.QueriesPath, "queries", "", "Path to a YAML file of queries to run as a batch.")
	fs.BoolVar(&o.NoPrune, "no-prune", false, "Disable early termination once the target distance is final.")
	fs.IntVar(&o.Workers, "workers", 0, "Concurrent workers for -queries (default from config).")
	fs.StringVar(&o.LogLevel, "log-level", "", "Logging level: 'debug', 'info', 'warn' or 'error'.")
	fs.StringVar(&o.LogFormat, "log-format", "", "Log output format: 'text' or 'json'.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	if fs.NArg() > 0 {
		return nil, false, usageError("unexpected argument %q", fs.Arg(0))
	}

	sources := 0
	for _, set := range []bool{o.GraphPath != "", o.GenerateArg != "", o.UseNeo4j} {
		if set {
			sources++
		}
	}
	switch {
	case sources == 0:
		fs.Usage()
		return nil, false, usageError("no graph source: use -graph, -generate or -neo4j")
	case sources > 1:
		return nil, false, usageError("-graph, -generate and -neo4j are mutually exclusive")
	}

	single := o.From != "" || o.To != ""
	switch {
	case single && o.QueriesPath != "":
		return nil, false, usageError("-queries cannot be combined with -from/-to")
	case single && (o.From == "" || o.To == ""):
		return nil, false, usageError("both -from and -to are required")
	case !single && o.QueriesPath == "":
		return nil, false, usageError("nothing to count: use -from/-to or -queries")
	}

	if o.Workers < 0 {
		return nil, false, usageError("invalid workers: %d", o.Workers)
	}
	if o.LogFormat != "" && !logging.ValidFormat(o.LogFormat) {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}
	if o.LogLevel != "" {
		if _, err := logging.ParseLevel(o.LogLevel); err != nil {
			return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
		}
	}

	if o.GenerateArg != "" {
		con, err := ParseGenerator(o.GenerateArg)
		if err != nil {
			return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
		}
		o.Generate = con
	}

	return &o, false, nil
}

// ParseGenerator turns "kind:size" into a builder constructor with unit
// weights. Supported kinds: grid (RxC), cycle, path and diamonds.
func ParseGenerator(arg string) (builder.Constructor, error) {
	kind, size, ok := strings.Cut(arg, ":")
	if !ok || size == "" {
		return nil, fmt.Errorf("invalid -generate %q: want kind:size", arg)
	}

	if kind == "grid" {
		rs, cs, ok := strings.Cut(size, "x")
		if !ok {
			return nil, fmt.Errorf("invalid -generate %q: grid size must be RxC", arg)
		}
		rows, err1 := strconv.Atoi(rs)
		cols, err2 := strconv.Atoi(cs)
		if err := errors.Join(err1, err2); err != nil {
			return nil, fmt.Errorf("invalid -generate %q: %w", arg, err)
		}
		return builder.Grid(rows, cols), nil
	}

	n, err := strconv.Atoi(size)
	if err != nil {
		return nil, fmt.Errorf("invalid -generate %q: %w", arg, err)
	}
	switch kind {
	case "cycle":
		return builder.Cycle(n), nil
	case "path":
		return builder.Path(n), nil
	case "diamonds":
		return builder.Diamonds(n), nil
	default:
		return nil, fmt.Errorf("invalid -generate %q: unknown kind %q", arg, kind)
	}
}
