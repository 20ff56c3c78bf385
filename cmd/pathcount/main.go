package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/pathcount/batch"
	"github.com/katalvlaran/pathcount/builder"
	"github.com/katalvlaran/pathcount/core"
	"github.com/katalvlaran/pathcount/edgelist"
	"github.com/katalvlaran/pathcount/graphdb"
	"github.com/katalvlaran/pathcount/internal/cli"
	"github.com/katalvlaran/pathcount/internal/config"
	"github.com/katalvlaran/pathcount/internal/logging"
	"github.com/katalvlaran/pathcount/pathcount"
)

// newGraphClient opens the database behind -neo4j. Tests replace it.
var newGraphClient = graphdb.NewNeo4jClient

// logOutput receives structured logs. Tests replace it.
var logOutput io.Writer = os.Stderr

// main is the entrypoint for the pathcount command.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Stdout, os.Args[1:])
	stop()

	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitFailure)
	}
}

// run encapsulates the command logic for easier testing and error handling.
func run(ctx context.Context, outW io.Writer, args []string) error {
	opts, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return &cli.ExitError{Code: cli.ExitUsage, Message: err.Error()}
	}
	applyFlags(&cfg, opts)

	logger := logging.New(cfg.Log.Format, cfg.Log.Level, logOutput)

	g, err := loadGraph(ctx, opts, cfg, logger)
	if err != nil {
		return err
	}
	logger.Debug("graph loaded", "vertices", g.VertexCount(), "edges", g.EdgeCount())

	countOpts := []pathcount.Option{pathcount.WithLogger(logger)}
	if !cfg.Query.Prune {
		countOpts = append(countOpts, pathcount.WithoutEarlyTermination())
	}

	if opts.QueriesPath != "" {
		return runBatch(ctx, outW, g, opts.QueriesPath, cfg, countOpts, logger)
	}

	res, err := pathcount.Count(g, opts.From, opts.To, countOpts...)
	if errors.Is(err, pathcount.ErrNoPathExists) {
		fmt.Fprintln(outW, "no path")
		return &cli.ExitError{Code: cli.ExitFailure, Message: err.Error()}
	}
	if err != nil {
		return &cli.ExitError{Code: cli.ExitFailure, Message: err.Error()}
	}
	logger.Debug("query done", "pops", res.Stats.Pops, "pushes", res.Stats.Pushes, "pruned", res.Stats.Pruned)
	fmt.Fprintf(outW, "paths=%s distance=%d\n", res.Paths, res.Distance)

	return nil
}

// applyFlags lets explicitly given flags win over file and environment.
func applyFlags(cfg *config.Config, opts *cli.Options) {
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.LogFormat != "" {
		cfg.Log.Format = opts.LogFormat
	}
	if opts.Workers > 0 {
		cfg.Query.Workers = opts.Workers
	}
	if opts.NoPrune {
		cfg.Query.Prune = false
	}
}

func loadGraph(ctx context.Context, opts *cli.Options, cfg config.Config, logger *slog.Logger) (*core.Graph, error) {
	switch {
	case opts.GraphPath != "":
		g, err := edgelist.ReadFile(opts.GraphPath)
		if err != nil {
			return nil, &cli.ExitError{Code: cli.ExitFailure, Message: err.Error()}
		}
		return g, nil

	case opts.Generate != nil:
		g, err := builder.BuildGraph(nil, opts.Generate)
		if err != nil {
			return nil, &cli.ExitError{Code: cli.ExitUsage, Message: fmt.Sprintf("-generate %s: %v", opts.GenerateArg, err)}
		}
		return g, nil

	default:
		client, err := newGraphClient(ctx, cfg.Neo4jOptions())
		if err != nil {
			return nil, &cli.ExitError{Code: cli.ExitFailure, Message: err.Error()}
		}
		defer func() {
			if err := client.Close(ctx); err != nil {
				logger.Warn("closing graph database", "error", err)
			}
		}()
		logger.Debug("loading graph from neo4j", "uri", cfg.Neo4j.URI, "database", cfg.Neo4j.Database)

		g, err := graphdb.Load(ctx, client, cfg.Neo4j.Query)
		if err != nil {
			return nil, &cli.ExitError{Code: cli.ExitFailure, Message: err.Error()}
		}
		return g, nil
	}
}

func runBatch(ctx context.Context, outW io.Writer, g *core.Graph, path string, cfg config.Config, countOpts []pathcount.Option, logger *slog.Logger) error {
	file, err := batch.ReadFile(path)
	if err != nil {
		return &cli.ExitError{Code: cli.ExitUsage, Message: err.Error()}
	}

	outcomes := batch.Run(ctx, g, file.Queries, batch.Options{
		Workers: cfg.Query.Workers,
		Count:   countOpts,
		Logger:  logger,
	})
	if err := batch.Report(outW, outcomes); err != nil {
		return err
	}

	sum := batch.Summarize(outcomes)
	logger.Info("batch finished",
		"total", sum.Total, "ok", sum.OK, "no_path", sum.NoPath, "failed", sum.Failed, "mismatched", sum.Mismatched)
	if sum.Failed > 0 || sum.Mismatched > 0 {
		return &cli.ExitError{
			Code:    cli.ExitFailure,
			Message: fmt.Sprintf("%d of %d queries failed, %d mismatched", sum.Failed, sum.Total, sum.Mismatched),
		}
	}

	return nil
}
