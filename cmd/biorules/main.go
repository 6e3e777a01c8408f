// cmd/biorules/main.go
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"biorules/internal/adapters/output"
	"biorules/internal/adapters/pixi"
	"biorules/internal/adapters/recipe"
	"biorules/internal/core/domain"
	"biorules/internal/core/ports"
	"biorules/internal/core/usecases"
	"biorules/internal/platform/config"
	"biorules/internal/platform/errors"
	"biorules/internal/platform/logx"
	"biorules/internal/platform/resilience"
	"biorules/internal/platform/ui"
)

var (
	// Set with -ldflags at build time
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// exitError carries the process exit code of a failed run.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command line and returns the exit code: 0 on success,
// 1 when the documents could not be written, 2 on bad usage or input.
func execute(args []string, stdout, stderr io.Writer) int {
	ctx, cancel := rootContextWithSignals()
	defer cancel()

	cmd := newRootCommand(stdout)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		var ee *exitError
		if errors.As(err, &ee) {
			return ee.code
		}
		return 2
	}
	return 0
}

func newRootCommand(stdout io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           config.Usage,
		Short:         config.Short,
		Long:          config.Long,
		Example:       config.Example,
		Version:       version,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags(), args)
			if err != nil {
				return &exitError{code: 2, err: err}
			}
			return run(cmd.Context(), cfg, stdout)
		},
	}
	cmd.SetVersionTemplate(config.VersionString(version, commit, date))
	config.RegisterFlags(cmd.Flags())
	return cmd
}

func run(ctx context.Context, cfg config.Config, stdout io.Writer) error {
	logger := logx.NewWithLevel(logx.ParseLevel(cfg.LogLevel))
	logger.Debug("configuration loaded", "config", cfg.ToJSON())

	exporter, err := output.New(cfg.Output.Format)
	if err != nil {
		return &exitError{code: 2, err: err}
	}

	// 1. Select the chunk
	names, err := recipe.ListRecipes(cfg.RecipesDir)
	if err != nil {
		return &exitError{code: 2, err: err}
	}

	start, end := usecases.ChunkRange(len(names), cfg.Chunk, cfg.TotalChunks)
	if start >= end {
		logger.Info("chunk is empty, nothing to do",
			"chunk", cfg.Chunk,
			"total_chunks", cfg.TotalChunks,
			"directories", len(names),
		)
		return nil
	}
	fmt.Fprintf(stdout, "Processing chunk %d: %d to %d of %d directories\n", cfg.Chunk, start, end, len(names))

	recipes, missing := recipe.Discover(cfg.RecipesDir, names[start:end])

	// 2. Wire the pipeline
	manager := pixi.NewManager(pixi.Config{
		Binary:         cfg.Pixi.Binary,
		WorkDir:        cfg.Pixi.WorkDir,
		Channels:       cfg.Pixi.Channels,
		Platform:       cfg.Pixi.Platform,
		InstallTimeout: cfg.Pixi.InstallTimeout,
	}, nil, logger)

	pipeline := usecases.NewPipeline(usecases.PipelineOptions{
		Reader:   recipe.NewFileReader(),
		Renderer: recipe.NewRenderer(),
		Parser:   recipe.NewParser(),
		Prober: usecases.NewProber(usecases.ProberOptions{
			Environments:   resilience.NewRetryingManager(manager, cfg.Pixi.Retries, cfg.Pixi.RetryBackoff, 2.0, logger),
			Logger:         logger,
			CommandTimeout: cfg.Timeout,
			PackageTimeout: cfg.PackageTimeout,
		}),
		Logger: logger,
	})

	var stream *output.StreamingWriter
	if cfg.Output.Stream {
		stream, err = output.NewStreamingWriter(cfg.OutputDir, cfg.Output.Prefix, cfg.Chunk, logger)
		if err != nil {
			return &exitError{code: 1, err: err}
		}
		defer stream.Close()
	}

	presenter := ui.New(ui.ParseUIMode(cfg.UI))
	defer presenter.Close()

	presenter.Start(ui.RunInfo{
		Chunk:       cfg.Chunk,
		TotalChunks: cfg.TotalChunks,
		Start:       start,
		End:         end,
		Total:       len(names),
		Recipes:     len(recipes),
		Missing:     len(missing),
		Workers:     cfg.Workers,
		Timeout:     cfg.Timeout,
		Version:     version,
	})

	classifier := usecases.NewClassifier(usecases.ClassifierOptions{
		Pipeline: pipeline,
		Logger:   logger,
		Workers:  cfg.Workers,
		Progress: func(done, total int, o domain.Outcome) {
			presenter.RecipeDone(ui.RecipeUpdate{
				Name:   o.Recipe,
				Kind:   o.Kind.String(),
				Status: ui.StatusForKind(o.Kind.String()),
				Done:   done,
				Total:  total,
			})
			if stream != nil {
				if err := stream.WriteOutcome(o); err != nil {
					logger.Warn("failed to stream outcome", "recipe", o.Recipe, "error", err.Error())
				}
			}
		},
	})

	// 3. Classify and write
	report := classifier.Classify(ctx, recipes)
	report.Metadata.Chunk = cfg.Chunk
	report.Metadata.TotalChunks = cfg.TotalChunks
	report.Metadata.Start = start
	report.Metadata.End = end
	report.Metadata.Total = len(names)
	report.Metadata.Version = version
	for _, id := range missing {
		report.AddMissing(id)
	}

	files, err := exporter.Export(report, ports.ExportOptions{
		OutputDir: cfg.OutputDir,
		Prefix:    cfg.Output.Prefix,
		Chunk:     cfg.Chunk,
	})
	if err != nil {
		logger.Err(err, "phase", "output")
		return &exitError{code: 1, err: errors.Wrap(err, "writing output documents")}
	}

	if stream != nil {
		if err := stream.Close(); err != nil {
			logger.Warn("failed to close outcome stream", "error", err.Error())
		}
		files = append(files, stream.Path())
	}

	counts := report.Counts()
	presenter.Finish(ui.RunStats{
		Duration:    report.Metadata.Duration,
		Processed:   counts.Processed,
		Executable:  counts.Executable,
		Rules:       counts.Rules,
		Importable:  counts.Importable,
		Ambiguous:   counts.Ambiguous,
		Errors:      counts.Errors,
		Warnings:    counts.Warnings,
		MissingMeta: counts.MissingMeta,
		Files:       files,
	})

	logger.Info("chunk finished",
		"chunk", cfg.Chunk,
		"elapsed_ms", report.Metadata.Duration.Milliseconds(),
		"rules", counts.Rules,
		"errors", counts.Errors,
		"warnings", counts.Warnings,
	)

	if ctx.Err() != nil {
		return &exitError{code: 1, err: errors.Wrap(ctx.Err(), "run interrupted")}
	}
	return nil
}

// rootContextWithSignals returns a context cancelled on SIGINT or SIGTERM.
func rootContextWithSignals() (context.Context, context.CancelFunc) {
	base, baseCancel := context.WithCancel(context.Background())

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-ch:
			baseCancel()
		case <-base.Done():
		}
	}()

	cleanup := func() {
		signal.Stop(ch)
		baseCancel()
	}
	return base, cleanup
}
