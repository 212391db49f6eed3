package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rickgao/treasury-testdata/internal/config"
	"github.com/rickgao/treasury-testdata/internal/database"
	"github.com/rickgao/treasury-testdata/internal/generator"
	"github.com/rickgao/treasury-testdata/internal/model"
	"github.com/rickgao/treasury-testdata/internal/refdata"
	"github.com/rickgao/treasury-testdata/internal/version"
	"github.com/rickgao/treasury-testdata/internal/writer"
)

func main() {
	configPath := flag.String("config", "", "path to config file (defaults only if empty)")
	outDir := flag.String("out", "", "output directory (overrides output.dir)")
	seed := flag.Uint64("seed", 0, "random seed (overrides generator.seed; 0 keeps config)")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	// Set up structured logging
	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "invalid -log-level %q: %v\n", *logLevel, err)
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	logger.Info("starting generator", append(version.Attrs(), "config", *configPath)...)

	if envPath, err := config.LoadEnvFiles(".env", "../../.env"); err != nil {
		logger.Error("failed to load env file", "error", err)
		os.Exit(1)
	} else if envPath != "" {
		logger.Info("loaded env file", "path", envPath)
	}

	// Load configuration
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *outDir != "" {
		cfg.Output.Dir = *outDir
	}
	if *seed != 0 {
		cfg.Generator.Seed = *seed
	}

	// Create context with cancellation
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("generation failed", "error", err)
		os.Exit(1)
	}
}

// run generates every dataset described by cfg and writes it to the
// configured sinks.
func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	start := time.Now()
	runID := model.NewRunID()
	logger = logger.With("run_id", runID)

	dir, err := resolveOutputDir(cfg.Output.Dir)
	if err != nil {
		return fmt.Errorf("resolve output directory: %w", err)
	}

	genCfg := generator.Config{
		CUSIPs: cfg.Generator.CUSIPs,
		Counts: generator.Counts{
			Prices:     cfg.Generator.Counts.Prices,
			Trades:     cfg.Generator.Counts.Trades,
			MarketData: cfg.Generator.Counts.MarketData,
			Inquiries:  cfg.Generator.Counts.Inquiries,
		},
		PriceMin: cfg.Generator.PriceMin,
		PriceMax: cfg.Generator.PriceMax,
		Seed:     cfg.Generator.Seed,
	}
	gen, err := generator.New(genCfg, logger)
	if err != nil {
		return fmt.Errorf("create generator: %w", err)
	}

	logger.Info("configuration loaded",
		"output_dir", dir,
		"sinks", cfg.Output.Sinks,
		"instruments", instrumentNames(cfg.Generator.CUSIPs),
		"seed", gen.Seed(),
	)

	var sinks []writer.Sink
	if cfg.HasSink(config.SinkFile) {
		sinks = append(sinks, writer.NewFileSink(dir, cfg.Output.Files, logger))
	}
	if cfg.HasSink(config.SinkPostgres) {
		logger.Info("connecting to database",
			"host", cfg.Database.Host,
			"port", cfg.Database.Port,
			"database", cfg.Database.Name,
		)
		pool, err := database.Connect(ctx, cfg.Database)
		if err != nil {
			return fmt.Errorf("connect database: %w", err)
		}
		defer pool.Close()
		logger.Info("database connected")

		writerCfg := writer.WriterConfig{BatchSize: cfg.Database.BatchSize}
		sinks = append(sinks, writer.NewPostgresSink(writerCfg, pool, runID, logger))
	}

	sink := writer.NewMultiSink(sinks...)
	runErr := gen.Run(ctx, sink)
	closeErr := sink.Close()
	if err := errors.Join(runErr, closeErr); err != nil {
		return err
	}

	logger.Info("generator finished", "duration", time.Since(start))
	return nil
}

// resolveOutputDir returns dir, or the directory holding the running
// executable when dir is empty.
func resolveOutputDir(dir string) (string, error) {
	if dir != "" {
		return filepath.Abs(dir)
	}
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// instrumentNames labels each cusip with its benchmark ticker when known.
func instrumentNames(cusips []string) []string {
	names := make([]string, len(cusips))
	for i, c := range cusips {
		if b, ok := refdata.Lookup(c); ok {
			names[i] = b.Ticker + "=" + c
		} else {
			names[i] = c
		}
	}
	return names
}
