// Command spatialbench builds every selected spatial index variant over
// the same random point set, checks each against brute force and reports
// timings. It exits with status 1 if an exact variant disagrees with brute
// force.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"
)

func main() {
	os.Exit(realMain(os.Args[1:]))
}

func realMain(args []string) int {
	cfg, err := parseArgs(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	log, closeLog, err := newLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	defer func() { _ = closeLog() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	runID := uuid.New()
	entry := log.WithField("run", runID)
	at := time.Now()
	results, err := run(ctx, cfg, entry)
	if err != nil {
		entry.WithError(err).Error("benchmark failed")
		return 1
	}
	if cfg.ResultsDSN != "" {
		if err := save(ctx, cfg, runID, at, results); err != nil {
			entry.WithError(err).Error("saving results failed")
			return 1
		}
		entry.WithField("dsn", cfg.ResultsDSN).Info("results saved")
	}
	status := 0
	for _, r := range results {
		if !r.OK() {
			entry.WithField("kind", r.Kind).Errorf("%d queries disagreed with brute force", r.Mismatches)
			status = 1
		}
	}
	return status
}

func save(ctx context.Context, cfg *Config, runID uuid.UUID, at time.Time, results []Result) error {
	store, err := openResultStore(ctx, cfg.ResultsDSN)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.Save(ctx, runID, cfg.Seed, at, results)
}

// parseArgs builds the configuration from defaults, then the config file
// named by -config, then any flags given explicitly.
func parseArgs(args []string) (*Config, error) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("spatialbench", flag.ContinueOnError)
	path := fs.String("config", "", "INI configuration file")
	points := fs.Int("points", cfg.Points, "number of distinct points")
	max := fs.Int("max", cfg.Max, "coordinates are drawn from [0, max)")
	partitions := fs.Int("partitions", cfg.Partitions, "grid buckets per axis")
	queries := fs.Int("queries", cfg.Queries, "number of nearest-neighbour queries")
	ranges := fs.Int("ranges", cfg.Ranges, "number of range queries")
	seed := fs.Int64("seed", cfg.Seed, "random seed")
	kinds := fs.String("kinds", "", "comma-separated index kinds")
	level := fs.String("log-level", cfg.LogLevel, "log level")
	logFile := fs.String("log-file", "", "also write the log to this file")
	dsn := fs.String("results", "", "SQLite database to record results in")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *path != "" {
		if err := cfg.Load(*path); err != nil {
			return nil, err
		}
	}
	var err error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "points":
			cfg.Points = *points
		case "max":
			cfg.Max = *max
		case "partitions":
			cfg.Partitions = *partitions
		case "queries":
			cfg.Queries = *queries
		case "ranges":
			cfg.Ranges = *ranges
		case "seed":
			cfg.Seed = *seed
		case "kinds":
			cfg.Kinds, err = parseKinds(*kinds)
		case "log-level":
			cfg.LogLevel = *level
		case "log-file":
			cfg.LogFile = *logFile
		case "results":
			cfg.ResultsDSN = *dsn
		}
	})
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
