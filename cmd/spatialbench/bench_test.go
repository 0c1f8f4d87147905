package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/ajwerner/spatial"
)

func testConfigFor(kinds ...spatial.Kind) *Config {
	cfg := NewConfig()
	cfg.Points = 2000
	cfg.Max = 1000
	cfg.Queries = 200
	cfg.Ranges = 50
	cfg.Kinds = kinds
	return cfg
}

func testLogger() (*logrus.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetFormatter(&logFormatter{TimestampFormat: time.RFC3339})
	return l, &buf
}

func TestRun(t *testing.T) {
	cfg := testConfigFor(spatial.Kinds()...)
	log, buf := testLogger()
	results, err := run(context.Background(), cfg, log)
	require.NoError(t, err)
	require.Len(t, results, 4)
	for _, r := range results {
		require.True(t, r.OK(), "%v: %d mismatches", r.Kind, r.Mismatches)
		require.Equal(t, cfg.Points, r.Points)
		require.Equal(t, cfg.Queries, r.Queries)
		if r.Kind == spatial.Grid {
			require.Zero(t, r.Ranges)
		} else {
			require.Equal(t, cfg.Ranges, r.Ranges)
			require.Zero(t, r.Misses)
		}
	}
	require.Contains(t, buf.String(), "generated 2,000 points")
	require.Contains(t, buf.String(), "kind=rangetree")
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	log, _ := testLogger()
	_, err := run(ctx, testConfigFor(spatial.RangeTree), log)
	require.ErrorIs(t, err, context.Canceled)
}

func TestGenerateDistinct(t *testing.T) {
	cfg := testConfigFor(spatial.BruteForce)
	cfg.Points, cfg.Max = 90, 10
	w, err := makeWorkload(cfg)
	require.NoError(t, err)
	seen := map[string]bool{}
	for _, p := range w.points {
		require.False(t, seen[p.String()], "%v repeated", p)
		seen[p.String()] = true
		require.True(t, p.Get(0) >= 0 && p.Get(0) < 10 && p.Get(1) >= 0 && p.Get(1) < 10)
	}
}

func TestResultStore(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "results.db")
	store, err := openResultStore(ctx, dsn)
	require.NoError(t, err)
	defer store.Close()

	runID := uuid.New()
	results := []Result{
		{Kind: spatial.RangeTree, Points: 10, Build: time.Millisecond, Queries: 5},
		{Kind: spatial.BruteForce, Points: 10, Mismatches: 2},
	}
	require.NoError(t, store.Save(ctx, runID, 7, time.Now(), results))
	n, err := store.Mismatches(ctx, runID)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	// Saving the same run twice violates the primary key.
	err = store.Save(ctx, runID, 7, time.Now(), results)
	require.Error(t, err)
	n, err = store.Mismatches(ctx, runID)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	n, err = store.Mismatches(ctx, uuid.New())
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestLogFormatter(t *testing.T) {
	log, buf := testLogger()
	log.WithFields(logrus.Fields{"b": 2, "a": 1}).Warn("hello")
	line := buf.String()
	require.True(t, strings.HasSuffix(line, "[WARN] hello a=1 b=2\n"), line)
}

func TestRealMainSavesResults(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "results.db")
	code := realMain([]string{
		"-points", "300", "-max", "200", "-queries", "20", "-ranges", "5",
		"-kinds", "rangebst,rangetree", "-results", dsn, "-log-level", "error",
	})
	require.Equal(t, 0, code)

	store, err := openResultStore(context.Background(), dsn)
	require.NoError(t, err)
	defer store.Close()
	var rows int
	require.NoError(t, store.db.QueryRow(`SELECT COUNT(*) FROM bench_result`).Scan(&rows))
	require.Equal(t, 2, rows)

	require.Equal(t, 2, realMain([]string{"-points", "-1"}))
}
