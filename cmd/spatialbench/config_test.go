package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajwerner/spatial"
)

const testConfig = `
[bench]
points     = 500
max        = 1000
partitions = 4
kinds      = rangetree, Grid

[log]
level = debug

[results]
dsn = bench.db
`

func TestConfigLoad(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, cfg.Load([]byte(testConfig)))
	assert.Equal(t, 500, cfg.Points)
	assert.Equal(t, 1000, cfg.Max)
	assert.Equal(t, 4, cfg.Partitions)
	assert.Equal(t, 1000, cfg.Queries)
	assert.Equal(t, int64(1), cfg.Seed)
	assert.Equal(t, []spatial.Kind{spatial.RangeTree, spatial.Grid}, cfg.Kinds)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "bench.db", cfg.ResultsDSN)
}

func TestConfigInvalid(t *testing.T) {
	for _, src := range []string{
		"[bench]\npoints = 0",
		"[bench]\nmax = 3\npoints = 10",
		"[bench]\npartitions = -1",
		"[bench]\nkinds = quadtree",
		"[bench]\nkinds = ,",
	} {
		assert.Error(t, NewConfig().Load([]byte(src)), src)
	}
}

func TestParseArgs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.ini")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o644))

	cfg, err := parseArgs([]string{"-config", path, "-points", "50", "-kinds", "rangebst"})
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Points)
	assert.Equal(t, 1000, cfg.Max)
	assert.Equal(t, []spatial.Kind{spatial.RangeSearchTree}, cfg.Kinds)

	cfg, err = parseArgs(nil)
	require.NoError(t, err)
	assert.Equal(t, NewConfig(), cfg)

	_, err = parseArgs([]string{"-kinds", "nope"})
	require.Error(t, err)
	_, err = parseArgs([]string{"-config", filepath.Join(t.TempDir(), "missing.ini")})
	require.Error(t, err)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, "debug", parseLogLevel("DEBUG").String())
	assert.Equal(t, "warning", parseLogLevel("warn").String())
	assert.Equal(t, "info", parseLogLevel("verbose").String())
}
