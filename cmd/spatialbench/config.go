package main

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/ini.v1"

	"github.com/ajwerner/spatial"
)

// Config controls a benchmark run. It is read from an optional INI file:
//
//	[bench]
//	points      = 100000
//	max         = 50000
//	partitions  = 10
//	queries     = 1000
//	ranges      = 100
//	seed        = 1
//	kinds       = grid, rangebst, rangetree
//
//	[log]
//	level = info
//	file  = bench.log
//
//	[results]
//	dsn = results.db
type Config struct {
	Points     int
	Max        int
	Partitions int
	Queries    int
	Ranges     int
	Seed       int64
	Kinds      []spatial.Kind

	LogLevel string
	LogFile  string

	ResultsDSN string
}

// NewConfig returns the default configuration.
func NewConfig() *Config {
	return &Config{
		Points:     100000,
		Max:        50000,
		Partitions: 10,
		Queries:    1000,
		Ranges:     100,
		Seed:       1,
		Kinds:      []spatial.Kind{spatial.Grid, spatial.RangeSearchTree, spatial.RangeTree},
		LogLevel:   "info",
	}
}

// Load overlays the values present in the INI source, which may be a file
// name or raw bytes, onto cfg.
func (cfg *Config) Load(source interface{}) error {
	f, err := ini.Load(source)
	if err != nil {
		return errors.Wrap(err, "spatialbench: loading config")
	}
	bench := f.Section("bench")
	cfg.Points = bench.Key("points").MustInt(cfg.Points)
	cfg.Max = bench.Key("max").MustInt(cfg.Max)
	cfg.Partitions = bench.Key("partitions").MustInt(cfg.Partitions)
	cfg.Queries = bench.Key("queries").MustInt(cfg.Queries)
	cfg.Ranges = bench.Key("ranges").MustInt(cfg.Ranges)
	cfg.Seed = bench.Key("seed").MustInt64(cfg.Seed)
	if bench.HasKey("kinds") {
		if cfg.Kinds, err = parseKinds(bench.Key("kinds").String()); err != nil {
			return err
		}
	}

	log := f.Section("log")
	cfg.LogLevel = log.Key("level").MustString(cfg.LogLevel)
	cfg.LogFile = log.Key("file").MustString(cfg.LogFile)

	cfg.ResultsDSN = f.Section("results").Key("dsn").MustString(cfg.ResultsDSN)
	return cfg.Validate()
}

// Validate checks that the configuration describes a runnable benchmark.
func (cfg *Config) Validate() error {
	switch {
	case cfg.Points < 1:
		return errors.Errorf("spatialbench: points must be positive, got %d", cfg.Points)
	case cfg.Max < 1:
		return errors.Errorf("spatialbench: max must be positive, got %d", cfg.Max)
	case cfg.Points > cfg.Max*cfg.Max:
		return errors.Errorf("spatialbench: %d distinct points do not fit in a %d x %d square",
			cfg.Points, cfg.Max, cfg.Max)
	case cfg.Partitions < 1:
		return errors.Errorf("spatialbench: partitions must be positive, got %d", cfg.Partitions)
	case cfg.Queries < 0 || cfg.Ranges < 0:
		return errors.New("spatialbench: query counts must not be negative")
	case len(cfg.Kinds) == 0:
		return errors.New("spatialbench: no index kinds selected")
	}
	return nil
}

func parseKinds(s string) ([]spatial.Kind, error) {
	var kinds []spatial.Kind
	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name == "" {
			continue
		}
		k, err := spatial.ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}
