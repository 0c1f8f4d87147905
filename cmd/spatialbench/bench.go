package main

import (
	"context"
	"math/rand"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ajwerner/spatial"
	"github.com/ajwerner/spatial/index"
	"github.com/ajwerner/spatial/index/bruteforce"
	"github.com/ajwerner/spatial/point"
)

// Result summarizes one variant's run.
type Result struct {
	Kind    spatial.Kind
	Points  int
	Build   time.Duration
	Nearest time.Duration
	Range   time.Duration
	Queries int
	Ranges  int
	// Mismatches counts queries whose answer disagreed with brute force.
	// For an approximate variant a nearest-neighbour miss is counted in
	// Misses instead.
	Mismatches int
	Misses     int
}

// OK returns whether the variant agreed with brute force wherever it is
// required to.
func (r Result) OK() bool { return r.Mismatches == 0 }

type rangeQuery struct {
	lo, hi point.Point[int]
	want   []point.Point[int]
}

type workload struct {
	points  []point.Point[int]
	refs    []point.Point[int]
	nearest []float64
	ranges  []rangeQuery
}

// generate returns n distinct points with coordinates in [0, max).
func generate(rng *rand.Rand, n, max int) []point.Point[int] {
	seen := make(map[[2]int]struct{}, n)
	pts := make([]point.Point[int], 0, n)
	for len(pts) < n {
		c := [2]int{rng.Intn(max), rng.Intn(max)}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		pts = append(pts, point.New(c[0], c[1]))
	}
	return pts
}

// makeWorkload generates the points and queries and answers every query
// with brute force.
func makeWorkload(cfg *Config) (*workload, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	w := &workload{points: generate(rng, cfg.Points, cfg.Max)}
	oracle := bruteforce.New[int]()
	for _, p := range w.points {
		if err := oracle.Insert(p); err != nil {
			return nil, err
		}
	}
	for i := 0; i < cfg.Queries; i++ {
		ref := point.New(rng.Intn(cfg.Max), rng.Intn(cfg.Max))
		nn, err := oracle.NearestNeighbor(ref)
		if err != nil {
			return nil, err
		}
		w.refs = append(w.refs, ref)
		w.nearest = append(w.nearest, nn.Distance(ref))
	}
	for i := 0; i < cfg.Ranges; i++ {
		lo := point.New(rng.Intn(cfg.Max), rng.Intn(cfg.Max))
		hi := point.New(rng.Intn(cfg.Max), rng.Intn(cfg.Max))
		if hi.Less(lo) {
			lo, hi = hi, lo
		}
		want, err := oracle.Range(lo, hi)
		if err != nil {
			return nil, err
		}
		sort.Slice(want, func(i, j int) bool { return want[i].Less(want[j]) })
		w.ranges = append(w.ranges, rangeQuery{lo: lo, hi: hi, want: want})
	}
	return w, nil
}

// run benchmarks every configured variant against the same workload.
func run(ctx context.Context, cfg *Config, log logrus.FieldLogger) ([]Result, error) {
	start := time.Now()
	w, err := makeWorkload(cfg)
	if err != nil {
		return nil, err
	}
	log.WithField("took", time.Since(start)).Infof("generated %s points, %s nearest and %s range queries",
		humanize.Comma(int64(len(w.points))), humanize.Comma(int64(len(w.refs))),
		humanize.Comma(int64(len(w.ranges))))

	var results []Result
	for _, k := range cfg.Kinds {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		r, err := runKind(k, cfg, w, log.WithField("kind", k))
		if err != nil {
			return results, err
		}
		results = append(results, r)
	}
	return results, nil
}

func runKind(k spatial.Kind, cfg *Config, w *workload, log logrus.FieldLogger) (Result, error) {
	r := Result{Kind: k, Points: len(w.points)}
	idx, err := spatial.New[int](k, spatial.Options{Max: float64(cfg.Max), Partitions: cfg.Partitions})
	if err != nil {
		return r, err
	}
	start := time.Now()
	for _, p := range w.points {
		if err := idx.Insert(p); err != nil {
			return r, err
		}
	}
	r.Build = time.Since(start)

	start = time.Now()
	for i, ref := range w.refs {
		r.Queries++
		nn, err := idx.NearestNeighbor(ref)
		switch {
		case err == nil && nn.Distance(ref) == w.nearest[i]:
		case !k.Exact() && (err == nil || errors.Is(err, index.ErrNoCandidate)):
			r.Misses++
		case err != nil:
			return r, err
		default:
			r.Mismatches++
			log.WithField("ref", ref).Warnf("nearest %v at %v, want distance %v",
				nn, nn.Distance(ref), w.nearest[i])
		}
	}
	r.Nearest = time.Since(start)

	start = time.Now()
	for _, q := range w.ranges {
		got, err := idx.Range(q.lo, q.hi)
		if errors.Is(err, index.ErrUnsupported) {
			break
		} else if err != nil {
			return r, err
		}
		r.Ranges++
		if !samePoints(got, q.want) {
			r.Mismatches++
			log.Warnf("range [%v, %v] returned %d points, want %d", q.lo, q.hi, len(got), len(q.want))
		}
	}
	r.Range = time.Since(start)

	log.WithFields(logrus.Fields{
		"build":   r.Build,
		"nearest": avg(r.Nearest, r.Queries),
		"range":   avg(r.Range, r.Ranges),
		"misses":  r.Misses,
	}).Infof("%d mismatches", r.Mismatches)
	return r, nil
}

// samePoints compares a result, in any order, with an expected one in
// ascending order. It sorts got.
func samePoints(got, want []point.Point[int]) bool {
	if len(got) != len(want) {
		return false
	}
	sort.Slice(got, func(i, j int) bool { return got[i].Less(got[j]) })
	for i := range got {
		if !got[i].Equal(want[i]) {
			return false
		}
	}
	return true
}

func avg(d time.Duration, n int) time.Duration {
	if n == 0 {
		return 0
	}
	return d / time.Duration(n)
}
