// Package batch analyzes several datasets concurrently.
//
// Results keep the order of the inputs. Datasets with identical content are
// analyzed once per Analyzer: reports are cached by content digest and
// analysis configuration.
package batch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"

	benford "github.com/maxgfr/benford-law"
	"github.com/maxgfr/benford-law/internal/dataset"
	"github.com/maxgfr/benford-law/internal/logging"
	"github.com/maxgfr/benford-law/internal/report"
)

// DefaultWorkers is the concurrency used when none is configured.
const DefaultWorkers = 4

// ErrStdinReused is returned when standard input is listed more than once.
var ErrStdinReused = errors.New("standard input can only be read once")

// Analyzer runs analyses with a bounded number of goroutines.
type Analyzer struct {
	cfg     benford.AnalysisConfig
	read    dataset.Options
	stdin   io.Reader
	workers int
	cache   *gocache.Cache
	logger  *slog.Logger
	hits    atomic.Int64
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithWorkers bounds concurrency. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.workers = n
		}
	}
}

// WithReadOptions sets how dataset files are parsed.
func WithReadOptions(opts dataset.Options) Option {
	return func(a *Analyzer) {
		a.read = opts
	}
}

// WithStdin sets the reader behind dataset.StdinName. Defaults to os.Stdin.
func WithStdin(r io.Reader) Option {
	return func(a *Analyzer) {
		a.stdin = r
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		a.logger = logger
	}
}

// New creates an Analyzer for cfg.
func New(cfg benford.AnalysisConfig, opts ...Option) *Analyzer {
	if cfg.Reference == nil {
		cfg.Reference = benford.StandardBenford()
	}

	a := &Analyzer{
		cfg:     cfg,
		stdin:   os.Stdin,
		workers: DefaultWorkers,
		cache:   gocache.New(30*time.Minute, 10*time.Minute),
		logger:  logging.Discard(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// CacheHits returns how many analyses were served from the cache.
func (a *Analyzer) CacheHits() int64 {
	return a.hits.Load()
}

// AnalyzeFiles reads and analyzes every path. dataset.StdinName reads
// standard input and may appear at most once.
//
// The first failure cancels the remaining work and is returned with its
// source name; no partial results are returned.
func (a *Analyzer) AnalyzeFiles(ctx context.Context, paths []string) ([]*report.Result, error) {
	stdin := 0
	for _, p := range paths {
		if p == dataset.StdinName {
			stdin++
		}
	}
	if stdin > 1 {
		return nil, ErrStdinReused
	}

	return a.run(ctx, len(paths), func(i int) (*dataset.Dataset, error) {
		if paths[i] == dataset.StdinName {
			return dataset.Read(a.stdin, "stdin", a.read)
		}
		return dataset.ReadFile(paths[i], a.read)
	})
}

// AnalyzeDatasets analyzes already loaded datasets.
func (a *Analyzer) AnalyzeDatasets(ctx context.Context, datasets []*dataset.Dataset) ([]*report.Result, error) {
	return a.run(ctx, len(datasets), func(i int) (*dataset.Dataset, error) {
		return datasets[i], nil
	})
}

func (a *Analyzer) run(ctx context.Context, n int, load func(int) (*dataset.Dataset, error)) ([]*report.Result, error) {
	a.logger.Debug("starting batch", "datasets", n, "workers", a.workers)
	start := time.Now()

	results := make([]*report.Result, n)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)

	for i := 0; i < n; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			ds, err := load(i)
			if err != nil {
				return err
			}

			result, err := a.Analyze(ds)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	a.logger.Debug("batch complete", "datasets", n, "duration", time.Since(start))
	return results, nil
}

// Analyze runs one dataset through the analyzer, consulting the cache.
func (a *Analyzer) Analyze(ds *dataset.Dataset) (*report.Result, error) {
	key := CacheKey(ds.Digest, a.cfg)

	var rep benford.Report
	if cached, found := a.cache.Get(key); ds.Digest != "" && found {
		a.hits.Add(1)
		a.logger.Debug("cache hit", "source", ds.Source)
		rep = cached.(benford.Report)
	} else {
		var err error
		rep, err = benford.AnalyzeWith(ds.Numbers, a.cfg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ds.Source, err)
		}
		if ds.Digest != "" {
			a.cache.Set(key, rep, gocache.DefaultExpiration)
		}
	}

	a.logger.Info("analyzed dataset",
		"source", ds.Source,
		"numbers", rep.SampleSize,
		"conformant", rep.IsFollowingBenfordLaw,
		"maxDeviation", rep.MaxDeviation,
	)

	return &report.Result{
		Source:    ds.Source,
		Skipped:   ds.Skipped,
		Reference: a.cfg.Reference.Clone(),
		Report:    rep,
	}, nil
}

// CacheKey identifies an analysis by content digest and configuration.
func CacheKey(digest string, cfg benford.AnalysisConfig) string {
	var b strings.Builder
	b.WriteString(digest)
	b.WriteString("|")
	b.WriteString(strconv.FormatFloat(cfg.Threshold, 'g', -1, 64))

	keys := make([]string, 0, len(cfg.Reference))
	for k := range cfg.Reference {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString("|")
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(strconv.FormatFloat(cfg.Reference[k], 'g', -1, 64))
	}

	hash := sha256.Sum256([]byte(b.String()))
	return "benford:v1:" + hex.EncodeToString(hash[:])
}
