package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/mcode/config"
	"github.com/katalvlaran/mcode/core"
	"github.com/katalvlaran/mcode/export"
	"github.com/katalvlaran/mcode/ingest"
	"github.com/katalvlaran/mcode/mcode"
	"github.com/katalvlaran/mcode/metrics"
	"github.com/katalvlaran/mcode/weightcache"
)

// Summary reports what a run produced.
type Summary struct {
	RunID     string
	Nodes     int
	Edges     int
	Complexes int
	Seed      string
	CacheHit  bool
}

// Runner executes one configured run.
type Runner struct {
	cfg     *config.Config
	log     *zap.Logger
	metrics *metrics.Registry
	stdout  io.Writer
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the base logger; nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithMetrics sets the registry; nil is ignored.
func WithMetrics(m *metrics.Registry) Option {
	return func(r *Runner) {
		if m != nil {
			r.metrics = m
		}
	}
}

// WithStdout sets the writer used when no output path is configured.
func WithStdout(w io.Writer) Option {
	return func(r *Runner) { r.stdout = w }
}

// New returns a Runner for cfg, which must already be validated.
func New(cfg *config.Config, opts ...Option) *Runner {
	r := &Runner{
		cfg:     cfg,
		log:     zap.NewNop(),
		metrics: metrics.NewRegistry(),
		stdout:  os.Stdout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Metrics returns the registry the run records into.
func (r *Runner) Metrics() *metrics.Registry { return r.metrics }

// Run executes every stage in order.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	runID := uuid.NewString()
	log := r.log.With(zap.String("run_id", runID))
	sum := &Summary{RunID: runID}

	log.Info("run started",
		zap.String("input", r.cfg.Input.Path),
		zap.Float64("density", r.cfg.Assign.Density),
		zap.String("scope", r.cfg.Score.Scope),
	)

	g, err := r.load(log)
	if err != nil {
		return nil, err
	}
	sum.Nodes, sum.Edges = g.NodeCount(), g.EdgeCount()

	w, hit, err := r.weights(ctx, log, g)
	if err != nil {
		return nil, err
	}
	sum.CacheHit = hit

	start := time.Now()
	res, err := mcode.Assign(g, w, r.cfg.Assign.Density, mcode.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("pipeline: assign: %w", err)
	}
	r.metrics.ObserveStage(metrics.StageAssign, time.Since(start))
	r.metrics.ComplexesFound.Set(float64(res.Count()))
	sum.Complexes, sum.Seed = res.Count(), res.Seed

	if err := r.export(g, res); err != nil {
		return nil, err
	}
	if err := r.writeMetrics(); err != nil {
		return nil, err
	}

	log.Info("run finished",
		zap.Int("nodes", sum.Nodes),
		zap.Int("edges", sum.Edges),
		zap.Int("complexes", sum.Complexes),
		zap.String("seed", sum.Seed),
		zap.Bool("cache_hit", sum.CacheHit),
	)
	return sum, nil
}

func (r *Runner) load(log *zap.Logger) (*core.Graph, error) {
	start := time.Now()
	in := r.cfg.Input

	opts := []ingest.Option{
		ingest.WithDelimiter(r.cfg.DelimiterRune()),
		ingest.WithUnknown(in.Unknown),
		ingest.WithMinScore(uint16(in.MinScore)),
	}
	if in.Mapping != "" {
		m, err := readWith(in.Mapping, ingest.LoadMapping)
		if err != nil {
			return nil, fmt.Errorf("pipeline: mapping: %w", err)
		}
		opts = append(opts, ingest.WithMapping(m))
	}

	f, err := os.Open(in.Path)
	if err != nil {
		return nil, fmt.Errorf("pipeline: open input: %w", err)
	}
	defer f.Close()

	triples, stats, err := ingest.Load(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("pipeline: load %s: %w", in.Path, err)
	}
	g := ingest.Build(triples)

	r.metrics.RecordRows(stats.Kept, stats.DroppedUnknown, stats.DroppedScore)
	r.metrics.RecordGraph(g.NodeCount(), g.EdgeCount())
	r.metrics.ObserveStage(metrics.StageLoad, time.Since(start))
	log.Info("graph loaded",
		zap.Int("rows", stats.Rows),
		zap.Int("kept", stats.Kept),
		zap.Int("dropped_unknown", stats.DroppedUnknown),
		zap.Int("dropped_score", stats.DroppedScore),
		zap.Int("nodes", g.NodeCount()),
		zap.Int("edges", g.EdgeCount()),
	)
	return g, nil
}

// weights returns cached weights when they cover every node, else scores
// the graph and refreshes the cache. Each scope has its own cache file.
func (r *Runner) weights(ctx context.Context, log *zap.Logger, g *core.Graph) (mcode.Weights, bool, error) {
	scope, _ := mcode.ParseScope(r.cfg.Score.Scope)
	path := ScopedCachePath(r.cfg.Cache.Path, scope)
	if path != "" {
		w, err := weightcache.LoadFile(path)
		switch {
		case err == nil && covers(w, g):
			r.metrics.RecordCache(true)
			log.Info("weights loaded from cache",
				zap.String("path", path),
				zap.Stringer("scope", scope),
				zap.Int("nodes", len(w)),
			)
			return w, true, nil
		case err == nil:
			log.Warn("weight cache is stale", zap.String("path", path))
		case errors.Is(err, weightcache.ErrCacheMiss):
			log.Debug("weight cache miss", zap.String("path", path))
		default:
			return nil, false, fmt.Errorf("pipeline: cache: %w", err)
		}
		r.metrics.RecordCache(false)
	}

	start := time.Now()
	w, err := mcode.Score(ctx, g,
		mcode.WithScope(scope),
		mcode.WithWorkers(r.cfg.Score.Workers),
		mcode.WithLogger(log),
		mcode.WithOnScored(func(n int) { r.metrics.NodesScoredTotal.Add(float64(n)) }),
	)
	if err != nil {
		return nil, false, fmt.Errorf("pipeline: %w", err)
	}
	r.metrics.ObserveStage(metrics.StageScore, time.Since(start))

	if path != "" {
		if err := weightcache.SaveFile(path, w); err != nil {
			return nil, false, fmt.Errorf("pipeline: cache: %w", err)
		}
		log.Info("weights cached", zap.String("path", path))
	}
	return w, false, nil
}

// ScopedCachePath inserts the scope name before the first extension of the
// file name: "cache/weights.tsv.sz" becomes "cache/weights.neighborhood.tsv.sz".
// An empty path stays empty.
func ScopedCachePath(path string, scope mcode.Scope) string {
	if path == "" {
		return ""
	}
	dir, base := filepath.Split(path)
	name, ext, found := strings.Cut(base, ".")
	if !found || name == "" {
		return path + "." + scope.String()
	}
	return dir + name + "." + scope.String() + "." + ext
}

func covers(w mcode.Weights, g *core.Graph) bool {
	for i := 0; i < g.NodeCount(); i++ {
		if _, ok := w[g.ID(core.NodeIx(i))]; !ok {
			return false
		}
	}
	return true
}

func (r *Runner) export(g *core.Graph, res *mcode.Result) (err error) {
	start := time.Now()
	format, err := export.ParseFormat(r.cfg.Output.Format)
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	out := r.stdout
	if p := r.cfg.Output.Path; p != "" {
		f, cerr := os.Create(p)
		if cerr != nil {
			return fmt.Errorf("pipeline: create output: %w", cerr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("pipeline: close output: %w", cerr)
			}
		}()
		out = f
	}

	if werr := export.Write(out, format, g, res); werr != nil {
		return fmt.Errorf("pipeline: %w", werr)
	}
	r.metrics.ObserveStage(metrics.StageExport, time.Since(start))
	return nil
}

func (r *Runner) writeMetrics() error {
	mc := r.cfg.Metrics
	if !mc.Enabled || mc.Path == "" {
		return nil
	}
	f, err := os.Create(mc.Path)
	if err != nil {
		return fmt.Errorf("pipeline: metrics: %w", err)
	}
	if err := r.metrics.WriteText(f); err != nil {
		f.Close()
		return fmt.Errorf("pipeline: %w", err)
	}
	return f.Close()
}

func readWith[T any](path string, fn func(io.Reader) (T, error)) (T, error) {
	f, err := os.Open(path)
	if err != nil {
		var zero T
		return zero, err
	}
	defer f.Close()
	return fn(f)
}
