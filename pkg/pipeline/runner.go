package pipeline

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/shiftreport/pkg/cache"
	"github.com/matzehuels/shiftreport/pkg/observability"
	"github.com/matzehuels/shiftreport/pkg/render/sheet"
	"github.com/matzehuels/shiftreport/pkg/render/sheet/layout"
	"github.com/matzehuels/shiftreport/pkg/report"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner holds no per-run state, so multiple goroutines can share one
// Runner with different models and options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute prepares m, draws it once if any requested artifact is not cached,
// and encodes the missing formats concurrently.
func (r *Runner) Execute(ctx context.Context, m report.Model, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m, err := Prepare(m, opts)
	if err != nil {
		return nil, fmt.Errorf("prepare: %w", err)
	}
	modelHash, err := cache.HashJSON(m)
	if err != nil {
		return nil, fmt.Errorf("hash model: %w", err)
	}
	styleHash, err := cache.HashJSON([]any{opts.Style, opts.Labels})
	if err != nil {
		return nil, fmt.Errorf("hash style: %w", err)
	}

	plan := layout.Build(m, *opts.Style)
	result := &Result{
		ID:        uuid.New(),
		ModelHash: modelHash,
		Plan:      plan,
		Artifacts: make(map[string][]byte, len(opts.Formats)),
		Stats: Stats{
			Sections:    len(plan.Sections),
			Parameters:  m.ParameterCount(),
			Width:       plan.Width,
			Height:      plan.Height,
			PixelWidth:  int(math.Ceil(plan.Width * opts.PixelRatio)),
			PixelHeight: int(math.Ceil(plan.Height * opts.PixelRatio)),
		},
	}
	logger := opts.Logger.With("id", result.ID)

	missing := r.lookup(ctx, result, opts, styleHash)
	if len(missing) == 0 {
		result.CacheInfo.RenderHit = true
		logger.Info("served report from cache", "formats", opts.Formats)
		return result, nil
	}

	res := &sheet.Result{Plan: plan}
	if opts.needsRaster(missing) {
		start := time.Now()
		observability.Pipeline().OnRenderStart(ctx, m.Title, missing)
		res, err = sheet.Render(m, opts.renderOptions()...)
		result.Stats.RenderTime = time.Since(start)
		observability.Pipeline().OnRenderComplete(ctx, m.Title, plan.Height, result.Stats.RenderTime, err)
		if err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
		logger.Info("drew report",
			"sections", result.Stats.Sections,
			"pixels", fmt.Sprintf("%dx%d", result.Stats.PixelWidth, result.Stats.PixelHeight),
			"duration", result.Stats.RenderTime)
	}

	start := time.Now()
	encoded, err := encodeAll(ctx, missing, res, m, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.EncodeTime = time.Since(start)

	for i, f := range missing {
		result.Artifacts[f] = encoded[i]
		key := r.Keyer.ArtifactKey(modelHash, opts.ArtifactKeyOpts(f, styleHash))
		if err := r.Cache.Set(ctx, key, encoded[i], cache.TTLArtifact); err != nil {
			logger.Warn("cache write failed", "format", f, "err", err)
			continue
		}
		observability.Cache().OnCacheSet(ctx, f, len(encoded[i]))
	}

	logger.Info("encoded outputs",
		"formats", missing,
		"cached", result.CacheInfo.Hits,
		"duration", result.Stats.EncodeTime)
	return result, nil
}

// lookup copies cached artifacts into result and returns the formats that
// still need encoding, in request order.
func (r *Runner) lookup(ctx context.Context, result *Result, opts Options, styleHash string) []string {
	var missing []string
	for _, f := range opts.Formats {
		if !opts.Refresh {
			key := r.Keyer.ArtifactKey(result.ModelHash, opts.ArtifactKeyOpts(f, styleHash))
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil {
				opts.Logger.Debug("cache read failed", "format", f, "err", err)
			}
			if err == nil && hit {
				observability.Cache().OnCacheHit(ctx, f)
				result.Artifacts[f] = data
				result.CacheInfo.Hits = append(result.CacheInfo.Hits, f)
				continue
			}
			observability.Cache().OnCacheMiss(ctx, f)
		}
		missing = append(missing, f)
	}
	return missing
}

// encodeAll runs one encoder per format. The surface is only read, so the
// encoders share it.
func encodeAll(ctx context.Context, formats []string, res *sheet.Result, m report.Model, opts Options) ([][]byte, error) {
	out := make([][]byte, len(formats))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range formats {
		i, f := i, f
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			data, err := Encode(f, res, m, opts)
			observability.Pipeline().OnEncodeComplete(gctx, f, len(data), time.Since(start), err)
			if err != nil {
				return fmt.Errorf("encode %s: %w", f, err)
			}
			out[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
