// Package pipeline drives a typed-AST module through lowering, optimization,
// and emission, and lets an embedder fan that descent out across many
// modules concurrently (spec §5: "An embedder may drive multiple modules in
// parallel").
package pipeline

import (
	"context"
	"errors"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"tsgoc/internal/ast"
	"tsgoc/internal/config"
	"tsgoc/internal/emitter"
	diag "tsgoc/internal/errors"
	"tsgoc/internal/lowering"
	"tsgoc/internal/optimizer"
)

// ErrStrictAborted is returned by Run when cfg.Strict is set and lowering
// raised at least one error-level diagnostic. Non-strict mode never returns
// this: it continues through optimization and emission regardless, with the
// `unknown` identifier lowering substitutes for an unsupported construct
// standing in as the placeholder spec §7 describes.
var ErrStrictAborted = errors.New("pipeline: aborted on first error-level diagnostic under strict mode")

// Result is one module's full descent through lowering, optimization, and
// emission.
type Result struct {
	Module      string
	Emitted     emitter.Result
	Diagnostics *diag.Bag
	Duration    time.Duration
}

// Pipeline holds the configuration shared by every module it runs. The
// underlying lowering/optimizer/emitter descent is purely sequential and
// stateless per call (spec §5), so a single Pipeline value is safe to reuse
// concurrently across RunAll's worker pool.
type Pipeline struct {
	cfg    config.Strategy
	logger *zap.Logger
}

// New returns a Pipeline configured with cfg. A nil logger is replaced with
// a no-op logger so trace calls are always safe.
func New(cfg config.Strategy, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{cfg: cfg, logger: logger}
}

// Run lowers, optimizes, and emits one module, checking for context
// cancellation between each stage. A strict-mode abort short-circuits
// before optimization or emission ever run.
func (p *Pipeline) Run(ctx context.Context, m *ast.Module) (Result, error) {
	start := time.Now()
	log := p.logger.With(zap.String("module", m.Name))

	if err := ctx.Err(); err != nil {
		return Result{Module: m.Name}, err
	}

	log.Debug("lowering")
	lowered, _, bag := lowering.Lower(m, p.cfg)
	if p.cfg.Strict && bag.HasErrors() {
		log.Debug("aborted under strict mode", zap.Int("diagnostics", len(bag.All())))
		return Result{Module: m.Name, Diagnostics: bag, Duration: time.Since(start)}, ErrStrictAborted
	}

	if err := ctx.Err(); err != nil {
		return Result{Module: m.Name, Diagnostics: bag, Duration: time.Since(start)}, err
	}
	log.Debug("optimizing", zap.Int("level", p.cfg.OptimizationLevel))
	optimized := optimizer.Run(lowered, p.cfg.OptimizationLevel)

	if err := ctx.Err(); err != nil {
		return Result{Module: m.Name, Diagnostics: bag, Duration: time.Since(start)}, err
	}
	log.Debug("emitting")
	emitted := emitter.EmitModule(optimized, p.cfg)

	result := Result{
		Module:      m.Name,
		Emitted:     emitted,
		Diagnostics: bag,
		Duration:    time.Since(start),
	}
	log.Debug("done", zap.Duration("elapsed", result.Duration))
	return result, nil
}

// RunAll drives one Run per module concurrently across a worker pool sized
// by GOMAXPROCS, using errgroup to fan out and collect the first error
// (spec §5 (expansion)). Every module's Result is populated regardless of
// whether the overall run errors, so a caller can still inspect diagnostics
// and partial output from modules that finished before the first failure.
func (p *Pipeline) RunAll(ctx context.Context, modules []*ast.Module) ([]Result, error) {
	results := make([]Result, len(modules))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0))

	for i, m := range modules {
		i, m := i, m
		group.Go(func() error {
			res, err := p.Run(groupCtx, m)
			results[i] = res
			return err
		})
	}

	return results, group.Wait()
}

// RunAll is a package-level convenience that builds a Pipeline with no
// trace logger and fans out across modules. Callers that want pass-timing
// logs should construct a Pipeline with New and call its RunAll method.
func RunAll(ctx context.Context, modules []*ast.Module, cfg config.Strategy) ([]Result, error) {
	return New(cfg, nil).RunAll(ctx, modules)
}
