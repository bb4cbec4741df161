package triage

import (
	"context"
	"runtime"

	"github.com/MOMA-AUH/gwf-failed-targets/internal/core/domain"
	"github.com/MOMA-AUH/gwf-failed-targets/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// Options configures one triage run.
type Options struct {
	// Plan enables restart planning for every finding.
	Plan bool
	// Multiplier scales the resource implicated by the failure kind.
	Multiplier float64
}

// Engine runs the classification, correlation and planning passes over one
// batch of failed targets. It holds no state between runs: every invocation
// recomputes from the latest accounting data.
type Engine struct {
	classifier *Classifier
	tracer     ports.Tracer
	logger     ports.Logger
}

// NewEngine creates a triage engine.
func NewEngine(classifier *Classifier, tracer ports.Tracer, logger ports.Logger) *Engine {
	return &Engine{
		classifier: classifier,
		tracer:     tracer,
		logger:     logger,
	}
}

// Run correlates the failed targets with their accounting records,
// classifies each failure and, when opts.Plan is set, computes a restart
// decision per finding. Per-target work is independent and fans out over a
// bounded errgroup; results keep the correlator's deterministic order.
func (e *Engine) Run(
	ctx context.Context,
	graph *domain.Graph,
	failed []string,
	jobIDs map[string]string,
	records map[string]*domain.AccountingRecord,
	parseErrs map[string]error,
	opts Options,
) ([]domain.Finding, error) {
	if opts.Plan {
		if err := ValidateMultiplier(opts.Multiplier); err != nil {
			return nil, err
		}
	}

	ctx, span := e.tracer.Start(ctx, "triage.run")
	defer span.End()
	span.SetAttribute("failed_targets", len(failed))

	findings := Correlate(graph, failed, jobIDs, records, parseErrs)

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i := range findings {
		g.Go(func() error {
			f := &findings[i]
			f.Kind = e.classifier.Classify(f.Record)

			if !opts.Plan {
				return nil
			}

			target, _ := graph.Target(f.Target)
			decision, err := PlanRestart(target, *f, opts.Multiplier)
			if err != nil {
				return err
			}
			f.Decision = decision
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return nil, err
	}

	return findings, nil
}
