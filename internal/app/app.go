// Package app implements the application layer: one post-mortem run from
// accounting query to report and optional restart plan hand-off.
package app

import (
	"context"
	"os"
	"sort"

	"github.com/MOMA-AUH/gwf-failed-targets/internal/adapters/slurm"
	"github.com/MOMA-AUH/gwf-failed-targets/internal/core/domain"
	"github.com/MOMA-AUH/gwf-failed-targets/internal/core/ports"
	"github.com/MOMA-AUH/gwf-failed-targets/internal/engine/triage"
	"github.com/MOMA-AUH/gwf-failed-targets/internal/ui/report"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader    ports.WorkflowLoader
	state     ports.StateStore
	source    ports.AccountingSource
	engine    *triage.Engine
	submitter ports.Submitter
	logger    ports.Logger
	tracer    ports.Tracer

	reporter ports.Reporter
}

// New creates a new App instance.
func New(
	loader ports.WorkflowLoader,
	state ports.StateStore,
	source ports.AccountingSource,
	engine *triage.Engine,
	submitter ports.Submitter,
	logger ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		loader:    loader,
		state:     state,
		source:    source,
		engine:    engine,
		submitter: submitter,
		logger:    logger,
		tracer:    tracer,
	}
}

// WithReporter overrides the reporter selected from RunOptions.
// This is primarily used for testing.
func (a *App) WithReporter(r ports.Reporter) *App {
	a.reporter = r
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// Dir is the workflow project directory.
	Dir string
	// LogPath switches output from the stdout table to structured records
	// appended to this file.
	LogPath string
	// Restart enables restart planning and resubmission of eligible
	// targets and their dependents.
	Restart bool
	// Multiplier scales the resource implicated by each failure kind.
	Multiplier float64
}

// Run executes one post-mortem pass: load the workflow, fetch accounting
// records for the failed targets in a single batch, triage, report, and
// hand the plan back to the host runtime when restart was requested.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	if opts.Restart {
		if err := triage.ValidateMultiplier(opts.Multiplier); err != nil {
			return err
		}
	}

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	graph, err := a.loader.Load(dir)
	if err != nil {
		return zerr.Wrap(err, "failed to load workflow")
	}

	failed, err := a.state.FailedTargets(dir)
	if err != nil {
		return err
	}
	if len(failed) == 0 {
		a.logger.Info("no failed targets")
		return nil
	}
	a.logger.Info("triaging failed targets", "count", len(failed))

	jobIDs, err := a.state.TrackedJobs(dir)
	if err != nil {
		return err
	}

	// One coarse batch query; a failure here aborts the run so no plan is
	// ever derived from partial accounting data.
	raw, err := a.queryAccounting(ctx, failed, jobIDs)
	if err != nil {
		return err
	}

	records, parseErrs := slurm.Parse(raw)

	findings, err := a.engine.Run(ctx, graph, failed, jobIDs, records, parseErrs, triage.Options{
		Plan:       opts.Restart,
		Multiplier: opts.Multiplier,
	})
	if err != nil {
		return err
	}

	reporter := a.reporter
	if reporter == nil {
		if opts.LogPath != "" {
			reporter = report.NewFileReporter(opts.LogPath)
		} else {
			reporter = report.NewTableReporter(os.Stdout)
		}
	}
	if err := reporter.Emit(findings); err != nil {
		return err
	}

	if !opts.Restart {
		return nil
	}
	return a.resubmit(ctx, dir, findings)
}

// queryAccounting batches the job IDs of the failed targets into a single
// accounting query.
func (a *App) queryAccounting(ctx context.Context, failed []string, jobIDs map[string]string) (string, error) {
	ids := make([]string, 0, len(failed))
	seen := make(map[string]bool)
	for _, name := range failed {
		id, ok := jobIDs[name]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	sort.Strings(ids)

	ctx, span := a.tracer.Start(ctx, "accounting.query")
	defer span.End()
	span.SetAttribute("jobs", len(ids))

	raw, err := a.source.Query(ctx, ids)
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	return raw, nil
}

// resubmit hands the computed decisions to the host runtime.
func (a *App) resubmit(ctx context.Context, dir string, findings []domain.Finding) error {
	decisions := make([]domain.RestartDecision, 0, len(findings))
	for _, f := range findings {
		if f.Decision != nil {
			decisions = append(decisions, *f.Decision)
		}
	}

	if err := a.submitter.Resubmit(ctx, dir, decisions); err != nil {
		return err
	}
	return nil
}
