package app

import (
	"context"

	"github.com/MOMA-AUH/gwf-failed-targets/internal/adapters/config"
	"github.com/MOMA-AUH/gwf-failed-targets/internal/adapters/gwf"
	"github.com/MOMA-AUH/gwf-failed-targets/internal/adapters/logger"
	"github.com/MOMA-AUH/gwf-failed-targets/internal/adapters/slurm"
	"github.com/MOMA-AUH/gwf-failed-targets/internal/adapters/telemetry"
	"github.com/MOMA-AUH/gwf-failed-targets/internal/core/ports"
	"github.com/MOMA-AUH/gwf-failed-targets/internal/engine/triage"
	"github.com/grindlemire/graft"
)

// Components bundles the resolved application with the cross-cutting
// collaborators main needs directly.
type Components struct {
	App    *App
	Logger ports.Logger
}

// Graft node identifiers for the application layer.
const (
	NodeID           graft.ID = "app"
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			gwf.StateNodeID,
			gwf.SubmitterNodeID,
			slurm.NodeID,
			triage.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.WorkflowLoader](ctx)
			if err != nil {
				return nil, err
			}
			state, err := graft.Dep[ports.StateStore](ctx)
			if err != nil {
				return nil, err
			}
			source, err := graft.Dep[ports.AccountingSource](ctx)
			if err != nil {
				return nil, err
			}
			engine, err := graft.Dep[*triage.Engine](ctx)
			if err != nil {
				return nil, err
			}
			submitter, err := graft.Dep[ports.Submitter](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return New(loader, state, source, engine, submitter, log, tracer), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: application, Logger: log}, nil
		},
	})
}
