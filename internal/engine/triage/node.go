package triage

import (
	"context"

	"github.com/MOMA-AUH/gwf-failed-targets/internal/adapters/logger"
	"github.com/MOMA-AUH/gwf-failed-targets/internal/adapters/telemetry"
	"github.com/MOMA-AUH/gwf-failed-targets/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the triage engine Graft node.
const NodeID graft.ID = "engine.triage"

func init() {
	graft.Register(graft.Node[*Engine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Engine, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return NewEngine(NewClassifier(), tracer, log), nil
		},
	})
}
