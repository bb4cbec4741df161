package gwf

import (
	"context"

	"github.com/MOMA-AUH/gwf-failed-targets/internal/adapters/logger"
	"github.com/MOMA-AUH/gwf-failed-targets/internal/core/ports"
	"github.com/grindlemire/graft"
)

// Graft node identifiers for the host runtime adapters.
const (
	StateNodeID     graft.ID = "adapter.gwf.state"
	SubmitterNodeID graft.ID = "adapter.gwf.submitter"
)

func init() {
	graft.Register(graft.Node[ports.StateStore]{
		ID:        StateNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StateStore, error) {
			return NewState(), nil
		},
	})

	graft.Register(graft.Node[ports.Submitter]{
		ID:        SubmitterNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Submitter, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewSubmitter(log), nil
		},
	})
}
