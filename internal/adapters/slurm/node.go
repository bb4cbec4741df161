package slurm

import (
	"context"

	"github.com/MOMA-AUH/gwf-failed-targets/internal/adapters/logger"
	"github.com/MOMA-AUH/gwf-failed-targets/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the accounting source Graft node.
const NodeID graft.ID = "adapter.slurm"

func init() {
	graft.Register(graft.Node[ports.AccountingSource]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.AccountingSource, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewSource(log), nil
		},
	})
}
