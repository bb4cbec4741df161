package config

import (
	"context"

	"github.com/MOMA-AUH/gwf-failed-targets/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the workflow loader Graft node.
const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[ports.WorkflowLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.WorkflowLoader, error) {
			return NewLoader(), nil
		},
	})
}
