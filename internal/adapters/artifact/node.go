package artifact

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/extbuild/internal/adapters/logger"
	"go.trai.ch/extbuild/internal/core/ports"
)

// NodeID is the unique identifier for the artifact processor Graft node.
const NodeID graft.ID = "adapter.artifact"

func init() {
	graft.Register(graft.Node[ports.ArtifactProcessor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ArtifactProcessor, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewProcessor(log), nil
		},
	})
}
