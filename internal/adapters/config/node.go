package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/extbuild/internal/adapters/logger"
	"go.trai.ch/extbuild/internal/core/ports"
)

// NodeID is the unique identifier for the project loader Graft node.
const NodeID graft.ID = "adapter.config_loader"

// OptionsNodeID is the unique identifier for the environment options Graft node.
const OptionsNodeID graft.ID = "adapter.options"

func init() {
	graft.Register(graft.Node[ports.ProjectLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ProjectLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})

	graft.Register(graft.Node[ports.OptionsLoader]{
		ID:        OptionsNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.OptionsLoader, error) {
			return NewEnvOptions(), nil
		},
	})
}
