package python

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/extbuild/internal/adapters/shell"
	"go.trai.ch/extbuild/internal/core/ports"
)

// NodeID is the unique identifier for the Python locator Graft node.
const NodeID graft.ID = "adapter.python"

func init() {
	graft.Register(graft.Node[ports.PythonLocator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.PythonLocator, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewLocator(executor), nil
		},
	})
}
