package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/extbuild/internal/adapters/artifact"    //nolint:depguard // Wired in app layer
	"go.trai.ch/extbuild/internal/adapters/cas"         //nolint:depguard // Wired in app layer
	"go.trai.ch/extbuild/internal/adapters/config"      //nolint:depguard // Wired in app layer
	"go.trai.ch/extbuild/internal/adapters/environment" //nolint:depguard // Wired in app layer
	"go.trai.ch/extbuild/internal/adapters/fs"          //nolint:depguard // Wired in app layer
	"go.trai.ch/extbuild/internal/adapters/logger"      //nolint:depguard // Wired in app layer
	"go.trai.ch/extbuild/internal/adapters/python"      //nolint:depguard // Wired in app layer
	"go.trai.ch/extbuild/internal/adapters/toolcheck"   //nolint:depguard // Wired in app layer
	"go.trai.ch/extbuild/internal/adapters/watcher"     //nolint:depguard // Wired in app layer
	"go.trai.ch/extbuild/internal/adapters/wsl"         //nolint:depguard // Wired in app layer
	"go.trai.ch/extbuild/internal/core/ports"
	"go.trai.ch/extbuild/internal/engine/configure"
	"go.trai.ch/extbuild/internal/engine/pipeline"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			config.NodeID,
			config.OptionsNodeID,
			wsl.NodeID,
			python.NodeID,
			configure.NodeID,
			environment.NodeID,
			pipeline.NodeID,
			artifact.NodeID,
			fs.HasherNodeID,
			fs.VerifierNodeID,
			cas.NodeID,
			toolcheck.NodeID,
			watcher.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

//nolint:cyclop // one lookup per dependency
func runAppNode(ctx context.Context) (*App, error) {
	var s Services
	var err error

	if s.Logger, err = graft.Dep[ports.Logger](ctx); err != nil {
		return nil, err
	}
	if s.Projects, err = graft.Dep[ports.ProjectLoader](ctx); err != nil {
		return nil, err
	}
	if s.Options, err = graft.Dep[ports.OptionsLoader](ctx); err != nil {
		return nil, err
	}
	if s.PathMapper, err = graft.Dep[ports.PathMapper](ctx); err != nil {
		return nil, err
	}
	if s.Python, err = graft.Dep[ports.PythonLocator](ctx); err != nil {
		return nil, err
	}
	if s.Configure, err = graft.Dep[*configure.Builder](ctx); err != nil {
		return nil, err
	}
	if s.Environment, err = graft.Dep[ports.EnvironmentPreparer](ctx); err != nil {
		return nil, err
	}
	if s.Pipeline, err = graft.Dep[*pipeline.Invoker](ctx); err != nil {
		return nil, err
	}
	if s.Artifacts, err = graft.Dep[ports.ArtifactProcessor](ctx); err != nil {
		return nil, err
	}
	if s.Hasher, err = graft.Dep[ports.Hasher](ctx); err != nil {
		return nil, err
	}
	if s.Verifier, err = graft.Dep[ports.Verifier](ctx); err != nil {
		return nil, err
	}
	if s.OpenStore, err = graft.Dep[ports.BuildRecordStoreOpener](ctx); err != nil {
		return nil, err
	}
	if s.Tools, err = graft.Dep[ports.ToolChecker](ctx); err != nil {
		return nil, err
	}
	if s.Watcher, err = graft.Dep[ports.Watcher](ctx); err != nil {
		return nil, err
	}

	return New(s), nil
}
