package ports

import "go.trai.ch/extbuild/internal/core/domain"

// ProjectLoader loads the static project parameters.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ProjectLoader interface {
	// Load reads the project file from the given source directory, falling back to
	// defaults when the file does not exist.
	Load(sourceDir string) (*domain.Project, error)
}

// OptionsLoader reads the per-run build options.
type OptionsLoader interface {
	// Options returns the options derived from the process environment.
	Options() domain.BuildOptions
}
