package ports

import "go.trai.ch/extbuild/internal/core/domain"

// ArtifactProcessor post-processes the install tree and the package build output.
//
//go:generate go run go.uber.org/mock/mockgen -source=artifact.go -destination=mocks/mock_artifact.go -package=mocks
type ArtifactProcessor interface {
	// RemoveDenylisted deletes the named files from the install root if present and
	// returns the ones actually removed.
	RemoveDenylisted(layout domain.InstallLayout, names []string) ([]string, error)

	// BundleData replaces dst with a full copy of the src directory.
	BundleData(src, dst string) error
}
