package ports

import "go.trai.ch/extbuild/internal/core/domain"

// BuildRecordStore persists the last successful build per preset.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type BuildRecordStore interface {
	// Get retrieves the record of a preset.
	// Returns nil, nil if not found.
	Get(preset string) (*domain.BuildRecord, error)

	// Put stores the record.
	Put(record domain.BuildRecord) error
}

// BuildRecordStoreOpener opens the store persisted at path.
type BuildRecordStoreOpener func(path string) (BuildRecordStore, error)
