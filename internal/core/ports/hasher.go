package ports

// Hasher defines the interface for computing hashes.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// Fingerprint computes a stable hash of an ordered argument list.
	Fingerprint(args []string) string

	// HashTree hashes every regular file below root, keyed by slash-separated relative path.
	HashTree(root string) (map[string]string, error)
}
