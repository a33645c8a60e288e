package ports

// InputResolver resolves glob patterns below a root directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type InputResolver interface {
	// ResolveInputs returns the sorted, de-duplicated matches of the given patterns.
	// Patterns without any match are skipped.
	ResolveInputs(patterns []string, root string) ([]string, error)
}
