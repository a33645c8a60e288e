package ports

// Verifier checks that previously recorded outputs still exist.
//
//go:generate go run go.uber.org/mock/mockgen -source=verifier.go -destination=mocks/mock_verifier.go -package=mocks
type Verifier interface {
	// VerifyOutputs returns the outputs, relative to root, that are missing.
	VerifyOutputs(root string, outputs []string) ([]string, error)
}
