package ports

import "context"

// PythonLocator finds the installation prefix of the target Python interpreter.
//
//go:generate go run go.uber.org/mock/mockgen -source=interpreter.go -destination=mocks/mock_interpreter.go -package=mocks
type PythonLocator interface {
	// Prefix returns the interpreter's sys.prefix.
	Prefix(ctx context.Context, interpreter string) (string, error)
}
