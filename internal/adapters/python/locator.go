// Package python locates the installation prefix of the target interpreter.
package python

import (
	"bytes"
	"context"
	"os"
	"runtime"
	"strings"

	"go.trai.ch/extbuild/internal/core/domain"
	"go.trai.ch/extbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// PrefixScript prints sys.prefix of the running interpreter.
const PrefixScript = "import sys; print(sys.prefix)"

var _ ports.PythonLocator = (*Locator)(nil)

// Locator implements ports.PythonLocator by asking the interpreter itself.
type Locator struct {
	executor ports.Executor
	environ  func() []string
}

// NewLocator creates a Locator.
func NewLocator(executor ports.Executor) *Locator {
	return &Locator{
		executor: executor,
		environ:  os.Environ,
	}
}

// DefaultInterpreter is the interpreter name used when none is given.
func DefaultInterpreter() string {
	if runtime.GOOS == "windows" {
		return "python"
	}
	return "python3"
}

// Prefix runs interpreter and returns its sys.prefix.
func (l *Locator) Prefix(ctx context.Context, interpreter string) (string, error) {
	if interpreter == "" {
		interpreter = DefaultInterpreter()
	}

	var out bytes.Buffer
	inv := &domain.Invocation{
		Name:  interpreter,
		Args:  []string{"-c", PrefixScript},
		Env:   l.environ(),
		Quiet: true,
	}
	if err := l.executor.Execute(ctx, inv, &out, nil); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrPythonRootNotFound.Error()), "interpreter", interpreter)
	}

	prefix := strings.TrimSpace(out.String())
	if prefix == "" {
		return "", zerr.With(domain.ErrPythonRootNotFound, "interpreter", interpreter)
	}
	return prefix, nil
}
