// Package wsl detects Windows Subsystem for Linux hosts and maps source paths for
// debug info produced by Windows-side debuggers.
package wsl

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/extbuild/internal/core/domain"
	"go.trai.ch/extbuild/internal/core/ports"
)

// InteropMarker exists only on WSL kernels.
const InteropMarker = "/proc/sys/fs/binfmt_misc/WSLInterop"

var _ ports.PathMapper = (*Mapper)(nil)

// Mapper implements ports.PathMapper using wslpath.
type Mapper struct {
	executor ports.Executor
	logger   ports.Logger
	marker   string
	lookPath func(string) (string, error)
	environ  func() []string
}

// Option configures a Mapper.
type Option func(*Mapper)

// WithMarker overrides the interop marker path.
func WithMarker(path string) Option {
	return func(m *Mapper) { m.marker = path }
}

// WithLookPath overrides the executable lookup used to find wslpath.
func WithLookPath(fn func(string) (string, error)) Option {
	return func(m *Mapper) { m.lookPath = fn }
}

// WithEnviron overrides the environment handed to wslpath.
func WithEnviron(fn func() []string) Option {
	return func(m *Mapper) { m.environ = fn }
}

// NewMapper creates a Mapper.
func NewMapper(executor ports.Executor, logger ports.Logger, opts ...Option) *Mapper {
	m := &Mapper{
		executor: executor,
		logger:   logger,
		marker:   InteropMarker,
		lookPath: exec.LookPath,
		environ:  os.Environ,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Detect returns a mapping rule when running under WSL and the host-side path of
// sourceDir differs from the Linux one. Failures are reported as diagnostics.
func (m *Mapper) Detect(ctx context.Context, sourceDir string) domain.PathMapping {
	var mapping domain.PathMapping

	if _, err := os.Stat(m.marker); err != nil {
		return mapping
	}

	m.note(&mapping, "WSL detected, attempting path mapping for debug info...")

	target := sourceDir
	if _, err := m.lookPath("wslpath"); err == nil {
		converted, err := m.convert(ctx, sourceDir)
		if err != nil {
			m.note(&mapping, "Failed to setup WSL path mapping: "+err.Error())
			return mapping
		}
		target = converted
	}

	m.note(&mapping, "Path mapping: '"+sourceDir+"' -> '"+target+"'")
	if target == sourceDir {
		return mapping
	}

	mapping.Rule = &domain.PathMappingRule{Source: sourceDir, Target: target}
	m.note(&mapping, "Added build flag: "+mapping.Rule.Flag())
	return mapping
}

func (m *Mapper) convert(ctx context.Context, path string) (string, error) {
	var out bytes.Buffer
	inv := &domain.Invocation{
		Name:  "wslpath",
		Args:  []string{"-m", path},
		Env:   m.environ(),
		Quiet: true,
	}
	if err := m.executor.Execute(ctx, inv, &out, nil); err != nil {
		return "", err
	}
	return strings.TrimSpace(out.String()), nil
}

func (m *Mapper) note(mapping *domain.PathMapping, msg string) {
	mapping.Diagnostics = append(mapping.Diagnostics, msg)
	if m.logger != nil {
		m.logger.Info(msg)
	}
}
