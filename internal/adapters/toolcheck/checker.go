// Package toolcheck verifies that the external build tools are installed.
package toolcheck

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/extbuild/internal/core/domain"
	"go.trai.ch/extbuild/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.ToolChecker = (*Checker)(nil)

var versionPattern = regexp.MustCompile(`\d+\.\d+(?:\.\d+)?`)

// Checker implements ports.ToolChecker. Requirements are checked concurrently.
type Checker struct {
	executor ports.Executor
	lookPath func(string) (string, error)
	environ  func() []string
}

// NewChecker creates a Checker resolving tools on the process PATH.
func NewChecker(executor ports.Executor) *Checker {
	return NewCheckerWithLookPath(executor, exec.LookPath)
}

// NewCheckerWithLookPath creates a Checker with a custom executable lookup.
func NewCheckerWithLookPath(executor ports.Executor, lookPath func(string) (string, error)) *Checker {
	return &Checker{
		executor: executor,
		lookPath: lookPath,
		environ:  os.Environ,
	}
}

// Check inspects every requirement. Statuses are returned in input order even when
// an error is returned. The error names the first unsatisfied required tool.
func (c *Checker) Check(ctx context.Context, reqs []domain.ToolRequirement) ([]domain.ToolStatus, error) {
	statuses := make([]domain.ToolStatus, len(reqs))

	g, ctx := errgroup.WithContext(ctx)
	for i, req := range reqs {
		g.Go(func() error {
			statuses[i] = c.inspect(ctx, req)
			return nil
		})
	}
	_ = g.Wait()

	for _, status := range statuses {
		if status.Satisfied || status.Requirement.Optional {
			continue
		}
		if status.Path == "" {
			return statuses, zerr.With(domain.ErrMissingTool, "tool", status.Requirement.Name)
		}
		return statuses, zerr.With(domain.ErrToolVersionUnsatisfied, "tool", status.Requirement.Name)
	}
	return statuses, nil
}

func (c *Checker) inspect(ctx context.Context, req domain.ToolRequirement) domain.ToolStatus {
	status := domain.ToolStatus{Requirement: req}

	for _, name := range append([]string{req.Name}, req.Alternatives...) {
		if path, err := c.lookPath(name); err == nil {
			status.Path = path
			break
		}
	}
	if status.Path == "" {
		status.Problem = "not found in PATH"
		return status
	}

	if req.Constraint == "" {
		status.Satisfied = true
		return status
	}

	constraint, err := semver.NewConstraint(req.Constraint)
	if err != nil {
		status.Problem = "invalid constraint " + req.Constraint + ": " + err.Error()
		return status
	}

	raw, err := c.version(ctx, status.Path)
	if err != nil {
		status.Problem = "version query failed: " + err.Error()
		return status
	}
	status.Version = raw

	version, err := semver.NewVersion(raw)
	if err != nil {
		status.Problem = "unparsable version " + raw
		return status
	}

	if ok, errs := constraint.Validate(version); !ok {
		problems := make([]string, 0, len(errs))
		for _, e := range errs {
			problems = append(problems, e.Error())
		}
		status.Problem = strings.Join(problems, "; ")
		return status
	}

	status.Satisfied = true
	return status
}

func (c *Checker) version(ctx context.Context, path string) (string, error) {
	var out bytes.Buffer
	inv := &domain.Invocation{
		Name:  path,
		Args:  []string{"--version"},
		Env:   c.environ(),
		Quiet: true,
	}
	if err := c.executor.Execute(ctx, inv, &out, nil); err != nil {
		return "", err
	}
	return ParseVersion(out.String())
}

// ParseVersion extracts the first dotted version number from a --version banner,
// e.g. "cmake version 3.28.3" yields "3.28.3".
func ParseVersion(banner string) (string, error) {
	v := versionPattern.FindString(banner)
	if v == "" {
		return "", zerr.With(zerr.New("no version in output"), "output", strings.TrimSpace(banner))
	}
	return v, nil
}
