// Package pipeline drives the external configure, build and install phases.
package pipeline

import (
	"context"
	"os"
	"sync"

	"go.trai.ch/extbuild/internal/core/domain"
	"go.trai.ch/extbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultTool is the build tool invoked for every phase.
const DefaultTool = "cmake"

// Job describes one pipeline run.
type Job struct {
	Config    *domain.BuildConfiguration
	WorkDir   domain.WorkingDirectory
	BuildType string
	// Env is the complete environment of every phase.
	Env []string
	// Dir is the directory the phases run in, normally the project source.
	Dir string
}

// Step is one planned phase invocation.
type Step struct {
	Phase      domain.Phase
	Invocation domain.Invocation
}

// Invoker runs the phases as a state machine:
// Idle -> Configuring -> Building -> Installing -> Done, or Failed on the first error.
type Invoker struct {
	executor ports.Executor
	tracer   ports.Tracer
	logger   ports.Logger
	tool     string

	mu      sync.RWMutex
	phase   domain.Phase
	history []domain.Phase
}

// NewInvoker creates an Invoker in the Idle phase.
func NewInvoker(executor ports.Executor, tracer ports.Tracer, logger ports.Logger) *Invoker {
	return &Invoker{
		executor: executor,
		tracer:   tracer,
		logger:   logger,
		tool:     DefaultTool,
		phase:    domain.PhaseIdle,
		history:  []domain.Phase{domain.PhaseIdle},
	}
}

// Phase returns the current phase.
func (inv *Invoker) Phase() domain.Phase {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return inv.phase
}

// History returns every phase entered since the last reset, in order.
func (inv *Invoker) History() []domain.Phase {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	out := make([]domain.Phase, len(inv.history))
	copy(out, inv.history)
	return out
}

// Plan returns the three phase invocations of job without running anything.
func (inv *Invoker) Plan(job Job) []Step {
	dir := job.WorkDir.Path
	mk := func(args ...string) domain.Invocation {
		return domain.Invocation{Name: inv.tool, Args: args, Dir: job.Dir, Env: job.Env}
	}
	return []Step{
		{Phase: domain.PhaseConfiguring, Invocation: mk(job.Config.Args()...)},
		{Phase: domain.PhaseBuilding, Invocation: mk("--build", dir, "--config", job.BuildType)},
		{Phase: domain.PhaseInstalling, Invocation: mk("--install", dir, "--config", job.BuildType)},
	}
}

// Run executes the phases in order. The working directory is removed right after
// entering Configuring. The first failure moves the invoker to Failed and the
// remaining phases are not run; nothing is rolled back.
func (inv *Invoker) Run(ctx context.Context, job Job) error {
	inv.reset()

	steps := inv.Plan(job)
	names := make([]string, 0, len(steps))
	for _, s := range steps {
		names = append(names, string(s.Phase))
	}
	inv.tracer.EmitPlan(ctx, names)

	for i, step := range steps {
		if err := inv.transition(step.Phase); err != nil {
			return err
		}

		if i == 0 {
			if err := wipe(job.WorkDir); err != nil {
				inv.fail()
				return err
			}
		}

		if err := inv.runStep(ctx, step); err != nil {
			inv.fail()
			return err
		}
	}

	return inv.transition(domain.PhaseDone)
}

func (inv *Invoker) runStep(ctx context.Context, step Step) error {
	ctx, span := inv.tracer.Start(ctx, string(step.Phase))
	defer span.End()

	span.SetAttribute("command", step.Invocation.String())
	inv.logger.Info(string(step.Phase) + ": " + step.Invocation.String())

	if err := inv.executor.Execute(ctx, &step.Invocation, span, span); err != nil {
		span.RecordError(err)
		return zerr.With(zerr.Wrap(err, domain.ErrPhaseFailed.Error()), "phase", string(step.Phase))
	}
	return nil
}

func (inv *Invoker) reset() {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.phase = domain.PhaseIdle
	inv.history = []domain.Phase{domain.PhaseIdle}
}

func (inv *Invoker) transition(to domain.Phase) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	if !inv.phase.CanTransition(to) {
		return zerr.With(domain.ErrInvalidPhaseTransition, "transition", string(inv.phase)+" -> "+string(to))
	}
	inv.phase = to
	inv.history = append(inv.history, to)
	return nil
}

func (inv *Invoker) fail() {
	_ = inv.transition(domain.PhaseFailed)
}

func wipe(dir domain.WorkingDirectory) error {
	if err := os.RemoveAll(dir.Path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWorkingDirWipeFailed.Error()), "path", dir.Path)
	}
	return nil
}
