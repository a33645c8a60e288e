// Package app implements the application layer for extbuild.
package app

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"time"

	"go.trai.ch/extbuild/internal/adapters/cas"     //nolint:depguard // Wired in app layer
	"go.trai.ch/extbuild/internal/adapters/python"  //nolint:depguard // Wired in app layer
	"go.trai.ch/extbuild/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/extbuild/internal/core/domain"
	"go.trai.ch/extbuild/internal/core/ports"
	"go.trai.ch/extbuild/internal/engine/configure"
	"go.trai.ch/extbuild/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// Services are the collaborators of an App.
type Services struct {
	Logger      ports.Logger
	Projects    ports.ProjectLoader
	Options     ports.OptionsLoader
	PathMapper  ports.PathMapper
	Python      ports.PythonLocator
	Configure   *configure.Builder
	Environment ports.EnvironmentPreparer
	Pipeline    *pipeline.Invoker
	Artifacts   ports.ArtifactProcessor
	Hasher      ports.Hasher
	Verifier    ports.Verifier
	OpenStore   ports.BuildRecordStoreOpener
	Tools       ports.ToolChecker
	Watcher     ports.Watcher
}

// App represents the main application logic.
type App struct {
	Services

	goos           string
	goarch         string
	now            func() time.Time
	debounceWindow time.Duration
}

// New creates a new App instance.
func New(s Services) *App {
	return &App{
		Services:       s,
		goos:           runtime.GOOS,
		goarch:         runtime.GOARCH,
		now:            time.Now,
		debounceWindow: watcher.DefaultDebounceWindow,
	}
}

// WithHost overrides the host operating system and architecture used for target
// resolution.
func (a *App) WithHost(goos, goarch string) *App {
	a.goos = goos
	a.goarch = goarch
	return a
}

// WithClock overrides the clock used to stamp build records.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// WithDebounceWindow overrides the quiet period before a watch rebuild.
func (a *App) WithDebounceWindow(window time.Duration) *App {
	a.debounceWindow = window
	return a
}

// BuildRequest holds the inputs of a native build.
type BuildRequest struct {
	// SourceDir is the project root. Empty means the current directory.
	SourceDir string
	// ExtDir is the install root handed over by the packaging layer.
	ExtDir string
	// PythonRoot overrides the interpreter prefix query.
	PythonRoot string
	// Python is the interpreter asked for its prefix. Empty selects the platform default.
	Python string
}

// prepared is everything resolved before the first phase runs.
type prepared struct {
	project *domain.Project
	options domain.BuildOptions
	target  domain.BuildTarget
	layout  domain.InstallLayout
	config  *domain.BuildConfiguration
}

func (a *App) loadProject(sourceDir string) (*domain.Project, error) {
	if sourceDir == "" {
		sourceDir = "."
	}
	project, err := a.Projects.Load(sourceDir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load project")
	}
	return project, nil
}

func (a *App) resolveTarget(opts domain.BuildOptions) (domain.BuildTarget, error) {
	return domain.ResolveTarget(domain.HostInfo{
		OS:         a.goos,
		Arch:       a.goarch,
		AndroidABI: opts.AndroidABI,
	})
}

func (a *App) prepare(ctx context.Context, req BuildRequest, opts domain.BuildOptions) (*prepared, error) {
	if req.ExtDir == "" {
		return nil, domain.ErrMissingExtensionDir
	}

	project, err := a.loadProject(req.SourceDir)
	if err != nil {
		return nil, err
	}

	target, err := a.resolveTarget(opts)
	if err != nil {
		return nil, err
	}
	a.Logger.Info("target: " + string(target.Platform) + "/" + target.Arch + ", preset " + target.Preset)

	extDir, err := filepath.Abs(req.ExtDir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve extension directory"), "path", req.ExtDir)
	}
	layout := domain.NewInstallLayout(extDir)

	if err := a.Configure.Validate(target, opts); err != nil {
		return nil, err
	}

	mapping := a.PathMapper.Detect(ctx, project.SourceDir)
	for _, note := range mapping.Diagnostics {
		a.Logger.Info(note)
	}

	pythonRoot := req.PythonRoot
	if pythonRoot == "" && !target.IsAndroid() {
		interpreter := req.Python
		if interpreter == "" {
			interpreter = python.DefaultInterpreter()
		}
		pythonRoot, err = a.Python.Prefix(ctx, interpreter)
		if err != nil {
			return nil, err
		}
	}

	cfg, err := a.Configure.Build(configure.Request{
		Project:    project,
		Target:     target,
		Layout:     layout,
		Options:    opts,
		PythonRoot: pythonRoot,
		Mapping:    mapping.Rule,
	})
	if err != nil {
		return nil, err
	}

	return &prepared{
		project: project,
		options: opts,
		target:  target,
		layout:  layout,
		config:  cfg,
	}, nil
}

func (a *App) job(p *prepared, env []string) pipeline.Job {
	return pipeline.Job{
		Config:    p.config,
		WorkDir:   p.project.WorkingDirectory(),
		BuildType: p.project.BuildType,
		Env:       env,
		Dir:       p.project.SourceDir,
	}
}

// Build runs the native build and records it. It returns a nil record when the
// native build is disabled.
func (a *App) Build(ctx context.Context, req BuildRequest) (*domain.BuildRecord, error) {
	opts := a.Options.Options()
	if opts.Conflicting() {
		a.Logger.Warn(domain.EnvReleaseWheel + "=1 with " + domain.EnvNoNativeBuild + "=1: native build skipped, data is still bundled")
	}
	if opts.SkipNative {
		a.Logger.Info(domain.EnvNoNativeBuild + "=1, skipping native build")
		return nil, nil
	}

	p, err := a.prepare(ctx, req, opts)
	if err != nil {
		return nil, err
	}

	env, err := a.Environment.Prepare(ctx, p.target)
	if err != nil {
		return nil, err
	}

	if err := a.Pipeline.Run(ctx, a.job(p, env)); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrBuildFailed.Error()), "preset", p.target.Preset)
	}

	if _, err := a.Artifacts.RemoveDenylisted(p.layout, p.project.Denylist); err != nil {
		return nil, err
	}

	return a.record(p)
}

func (a *App) record(p *prepared) (*domain.BuildRecord, error) {
	outputs, err := a.Hasher.HashTree(p.layout.Root)
	if err != nil {
		return nil, err
	}

	var version string
	if v, err := a.readVersion(p.project); err == nil {
		version = v.String()
	} else {
		a.Logger.Warn("build record without version: " + err.Error())
	}

	args := p.config.Args()
	record := domain.BuildRecord{
		Preset:      p.target.Preset,
		Platform:    p.target.Platform,
		Version:     version,
		Fingerprint: a.Hasher.Fingerprint(args),
		Arguments:   args,
		InstallRoot: p.layout.Root,
		Outputs:     outputs,
		CompletedAt: a.now().UTC(),
	}

	store, err := a.OpenStore(cas.StatePath(p.project.WorkingDirectory()))
	if err != nil {
		return nil, err
	}
	if err := store.Put(record); err != nil {
		return nil, err
	}

	return &record, nil
}

// Plan describes a build without running it.
type Plan struct {
	Target domain.BuildTarget
	// Skipped is set when the native build is disabled; nothing else is filled in then.
	Skipped     bool
	Arguments   []string
	Fingerprint string
	Steps       []pipeline.Step
}

// Plan resolves the target and the configure arguments. Only the interpreter prefix
// query and the path mapper may spawn processes; nothing is written.
func (a *App) Plan(ctx context.Context, req BuildRequest) (*Plan, error) {
	opts := a.Options.Options()
	if opts.SkipNative {
		target, err := a.resolveTarget(opts)
		if err != nil {
			return nil, err
		}
		return &Plan{Target: target, Skipped: true}, nil
	}

	p, err := a.prepare(ctx, req, opts)
	if err != nil {
		return nil, err
	}

	args := p.config.Args()
	return &Plan{
		Target:      p.target,
		Arguments:   args,
		Fingerprint: a.Hasher.Fingerprint(args),
		Steps:       a.Pipeline.Plan(a.job(p, nil)),
	}, nil
}

// BundleData copies the project's data directory into buildLib in release-wheel mode.
// It reports whether anything was copied.
func (a *App) BundleData(_ context.Context, sourceDir, buildLib string) (bool, error) {
	opts := a.Options.Options()
	if !opts.ReleaseWheel {
		a.Logger.Info("not a release wheel, skipping data bundle")
		return false, nil
	}

	project, err := a.loadProject(sourceDir)
	if err != nil {
		return false, err
	}

	src := filepath.Join(project.SourceDir, project.Data.Source)
	dst := filepath.Join(buildLib, project.Data.Destination)
	a.Logger.Info("bundling " + src + " into " + dst)
	if err := a.Artifacts.BundleData(src, dst); err != nil {
		return false, err
	}
	return true, nil
}

// PackageVersion reads the version triple from the project's version header.
func (a *App) PackageVersion(sourceDir string) (domain.VersionTriple, error) {
	project, err := a.loadProject(sourceDir)
	if err != nil {
		return domain.VersionTriple{}, err
	}
	return a.readVersion(project)
}

func (a *App) readVersion(project *domain.Project) (domain.VersionTriple, error) {
	path := project.VersionHeaderPath()
	//nolint:gosec // path comes from the project definition
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.VersionTriple{}, zerr.With(zerr.Wrap(err, domain.ErrVersionHeaderReadFailed.Error()), "path", path)
	}
	return domain.ExtractVersion(string(data), project.VersionMacro)
}

// StatusReport is the recorded state of the current preset.
type StatusReport struct {
	Target domain.BuildTarget
	// Record is nil when the preset was never built successfully.
	Record *domain.BuildRecord
	// Missing lists recorded outputs no longer present in the install root.
	Missing []string
}

// Status returns the last successful build of the current preset.
func (a *App) Status(_ context.Context, sourceDir string) (*StatusReport, error) {
	project, err := a.loadProject(sourceDir)
	if err != nil {
		return nil, err
	}

	target, err := a.resolveTarget(a.Options.Options())
	if err != nil {
		return nil, err
	}

	store, err := a.OpenStore(cas.StatePath(project.WorkingDirectory()))
	if err != nil {
		return nil, err
	}
	record, err := store.Get(target.Preset)
	if err != nil {
		return nil, err
	}

	report := &StatusReport{Target: target, Record: record}
	if record == nil {
		return report, nil
	}

	outputs := make([]string, 0, len(record.Outputs))
	for rel := range record.Outputs {
		outputs = append(outputs, rel)
	}
	slices.Sort(outputs)

	report.Missing, err = a.Verifier.VerifyOutputs(record.InstallRoot, outputs)
	if err != nil {
		return nil, err
	}
	return report, nil
}

// Requirements lists the external tools a build of project relies on.
func Requirements(project *domain.Project) []domain.ToolRequirement {
	return []domain.ToolRequirement{
		{
			Name:       "cmake",
			Purpose:    "configures, builds and installs the native extension",
			Constraint: ">= " + project.MinCMakeVersion,
		},
		{
			Name:     "ninja",
			Optional: true,
			Purpose:  "generator used by the build presets",
		},
		{
			Name:     "wslpath",
			Optional: true,
			Purpose:  "maps debug-info paths when building under WSL",
		},
	}
}

// Doctor checks that the tools required by the project are installed.
func (a *App) Doctor(ctx context.Context, sourceDir string) ([]domain.ToolStatus, error) {
	project, err := a.loadProject(sourceDir)
	if err != nil {
		return nil, err
	}
	return a.Tools.Check(ctx, Requirements(project))
}

// Watch builds once and then rebuilds whenever a source file changes, until ctx is
// done. Builds run one at a time; changes arriving during a build queue one rebuild.
// Build failures are logged and do not stop the watch.
func (a *App) Watch(ctx context.Context, req BuildRequest) error {
	project, err := a.loadProject(req.SourceDir)
	if err != nil {
		return err
	}
	req.SourceDir = project.SourceDir

	a.rebuild(ctx, req)

	if err := a.Watcher.Start(ctx, project.SourceDir, watchSkips(project, req.ExtDir)); err != nil {
		return err
	}
	defer func() {
		if err := a.Watcher.Stop(); err != nil {
			a.Logger.Error(zerr.Wrap(err, "failed to stop watcher"))
		}
	}()

	trigger := make(chan struct{}, 1)
	debouncer := watcher.NewDebouncer(a.debounceWindow, func(paths []string) {
		a.Logger.Info("changed: " + strings.Join(paths, ", "))
		select {
		case trigger <- struct{}{}:
		default:
		}
	})

	go func() {
		for event := range a.Watcher.Events() {
			debouncer.Add(event.Path)
		}
	}()

	a.Logger.Info("watching " + project.SourceDir)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-trigger:
			a.rebuild(ctx, req)
		}
	}
}

func (a *App) rebuild(ctx context.Context, req BuildRequest) {
	if _, err := a.Build(ctx, req); err != nil {
		a.Logger.Error(err)
	}
}

func watchSkips(project *domain.Project, extDir string) []string {
	skip := []string{project.BuildDir}
	if extDir == "" {
		return skip
	}
	abs, err := filepath.Abs(extDir)
	if err != nil {
		return skip
	}
	rel, err := filepath.Rel(project.SourceDir, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return skip
	}
	return append(skip, rel)
}
