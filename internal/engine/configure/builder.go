// Package configure composes the ordered argument list of the configure phase.
package configure

import (
	"path/filepath"

	"go.trai.ch/extbuild/internal/core/domain"
	"go.trai.ch/extbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Globs below the Android python prefix.
const (
	pythonIncludeGlob = "include/python3.*"
	pythonLibraryGlob = "lib/libpython3.*.so"
)

// Request holds every input of a configuration. Identical requests produce identical
// argument lists.
type Request struct {
	Project *domain.Project
	Target  domain.BuildTarget
	Layout  domain.InstallLayout
	Options domain.BuildOptions
	// PythonRoot is the interpreter prefix. Ignored on Android.
	PythonRoot string
	// Mapping is the optional debug-path remapping rule.
	Mapping *domain.PathMappingRule
}

// Builder implements the ConfigurationBuilder.
type Builder struct {
	resolver ports.InputResolver
}

// NewBuilder creates a Builder that discovers Android python files with resolver.
func NewBuilder(resolver ports.InputResolver) *Builder {
	return &Builder{resolver: resolver}
}

// Build returns the configure arguments for req. All configuration errors are
// reported here, before any process runs.
func (b *Builder) Build(req Request) (*domain.BuildConfiguration, error) {
	p := req.Project
	label := p.BuildType
	workDir := p.WorkingDirectory().Path

	cfg := domain.NewBuildConfiguration().
		Flag("--preset", req.Target.Preset).
		Flag("-B", workDir).
		Define("CMAKE_DEFAULT_BUILD_TYPE", label)

	if !req.Target.IsAndroid() {
		if req.PythonRoot == "" {
			return nil, domain.ErrPythonRootNotFound
		}
		cfg.DefineTyped("Python_ROOT_DIR", "PATH", req.PythonRoot)
	}

	cfg.DefineTyped("Python_FIND_REGISTRY", "STRING", "NEVER").
		Define("CMAKE_INSTALL_PREFIX", req.Layout.Root).
		Define("CMAKE_INSTALL_LIBDIR", domain.InstallLibDir).
		Define("CMAKE_INSTALL_BINDIR", domain.InstallBinDir).
		Define("CMAKE_INSTALL_INCLUDEDIR", domain.InstallIncludeDir).
		Define("CMAKE_INSTALL_DATAROOTDIR", domain.InstallDataDir).
		Define(p.Option("BUILD_EXAMPLES"), "OFF").
		Define(p.Option("BUILD_TESTS"), "OFF")

	if req.Target.IsAndroid() {
		include, library, err := b.androidPython(req.Options.ToolchainFile)
		if err != nil {
			return nil, err
		}
		cfg.Define("Python_INCLUDE_DIR", include).
			Define("Python_LIBRARY", library)

		sibling, err := filepath.Abs(p.SiblingDir())
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to resolve sibling directory"), "path", p.SiblingDir())
		}
		cfg.Define(p.SiblingOption("LOCAL_", ""), "ON").
			Define(p.SiblingOption("LOCAL_", "_DIR"), sibling).
			Define(p.SiblingOption("LOCAL_", "_BUILD_DIR"), "build-android-"+req.Target.Arch+"/"+label)
	}

	if req.Mapping != nil {
		flag := req.Mapping.Flag()
		cfg.Define("CMAKE_C_FLAGS", flag).
			Define("CMAKE_CXX_FLAGS", flag)
	}

	if req.Options.ReleaseWheel {
		cfg.Define(p.Option("PROJECT_DIR"), "").
			Define(p.SiblingOption("", "_DEBUG_INFO"), "OFF")
	}

	cfg.Raw(req.Options.RawArgs...)

	return cfg, nil
}

// Validate reports the configuration errors that need no subprocess to detect.
// Callers run it before any host query so a bad Android setup fails without
// spawning anything.
func (b *Builder) Validate(target domain.BuildTarget, opts domain.BuildOptions) error {
	if !target.IsAndroid() {
		return nil
	}
	_, _, err := b.androidPython(opts.ToolchainFile)
	return err
}

// androidPython finds the interpreter header and library below the python prefix
// shipped next to the toolchain file.
func (b *Builder) androidPython(toolchainFile string) (include, library string, err error) {
	if toolchainFile == "" {
		return "", "", zerr.With(domain.ErrMissingToolchainFile, "env", domain.EnvToolchainFile)
	}

	prefix, err := filepath.Abs(filepath.Join(filepath.Dir(toolchainFile), "python", "prefix"))
	if err != nil {
		return "", "", zerr.With(zerr.Wrap(err, "failed to resolve python prefix"), "toolchain_file", toolchainFile)
	}

	include, err = b.first(prefix, pythonIncludeGlob)
	if err != nil {
		return "", "", err
	}
	if include == "" {
		return "", "", zerr.With(domain.ErrPythonIncludeNotFound, "prefix", prefix)
	}

	library, err = b.first(prefix, pythonLibraryGlob)
	if err != nil {
		return "", "", err
	}
	if library == "" {
		return "", "", zerr.With(domain.ErrPythonLibraryNotFound, "prefix", prefix)
	}
	return include, library, nil
}

func (b *Builder) first(root, pattern string) (string, error) {
	matches, err := b.resolver.ResolveInputs([]string{pattern}, root)
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", nil
	}
	return matches[0], nil
}
