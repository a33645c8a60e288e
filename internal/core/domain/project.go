package domain

import (
	"path/filepath"
	"strings"
)

// DataBundle describes the auxiliary data directory copied into the package on
// release builds.
type DataBundle struct {
	// Source is relative to the project source directory.
	Source string
	// Destination is relative to the packaging layer's build-lib directory.
	Destination string
}

// Sibling is a dependency checked out next to the project and used pre-built on Android.
type Sibling struct {
	Name string
	// Path is relative to the project source directory.
	Path string
}

// Project holds the static, per-repository parameters of the orchestrator.
type Project struct {
	// SourceDir is the absolute project root.
	SourceDir string
	// OptionPrefix prefixes the project's own cache entries, e.g. SGL_BUILD_TESTS.
	OptionPrefix string
	// Package is the Python package name.
	Package string
	// VersionHeader is the header carrying the version directives, relative to SourceDir.
	VersionHeader string
	// VersionMacro is the directive prefix, e.g. SGL_VERSION for SGL_VERSION_MAJOR.
	VersionMacro string
	// BuildDir is the working directory, relative to SourceDir.
	BuildDir string
	// BuildType is the build-type label used for every phase.
	BuildType string
	// Denylist names install-root files removed after install.
	Denylist []string
	Data     DataBundle
	Sibling  Sibling
	// MinCMakeVersion is the oldest cmake accepted by the doctor command.
	MinCMakeVersion string
}

// DefaultProject returns the defaults used when no project file is present.
func DefaultProject(sourceDir string) *Project {
	return &Project{
		SourceDir:     sourceDir,
		OptionPrefix:  "SGL",
		Package:       "slangpy",
		VersionHeader: filepath.Join("src", "sgl", "sgl.h"),
		VersionMacro:  "SGL_VERSION",
		BuildDir:      filepath.Join("build", "pip"),
		BuildType:     "RelWithDebInfo",
		Denylist:      []string{"slang-rhi.lib"},
		Data: DataBundle{
			Source:      "data",
			Destination: filepath.Join("slangpy", "data"),
		},
		Sibling: Sibling{
			Name: "slang",
			Path: filepath.Join("..", "slang"),
		},
		MinCMakeVersion: "3.21.0",
	}
}

// WorkingDirectory returns the scratch directory of the build tool.
func (p *Project) WorkingDirectory() WorkingDirectory {
	return WorkingDirectory{Path: filepath.Join(p.SourceDir, p.BuildDir)}
}

// VersionHeaderPath returns the absolute path of the version header.
func (p *Project) VersionHeaderPath() string {
	return filepath.Join(p.SourceDir, p.VersionHeader)
}

// SiblingDir returns the absolute path of the sibling dependency checkout.
func (p *Project) SiblingDir() string {
	return filepath.Join(p.SourceDir, p.Sibling.Path)
}

// Option returns a project cache entry name, e.g. Option("BUILD_TESTS") = "SGL_BUILD_TESTS".
func (p *Project) Option(name string) string {
	return p.OptionPrefix + "_" + name
}

// SiblingOption returns a sibling-scoped cache entry name, e.g.
// SiblingOption("LOCAL_", "_DIR") = "SGL_LOCAL_SLANG_DIR".
func (p *Project) SiblingOption(before, after string) string {
	return p.Option(before + strings.ToUpper(p.Sibling.Name) + after)
}
