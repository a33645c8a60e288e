// Package config provides the project file loader and the environment options reader.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.trai.ch/extbuild/internal/core/domain"
	"go.trai.ch/extbuild/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Filename is the name of the project file looked up in the source directory.
const Filename = "extbuild.yaml"

var _ ports.ProjectLoader = (*Loader)(nil)

var optionPrefixPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Loader implements ports.ProjectLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		Logger: logger,
	}
}

// Load reads extbuild.yaml from sourceDir. A missing file yields the defaults.
func (l *Loader) Load(sourceDir string) (*domain.Project, error) {
	absDir, err := filepath.Abs(sourceDir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve source directory"), "source_dir", sourceDir)
	}
	if resolved, err := filepath.EvalSymlinks(absDir); err == nil {
		absDir = resolved
	}

	project := domain.DefaultProject(absDir)

	path := filepath.Join(absDir, Filename)
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the user's source directory
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return project, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file Projectfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	apply(project, &file)

	if err := validate(project); err != nil {
		return nil, err
	}

	if l.Logger != nil {
		l.Logger.Info("loaded project file " + path)
	}
	return project, nil
}

func apply(p *domain.Project, f *Projectfile) {
	setString(&p.OptionPrefix, f.OptionPrefix)
	setString(&p.Package, f.Package)
	setPath(&p.VersionHeader, f.VersionHeader)
	setString(&p.VersionMacro, f.VersionMacro)
	setPath(&p.BuildDir, f.BuildDir)
	setString(&p.BuildType, f.BuildType)
	setString(&p.MinCMakeVersion, f.MinCMake)

	if f.Denylist != nil {
		p.Denylist = append([]string(nil), (*f.Denylist)...)
	}
	if f.Data != nil {
		setPath(&p.Data.Source, f.Data.Source)
		setPath(&p.Data.Destination, f.Data.Destination)
	}
	if f.Sibling != nil {
		setString(&p.Sibling.Name, f.Sibling.Name)
		setPath(&p.Sibling.Path, f.Sibling.Path)
	}
}

func setString(dst *string, value string) {
	if value = strings.TrimSpace(value); value != "" {
		*dst = value
	}
}

func setPath(dst *string, value string) {
	if value = strings.TrimSpace(value); value != "" {
		*dst = filepath.FromSlash(value)
	}
}

func validate(p *domain.Project) error {
	if !optionPrefixPattern.MatchString(p.OptionPrefix) {
		return zerr.With(domain.ErrInvalidProject, "optionPrefix", p.OptionPrefix)
	}
	if filepath.IsAbs(p.BuildDir) || escapes(p.BuildDir) || filepath.Clean(p.BuildDir) == "." {
		return zerr.With(domain.ErrInvalidProject, "buildDir", p.BuildDir)
	}
	if filepath.IsAbs(p.Data.Destination) || escapes(p.Data.Destination) {
		return zerr.With(domain.ErrInvalidProject, "data.destination", p.Data.Destination)
	}
	for _, name := range p.Denylist {
		if name == "" || filepath.Base(name) != name {
			return zerr.With(domain.ErrInvalidProject, "denylist", name)
		}
	}
	return nil
}

func escapes(rel string) bool {
	clean := filepath.Clean(rel)
	return clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator))
}
