package domain

import (
	"path/filepath"
	"strings"
)

// Install directory subpaths, relative to the install root.
const (
	InstallLibDir     = "."
	InstallBinDir     = "."
	InstallIncludeDir = "include"
	InstallDataDir    = "."
)

// InstallLayout is the install tree handed back to the packaging layer. Libraries,
// binaries and shared data land directly in the root; headers go to include/.
type InstallLayout struct {
	Root string
}

// NewInstallLayout creates a layout rooted at the cleaned root directory.
func NewInstallLayout(root string) InstallLayout {
	return InstallLayout{Root: filepath.Clean(root)}
}

// Path joins rel onto the install root.
func (l InstallLayout) Path(rel string) string {
	return filepath.Join(l.Root, rel)
}

// Contains reports whether path lies inside the install tree.
func (l InstallLayout) Contains(path string) bool {
	rel, err := filepath.Rel(l.Root, filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// WorkingDirectory is the per-invocation scratch directory of the build tool. It is
// wiped before every configure phase and left untouched after a failure.
type WorkingDirectory struct {
	Path string
}

// PathMappingRule rewrites source paths recorded in debug info. Source is the path
// seen by the orchestrator, Target the path a host-side toolchain uses.
type PathMappingRule struct {
	Source string
	Target string
}

// Flag renders the rule as a compiler debug-prefix-map flag.
func (r PathMappingRule) Flag() string {
	return "-fdebug-prefix-map=" + r.Source + "=" + r.Target
}

// PathMapping is the outcome of path-mapping detection. Rule is nil when no remapping
// applies; Diagnostics carries the messages produced while detecting.
type PathMapping struct {
	Rule        *PathMappingRule
	Diagnostics []string
}
