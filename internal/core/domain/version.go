package domain

import (
	"regexp"

	"go.trai.ch/zerr"
)

// VersionTriple is the (major, minor, patch) label of the package. The parts are
// carried as captured text and are never interpreted numerically.
type VersionTriple struct {
	Major string
	Minor string
	Patch string
}

// String renders the triple as MAJOR.MINOR.PATCH.
func (v VersionTriple) String() string {
	return v.Major + "." + v.Minor + "." + v.Patch
}

const (
	directiveMajor = "MAJOR"
	directiveMinor = "MINOR"
	directivePatch = "PATCH"
)

// ExtractVersion reads `#define <prefix>_MAJOR value` style directives from text.
// Directives may appear in any order among unrelated lines; the last occurrence of a
// suffix wins. An empty prefix accepts any macro name ending in _MAJOR, _MINOR or _PATCH.
func ExtractVersion(text, prefix string) (VersionTriple, error) {
	name := `\w+`
	if prefix != "" {
		name = regexp.QuoteMeta(prefix)
	}
	re := regexp.MustCompile(`(?m)^\s*#\s*define\s+` + name + `_([A-Z]+)\s+(.*?)[ \t\r]*$`)

	found := make(map[string]string, 3)
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		found[m[1]] = m[2]
	}

	for _, suffix := range []string{directiveMajor, directiveMinor, directivePatch} {
		if _, ok := found[suffix]; !ok {
			return VersionTriple{}, zerr.With(ErrMissingDirective, "directive", suffix)
		}
	}

	return VersionTriple{
		Major: found[directiveMajor],
		Minor: found[directiveMinor],
		Patch: found[directivePatch],
	}, nil
}
