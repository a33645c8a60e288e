// Package build describes the extbuild binary itself. Release builds set the
// variables with -ldflags "-X go.trai.ch/extbuild/internal/build.Version=...".
package build

import "runtime"

// Name is the program name shown in version output.
const Name = "extbuild"

var (
	// Version is the release tag, "dev" for local builds.
	Version = "dev"
	// Commit is the source revision the binary was built from.
	Commit = "unknown"
)

// Info renders the one-line version banner, e.g.
// "extbuild dev (commit unknown, go1.25.0 linux/amd64)".
func Info() string {
	return Name + " " + Version + " (commit " + Commit + ", " +
		runtime.Version() + " " + runtime.GOOS + "/" + runtime.GOARCH + ")"
}
