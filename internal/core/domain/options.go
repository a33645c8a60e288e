package domain

// Environment variables read by the orchestrator.
const (
	EnvNoNativeBuild = "NO_CMAKE_BUILD"
	EnvReleaseWheel  = "BUILD_RELEASE_WHEEL"
	EnvAndroidABI    = "ANDROID_ABI"
	EnvToolchainFile = "CMAKE_TOOLCHAIN_FILE"
	EnvRawArgs       = "CMAKE_ARGS"
)

// BuildOptions are the per-run switches supplied through the environment.
type BuildOptions struct {
	// SkipNative disables the native build entirely.
	SkipNative bool
	// ReleaseWheel strips project paths and bundled debug info and enables the data bundle.
	ReleaseWheel bool
	// AndroidABI selects the Android preset.
	AndroidABI string
	// ToolchainFile is the Android toolchain file; its directory holds the python prefix.
	ToolchainFile string
	// RawArgs are appended verbatim after every built-in configure argument.
	RawArgs []string
}

// Conflicting reports the release-wheel plus skip-native combination. It is accepted:
// the native build is skipped and the data bundle still runs.
func (o BuildOptions) Conflicting() bool {
	return o.SkipNative && o.ReleaseWheel
}
