package domain

import "go.trai.ch/zerr"

var (
	// ErrUnsupportedPlatform is returned when the operating system has no build preset.
	ErrUnsupportedPlatform = zerr.New("unsupported platform")

	// ErrUnsupportedABI is returned when ANDROID_ABI is missing or names an ABI without a preset.
	ErrUnsupportedABI = zerr.New("unsupported ANDROID_ABI, expected 'arm64-v8a' or 'x86_64'")

	// ErrMissingToolchainFile is returned when an Android build has no CMAKE_TOOLCHAIN_FILE.
	ErrMissingToolchainFile = zerr.New("CMAKE_TOOLCHAIN_FILE environment variable is not set")

	// ErrPythonIncludeNotFound is returned when no python3.* include directory exists in the Android prefix.
	ErrPythonIncludeNotFound = zerr.New("python include directory not found")

	// ErrPythonLibraryNotFound is returned when no libpython3.*.so exists in the Android prefix.
	ErrPythonLibraryNotFound = zerr.New("python shared library not found")

	// ErrPythonRootNotFound is returned when the Python installation prefix cannot be determined.
	ErrPythonRootNotFound = zerr.New("failed to determine python root directory")

	// ErrMissingDirective is returned when a version header lacks a MAJOR, MINOR or PATCH directive.
	ErrMissingDirective = zerr.New("missing version directive")

	// ErrVersionHeaderReadFailed is returned when the version header cannot be read.
	ErrVersionHeaderReadFailed = zerr.New("failed to read version header")

	// ErrConfigReadFailed is returned when the project file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read project file")

	// ErrConfigParseFailed is returned when the project file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse project file")

	// ErrInvalidProject is returned when the project file contains an invalid value.
	ErrInvalidProject = zerr.New("invalid project configuration")

	// ErrMissingExtensionDir is returned when a build is requested without an extension directory.
	ErrMissingExtensionDir = zerr.New("extension directory not specified")

	// ErrPhaseFailed is returned when a pipeline phase exits unsuccessfully.
	ErrPhaseFailed = zerr.New("build phase failed")

	// ErrBuildFailed is returned when the native build does not complete.
	ErrBuildFailed = zerr.New("native build failed")

	// ErrInvalidPhaseTransition is returned when the pipeline is driven out of order.
	ErrInvalidPhaseTransition = zerr.New("invalid pipeline phase transition")

	// ErrWorkingDirWipeFailed is returned when the working directory cannot be removed.
	ErrWorkingDirWipeFailed = zerr.New("failed to wipe working directory")

	// ErrArtifactRemoveFailed is returned when a denylisted artifact cannot be removed.
	ErrArtifactRemoveFailed = zerr.New("failed to remove artifact")

	// ErrDataBundleFailed is returned when the auxiliary data directory cannot be bundled.
	ErrDataBundleFailed = zerr.New("failed to bundle data directory")

	// ErrToolchainEnvFailed is returned when the vendor toolchain environment cannot be queried.
	ErrToolchainEnvFailed = zerr.New("failed to query toolchain environment")

	// ErrMissingTool is returned when a required external tool is not installed.
	ErrMissingTool = zerr.New("required tool not found")

	// ErrToolVersionUnsatisfied is returned when an external tool is older than required.
	ErrToolVersionUnsatisfied = zerr.New("tool version does not satisfy constraint")

	// ErrStoreReadFailed is returned when the build state cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read build state")

	// ErrStoreUnmarshalFailed is returned when the build state cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal build state")

	// ErrStoreMarshalFailed is returned when the build state cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal build state")

	// ErrStoreWriteFailed is returned when the build state cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write build state")

	// ErrFileHashFailed is returned when hashing an installed file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")
)
