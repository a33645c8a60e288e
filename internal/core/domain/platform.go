package domain

import (
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Platform is the normalized operating system family a build targets.
type Platform string

const (
	// PlatformWindows targets MSVC toolchains.
	PlatformWindows Platform = "windows"
	// PlatformLinux targets GCC toolchains.
	PlatformLinux Platform = "linux"
	// PlatformMacOS targets Apple clang on arm64.
	PlatformMacOS Platform = "macos"
	// PlatformAndroid targets the NDK, selected by ANDROID_ABI.
	PlatformAndroid Platform = "android"
)

// Build presets. The set is closed: every BuildTarget carries one of these.
const (
	PresetWindowsMSVC      = "windows-msvc"
	PresetWindowsARM64MSVC = "windows-arm64-msvc"
	PresetLinuxGCC         = "linux-gcc"
	PresetMacOSARM64Clang  = "macos-arm64-clang"
	PresetAndroidARM64     = "android-arm64"
	PresetAndroidX8664     = "android-x86_64"
)

// MSVC platform specifiers passed to the vendor environment helper.
const (
	PlatformSpecX64      = "x64"
	PlatformSpecX86ARM64 = "x86_arm64"
)

// Android ABIs with a preset.
const (
	AndroidABIARM64 = "arm64-v8a"
	AndroidABIX8664 = "x86_64"
)

// Presets returns the closed set of preset names in a stable order.
func Presets() []string {
	return []string{
		PresetWindowsMSVC,
		PresetWindowsARM64MSVC,
		PresetLinuxGCC,
		PresetMacOSARM64Clang,
		PresetAndroidARM64,
		PresetAndroidX8664,
	}
}

// BuildTarget is the resolved platform, architecture and preset of a build.
// It is computed once per run and never mutated.
type BuildTarget struct {
	Platform Platform
	// Arch is the architecture tag: the normalized CPU architecture, or the ABI on Android.
	Arch   string
	Preset string
	// PlatformSpec is the MSVC platform specifier. Empty outside Windows.
	PlatformSpec string
}

// IsAndroid reports whether the target is an Android cross build.
func (t BuildTarget) IsAndroid() bool {
	return t.Platform == PlatformAndroid
}

// HostInfo is the raw input to target resolution.
type HostInfo struct {
	// OS is the operating system identifier, e.g. runtime.GOOS or a sys.platform string.
	OS string
	// Arch is the CPU architecture reported by the host.
	Arch string
	// AndroidABI is the value of ANDROID_ABI. Only consulted on Android.
	AndroidABI string
}

type presetResolver func(host HostInfo) (BuildTarget, error)

// platformResolvers holds one resolution function per supported platform.
var platformResolvers = map[Platform]presetResolver{
	PlatformWindows: resolveWindows,
	PlatformLinux:   fixedPreset(PlatformLinux, PresetLinuxGCC),
	PlatformMacOS:   fixedPreset(PlatformMacOS, PresetMacOSARM64Clang),
	PlatformAndroid: resolveAndroid,
}

var armClassArchs = []string{"arm64", "aarch64"}

// ParsePlatform maps an operating system identifier onto a supported Platform.
// Identifiers are matched by prefix, so both "win32" and "windows" select Windows.
func ParsePlatform(osID string) (Platform, error) {
	id := strings.ToLower(strings.TrimSpace(osID))
	switch {
	case strings.HasPrefix(id, "win"):
		return PlatformWindows, nil
	case strings.HasPrefix(id, "linux"):
		return PlatformLinux, nil
	case strings.HasPrefix(id, "darwin"), id == string(PlatformMacOS):
		return PlatformMacOS, nil
	case strings.HasPrefix(id, "android"):
		return PlatformAndroid, nil
	default:
		return "", zerr.With(ErrUnsupportedPlatform, "platform", osID)
	}
}

// ResolveTarget selects the build preset for the given host. It is pure: it touches
// neither the filesystem nor the process table, so unsupported hosts fail before any
// build step runs.
func ResolveTarget(host HostInfo) (BuildTarget, error) {
	platform, err := ParsePlatform(host.OS)
	if err != nil {
		return BuildTarget{}, err
	}
	resolve, ok := platformResolvers[platform]
	if !ok {
		return BuildTarget{}, zerr.With(ErrUnsupportedPlatform, "platform", host.OS)
	}
	return resolve(host)
}

func resolveWindows(host HostInfo) (BuildTarget, error) {
	arch := strings.ToLower(host.Arch)
	if slices.Contains(armClassArchs, arch) {
		return BuildTarget{
			Platform:     PlatformWindows,
			Arch:         arch,
			Preset:       PresetWindowsARM64MSVC,
			PlatformSpec: PlatformSpecX86ARM64,
		}, nil
	}
	return BuildTarget{
		Platform:     PlatformWindows,
		Arch:         arch,
		Preset:       PresetWindowsMSVC,
		PlatformSpec: PlatformSpecX64,
	}, nil
}

func fixedPreset(platform Platform, preset string) presetResolver {
	return func(host HostInfo) (BuildTarget, error) {
		return BuildTarget{
			Platform: platform,
			Arch:     strings.ToLower(host.Arch),
			Preset:   preset,
		}, nil
	}
}

func resolveAndroid(host HostInfo) (BuildTarget, error) {
	var preset string
	switch host.AndroidABI {
	case AndroidABIARM64:
		preset = PresetAndroidARM64
	case AndroidABIX8664:
		preset = PresetAndroidX8664
	default:
		return BuildTarget{}, zerr.With(ErrUnsupportedABI, "android_abi", host.AndroidABI)
	}
	return BuildTarget{
		Platform: PlatformAndroid,
		Arch:     host.AndroidABI,
		Preset:   preset,
	}, nil
}
