package config

import (
	"os"
	"strings"

	"go.trai.ch/extbuild/internal/core/domain"
	"go.trai.ch/extbuild/internal/core/ports"
)

var _ ports.OptionsLoader = (*EnvOptions)(nil)

// LookupFunc matches the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// EnvOptions implements ports.OptionsLoader on top of an environment lookup.
type EnvOptions struct {
	lookup LookupFunc
}

// NewEnvOptions creates an options reader over the process environment.
func NewEnvOptions() *EnvOptions {
	return &EnvOptions{lookup: os.LookupEnv}
}

// NewEnvOptionsWithLookup creates an options reader over an arbitrary lookup.
func NewEnvOptionsWithLookup(lookup LookupFunc) *EnvOptions {
	return &EnvOptions{lookup: lookup}
}

// Options reads the build switches. Flags are enabled only by the literal value "1".
func (e *EnvOptions) Options() domain.BuildOptions {
	return OptionsFromEnv(e.lookup)
}

// OptionsFromEnv derives BuildOptions from lookup.
func OptionsFromEnv(lookup LookupFunc) domain.BuildOptions {
	get := func(key string) string {
		v, _ := lookup(key)
		return v
	}

	return domain.BuildOptions{
		SkipNative:    get(domain.EnvNoNativeBuild) == "1",
		ReleaseWheel:  get(domain.EnvReleaseWheel) == "1",
		AndroidABI:    get(domain.EnvAndroidABI),
		ToolchainFile: get(domain.EnvToolchainFile),
		RawArgs:       strings.Fields(get(domain.EnvRawArgs)),
	}
}
