package domain

import "strings"

// BuildConfiguration is the ordered argument list of the configure phase.
//
// Entries are only ever appended. Conflicting keys are kept in insertion order and
// resolved by the build tool, which applies the last definition it sees; this is how
// raw user arguments override the built-in ones.
type BuildConfiguration struct {
	args []string
}

// NewBuildConfiguration creates an empty configuration.
func NewBuildConfiguration() *BuildConfiguration {
	return &BuildConfiguration{}
}

// Flag appends a bare flag followed by its values, e.g. Flag("--preset", "linux-gcc").
func (c *BuildConfiguration) Flag(name string, values ...string) *BuildConfiguration {
	c.args = append(c.args, name)
	c.args = append(c.args, values...)
	return c
}

// Define appends a -DKEY=VALUE cache entry.
func (c *BuildConfiguration) Define(key, value string) *BuildConfiguration {
	c.args = append(c.args, "-D"+key+"="+value)
	return c
}

// DefineTyped appends a -DKEY:TYPE=VALUE cache entry.
func (c *BuildConfiguration) DefineTyped(key, typ, value string) *BuildConfiguration {
	c.args = append(c.args, "-D"+key+":"+typ+"="+value)
	return c
}

// Raw appends arguments verbatim.
func (c *BuildConfiguration) Raw(args ...string) *BuildConfiguration {
	c.args = append(c.args, args...)
	return c
}

// Args returns a copy of the ordered argument list.
func (c *BuildConfiguration) Args() []string {
	out := make([]string, len(c.args))
	copy(out, c.args)
	return out
}

// Len returns the number of arguments.
func (c *BuildConfiguration) Len() int {
	return len(c.args)
}

// Lookup returns the effective value of a cache entry, applying last-wins semantics.
func (c *BuildConfiguration) Lookup(key string) (string, bool) {
	var (
		value string
		found bool
	)
	for _, arg := range c.args {
		k, v, ok := parseDefine(arg)
		if ok && k == key {
			value, found = v, true
		}
	}
	return value, found
}

// Keys returns the cache entry keys in insertion order, duplicates included.
func (c *BuildConfiguration) Keys() []string {
	var keys []string
	for _, arg := range c.args {
		if k, _, ok := parseDefine(arg); ok {
			keys = append(keys, k)
		}
	}
	return keys
}

// parseDefine splits "-DKEY[:TYPE]=VALUE" into key and value.
func parseDefine(arg string) (key, value string, ok bool) {
	rest, found := strings.CutPrefix(arg, "-D")
	if !found {
		return "", "", false
	}
	lhs, value, found := strings.Cut(rest, "=")
	if !found {
		return "", "", false
	}
	key, _, _ = strings.Cut(lhs, ":")
	return key, value, true
}
