package config

// Projectfile represents the structure of the extbuild.yaml project file.
// Every field is optional; absent fields keep their defaults.
type Projectfile struct {
	Version       string      `yaml:"version"`
	OptionPrefix  string      `yaml:"optionPrefix"`
	Package       string      `yaml:"package"`
	VersionHeader string      `yaml:"versionHeader"`
	VersionMacro  string      `yaml:"versionMacro"`
	BuildDir      string      `yaml:"buildDir"`
	BuildType     string      `yaml:"buildType"`
	Denylist      *[]string   `yaml:"denylist"`
	Data          *DataDTO    `yaml:"data"`
	Sibling       *SiblingDTO `yaml:"sibling"`
	MinCMake      string      `yaml:"minCMakeVersion"`
}

// DataDTO represents the auxiliary data bundle definition.
type DataDTO struct {
	Source      string `yaml:"source"`
	Destination string `yaml:"destination"`
}

// SiblingDTO represents the pre-built sibling dependency definition.
type SiblingDTO struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}
