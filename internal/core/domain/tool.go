package domain

// ToolRequirement describes an external tool dependency.
type ToolRequirement struct {
	// Name is the primary binary name, e.g. "cmake".
	Name string
	// Alternatives are other binaries that satisfy the requirement.
	Alternatives []string
	// Optional tools are reported but never fail the check.
	Optional bool
	// Purpose is a human-readable description of why the tool is needed.
	Purpose string
	// Constraint is a semantic version constraint, e.g. ">= 3.21.0". Empty skips the
	// version query.
	Constraint string
}

// ToolStatus is the check result of one requirement.
type ToolStatus struct {
	Requirement ToolRequirement
	// Path is the resolved executable, empty when not found.
	Path string
	// Version is the reported version, empty when not queried.
	Version string
	// Satisfied is true when the tool was found and meets its constraint.
	Satisfied bool
	// Problem describes why the requirement is not satisfied.
	Problem string
}
