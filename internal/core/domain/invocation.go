package domain

import "strings"

// Invocation is a single external process run. Env is the complete environment of
// the child; nothing from the orchestrator's own environment is added to it.
type Invocation struct {
	Name string
	Args []string
	Dir  string
	Env  []string
	// Quiet suppresses logging of stdout lines. Used for queries whose output is parsed.
	Quiet bool
	// CmdLine, when set, is handed to Windows verbatim as the process command line
	// instead of one built from Args. Other platforms ignore it.
	CmdLine string
}

// String renders the command line for logs.
func (i *Invocation) String() string {
	if i.CmdLine != "" {
		return i.CmdLine
	}
	if len(i.Args) == 0 {
		return i.Name
	}
	return i.Name + " " + strings.Join(i.Args, " ")
}
