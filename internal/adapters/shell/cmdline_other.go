//go:build !windows

package shell

import "os/exec"

func setCmdLine(_ *exec.Cmd, _ string) {}
