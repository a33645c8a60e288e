//go:build windows

package shell

import (
	"os/exec"
	"syscall"
)

// setCmdLine bypasses os/exec argument escaping, which cmd.exe does not understand.
func setCmdLine(cmd *exec.Cmd, cmdLine string) {
	if cmdLine == "" {
		return
	}
	cmd.SysProcAttr = &syscall.SysProcAttr{CmdLine: cmdLine}
}
