//go:build windows

package sysinfo

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"syscall"
	"time"
)

// runPowerShell runs a PowerShell command with a timeout and returns raw
// stdout bytes. The command is executed with -NoProfile and the window hidden.
func runPowerShell(cmd string, timeout time.Duration) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	c := exec.CommandContext(ctx, "powershell", "-NoProfile", "-Command", cmd)
	c.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
	return c.Output()
}

// runPowerShellJSON runs a PowerShell command expected to emit JSON and
// unmarshals it into v.
func runPowerShellJSON(cmd string, timeout time.Duration, v any) ([]byte, error) {
	out, err := runPowerShell(cmd, timeout)
	if err != nil {
		return nil, err
	}
	if v != nil {
		if err := json.Unmarshal(out, v); err != nil {
			return out, fmt.Errorf("decode powershell output: %w", err)
		}
	}
	return out, nil
}
