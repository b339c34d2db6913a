//go:build !darwin && !linux && !windows

package speech

import "os/exec"

func speechCommand(_, _ string, _, _ float64) *exec.Cmd {
	return nil
}
